package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/saranaauttama-afk/makhos-expo/internal/driver"
	"github.com/saranaauttama-afk/makhos-expo/internal/engine"
	"github.com/saranaauttama-afk/makhos-expo/internal/herr"
	"github.com/saranaauttama-afk/makhos-expo/internal/search"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if herr.Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("./data/CmdMakhosMain"))
		defer p.Stop()
	}
	args = herr.FilterSlice(args, func(arg string) bool { return arg != "profile" })

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: makhos <perft|analyze|play|bench|suite> [args]")
		os.Exit(1)
	}

	switch args[0] {
	case "perft":
		runPerft(args[1:])
	case "analyze":
		runAnalyze(args[1:])
	case "play":
		runPlay(args[1:])
	case "bench":
		runBench(args[1:])
	case "suite":
		runSuite(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		os.Exit(1)
	}
}

func perft(pos engine.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var total int64
	for _, m := range engine.GenerateMoves(pos) {
		total += perft(engine.ApplyMove(pos, m), depth-1)
	}
	return total
}

func runPerft(args []string) {
	depth := 6
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	pos := engine.InitialPosition()
	for d := 1; d <= depth; d++ {
		count := perft(pos, d)
		fmt.Printf("perft(%d) = %s\n", d, humanize.Comma(count))
	}
}

func runAnalyze(args []string) {
	timeMs := 1000
	if len(args) > 0 {
		if t, err := strconv.Atoi(args[0]); err == nil {
			timeMs = t
		}
	}
	pos := engine.InitialPosition()
	bar := progressbar.Default(search.DepthCap, "searching")
	result := engine.IterativeDeepening(pos, timeMs, nil, func(info engine.Info) {
		_ = bar.Set(info.Depth)
		fmt.Printf("depth %d score %d nodes %s\n", info.Depth, info.Score, humanize.Comma(info.Nodes))
	})
	_ = bar.Finish()
	if !result.Best.HasValue() {
		fmt.Println("no legal move")
		return
	}
	fmt.Printf("bestmove %v (score %d, depth %d, nodes %s)\n",
		result.Best.Value(), result.Score, result.Depth, humanize.Comma(result.Nodes))
	fmt.Println(herr.DebugDump(pos))
}

func runPlay(args []string) {
	timeMs := 500
	if len(args) > 0 {
		if t, err := strconv.Atoi(args[0]); err == nil {
			timeMs = t
		}
	}

	r := driver.NewRunner()
	table := engine.NewTable()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("makhos play: enter 'move <from> <to>', 'go', or 'quit'")
	for !r.GameOver() {
		fmt.Printf("%s to move (%s)\n", sideName(r.Position()), table.Stats())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "quit" {
			return
		}
		if line == "go" {
			bar := progressbar.Default(search.DepthCap, "thinking")
			result := r.PlaySearchMove(timeMs, table, func(info engine.Info) {
				_ = bar.Set(info.Depth)
			})
			_ = bar.Finish()
			if !result.Best.HasValue() {
				fmt.Println("no legal move; game over")
				break
			}
			fmt.Printf("played %v (score %d, depth %d)\n", result.Best.Value(), result.Score, result.Depth)
			continue
		}

		from, to, ok := parseMove(line)
		if !ok {
			fmt.Println("couldn't parse move, expected: move <from> <to>")
			continue
		}
		applied := false
		for _, m := range engine.GenerateMoves(r.Position()) {
			if m.From == from && m.To == to {
				if err := r.PerformMove(m); herr.IsNil(err) {
					applied = true
				}
				break
			}
		}
		if !applied {
			fmt.Println("not a legal move")
		}
	}

	if winner, ok := r.Winner(); ok {
		fmt.Printf("%s wins\n", sideName2(winner))
	} else {
		fmt.Println("draw by inactivity")
	}
}

func sideName(pos engine.Position) string {
	if pos.Side == engine.P1 {
		return "P1"
	}
	return "P2"
}

func sideName2(p engine.Player) string {
	if p == engine.P1 {
		return "P1"
	}
	return "P2"
}

func parseMove(line string) (from, to int, ok bool) {
	var cmd string
	n, err := fmt.Sscanf(line, "%s %d %d", &cmd, &from, &to)
	if err != nil || n != 3 || cmd != "move" {
		return 0, 0, false
	}
	return from, to, true
}

// runSuite computes perft(1..depth) concurrently, one goroutine per depth,
// since each depth is an independent tree walk over its own position
// value. Results are written to distinct slice slots, so no locking is
// needed beyond errgroup's own completion barrier.
func runSuite(args []string) {
	depth := 8
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	counts := make([]int64, depth+1)
	var g errgroup.Group
	for d := 1; d <= depth; d++ {
		d := d
		g.Go(func() error {
			counts[d] = perft(engine.InitialPosition(), d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "suite error:", err)
		os.Exit(1)
	}
	for d := 1; d <= depth; d++ {
		fmt.Printf("perft(%d) = %s\n", d, humanize.Comma(counts[d]))
	}
}

func runBench(args []string) {
	timeMs := 2000
	if len(args) > 0 {
		if t, err := strconv.Atoi(args[0]); err == nil {
			timeMs = t
		}
	}
	pos := engine.InitialPosition()
	result := engine.IterativeDeepening(pos, timeMs, nil, nil)
	fmt.Printf("depth=%d score=%d nodes=%s\n", result.Depth, result.Score, humanize.Comma(result.Nodes))
}
