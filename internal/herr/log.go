package herr

import (
	"fmt"
	"log"
)

// Logger is the logging seam of the game driver (driver.Runner), so it can
// run with a real logger, a silent one, or a forwarding one without touching
// the code that calls Println/Printf. The search core does not log.
type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

type defaultLogger struct{}

func (l *defaultLogger) Println(v ...any)               { log.Println(v...) }
func (l *defaultLogger) Printf(format string, v ...any) { log.Printf(format, v...) }
func (l *defaultLogger) Print(v ...any)                 { log.Print(v...) }

var DefaultLogger Logger = &defaultLogger{}

type silentLogger struct{}

func (l *silentLogger) Println(v ...any)               {}
func (l *silentLogger) Printf(format string, v ...any) {}
func (l *silentLogger) Print(v ...any)                 {}

var SilentLogger Logger = &silentLogger{}

// FuncLogger forwards every call as a single formatted string, useful for
// feeding the engine's log output into an arbitrary sink.
type FuncLogger struct {
	Write func(string)
}

func (l FuncLogger) Println(v ...any) { l.Write(fmt.Sprintln(v...)) }
func (l FuncLogger) Printf(format string, v ...any) {
	l.Write(fmt.Sprintf(format, v...))
}
func (l FuncLogger) Print(v ...any) { l.Write(fmt.Sprint(v...)) }
