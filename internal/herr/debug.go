package herr

import "github.com/davecgh/go-spew/spew"

// DebugDump renders a full, nested snapshot of v. The CLI's analyze command
// uses it to print the analyzed position after the search result.
func DebugDump(v interface{}) string {
	return spew.Sdump(v)
}
