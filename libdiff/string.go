package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders the edit from one string to another. Multi line
// strings are diffed line by line.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	var diffs []diffpatch.Diff
	if strings.Contains(from, "\n") && strings.Contains(to, "\n") {
		a, b, lines := diffCfg.DiffLinesToChars(from, to)
		diffs = diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)
	} else {
		diffs = diffCfg.DiffMain(from, to, false)
	}
	return diffCfg.DiffPrettyText(diffCfg.DiffCleanupSemantic(diffs))
}

// DiffDelta is the compact tab separated form of the edit, stable enough
// for tests and machine consumption.
func DiffDelta(from, to string) string {
	diffCfg := diffpatch.New()
	return diffCfg.DiffToDelta(diffCfg.DiffMain(from, to, false))
}
