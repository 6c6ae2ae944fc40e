package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/signadot/tony-format/hocon/encode"
	"github.com/signadot/tony-format/hocon/ir"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

// Logf writes a debug line. Node arguments are rendered as compact HOCON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *ir.Node:
			args[i] = nodeString(x)
		case []*ir.Node:
			parts := make([]string, len(x))
			for j, n := range x {
				parts[j] = nodeString(n)
			}
			args[i] = "[" + strings.Join(parts, ", ") + "]"
		}
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, msg, args...)
}

func nodeString(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	if err := encode.Encode(n, &sb, encode.Compact(true)); err != nil {
		return fmt.Sprintf("<%s: %v>", n.Type, err)
	}
	return strings.TrimSpace(sb.String())
}
