package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/resolve"
	"github.com/signadot/tony-format/hocon/token"
	"github.com/signadot/tony-format/hocon/tree"
)

const application = `
// application settings
value {
  multiline = """This has
Multiline """${value.stronger}" years"${month}
  stronger = 5
  string = "another string"
  float = 5.89
}
month = May
vlu.try.list = ["i hope", distraction, 5.89, {shelter = island}]
`

func mustBuild(t *testing.T, in string, opts ...ParseOption) *tree.Builder {
	t.Helper()
	b, err := ParseBuilder([]byte(in), opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return b
}

func get(t *testing.T, b *tree.Builder, path string) any {
	t.Helper()
	v, err := b.GetValue(path, nil)
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	return ir.ToAny(v)
}

func TestParseApplication(t *testing.T) {
	b := mustBuild(t, application)
	tests := []struct {
		path string
		want any
	}{
		{"value.multiline", "This has\nMultiline 5 yearsMay"},
		{"value.stronger", int64(5)},
		{"value.string", "another string"},
		{"value.float", 5.89},
		{"vlu.try.list", []any{"i hope", "distraction", 5.89, map[string]any{"shelter": "island"}}},
		{"remember.me", nil},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, get(t, b, tc.path)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.path, diff)
		}
	}
	if b.Root().GetPath("value.multiline").Type != ir.PendingType {
		t.Errorf("forward references should stay pending in the tree")
	}
}

func TestEquivalentSyntaxes(t *testing.T) {
	docs := []string{
		"foo { a = 42 }\nfoo { b = 43 }",
		"foo.a = 42\nfoo.b = 43",
		"foo { a = 42, b = 43 }",
		`"foo".a : 42, foo."b" = 43`,
		"foo\n{ a = 42 }\nfoo\r\n\n  {\n  b = 43\n}",
	}
	for _, doc := range docs {
		b := mustBuild(t, doc)
		if got := get(t, b, "foo.a"); got != int64(42) {
			t.Errorf("%q: foo.a got %v", doc, got)
		}
		if got := get(t, b, "foo.b"); got != int64(43) {
			t.Errorf("%q: foo.b got %v", doc, got)
		}
	}
}

func TestResetThenRebuild(t *testing.T) {
	reset := mustBuild(t, "foo = {a:42, b:1}\nfoo = null\nfoo = {a:43}")
	direct := mustBuild(t, "foo = {a:43}")
	if diff := cmp.Diff(ir.ToAny(direct.Root()), ir.ToAny(reset.Root())); diff != "" {
		t.Errorf("(-direct +reset):\n%s", diff)
	}
	b := mustBuild(t, "foo { a = 1 }\nfoo = null")
	if !b.TestKey("foo") || get(t, b, "foo") != nil {
		t.Errorf("null should be stored and readable as absent")
	}
	b = mustBuild(t, "foo { a = 1 }\nfoo {}")
	if diff := cmp.Diff(map[string]any{}, get(t, b, "foo")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestScalars(t *testing.T) {
	b := mustBuild(t, "i = -3, f = 1e3, s = 007, n = null, t = true\nw = some words here ")
	want := map[string]any{
		"i": int64(-3),
		"f": 1000.0,
		"s": "007",
		"n": nil,
		"t": "true",
		"w": "some words here",
	}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestArrays(t *testing.T) {
	b := mustBuild(t, "x = 1\nempty = []\nnested = [[1, 2], []]\nlines = [\n  a\n  b\n]\nlist = [{x = 2, y = ${x}}, ${x}]")
	tests := []struct {
		path string
		want any
	}{
		{"empty", []any{}},
		{"nested", []any{[]any{int64(1), int64(2)}, []any{}}},
		{"lines", []any{"a", "b"}},
		{"list", []any{map[string]any{"x": int64(2), "y": int64(1)}, int64(1)}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, get(t, b, tc.path)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.path, diff)
		}
	}
}

func TestConcatenation(t *testing.T) {
	b := mustBuild(t, "name = second\nv = \"\"\"first \"\"\"${name}\nw = ${name} \"-\" ${v}\nq = \"a\" \"b\"")
	for path, want := range map[string]string{
		"v": "first second",
		"w": "second-first second",
		"q": "ab",
	} {
		if got := get(t, b, path); got != want {
			t.Errorf("%s: got %q want %q", path, got, want)
		}
	}
	if b.Root().Get("v").Type != ir.StringType {
		t.Errorf("known references should compile while parsing")
	}
}

func TestEarlyResolution(t *testing.T) {
	b := mustBuild(t, "a = 1\nb = ${a}\nc = \"x\"${a}${d}\na = 2\nd = 3")
	if got := get(t, b, "b"); got != int64(1) {
		t.Errorf("b: got %v", got)
	}
	if got := get(t, b, "c"); got != "x13" {
		t.Errorf("c: got %v", got)
	}
}

func TestKeyBeforeNewline(t *testing.T) {
	b := mustBuild(t, "xs\n[1, 2]\nobj\n{ a = 1 }")
	want := map[string]any{"xs": []any{int64(1), int64(2)}, "obj": map[string]any{"a": int64(1)}}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestConcatenationStopsAtLineEnd(t *testing.T) {
	b := mustBuild(t, "x = \"x\"\n\"b\" = 2\ny = ${x}\n\"c\" = 3")
	want := map[string]any{"x": "x", "b": int64(2), "y": "x", "c": int64(3)}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestComments(t *testing.T) {
	b := mustBuild(t, `// leading
a = 1 // trailing
b = "x" // after string
url = http://example.com/x
c { // open
  d = 2
  // inside
}
`)
	want := map[string]any{
		"a":   int64(1),
		"b":   "x",
		"url": "http:",
		"c":   map[string]any{"d": int64(2)},
	}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBracedDocument(t *testing.T) {
	b := mustBuild(t, "{ a = 1, b { c = [] } }")
	want := map[string]any{"a": int64(1), "b": map[string]any{"c": []any{}}}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	b = mustBuild(t, "{}")
	if len(b.Root().Fields) != 0 {
		t.Errorf("got %v", b.Root().Fields)
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		in  string
		msg string
	}{
		{"a = [1, 2, 3,]", "Array value cannot end with ,"},
		{"a = [,1,2]", ", is not allowed at the start of an array"},
		{"a = [1,,2]", "Only one , is allowed after a value"},
		{"a = [1, 2", "Array must end with ]"},
		{"a = 1,, b = 2", "Only one , is allowed after a value"},
		{"{ a = 1", "Config starts with '{' but does not end with '}'"},
		{"{ a = 1 } b = 2", "Config starts with '{' but does not end with '}'"},
		{"a { b = 1", "Object must end with }"},
		{"a = 1 }", "Unexpected '}' outside of an object"},
		{".a = 1", `Property name ".a" cannot start with a dot.`},
		{"a..b = 1", `Property name "a..b" cannot start with a dot.`},
		{"\"a\nb\" = 1", "Invalid key. Key may not contain new line character."},
		{"a b = 1", "Unexpected character after key, expected one of [,{"},
		{"a\nb = 1", "Unexpected character after key, expected one of [,{"},
		{"a\n= 1", "Unexpected character after key, expected one of [,{"},
		{`a = """never`, "Multiline string ended prematurely"},
		{"a = \"one\ntwo\"", `Multiline string detected. Use '"""' for multiline strings`},
		{`a = "open`, `Quoted string must end with "`},
		{"a = ${b", "Config references must end with }"},
		{"a = $b", "Config references $ must be followed by {"},
		{"a = ", `Missing value for "a"`},
		{"x = [1,2]\ny = \"s\"${x}", "cannot concatenate Array value of ${x}"},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.in))
		var fe *token.FormatErr
		if err == nil {
			t.Errorf("%q: expected error %q", tc.in, tc.msg)
			continue
		}
		if !errors.Is(err, token.ErrFormat) {
			t.Errorf("%q: %v is not a format error", tc.in, err)
		}
		if err.Error() != tc.msg {
			t.Errorf("%q: got %q want %q", tc.in, err.Error(), tc.msg)
		}
		if errors.As(err, &fe) && fe.Pos == nil {
			t.Errorf("%q: missing position", tc.in)
		}
	}
}

func TestUnresolvedStaysPending(t *testing.T) {
	b := mustBuild(t, "a = ${missing}")
	if _, err := b.GetValue("a", nil); !errors.Is(err, resolve.ErrUnresolved) {
		t.Errorf("got %v want %v", err, resolve.ErrUnresolved)
	}
}

func TestParseDepth(t *testing.T) {
	if _, err := Parse([]byte("a { b { c = 1 } }"), ParseDepth(2)); err != nil {
		t.Errorf("got %v", err)
	}
	_, err := Parse([]byte("a { b { c { d = [1] } } }"), ParseDepth(2))
	if err == nil || err.Error() != "Maximum nesting depth of 2 exceeded" {
		t.Errorf("got %v", err)
	}
}

func TestPositions(t *testing.T) {
	pos := map[string]*token.Pos{}
	mustBuild(t, "a = 1\nb {\n  c = 2\n}", ParsePositions(pos))
	p := pos["b.c"]
	if p == nil {
		t.Fatalf("no position for b.c in %v", pos)
	}
	if l, c := p.LineCol(); l != 2 || c != 2 {
		t.Errorf("got %d:%d want 2:2", l, c)
	}
	if GetPositions(ParsePositions(pos)) == nil {
		t.Errorf("positions not returned")
	}
}

func TestEmpty(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("got %v want %v", err, ErrEmpty)
	}
	n, err := Parse([]byte(" \n\t"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.ObjectType || len(n.Fields) != 0 {
		t.Errorf("got %v", n)
	}
}
