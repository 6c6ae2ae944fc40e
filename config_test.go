package hocon

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/hocon/ir"
)

const baseJSON = `{
  "simple": "json-config",
  "parent": {
    "with-list": [1, 2],
    "qubit": 1,
    "substitute": "Should contain value of \"simple\": ${simple} and ${parent.qubit}"
  },
  "overwrite": true,
  "overwrite-object": {"hello": "yes", "hello_": "yes", "array": [1]}
}`

const topJSON = `{
  "overwrite": {"know": "image"},
  "overwrite-object": {"hello_": "no", "array": [4, 1]},
  "another": "file",
  "better": "yes",
  "try": "Try replace: ${simple}"
}`

func mustNew(t *testing.T, v any) *Config {
	t.Helper()
	c, err := New(v)
	if err != nil {
		t.Fatalf("new %v: %v", v, err)
	}
	return c
}

func mustString(t *testing.T, c *Config, path string) *string {
	t.Helper()
	s, err := c.GetString(path)
	if err != nil {
		t.Fatalf("get string %s: %v", path, err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }

func TestSimpleConfig(t *testing.T) {
	c := mustNew(t, map[string]any{
		"value":  "Will be local: ${simple}",
		"simple": "X",
		"nested": map[string]any{"deep": "${simple}${simple}"},
	})
	if got := mustString(t, c, "value"); got == nil || *got != "Will be local: X" {
		t.Errorf("value: got %v", got)
	}
	if got := mustString(t, c, "nested.deep"); got == nil || *got != "XX" {
		t.Errorf("nested.deep: got %v", got)
	}
	if got := mustString(t, c, "nope"); got != nil {
		t.Errorf("nope: got %q want nil", *got)
	}
	if got := mustString(t, c, "nested"); got != nil {
		t.Errorf("nested object: got %q want nil", *got)
	}
}

func TestNewInputs(t *testing.T) {
	if _, err := New(42); !errors.Is(err, ErrBadInput) {
		t.Errorf("int input: got %v", err)
	}
	if _, err := New(`[1, 2]`); !errors.Is(err, ErrBadInput) {
		t.Errorf("array input: got %v", err)
	}
	if _, err := New(`{"a": `); !errors.Is(err, ErrBadInput) {
		t.Errorf("bad json: got %v", err)
	}
	if _, err := New(""); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("empty: got %v", err)
	}
	c := mustNew(t, ir.FromKeyVals("a", 1))
	if got := c.Keys(); !cmp.Equal(got, []string{"a"}) {
		t.Errorf("node input keys: %v", got)
	}
}

func TestFallbackLayering(t *testing.T) {
	base := mustNew(t, baseJSON)
	c, err := mustNew(t, topJSON).WithFallback(base)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"simple", "parent", "overwrite", "overwrite-object", "another", "better", "try"}
	if diff := cmp.Diff(want, c.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := mustString(t, c, "try"); got == nil || *got != "Try replace: json-config" {
		t.Errorf("try: got %v", got)
	}
	if got := mustString(t, c, "overwrite.know"); got == nil || *got != "image" {
		t.Errorf("overwrite.know: got %v", got)
	}
	obj, err := c.GetValue("overwrite-object")
	if err != nil {
		t.Fatal(err)
	}
	wantObj := map[string]any{"hello": "yes", "hello_": "no", "array": []any{int64(4), int64(1)}}
	if diff := cmp.Diff(wantObj, ir.ToAny(obj)); diff != "" {
		t.Errorf("overwrite-object (-want +got):\n%s", diff)
	}
	if _, err := c.WithFallback(base); !errors.Is(err, ErrFallbackSet) {
		t.Errorf("second fallback: got %v", err)
	}
}

func TestFallbackScope(t *testing.T) {
	base := mustNew(t, map[string]any{"simple": "X"})
	c, err := mustNew(t, map[string]any{"with": "${simple}"}).WithFallback(base)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustString(t, c, "with"); got == nil || *got != "X" {
		t.Errorf("with: got %v", got)
	}

	base = mustNew(t, map[string]any{"value": "Will be local: ${simple}", "simple": "NO!"})
	c, err = mustNew(t, map[string]any{"simple": "Y"}).WithFallback(base)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustString(t, c, "value"); got == nil || *got != "Will be local: Y" {
		t.Errorf("value: got %v", got)
	}
}

func TestSubConfig(t *testing.T) {
	c := mustNew(t, baseJSON)
	sub, err := c.GetConfig("parent")
	if err != nil {
		t.Fatal(err)
	}
	if sub == nil {
		t.Fatal("no sub config")
	}
	if diff := cmp.Diff([]string{"with-list", "qubit", "substitute"}, sub.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	want := `Should contain value of "simple": json-config and 1`
	if got := mustString(t, sub, "substitute"); got == nil || *got != want {
		t.Errorf("substitute: got %v", got)
	}
	if got := mustString(t, sub, "another"); got != nil {
		t.Errorf("another: got %q want nil", *got)
	}
	if !sub.HasKey("simple") {
		t.Error("sub config should see parent keys")
	}
	if _, err := sub.WithFallback(c); !errors.Is(err, ErrPartialConfig) {
		t.Errorf("fallback on sub config: got %v", err)
	}
	list, err := sub.GetArray("with-list")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[1].Int != 2 {
		t.Errorf("with-list: got %v", ir.ToAny(ir.FromSlice(list)))
	}
	if none, err := c.GetConfig("simple"); err != nil || none != nil {
		t.Errorf("config of a string: got %v, %v", none, err)
	}
}

func TestTypedGetters(t *testing.T) {
	c, err := ParseString(`
int = 42
neg = -7
double = 5.89
numstr = "12"
floatstr = "2.5"
word = hello
yes = true
no = "FALSE"
one = 1
two = 2
nothing = null
list = [1, two]
obj { a = 1 }
`)
	if err != nil {
		t.Fatal(err)
	}
	ints := map[string]*int64{
		"int": ptr(int64(42)), "neg": ptr(int64(-7)), "double": ptr(int64(5)),
		"numstr": ptr(int64(12)), "floatstr": ptr(int64(2)),
		"word": nil, "nothing": nil, "list": nil, "missing": nil,
	}
	for path, want := range ints {
		got, err := c.GetInt(path)
		if err != nil {
			t.Fatalf("int %s: %v", path, err)
		}
		if !cmp.Equal(got, want) {
			t.Errorf("int %s: got %v want %v", path, got, want)
		}
	}
	doubles := map[string]*float64{
		"double": ptr(5.89), "int": ptr(42.0), "floatstr": ptr(2.5), "word": nil,
	}
	for path, want := range doubles {
		got, err := c.GetDouble(path)
		if err != nil {
			t.Fatalf("double %s: %v", path, err)
		}
		if !cmp.Equal(got, want) {
			t.Errorf("double %s: got %v want %v", path, got, want)
		}
	}
	if got, _ := c.GetFloat("double"); got == nil || *got != float32(5.89) {
		t.Errorf("float: got %v", got)
	}
	bools := map[string]*bool{
		"yes": ptr(true), "no": ptr(false), "one": ptr(true), "two": nil,
		"word": nil, "nothing": nil, "obj": nil,
	}
	for path, want := range bools {
		got, err := c.GetBool(path)
		if err != nil {
			t.Fatalf("bool %s: %v", path, err)
		}
		if !cmp.Equal(got, want) {
			t.Errorf("bool %s: got %v want %v", path, got, want)
		}
	}
	fromJSON := mustNew(t, `{"f": false, "t": true, "zero": 0, "one": 1, "lower": "false", "upper": "TRUE", "arr": [true], "dbl": 1.0}`)
	jsonBools := map[string]*bool{
		"f": ptr(false), "t": ptr(true), "zero": ptr(false), "one": ptr(true),
		"lower": ptr(false), "upper": ptr(true), "arr": nil, "dbl": nil,
	}
	for path, want := range jsonBools {
		got, err := fromJSON.GetBool(path)
		if err != nil {
			t.Fatalf("bool %s: %v", path, err)
		}
		if !cmp.Equal(got, want) {
			t.Errorf("json bool %s: got %v want %v", path, got, want)
		}
	}
	if got := mustString(t, c, "int"); got == nil || *got != "42" {
		t.Errorf("string of int: got %v", got)
	}
	if got := mustString(t, c, "list"); got != nil {
		t.Errorf("string of list: got %q", *got)
	}
	if !c.HasKey("nothing") || c.HasKey("missing") || c.HasKey("") {
		t.Error("HasKey")
	}
}

func TestUnresolvedReference(t *testing.T) {
	c := mustNew(t, map[string]any{"a": "${nope}", "b": "x"})
	if _, err := c.GetString("a"); !Unresolved(err) {
		t.Errorf("got %v want unresolved", err)
	}
	if _, err := c.Resolve(); !Unresolved(err) {
		t.Errorf("resolve: got %v want unresolved", err)
	}
	if v, err := c.GetValue("nope"); v != nil || err != nil {
		t.Errorf("missing value: got %v, %v", v, err)
	}
}

func TestParseHOCONFallback(t *testing.T) {
	defaults, err := ParseString(`server { host = localhost, port = 80 }`)
	if err != nil {
		t.Fatal(err)
	}
	over, err := ParseYAML([]byte("server:\n  port: 8080\nurl: http://${server.host}:${server.port}\n"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := over.WithFallback(defaults)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustString(t, c, "url"); got == nil || *got != "http://localhost:8080" {
		t.Errorf("url: got %v", got)
	}
	if _, err := ParseString(""); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("empty: got %v", err)
	}
}

func TestDecode(t *testing.T) {
	c, err := ParseString(`
server { host = localhost, port = 8080 }
name = "svc-${server.host}"
`)
	if err != nil {
		t.Fatal(err)
	}
	type server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	var s server
	if err := c.Decode("server", &s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(server{Host: "localhost", Port: 8080}, s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	var all struct {
		Name   string `json:"name"`
		Server server `json:"server"`
	}
	if err := c.Decode("", &all); err != nil {
		t.Fatal(err)
	}
	if all.Name != "svc-localhost" || all.Server != s {
		t.Errorf("got %+v", all)
	}
	untouched := server{Host: "keep"}
	if err := c.Decode("missing", &untouched); err != nil || untouched.Host != "keep" {
		t.Errorf("missing: got %+v, %v", untouched, err)
	}
}
