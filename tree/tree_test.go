package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/hocon/ir"
	"github.com/signadot/tony-format/hocon/resolve"
)

func TestRegisterValue(t *testing.T) {
	b := New()
	b.RegisterValue("object", ir.FromInt(5))
	if diff := cmp.Diff(map[string]any{"object": int64(5)}, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	b.RegisterValue("object.88", ir.FromInt(1))
	b.RegisterValue("object.82", ir.FromInt(2))
	want := map[string]any{"object": map[string]any{"88": int64(1), "82": int64(2)}}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"88", "82"}, b.Root().Get("object").Keys()); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}

	b.RegisterValue("object.82", ir.MustFromAny([]any{1, "5", "98"}))
	want = map[string]any{"object": map[string]any{"88": int64(1), "82": []any{int64(1), "5", "98"}}}
	if diff := cmp.Diff(want, ir.ToAny(b.Root())); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	b.RegisterValue("object.82", nil)
	if got := b.Root().GetPath("object.82"); got == nil || got.Type != ir.ObjectType || len(got.Fields) != 0 {
		t.Errorf("nil should register an empty object, got %v", got)
	}
	b.RegisterValue("object", ir.Null())
	if got := b.Root().Get("object"); !got.IsNull() {
		t.Errorf("null should be stored, got %v", got)
	}
}

func TestTestKeyAndGetValue(t *testing.T) {
	b := New()
	b.RegisterValue("object.key", ir.FromInt(5))
	b.RegisterValue("object.kumbaja.er", ir.FromString("honk"))
	b.RegisterValue("object.kumbaja.ds", ir.FromString("Nintendo"))
	b.RegisterValue("object.arg", ir.FromString("beeline"))

	for _, k := range []string{"object.key", "object.kumbaja", "object.kumbaja.er", "object.kumbaja.ds"} {
		if !b.TestKey(k) {
			t.Errorf("expected %s", k)
		}
	}
	for _, k := range []string{"object.kumbaja.k9", "object.invalid"} {
		if b.TestKey(k) {
			t.Errorf("unexpected %s", k)
		}
	}
	get := func(b *Builder, path string) any {
		t.Helper()
		v, err := b.GetValue(path, nil)
		if err != nil {
			t.Fatal(err)
		}
		return ir.ToAny(v)
	}
	if got := get(b, "object.key"); got != int64(5) {
		t.Errorf("got %v", got)
	}
	if got := get(b, "object.kumbaja.er"); got != "honk" {
		t.Errorf("got %v", got)
	}
	if got := get(b, "object.kumbaja.k9"); got != nil {
		t.Errorf("got %v", got)
	}

	child := New(WithBaseKey("object."), WithParent(b))
	child.RegisterValue("object.clue", ir.FromInt(29))
	child.RegisterValue("clue", ir.FromInt(98))
	child.RegisterValue("object.key", ir.FromString("key"))

	for _, k := range []string{"object.clue", "object.object.clue", "object.key"} {
		if !child.TestKey(k) {
			t.Errorf("expected %s", k)
		}
	}
	if got := get(child, "object.clue"); got != int64(98) {
		t.Errorf("got %v", got)
	}
	if got := get(child, "object.object.clue"); got != int64(29) {
		t.Errorf("got %v", got)
	}
	if got := get(child, "object.key"); got != int64(5) {
		t.Errorf("got %v", got)
	}
	if got := get(child, "object.object.key"); got != "key" {
		t.Errorf("got %v", got)
	}
}

func TestPendingValues(t *testing.T) {
	b := New()
	b.RegisterValue("greet", ir.FromSegments([]ir.Segment{ir.Lit(ir.FromString("hi ")), ir.Ref("name")}))
	b.RegisterValue("list", ir.FromSlice([]*ir.Node{ir.FromSegments([]ir.Segment{ir.Ref("name")})}))
	if _, err := b.GetValue("greet", nil); !errors.Is(err, resolve.ErrUnresolved) {
		t.Errorf("got %v want %v", err, resolve.ErrUnresolved)
	}
	b.RegisterValue("name", ir.FromString("bob"))
	v, err := b.GetValue("greet", nil)
	if err != nil {
		t.Fatal(err)
	}
	if v.String != "hi bob" {
		t.Errorf("got %q", v.String)
	}
	v, err = b.GetValue("list", nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"bob"}, ir.ToAny(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if b.Root().Get("greet").Type != ir.PendingType {
		t.Errorf("reading must not rewrite the tree")
	}
}

func TestCycle(t *testing.T) {
	b := New()
	b.RegisterValue("a", ir.FromSegments([]ir.Segment{ir.Ref("b")}))
	b.RegisterValue("b", ir.FromSegments([]ir.Segment{ir.Ref("a")}))
	_, err := b.GetValue("a", nil)
	var ce *resolve.CycleErr
	if !errors.As(err, &ce) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "circular reference ${b}" && err.Error() != "circular reference ${a}" {
		t.Errorf("got %q", err.Error())
	}
}
