package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/hocon/ir"
)

func TestEnvFunc(t *testing.T) {
	env := ir.NewObject()
	for _, a := range []string{"server.port=8080", "debug=true", "name=app", "tags=[a, b]", "empty="} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	want := map[string]any{
		"server": map[string]any{"port": int64(8080)},
		"debug":  true,
		"name":   "app",
		"tags":   []any{"a", "b"},
		"empty":  nil,
	}
	if diff := cmp.Diff(want, ir.ToAny(env)); diff != "" {
		t.Errorf("env (-want +got):\n%s", diff)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Error("expected a usage error")
	}
}

func TestLoadLayers(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "conf.d")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join(dir, "base.conf"):   "a = base\nb = base\nc = base\n",
		filepath.Join(sub, "10.json"):     `{"b": "dir"}`,
		filepath.Join(sub, "20.conf"):     "c = ${a}-dir\n",
		filepath.Join(dir, "last.config"): "a = last\n",
	}
	for p, c := range files {
		if err := os.WriteFile(p, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("HOCON_OVERRIDES", "")
	cfg := &MainConfig{Env: ir.NewObject()}
	if err := envFunc(cfg.Env, "d=over"); err != nil {
		t.Fatal(err)
	}
	c, err := cfg.load(nil, []string{filepath.Join(dir, "base.conf"), sub, filepath.Join(dir, "last.config")})
	if err != nil {
		t.Fatal(err)
	}
	root, err := c.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a": "last", "b": "dir", "c": "last-dir", "d": "over"}
	if diff := cmp.Diff(want, ir.ToAny(root)); diff != "" {
		t.Errorf("layers (-want +got):\n%s", diff)
	}
	if _, err := cfg.load(nil, []string{filepath.Join(dir, "missing.conf")}); err == nil {
		t.Error("expected an error for a missing input")
	}
}
