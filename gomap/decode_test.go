package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-format/hocon/ir"
)

type server struct {
	Host    string   `json:"host"`
	Port    int      `json:"port"`
	Ratio   float64  `json:"ratio"`
	Tags    []string `json:"tags"`
	Enabled bool
}

type upper string

func (u *upper) FromIR(n *ir.Node) error {
	*u = upper("UP:" + n.Text())
	return nil
}

func TestFromIR(t *testing.T) {
	n := ir.FromKeyVals(
		"host", "example.com",
		"port", 8080,
		"ratio", 0.5,
		"tags", ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")}),
		"enabled", true,
	)
	var got server
	if err := FromIR(n, &got); err != nil {
		t.Fatal(err)
	}
	want := server{Host: "example.com", Port: 8080, Ratio: 0.5, Tags: []string{"a", "b"}, Enabled: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	n.Set("extra", ir.FromInt(1))
	if err := FromIR(n, &got, Strict(true)); err == nil {
		t.Error("strict decoding accepted an unknown key")
	}

	var u upper
	if err := FromIR(ir.FromString("x"), &u); err != nil || u != "UP:x" {
		t.Errorf("got %q, %v", u, err)
	}

	pending := ir.FromSegments([]ir.Segment{ir.Ref("a")})
	if err := FromIR(pending, &got); !errors.Is(err, ir.ErrUnsupported) {
		t.Errorf("pending: got %v", err)
	}
}
