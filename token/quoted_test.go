package token

import (
	"errors"
	"testing"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
		err      error
	}{
		{in: `plain`, want: "plain"},
		{in: `tab\there`, want: "tab\there"},
		{in: `été`, want: "été"},
		{in: `😀`, want: "😀"},
		{in: `slash\/`, want: "slash/"},
		{in: `bad\q`, err: ErrBadEscape},
		{in: `bad\u12`, err: ErrBadUnicode},
		{in: `trailing\`, err: ErrBadEscape},
	}
	for _, tc := range tests {
		got, err := Unquote(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%q: got err %v want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a\"b", "line\nbreak", "\x01ctl", "ünï"} {
		q := Quote(s)
		got, err := Unquote(q[1 : len(q)-1])
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("got %q want %q", got, s)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := map[string]bool{
		"":          true,
		"abc":       false,
		"a b":       true,
		"42":        true,
		"4.5e3":     true,
		"null":      true,
		"true":      true,
		"${x}":      true,
		"http://x":  true,
		"x-y_z.w":   false,
		"trailing ": true,
	}
	for in, want := range tests {
		if got := NeedsQuote(in); got != want {
			t.Errorf("%q: got %v want %v", in, got, want)
		}
	}
	if !KeyNeedsQuote("a.b") {
		t.Errorf("dotted key segment must be quoted")
	}
}

func TestNumbers(t *testing.T) {
	ints := map[string]bool{
		"0": true, "-0": true, "+5": true, "42": true, "007": false,
		"1.0": false, "": false, "-": false, "99999999999999999999": false,
	}
	for in, want := range ints {
		if got := IsInt(in); got != want {
			t.Errorf("IsInt(%q): got %v want %v", in, got, want)
		}
	}
	floats := map[string]bool{
		"5.89": true, ".5": true, "5.": true, "-1e3": true, "1E-2": true,
		"e3": false, "1e": false, "007": false, "0.5": true, "1.2.3": false, "abc": false, ".": false,
	}
	for in, want := range floats {
		if got := IsFloat(in); got != want {
			t.Errorf("IsFloat(%q): got %v want %v", in, got, want)
		}
	}
}
