package fmtx

import (
	"bytes"
	"testing"
)

func TestSprintfVerbs(t *testing.T) {
	type C struct {
		fmt  string
		args []any
		want string
	}
	for _, c := range []C{
		{"%s: %d", []any{"red", uint32(15)}, "red: 15"},
		{"frame rate: %d", []any{uint32(100)}, "frame rate: 100"},
		{"tick=%dus", []any{int64(2083)}, "tick=2083us"},
		{"bool %t", []any{true}, "bool true"},
		{"literal %%", nil, "literal %"},
		{"[%3d]", []any{7}, "[  7]"},
	} {
		if got := Sprintf(c.fmt, c.args...); got != c.want {
			t.Fatalf("Sprintf(%q, ...) = %q, want %q", c.fmt, got, c.want)
		}
	}
}

func TestFprintf(t *testing.T) {
	var buf bytes.Buffer
	n, err := Fprintf(&buf, "%s: %d\n", "blue", 3)
	if err != nil {
		t.Fatalf("Fprintf error: %v", err)
	}
	if got, want := buf.String(), "blue: 3\n"; got != want || n != len(want) {
		t.Fatalf("Fprintf wrote %q (%d bytes), want %q", got, n, want)
	}
}
