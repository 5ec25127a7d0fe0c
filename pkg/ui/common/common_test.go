package common_test

import (
	"testing"

	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

func TestTruncateString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := common.TruncateString(c.in, c.max); got != c.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
			}
		})
	}
}

func TestWrapString(t *testing.T) {
	if got := common.WrapString("one two three", 7); got != "one two\nthree" {
		t.Errorf("WrapString() = %q", got)
	}
	if got := common.WrapString("unchanged", 0); got != "unchanged" {
		t.Errorf("WrapString with zero width = %q", got)
	}
}
