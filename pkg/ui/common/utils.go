package common

import (
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// TruncateString is a convenient wrapper around truncate.StringWithTail.
func TruncateString(s string, max int) string { //nolint:revive
	if max < 0 {
		max = 0 //nolint:revive
	}
	return truncate.StringWithTail(s, uint(max), "…")
}

// WrapString word-wraps a string to the given width.
func WrapString(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
