// Package dialog renders modal dialog boxes. A dialog replaces the page
// content while it is open; pages track their own open/closed flags.
package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// Render renders a titled dialog box around the given body lines.
func Render(c common.Common, title string, lines ...string) string {
	var b strings.Builder
	b.WriteString(c.Styles.DialogTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	return c.Styles.Dialog.Render(b.String())
}

// Place centers a dialog box within the page.
func Place(c common.Common, box string) string {
	return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, box)
}
