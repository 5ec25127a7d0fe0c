// Package header implements the page header.
package header

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// Header is a single-line page header.
type Header struct {
	common common.Common
	text   string
}

// New creates a new header with the given text.
func New(c common.Common, text string) *Header {
	return &Header{
		common: c,
		text:   text,
	}
}

// SetText sets the header text.
func (h *Header) SetText(text string) {
	h.text = text
}

// SetSize implements common.Component.
func (h *Header) SetSize(width, height int) {
	h.common.SetSize(width, height)
}

// Init implements tea.Model.
func (h *Header) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (h *Header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

// View implements tea.Model.
func (h *Header) View() string {
	s := h.common.Styles.Header.Width(h.common.Width)
	return s.Render(strings.TrimSpace(h.text))
}
