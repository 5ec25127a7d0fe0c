// Package statusbar implements the status line shown below a page.
package statusbar

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// StatusBarMsg updates the status bar segments.
type StatusBarMsg struct {
	Key   string
	Value string
	Info  string
	Extra string
}

// StatusBar is a four-segment status line.
type StatusBar struct {
	common common.Common
	msg    StatusBarMsg
}

// New creates a new status bar.
func New(c common.Common) *StatusBar {
	return &StatusBar{
		common: c,
	}
}

// SetSize implements common.Component.
func (s *StatusBar) SetSize(width, height int) {
	s.common.SetSize(width, height)
}

// Init implements tea.Model.
func (s *StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *StatusBar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusBarMsg:
		s.msg = msg
	}
	return s, nil
}

// View implements tea.Model.
func (s *StatusBar) View() string {
	st := s.common.Styles
	w := lipgloss.Width
	key := st.StatusBarKey.Render(s.msg.Key)
	info := st.StatusBarInfo.Render(s.msg.Info)
	extra := st.StatusBarBranch.Render(s.msg.Extra)
	maxWidth := s.common.Width - w(key) - w(info) - w(extra)
	value := st.StatusBarValue.
		Width(maxWidth).
		Render(common.TruncateString(s.msg.Value, maxWidth-2))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		key,
		value,
		info,
		extra,
	)
}
