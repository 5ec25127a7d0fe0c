// Package tabs implements a horizontal tab strip.
package tabs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// SelectTabMsg is a message that selects a tab by index.
type SelectTabMsg int

// ActiveTabMsg is a message that notifies listeners of the active tab.
type ActiveTabMsg int

// Tabs is a tab strip component.
type Tabs struct {
	common    common.Common
	tabs      []string
	activeTab int
}

// New creates a new tab strip with the given tab names.
func New(c common.Common, tabs []string) *Tabs {
	return &Tabs{
		common:    c,
		tabs:      tabs,
		activeTab: 0,
	}
}

// SetSize implements common.Component.
func (t *Tabs) SetSize(width, height int) {
	t.common.SetSize(width, height)
}

// Init implements tea.Model.
func (t *Tabs) Init() tea.Cmd {
	t.activeTab = 0
	return nil
}

// Update implements tea.Model.
func (t *Tabs) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			t.activeTab = (t.activeTab + 1) % len(t.tabs)
			cmds = append(cmds, t.activeTabCmd)
		case "shift+tab":
			t.activeTab = (t.activeTab - 1 + len(t.tabs)) % len(t.tabs)
			cmds = append(cmds, t.activeTabCmd)
		}
	case SelectTabMsg:
		tab := int(msg)
		if tab >= 0 && tab < len(t.tabs) {
			t.activeTab = tab
		}
	}
	return t, tea.Batch(cmds...)
}

// View implements tea.Model.
func (t *Tabs) View() string {
	s := strings.Builder{}
	sep := t.common.Styles.TabSeparator
	for i, tab := range t.tabs {
		style := t.common.Styles.TabInactive
		if i == t.activeTab {
			style = t.common.Styles.TabActive
		}
		s.WriteString(style.Render(tab))
		if i != len(t.tabs)-1 {
			s.WriteString(sep.String())
		}
	}
	return t.common.Styles.Tabs.Render(s.String())
}

func (t *Tabs) activeTabCmd() tea.Msg {
	return ActiveTabMsg(t.activeTab)
}

// SelectTabCmd is a command that selects the tab at the given index.
func SelectTabCmd(tab int) tea.Cmd {
	return func() tea.Msg {
		return SelectTabMsg(tab)
	}
}
