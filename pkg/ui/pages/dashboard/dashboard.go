// Package dashboard implements the project overview page.
package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// SelectMsg is emitted when a project is opened.
type SelectMsg string

// LogoutMsg is emitted when the session has been closed.
type LogoutMsg struct{}

// Dashboard is the project overview page.
type Dashboard struct {
	common common.Common
	list   list.Model
	create *createModal
	// createOpen is independent of any other modal flag.
	createOpen bool
}

// New creates a new dashboard page.
func New(c common.Common) *Dashboard {
	d := &Dashboard{
		common: c,
		create: newCreateModal(c),
	}

	l := list.New(nil, ItemDelegate{&d.common}, c.Width, c.Height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	d.list = l

	d.SetSize(c.Width, c.Height)
	return d
}

// SetSize implements common.Component.
func (d *Dashboard) SetSize(width, height int) {
	d.common.SetSize(width, height)
	d.list.SetSize(width, height)
	d.create.SetSize(width, height)
}

// ShortHelp implements help.KeyMap.
func (d *Dashboard) ShortHelp() []key.Binding {
	if d.createOpen {
		return []key.Binding{d.common.KeyMap.Select, d.common.KeyMap.Back}
	}
	return []key.Binding{
		d.common.KeyMap.Select,
		d.common.KeyMap.Create,
		d.common.KeyMap.Logout,
	}
}

// FullHelp implements help.KeyMap.
func (d *Dashboard) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	d.createOpen = false
	return d.refresh()
}

// refresh rebuilds the list from the state container.
func (d *Dashboard) refresh() tea.Cmd {
	projects := d.common.Backend().Store().Projects()
	items := make([]list.Item, 0, len(projects))
	for _, p := range projects {
		items = append(items, Item{project: p})
	}
	return d.list.SetItems(items)
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	if d.createOpen {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if key.Matches(msg, d.common.KeyMap.Back) {
				d.createOpen = false
				d.create.reset()
				return d, nil
			}
		case CreatedMsg:
			d.createOpen = false
			d.create.reset()
			return d, d.refresh()
		}
		m, cmd := d.create.Update(msg)
		d.create = m.(*createModal)
		return d, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.common.KeyMap.Create):
			d.createOpen = true
			return d, d.create.Init()
		case key.Matches(msg, d.common.KeyMap.Logout):
			d.common.Backend().Logout(d.common.Context())
			return d, func() tea.Msg { return LogoutMsg{} }
		case key.Matches(msg, d.common.KeyMap.Select):
			if item, ok := d.list.SelectedItem().(Item); ok {
				d.common.Backend().Store().SetCurrent(item.ID())
				id := item.ID()
				return d, func() tea.Msg { return SelectMsg(id) }
			}
		}
	}

	m, cmd := d.list.Update(msg)
	d.list = m
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return d, tea.Batch(cmds...)
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	if d.createOpen {
		return lipgloss.Place(d.common.Width, d.common.Height,
			lipgloss.Center, lipgloss.Center, d.create.View())
	}

	if len(d.list.Items()) == 0 {
		return d.common.Styles.NoItems.Render("No projects yet. Press n to create one.")
	}
	return d.list.View()
}
