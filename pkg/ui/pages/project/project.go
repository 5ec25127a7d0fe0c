// Package project implements the project detail page.
package project

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/components/statusbar"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/components/tabs"
)

// BackMsg is emitted when the page wants to return to the dashboard.
type BackMsg struct{}

// RefreshMsg asks the page to re-read its project from the state container.
type RefreshMsg struct{}

type closeModalMsg struct{}

type deletedMsg struct{}

func refreshCmd() tea.Msg    { return RefreshMsg{} }
func closeModalCmd() tea.Msg { return closeModalMsg{} }
func deletedCmd() tea.Msg    { return deletedMsg{} }

type modal int

const (
	modalNone modal = iota
	modalAddFrame
	modalAddPeople
	modalSettings
	modalDelete
)

type tab int

const (
	tabHome tab = iota
	tabGroups
)

var tabNames = []string{"Home", "Groups"}

// Project is the project detail page.
type Project struct {
	common    common.Common
	project   proto.Project
	tabs      *tabs.Tabs
	activeTab tab
	statusbar *statusbar.StatusBar
	frame     *framePane
	frameIdx  int
	members   *membersPane
	board     *boardPane

	// Modal flags are mutually independent; only one dialog is open at a
	// time and closing it resets its fields.
	modal     modal
	addFrame  *addFrameModal
	addPeople *addPeopleModal
	settings  *settingsModal
	delete    *deleteModal
}

// New creates a new project page.
func New(c common.Common) *Project {
	p := &Project{
		common:    c,
		tabs:      tabs.New(c, tabNames),
		statusbar: statusbar.New(c),
		frame:     newFramePane(c),
		members:   newMembersPane(c),
		board:     newBoardPane(c),
		addFrame:  newAddFrameModal(c),
		addPeople: newAddPeopleModal(c),
		settings:  newSettingsModal(c),
		delete:    newDeleteModal(c),
	}
	p.SetSize(c.Width, c.Height)
	return p
}

// SetSize implements common.Component.
func (p *Project) SetSize(width, height int) {
	p.common.SetSize(width, height)
	p.tabs.SetSize(width, 1)
	p.statusbar.SetSize(width, 1)

	// Tabs, members line, and status bar take a row each.
	content := height - 3
	frameHeight := content * 3 / 5
	boardHeight := content - frameHeight
	if frameHeight < 3 {
		frameHeight = 3
	}
	if boardHeight < 2 {
		boardHeight = 2
	}
	p.frame.SetSize(width, frameHeight)
	p.members.SetSize(width, 1)
	p.board.SetSize(width, boardHeight)
}

// ShortHelp implements help.KeyMap.
func (p *Project) ShortHelp() []key.Binding {
	km := p.common.KeyMap
	if p.modal != modalNone {
		return []key.Binding{km.Select, km.Back}
	}
	return []key.Binding{
		km.Back,
		km.Edit,
		km.Message,
		km.Invite,
		km.Frame,
		km.Delete,
	}
}

// FullHelp implements help.KeyMap.
func (p *Project) FullHelp() [][]key.Binding {
	km := p.common.KeyMap
	return [][]key.Binding{
		{km.Back, km.Edit, km.Message},
		{km.Invite, km.Frame, km.Delete},
		{
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
			key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "select member")),
		},
	}
}

// Init implements tea.Model.
func (p *Project) Init() tea.Cmd {
	p.modal = modalNone
	p.activeTab = tabHome
	p.frameIdx = 0
	return tea.Batch(
		p.tabs.Init(),
		p.frame.Init(),
		p.board.Init(),
		p.refresh(),
	)
}

// refresh re-reads the active project from the state container.
func (p *Project) refresh() tea.Cmd {
	project, ok := p.common.Backend().Store().Current()
	if !ok {
		return func() tea.Msg { return BackMsg{} }
	}
	p.project = project

	if p.frameIdx >= len(project.Frames) {
		p.frameIdx = 0
	}
	if len(project.Frames) > 0 {
		p.frame.setFrame(project.ID, project.Frames[p.frameIdx])
	}
	p.members.setRoster(project.ID, project.Members)
	p.board.setMessages(project.ID, project.Messages)

	return func() tea.Msg {
		return statusbar.StatusBarMsg{
			Key:   project.Name,
			Value: fmt.Sprintf("%s → %s", project.StartDate, project.EndDate),
			Info:  fmt.Sprintf("%d members", len(project.Members)),
			Extra: capLabel(project.ParticipantCap),
		}
	}
}

// capLabel renders the display-only participant cap.
func capLabel(n int) string {
	if n <= 0 {
		return "no cap"
	}
	return fmt.Sprintf("cap %d", n)
}

// Update implements tea.Model.
func (p *Project) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case RefreshMsg:
		return p, p.refresh()
	case closeModalMsg:
		p.modal = modalNone
		return p, nil
	case deletedMsg:
		p.modal = modalNone
		return p, func() tea.Msg { return BackMsg{} }
	case statusbar.StatusBarMsg:
		s, cmd := p.statusbar.Update(msg)
		p.statusbar = s.(*statusbar.StatusBar)
		return p, cmd
	case tabs.ActiveTabMsg:
		p.activeTab = tab(msg)
		t, cmd := p.tabs.Update(msg)
		p.tabs = t.(*tabs.Tabs)
		return p, cmd
	case tea.KeyMsg:
		if p.modal != modalNone {
			if key.Matches(msg, p.common.KeyMap.Back) {
				p.modal = modalNone
				return p, nil
			}
			return p, p.updateModal(msg)
		}

		editing := p.frame.editing
		composing := p.board.composing
		if !editing && !composing {
			km := p.common.KeyMap
			switch {
			case key.Matches(msg, km.Back):
				return p, func() tea.Msg { return BackMsg{} }
			case key.Matches(msg, km.Edit) && p.activeTab == tabHome:
				return p, p.frame.startEdit()
			case key.Matches(msg, km.Message) && p.activeTab == tabHome:
				return p, p.board.startCompose()
			case key.Matches(msg, km.Invite):
				p.modal = modalAddPeople
				return p, p.addPeople.reset(p.project.ID)
			case key.Matches(msg, km.Frame):
				p.modal = modalAddFrame
				return p, p.addFrame.reset()
			case key.Matches(msg, km.Delete):
				p.modal = modalDelete
				p.delete.reset(p.project)
				return p, nil
			}
			switch msg.String() {
			case "s":
				p.modal = modalSettings
				return p, p.settings.reset(p.project)
			case "left":
				if p.activeTab == tabHome && len(p.project.Frames) > 0 {
					p.frameIdx = (p.frameIdx - 1 + len(p.project.Frames)) % len(p.project.Frames)
					p.frame.setFrame(p.project.ID, p.project.Frames[p.frameIdx])
					return p, nil
				}
			case "right":
				if p.activeTab == tabHome && len(p.project.Frames) > 0 {
					p.frameIdx = (p.frameIdx + 1) % len(p.project.Frames)
					p.frame.setFrame(p.project.ID, p.project.Frames[p.frameIdx])
					return p, nil
				}
			}

			t, cmd := p.tabs.Update(msg)
			p.tabs = t.(*tabs.Tabs)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}

			m, cmd := p.members.Update(msg)
			p.members = m.(*membersPane)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if p.modal == modalNone && p.activeTab == tabHome {
		// Keys go to exactly one pane while editing or composing, otherwise
		// both panes see them.
		if !p.board.composing {
			f, cmd := p.frame.Update(msg)
			p.frame = f.(*framePane)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

		if !p.frame.editing {
			b, cmd := p.board.Update(msg)
			p.board = b.(*boardPane)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return p, tea.Batch(cmds...)
}

func (p *Project) updateModal(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.modal {
	case modalAddFrame:
		m, c := p.addFrame.Update(msg)
		p.addFrame = m.(*addFrameModal)
		cmd = c
	case modalAddPeople:
		m, c := p.addPeople.Update(msg)
		p.addPeople = m.(*addPeopleModal)
		cmd = c
	case modalSettings:
		m, c := p.settings.Update(msg)
		p.settings = m.(*settingsModal)
		cmd = c
	case modalDelete:
		m, c := p.delete.Update(msg)
		p.delete = m.(*deleteModal)
		cmd = c
	}
	return cmd
}

// View implements tea.Model.
func (p *Project) View() string {
	if p.modal != modalNone {
		var box string
		switch p.modal {
		case modalAddFrame:
			box = p.addFrame.View()
		case modalAddPeople:
			box = p.addPeople.View()
		case modalSettings:
			box = p.settings.View()
		case modalDelete:
			box = p.delete.View()
		}
		return lipgloss.Place(p.common.Width, p.common.Height,
			lipgloss.Center, lipgloss.Center, box)
	}

	var body string
	switch p.activeTab {
	case tabHome:
		body = lipgloss.JoinVertical(lipgloss.Left,
			p.members.View(),
			p.frame.View(),
			p.board.View(),
		)
	case tabGroups:
		body = p.common.Styles.NoItems.Render("No groups yet.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		p.tabs.View(),
		body,
		p.statusbar.View(),
	)
}
