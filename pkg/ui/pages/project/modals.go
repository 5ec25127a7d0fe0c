package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/components/dialog"
)

// frameType is an entry in the add-frame catalog.
type frameType struct {
	id          string
	name        string
	description string
}

var frameTypes = []frameType{
	{"standard", "Standard Frame", "Introduction text, attachments, and discussion board"},
	{"discussion", "Discussion Board", "Master discussion board for general project conversation"},
	{"leaderboard", "Points Leaderboard", "Show top contributors with point scores"},
	{"members", "Members List", "Display all project participants"},
	{"visual", "Visual Frame", "Mood board with resizable visual tiles"},
}

// addFrameModal picks a frame type and title. Confirming records the choice
// in the log and closes the dialog without inserting a frame.
type addFrameModal struct {
	common common.Common
	title  textinput.Model
	index  int
}

func newAddFrameModal(c common.Common) *addFrameModal {
	title := textinput.New()
	title.Placeholder = "frame title"
	title.CharLimit = 80
	return &addFrameModal{common: c, title: title}
}

func (m *addFrameModal) Init() tea.Cmd {
	return nil
}

func (m *addFrameModal) reset() tea.Cmd {
	m.index = 0
	m.title.SetValue("")
	return m.title.Focus()
}

func (m *addFrameModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			m.index = (m.index - 1 + len(frameTypes)) % len(frameTypes)
			return m, nil
		case "down":
			m.index = (m.index + 1) % len(frameTypes)
			return m, nil
		case "enter":
			m.common.Logger.Info("adding frame",
				"type", frameTypes[m.index].id,
				"title", m.title.Value())
			return m, closeModalCmd
		}
	}
	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

func (m *addFrameModal) View() string {
	styles := m.common.Styles
	lines := make([]string, 0, len(frameTypes)+4)
	for i, ft := range frameTypes {
		name := styles.ItemInactive.Render(ft.name)
		if i == m.index {
			name = styles.ItemActive.Render("> " + ft.name)
		}
		lines = append(lines, name, "  "+styles.ItemDetail.Render(ft.description))
	}
	lines = append(lines, "", m.title.View(), "",
		styles.FormHelp.Render("enter add · esc cancel"))
	return dialog.Render(m.common, "Add frame", lines...)
}

// addPeopleModal invites people by email. Every confirmed address is added
// to the directory (if new) and to the project roster.
type addPeopleModal struct {
	common    common.Common
	projectID string
	email     textinput.Model
	role      access.Role
	invited   []string
	err       error
}

func newAddPeopleModal(c common.Common) *addPeopleModal {
	email := textinput.New()
	email.Placeholder = "email address"
	email.CharLimit = 254
	return &addPeopleModal{common: c, email: email, role: access.RoleParticipant}
}

func (m *addPeopleModal) Init() tea.Cmd {
	return nil
}

func (m *addPeopleModal) reset(projectID string) tea.Cmd {
	m.projectID = projectID
	m.role = access.RoleParticipant
	m.invited = nil
	m.err = nil
	m.email.SetValue("")
	return m.email.Focus()
}

func (m *addPeopleModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right":
			if m.role == access.RoleParticipant {
				m.role = access.RoleAdmin
			} else {
				m.role = access.RoleParticipant
			}
			return m, nil
		case "enter":
			email := strings.TrimSpace(m.email.Value())
			if email == "" || !strings.Contains(email, "@") {
				m.err = fmt.Errorf("%w: email", proto.ErrMissingField)
				return m, nil
			}
			member := m.common.Backend().InviteToProject(m.common.Context(), m.projectID, email, m.role)
			m.invited = append(m.invited, member.Email)
			m.err = nil
			m.email.SetValue("")
			return m, refreshCmd
		}
	}
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return m, cmd
}

func (m *addPeopleModal) View() string {
	styles := m.common.Styles
	lines := []string{
		m.email.View(),
		styles.FormLabel.Render("role ") + styles.ItemActive.Render(m.role.String()) +
			styles.FormHelp.Render("  (←/→ toggle)"),
	}
	if len(m.invited) > 0 {
		lines = append(lines, "", styles.FormLabel.Render("invited: ")+strings.Join(m.invited, ", "))
	}
	if m.err != nil {
		lines = append(lines, "", styles.FormError.Render(m.err.Error()))
	}
	lines = append(lines, "", styles.FormHelp.Render("enter invite · esc done"))
	return dialog.Render(m.common, "Add people", lines...)
}

// settingsModal edits the project record wholesale.
type settingsModal struct {
	common  common.Common
	project proto.Project
	inputs  [4]textinput.Model
	focus   int
	err     error
}

func newSettingsModal(c common.Common) *settingsModal {
	m := &settingsModal{common: c}
	placeholders := []string{"project name", "start date", "end date", "participant cap"}
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		m.inputs[i] = in
	}
	return m
}

func (m *settingsModal) Init() tea.Cmd {
	return nil
}

func (m *settingsModal) reset(p proto.Project) tea.Cmd {
	m.project = p
	m.err = nil
	m.focus = 0
	m.inputs[0].SetValue(p.Name)
	m.inputs[1].SetValue(p.StartDate)
	m.inputs[2].SetValue(p.EndDate)
	m.inputs[3].SetValue(strconv.Itoa(p.ParticipantCap))
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[0].Focus()
}

func (m *settingsModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			cmds = append(cmds, m.setFocus((m.focus+1)%len(m.inputs)))
		case "shift+tab", "up":
			cmds = append(cmds, m.setFocus((m.focus-1+len(m.inputs))%len(m.inputs)))
		case "enter":
			updated := m.project
			updated.Name = m.inputs[0].Value()
			updated.StartDate = m.inputs[1].Value()
			updated.EndDate = m.inputs[2].Value()
			updated.ParticipantCap, _ = strconv.Atoi(m.inputs[3].Value())
			if err := updated.Validate(); err != nil {
				m.err = err
				return m, nil
			}
			m.common.Backend().UpdateProject(m.common.Context(), updated)
			return m, tea.Batch(closeModalCmd, refreshCmd)
		}
	}

	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *settingsModal) setFocus(focus int) tea.Cmd {
	m.focus = focus
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *settingsModal) View() string {
	styles := m.common.Styles
	lines := make([]string, 0, len(m.inputs)+3)
	for i := range m.inputs {
		lines = append(lines, m.inputs[i].View())
	}
	if m.err != nil {
		lines = append(lines, "", styles.FormError.Render(m.err.Error()))
	}
	lines = append(lines, "", styles.FormHelp.Render("enter save · esc cancel"))
	return dialog.Render(m.common, "Project settings", lines...)
}

// deleteModal is a destructive-action confirmation.
type deleteModal struct {
	common  common.Common
	project proto.Project
}

func newDeleteModal(c common.Common) *deleteModal {
	return &deleteModal{common: c}
}

func (m *deleteModal) Init() tea.Cmd {
	return nil
}

func (m *deleteModal) reset(p proto.Project) {
	m.project = p
}

func (m *deleteModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			m.common.Backend().DeleteProject(m.common.Context(), m.project.ID)
			return m, deletedCmd
		case "n":
			return m, closeModalCmd
		}
	}
	return m, nil
}

func (m *deleteModal) View() string {
	styles := m.common.Styles
	return dialog.Render(m.common, "Delete project",
		fmt.Sprintf("Delete %q and everything it owns?", m.project.Name),
		"",
		styles.FormHelp.Render("y/enter delete · n/esc cancel"),
	)
}
