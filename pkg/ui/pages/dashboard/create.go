package dashboard

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/components/dialog"
)

// projectColors is the palette cycled through when creating a project.
var projectColors = []string{
	"#3b82f6",
	"#10b981",
	"#a855f7",
	"#f97316",
	"#ef4444",
	"#eab308",
}

// CreatedMsg is emitted when a project has been created.
type CreatedMsg struct {
	Project proto.Project
}

const (
	createName = iota
	createStart
	createEnd
	createCap
	createFieldCount
)

// createModal is the create-project dialog.
type createModal struct {
	common   common.Common
	inputs   [createFieldCount]textinput.Model
	focus    int
	colorIdx int
	err      error
}

func newCreateModal(c common.Common) *createModal {
	m := &createModal{common: c}

	name := textinput.New()
	name.Placeholder = "project name"
	name.CharLimit = 80

	start := textinput.New()
	start.Placeholder = "start date (2026-01-01)"

	end := textinput.New()
	end.Placeholder = "end date (2026-06-30)"

	capacity := textinput.New()
	capacity.Placeholder = "participant cap (optional)"

	m.inputs[createName] = name
	m.inputs[createStart] = start
	m.inputs[createEnd] = end
	m.inputs[createCap] = capacity
	return m
}

// reset clears the form. Closing a modal always drops whatever was typed.
func (m *createModal) reset() {
	m.err = nil
	m.focus = createName
	m.colorIdx = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[createName].Focus()
}

func (m *createModal) SetSize(width, height int) {
	m.common.SetSize(width, height)
	for i := range m.inputs {
		m.inputs[i].Width = min(width-8, 40)
	}
}

func (m *createModal) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *createModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			cmds = append(cmds, m.setFocus((m.focus+1)%createFieldCount))
		case "shift+tab", "up":
			cmds = append(cmds, m.setFocus((m.focus-1+createFieldCount)%createFieldCount))
		case "left":
			m.colorIdx = (m.colorIdx - 1 + len(projectColors)) % len(projectColors)
			return m, nil
		case "right":
			m.colorIdx = (m.colorIdx + 1) % len(projectColors)
			return m, nil
		case "enter":
			return m, m.submit()
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

func (m *createModal) setFocus(focus int) tea.Cmd {
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

func (m *createModal) submit() tea.Cmd {
	capacity, _ := strconv.Atoi(m.inputs[createCap].Value())
	p, err := m.common.Backend().CreateProject(
		m.common.Context(),
		m.inputs[createName].Value(),
		projectColors[m.colorIdx],
		m.inputs[createStart].Value(),
		m.inputs[createEnd].Value(),
		capacity,
	)
	if err != nil {
		m.err = err
		return nil
	}

	return func() tea.Msg {
		return CreatedMsg{Project: p}
	}
}

func (m *createModal) View() string {
	styles := m.common.Styles

	swatches := make([]string, 0, len(projectColors))
	for i, c := range projectColors {
		swatch := styles.ColorSwatch.Foreground(lipgloss.Color(c)).String()
		if i == m.colorIdx {
			swatch = lipgloss.NewStyle().Underline(true).Render(swatch)
		}
		swatches = append(swatches, swatch)
	}

	lines := []string{
		m.inputs[createName].View(),
		m.inputs[createStart].View(),
		m.inputs[createEnd].View(),
		m.inputs[createCap].View(),
		"",
		styles.FormLabel.Render("color ") + lipgloss.JoinHorizontal(lipgloss.Top, swatches...),
	}
	if m.err != nil {
		lines = append(lines, "", styles.FormError.Render(m.err.Error()))
	}
	lines = append(lines, "", styles.FormHelp.Render("enter create · esc cancel · ←/→ color"))

	return dialog.Render(m.common, "New project", lines...)
}
