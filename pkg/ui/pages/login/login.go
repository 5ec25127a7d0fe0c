// Package login implements the login page.
package login

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// DoneMsg is emitted when a session has been opened.
type DoneMsg struct {
	User proto.User
}

const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// Login is the login page model.
type Login struct {
	common common.Common
	inputs [fieldCount]textinput.Model
	focus  int
	err    error
}

// New creates a new login page.
func New(c common.Common) *Login {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	l := &Login{
		common: c,
	}
	l.inputs[fieldEmail] = email
	l.inputs[fieldPassword] = password
	return l
}

// SetSize implements common.Component.
func (l *Login) SetSize(width, height int) {
	l.common.SetSize(width, height)
	for i := range l.inputs {
		l.inputs[i].Width = min(width-4, 48)
	}
}

// ShortHelp implements help.KeyMap.
func (l *Login) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		l.common.KeyMap.Select,
	}
}

// FullHelp implements help.KeyMap.
func (l *Login) FullHelp() [][]key.Binding {
	return [][]key.Binding{l.ShortHelp()}
}

// Init implements tea.Model.
func (l *Login) Init() tea.Cmd {
	l.reset()
	return textinput.Blink
}

func (l *Login) reset() {
	l.err = nil
	l.focus = fieldEmail
	for i := range l.inputs {
		l.inputs[i].SetValue("")
		l.inputs[i].Blur()
	}
	l.inputs[fieldEmail].Focus()
}

// Update implements tea.Model.
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				l.focus = (l.focus - 1 + fieldCount) % fieldCount
			} else {
				l.focus = (l.focus + 1) % fieldCount
			}
			for i := range l.inputs {
				if i == l.focus {
					cmds = append(cmds, l.inputs[i].Focus())
				} else {
					l.inputs[i].Blur()
				}
			}
		case "enter":
			return l, l.submit()
		}
	}

	for i := range l.inputs {
		var cmd tea.Cmd
		l.inputs[i], cmd = l.inputs[i].Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return l, tea.Batch(cmds...)
}

func (l *Login) submit() tea.Cmd {
	email := l.inputs[fieldEmail].Value()
	password := l.inputs[fieldPassword].Value()
	user, err := l.common.Backend().Login(l.common.Context(), email, password)
	if err != nil {
		// A failed attempt blocks on the form, it never leaves the page.
		l.err = err
		l.inputs[fieldPassword].SetValue("")
		return nil
	}

	l.reset()
	return func() tea.Msg {
		return DoneMsg{User: user}
	}
}

// View implements tea.Model.
func (l *Login) View() string {
	styles := l.common.Styles
	lines := []string{
		styles.FormLabel.Render("Sign in to continue"),
		"",
		l.inputs[fieldEmail].View(),
		l.inputs[fieldPassword].View(),
	}
	if l.err != nil {
		lines = append(lines, "", styles.FormError.Render(l.err.Error()))
	}
	lines = append(lines, "", styles.FormHelp.Render("try admin@example.com / admin"))

	form := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(l.common.Width, l.common.Height,
		lipgloss.Center, lipgloss.Center,
		styles.Dialog.Render(form),
	)
}
