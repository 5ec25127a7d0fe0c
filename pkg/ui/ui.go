// Package ui implements the terminal dashboard.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/components/footer"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/components/header"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/pages/dashboard"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/pages/login"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/pages/project"
)

type page int

const (
	loginPage page = iota
	dashboardPage
	projectPage
)

type sessionState int

const (
	startState sessionState = iota
	errorState
	loadedState
)

// UI is the main UI model.
type UI struct {
	common     common.Common
	pages      []common.Page
	activePage page
	state      sessionState
	header     *header.Header
	footer     *footer.Footer
	showFooter bool
	error      error
}

// New returns a new UI model.
func New(c common.Common) *UI {
	h := header.New(c, c.Config().Name)
	ui := &UI{
		common:     c,
		pages:      make([]common.Page, 3),
		activePage: loginPage,
		state:      startState,
		header:     h,
		showFooter: true,
	}
	ui.footer = footer.New(c, ui)
	return ui
}

func (ui *UI) getMargins() (wm, hm int) {
	wm = ui.common.Styles.App.GetHorizontalFrameSize()
	hm = ui.common.Styles.App.GetVerticalFrameSize() +
		ui.common.Styles.Header.GetHeight() + 1
	if ui.showFooter {
		hm += ui.footer.Height()
	}
	return
}

// ShortHelp implements help.KeyMap.
func (ui *UI) ShortHelp() []key.Binding {
	b := make([]key.Binding, 0)
	if ui.pages[ui.activePage] != nil {
		b = append(b, ui.pages[ui.activePage].ShortHelp()...)
	}
	b = append(b, ui.common.KeyMap.Help, ui.common.KeyMap.Quit)
	return b
}

// FullHelp implements help.KeyMap.
func (ui *UI) FullHelp() [][]key.Binding {
	b := make([][]key.Binding, 0)
	if ui.pages[ui.activePage] != nil {
		b = append(b, ui.pages[ui.activePage].FullHelp()...)
	}
	b = append(b, []key.Binding{ui.common.KeyMap.Help, ui.common.KeyMap.Quit})
	return b
}

// SetSize implements common.Component.
func (ui *UI) SetSize(width, height int) {
	ui.common.SetSize(width, height)
	wm, hm := ui.getMargins()
	ui.header.SetSize(width-wm, 1)
	ui.footer.SetSize(width-wm, 1)
	for _, p := range ui.pages {
		if p != nil {
			p.SetSize(width-wm, height-hm)
		}
	}
}

// Init implements tea.Model.
func (ui *UI) Init() tea.Cmd {
	ui.pages[loginPage] = login.New(ui.common)
	ui.pages[dashboardPage] = dashboard.New(ui.common)
	ui.pages[projectPage] = project.New(ui.common)
	ui.SetSize(ui.common.Width, ui.common.Height)
	ui.state = loadedState

	// A stored session skips the login page.
	if _, ok := ui.common.Backend().RestoreSession(ui.common.Context()); ok {
		ui.activePage = dashboardPage
	}

	return ui.pages[ui.activePage].Init()
}

// Update implements tea.Model.
func (ui *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.SetSize(msg.Width, msg.Height)
		for i, p := range ui.pages {
			m, cmd := p.Update(msg)
			ui.pages[i] = m.(common.Page)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return ui, tea.Batch(cmds...)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ui.common.KeyMap.Back) && ui.error != nil:
			ui.error = nil
			ui.state = loadedState
		case key.Matches(msg, ui.common.KeyMap.Help):
			ui.footer.SetShowAll(!ui.footer.ShowAll())
			ui.SetSize(ui.common.Width, ui.common.Height)
			return ui, nil
		case key.Matches(msg, ui.common.KeyMap.Quit):
			return ui, tea.Quit
		}
	case common.ErrorMsg:
		ui.error = msg
		ui.state = errorState
		return ui, nil
	case login.DoneMsg:
		return ui, ui.switchPage(dashboardPage)
	case dashboard.SelectMsg:
		return ui, ui.switchPage(projectPage)
	case dashboard.LogoutMsg:
		return ui, ui.switchPage(loginPage)
	case project.BackMsg:
		ui.common.Backend().Store().ClearCurrent()
		return ui, ui.switchPage(dashboardPage)
	}

	m, cmd := ui.pages[ui.activePage].Update(msg)
	ui.pages[ui.activePage] = m.(common.Page)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return ui, tea.Batch(cmds...)
}

func (ui *UI) switchPage(p page) tea.Cmd {
	// Dashboard and project pages need an open session; try the stored
	// token before bouncing to login.
	if p != loginPage {
		if _, ok := ui.common.Backend().RestoreSession(ui.common.Context()); !ok {
			p = loginPage
		}
	}

	ui.activePage = p
	return ui.pages[p].Init()
}

// View implements tea.Model.
func (ui *UI) View() string {
	var view string
	switch ui.state {
	case startState:
		view = "Loading..."
	case errorState:
		err := ui.common.Styles.ErrorTitle.Render("Bummer")
		err += ui.common.Styles.ErrorBody.Render(ui.error.Error())
		view = ui.common.Styles.Error.Render(err)
	case loadedState:
		parts := []string{
			ui.header.View(),
			ui.pages[ui.activePage].View(),
		}
		if ui.showFooter {
			parts = append(parts, ui.footer.View())
		}
		view = lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		view = "Unknown state :/ this is a bug!"
	}
	return ui.common.Styles.App.Render(view)
}
