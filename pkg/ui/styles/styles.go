package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// XXX: This is in its own package so that it can be shared between
// different packages without incurring an illegal import cycle.

// Styles defines styles for the UI.
type Styles struct {
	ActiveBorderColor   lipgloss.Color
	InactiveBorderColor lipgloss.Color

	App    lipgloss.Style
	Header lipgloss.Style

	Footer      lipgloss.Style
	HelpKey     lipgloss.Style
	HelpValue   lipgloss.Style
	HelpDivider lipgloss.Style

	Error      lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorBody  lipgloss.Style

	Tabs         lipgloss.Style
	TabInactive  lipgloss.Style
	TabActive    lipgloss.Style
	TabSeparator lipgloss.Style

	FormLabel lipgloss.Style
	FormError lipgloss.Style
	FormHelp  lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	ItemSelector lipgloss.Style
	ItemActive   lipgloss.Style
	ItemInactive lipgloss.Style
	ItemDetail   lipgloss.Style
	NoItems      lipgloss.Style

	ColorSwatch lipgloss.Style

	StatusBar       lipgloss.Style
	StatusBarKey    lipgloss.Style
	StatusBarValue  lipgloss.Style
	StatusBarInfo   lipgloss.Style
	StatusBarBranch lipgloss.Style

	FrameBox   lipgloss.Style
	FrameTitle lipgloss.Style

	Online  lipgloss.Style
	Offline lipgloss.Style

	MessageAuthor lipgloss.Style
	MessageTime   lipgloss.Style
	MessageBody   lipgloss.Style
}

// DefaultStyles returns default styles for the UI.
func DefaultStyles() *Styles {
	s := new(Styles)

	s.ActiveBorderColor = lipgloss.Color("62")
	s.InactiveBorderColor = lipgloss.Color("241")

	s.App = lipgloss.NewStyle().
		Margin(1, 2)

	s.Header = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Height(1).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Height(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.HelpValue = lipgloss.NewStyle().
		Foreground(lipgloss.Color("239"))

	s.HelpDivider = lipgloss.NewStyle().
		Foreground(lipgloss.Color("237")).
		SetString(" • ")

	s.Error = lipgloss.NewStyle().
		Padding(1)

	s.ErrorTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("204")).
		Bold(true).
		Padding(0, 1)

	s.ErrorBody = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		MarginLeft(2).
		Width(52)

	s.Tabs = lipgloss.NewStyle().
		Height(1)

	s.TabInactive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.TabActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Underline(true)

	s.TabSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		SetString(" │ ")

	s.FormLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	s.FormError = lipgloss.NewStyle().
		Foreground(lipgloss.Color("204"))

	s.FormHelp = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.ActiveBorderColor).
		Padding(1, 2)

	s.DialogTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true).
		MarginBottom(1)

	s.ItemInactive = lipgloss.NewStyle().
		MarginLeft(1)

	s.ItemSelector = s.ItemInactive.
		Width(1).
		Foreground(lipgloss.Color("#B083EA"))

	s.ItemActive = s.ItemInactive.
		Bold(true)

	s.ItemDetail = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.NoItems = lipgloss.NewStyle().
		MarginTop(1).
		MarginLeft(2).
		Foreground(lipgloss.Color("#626262"))

	s.ColorSwatch = lipgloss.NewStyle().
		SetString("██")

	s.StatusBar = lipgloss.NewStyle().
		Height(1)

	s.StatusBarKey = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(lipgloss.Color("206")).
		Foreground(lipgloss.Color("228"))

	s.StatusBarValue = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("243"))

	s.StatusBarInfo = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("212")).
		Foreground(lipgloss.Color("230"))

	s.StatusBarBranch = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230"))

	s.FrameBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(s.InactiveBorderColor).
		Padding(0, 1)

	s.FrameTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Bold(true)

	s.Online = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00D787")).
		SetString("●")

	s.Offline = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		SetString("○")

	s.MessageAuthor = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	s.MessageTime = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	s.MessageBody = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	return s
}
