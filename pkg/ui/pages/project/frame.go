package project

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// framePane shows a project frame with its content rendered as markdown.
// Pressing edit swaps the viewport for a textarea writing through the
// frame-update operation.
type framePane struct {
	common    common.Common
	viewport  viewport.Model
	editor    textarea.Model
	editing   bool
	projectID string
	frame     proto.Frame
}

func newFramePane(c common.Common) *framePane {
	editor := textarea.New()
	editor.Placeholder = "frame content"
	editor.CharLimit = 0

	return &framePane{
		common:   c,
		viewport: viewport.New(c.Width, c.Height),
		editor:   editor,
	}
}

func (f *framePane) SetSize(width, height int) {
	f.common.SetSize(width, height)
	frameStyle := f.common.Styles.FrameBox
	w := width - frameStyle.GetHorizontalFrameSize()
	h := height - frameStyle.GetVerticalFrameSize() - 1
	if h < 1 {
		h = 1
	}
	f.viewport.Width = w
	f.viewport.Height = h
	f.editor.SetWidth(w)
	f.editor.SetHeight(h)
	f.renderContent()
}

func (f *framePane) setFrame(projectID string, frame proto.Frame) {
	f.projectID = projectID
	f.frame = frame
	f.renderContent()
}

func (f *framePane) renderContent() {
	w := f.viewport.Width
	if w <= 0 {
		return
	}
	if w > 120 {
		w = 120
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamour.DarkStyleConfig),
		glamour.WithWordWrap(w),
	)
	if err != nil {
		f.viewport.SetContent(f.frame.Content)
		return
	}
	md, err := tr.Render(f.frame.Content)
	if err != nil {
		f.viewport.SetContent(f.frame.Content)
		return
	}
	f.viewport.SetContent(md)
}

func (f *framePane) startEdit() tea.Cmd {
	f.editing = true
	f.editor.SetValue(f.frame.Content)
	return f.editor.Focus()
}

func (f *framePane) Init() tea.Cmd {
	f.editing = false
	return nil
}

func (f *framePane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.editing {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "esc":
				f.editing = false
				f.editor.Blur()
				return f, nil
			case "ctrl+s":
				f.editing = false
				f.editor.Blur()
				frame := f.frame
				frame.Content = f.editor.Value()
				f.common.Backend().UpdateFrame(f.common.Context(), f.projectID, frame)
				f.setFrame(f.projectID, frame)
				return f, refreshCmd
			}
		}
		var cmd tea.Cmd
		f.editor, cmd = f.editor.Update(msg)
		return f, cmd
	}

	var cmd tea.Cmd
	f.viewport, cmd = f.viewport.Update(msg)
	return f, cmd
}

func (f *framePane) View() string {
	styles := f.common.Styles
	title := styles.FrameTitle.Render(f.frame.Title)

	body := f.viewport.View()
	if f.editing {
		title += styles.FormHelp.Render("  editing · ctrl+s save · esc cancel")
		body = f.editor.View()
	}

	return styles.FrameBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}
