package project

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// boardPane is the append-only discussion board. Messages render oldest to
// newest; only the newest that fit are shown.
type boardPane struct {
	common    common.Common
	projectID string
	messages  []proto.Message
	input     textinput.Model
	composing bool
}

func newBoardPane(c common.Common) *boardPane {
	input := textinput.New()
	input.Placeholder = "write a message"
	input.CharLimit = 500

	return &boardPane{
		common: c,
		input:  input,
	}
}

func (b *boardPane) SetSize(width, height int) {
	b.common.SetSize(width, height)
	b.input.Width = width - 4
}

func (b *boardPane) setMessages(projectID string, messages []proto.Message) {
	b.projectID = projectID
	b.messages = messages
}

func (b *boardPane) startCompose() tea.Cmd {
	b.composing = true
	return b.input.Focus()
}

func (b *boardPane) Init() tea.Cmd {
	b.composing = false
	return nil
}

func (b *boardPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !b.composing {
		return b, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			b.composing = false
			b.input.Blur()
			b.input.SetValue("")
			return b, nil
		case "enter":
			content := strings.TrimSpace(b.input.Value())
			if content == "" {
				return b, nil
			}
			if _, err := b.common.Backend().PostMessage(b.common.Context(), b.projectID, content, nil); err != nil {
				return b, common.ErrorCmd(err)
			}
			b.composing = false
			b.input.Blur()
			b.input.SetValue("")
			return b, refreshCmd
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *boardPane) View() string {
	styles := b.common.Styles
	lines := []string{styles.FormLabel.Render(fmt.Sprintf("Discussion (%d)", len(b.messages)))}

	// Reserve a line for the label and one for the composer.
	budget := b.common.Height - 2
	rendered := make([]string, 0, len(b.messages))
	for i := len(b.messages) - 1; i >= 0 && budget > 0; i-- {
		msg := b.messages[i]
		header := fmt.Sprintf("%s %s",
			styles.MessageAuthor.Render(msg.UserName),
			styles.MessageTime.Render(humanize.Time(msg.Timestamp)))
		body := styles.MessageBody.Render(common.WrapString(msg.Content, b.common.Width-2))
		block := header + "\n" + body
		height := strings.Count(block, "\n") + 1
		if height > budget {
			break
		}
		budget -= height
		rendered = append([]string{block}, rendered...)
	}
	lines = append(lines, rendered...)

	if b.composing {
		lines = append(lines, b.input.View())
	} else if len(b.messages) == 0 {
		lines = append(lines, styles.NoItems.Render("No messages yet. Press m to write one."))
	}

	return strings.Join(lines, "\n")
}
