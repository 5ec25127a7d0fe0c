package dashboard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// Item represents a project in the dashboard list.
type Item struct {
	project proto.Project
}

// ID returns the project id.
func (i Item) ID() string { return i.project.ID }

// Title returns the item title. Implements list.DefaultItem.
func (i Item) Title() string { return i.project.Name }

// Description returns the item description. Implements list.DefaultItem.
func (i Item) Description() string {
	return fmt.Sprintf("%s → %s", i.project.StartDate, i.project.EndDate)
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.project.Name }

// ItemDelegate is the delegate for the project item.
type ItemDelegate struct {
	common *common.Common
}

// Width returns the item width.
func (d ItemDelegate) Width() int { return d.common.Width }

// Height returns the item height. Implements list.ItemDelegate.
func (d ItemDelegate) Height() int { return 2 }

// Spacing implements list.ItemDelegate.
func (d ItemDelegate) Spacing() int { return 1 }

// Update implements list.ItemDelegate.
func (d ItemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(Item)
	if !ok {
		return
	}

	styles := d.common.Styles
	style := styles.ItemInactive
	selector := " "
	if index == m.Index() {
		style = styles.ItemActive
		selector = styles.ItemSelector.String()
	}

	swatch := styles.ColorSwatch.Foreground(lipgloss.Color(i.project.Color)).String()
	title := style.Render(common.TruncateString(i.project.Name, d.common.Width-8))
	detail := styles.ItemDetail.Render(fmt.Sprintf("%s · %d members · %d frames",
		i.Description(), len(i.project.Members), len(i.project.Frames)))

	fmt.Fprintf(w, "%s%s %s\n%s  %s", selector, swatch, title, selector, detail)
}
