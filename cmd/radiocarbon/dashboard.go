package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, _, err := initBackend(cmd.Context())
		if err != nil {
			return err
		}

		// Bubble Tea uses the termenv default output so we have to use the
		// same thing here.
		renderer := lipgloss.DefaultRenderer()
		c := common.NewCommon(ctx, renderer, 0, 0)
		m := ui.New(c)
		p := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)

		_, err = p.Run()
		return err
	},
}
