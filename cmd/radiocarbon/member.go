package main

import (
	"github.com/caarlos0/tablewriter"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage the member directory",
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory members",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, be, err := initBackend(cmd.Context())
		if err != nil {
			return err
		}

		return tablewriter.Render(
			cmd.OutOrStdout(),
			be.Members(ctx),
			[]string{"ID", "Name", "Email", "Role", "Status"},
			func(m proto.TeamMember) ([]string, error) {
				return []string{
					m.ID,
					m.Name,
					m.Email,
					m.Role.String(),
					m.Status.String(),
				}, nil
			},
		)
	},
}

var memberAddRole string

var memberAddCmd = &cobra.Command{
	Use:   "add EMAIL",
	Short: "Add a member to the directory by email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, be, err := initBackend(cmd.Context())
		if err != nil {
			return err
		}

		role := access.ParseRole(memberAddRole)
		if role == access.Role(-1) {
			return access.ErrInvalidRole
		}

		m, added := be.InviteMember(ctx, args[0], role)
		if !added {
			cmd.Printf("%s is already in the directory as %s\n", m.Email, m.ID)
			return nil
		}

		cmd.Printf("added %s as %s\n", m.Email, m.ID)
		return nil
	},
}

func init() {
	memberAddCmd.Flags().StringVar(&memberAddRole, "role", "participant", "directory role (admin or participant)")
	memberCmd.AddCommand(
		memberListCmd,
		memberAddCmd,
	)
}
