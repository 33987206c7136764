package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/ui"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewSessionsCmd(a *app.App) *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List journaled sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.OpenJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			sessions, err := j.Sessions()
			if err != nil {
				return fmt.Errorf("failed to list sessions: %w", err)
			}
			return views.NewSessionListView().Render(sessions)
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a journaled session and its events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.OpenJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			s, err := j.Session(args[0])
			if err != nil {
				return err
			}

			if !yes {
				ok, err := ui.Confirm(fmt.Sprintf("Delete session %s (%d events)?", s.ID, s.Events))
				if err != nil {
					return err
				}
				if !ok {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			if err := j.DeleteSession(s.ID); err != nil {
				return err
			}
			pterm.Success.Printf("Session %s deleted\n", s.ID)
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	sessionsCmd.AddCommand(deleteCmd)
	return sessionsCmd
}
