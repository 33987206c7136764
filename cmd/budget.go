package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/views"
)

// NewBudgetCmds returns the commands acting on the budget as a whole.
func NewBudgetCmds(a *app.App, timeout func() time.Duration) []*cobra.Command {
	return []*cobra.Command{
		newBudgetCmd(a, timeout, "save", "Ask the server to save the budget", (*command.Emitter).Save),
		newBudgetCmd(a, timeout, "reduce", "Ask the server to reduce the budget", (*command.Emitter).Reduce),
		newBudgetCmd(a, timeout, "restore", "Ask the server to restore the last saved budget", (*command.Emitter).Restore),
	}
}

func newBudgetCmd(a *app.App, timeout func() time.Duration, use, short string, emit func(*command.Emitter) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.WithSession(cmd.Context(), &views.NoticePresenter{}, timeout(), func(ctx *session.Context) error {
				return emit(ctx.Emitter)
			})
			if err != nil {
				return err
			}
			pterm.Success.Printf("Requested %s\n", use)
			return nil
		},
	}
}
