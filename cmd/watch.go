package cmd

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewWatchCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the budget server and redraw the mirror on every change",
		Long: `Follow the budget server and redraw the mirror on every change.

The view reloads itself whenever it falls out of step with the server.
Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter, err := views.NewLivePresenter()
			if err != nil {
				return err
			}
			defer presenter.Stop()

			s, cleanup, err := a.Connect(cmd.Context(), presenter)
			if err != nil {
				return err
			}
			defer cleanup()

			err = s.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				pterm.Println()
				return nil
			}
			return err
		},
	}
}
