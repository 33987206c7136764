package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/journal"
	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewReplayCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [session-id]",
		Short: "Replay a journaled session offline",
		Long: `Replay a journaled session offline through a fresh mirror and report
where it fell out of step with the server. Without an id the latest session
is replayed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.OpenJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			var s *journal.Session
			if len(args) == 1 {
				s, err = j.Session(args[0])
			} else {
				s, err = j.Latest()
			}
			if err != nil {
				return err
			}

			events, err := j.Events(s.ID)
			if err != nil {
				return fmt.Errorf("failed to load events: %w", err)
			}

			frames := make([]session.Frame, len(events))
			for i, e := range events {
				frames[i] = session.Frame{Connection: e.Connection, Data: e.Frame}
			}

			result := session.Replay(frames, protocol.JSONCodec{}, a.EngineSettings())
			return views.RenderReplayReport(s.ID, result)
		},
	}
}
