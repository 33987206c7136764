package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appDir, err := app.AppDataDir()
			if err != nil {
				return err
			}

			journalPath := a.Config.Journal.Path
			if journalPath == "" {
				journalPath = filepath.Join(appDir, "journal.db")
			}

			return views.RenderSystemInfo(views.SystemInfoItem{
				ConfigPath:    a.Config.ConfigPath,
				ServerURL:     a.Config.Server.URL,
				JournalPath:   journalPath,
				JournalOn:     a.Config.Journal.Enabled,
				AutoSelectNew: a.Config.Sync.AutoSelectNewAccount,
				AppDataDir:    appDir,
			})
		},
	}
}
