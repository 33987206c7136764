package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/keaview/internal/ui"
	"github.com/hance08/keaview/internal/ui/prompts"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Choose the budget server and turn the journal on or off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverURL, err := prompts.PromptInitServer(viper.GetString("server.url"))
			if err != nil {
				return err
			}

			journal, err := ui.Confirm("Record received events for later replay?")
			if err != nil {
				return err
			}

			viper.Set("server.url", serverURL)
			viper.Set("journal.enabled", journal)
			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			pterm.Success.Printf("Saved %s\n", viper.ConfigFileUsed())
			return nil
		},
	}
}
