/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/prompts"
	"github.com/hance08/keaview/internal/validation"
)

func NewCreateCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Ask the server to create an account",
		Long: `Ask the server to create an account. Without a name argument you are
prompted for one.`,
		Example: `  keaview account create Groceries`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
				if err := validation.ValidateAccountName(name); err != nil {
					return err
				}
			} else {
				var err error
				name, err = prompts.PromptAccountName("Account Name:")
				if err != nil {
					return err
				}
			}

			err := a.WithSession(cmd.Context(), presenter(), timeout(), func(ctx *session.Context) error {
				return ctx.Emitter.CreateAccount(command.Form{AccountName: name})
			})
			if err != nil {
				return err
			}

			pterm.Success.Printf("Requested account '%s'\n", name)
			return nil
		},
	}
}
