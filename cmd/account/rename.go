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

func NewRenameCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	return &cobra.Command{
		Use:     "rename <account> [new-name]",
		Short:   "Ask the server to rename an account",
		Example: `  keaview account rename Food Groceries`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var newName string
			if len(args) == 2 {
				newName = args[1]
				if err := validation.ValidateAccountName(newName); err != nil {
					return err
				}
			} else {
				var err error
				newName, err = prompts.PromptAccountName("New Name:")
				if err != nil {
					return err
				}
			}

			err := a.WithSession(cmd.Context(), presenter(), timeout(), func(ctx *session.Context) error {
				return onAccount(ctx, args[0], func(ctx *session.Context) error {
					return ctx.Emitter.RenameAccount(command.Form{NewName: newName})
				})
			})
			if err != nil {
				return err
			}

			pterm.Success.Printf("Requested rename of '%s' to '%s'\n", args[0], newName)
			return nil
		},
	}
}
