/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package account

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewAccountCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, rename, fund and remove accounts on the budget server.",
		Long: `Create, rename, fund and remove accounts on the budget server.

Accounts are referred to by their exact name or by their position in the
server's list, as shown by "keaview account list".`,
	}

	accountCmd.AddCommand(NewListCmd(a, timeout))
	accountCmd.AddCommand(NewCreateCmd(a, timeout))
	accountCmd.AddCommand(NewRemoveCmd(a, timeout))
	accountCmd.AddCommand(NewCloseCmd(a, timeout))
	accountCmd.AddCommand(NewRenameCmd(a, timeout))
	accountCmd.AddCommand(NewTransferCmd(a, timeout))
	accountCmd.AddCommand(NewAllocateCmd(a, timeout))

	return accountCmd
}

// onAccount selects the account named by ref and runs fn with it selected.
func onAccount(ctx *session.Context, ref string, fn func(*session.Context) error) error {
	acc, err := app.FindAccount(ctx.Store, ref)
	if err != nil {
		return err
	}
	ctx.Selection.SelectAccount(acc)
	return fn(ctx)
}

func presenter() session.Presenter {
	return &views.NoticePresenter{}
}
