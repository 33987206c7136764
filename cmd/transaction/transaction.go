/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui/views"
)

func NewTransactionCmd(a *app.App, timeout func() time.Duration) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage the transactions of an account",
		Long: `Manage the transactions of an account: list, add, remove or verify.

A transaction is referred to by its position in the account or by its exact
description.`,
	}

	transactionCmd.AddCommand(NewListCmd(a, timeout))
	transactionCmd.AddCommand(NewAddCmd(a, timeout))
	transactionCmd.AddCommand(NewRemoveCmd(a, timeout))
	transactionCmd.AddCommand(NewVerifyCmd(a, timeout))

	return transactionCmd
}

// onTransaction selects the account and then the transaction, and runs fn
// with both selected.
func onTransaction(ctx *session.Context, accountRef, txRef string, fn func(*session.Context) error) error {
	acc, err := app.FindAccount(ctx.Store, accountRef)
	if err != nil {
		return err
	}
	tx, err := app.FindTransaction(acc, txRef)
	if err != nil {
		return err
	}
	ctx.Selection.SelectAccount(acc)
	ctx.Selection.SelectTransaction(tx)
	return fn(ctx)
}

func presenter() session.Presenter {
	return &views.NoticePresenter{}
}
