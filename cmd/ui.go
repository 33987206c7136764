package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hance08/keaview/internal/app"
	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/errhandler"
	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui"
	"github.com/hance08/keaview/internal/ui/prompts"
	"github.com/hance08/keaview/internal/ui/views"
	"github.com/hance08/keaview/internal/utils"
	"github.com/hance08/keaview/internal/validation"
)

type action string

const (
	actionSelectAccount     action = "select-account"
	actionSelectTransaction action = "select-transaction"
	actionCreateAccount     action = "create-account"
	actionRenameAccount     action = "rename-account"
	actionTransfer          action = "transfer"
	actionAllocate          action = "allocate"
	actionCloseAccount      action = "close-account"
	actionRemoveAccount     action = "remove-account"
	actionAddTransaction    action = "add-transaction"
	actionVerify            action = "verify-transaction"
	actionRemoveTransaction action = "remove-transaction"
	actionSave              action = "save"
	actionReduce            action = "reduce"
	actionRestore           action = "restore"
	actionRefresh           action = "refresh"
	actionQuit              action = "quit"
)

func NewUICmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse the mirror and send commands interactively",
		Long: `Browse the mirror and send commands interactively.

Pick an account and a transaction, then act on them. The mirror keeps
following the server while the menu is open; the view is redrawn after every
action.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, stop, err := a.Attach(cmd.Context(), &views.NoticePresenter{Verbose: true}, timeout)
			if err != nil {
				return err
			}
			defer stop()

			u := &interactive{session: s, cmd: cmd}
			return u.loop()
		},
	}
}

type interactive struct {
	session *session.Session
	cmd     *cobra.Command
}

// do runs fn on the session goroutine.
func (u *interactive) do(fn func(*session.Context) error) error {
	return u.session.Do(u.cmd.Context(), fn)
}

func (u *interactive) loop() error {
	for {
		if err := u.render(); err != nil {
			return err
		}

		var choice action
		err := huh.NewSelect[action]().
			Title("What next?").
			Options(menu()...).
			Value(&choice).
			Height(18).
			Run()
		if err != nil {
			if errhandler.IsInterrupt(err) {
				return nil
			}
			return err
		}
		if choice == actionQuit {
			return nil
		}

		if err := u.run(choice); err != nil {
			if errors.Is(err, session.ErrClosed) {
				return err
			}
			errhandler.HandleError(err)
		}
		ui.PrintSeparator()
	}
}

func menu() []huh.Option[action] {
	return []huh.Option[action]{
		huh.NewOption("Select account", actionSelectAccount),
		huh.NewOption("Select transaction", actionSelectTransaction),
		huh.NewOption("Create account", actionCreateAccount),
		huh.NewOption("Rename account", actionRenameAccount),
		huh.NewOption("Transfer into account", actionTransfer),
		huh.NewOption("Allocate to account", actionAllocate),
		huh.NewOption("Close account", actionCloseAccount),
		huh.NewOption("Remove account", actionRemoveAccount),
		huh.NewOption("Add transaction", actionAddTransaction),
		huh.NewOption("Verify transaction", actionVerify),
		huh.NewOption("Remove transaction", actionRemoveTransaction),
		huh.NewOption("Save", actionSave),
		huh.NewOption("Reduce", actionReduce),
		huh.NewOption("Restore", actionRestore),
		huh.NewOption("Refresh", actionRefresh),
		huh.NewOption("Quit", actionQuit),
	}
}

func (u *interactive) render() error {
	return u.do(func(ctx *session.Context) error {
		out, err := views.SrenderMirror(ctx)
		if err != nil {
			return err
		}
		pterm.Print(out)
		return nil
	})
}

func (u *interactive) run(choice action) error {
	switch choice {
	case actionSelectAccount:
		return u.selectAccount()
	case actionSelectTransaction:
		return u.selectTransaction()

	case actionCreateAccount:
		name, err := prompts.PromptAccountName("Account Name:")
		if err != nil {
			return err
		}
		return u.emit(func(e *command.Emitter) error { return e.CreateAccount(command.Form{AccountName: name}) })

	case actionRenameAccount:
		name, err := prompts.PromptAccountName("New Name:")
		if err != nil {
			return err
		}
		return u.emit(func(e *command.Emitter) error { return e.RenameAccount(command.Form{NewName: name}) })

	case actionTransfer, actionAllocate:
		amount, err := prompts.PromptAmount("Amount:", validation.ValidateAmount)
		if err != nil {
			return err
		}
		amount, err = utils.NormalizeAmount(amount)
		if err != nil {
			return err
		}
		form := command.Form{Amount: amount}
		if choice == actionTransfer {
			return u.emit(func(e *command.Emitter) error { return e.Transfer(form) })
		}
		return u.emit(func(e *command.Emitter) error { return e.Allocate(form) })

	case actionCloseAccount:
		return u.confirmed("Close the selected account?", func(e *command.Emitter) error { return e.CloseAccount() })
	case actionRemoveAccount:
		return u.confirmed("Remove the selected account? This cannot be undone.", func(e *command.Emitter) error { return e.RemoveAccount() })

	case actionAddTransaction:
		form, err := prompts.PromptTransactionForm()
		if err != nil {
			return err
		}
		return u.emit(func(e *command.Emitter) error { return e.AddTransaction(form) })

	case actionVerify:
		return u.emit(func(e *command.Emitter) error { return e.VerifyTransaction() })
	case actionRemoveTransaction:
		return u.confirmed("Remove the selected transaction? This cannot be undone.", func(e *command.Emitter) error { return e.RemoveTransaction() })

	case actionSave:
		return u.emit(func(e *command.Emitter) error { return e.Save() })
	case actionReduce:
		return u.emit(func(e *command.Emitter) error { return e.Reduce() })
	case actionRestore:
		return u.emit(func(e *command.Emitter) error { return e.Restore() })

	case actionRefresh:
		return nil
	}
	return fmt.Errorf("unknown action %q", choice)
}

// selectAccount snapshots the list, prompts without holding up the session,
// and then selects by identity so that moves in between do not matter.
func (u *interactive) selectAccount() error {
	var accounts []*model.AccountView
	var labels []string
	err := u.do(func(ctx *session.Context) error {
		accounts = append(accounts, ctx.Store.Accounts()...)
		labels = prompts.AccountLabels(accounts)
		return nil
	})
	if err != nil {
		return err
	}

	i, err := prompts.PromptSelectAccount(labels)
	if err != nil {
		return err
	}

	return u.do(func(ctx *session.Context) error {
		if accounts[i].Removed() {
			return fmt.Errorf("%w: it was removed meanwhile", app.ErrAccountNotFound)
		}
		ctx.Selection.SelectAccount(accounts[i])
		return nil
	})
}

func (u *interactive) selectTransaction() error {
	var transactions []*model.TransactionView
	var choices prompts.TransactionChoices
	err := u.do(func(ctx *session.Context) error {
		acc := ctx.Selection.Account()
		if acc == nil {
			return command.ErrNoAccountSelected
		}
		transactions = append(transactions, acc.Transactions()...)
		choices = prompts.SelectableTransactions(transactions)
		return nil
	})
	if err != nil {
		return err
	}

	i, err := prompts.PromptSelectTransaction(choices)
	if err != nil {
		return err
	}

	return u.do(func(ctx *session.Context) error {
		t := transactions[i]
		ctx.Selection.SelectTransaction(t)
		if ctx.Selection.Transaction() != t {
			return fmt.Errorf("%w: it changed meanwhile", app.ErrTransactionNotFound)
		}
		return nil
	})
}

func (u *interactive) emit(fn func(*command.Emitter) error) error {
	return u.do(func(ctx *session.Context) error {
		return fn(ctx.Emitter)
	})
}

func (u *interactive) confirmed(question string, fn func(*command.Emitter) error) error {
	ok, err := ui.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		pterm.Info.Println("Cancelled")
		return nil
	}
	return u.emit(fn)
}
