package command

import (
	"errors"
	"testing"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/selection"
	"github.com/hance08/keaview/internal/store"
)

type recorder struct {
	sent []protocol.Command
	err  error
}

func (r *recorder) Send(cmd protocol.Command) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, cmd)
	return nil
}

func setup(t *testing.T) (*store.Collection, *selection.Tracker, *recorder, *Emitter) {
	t.Helper()
	c := store.New()
	_, _ = c.InsertAccount(0, "Groceries")
	_, _ = c.InsertAccount(1, "Rent")
	desc, amount, date := "Milk", "3.50", "2024-01-01"
	_, _ = c.InsertTransaction(0, 0, model.TransactionFields{Description: &desc, Amount: &amount, Date: &date})

	sel := selection.New()
	r := &recorder{}
	return c, sel, r, NewEmitter(sel, r)
}

func TestSelectionCommandsRequireSelection(t *testing.T) {
	c, sel, r, e := setup(t)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"remove account", e.RemoveAccount, ErrNoAccountSelected},
		{"close account", e.CloseAccount, ErrNoAccountSelected},
		{"rename account", func() error { return e.RenameAccount(Form{NewName: "x"}) }, ErrNoAccountSelected},
		{"transfer", func() error { return e.Transfer(Form{Amount: "1"}) }, ErrNoAccountSelected},
		{"allocate", func() error { return e.Allocate(Form{Amount: "1"}) }, ErrNoAccountSelected},
		{"add transaction", func() error { return e.AddTransaction(Form{Amount: "1"}) }, ErrNoAccountSelected},
		{"remove transaction", e.RemoveTransaction, ErrNoAccountSelected},
		{"verify transaction", e.VerifyTransaction, ErrNoAccountSelected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	account, _ := c.Account(1)
	sel.SelectAccount(account)
	if err := e.VerifyTransaction(); !errors.Is(err, ErrNoTransactionSelected) {
		t.Errorf("VerifyTransaction() error = %v, want ErrNoTransactionSelected", err)
	}
	if err := e.RemoveTransaction(); !errors.Is(err, ErrNoTransactionSelected) {
		t.Errorf("RemoveTransaction() error = %v, want ErrNoTransactionSelected", err)
	}

	if len(r.sent) != 0 {
		t.Errorf("sent %d commands, want none", len(r.sent))
	}
}

func TestCommandsReadTheModel(t *testing.T) {
	c, sel, r, e := setup(t)
	groceries, _ := c.Account(0)
	sel.SelectAccount(groceries)
	sel.SelectTransaction(groceries.Transactions()[0])

	// A rename that has not been rendered yet still wins.
	groceries.Name = "Food"

	steps := []struct {
		run  func() error
		want protocol.Command
	}{
		{func() error { return e.Transfer(Form{Amount: "20.00"}) },
			protocol.Command{Method: protocol.CommandTransfer, Name: "Food", Amount: "20.00"}},
		{func() error { return e.Allocate(Form{Amount: "5.00"}) },
			protocol.Command{Method: protocol.CommandAllocate, Name: "Food", Amount: "5.00"}},
		{func() error { return e.RenameAccount(Form{NewName: "Market"}) },
			protocol.Command{Method: protocol.CommandRenameAccount, Name: "Food", NewName: "Market"}},
		{func() error { return e.AddTransaction(Form{Description: "Eggs", Amount: "2.00", Date: "2024-01-02"}) },
			protocol.Command{Method: protocol.CommandAddTransaction, Name: "Food", Description: "Eggs", Amount: "2.00", Date: "2024-01-02"}},
		{e.VerifyTransaction,
			protocol.Command{Method: protocol.CommandVerifyTransaction, Name: "Food", Description: "Milk", Amount: "3.50", Date: "2024-01-01"}},
		{e.RemoveTransaction,
			protocol.Command{Method: protocol.CommandRemoveTransaction, Name: "Food", Description: "Milk", Amount: "3.50", Date: "2024-01-01"}},
		{e.CloseAccount, protocol.Command{Method: protocol.CommandCloseAccount, Name: "Food"}},
		{e.RemoveAccount, protocol.Command{Method: protocol.CommandRemoveAccount, Name: "Food"}},
		{func() error { return e.CreateAccount(Form{AccountName: "Fun"}) },
			protocol.Command{Method: protocol.CommandCreateAccount, Name: "Fun"}},
		{e.Save, protocol.Command{Method: protocol.CommandSave}},
		{e.Reduce, protocol.Command{Method: protocol.CommandReduce}},
		{e.Restore, protocol.Command{Method: protocol.CommandRestore}},
	}

	for i, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("step %d (%s): error = %v", i, step.want.Method, err)
		}
		if got := r.sent[len(r.sent)-1]; got != step.want {
			t.Errorf("step %d: sent %+v, want %+v", i, got, step.want)
		}
	}
}

func TestSendFailureIsReported(t *testing.T) {
	_, _, r, e := setup(t)
	r.err = errors.New("socket closed")

	err := e.Save()
	if err == nil || !errors.Is(err, r.err) {
		t.Errorf("Save() error = %v, want wrapped %v", err, r.err)
	}
}

func TestBuildUnknownCommand(t *testing.T) {
	_, _, _, e := setup(t)
	if _, err := e.Build("launch rocket", Form{}); err == nil {
		t.Errorf("Build() accepted an unknown command")
	}
}
