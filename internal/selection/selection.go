// Package selection tracks the account and transaction the user has focused.
// References are held by identity, so reordering never disturbs them, and the
// synchronization engine clears them in the same step that destroys a view.
package selection

import (
	"fmt"

	"github.com/hance08/keaview/internal/model"
)

// State is a read-only view of the current selection.
type State interface {
	Account() *model.AccountView
	Transaction() *model.TransactionView
}

// Tracker holds at most one selected account and at most one selected
// transaction belonging to that account. The zero value has nothing selected.
type Tracker struct {
	account     *model.AccountView
	transaction *model.TransactionView
}

func New() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Account() *model.AccountView {
	return t.account
}

func (t *Tracker) Transaction() *model.TransactionView {
	return t.transaction
}

// SelectAccount focuses view. The transaction selection is kept only when it
// already belongs to view.
func (t *Tracker) SelectAccount(view *model.AccountView) {
	if view == nil || view.Removed() {
		return
	}
	t.account = view
	if t.transaction != nil && t.transaction.Account() != view {
		t.transaction = nil
	}
}

// SelectTransaction focuses view if it belongs to the selected account and is
// still selectable; otherwise it does nothing.
func (t *Tracker) SelectTransaction(view *model.TransactionView) {
	if view == nil || view.Removed() || !view.Selectable {
		return
	}
	if t.account == nil || view.Account() != t.account {
		return
	}
	t.transaction = view
}

func (t *Tracker) ClearTransaction() {
	t.transaction = nil
}

func (t *Tracker) Clear() {
	t.account = nil
	t.transaction = nil
}

// OnAccountRemoved must be called when the store destroys view.
func (t *Tracker) OnAccountRemoved(view *model.AccountView) {
	if view != nil && view == t.account {
		t.Clear()
	}
}

// OnTransactionRemoved must be called when the store destroys view.
func (t *Tracker) OnTransactionRemoved(view *model.TransactionView) {
	if view != nil && view == t.transaction {
		t.transaction = nil
	}
}

// Check panics if the selection refers to a destroyed view or a transaction
// outside the selected account.
func (t *Tracker) Check() {
	if t.account != nil && t.account.Removed() {
		panic(fmt.Sprintf("selection: account %s was destroyed while selected", t.account.Handle))
	}
	if t.transaction == nil {
		return
	}
	if t.transaction.Removed() {
		panic(fmt.Sprintf("selection: transaction %s was destroyed while selected", t.transaction.Handle))
	}
	if t.transaction.Account() != t.account {
		panic(fmt.Sprintf("selection: transaction %s is not owned by the selected account", t.transaction.Handle))
	}
}
