package store

import (
	"fmt"

	"github.com/hance08/keaview/internal/model"
)

const (
	scopeAccount     = "account"
	scopeTransaction = "transaction"
)

// AccountField names a mutable attribute of an AccountView.
type AccountField string

const (
	FieldName       AccountField = "name"
	FieldBalance    AccountField = "balance"
	FieldAllocation AccountField = "allocation"
)

// Collection is the ordered two-level mirror of the server's accounts and
// their transactions. Position is the addressing key used on the wire, so
// every method validates positions before mutating anything.
//
// Collection is not safe for concurrent use; it is owned by one goroutine.
type Collection struct {
	accounts []*model.AccountView
}

func New() *Collection {
	return &Collection{}
}

func (c *Collection) Len() int {
	return len(c.accounts)
}

// Accounts returns the accounts in server order. Callers must not modify the
// returned slice.
func (c *Collection) Accounts() []*model.AccountView {
	return c.accounts
}

func (c *Collection) Account(index int) (*model.AccountView, error) {
	if err := c.checkAccount(index); err != nil {
		return nil, err
	}
	return c.accounts[index], nil
}

// IndexOf returns the current position of a, or -1 if it is not in the store.
func (c *Collection) IndexOf(a *model.AccountView) int {
	for i, candidate := range c.accounts {
		if candidate == a {
			return i
		}
	}
	return -1
}

// InsertAccount creates a new AccountView at index, appending when index is at
// or past the end.
func (c *Collection) InsertAccount(index int, name string) (*model.AccountView, error) {
	if index < 0 {
		return nil, &OutOfRangeError{Scope: scopeAccount, Account: -1, Index: index, Len: len(c.accounts)}
	}
	if index > len(c.accounts) {
		index = len(c.accounts)
	}

	view := model.NewAccountView(name)
	c.accounts = append(c.accounts, nil)
	copy(c.accounts[index+1:], c.accounts[index:])
	c.accounts[index] = view
	return view, nil
}

// RemoveAccount destroys and returns the account at index along with all of
// its transactions.
func (c *Collection) RemoveAccount(index int) (*model.AccountView, error) {
	if err := c.checkAccount(index); err != nil {
		return nil, err
	}
	view := c.accounts[index]
	last := len(c.accounts) - 1
	copy(c.accounts[index:], c.accounts[index+1:])
	c.accounts[last] = nil
	c.accounts = c.accounts[:last]
	view.MarkRemoved()
	return view, nil
}

// MoveAccount relocates the existing view at from so that it ends up at to,
// shifting the entries in between.
func (c *Collection) MoveAccount(from, to int) error {
	if err := c.checkAccount(from); err != nil {
		return err
	}
	if err := c.checkAccount(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	view := c.accounts[from]
	if from < to {
		copy(c.accounts[from:to], c.accounts[from+1:to+1])
	} else {
		copy(c.accounts[to+1:from+1], c.accounts[to:from])
	}
	c.accounts[to] = view
	return nil
}

func (c *Collection) UpdateAccountField(index int, field AccountField, value string) error {
	if err := c.checkAccount(index); err != nil {
		return err
	}
	view := c.accounts[index]
	switch field {
	case FieldName:
		view.Name = value
	case FieldBalance:
		view.BalanceText = value
	case FieldAllocation:
		view.AllocationText = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Transactions returns the transactions of the account at index.
func (c *Collection) Transactions(accountIndex int) ([]*model.TransactionView, error) {
	if err := c.checkAccount(accountIndex); err != nil {
		return nil, err
	}
	return c.accounts[accountIndex].Transactions(), nil
}

func (c *Collection) Transaction(accountIndex, index int) (*model.TransactionView, error) {
	if err := c.checkTransaction(accountIndex, index); err != nil {
		return nil, err
	}
	return c.accounts[accountIndex].Transactions()[index], nil
}

func (c *Collection) InsertTransaction(accountIndex, index int, fields model.TransactionFields) (*model.TransactionView, error) {
	if err := c.checkAccount(accountIndex); err != nil {
		return nil, err
	}
	account := c.accounts[accountIndex]
	if index < 0 {
		return nil, &OutOfRangeError{Scope: scopeTransaction, Account: accountIndex, Index: index, Len: account.TransactionCount()}
	}
	if index > account.TransactionCount() {
		index = account.TransactionCount()
	}

	view := model.NewTransactionView(fields)
	account.InsertTransaction(index, view)
	return view, nil
}

func (c *Collection) RemoveTransaction(accountIndex, index int) (*model.TransactionView, error) {
	if err := c.checkTransaction(accountIndex, index); err != nil {
		return nil, err
	}
	return c.accounts[accountIndex].RemoveTransaction(index), nil
}

func (c *Collection) UpdateTransactionField(accountIndex, index int, fields model.TransactionFields) error {
	view, err := c.Transaction(accountIndex, index)
	if err != nil {
		return err
	}
	view.Apply(fields)
	return nil
}

func (c *Collection) MarkTransactionVerified(accountIndex, index int) error {
	view, err := c.Transaction(accountIndex, index)
	if err != nil {
		return err
	}
	view.Verified = true
	return nil
}

// MarkTransactionUnselectable keeps the row but revokes its selectability.
func (c *Collection) MarkTransactionUnselectable(accountIndex, index int) error {
	view, err := c.Transaction(accountIndex, index)
	if err != nil {
		return err
	}
	view.Selectable = false
	return nil
}

// Reset destroys every view, leaving an empty store ready for a fresh
// snapshot.
func (c *Collection) Reset() {
	for _, view := range c.accounts {
		view.MarkRemoved()
	}
	c.accounts = nil
}

func (c *Collection) checkAccount(index int) error {
	if index < 0 || index >= len(c.accounts) {
		return &OutOfRangeError{Scope: scopeAccount, Account: -1, Index: index, Len: len(c.accounts)}
	}
	return nil
}

func (c *Collection) checkTransaction(accountIndex, index int) error {
	if err := c.checkAccount(accountIndex); err != nil {
		return err
	}
	n := c.accounts[accountIndex].TransactionCount()
	if index < 0 || index >= n {
		return &OutOfRangeError{Scope: scopeTransaction, Account: accountIndex, Index: index, Len: n}
	}
	return nil
}

// Check panics if the store's ownership structure is corrupt. A failure here
// is a programming defect, never a protocol condition.
func (c *Collection) Check() {
	for i, account := range c.accounts {
		if account.Removed() {
			panic(fmt.Sprintf("store: removed account %s still at index %d", account.Handle, i))
		}
		for j, t := range account.Transactions() {
			if t.Account() != account {
				panic(fmt.Sprintf("store: transaction %s at %d/%d has foreign owner", t.Handle, i, j))
			}
			if t.Removed() {
				panic(fmt.Sprintf("store: removed transaction %s still at %d/%d", t.Handle, i, j))
			}
		}
	}
}
