package model

import "github.com/oklog/ulid/v2"

// AccountView mirrors one server-owned account. The pointer is the identity:
// a reorder moves the same AccountView, it is never recreated.
type AccountView struct {
	Handle         ulid.ULID
	Name           string
	BalanceText    string
	AllocationText string

	transactions []*TransactionView
	removed      bool
}

func NewAccountView(name string) *AccountView {
	return &AccountView{
		Handle: ulid.Make(),
		Name:   name,
	}
}

// Transactions returns the account's transactions in server order. The slice
// is shared with the store and must not be modified.
func (a *AccountView) Transactions() []*TransactionView {
	return a.transactions
}

func (a *AccountView) TransactionCount() int {
	return len(a.transactions)
}

// Removed reports whether the store has destroyed this view.
func (a *AccountView) Removed() bool {
	return a.removed
}

// IndexOf returns the position of t in the account, or -1.
func (a *AccountView) IndexOf(t *TransactionView) int {
	for i, candidate := range a.transactions {
		if candidate == t {
			return i
		}
	}
	return -1
}

// InsertTransaction places t at index, which the caller has already validated
// (index == len appends).
func (a *AccountView) InsertTransaction(index int, t *TransactionView) {
	t.account = a
	a.transactions = append(a.transactions, nil)
	copy(a.transactions[index+1:], a.transactions[index:])
	a.transactions[index] = t
}

// RemoveTransaction detaches and returns the transaction at a validated index.
func (a *AccountView) RemoveTransaction(index int) *TransactionView {
	t := a.transactions[index]
	last := len(a.transactions) - 1
	copy(a.transactions[index:], a.transactions[index+1:])
	a.transactions[last] = nil
	a.transactions = a.transactions[:last]
	t.removed = true
	return t
}

// MarkRemoved destroys the account and every transaction it owns.
func (a *AccountView) MarkRemoved() {
	a.removed = true
	for _, t := range a.transactions {
		t.removed = true
	}
}
