package model

import "github.com/oklog/ulid/v2"

// TransactionFields carries the opaque display strings of a transaction row.
// A nil field means "leave unchanged" on update.
type TransactionFields struct {
	Description *string
	Amount      *string
	Date        *string
}

// TransactionView mirrors one transaction row. It is owned by exactly one
// AccountView for its whole life.
type TransactionView struct {
	Handle      ulid.ULID
	Description string
	Amount      string
	Date        string
	Verified    bool
	// Selectable is cleared when the server revokes row selection, for
	// example once the transaction has been reconciled.
	Selectable bool

	account *AccountView
	removed bool
}

func NewTransactionView(fields TransactionFields) *TransactionView {
	t := &TransactionView{
		Handle:     ulid.Make(),
		Selectable: true,
	}
	t.Apply(fields)
	return t
}

// Account returns the owning account. It is a non-owning reference.
func (t *TransactionView) Account() *AccountView {
	return t.account
}

func (t *TransactionView) Removed() bool {
	return t.removed
}

// Apply sets every non-nil field. Updates overwrite, they never accumulate.
func (t *TransactionView) Apply(fields TransactionFields) {
	if fields.Description != nil {
		t.Description = *fields.Description
	}
	if fields.Amount != nil {
		t.Amount = *fields.Amount
	}
	if fields.Date != nil {
		t.Date = *fields.Date
	}
}
