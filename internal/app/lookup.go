package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/store"
)

var ErrAccountNotFound = errors.New("account not found")

// FindAccount resolves ref against the mirror, first as an exact account name
// and then as a position.
func FindAccount(st *store.Collection, ref string) (*model.AccountView, error) {
	ref = strings.TrimSpace(ref)
	for _, acc := range st.Accounts() {
		if acc.Name == ref {
			return acc, nil
		}
	}
	if index, err := strconv.Atoi(ref); err == nil {
		if acc, err := st.Account(index); err == nil {
			return acc, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrAccountNotFound, ref)
}

var ErrTransactionNotFound = errors.New("transaction not found")

// FindTransaction resolves ref among the transactions of acc, first as a
// position and then as an exact description. Ambiguous descriptions are
// rejected.
func FindTransaction(acc *model.AccountView, ref string) (*model.TransactionView, error) {
	ref = strings.TrimSpace(ref)
	txs := acc.Transactions()
	if index, err := strconv.Atoi(ref); err == nil && index >= 0 && index < len(txs) {
		return txs[index], nil
	}

	var found *model.TransactionView
	for _, t := range txs {
		if t.Description != ref {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("more than one transaction of '%s' is described as '%s', use its position", acc.Name, ref)
		}
		found = t
	}
	if found == nil {
		return nil, fmt.Errorf("%w: '%s' in '%s'", ErrTransactionNotFound, ref, acc.Name)
	}
	return found, nil
}
