// Package command builds outbound command records from the current selection
// and form input. Account names and transaction fields are read from the
// model, never from what has been rendered.
package command

import (
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/selection"
)

var (
	ErrNoAccountSelected     = errors.New("no account selected")
	ErrNoTransactionSelected = errors.New("no transaction selected")
)

// Sender hands an encoded command to the transport.
type Sender interface {
	Send(cmd protocol.Command) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(protocol.Command) error

func (f SenderFunc) Send(cmd protocol.Command) error {
	return f(cmd)
}

// Form is the user's raw input for the current action. The core treats every
// value as opaque.
type Form struct {
	AccountName string
	NewName     string
	Amount      string
	Description string
	Date        string
}

type Emitter struct {
	selection selection.State
	sender    Sender
}

func NewEmitter(sel selection.State, sender Sender) *Emitter {
	return &Emitter{selection: sel, sender: sender}
}

func (e *Emitter) CreateAccount(form Form) error {
	return e.send(protocol.Command{
		Method: protocol.CommandCreateAccount,
		Name:   form.AccountName,
	})
}

func (e *Emitter) RemoveAccount() error {
	return e.accountCommand(protocol.CommandRemoveAccount, Form{})
}

func (e *Emitter) CloseAccount() error {
	return e.accountCommand(protocol.CommandCloseAccount, Form{})
}

func (e *Emitter) RenameAccount(form Form) error {
	return e.accountCommand(protocol.CommandRenameAccount, Form{NewName: form.NewName})
}

func (e *Emitter) Transfer(form Form) error {
	return e.accountCommand(protocol.CommandTransfer, Form{Amount: form.Amount})
}

func (e *Emitter) Allocate(form Form) error {
	return e.accountCommand(protocol.CommandAllocate, Form{Amount: form.Amount})
}

// AddTransaction adds form's transaction to the selected account.
func (e *Emitter) AddTransaction(form Form) error {
	return e.accountCommand(protocol.CommandAddTransaction, Form{
		Amount:      form.Amount,
		Description: form.Description,
		Date:        form.Date,
	})
}

func (e *Emitter) RemoveTransaction() error {
	return e.transactionCommand(protocol.CommandRemoveTransaction)
}

func (e *Emitter) VerifyTransaction() error {
	return e.transactionCommand(protocol.CommandVerifyTransaction)
}

func (e *Emitter) Save() error {
	return e.send(protocol.Command{Method: protocol.CommandSave})
}

func (e *Emitter) Reduce() error {
	return e.send(protocol.Command{Method: protocol.CommandReduce})
}

func (e *Emitter) Restore() error {
	return e.send(protocol.Command{Method: protocol.CommandRestore})
}

// Build returns the record for method without sending it. Selection-bound
// methods fail with ErrNoAccountSelected or ErrNoTransactionSelected.
func (e *Emitter) Build(method string, form Form) (protocol.Command, error) {
	switch method {
	case protocol.CommandCreateAccount:
		return protocol.Command{Method: method, Name: form.AccountName}, nil
	case protocol.CommandSave, protocol.CommandReduce, protocol.CommandRestore:
		return protocol.Command{Method: method}, nil
	case protocol.CommandRemoveAccount, protocol.CommandCloseAccount,
		protocol.CommandRenameAccount, protocol.CommandTransfer,
		protocol.CommandAllocate, protocol.CommandAddTransaction:
		account := e.selection.Account()
		if account == nil {
			return protocol.Command{}, ErrNoAccountSelected
		}
		return protocol.Command{
			Method:      method,
			Name:        account.Name,
			NewName:     form.NewName,
			Amount:      form.Amount,
			Description: form.Description,
			Date:        form.Date,
		}, nil
	case protocol.CommandRemoveTransaction, protocol.CommandVerifyTransaction:
		account := e.selection.Account()
		if account == nil {
			return protocol.Command{}, ErrNoAccountSelected
		}
		transaction := e.selection.Transaction()
		if transaction == nil {
			return protocol.Command{}, ErrNoTransactionSelected
		}
		return protocol.Command{
			Method:      method,
			Name:        account.Name,
			Description: transaction.Description,
			Amount:      transaction.Amount,
			Date:        transaction.Date,
		}, nil
	default:
		return protocol.Command{}, fmt.Errorf("unknown command %q", method)
	}
}

func (e *Emitter) accountCommand(method string, form Form) error {
	cmd, err := e.Build(method, form)
	if err != nil {
		glog.V(1).Infof("[emit]suppressed %q: %s\n", method, err)
		return err
	}
	return e.send(cmd)
}

func (e *Emitter) transactionCommand(method string) error {
	return e.accountCommand(method, Form{})
}

func (e *Emitter) send(cmd protocol.Command) error {
	if err := e.sender.Send(cmd); err != nil {
		return fmt.Errorf("failed to send %q: %w", cmd.Method, err)
	}
	glog.V(2).Infof("[emit]%q ->\n", cmd.Method)
	return nil
}
