// Package engine applies the server's position-addressed event stream to the
// collection store and keeps the selection consistent with it.
package engine

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/selection"
	"github.com/hance08/keaview/internal/store"
)

type Settings struct {
	// AutoSelectNewAccount focuses every account as soon as it is added.
	AutoSelectNewAccount bool
	// Assertions runs the store and selection invariant checks after every
	// event.
	Assertions bool
}

func DefaultSettings() Settings {
	return Settings{
		AutoSelectNewAccount: false,
		Assertions:           true,
	}
}

// Change is published to observers after an event has been applied.
type Change struct {
	Event protocol.Event
	// Structural is true when accounts or transactions were inserted,
	// removed or moved.
	Structural bool
}

// Engine is the single writer of the store and the selection. It is not safe
// for concurrent use; the session goroutine owns it.
type Engine struct {
	store     *store.Collection
	selection *selection.Tracker
	summary   model.Summary
	settings  Settings

	desync    *DesyncError
	applied   uint64
	observers []func(Change)
}

func New(st *store.Collection, sel *selection.Tracker, settings Settings) *Engine {
	return &Engine{
		store:     st,
		selection: sel,
		settings:  settings,
	}
}

func (e *Engine) Store() *store.Collection {
	return e.store
}

func (e *Engine) Selection() *selection.Tracker {
	return e.selection
}

func (e *Engine) Summary() model.Summary {
	return e.summary
}

// Applied returns the number of events applied since the last reset.
func (e *Engine) Applied() uint64 {
	return e.applied
}

// Desynced reports whether Apply is refusing events until Reset.
func (e *Engine) Desynced() bool {
	return e.desync != nil
}

// OnApplied registers fn to run after every successfully applied event.
func (e *Engine) OnApplied(fn func(Change)) {
	e.observers = append(e.observers, fn)
}

// Reset empties the mirror, the selection and the summary, and leaves the
// desynced state.
func (e *Engine) Reset() {
	e.selection.Clear()
	e.store.Reset()
	e.summary = model.Summary{}
	e.desync = nil
	e.applied = 0
}

// Apply applies one event to completion. An out-of-range position returns a
// *DesyncError with the store left exactly as it was, and every later call
// returns ErrDesynced until Reset.
func (e *Engine) Apply(event protocol.Event) error {
	if e.desync != nil {
		return fmt.Errorf("%w: %v", ErrDesynced, e.desync)
	}

	structural, known, err := e.apply(event)
	if err != nil {
		e.desync = &DesyncError{Method: event.Method, Err: err}
		glog.Warningf("[engine]%s\n", e.desync)
		return e.desync
	}
	if !known {
		glog.V(1).Infof("[engine]ignored unknown method %q\n", event.Method)
		return nil
	}

	e.applied++
	if e.settings.Assertions {
		e.store.Check()
		e.selection.Check()
	}
	glog.V(2).Infof("[engine]applied %q (%d)\n", event.Method, e.applied)

	change := Change{Event: event, Structural: structural}
	for _, fn := range e.observers {
		fn(change)
	}
	return nil
}

func (e *Engine) apply(event protocol.Event) (structural bool, known bool, err error) {
	switch event.Method {
	case protocol.MethodAddAccount:
		return true, true, e.addAccount(event)
	case protocol.MethodDeleteAccount:
		return true, true, e.deleteAccount(event)
	case protocol.MethodReorderAccount:
		return true, true, e.reorderAccount(event)
	case protocol.MethodSetAccountName:
		return false, true, e.updateAccount(event, store.FieldName, event.Name)
	case protocol.MethodUpdateAccountBalance:
		return false, true, e.updateAccount(event, store.FieldBalance, event.Amount)
	case protocol.MethodUpdateAccountAllocation:
		return false, true, e.updateAccount(event, store.FieldAllocation, event.Amount)
	case protocol.MethodAddTransaction:
		return true, true, e.addTransaction(event)
	case protocol.MethodDeleteTransaction:
		return true, true, e.deleteTransaction(event)
	case protocol.MethodUpdateTransaction:
		return false, true, e.withTransaction(event, func(account, index int) error {
			return e.store.UpdateTransactionField(account, index, fields(event))
		})
	case protocol.MethodCheckTransaction:
		return false, true, e.withTransaction(event, e.store.MarkTransactionVerified)
	case protocol.MethodUnselectTransaction:
		// The row stays and so does any existing selection of it; it just
		// cannot be selected again.
		return false, true, e.withTransaction(event, e.store.MarkTransactionUnselectable)
	case protocol.MethodUpdateNetIncome:
		e.summary.NetIncome = protocol.Deref(event.Amount)
		return false, true, nil
	case protocol.MethodUpdateTotalBalance:
		e.summary.TotalBalance = protocol.Deref(event.Amount)
		return false, true, nil
	case protocol.MethodMarkSaved:
		e.summary.SaveState = model.SaveSaved
		return false, true, nil
	case protocol.MethodMarkUnsaved:
		e.summary.SaveState = model.SaveUnsaved
		return false, true, nil
	default:
		return false, false, nil
	}
}

func (e *Engine) addAccount(event protocol.Event) error {
	index, err := required("accountIndex", event.AccountIndex)
	if err != nil {
		return err
	}
	view, err := e.store.InsertAccount(index, protocol.Deref(event.Name))
	if err != nil {
		return err
	}
	if e.settings.AutoSelectNewAccount {
		e.selection.SelectAccount(view)
		e.selection.ClearTransaction()
	}
	return nil
}

func (e *Engine) deleteAccount(event protocol.Event) error {
	index, err := required("accountIndex", event.AccountIndex)
	if err != nil {
		return err
	}
	view, err := e.store.RemoveAccount(index)
	if err != nil {
		return err
	}
	e.selection.OnAccountRemoved(view)
	return nil
}

func (e *Engine) reorderAccount(event protocol.Event) error {
	from, err := required("accountIndex", event.AccountIndex)
	if err != nil {
		return err
	}
	to, err := required("newIndex", event.NewIndex)
	if err != nil {
		return err
	}
	return e.store.MoveAccount(from, to)
}

func (e *Engine) updateAccount(event protocol.Event, field store.AccountField, value *string) error {
	index, err := required("accountIndex", event.AccountIndex)
	if err != nil {
		return err
	}
	return e.store.UpdateAccountField(index, field, protocol.Deref(value))
}

func (e *Engine) addTransaction(event protocol.Event) error {
	return e.withTransaction(event, func(account, index int) error {
		_, err := e.store.InsertTransaction(account, index, fields(event))
		return err
	})
}

func (e *Engine) deleteTransaction(event protocol.Event) error {
	return e.withTransaction(event, func(account, index int) error {
		view, err := e.store.RemoveTransaction(account, index)
		if err != nil {
			return err
		}
		e.selection.OnTransactionRemoved(view)
		return nil
	})
}

func (e *Engine) withTransaction(event protocol.Event, fn func(account, index int) error) error {
	account, err := required("accountIndex", event.AccountIndex)
	if err != nil {
		return err
	}
	index, err := required("transactionIndex", event.TransactionIndex)
	if err != nil {
		return err
	}
	return fn(account, index)
}

func required(name string, v *int) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingIndex, name)
	}
	return *v, nil
}

func fields(event protocol.Event) model.TransactionFields {
	return model.TransactionFields{
		Description: event.Description,
		Amount:      event.Amount,
		Date:        event.Date,
	}
}
