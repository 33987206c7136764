package store

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/hance08/keaview/internal/model"
)

func names(c *Collection) []string {
	var out []string
	for _, a := range c.Accounts() {
		out = append(out, a.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func str(s string) *string { return &s }

func TestInsertAccount(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		index int
		want  []string
	}{
		{"empty", nil, 0, []string{"x"}},
		{"front", []string{"a", "b"}, 0, []string{"x", "a", "b"}},
		{"middle", []string{"a", "b"}, 1, []string{"a", "x", "b"}},
		{"end", []string{"a", "b"}, 2, []string{"a", "b", "x"}},
		{"past end appends", []string{"a", "b"}, 7, []string{"a", "b", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for i, n := range tt.start {
				if _, err := c.InsertAccount(i, n); err != nil {
					t.Fatalf("seed: %v", err)
				}
			}
			view, err := c.InsertAccount(tt.index, "x")
			if err != nil {
				t.Fatalf("InsertAccount() error = %v", err)
			}
			if got := names(c); !equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
			if c.IndexOf(view) < 0 {
				t.Errorf("inserted view not found")
			}
		})
	}
}

func TestOutOfRangeLeavesStoreUnchanged(t *testing.T) {
	c := New()
	a, _ := c.InsertAccount(0, "a")
	_, _ = c.InsertAccount(1, "b")
	tx, _ := c.InsertTransaction(0, 0, model.TransactionFields{Description: str("rent")})

	ops := map[string]func() error{
		"insert account negative": func() error { _, err := c.InsertAccount(-1, "x"); return err },
		"remove account":          func() error { _, err := c.RemoveAccount(2); return err },
		"remove account negative": func() error { _, err := c.RemoveAccount(-1); return err },
		"move from":               func() error { return c.MoveAccount(5, 0) },
		"move to":                 func() error { return c.MoveAccount(0, 2) },
		"update account":          func() error { return c.UpdateAccountField(3, FieldName, "z") },
		"insert tx bad account":   func() error { _, err := c.InsertTransaction(2, 0, model.TransactionFields{}); return err },
		"insert tx negative":      func() error { _, err := c.InsertTransaction(0, -1, model.TransactionFields{}); return err },
		"remove tx":               func() error { _, err := c.RemoveTransaction(0, 1); return err },
		"remove tx empty account": func() error { _, err := c.RemoveTransaction(1, 0); return err },
		"update tx":               func() error { return c.UpdateTransactionField(0, 4, model.TransactionFields{Amount: str("1")}) },
		"verify tx":               func() error { return c.MarkTransactionVerified(1, 0) },
		"unselectable tx":         func() error { return c.MarkTransactionUnselectable(0, 1) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("error = %v, want ErrOutOfRange", err)
			}
			var oor *OutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("error %T is not *OutOfRangeError", err)
			}
			if got := names(c); !equal(got, []string{"a", "b"}) {
				t.Errorf("names = %v, want [a b]", got)
			}
			if a.TransactionCount() != 1 || a.Transactions()[0] != tx || tx.Verified || !tx.Selectable || tx.Amount != "" {
				t.Errorf("transaction changed by failed operation")
			}
			c.Check()
		})
	}
}

func TestMoveAccountKeepsIdentity(t *testing.T) {
	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 3, []string{"b", "c", "d", "a"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 2, []string{"a", "c", "b", "d"}},
		{2, 2, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d->%d", tt.from, tt.to), func(t *testing.T) {
			c := New()
			for i, n := range []string{"a", "b", "c", "d"} {
				_, _ = c.InsertAccount(i, n)
			}
			moved, _ := c.Account(tt.from)
			_, _ = c.InsertTransaction(tt.from, 0, model.TransactionFields{Description: str("t")})

			if err := c.MoveAccount(tt.from, tt.to); err != nil {
				t.Fatalf("MoveAccount() error = %v", err)
			}
			if got := names(c); !equal(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
			if got, _ := c.Account(tt.to); got != moved {
				t.Errorf("account at %d is not the moved view", tt.to)
			}
			if moved.TransactionCount() != 1 || moved.Removed() {
				t.Errorf("moved account lost its transactions or was destroyed")
			}
			c.Check()
		})
	}
}

func TestRemoveAccountDestroysTransactions(t *testing.T) {
	c := New()
	_, _ = c.InsertAccount(0, "a")
	tx, _ := c.InsertTransaction(0, 0, model.TransactionFields{})

	view, err := c.RemoveAccount(0)
	if err != nil {
		t.Fatalf("RemoveAccount() error = %v", err)
	}
	if !view.Removed() || !tx.Removed() {
		t.Errorf("removed = %v/%v, want true/true", view.Removed(), tx.Removed())
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestUpdateTransactionFieldOverwrites(t *testing.T) {
	c := New()
	_, _ = c.InsertAccount(0, "a")
	tx, _ := c.InsertTransaction(0, 0, model.TransactionFields{
		Description: str("coffee"), Amount: str("3.00"), Date: str("2025-01-01"),
	})

	if err := c.UpdateTransactionField(0, 0, model.TransactionFields{Amount: str("4.50")}); err != nil {
		t.Fatalf("UpdateTransactionField() error = %v", err)
	}
	if err := c.UpdateTransactionField(0, 0, model.TransactionFields{Amount: str("5.00")}); err != nil {
		t.Fatalf("UpdateTransactionField() error = %v", err)
	}
	if tx.Description != "coffee" || tx.Amount != "5.00" || tx.Date != "2025-01-01" {
		t.Errorf("got %q %q %q", tx.Description, tx.Amount, tx.Date)
	}
}

func TestUnknownAccountField(t *testing.T) {
	c := New()
	_, _ = c.InsertAccount(0, "a")
	if err := c.UpdateAccountField(0, AccountField("colour"), "red"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("error = %v, want ErrUnknownField", err)
	}
}

// TestRandomSequenceMatchesReference drives the store and a plain list model
// with the same random operations and compares them after every step.
func TestRandomSequenceMatchesReference(t *testing.T) {
	type refAccount struct {
		name string
		txs  []string
	}

	rng := rand.New(rand.NewSource(7))
	c := New()
	var ref []*refAccount
	next := 0

	for step := 0; step < 2000; step++ {
		n := len(ref)
		var err error
		switch op := rng.Intn(6); op {
		case 0:
			i := rng.Intn(n + 2)
			name := fmt.Sprintf("acc%d", next)
			next++
			_, err = c.InsertAccount(i, name)
			if i > n {
				i = n
			}
			ref = append(ref[:i], append([]*refAccount{{name: name}}, ref[i:]...)...)
		case 1:
			i := rng.Intn(n + 1)
			_, err = c.RemoveAccount(i)
			if i < n {
				ref = append(ref[:i], ref[i+1:]...)
			}
		case 2:
			from, to := rng.Intn(n+1), rng.Intn(n+1)
			err = c.MoveAccount(from, to)
			if from < n && to < n {
				moved := ref[from]
				ref = append(ref[:from], ref[from+1:]...)
				ref = append(ref[:to], append([]*refAccount{moved}, ref[to:]...)...)
			}
		case 3:
			if n == 0 {
				continue
			}
			ai := rng.Intn(n)
			m := len(ref[ai].txs)
			i := rng.Intn(m + 2)
			desc := fmt.Sprintf("tx%d", next)
			next++
			_, err = c.InsertTransaction(ai, i, model.TransactionFields{Description: &desc})
			if i > m {
				i = m
			}
			ref[ai].txs = append(ref[ai].txs[:i], append([]string{desc}, ref[ai].txs[i:]...)...)
		case 4:
			if n == 0 {
				continue
			}
			ai := rng.Intn(n)
			m := len(ref[ai].txs)
			i := rng.Intn(m + 1)
			_, err = c.RemoveTransaction(ai, i)
			if i < m {
				ref[ai].txs = append(ref[ai].txs[:i], ref[ai].txs[i+1:]...)
			}
		case 5:
			i := rng.Intn(n + 1)
			name := fmt.Sprintf("renamed%d", next)
			next++
			err = c.UpdateAccountField(i, FieldName, name)
			if i < n {
				ref[i].name = name
			}
		}
		if err != nil && !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("step %d: unexpected error %v", step, err)
		}

		if c.Len() != len(ref) {
			t.Fatalf("step %d: Len() = %d, want %d", step, c.Len(), len(ref))
		}
		for i, want := range ref {
			got := c.Accounts()[i]
			if got.Name != want.name {
				t.Fatalf("step %d: account %d = %q, want %q", step, i, got.Name, want.name)
			}
			if got.TransactionCount() != len(want.txs) {
				t.Fatalf("step %d: account %d has %d transactions, want %d", step, i, got.TransactionCount(), len(want.txs))
			}
			for j, tx := range got.Transactions() {
				if tx.Description != want.txs[j] {
					t.Fatalf("step %d: tx %d/%d = %q, want %q", step, i, j, tx.Description, want.txs[j])
				}
			}
		}
		c.Check()
	}
}

func TestRemoveReleasesBackingSlot(t *testing.T) {
	c := New()
	for i, n := range []string{"a", "b", "c"} {
		_, _ = c.InsertAccount(i, n)
	}

	_, _ = c.RemoveAccount(0)

	if got := names(c); !equal(got, []string{"b", "c"}) {
		t.Fatalf("names = %v, want [b c]", got)
	}
	if tail := c.accounts[:len(c.accounts)+1][len(c.accounts)]; tail != nil {
		t.Errorf("removed account %q still referenced by the backing array", tail.Name)
	}
}
