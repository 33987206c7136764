package app

import (
	"errors"
	"testing"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/store"
)

func lookupFixture() *store.Collection {
	c := store.New()
	_, _ = c.InsertAccount(0, "Groceries")
	_, _ = c.InsertAccount(1, "2")
	_, _ = c.InsertAccount(2, "Rent")
	for i, d := range []string{"Milk", "Eggs", "Milk"} {
		desc := d
		_, _ = c.InsertTransaction(0, i, model.TransactionFields{Description: &desc})
	}
	return c
}

func TestFindAccount(t *testing.T) {
	c := lookupFixture()

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"Rent", "Rent", false},
		{" Rent ", "Rent", false},
		{"0", "Groceries", false},
		{"2", "2", false}, // names win over positions
		{"7", "", true},
		{"rent", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := FindAccount(c, tt.ref)
			if tt.wantErr {
				if !errors.Is(err, ErrAccountNotFound) {
					t.Fatalf("error = %v, want ErrAccountNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindAccount(%q) error = %v", tt.ref, err)
			}
			if got.Name != tt.want {
				t.Errorf("FindAccount(%q) = %q, want %q", tt.ref, got.Name, tt.want)
			}
		})
	}
}

func TestFindTransaction(t *testing.T) {
	c := lookupFixture()
	groceries, _ := c.Account(0)

	tx, err := FindTransaction(groceries, "1")
	if err != nil || tx.Description != "Eggs" {
		t.Fatalf("FindTransaction(1) = %v, %v", tx, err)
	}

	tx, err = FindTransaction(groceries, "Eggs")
	if err != nil || tx != groceries.Transactions()[1] {
		t.Fatalf("FindTransaction(Eggs) = %v, %v", tx, err)
	}

	if _, err := FindTransaction(groceries, "Milk"); err == nil {
		t.Errorf("ambiguous description accepted")
	}
	if _, err := FindTransaction(groceries, "Bread"); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("error = %v, want ErrTransactionNotFound", err)
	}
}
