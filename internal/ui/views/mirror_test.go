package views

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/selection"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/store"
)

func TestSrenderMirror(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	c := store.New()
	groceries, _ := c.InsertAccount(0, "Groceries")
	_, _ = c.InsertAccount(1, "Rent")
	desc, amount := "Farmers market", "23.40"
	tx, _ := c.InsertTransaction(0, 0, model.TransactionFields{Description: &desc, Amount: &amount})
	tx.Verified = true

	sel := selection.New()
	ctx := &session.Context{
		Store:     c,
		Selection: sel,
		Summary:   model.Summary{NetIncome: "100.00", SaveState: model.SaveUnsaved},
	}

	out, err := SrenderMirror(ctx)
	if err != nil {
		t.Fatalf("SrenderMirror() error = %v", err)
	}
	for _, want := range []string{"Groceries", "Rent", "100.00", "unsaved"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Farmers market") {
		t.Errorf("transactions shown without a selected account")
	}

	sel.SelectAccount(groceries)
	out, err = SrenderMirror(ctx)
	if err != nil {
		t.Fatalf("SrenderMirror() error = %v", err)
	}
	if !strings.Contains(out, "Farmers market") || !strings.Contains(out, selectedMarker) {
		t.Errorf("selected account not rendered:\n%s", out)
	}
}
