package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/ui"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Srender lists the transactions of account. Rows whose selection has been
// revoked are greyed out.
func (v *TransactionListView) Srender(account *model.AccountView, selected *model.TransactionView) (string, error) {
	if account == nil {
		return pterm.Warning.Sprintln("No account selected"), nil
	}

	tableData := pterm.TableData{{"", "#", "Description", "Amount", "Date", "Verified"}}

	for i, t := range account.Transactions() {
		marker := ""
		if t == selected {
			marker = pterm.Cyan(selectedMarker)
		}
		verified := ""
		if t.Verified {
			verified = "✅"
		}
		row := []string{marker, fmt.Sprintf("%d", i), t.Description, t.Amount, t.Date, verified}
		if !t.Selectable {
			for j := 1; j < len(row)-1; j++ {
				row[j] = ui.Stale(row[j])
			}
		}
		tableData = append(tableData, row)
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return "", err
	}
	return pterm.DefaultSection.Sprint(account.Name) + table + "\n", nil
}

func (v *TransactionListView) Render(account *model.AccountView, selected *model.TransactionView) error {
	out, err := v.Srender(account, selected)
	if err != nil {
		return err
	}
	pterm.Print(out)
	if account != nil {
		pterm.Info.Printf("Total: %d transactions\n", account.TransactionCount())
	}
	return nil
}
