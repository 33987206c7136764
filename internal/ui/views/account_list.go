package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/model"
)

const selectedMarker = "▶"

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

// Srender lays out accounts in server order, marking the selected one.
func (v *AccountListView) Srender(accounts []*model.AccountView, selected *model.AccountView) (string, error) {
	tableData := pterm.TableData{{"", "#", "Name", "Allocation", "Balance"}}

	for i, acc := range accounts {
		marker := ""
		name := acc.Name
		if acc == selected {
			marker = pterm.Cyan(selectedMarker)
			name = pterm.Cyan(acc.Name)
		}
		tableData = append(tableData, []string{
			marker,
			fmt.Sprintf("%d", i),
			name,
			amountOrDash(acc.AllocationText),
			amountOrDash(acc.BalanceText),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return "", err
	}
	return pterm.DefaultSection.Sprint("Account Summaries") + table + "\n", nil
}

func (v *AccountListView) Render(accounts []*model.AccountView, selected *model.AccountView) error {
	out, err := v.Srender(accounts, selected)
	if err != nil {
		return err
	}
	pterm.Print(out)
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}

func amountOrDash(s string) string {
	if s == "" {
		return pterm.Gray("-")
	}
	return s
}
