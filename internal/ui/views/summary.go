package views

import (
	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/model"
)

func SrenderSummary(summary model.Summary) (string, error) {
	saved := pterm.Gray(summary.SaveState.String())
	switch summary.SaveState {
	case model.SaveSaved:
		saved = pterm.Green(summary.SaveState.String())
	case model.SaveUnsaved:
		saved = pterm.Red(summary.SaveState.String())
	}

	tableData := pterm.TableData{
		{"Net Income", amountOrDash(summary.NetIncome)},
		{"Total Balance", amountOrDash(summary.TotalBalance)},
		{"Budget", saved},
	}
	return pterm.DefaultTable.WithData(tableData).Srender()
}
