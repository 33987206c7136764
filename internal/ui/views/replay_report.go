package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/ui"
)

func RenderReplayReport(sessionID string, result *session.ReplayResult) error {
	ui.PrintHeading("Replay %s", sessionID)
	pterm.Println()

	counts := pterm.TableData{
		{"Applied", fmt.Sprintf("%d", result.Applied)},
		{"Ignored (unknown method)", fmt.Sprintf("%d", result.Ignored)},
		{"Skipped after desync", fmt.Sprintf("%d", result.Skipped)},
		{"Undecodable", fmt.Sprintf("%d", result.Undecoded)},
		{"Last connection", fmt.Sprintf("%d", result.Connection)},
	}
	if err := pterm.DefaultTable.WithData(counts).Render(); err != nil {
		return err
	}

	if len(result.Desyncs) > 0 {
		pterm.Println()
		ui.PrintSubheading("Desyncs")
		rows := pterm.TableData{{"Seq", "Connection", "Method", "Error"}}
		for _, d := range result.Desyncs {
			rows = append(rows, []string{
				fmt.Sprintf("%d", d.Seq),
				fmt.Sprintf("%d", d.Connection),
				d.Err.Method,
				pterm.Red(d.Err.Err.Error()),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
	} else {
		pterm.Success.Println("No desync detected")
	}

	pterm.Println()
	ui.PrintSubheading("Final mirror")
	return NewAccountListView().Render(result.Engine.Store().Accounts(), nil)
}
