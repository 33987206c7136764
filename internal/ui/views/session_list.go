package views

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/hance08/keaview/internal/constants"
	"github.com/hance08/keaview/internal/journal"
)

type SessionListView struct{}

func NewSessionListView() *SessionListView {
	return &SessionListView{}
}

func (v *SessionListView) Render(sessions []*journal.Session) error {
	if len(sessions) == 0 {
		pterm.Warning.Println("No journaled sessions found")
		return nil
	}

	pterm.DefaultSection.Println("Journaled sessions")

	tableData := pterm.TableData{{"ID", "Started", "Server", "Events"}}
	for _, s := range sessions {
		tableData = append(tableData, []string{
			s.ID,
			time.Unix(s.StartedAt, 0).Format(constants.DateTimeFormat),
			s.ServerURL,
			fmt.Sprintf("%d", s.Events),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d sessions\n", len(sessions))
	return nil
}
