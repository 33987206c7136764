package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath    string
	ServerURL     string
	JournalPath   string
	JournalOn     bool
	AutoSelectNew bool
	AppDataDir    string
}

func RenderSystemInfo(data SystemInfoItem) error {
	journal := pterm.Gray("Disabled")
	if data.JournalOn {
		journal = pterm.Green("Enabled")
	}
	autoSelect := "No"
	if data.AutoSelectNew {
		autoSelect = "Yes"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Server", data.ServerURL},
		{"Journal", journal},
		{"Journal Path", data.JournalPath},
		{"Auto-select New Accounts", autoSelect},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
