package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	headingStyle    = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	subheadingStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	staleStyle      = pterm.NewStyle(pterm.FgGray)
)

// PrintHeading prints a report banner.
func PrintHeading(format string, a ...interface{}) {
	headingStyle.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintSubheading(format string, a ...interface{}) {
	subheadingStyle.Println(fmt.Sprintf("# %s", fmt.Sprintf(format, a...)))
}

// Stale greys out rows the server no longer lets the user pick.
func Stale(s string) string {
	return staleStyle.Sprint(s)
}

func PrintSeparator() {
	pterm.Println(pterm.Green("---------------------------------------------------------"))
}
