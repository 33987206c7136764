package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError reports err to the user. Prompt interrupts are not errors.
func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return
	}

	pterm.Error.Println(err)
}

func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}
