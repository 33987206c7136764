package prompts

import (
	"fmt"

	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/validation"
)

// PromptAccountName prompts for a new account name
func PromptAccountName(message string) (string, error) {
	return PromptInput(message, "", validation.ValidateAccountName)
}

// AccountLabels describes accounts for PromptSelectAccount. It reads the
// model, so it must run on the session goroutine.
func AccountLabels(accounts []*model.AccountView) []string {
	labels := make([]string, len(accounts))
	for i, acc := range accounts {
		labels[i] = acc.Name
		if acc.BalanceText != "" {
			labels[i] = fmt.Sprintf("%s (Balance: %s)", acc.Name, acc.BalanceText)
		}
	}
	return labels
}

// PromptSelectAccount returns the position of the chosen account.
func PromptSelectAccount(labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("no accounts available")
	}
	return PromptIndex("Account:", labels)
}
