package prompts

import (
	"fmt"
	"time"

	"github.com/hance08/keaview/internal/command"
	"github.com/hance08/keaview/internal/constants"
	"github.com/hance08/keaview/internal/model"
	"github.com/hance08/keaview/internal/utils"
	"github.com/hance08/keaview/internal/validation"
)

// PromptTransactionForm collects description, amount and date for a new
// transaction
func PromptTransactionForm() (command.Form, error) {
	description, err := PromptInput("Description:", "", nil)
	if err != nil {
		return command.Form{}, err
	}

	amount, err := PromptAmount("Amount:", validation.ValidateAmount)
	if err != nil {
		return command.Form{}, err
	}
	amount, err = utils.NormalizeAmount(amount)
	if err != nil {
		return command.Form{}, err
	}

	date, err := PromptDate(
		"Transaction Date (YYYY-MM-DD, Enter for today):",
		time.Now().Format(constants.DateFormat),
		validation.ValidateDate,
	)
	if err != nil {
		return command.Form{}, err
	}

	return command.Form{Description: description, Amount: amount, Date: date}, nil
}

// TransactionChoices are the rows the user may pick, with their positions in
// the account.
type TransactionChoices struct {
	Labels    []string
	Positions []int
}

// SelectableTransactions leaves out rows whose selection was revoked. It reads
// the model, so it must run on the session goroutine.
func SelectableTransactions(transactions []*model.TransactionView) TransactionChoices {
	var c TransactionChoices
	for i, t := range transactions {
		if !t.Selectable {
			continue
		}
		c.Labels = append(c.Labels, fmt.Sprintf("%s  %s  %s", t.Date, t.Description, t.Amount))
		c.Positions = append(c.Positions, i)
	}
	return c
}

// PromptSelectTransaction returns the position of the chosen transaction.
func PromptSelectTransaction(c TransactionChoices) (int, error) {
	if len(c.Labels) == 0 {
		return 0, fmt.Errorf("no selectable transactions")
	}

	choice, err := PromptIndex("Transaction:", c.Labels)
	if err != nil {
		return 0, err
	}
	return c.Positions[choice], nil
}
