package views

import (
	"strings"

	"github.com/hance08/keaview/internal/session"
)

// SrenderMirror draws the whole mirror: summary, accounts, and the
// transactions of the selected account.
func SrenderMirror(ctx *session.Context) (string, error) {
	var b strings.Builder

	summary, err := SrenderSummary(ctx.Summary)
	if err != nil {
		return "", err
	}
	b.WriteString(summary)
	b.WriteString("\n")

	accounts, err := NewAccountListView().Srender(ctx.Store.Accounts(), ctx.Selection.Account())
	if err != nil {
		return "", err
	}
	b.WriteString(accounts)

	if ctx.Selection.Account() != nil {
		transactions, err := NewTransactionListView().Srender(ctx.Selection.Account(), ctx.Selection.Transaction())
		if err != nil {
			return "", err
		}
		b.WriteString(transactions)
	}
	return b.String(), nil
}
