package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount rewrites user input such as "150" or "150.5" as "150.50".
// The server parses amounts itself; this only keeps what is sent tidy.
func NormalizeAmount(amount string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", fmt.Errorf("invalid amount: %s", amount)
	}
	return d.StringFixed(2), nil
}
