package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hance08/keaview/internal/constants"
)

// ValidateAccountName checks a name typed for a new or renamed account.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAmount accepts a non-negative decimal, matching the server's number
// input.
func ValidateAmount(amount string) error {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", amount)
	}
	if d.IsNegative() {
		return fmt.Errorf("amount can't be negative")
	}
	return nil
}

// ValidateDate accepts YYYY-MM-DD.
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(date)); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return nil
}
