package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxTitleLength = 120
	MaxAmount      = "1000000000000" // 1 trillion
)

var spokenNumberRegex = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ValidateAmount validates a transaction, contribution or goal amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxAmount)
	}

	return nil
}

// ValidateNonNegative validates a budget or savings lock amount.
func ValidateNonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateWalletConfig checks that the savings lock fits inside the budget.
func ValidateWalletConfig(budget, savingsGoal decimal.Decimal) error {
	if err := ValidateNonNegative(budget); err != nil {
		return NewValidationError("budget", err)
	}
	if err := ValidateNonNegative(savingsGoal); err != nil {
		return NewValidationError("savingsGoal", err)
	}
	if savingsGoal.GreaterThan(budget) {
		return NewValidationError("savingsGoal",
			fmt.Errorf("%w: savings %s exceed budget %s", ErrInsufficientFunds, savingsGoal, budget))
	}
	return nil
}

// ValidateTitle validates a transaction title, goal title or subscription name.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)

	if title == "" {
		return fmt.Errorf("%w: cannot be empty", ErrInvalidTitle)
	}

	if len([]rune(title)) > MaxTitleLength {
		return fmt.Errorf("%w: exceeds %d characters", ErrInvalidTitle, MaxTitleLength)
	}

	return nil
}

// ParseAmount parses user-entered text. Non-numeric text is an error, never zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}

	return amount, nil
}

// ParseSpokenAmount extracts the first number from a speech transcript,
// so "spent 1,250 on food" yields 1250.
func ParseSpokenAmount(transcript string) (decimal.Decimal, error) {
	match := spokenNumberRegex.FindString(transcript)
	if match == "" {
		return decimal.Zero, ErrNoAmountHeard
	}

	amount, err := ParseAmount(match)
	if err != nil {
		return decimal.Zero, err
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}
