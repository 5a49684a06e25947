package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cadence is how often a subscription is charged.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

// ParseCadence parses a cadence name, case-insensitively.
func ParseCadence(s string) (Cadence, error) {
	c := Cadence(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceYearly:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCadence, s)
}

// Subscription records a recurring payment. Nothing charges it automatically.
type Subscription struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	Cadence   Cadence         `json:"cadence"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Validate validates subscription fields.
func (s *Subscription) Validate() error {
	if err := ValidateTitle(s.Name); err != nil {
		return NewValidationError("name", err)
	}
	if err := ValidateAmount(s.Amount); err != nil {
		return NewValidationError("amount", err)
	}
	if !s.Category.Valid() {
		return NewValidationError("category", ErrUnknownCategory)
	}
	if _, err := ParseCadence(string(s.Cadence)); err != nil {
		return NewValidationError("cadence", err)
	}
	return nil
}
