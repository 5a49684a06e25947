package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes ledger entries. Only expenses exist today.
type TransactionType string

const TransactionTypeExpense TransactionType = "expense"

// Transaction is a single recorded expense. It is never edited, only deleted.
type Transaction struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
	Date     time.Time       `json:"date"`
	Type     TransactionType `json:"type"`
}

// NewTransaction builds an expense, falling back to the category label for a blank title.
func NewTransaction(id, title string, amount decimal.Decimal, category Category, date time.Time) (Transaction, error) {
	t := Transaction{
		ID:       id,
		Title:    strings.TrimSpace(title),
		Amount:   amount,
		Category: category,
		Date:     date,
		Type:     TransactionTypeExpense,
	}
	if t.Title == "" {
		t.Title = category.Info().Label
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Validate validates the transaction fields.
func (t *Transaction) Validate() error {
	if err := ValidateAmount(t.Amount); err != nil {
		return NewValidationError("amount", err)
	}
	if !t.Category.Valid() {
		return NewValidationError("category", ErrUnknownCategory)
	}
	if err := ValidateTitle(t.Title); err != nil {
		return NewValidationError("title", err)
	}
	return nil
}
