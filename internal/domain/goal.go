package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Default goal values used on first run and after a wallet reset.
const (
	DefaultGoalTitle  = "Dream Item"
	DefaultGoalTarget = 50000
)

// Contribution is one deposit toward the savings goal.
type Contribution struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Goal is the single savings target. SavedAmount always equals the sum of History,
// so the two are only changed together through WithContribution and WithProgressReset.
type Goal struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	TargetDate   time.Time       `json:"targetDate,omitzero"`
	History      []Contribution  `json:"history"`
}

// DefaultGoal returns the goal a fresh wallet starts with.
func DefaultGoal() Goal {
	return Goal{
		Title:        DefaultGoalTitle,
		TargetAmount: decimal.NewFromInt(DefaultGoalTarget),
		SavedAmount:  decimal.Zero,
		History:      []Contribution{},
	}
}

// HasTargetDate reports whether a target date was set.
func (g Goal) HasTargetDate() bool {
	return !g.TargetDate.IsZero()
}

// Reached reports whether the saved amount covers the target.
func (g Goal) Reached() bool {
	return g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Outstanding is what is still missing to reach the target, never negative.
func (g Goal) Outstanding() decimal.Decimal {
	left := g.TargetAmount.Sub(g.SavedAmount)
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}

// WithContribution returns a copy with amount prepended to the history and added to SavedAmount.
func (g Goal) WithContribution(amount decimal.Decimal, at time.Time) (Goal, error) {
	if err := ValidateAmount(amount); err != nil {
		return g, NewValidationError("amount", err)
	}

	next := g.Clone()
	history := make([]Contribution, 0, len(g.History)+1)
	history = append(history, Contribution{Amount: amount, Date: at})
	history = append(history, g.History...)
	next.History = history
	next.SavedAmount = g.SavedAmount.Add(amount)
	return next, nil
}

// WithProgressReset returns a copy with no savings and no history.
func (g Goal) WithProgressReset() Goal {
	next := g.Clone()
	next.SavedAmount = decimal.Zero
	next.History = []Contribution{}
	return next
}

// WithDetails returns a copy with new metadata. Progress is kept.
func (g Goal) WithDetails(title string, target decimal.Decimal, targetDate time.Time) (Goal, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return g, NewValidationError("title", err)
	}
	if err := ValidateAmount(target); err != nil {
		return g, NewValidationError("targetAmount", err)
	}

	next := g.Clone()
	next.Title = title
	next.TargetAmount = target
	next.TargetDate = targetDate
	return next, nil
}

// RecentContributions returns at most n of the newest contributions.
func (g Goal) RecentContributions(n int) []Contribution {
	if n <= 0 {
		return nil
	}
	if n > len(g.History) {
		n = len(g.History)
	}
	out := make([]Contribution, n)
	copy(out, g.History[:n])
	return out
}

// Consistent reports whether SavedAmount matches the contribution history.
func (g Goal) Consistent() bool {
	sum := decimal.Zero
	for _, c := range g.History {
		sum = sum.Add(c.Amount)
	}
	return sum.Equal(g.SavedAmount)
}

// Clone returns a deep copy.
func (g Goal) Clone() Goal {
	out := g
	out.History = make([]Contribution, len(g.History))
	copy(out.History, g.History)
	return out
}
