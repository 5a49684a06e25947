package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// PercentageOf returns current as a percentage of total, clamped to [0, 100].
// A non-positive total yields 0.
func PercentageOf(current, total decimal.Decimal) float64 {
	if total.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	pct, _ := current.Div(total).Mul(hundred).Float64()
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// TotalSpent sums every transaction amount.
func TotalSpent(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}

// Remaining is budget minus the savings lock minus spending. Negative means overdraft.
func Remaining(budget, savingsGoal, totalSpent decimal.Decimal) decimal.Decimal {
	return budget.Sub(savingsGoal).Sub(totalSpent)
}

// DaysLeft counts calendar days left in now's month, at least 1.
func DaysLeft(now time.Time) int {
	left := daysInMonth(now) - now.Day()
	if left < 1 {
		return 1
	}
	return left
}

// DailyLimit spreads a positive remaining balance over daysLeft.
func DailyLimit(remaining decimal.Decimal, daysLeft int) decimal.Decimal {
	if !remaining.IsPositive() || daysLeft < 1 {
		return decimal.Zero
	}
	return remaining.Div(decimal.NewFromInt(int64(daysLeft)))
}

// Summary holds the figures recomputed on every read.
type Summary struct {
	TotalSpent decimal.Decimal
	Remaining  decimal.Decimal
	DaysLeft   int
	DailyLimit decimal.Decimal
}

// Summarize computes the derived figures for a wallet at now.
func Summarize(w domain.Wallet, now time.Time) Summary {
	spent := TotalSpent(w.Transactions)
	remaining := Remaining(w.Budget, w.SavingsGoal, spent)
	days := DaysLeft(now)

	return Summary{
		TotalSpent: spent,
		Remaining:  remaining,
		DaysLeft:   days,
		DailyLimit: DailyLimit(remaining, days),
	}
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
