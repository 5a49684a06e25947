package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// PeriodPerformance compares a bucket's spending against its allowance.
type PeriodPerformance struct {
	Bucket
	Limit       decimal.Decimal
	Saved       decimal.Decimal
	WithinLimit bool
}

// LimitFor returns the allowance for one period: the daily limit per day,
// the budget per month and twelve budgets per year.
func LimitFor(g Granularity, dailyLimit, budget decimal.Decimal) decimal.Decimal {
	switch g {
	case Yearly:
		return budget.Mul(monthsPerYear)
	case Monthly:
		return budget
	default:
		return dailyLimit
	}
}

// Performance buckets spending and marks each period as saved or over.
func Performance(txns []domain.Transaction, g Granularity, loc *time.Location, dailyLimit, budget decimal.Decimal) []PeriodPerformance {
	limit := LimitFor(g, dailyLimit, budget)
	buckets := TimeBucketedTotals(txns, g, loc)

	out := make([]PeriodPerformance, 0, len(buckets))
	for _, b := range buckets {
		saved := limit.Sub(b.Total)
		out = append(out, PeriodPerformance{
			Bucket:      b,
			Limit:       limit,
			Saved:       saved,
			WithinLimit: !saved.IsNegative(),
		})
	}
	return out
}
