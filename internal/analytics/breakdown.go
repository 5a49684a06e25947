package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

// CategoryShare is one category's slice of total spending.
type CategoryShare struct {
	Category domain.Category
	Amount   decimal.Decimal
	Percent  float64
}

// CategoryBreakdown groups spending by category, largest first.
// Equal amounts keep the order in which the category was first seen.
func CategoryBreakdown(txns []domain.Transaction) []CategoryShare {
	index := make(map[domain.Category]int)
	shares := make([]CategoryShare, 0)

	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			i = len(shares)
			index[t.Category] = i
			shares = append(shares, CategoryShare{Category: t.Category, Amount: decimal.Zero})
		}
		shares[i].Amount = shares[i].Amount.Add(t.Amount)
	}

	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	for i := range shares {
		shares[i].Percent = PercentageOf(shares[i].Amount, total)
	}

	slices.SortStableFunc(shares, func(a, b CategoryShare) int {
		return b.Amount.Cmp(a.Amount)
	})

	return shares
}
