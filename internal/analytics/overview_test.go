package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iho/pocketbuddy/internal/domain"
)

func TestNewOverview(t *testing.T) {
	now := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		budget      int64
		savings     int64
		spent       int64
		wantHealth  Health
		wantSavings int64
		wantAvail   int64
	}{
		{"untouched budget", 10000, 2000, 0, HealthStrong, 10000, 8000},
		{"half spent", 10000, 2000, 4000, HealthSteady, 6000, 4000},
		{"two thirds spent", 10000, 2000, 5500, HealthWatch, 4500, 2500},
		{"nearly empty", 10000, 2000, 7000, HealthLow, 3000, 1000},
		{"overdrawn", 10000, 2000, 9000, HealthOverdraft, 2000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := domain.DefaultWallet()
			w.Budget = dec(tt.budget)
			w.SavingsGoal = dec(tt.savings)
			if tt.spent > 0 {
				w.Transactions = []domain.Transaction{expense(tt.spent, domain.CategoryOther, now)}
			}

			o := NewOverview(w, now)

			assert.Equal(t, tt.wantHealth, o.Health)
			assert.True(t, o.Spendable.Equal(dec(tt.budget-tt.savings)))
			assert.True(t, o.TotalActualSavings.Equal(dec(tt.wantSavings)), "savings %s", o.TotalActualSavings)
			assert.True(t, o.Split.Available.Equal(dec(tt.wantAvail)), "available %s", o.Split.Available)
			assert.Equal(t, tt.wantHealth == HealthOverdraft, o.Overdrawn())
		})
	}
}
