package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

// Health is a coarse reading of how much spendable budget is left.
type Health string

const (
	HealthOverdraft Health = "overdraft"
	HealthStrong    Health = "strong"
	HealthSteady    Health = "steady"
	HealthWatch     Health = "watch"
	HealthLow       Health = "low"
)

// SpendSplit is the spent versus still-available pair shown as a donut.
type SpendSplit struct {
	Spent     decimal.Decimal
	Available decimal.Decimal
}

// Overview is everything the balance card and stats grid display.
type Overview struct {
	Summary
	Budget             decimal.Decimal
	SavingsGoal        decimal.Decimal
	Spendable          decimal.Decimal
	PercentLeft        float64
	Health             Health
	TotalActualSavings decimal.Decimal
	Split              SpendSplit
}

// NewOverview derives the overview for a wallet at now.
func NewOverview(w domain.Wallet, now time.Time) Overview {
	s := Summarize(w, now)
	spendable := w.Budget.Sub(w.SavingsGoal)
	percentLeft := PercentageOf(s.Remaining, spendable)

	available := decimal.Max(decimal.Zero, s.Remaining)

	return Overview{
		Summary:            s,
		Budget:             w.Budget,
		SavingsGoal:        w.SavingsGoal,
		Spendable:          spendable,
		PercentLeft:        percentLeft,
		Health:             healthFor(s.Remaining, percentLeft),
		TotalActualSavings: w.SavingsGoal.Add(available),
		Split: SpendSplit{
			Spent:     s.TotalSpent,
			Available: available,
		},
	}
}

// Overdrawn reports whether spending has eaten into the savings lock.
func (o Overview) Overdrawn() bool {
	return o.Remaining.IsNegative()
}

func healthFor(remaining decimal.Decimal, percentLeft float64) Health {
	switch {
	case remaining.IsNegative():
		return HealthOverdraft
	case percentLeft >= 75:
		return HealthStrong
	case percentLeft >= 50:
		return HealthSteady
	case percentLeft >= 25:
		return HealthWatch
	default:
		return HealthLow
	}
}
