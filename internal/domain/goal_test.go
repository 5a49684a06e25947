package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGoal_WithContribution(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)
	g := DefaultGoal()

	g, err := g.WithContribution(decimal.NewFromInt(500), at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err = g.WithContribution(decimal.NewFromInt(250), at.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !g.SavedAmount.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("expected saved 750, got %s", g.SavedAmount)
	}
	if len(g.History) != 2 || !g.History[0].Amount.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected newest contribution first, got %+v", g.History)
	}
	if !g.Consistent() {
		t.Fatalf("expected saved amount to match history")
	}
}

func TestGoal_WithContributionRejectsNonPositive(t *testing.T) {
	t.Parallel()

	g := DefaultGoal()
	for _, amount := range []int64{0, -10} {
		next, err := g.WithContribution(decimal.NewFromInt(amount), time.Now())
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %d, got %v", amount, err)
		}
		if !next.SavedAmount.IsZero() || len(next.History) != 0 {
			t.Fatalf("expected goal unchanged, got %+v", next)
		}
	}
}

func TestGoal_DoesNotAliasHistory(t *testing.T) {
	t.Parallel()

	base, _ := DefaultGoal().WithContribution(decimal.NewFromInt(100), time.Now())
	next, _ := base.WithContribution(decimal.NewFromInt(50), time.Now())
	reset := next.WithProgressReset()

	if len(base.History) != 1 {
		t.Fatalf("expected base history untouched, got %d entries", len(base.History))
	}
	if !next.SavedAmount.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected reset copy to leave source intact, got %s", next.SavedAmount)
	}
	if !reset.SavedAmount.IsZero() || len(reset.History) != 0 || !reset.Consistent() {
		t.Fatalf("expected empty progress after reset, got %+v", reset)
	}
	if reset.Title != DefaultGoalTitle || !reset.TargetAmount.Equal(decimal.NewFromInt(DefaultGoalTarget)) {
		t.Fatalf("expected metadata kept after reset, got %+v", reset)
	}
}

func TestGoal_WithDetails(t *testing.T) {
	t.Parallel()

	date := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)
	g, _ := DefaultGoal().WithContribution(decimal.NewFromInt(1000), time.Now())

	updated, err := g.WithDetails(" Laptop ", decimal.NewFromInt(80000), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Laptop" || !updated.TargetDate.Equal(date) {
		t.Fatalf("unexpected details: %+v", updated)
	}
	if !updated.SavedAmount.Equal(decimal.NewFromInt(1000)) || len(updated.History) != 1 {
		t.Fatalf("expected progress kept, got %+v", updated)
	}

	if _, err := g.WithDetails("", decimal.NewFromInt(10), date); !errors.Is(err, ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if _, err := g.WithDetails("Bike", decimal.Zero, date); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestGoal_RecentContributions(t *testing.T) {
	t.Parallel()

	g := DefaultGoal()
	for i := 1; i <= 5; i++ {
		g, _ = g.WithContribution(decimal.NewFromInt(int64(i)), time.Now())
	}

	recent := g.RecentContributions(3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 contributions, got %d", len(recent))
	}
	if !recent[0].Amount.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected newest first, got %s", recent[0].Amount)
	}
	if got := g.RecentContributions(10); len(got) != 5 {
		t.Fatalf("expected all 5 contributions, got %d", len(got))
	}
}

func TestGoal_Outstanding(t *testing.T) {
	t.Parallel()

	g := DefaultGoal()
	g.TargetAmount = decimal.NewFromInt(100)
	g, _ = g.WithContribution(decimal.NewFromInt(130), time.Now())

	if !g.Reached() {
		t.Fatalf("expected goal reached")
	}
	if !g.Outstanding().IsZero() {
		t.Fatalf("expected nothing outstanding, got %s", g.Outstanding())
	}
}
