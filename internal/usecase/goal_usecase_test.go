package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/pocketbuddy/internal/analytics"
	"github.com/iho/pocketbuddy/internal/domain"
	"github.com/iho/pocketbuddy/internal/usecase"
)

func TestWalletUseCase_GoalContributionsStayConsistent(t *testing.T) {
	uc := newWallet(newMemoryStateStore())
	ctx := context.Background()

	steps := []func() (domain.Goal, error){
		func() (domain.Goal, error) { return uc.AddToGoal(ctx, dec(500)) },
		func() (domain.Goal, error) { return uc.AddToGoal(ctx, dec(250)) },
		func() (domain.Goal, error) { return uc.ResetGoalProgress(ctx) },
		func() (domain.Goal, error) { return uc.AddToGoal(ctx, dec(75)) },
		func() (domain.Goal, error) { return uc.AddToGoal(ctx, dec(0)) },
	}

	for i, step := range steps {
		_, _ = step()
		g := uc.Goal()
		if !g.Consistent() {
			t.Fatalf("step %d: saved %s does not match history %+v", i, g.SavedAmount, g.History)
		}
	}

	g := uc.Goal()
	if !g.SavedAmount.Equal(dec(75)) || len(g.History) != 1 {
		t.Fatalf("expected one 75 contribution, got %+v", g)
	}
	if !g.History[0].Date.Equal(testNow) {
		t.Fatalf("expected contribution stamped with clock time, got %s", g.History[0].Date)
	}
}

func TestWalletUseCase_AddToGoalRejectsNonPositive(t *testing.T) {
	store := newMemoryStateStore()
	uc := newWallet(store)

	_, err := uc.AddToGoal(context.Background(), dec(-20))
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if store.writeCount() != 0 {
		t.Fatalf("expected no write")
	}
}

func TestWalletUseCase_UpdateGoalKeepsProgress(t *testing.T) {
	uc := newWallet(newMemoryStateStore())
	ctx := context.Background()
	due := testNow.AddDate(0, 3, 0)

	_, _ = uc.AddToGoal(ctx, dec(1200))

	g, err := uc.UpdateGoal(ctx, usecase.UpdateGoalInput{Title: "Scooter", TargetAmount: dec(90000), TargetDate: &due})
	if err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}
	if g.Title != "Scooter" || !g.TargetDate.Equal(due) {
		t.Fatalf("unexpected goal details: %+v", g)
	}
	if !g.SavedAmount.Equal(dec(1200)) || len(g.History) != 1 {
		t.Fatalf("expected progress kept, got %+v", g)
	}

	if _, err := uc.UpdateGoal(ctx, usecase.UpdateGoalInput{Title: " ", TargetAmount: dec(10)}); !errors.Is(err, domain.ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if uc.Goal().Title != "Scooter" {
		t.Fatalf("expected rejected update to leave goal unchanged")
	}
}

func TestWalletUseCase_RecentContributions(t *testing.T) {
	uc := newWallet(newMemoryStateStore())
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		_, _ = uc.AddToGoal(ctx, dec(i*100))
	}

	recent := uc.RecentContributions()
	if len(recent) != usecase.RecentContributionCount {
		t.Fatalf("expected %d contributions, got %d", usecase.RecentContributionCount, len(recent))
	}
	if !recent[0].Amount.Equal(dec(500)) {
		t.Fatalf("expected newest contribution first, got %s", recent[0].Amount)
	}
}

func TestWalletUseCase_GoalProjection(t *testing.T) {
	uc := newWallet(newMemoryStateStore())
	ctx := context.Background()

	if _, ok := uc.GoalProjection(); ok {
		t.Fatalf("expected no projection without a target date")
	}

	due := testNow.Add(10 * 24 * time.Hour)
	_, _ = uc.UpdateGoal(ctx, usecase.UpdateGoalInput{Title: "Phone", TargetAmount: dec(10000), TargetDate: &due})
	_ = uc.UpdateWalletConfig(ctx, dec(500), dec(0))

	p, ok := uc.GoalProjection()
	if !ok {
		t.Fatalf("expected a projection")
	}
	if p.Status != analytics.ProjectionImpossible || p.DaysLeft != 10 {
		t.Fatalf("expected impossible over 10 days, got %+v", p)
	}
}
