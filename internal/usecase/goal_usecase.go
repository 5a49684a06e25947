package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/analytics"
	"github.com/iho/pocketbuddy/internal/domain"
)

// UpdateGoalInput represents new goal metadata. A nil TargetDate clears the date.
type UpdateGoalInput struct {
	TargetDate   *time.Time
	Title        string
	TargetAmount decimal.Decimal
}

// UpdateGoal replaces the goal's title, target and date, keeping its progress.
func (uc *WalletUseCase) UpdateGoal(ctx context.Context, input UpdateGoalInput) (domain.Goal, error) {
	var date time.Time
	if input.TargetDate != nil {
		date = *input.TargetDate
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	goal, err := uc.state.Goal.WithDetails(input.Title, input.TargetAmount, date)
	if err != nil {
		return domain.Goal{}, uc.reject(OpUpdateGoal, err)
	}

	next := uc.state.Clone()
	next.Goal = goal
	if err := uc.commit(ctx, OpUpdateGoal, next); err != nil {
		return domain.Goal{}, err
	}
	return goal.Clone(), nil
}

// AddToGoal deposits amount into the goal, recording it in the history.
func (uc *WalletUseCase) AddToGoal(ctx context.Context, amount decimal.Decimal) (domain.Goal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	goal, err := uc.state.Goal.WithContribution(amount, uc.clock.Now())
	if err != nil {
		return domain.Goal{}, uc.reject(OpAddToGoal, err)
	}

	next := uc.state.Clone()
	next.Goal = goal
	if err := uc.commit(ctx, OpAddToGoal, next); err != nil {
		return domain.Goal{}, err
	}
	return goal.Clone(), nil
}

// ResetGoalProgress zeroes the savings and history. Title, target and date stay.
func (uc *WalletUseCase) ResetGoalProgress(ctx context.Context) (domain.Goal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state.Clone()
	next.Goal = next.Goal.WithProgressReset()
	if err := uc.commit(ctx, OpResetGoalProgress, next); err != nil {
		return domain.Goal{}, err
	}
	return next.Goal.Clone(), nil
}

// Goal returns the current goal.
func (uc *WalletUseCase) Goal() domain.Goal {
	return uc.Snapshot().Goal
}

// RecentContributions returns the deposits shown on the goal card.
func (uc *WalletUseCase) RecentContributions() []domain.Contribution {
	return uc.Goal().RecentContributions(RecentContributionCount)
}

// GoalProjection judges the goal's pace against the remaining balance.
// The second result is false when no projection applies.
func (uc *WalletUseCase) GoalProjection() (analytics.Projection, bool) {
	w := uc.Snapshot()
	now := uc.clock.Now()
	s := analytics.Summarize(w, now)
	return analytics.GoalProjection(w.Goal, s.Remaining, now)
}
