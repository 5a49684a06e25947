package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

// ProjectionStatus is the advisory verdict on a goal's pace.
type ProjectionStatus string

const (
	ProjectionImpossible  ProjectionStatus = "impossible"
	ProjectionTough       ProjectionStatus = "tough"
	ProjectionComfortable ProjectionStatus = "comfortable"
	ProjectionDatePassed  ProjectionStatus = "date-passed"
)

const toughDivisor = 30

// Projection estimates what it takes to hit the goal by its target date.
type Projection struct {
	Status       ProjectionStatus
	DaysLeft     int
	AmountNeeded decimal.Decimal
	DailyNeed    decimal.Decimal
}

// GoalProjection compares the daily saving a goal needs with what is available.
// Days are counted as the distance to the target date in either direction; only a
// target date that coincides with now reports ProjectionDatePassed.
// The second result is false when the goal has no target date or is already reached.
func GoalProjection(goal domain.Goal, available decimal.Decimal, now time.Time) (Projection, bool) {
	if !goal.HasTargetDate() || goal.Reached() {
		return Projection{}, false
	}

	gap := goal.TargetDate.Sub(now)
	if gap < 0 {
		gap = -gap
	}
	days := int(math.Ceil(float64(gap) / float64(24*time.Hour)))
	needed := goal.TargetAmount.Sub(goal.SavedAmount)

	if days <= 0 {
		return Projection{
			Status:       ProjectionDatePassed,
			DaysLeft:     days,
			AmountNeeded: needed,
			DailyNeed:    needed,
		}, true
	}

	dailyNeed := needed.Div(decimal.NewFromInt(int64(days)))
	status := ProjectionComfortable
	switch {
	case dailyNeed.GreaterThan(available):
		status = ProjectionImpossible
	case dailyNeed.GreaterThan(available.Div(decimal.NewFromInt(toughDivisor))):
		status = ProjectionTough
	}

	return Projection{
		Status:       status,
		DaysLeft:     days,
		AmountNeeded: needed,
		DailyNeed:    dailyNeed,
	}, true
}

// GoalProgress is the saved share of the target in percent.
func GoalProgress(goal domain.Goal) float64 {
	return PercentageOf(goal.SavedAmount, goal.TargetAmount)
}
