package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/pocketbuddy/internal/domain"
)

func TestGoalProjection(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	goalDue := func(days int) domain.Goal {
		g := domain.DefaultGoal()
		g.TargetAmount = dec(10000)
		g.TargetDate = now.Add(time.Duration(days) * 24 * time.Hour)
		return g
	}

	tests := []struct {
		name      string
		goal      domain.Goal
		available decimal.Decimal
		want      ProjectionStatus
		wantDays  int
	}{
		{"impossible", goalDue(10), dec(500), ProjectionImpossible, 10},
		{"tough", goalDue(10), dec(3000), ProjectionTough, 10},
		{"comfortable", goalDue(10), dec(30000), ProjectionComfortable, 10},
		{"past date counts distance", goalDue(-2), dec(30000), ProjectionComfortable, 2},
		{"due now", goalDue(0), dec(30000), ProjectionDatePassed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := GoalProjection(tt.goal, tt.available, now)
			require.True(t, ok)
			assert.Equal(t, tt.want, p.Status)
			assert.Equal(t, tt.wantDays, p.DaysLeft)
			assert.True(t, p.AmountNeeded.Equal(dec(10000)))
		})
	}
}

func TestGoalProjectionRoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	g := domain.DefaultGoal()
	g.TargetAmount = dec(100)
	g.TargetDate = now.Add(36 * time.Hour)

	p, ok := GoalProjection(g, dec(1000), now)

	require.True(t, ok)
	assert.Equal(t, 2, p.DaysLeft)
	assert.True(t, p.DailyNeed.Equal(dec(50)))
}

func TestGoalProjectionNotApplicable(t *testing.T) {
	now := time.Now()

	noDate := domain.DefaultGoal()
	_, ok := GoalProjection(noDate, dec(100), now)
	assert.False(t, ok)

	reached := domain.DefaultGoal()
	reached.TargetDate = now.Add(48 * time.Hour)
	reached, err := reached.WithContribution(reached.TargetAmount, now)
	require.NoError(t, err)
	_, ok = GoalProjection(reached, dec(100), now)
	assert.False(t, ok)
}

func TestGoalProgress(t *testing.T) {
	g := domain.DefaultGoal()
	g, err := g.WithContribution(dec(12500), time.Now())
	require.NoError(t, err)

	assert.InDelta(t, 25.0, GoalProgress(g), 1e-9)
}

func TestGoalProjectionPastTargetUsesDistance(t *testing.T) {
	now := time.Date(2026, time.June, 11, 9, 0, 0, 0, time.UTC)
	g := domain.DefaultGoal()
	g.TargetAmount = dec(10000)
	g.TargetDate = now.Add(-10 * 24 * time.Hour)

	p, ok := GoalProjection(g, dec(30000), now)

	require.True(t, ok)
	assert.Equal(t, ProjectionComfortable, p.Status)
	assert.Equal(t, 10, p.DaysLeft)
	assert.True(t, p.DailyNeed.Equal(dec(1000)))
}
