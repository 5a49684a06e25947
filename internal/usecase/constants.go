package usecase

import "time"

const (
	// RecentContributionCount is how many goal deposits the goal card lists.
	RecentContributionCount = 3

	// DefaultDarkMode applies until the user picks a theme.
	DefaultDarkMode = true
)

// Mutation operation names reported to the Recorder.
const (
	OpSetBudget          = "set_budget"
	OpSetSavingsGoal     = "set_savings_goal"
	OpUpdateWalletConfig = "update_wallet_config"
	OpResetWallet        = "reset_wallet"
	OpAddTransaction     = "add_transaction"
	OpDeleteTransaction  = "delete_transaction"
	OpUpdateGoal         = "update_goal"
	OpAddToGoal          = "add_to_goal"
	OpResetGoalProgress  = "reset_goal_progress"
	OpAddSubscription    = "add_subscription"
	OpDeleteSubscription = "delete_subscription"
	OpSetTheme           = "set_theme"
)

// Capture outcomes reported to the Recorder.
const (
	CaptureRecognized = "recognized"
	CaptureFailed     = "failed"
	CaptureCancelled  = "cancelled"
	CaptureRejected   = "rejected"
)

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
