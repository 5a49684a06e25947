package domain

import "github.com/shopspring/decimal"

// Storage keys, one per persisted wallet field.
const (
	KeyBudget        = "budget"
	KeySavingsGoal   = "savingsGoal"
	KeyTransactions  = "transactions"
	KeyGoal          = "goal"
	KeySubscriptions = "subscriptions"
	KeyTheme         = "theme"
)

// Wallet is a point-in-time copy of all ledger state.
type Wallet struct {
	Budget        decimal.Decimal
	SavingsGoal   decimal.Decimal
	Transactions  []Transaction
	Goal          Goal
	Subscriptions []Subscription
}

// DefaultWallet returns the state of a fresh install.
func DefaultWallet() Wallet {
	return Wallet{
		Budget:        decimal.Zero,
		SavingsGoal:   decimal.Zero,
		Transactions:  []Transaction{},
		Goal:          DefaultGoal(),
		Subscriptions: []Subscription{},
	}
}

// Clone returns a deep copy so callers cannot alias the owner's slices.
func (w Wallet) Clone() Wallet {
	out := w
	out.Transactions = make([]Transaction, len(w.Transactions))
	copy(out.Transactions, w.Transactions)
	out.Subscriptions = make([]Subscription, len(w.Subscriptions))
	copy(out.Subscriptions, w.Subscriptions)
	out.Goal = w.Goal.Clone()
	return out
}

// PersistedValues maps each storage key to the value stored under it.
func (w Wallet) PersistedValues() map[string]any {
	return map[string]any{
		KeyBudget:        w.Budget,
		KeySavingsGoal:   w.SavingsGoal,
		KeyTransactions:  w.Transactions,
		KeyGoal:          w.Goal,
		KeySubscriptions: w.Subscriptions,
	}
}
