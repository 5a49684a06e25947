package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/analytics"
	"github.com/iho/pocketbuddy/internal/domain"
)

// WalletUseCase owns the ledger state. Every read and write goes through mu,
// and every write persists the whole wallet before it becomes visible.
type WalletUseCase struct {
	mu       sync.Mutex
	state    domain.Wallet
	store    StateStore
	idGen    IDGenerator
	clock    Clock
	recorder Recorder
	logger   zerolog.Logger
}

// NewWalletUseCase creates a WalletUseCase seeded from the store.
func NewWalletUseCase(
	ctx context.Context,
	store StateStore,
	idGen IDGenerator,
	clock Clock,
	recorder Recorder,
	logger zerolog.Logger,
) *WalletUseCase {
	uc := &WalletUseCase{
		store:    store,
		idGen:    idGen,
		clock:    clock,
		recorder: recorder,
		logger:   logger.With().Str("component", "wallet").Logger(),
	}
	uc.state = uc.load(ctx)
	uc.recorder.ObserveRemaining(uc.remaining(uc.state))
	return uc
}

func (uc *WalletUseCase) load(ctx context.Context) domain.Wallet {
	w := domain.DefaultWallet()

	uc.store.Load(ctx, domain.KeyBudget, &w.Budget)
	uc.store.Load(ctx, domain.KeySavingsGoal, &w.SavingsGoal)
	uc.store.Load(ctx, domain.KeyTransactions, &w.Transactions)
	uc.store.Load(ctx, domain.KeyGoal, &w.Goal)
	uc.store.Load(ctx, domain.KeySubscriptions, &w.Subscriptions)

	if w.Transactions == nil {
		w.Transactions = []domain.Transaction{}
	}
	if w.Subscriptions == nil {
		w.Subscriptions = []domain.Subscription{}
	}
	if w.Goal.History == nil {
		w.Goal.History = []domain.Contribution{}
	}
	if !w.Goal.Consistent() {
		uc.logger.Warn().
			Str("saved", w.Goal.SavedAmount.String()).
			Int("contributions", len(w.Goal.History)).
			Msg("stored goal savings do not match its history")
	}

	uc.logger.Debug().
		Int("transactions", len(w.Transactions)).
		Int("subscriptions", len(w.Subscriptions)).
		Msg("wallet loaded")

	return w
}

// SetBudget sets the periodic budget without checking it against the savings lock.
func (uc *WalletUseCase) SetBudget(ctx context.Context, amount decimal.Decimal) error {
	if err := domain.ValidateNonNegative(amount); err != nil {
		return uc.reject(OpSetBudget, domain.NewValidationError("budget", err))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state.Clone()
	next.Budget = amount
	return uc.commit(ctx, OpSetBudget, next)
}

// SetSavingsGoal sets the savings lock without checking it against the budget.
func (uc *WalletUseCase) SetSavingsGoal(ctx context.Context, amount decimal.Decimal) error {
	if err := domain.ValidateNonNegative(amount); err != nil {
		return uc.reject(OpSetSavingsGoal, domain.NewValidationError("savingsGoal", err))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state.Clone()
	next.SavingsGoal = amount
	return uc.commit(ctx, OpSetSavingsGoal, next)
}

// UpdateWalletConfig sets budget and savings lock together. A savings lock
// larger than the budget is rejected with domain.ErrInsufficientFunds.
func (uc *WalletUseCase) UpdateWalletConfig(ctx context.Context, budget, savingsGoal decimal.Decimal) error {
	if err := domain.ValidateWalletConfig(budget, savingsGoal); err != nil {
		return uc.reject(OpUpdateWalletConfig, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state.Clone()
	next.Budget = budget
	next.SavingsGoal = savingsGoal
	return uc.commit(ctx, OpUpdateWalletConfig, next)
}

// ResetWallet wipes the store and returns every field to its default.
func (uc *WalletUseCase) ResetWallet(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.store.Clear(ctx); err != nil {
		uc.logger.Error().Err(err).Msg("failed to clear wallet store")
		uc.recorder.ObserveMutation(OpResetWallet, err)
		return fmt.Errorf("clear wallet store: %w", err)
	}

	uc.state = domain.DefaultWallet()
	uc.recorder.ObserveMutation(OpResetWallet, nil)
	uc.recorder.ObserveRemaining(decimal.Zero)
	uc.logger.Info().Msg("wallet reset")
	return nil
}

// Snapshot returns a deep copy of the current state.
func (uc *WalletUseCase) Snapshot() domain.Wallet {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Clone()
}

// Summary returns the derived balance figures for today.
func (uc *WalletUseCase) Summary() analytics.Summary {
	return analytics.Summarize(uc.Snapshot(), uc.clock.Now())
}

// Overview returns the balance card figures for today.
func (uc *WalletUseCase) Overview() analytics.Overview {
	return analytics.NewOverview(uc.Snapshot(), uc.clock.Now())
}

// CategoryBreakdown groups all spending by category.
func (uc *WalletUseCase) CategoryBreakdown() []analytics.CategoryShare {
	return analytics.CategoryBreakdown(uc.Snapshot().Transactions)
}

// Performance returns the most recent periods with their savings against the limit.
func (uc *WalletUseCase) Performance(g analytics.Granularity) []analytics.PeriodPerformance {
	w := uc.Snapshot()
	now := uc.clock.Now()
	s := analytics.Summarize(w, now)
	return analytics.Performance(w.Transactions, g, now.Location(), s.DailyLimit, w.Budget)
}

// commit persists next and swaps it in. On failure the current state is kept.
// Callers hold mu.
func (uc *WalletUseCase) commit(ctx context.Context, op string, next domain.Wallet) error {
	if err := uc.store.SaveAll(ctx, next.PersistedValues()); err != nil {
		uc.logger.Error().Err(err).Str("operation", op).Msg("failed to persist wallet")
		uc.recorder.ObserveMutation(op, err)
		return fmt.Errorf("persist wallet: %w", err)
	}

	uc.state = next
	uc.recorder.ObserveMutation(op, nil)
	uc.recorder.ObserveRemaining(uc.remaining(next))
	uc.logger.Debug().Str("operation", op).Msg("wallet updated")
	return nil
}

func (uc *WalletUseCase) reject(op string, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		uc.recorder.ObserveValidationFailure(ve.Field)
	}
	uc.recorder.ObserveMutation(op, err)
	uc.logger.Info().Err(err).Str("operation", op).Msg("wallet update rejected")
	return err
}

func (uc *WalletUseCase) remaining(w domain.Wallet) decimal.Decimal {
	return analytics.Remaining(w.Budget, w.SavingsGoal, analytics.TotalSpent(w.Transactions))
}
