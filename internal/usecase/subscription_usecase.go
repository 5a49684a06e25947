package usecase

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/domain"
)

// AddSubscriptionInput represents input for recording a recurring payment.
type AddSubscriptionInput struct {
	Name     string
	Category domain.Category
	Cadence  domain.Cadence
	Amount   decimal.Decimal
}

// AddSubscription appends a subscription record.
func (uc *WalletUseCase) AddSubscription(ctx context.Context, input AddSubscriptionInput) (domain.Subscription, error) {
	category := input.Category
	if category == "" {
		category = domain.CategoryBills
	}

	sub := domain.Subscription{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Amount:    input.Amount,
		Category:  category,
		Cadence:   input.Cadence,
		CreatedAt: uc.clock.Now(),
	}
	if err := sub.Validate(); err != nil {
		return domain.Subscription{}, uc.reject(OpAddSubscription, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state.Clone()
	next.Subscriptions = append(next.Subscriptions, sub)
	if err := uc.commit(ctx, OpAddSubscription, next); err != nil {
		return domain.Subscription{}, err
	}
	return sub, nil
}

// DeleteSubscription removes the subscription with id. Unknown ids are ignored.
func (uc *WalletUseCase) DeleteSubscription(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := slices.IndexFunc(uc.state.Subscriptions, func(s domain.Subscription) bool { return s.ID == id })
	if idx < 0 {
		uc.logger.Debug().Str("id", id).Msg("delete of unknown subscription ignored")
		return nil
	}

	next := uc.state.Clone()
	next.Subscriptions = slices.Delete(next.Subscriptions, idx, idx+1)
	return uc.commit(ctx, OpDeleteSubscription, next)
}

// Subscriptions returns all subscriptions in insertion order.
func (uc *WalletUseCase) Subscriptions() []domain.Subscription {
	return uc.Snapshot().Subscriptions
}
