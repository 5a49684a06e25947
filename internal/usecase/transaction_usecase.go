package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/pocketbuddy/internal/analytics"
	"github.com/iho/pocketbuddy/internal/domain"
)

// AddTransactionInput represents input for recording an expense.
type AddTransactionInput struct {
	Date     *time.Time
	Title    string
	Category domain.Category
	Amount   decimal.Decimal
}

// AddTransaction records an expense at the head of the list.
// A blank title takes the category label; a nil date means now.
func (uc *WalletUseCase) AddTransaction(ctx context.Context, input AddTransactionInput) (domain.Transaction, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// ids and default dates are taken under the lock so the head of the list
	// always carries the newest id.
	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	txn, err := domain.NewTransaction(uc.idGen.Generate(), input.Title, input.Amount, input.Category, date)
	if err != nil {
		return domain.Transaction{}, uc.reject(OpAddTransaction, err)
	}

	next := uc.state.Clone()
	txns := make([]domain.Transaction, 0, len(next.Transactions)+1)
	txns = append(txns, txn)
	next.Transactions = append(txns, next.Transactions...)

	if err := uc.commit(ctx, OpAddTransaction, next); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

// DeleteTransaction removes the transaction with id. Unknown ids are ignored.
func (uc *WalletUseCase) DeleteTransaction(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := slices.IndexFunc(uc.state.Transactions, func(t domain.Transaction) bool { return t.ID == id })
	if idx < 0 {
		uc.logger.Debug().Str("id", id).Msg("delete of unknown transaction ignored")
		return nil
	}

	next := uc.state.Clone()
	next.Transactions = slices.Delete(next.Transactions, idx, idx+1)
	return uc.commit(ctx, OpDeleteTransaction, next)
}

// Transactions returns all transactions, newest first.
func (uc *WalletUseCase) Transactions() []domain.Transaction {
	return uc.Snapshot().Transactions
}

// TimeBucketedTotals groups spending into the most recent periods.
func (uc *WalletUseCase) TimeBucketedTotals(g analytics.Granularity) []analytics.Bucket {
	txns := uc.Transactions()
	return analytics.TimeBucketedTotals(txns, g, uc.clock.Now().Location())
}
