package memory

import (
	"context"
	"sync"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"
)

type PayoutAccountRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.PayoutAccount
}

var _ interfaces.IPayoutAccountRepository = (*PayoutAccountRepository)(nil)

func NewPayoutAccountRepository() *PayoutAccountRepository {
	return &PayoutAccountRepository{rows: map[string]entities.PayoutAccount{}}
}

func (r *PayoutAccountRepository) GetByProviderID(_ context.Context, providerID string) (entities.PayoutAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rows[providerID], nil
}

func (r *PayoutAccountRepository) Put(_ context.Context, a entities.PayoutAccount) (entities.PayoutAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[a.ProviderID] = a
	return a, nil
}
