package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"
)

// ContractRepository keeps contracts in process memory. It backs
// STORAGE_DRIVER=memory and the use-case scenario tests.
type ContractRepository struct {
	mu   sync.RWMutex
	rows map[string]entities.Contract
}

var _ interfaces.IContractRepository = (*ContractRepository)(nil)

func NewContractRepository() *ContractRepository {
	return &ContractRepository{rows: map[string]entities.Contract{}}
}

func (r *ContractRepository) Create(_ context.Context, c entities.Contract) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[c.ID]; ok {
		return entities.Contract{}, fmt.Errorf("contract %s: %w", c.ID, entities.ErrConflict)
	}
	r.rows[c.ID] = cloneContract(c)
	return cloneContract(c), nil
}

func (r *ContractRepository) GetByID(_ context.Context, id string) (entities.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rows[id]
	if !ok {
		return entities.Contract{}, nil
	}
	return cloneContract(c), nil
}

func (r *ContractRepository) Update(_ context.Context, c entities.Contract) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[c.ID]; !ok {
		return entities.Contract{}, nil
	}
	r.rows[c.ID] = cloneContract(c)
	return cloneContract(c), nil
}

func (r *ContractRepository) AppendExtension(_ context.Context, c entities.Contract, priorExtensions int) (entities.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[c.ID]
	if !ok || current.Policy == nil || len(current.Policy.Extensions) != priorExtensions {
		return entities.Contract{}, nil
	}
	r.rows[c.ID] = cloneContract(c)
	return cloneContract(c), nil
}

func (r *ContractRepository) ListByStatus(_ context.Context, status entities.ContractStatus) ([]entities.Contract, error) {
	return r.list(func(c entities.Contract) bool { return c.Status == status }), nil
}

func (r *ContractRepository) ListByProvider(_ context.Context, providerID string) ([]entities.Contract, error) {
	return r.list(func(c entities.Contract) bool { return c.ProviderID == providerID }), nil
}

func (r *ContractRepository) list(keep func(entities.Contract) bool) []entities.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Contract{}
	for _, c := range r.rows {
		if keep(c) {
			out = append(out, cloneContract(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
