package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"
)

// InvoiceRepository enforces one row per InvoiceKey and the Version guard
// of Save, matching the DynamoDB conditional writes.
type InvoiceRepository struct {
	mu    sync.RWMutex
	byKey map[string]entities.Invoice
	keyOf map[string]string // id -> key
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{
		byKey: map[string]entities.Invoice{},
		keyOf: map[string]string{},
	}
}

func (r *InvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keyOf[id]
	if !ok {
		return entities.Invoice{}, nil
	}
	return cloneInvoice(r.byKey[key]), nil
}

func (r *InvoiceRepository) GetByKey(_ context.Context, key entities.InvoiceKey) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.byKey[key.String()]
	if !ok {
		return entities.Invoice{}, nil
	}
	return cloneInvoice(inv), nil
}

func (r *InvoiceRepository) FindByContractAndNumber(_ context.Context, contractID string, invoiceNumber int) (entities.Invoice, error) {
	matches := r.list(func(inv entities.Invoice) bool {
		return inv.ContractID == contractID && inv.InvoiceNumber == invoiceNumber
	})
	if len(matches) == 0 {
		return entities.Invoice{}, nil
	}
	return matches[0], nil
}

func (r *InvoiceRepository) ListByContract(_ context.Context, contractID string) ([]entities.Invoice, error) {
	return r.list(func(inv entities.Invoice) bool { return inv.ContractID == contractID }), nil
}

func (r *InvoiceRepository) ListByProvider(_ context.Context, providerID string) ([]entities.Invoice, error) {
	return r.list(func(inv entities.Invoice) bool { return inv.ProviderID == providerID }), nil
}

func (r *InvoiceRepository) Save(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := inv.Key().String()
	current, exists := r.byKey[key]
	switch {
	case inv.Version == 0 && exists:
		return entities.Invoice{}, fmt.Errorf("invoice %s already exists: %w", key, entities.ErrConflict)
	case inv.Version != 0 && (!exists || current.Version != inv.Version):
		return entities.Invoice{}, fmt.Errorf("invoice %s version %d: %w", key, inv.Version, entities.ErrConflict)
	}

	inv.Version++
	r.byKey[key] = cloneInvoice(inv)
	r.keyOf[inv.ID] = key
	return cloneInvoice(inv), nil
}

func (r *InvoiceRepository) list(keep func(entities.Invoice) bool) []entities.Invoice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Invoice{}
	for _, inv := range r.byKey {
		if keep(inv) {
			out = append(out, cloneInvoice(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ContractID != out[j].ContractID {
			return out[i].ContractID < out[j].ContractID
		}
		return out[i].InvoiceNumber < out[j].InvoiceNumber
	})
	return out
}
