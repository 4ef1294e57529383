package interfaces

import (
	"context"
	"lesson_billing/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for Invoice.
//
// The store keeps at most one row per InvoiceKey. Save is the only write:
// a zero Version inserts (failing if the key exists), any other Version
// replaces the row only if it still carries that version. Both failures
// return entities.ErrConflict.
type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByKey(ctx context.Context, key entities.InvoiceKey) (entities.Invoice, error)
	FindByContractAndNumber(ctx context.Context, contractID string, invoiceNumber int) (entities.Invoice, error)
	ListByContract(ctx context.Context, contractID string) ([]entities.Invoice, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Invoice, error)
	Save(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
}
