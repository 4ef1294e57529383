package interfaces

import (
	"context"
	"lesson_billing/internal/domain/entities"
)

// IContractRepository abstracts persistence for Contract.
//
// Lookups return a zero Contract (empty ID) and a nil error when nothing
// matches.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Update(ctx context.Context, c entities.Contract) (entities.Contract, error)
	// AppendExtension stores c only if the persisted policy still holds
	// priorExtensions extensions. A zero Contract means another extension won.
	AppendExtension(ctx context.Context, c entities.Contract, priorExtensions int) (entities.Contract, error)
	ListByStatus(ctx context.Context, status entities.ContractStatus) ([]entities.Contract, error)
	ListByProvider(ctx context.Context, providerID string) ([]entities.Contract, error)
}
