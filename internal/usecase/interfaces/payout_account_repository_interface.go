package interfaces

import (
	"context"
	"lesson_billing/internal/domain/entities"
)

type IPayoutAccountRepository interface {
	GetByProviderID(ctx context.Context, providerID string) (entities.PayoutAccount, error)
	Put(ctx context.Context, a entities.PayoutAccount) (entities.PayoutAccount, error)
}
