package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase/interfaces"
)

type PutPayoutAccountInput struct {
	BankName      string
	AccountNumber string
	AccountHolder string
}

// IPayoutAccountUseCase manages where a provider gets paid. Invoices copy the
// account when they are created; later changes apply to new invoices only.
type IPayoutAccountUseCase interface {
	Get(ctx context.Context, providerID string) (entities.PayoutAccount, error)
	Put(ctx context.Context, providerID string, in PutPayoutAccountInput) (entities.PayoutAccount, error)
}

type PayoutAccountUseCase struct {
	repo interfaces.IPayoutAccountRepository
	now  func() time.Time
}

var _ IPayoutAccountUseCase = (*PayoutAccountUseCase)(nil)

func NewPayoutAccountUseCase(repo interfaces.IPayoutAccountRepository) *PayoutAccountUseCase {
	return &PayoutAccountUseCase{repo: repo, now: time.Now}
}

func (u *PayoutAccountUseCase) Get(ctx context.Context, providerID string) (entities.PayoutAccount, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.PayoutAccount{}, ErrInvalidProviderID
	}
	acc, err := u.repo.GetByProviderID(ctx, providerID)
	if err != nil {
		return entities.PayoutAccount{}, err
	}
	if acc.ProviderID == "" {
		return entities.PayoutAccount{}, ErrPayoutAccountNotFound
	}
	return acc, nil
}

func (u *PayoutAccountUseCase) Put(ctx context.Context, providerID string, in PutPayoutAccountInput) (entities.PayoutAccount, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return entities.PayoutAccount{}, ErrInvalidProviderID
	}
	acc := entities.PayoutAccount{
		ProviderID:    providerID,
		BankName:      strings.TrimSpace(in.BankName),
		AccountNumber: strings.TrimSpace(in.AccountNumber),
		AccountHolder: strings.TrimSpace(in.AccountHolder),
		UpdatedAt:     u.now().UTC(),
	}
	if acc.BankName == "" || acc.AccountNumber == "" || acc.AccountHolder == "" {
		return entities.PayoutAccount{}, fmt.Errorf("%w: bank_name, account_number and account_holder are required", ErrInvalidPayoutAccountInput)
	}
	return u.repo.Put(ctx, acc)
}
