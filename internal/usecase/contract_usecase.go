package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SignatureParty identifies who signs a contract.
type SignatureParty string

const (
	SignatureProvider SignatureParty = "provider"
	SignatureClient   SignatureParty = "client"
)

type CreateContractInput struct {
	ProviderID       string
	ClientID         string
	ClientName       string
	ClientPhone      string
	BillingMode      entities.BillingMode
	AbsencePolicy    entities.AbsencePolicy
	Pricing          entities.PricingMode
	BasePrice        decimal.Decimal
	PerSessionAmount decimal.Decimal
	BillingDay       *int
	StartDate        *time.Time
	EndDate          *time.Time
}

type ExtendContractInput struct {
	Kind           entities.ExtensionKind
	AddedSessions  int
	AddedAmount    decimal.Decimal
	NewEndDate     *time.Time
	ExtensionPrice *decimal.Decimal
	ExtendedBy     string
}

// IContractUseCase covers the contract lifecycle:
//   - Create => draft
//   - Sign (both parties) => confirmed, policy snapshot captured
//   - MarkSent => sent, invoice #1 triggered
//   - Extend => extension appended to the snapshot
type IContractUseCase interface {
	Create(ctx context.Context, in CreateContractInput) (entities.Contract, error)
	Sign(ctx context.Context, providerID, id string, party SignatureParty) (entities.Contract, error)
	MarkSent(ctx context.Context, providerID, id string) (entities.Contract, error)
	Extend(ctx context.Context, providerID, id string, in ExtendContractInput) (entities.Contract, error)
	Get(ctx context.Context, providerID, id string) (entities.Contract, error)
	List(ctx context.Context, providerID string) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo    interfaces.IContractRepository
	trigger IBillingTriggerUseCase
	metrics *metrics.Metrics
	log     zerolog.Logger
	loc     *time.Location
	now     func() time.Time
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, trigger IBillingTriggerUseCase, m *metrics.Metrics, loc *time.Location) *ContractUseCase {
	return &ContractUseCase{
		repo:    repo,
		trigger: trigger,
		metrics: m,
		log:     logger.WithComponent("usecase.contract"),
		loc:     orUTC(loc),
		now:     time.Now,
	}
}

func (u *ContractUseCase) Create(ctx context.Context, in CreateContractInput) (entities.Contract, error) {
	in.ProviderID = strings.TrimSpace(in.ProviderID)
	if in.ProviderID == "" {
		return entities.Contract{}, ErrInvalidProviderID
	}
	if err := validateContractInput(in); err != nil {
		return entities.Contract{}, err
	}

	now := u.now().UTC()
	c := entities.Contract{
		ID:               uuid.NewString(),
		ProviderID:       in.ProviderID,
		ClientID:         strings.TrimSpace(in.ClientID),
		ClientName:       strings.TrimSpace(in.ClientName),
		ClientPhone:      strings.TrimSpace(in.ClientPhone),
		BillingMode:      in.BillingMode,
		AbsencePolicy:    in.AbsencePolicy,
		Pricing:          in.Pricing,
		BasePrice:        in.BasePrice,
		PerSessionAmount: in.PerSessionAmount,
		TotalSessions:    in.Pricing.TotalSessions,
		BillingDay:       in.BillingDay,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Status:           entities.ContractStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, c)
}

func validateContractInput(in CreateContractInput) error {
	switch {
	case strings.TrimSpace(in.ClientID) == "":
		return fmt.Errorf("%w: client_id is required", ErrInvalidContractInput)
	case !in.BillingMode.Valid():
		return fmt.Errorf("%w: billing_mode %q", ErrInvalidContractInput, in.BillingMode)
	case !in.AbsencePolicy.Valid():
		return fmt.Errorf("%w: absence_policy %q", ErrInvalidContractInput, in.AbsencePolicy)
	case in.BasePrice.IsNegative():
		return fmt.Errorf("%w: base_price must not be negative", ErrInvalidContractInput)
	case in.PerSessionAmount.IsNegative():
		return fmt.Errorf("%w: per_session_amount must not be negative", ErrInvalidContractInput)
	case in.BillingDay != nil && (*in.BillingDay < 1 || *in.BillingDay > 31):
		return fmt.Errorf("%w: billing_day must be between 1 and 31", ErrInvalidContractInput)
	case in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate):
		return fmt.Errorf("%w: end_date before start_date", ErrInvalidContractInput)
	}
	if err := in.Pricing.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContractInput, err)
	}
	if in.Pricing.Kind == entities.PricingKindCalendar && in.StartDate == nil {
		return fmt.Errorf("%w: calendar contracts need a start_date", ErrInvalidContractInput)
	}
	return nil
}

// Sign records a signature. The second signature confirms the contract and
// freezes its pricing terms.
func (u *ContractUseCase) Sign(ctx context.Context, providerID, id string, party SignatureParty) (entities.Contract, error) {
	c, err := loadOwnedContract(ctx, u.repo, providerID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status != entities.ContractStatusDraft {
		return entities.Contract{}, fmt.Errorf("%w: cannot sign a %s contract", ErrInvalidContractState, c.Status)
	}

	now := u.now().UTC()
	switch party {
	case SignatureProvider:
		c.ProviderSignedAt = &now
	case SignatureClient:
		c.ClientSignedAt = &now
	default:
		return entities.Contract{}, fmt.Errorf("%w: unknown signature party %q", ErrInvalidContractInput, party)
	}

	if c.BothSigned() {
		snapshot := c.CaptureSnapshot(now)
		c.Policy = &snapshot
		c.Status = entities.ContractStatusConfirmed
	}
	c.UpdatedAt = now

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	u.log.Info().Str("contract_id", c.ID).Str("party", string(party)).Str("status", string(updated.Status)).Msg("contract signed")
	return updated, nil
}

// MarkSent moves a confirmed contract to sent and triggers invoice #1. A
// failed trigger is logged; the sweep retries it.
func (u *ContractUseCase) MarkSent(ctx context.Context, providerID, id string) (entities.Contract, error) {
	c, err := loadOwnedContract(ctx, u.repo, providerID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status != entities.ContractStatusConfirmed {
		return entities.Contract{}, fmt.Errorf("%w: cannot send a %s contract", ErrInvalidContractState, c.Status)
	}

	now := u.now().UTC()
	c.Status = entities.ContractStatusSent
	c.SentAt = &now
	c.UpdatedAt = now

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}

	bestEffort(u.log, u.metrics, "trigger_contract_sent", func() error {
		_, err := u.trigger.OnContractSent(ctx, updated)
		return err
	})
	return updated, nil
}

// Extend appends an extension to the policy snapshot and bumps the running
// contract terms. Only kinds matching the pricing mode are accepted:
// sessions for session passes, amount for amount passes and period for
// calendar contracts and amount passes.
func (u *ContractUseCase) Extend(ctx context.Context, providerID, id string, in ExtendContractInput) (entities.Contract, error) {
	c, err := loadOwnedContract(ctx, u.repo, providerID, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status.Rank() < entities.ContractStatusConfirmed.Rank() || c.Policy == nil {
		return entities.Contract{}, fmt.Errorf("%w: extensions need a confirmed contract", ErrInvalidContractState)
	}
	policy := *c.Policy

	now := u.now().UTC()
	ext := entities.Extension{
		Kind:           in.Kind,
		ExtensionPrice: in.ExtensionPrice,
		ExtendedAt:     now,
		ExtendedBy:     strings.TrimSpace(in.ExtendedBy),
	}
	if ext.ExtendedBy == "" {
		ext.ExtendedBy = c.ProviderID
	}
	if in.ExtensionPrice != nil && in.ExtensionPrice.IsNegative() {
		return entities.Contract{}, fmt.Errorf("%w: extension_price must not be negative", ErrInvalidExtensionInput)
	}

	switch in.Kind {
	case entities.ExtensionKindSessions:
		if policy.Pricing.Kind != entities.PricingKindSessions {
			return entities.Contract{}, ErrUnsupportedExtension
		}
		if in.AddedSessions <= 0 {
			return entities.Contract{}, fmt.Errorf("%w: added_sessions must be positive", ErrInvalidExtensionInput)
		}
		ext.AddedSessions = in.AddedSessions
	case entities.ExtensionKindAmount:
		if policy.Pricing.Kind != entities.PricingKindAmount {
			return entities.Contract{}, ErrUnsupportedExtension
		}
		if !in.AddedAmount.IsPositive() {
			return entities.Contract{}, fmt.Errorf("%w: added_amount must be positive", ErrInvalidExtensionInput)
		}
		ext.AddedAmount = in.AddedAmount
	case entities.ExtensionKindPeriod:
		if policy.Pricing.Kind == entities.PricingKindSessions {
			return entities.Contract{}, ErrUnsupportedExtension
		}
		if in.NewEndDate == nil {
			return entities.Contract{}, fmt.Errorf("%w: new_end_date is required", ErrInvalidExtensionInput)
		}
		if floor := c.EndDate; floor != nil && !in.NewEndDate.After(*floor) {
			return entities.Contract{}, fmt.Errorf("%w: new_end_date must be after the current end date", ErrInvalidExtensionInput)
		}
		if c.StartDate != nil && in.NewEndDate.Before(*c.StartDate) {
			return entities.Contract{}, fmt.Errorf("%w: new_end_date before start_date", ErrInvalidExtensionInput)
		}
		ext.NewEndDate = in.NewEndDate
	default:
		return entities.Contract{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidExtensionInput, in.Kind)
	}

	if ext.Chained() {
		ext.PreviousTotal = policy.CurrentAllotment()
		ext.NewTotal = ext.PreviousTotal.Add(ext.AddedAllotment())
	}

	nowLocal := now.In(u.loc)
	extended := c
	next := policy.WithExtension(ext)
	extended.Policy = &next
	switch ext.Kind {
	case entities.ExtensionKindSessions:
		extended.TotalSessions += ext.AddedSessions
		extended.BasePrice = extended.BasePrice.Add(billing.ExtensionBase(policy, ext, nowLocal.Year(), nowLocal.Month()))
	case entities.ExtensionKindAmount:
		extended.BasePrice = extended.BasePrice.Add(billing.ExtensionBase(policy, ext, nowLocal.Year(), nowLocal.Month()))
	case entities.ExtensionKindPeriod:
		extended.EndDate = ext.NewEndDate
	}
	extended.UpdatedAt = now

	saved, err := u.repo.AppendExtension(ctx, extended, len(policy.Extensions))
	if err != nil {
		return entities.Contract{}, err
	}
	if saved.ID == "" {
		return entities.Contract{}, ErrExtensionConflict
	}
	appended := next.Extensions[len(next.Extensions)-1]
	u.log.Info().
		Str("contract_id", c.ID).
		Int("extension_seq", appended.Seq).
		Str("extension_kind", string(appended.Kind)).
		Msg("contract extended")

	if saved.Status == entities.ContractStatusSent {
		bestEffort(u.log, u.metrics, "trigger_extension_appended", func() error {
			return u.trigger.OnExtensionAppended(ctx, saved, appended)
		})
	}
	return saved, nil
}

func (u *ContractUseCase) Get(ctx context.Context, providerID, id string) (entities.Contract, error) {
	return loadOwnedContract(ctx, u.repo, providerID, id)
}

func (u *ContractUseCase) List(ctx context.Context, providerID string) ([]entities.Contract, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, ErrInvalidProviderID
	}
	return u.repo.ListByProvider(ctx, providerID)
}
