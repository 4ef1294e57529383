package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/logger"
	"lesson_billing/internal/metrics"
	"lesson_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type RecordAttendanceInput struct {
	OccurredAt   time.Time
	Status       entities.AttendanceStatus
	SubstituteAt *time.Time
	Amount       *decimal.Decimal
	PublicMemo   string
	InternalMemo string
}

// CorrectAttendanceInput carries the new values of a record. Nil fields are
// left unchanged.
type CorrectAttendanceInput struct {
	OccurredAt   *time.Time
	Status       *entities.AttendanceStatus
	SubstituteAt *time.Time
	Amount       *decimal.Decimal
	PublicMemo   *string
	InternalMemo *string
}

type IAttendanceUseCase interface {
	Record(ctx context.Context, providerID, contractID string, in RecordAttendanceInput) (entities.AttendanceRecord, error)
	Correct(ctx context.Context, providerID, contractID, id string, in CorrectAttendanceInput) (entities.AttendanceRecord, error)
	Void(ctx context.Context, providerID, contractID, id string) (entities.AttendanceRecord, error)
	ListByContract(ctx context.Context, providerID, contractID string) ([]entities.AttendanceRecord, error)
}

type AttendanceUseCase struct {
	contracts  interfaces.IContractRepository
	attendance interfaces.IAttendanceRepository
	trigger    IBillingTriggerUseCase
	metrics    *metrics.Metrics
	log        zerolog.Logger
	now        func() time.Time
}

var _ IAttendanceUseCase = (*AttendanceUseCase)(nil)

func NewAttendanceUseCase(contracts interfaces.IContractRepository, attendance interfaces.IAttendanceRepository, trigger IBillingTriggerUseCase, m *metrics.Metrics) *AttendanceUseCase {
	return &AttendanceUseCase{
		contracts:  contracts,
		attendance: attendance,
		trigger:    trigger,
		metrics:    m,
		log:        logger.WithComponent("usecase.attendance"),
		now:        time.Now,
	}
}

// Record stores a new attendance event and fires the billing trigger. The
// record is kept even when the trigger fails.
func (u *AttendanceUseCase) Record(ctx context.Context, providerID, contractID string, in RecordAttendanceInput) (entities.AttendanceRecord, error) {
	c, err := u.attendableContract(ctx, providerID, contractID)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}

	now := u.now().UTC()
	r := entities.AttendanceRecord{
		ID:           uuid.NewString(),
		ContractID:   c.ID,
		OccurredAt:   in.OccurredAt,
		Status:       in.Status,
		SubstituteAt: in.SubstituteAt,
		Amount:       in.Amount,
		PublicMemo:   strings.TrimSpace(in.PublicMemo),
		InternalMemo: strings.TrimSpace(in.InternalMemo),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validateRecord(c, &r); err != nil {
		return entities.AttendanceRecord{}, err
	}

	created, err := u.attendance.Create(ctx, r)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	u.log.Info().
		Str("contract_id", c.ID).
		Str("attendance_id", created.ID).
		Str("status", string(created.Status)).
		Msg("attendance recorded")

	u.fire(ctx, c, created.EffectiveAt())
	return created, nil
}

// Correct rewrites a record. Both the old and the new effective instants are
// recomputed, since the record may have moved between invoices.
func (u *AttendanceUseCase) Correct(ctx context.Context, providerID, contractID, id string, in CorrectAttendanceInput) (entities.AttendanceRecord, error) {
	c, err := u.attendableContract(ctx, providerID, contractID)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	r, err := u.loadRecord(ctx, c.ID, id)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	before := r.EffectiveAt()

	if in.OccurredAt != nil {
		r.OccurredAt = *in.OccurredAt
	}
	if in.Status != nil {
		r.Status = *in.Status
	}
	if in.SubstituteAt != nil {
		r.SubstituteAt = in.SubstituteAt
	}
	if r.Status != entities.AttendanceSubstitute {
		r.SubstituteAt = nil
	}
	if in.Amount != nil {
		r.Amount = in.Amount
	}
	if in.PublicMemo != nil {
		r.PublicMemo = strings.TrimSpace(*in.PublicMemo)
	}
	if in.InternalMemo != nil {
		r.InternalMemo = strings.TrimSpace(*in.InternalMemo)
	}
	if err := validateRecord(c, &r); err != nil {
		return entities.AttendanceRecord{}, err
	}
	r.UpdatedAt = u.now().UTC()

	updated, err := u.attendance.Update(ctx, r)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	if updated.ID == "" {
		return entities.AttendanceRecord{}, ErrAttendanceNotFound
	}
	u.log.Info().Str("contract_id", c.ID).Str("attendance_id", updated.ID).Msg("attendance corrected")

	u.fire(ctx, c, before, updated.EffectiveAt())
	return updated, nil
}

// Void cancels a record. Voided records are kept but never counted.
func (u *AttendanceUseCase) Void(ctx context.Context, providerID, contractID, id string) (entities.AttendanceRecord, error) {
	c, err := u.attendableContract(ctx, providerID, contractID)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	r, err := u.loadRecord(ctx, c.ID, id)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}

	now := u.now().UTC()
	r.Voided = true
	r.VoidedAt = &now
	r.UpdatedAt = now

	updated, err := u.attendance.Update(ctx, r)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	if updated.ID == "" {
		return entities.AttendanceRecord{}, ErrAttendanceNotFound
	}
	u.log.Info().Str("contract_id", c.ID).Str("attendance_id", updated.ID).Msg("attendance voided")

	u.fire(ctx, c, updated.EffectiveAt())
	return updated, nil
}

func (u *AttendanceUseCase) ListByContract(ctx context.Context, providerID, contractID string) ([]entities.AttendanceRecord, error) {
	c, err := loadOwnedContract(ctx, u.contracts, providerID, contractID)
	if err != nil {
		return nil, err
	}
	return u.attendance.ListByContract(ctx, c.ID)
}

func (u *AttendanceUseCase) attendableContract(ctx context.Context, providerID, contractID string) (entities.Contract, error) {
	c, err := loadOwnedContract(ctx, u.contracts, providerID, contractID)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status.Rank() < entities.ContractStatusConfirmed.Rank() {
		return entities.Contract{}, fmt.Errorf("%w: attendance needs a confirmed contract", ErrInvalidContractState)
	}
	return c, nil
}

func (u *AttendanceUseCase) loadRecord(ctx context.Context, contractID, id string) (entities.AttendanceRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AttendanceRecord{}, ErrAttendanceNotFound
	}
	r, err := u.attendance.GetByID(ctx, id)
	if err != nil {
		return entities.AttendanceRecord{}, err
	}
	if r.ID == "" || r.ContractID != contractID {
		return entities.AttendanceRecord{}, ErrAttendanceNotFound
	}
	if r.Voided {
		return entities.AttendanceRecord{}, ErrAttendanceVoided
	}
	return r, nil
}

func (u *AttendanceUseCase) fire(ctx context.Context, c entities.Contract, instants ...time.Time) {
	bestEffort(u.log, u.metrics, "trigger_attendance_changed", func() error {
		return u.trigger.OnAttendanceChanged(ctx, c, instants...)
	})
}

// validateRecord checks r against the contract pricing. Amount passes fall
// back to the per-session amount when no amount is given.
func validateRecord(c entities.Contract, r *entities.AttendanceRecord) error {
	if r.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", ErrInvalidAttendanceInput)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidAttendanceInput, r.Status)
	}
	if r.SubstituteAt != nil && r.Status != entities.AttendanceSubstitute {
		return fmt.Errorf("%w: substitute_at is only valid for substitute records", ErrInvalidAttendanceInput)
	}

	if c.Pricing.Kind != entities.PricingKindAmount {
		if r.Amount != nil {
			return fmt.Errorf("%w: amount is only valid for amount passes", ErrInvalidAttendanceInput)
		}
		return nil
	}
	if r.Amount == nil {
		if !c.PerSessionAmount.IsPositive() {
			return fmt.Errorf("%w: amount is required", ErrInvalidAttendanceInput)
		}
		amount := c.PerSessionAmount
		r.Amount = &amount
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidAttendanceInput)
	}
	return nil
}
