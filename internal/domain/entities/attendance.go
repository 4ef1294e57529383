package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "present"
	AttendanceAbsent     AttendanceStatus = "absent"
	AttendanceSubstitute AttendanceStatus = "substitute"
	AttendanceVanish     AttendanceStatus = "vanish"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceSubstitute, AttendanceVanish:
		return true
	}
	return false
}

// AttendanceRecord is one occurrence of a session being consumed or missed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// Records are never deleted; cancellation sets Voided.
type AttendanceRecord struct {
	ID           string           `json:"id"`
	ContractID   string           `json:"contract_id"`
	OccurredAt   time.Time        `json:"occurred_at"`
	Status       AttendanceStatus `json:"status"`
	SubstituteAt *time.Time       `json:"substitute_at,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Voided       bool             `json:"voided"`
	VoidedAt     *time.Time       `json:"voided_at,omitempty"`
	PublicMemo   string           `json:"public_memo,omitempty"`
	InternalMemo string           `json:"internal_memo,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// EffectiveAt is the instant the record is billed at: the makeup date for a
// substitute that has one, the occurrence otherwise.
func (r AttendanceRecord) EffectiveAt() time.Time {
	if r.Status == AttendanceSubstitute && r.SubstituteAt != nil {
		return *r.SubstituteAt
	}
	return r.OccurredAt
}

// EffectiveStatus treats a substitute without a makeup date as an absence.
func (r AttendanceRecord) EffectiveStatus() AttendanceStatus {
	if r.Status == AttendanceSubstitute && r.SubstituteAt == nil {
		return AttendanceAbsent
	}
	return r.Status
}

// Consuming reports whether the record draws from the contract's allotment.
func (r AttendanceRecord) Consuming() bool {
	return !r.Voided && r.Status.Valid()
}

// ConsumedAmount is the monetary draw for amount passes.
func (r AttendanceRecord) ConsumedAmount() decimal.Decimal {
	if r.Amount == nil {
		return decimal.Zero
	}
	return *r.Amount
}
