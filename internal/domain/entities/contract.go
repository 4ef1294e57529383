package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle of a contract.
//
// Transitions are one-way: draft -> confirmed -> sent.
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusConfirmed ContractStatus = "confirmed"
	ContractStatusSent      ContractStatus = "sent"
)

// Rank orders statuses so transitions can be checked as "only forward".
func (s ContractStatus) Rank() int {
	switch s {
	case ContractStatusDraft:
		return 0
	case ContractStatusConfirmed:
		return 1
	case ContractStatusSent:
		return 2
	}
	return -1
}

type BillingMode string

const (
	BillingModePrepaid  BillingMode = "prepaid"
	BillingModePostpaid BillingMode = "postpaid"
)

func (m BillingMode) Valid() bool {
	return m == BillingModePrepaid || m == BillingModePostpaid
}

// AbsencePolicy decides how absences move money between invoices.
type AbsencePolicy string

const (
	AbsencePolicyCarryOver  AbsencePolicy = "carry_over"
	AbsencePolicyDeductNext AbsencePolicy = "deduct_next"
	AbsencePolicyVanish     AbsencePolicy = "vanish"
)

func (p AbsencePolicy) Valid() bool {
	switch p {
	case AbsencePolicyCarryOver, AbsencePolicyDeductNext, AbsencePolicyVanish:
		return true
	}
	return false
}

// Contract is an agreement between a provider and a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (provider_id-index): provider_id
//   - GSI2 (status-index): status
//
// BasePrice and TotalSessions are the running contract terms and are bumped by
// extensions. Policy is the pricing source of truth for invoices once the
// contract is confirmed.
type Contract struct {
	ID          string `json:"id"`
	ProviderID  string `json:"provider_id"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`

	BillingMode      BillingMode     `json:"billing_mode"`
	AbsencePolicy    AbsencePolicy   `json:"absence_policy"`
	Pricing          PricingMode     `json:"pricing"`
	BasePrice        decimal.Decimal `json:"base_price"`
	PerSessionAmount decimal.Decimal `json:"per_session_amount"`
	TotalSessions    int             `json:"total_sessions,omitempty"`
	BillingDay       *int            `json:"billing_day,omitempty"`
	StartDate        *time.Time      `json:"start_date,omitempty"`
	EndDate          *time.Time      `json:"end_date,omitempty"`

	Status           ContractStatus `json:"status"`
	ProviderSignedAt *time.Time     `json:"provider_signed_at,omitempty"`
	ClientSignedAt   *time.Time     `json:"client_signed_at,omitempty"`
	SentAt           *time.Time     `json:"sent_at,omitempty"`

	Policy *PolicySnapshot `json:"policy,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BothSigned reports whether the contract can move to confirmed.
func (c Contract) BothSigned() bool {
	return c.ProviderSignedAt != nil && c.ClientSignedAt != nil
}

// CaptureSnapshot freezes the current pricing terms. It is called once, at
// confirmation.
func (c Contract) CaptureSnapshot(at time.Time) PolicySnapshot {
	pricing := c.Pricing
	pricing.Weekdays = append([]time.Weekday(nil), c.Pricing.Weekdays...)
	return PolicySnapshot{
		BillingMode:      c.BillingMode,
		AbsencePolicy:    c.AbsencePolicy,
		Price:            c.BasePrice,
		Pricing:          pricing,
		PerSessionAmount: c.PerSessionAmount,
		CapturedAt:       at,
	}
}

// PricingKind tags the PricingMode variant.
type PricingKind string

const (
	PricingKindSessions PricingKind = "sessions"
	PricingKindAmount   PricingKind = "amount"
	PricingKindCalendar PricingKind = "calendar"
)

// PricingMode is decided at contract creation and never re-derived:
//   - sessions: a pass of TotalSessions consumable sessions
//   - amount: a monetary balance equal to the price, consumed per attendance
//   - calendar: a monthly fee for a weekly recurrence on Weekdays
type PricingMode struct {
	Kind          PricingKind    `json:"kind"`
	TotalSessions int            `json:"total_sessions,omitempty"`
	Weekdays      []time.Weekday `json:"weekdays,omitempty"`
}

func SessionsPricing(total int) PricingMode {
	return PricingMode{Kind: PricingKindSessions, TotalSessions: total}
}

func AmountPricing() PricingMode {
	return PricingMode{Kind: PricingKindAmount}
}

func CalendarPricing(weekdays ...time.Weekday) PricingMode {
	return PricingMode{Kind: PricingKindCalendar, Weekdays: weekdays}
}

// CountBased is true for session and amount passes, which bill through the
// extension chain instead of calendar periods.
func (m PricingMode) CountBased() bool {
	return m.Kind == PricingKindSessions || m.Kind == PricingKindAmount
}

func (m PricingMode) Validate() error {
	switch m.Kind {
	case PricingKindSessions:
		if m.TotalSessions <= 0 {
			return fmt.Errorf("sessions pricing requires total_sessions > 0")
		}
	case PricingKindAmount:
	case PricingKindCalendar:
		if len(m.Weekdays) == 0 {
			return fmt.Errorf("calendar pricing requires at least one weekday")
		}
		for _, d := range m.Weekdays {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("invalid weekday %d", d)
			}
		}
	default:
		return fmt.Errorf("unknown pricing kind %q", m.Kind)
	}
	return nil
}
