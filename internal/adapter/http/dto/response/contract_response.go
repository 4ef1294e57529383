package response

import (
	"time"

	"lesson_billing/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ContractResponse struct {
	ID               string                   `json:"id"`
	ProviderID       string                   `json:"provider_id"`
	ClientID         string                   `json:"client_id"`
	ClientName       string                   `json:"client_name"`
	ClientPhone      string                   `json:"client_phone,omitempty"`
	BillingMode      string                   `json:"billing_mode"`
	AbsencePolicy    string                   `json:"absence_policy"`
	Pricing          entities.PricingMode     `json:"pricing"`
	BasePrice        decimal.Decimal          `json:"base_price" swaggertype:"string"`
	PerSessionAmount decimal.Decimal          `json:"per_session_amount" swaggertype:"string"`
	TotalSessions    int                      `json:"total_sessions,omitempty"`
	BillingDay       *int                     `json:"billing_day,omitempty"`
	StartDate        *time.Time               `json:"start_date,omitempty"`
	EndDate          *time.Time               `json:"end_date,omitempty"`
	Status           string                   `json:"status"`
	ProviderSignedAt *time.Time               `json:"provider_signed_at,omitempty"`
	ClientSignedAt   *time.Time               `json:"client_signed_at,omitempty"`
	SentAt           *time.Time               `json:"sent_at,omitempty"`
	Policy           *entities.PolicySnapshot `json:"policy,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:               c.ID,
		ProviderID:       c.ProviderID,
		ClientID:         c.ClientID,
		ClientName:       c.ClientName,
		ClientPhone:      c.ClientPhone,
		BillingMode:      string(c.BillingMode),
		AbsencePolicy:    string(c.AbsencePolicy),
		Pricing:          c.Pricing,
		BasePrice:        c.BasePrice,
		PerSessionAmount: c.PerSessionAmount,
		TotalSessions:    c.TotalSessions,
		BillingDay:       c.BillingDay,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Status:           string(c.Status),
		ProviderSignedAt: c.ProviderSignedAt,
		ClientSignedAt:   c.ClientSignedAt,
		SentAt:           c.SentAt,
		Policy:           c.Policy,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromContracts(cs []entities.Contract) []ContractResponse {
	return lo.Map(cs, func(c entities.Contract, _ int) ContractResponse { return FromContract(c) })
}

type AttendanceResponse struct {
	ID           string           `json:"id"`
	ContractID   string           `json:"contract_id"`
	OccurredAt   time.Time        `json:"occurred_at"`
	Status       string           `json:"status"`
	SubstituteAt *time.Time       `json:"substitute_at,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty" swaggertype:"string"`
	Voided       bool             `json:"voided"`
	VoidedAt     *time.Time       `json:"voided_at,omitempty"`
	PublicMemo   string           `json:"public_memo,omitempty"`
	InternalMemo string           `json:"internal_memo,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func FromAttendance(r entities.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:           r.ID,
		ContractID:   r.ContractID,
		OccurredAt:   r.OccurredAt,
		Status:       string(r.Status),
		SubstituteAt: r.SubstituteAt,
		Amount:       r.Amount,
		Voided:       r.Voided,
		VoidedAt:     r.VoidedAt,
		PublicMemo:   r.PublicMemo,
		InternalMemo: r.InternalMemo,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func FromAttendanceRecords(rs []entities.AttendanceRecord) []AttendanceResponse {
	return lo.Map(rs, func(r entities.AttendanceRecord, _ int) AttendanceResponse { return FromAttendance(r) })
}
