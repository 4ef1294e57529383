package request

import (
	"strings"
	"time"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

type RecordAttendanceRequest struct {
	OccurredAt   time.Time        `json:"occurred_at" binding:"required"`
	Status       string           `json:"status" binding:"required" example:"present"`
	SubstituteAt *time.Time       `json:"substitute_at,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty" swaggertype:"string"`
	PublicMemo   string           `json:"public_memo"`
	InternalMemo string           `json:"internal_memo"`
}

func (r RecordAttendanceRequest) ToInput() usecase.RecordAttendanceInput {
	return usecase.RecordAttendanceInput{
		OccurredAt:   r.OccurredAt,
		Status:       entities.AttendanceStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		SubstituteAt: r.SubstituteAt,
		Amount:       r.Amount,
		PublicMemo:   r.PublicMemo,
		InternalMemo: r.InternalMemo,
	}
}

// CorrectAttendanceRequest is a partial update; absent fields are kept.
type CorrectAttendanceRequest struct {
	OccurredAt   *time.Time       `json:"occurred_at,omitempty"`
	Status       *string          `json:"status,omitempty"`
	SubstituteAt *time.Time       `json:"substitute_at,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty" swaggertype:"string"`
	PublicMemo   *string          `json:"public_memo,omitempty"`
	InternalMemo *string          `json:"internal_memo,omitempty"`
}

func (r CorrectAttendanceRequest) ToInput() usecase.CorrectAttendanceInput {
	in := usecase.CorrectAttendanceInput{
		OccurredAt:   r.OccurredAt,
		SubstituteAt: r.SubstituteAt,
		Amount:       r.Amount,
		PublicMemo:   r.PublicMemo,
		InternalMemo: r.InternalMemo,
	}
	if r.Status != nil {
		s := entities.AttendanceStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		in.Status = &s
	}
	return in
}
