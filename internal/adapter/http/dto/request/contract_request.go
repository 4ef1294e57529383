package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidWeekday = errors.New("invalid weekday")
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// PricingRequest selects the pass kind. Weekdays accept "mon".."sun" or
// full English day names.
type PricingRequest struct {
	Kind          string   `json:"kind" binding:"required" example:"sessions"`
	TotalSessions int      `json:"total_sessions" example:"10"`
	Weekdays      []string `json:"weekdays" example:"tue,thu"`
}

func (r PricingRequest) ToPricing() (entities.PricingMode, error) {
	p := entities.PricingMode{
		Kind:          entities.PricingKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		TotalSessions: r.TotalSessions,
	}
	for _, raw := range r.Weekdays {
		key := strings.ToLower(strings.TrimSpace(raw))
		if len(key) > 3 {
			key = key[:3]
		}
		d, ok := weekdays[key]
		if !ok {
			return entities.PricingMode{}, fmt.Errorf("%w: %q", ErrInvalidWeekday, raw)
		}
		p.Weekdays = append(p.Weekdays, d)
	}
	return p, nil
}

type CreateContractRequest struct {
	ClientID         string           `json:"client_id" binding:"required"`
	ClientName       string           `json:"client_name"`
	ClientPhone      string           `json:"client_phone"`
	BillingMode      string           `json:"billing_mode" binding:"required" example:"prepaid"`
	AbsencePolicy    string           `json:"absence_policy" binding:"required" example:"deduct_next"`
	Pricing          PricingRequest   `json:"pricing"`
	BasePrice        decimal.Decimal  `json:"base_price" swaggertype:"string" example:"100000"`
	PerSessionAmount *decimal.Decimal `json:"per_session_amount,omitempty" swaggertype:"string"`
	BillingDay       *int             `json:"billing_day,omitempty"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
}

func (r CreateContractRequest) ToInput(providerID string) (usecase.CreateContractInput, error) {
	pricing, err := r.Pricing.ToPricing()
	if err != nil {
		return usecase.CreateContractInput{}, err
	}
	in := usecase.CreateContractInput{
		ProviderID:    providerID,
		ClientID:      strings.TrimSpace(r.ClientID),
		ClientName:    strings.TrimSpace(r.ClientName),
		ClientPhone:   strings.TrimSpace(r.ClientPhone),
		BillingMode:   entities.BillingMode(strings.ToLower(r.BillingMode)),
		AbsencePolicy: entities.AbsencePolicy(strings.ToLower(r.AbsencePolicy)),
		Pricing:       pricing,
		BasePrice:     r.BasePrice,
		BillingDay:    r.BillingDay,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
	if r.PerSessionAmount != nil {
		in.PerSessionAmount = *r.PerSessionAmount
	}
	return in, nil
}

type SignContractRequest struct {
	Party string `json:"party" binding:"required,oneof=provider client" example:"provider"`
}

type ExtendContractRequest struct {
	Kind           string           `json:"kind" binding:"required" example:"sessions"`
	AddedSessions  int              `json:"added_sessions"`
	AddedAmount    decimal.Decimal  `json:"added_amount" swaggertype:"string"`
	NewEndDate     *time.Time       `json:"new_end_date,omitempty"`
	ExtensionPrice *decimal.Decimal `json:"extension_price,omitempty" swaggertype:"string"`
}

func (r ExtendContractRequest) ToInput(extendedBy string) usecase.ExtendContractInput {
	return usecase.ExtendContractInput{
		Kind:           entities.ExtensionKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		AddedSessions:  r.AddedSessions,
		AddedAmount:    r.AddedAmount,
		NewEndDate:     r.NewEndDate,
		ExtensionPrice: r.ExtensionPrice,
		ExtendedBy:     extendedBy,
	}
}
