package response

import (
	"time"

	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type InvoiceResponse struct {
	ID                  string                      `json:"id"`
	ProviderID          string                      `json:"provider_id"`
	ClientID            string                      `json:"client_id"`
	ContractID          string                      `json:"contract_id"`
	Year                int                         `json:"year"`
	Month               int                         `json:"month"`
	InvoiceNumber       int                         `json:"invoice_number"`
	BaseAmount          decimal.Decimal             `json:"base_amount" swaggertype:"string"`
	AutoAdjustment      decimal.Decimal             `json:"auto_adjustment" swaggertype:"string"`
	ManualAdjustment    decimal.Decimal             `json:"manual_adjustment" swaggertype:"string"`
	ManualReason        string                      `json:"manual_reason,omitempty"`
	FinalAmount         decimal.Decimal             `json:"final_amount" swaggertype:"string"`
	PeriodStart         *time.Time                  `json:"period_start,omitempty"`
	PeriodEnd           *time.Time                  `json:"period_end,omitempty"`
	SendStatus          string                      `json:"send_status"`
	SendHistory         []entities.SendHistoryEntry `json:"send_history"`
	ForceToTodayBilling bool                        `json:"force_to_today_billing"`
	AccountSnapshot     *entities.PayoutAccount     `json:"account_snapshot,omitempty"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	history := inv.SendHistory
	if history == nil {
		history = []entities.SendHistoryEntry{}
	}
	return InvoiceResponse{
		ID:                  inv.ID,
		ProviderID:          inv.ProviderID,
		ClientID:            inv.ClientID,
		ContractID:          inv.ContractID,
		Year:                inv.Year,
		Month:               int(inv.Month),
		InvoiceNumber:       inv.InvoiceNumber,
		BaseAmount:          inv.BaseAmount,
		AutoAdjustment:      inv.AutoAdjustment,
		ManualAdjustment:    inv.ManualAdjustment,
		ManualReason:        inv.ManualReason,
		FinalAmount:         inv.FinalAmount,
		PeriodStart:         inv.PeriodStart,
		PeriodEnd:           inv.PeriodEnd,
		SendStatus:          string(inv.SendStatus),
		SendHistory:         history,
		ForceToTodayBilling: inv.ForceToTodayBilling,
		AccountSnapshot:     inv.AccountSnapshot,
		CreatedAt:           inv.CreatedAt,
		UpdatedAt:           inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	return lo.Map(invs, func(inv entities.Invoice, _ int) InvoiceResponse { return FromInvoice(inv) })
}

type SentInvoiceResponse struct {
	Invoice       InvoiceResponse `json:"invoice"`
	DisplayPeriod string          `json:"display_period"`
}

type SentGroupResponse struct {
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	Invoices []SentInvoiceResponse `json:"invoices"`
}

type BucketsResponse struct {
	InProgress []InvoiceResponse   `json:"in_progress"`
	DueToday   []InvoiceResponse   `json:"due_today"`
	Sent       []SentGroupResponse `json:"sent"`
}

func FromBuckets(b billing.Buckets) BucketsResponse {
	return BucketsResponse{
		InProgress: FromInvoices(b.InProgress),
		DueToday:   FromInvoices(b.DueToday),
		Sent: lo.Map(b.Sent, func(g billing.SentGroup, _ int) SentGroupResponse {
			return SentGroupResponse{
				Year:  g.Year,
				Month: int(g.Month),
				Invoices: lo.Map(g.Invoices, func(s billing.SentInvoice, _ int) SentInvoiceResponse {
					return SentInvoiceResponse{Invoice: FromInvoice(s.Invoice), DisplayPeriod: s.DisplayPeriod}
				}),
			}
		}),
	}
}

type SendResultResponse struct {
	InvoiceID string          `json:"invoice_id"`
	Channel   string          `json:"channel"`
	Success   bool            `json:"success"`
	Link      string          `json:"link,omitempty"`
	Detail    string          `json:"detail,omitempty"`
	Invoice   InvoiceResponse `json:"invoice"`
}

func FromSendResults(rs []usecase.SendResult) []SendResultResponse {
	return lo.Map(rs, func(r usecase.SendResult, _ int) SendResultResponse {
		return SendResultResponse{
			InvoiceID: r.InvoiceID,
			Channel:   string(r.Channel),
			Success:   r.Success,
			Link:      r.Link,
			Detail:    r.Detail,
			Invoice:   FromInvoice(r.Invoice),
		}
	})
}

type PayoutAccountResponse struct {
	ProviderID    string    `json:"provider_id"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"`
	AccountHolder string    `json:"account_holder"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPayoutAccount(a entities.PayoutAccount) PayoutAccountResponse {
	return PayoutAccountResponse{
		ProviderID:    a.ProviderID,
		BankName:      a.BankName,
		AccountNumber: a.AccountNumber,
		AccountHolder: a.AccountHolder,
		UpdatedAt:     a.UpdatedAt,
	}
}
