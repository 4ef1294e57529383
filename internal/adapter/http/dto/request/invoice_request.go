package request

import (
	"strings"

	"lesson_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type SendInvoicesRequest struct {
	InvoiceIDs []string `json:"invoice_ids" binding:"required,min=1"`
	Channel    string   `json:"channel" binding:"required" example:"sms"`
}

func (r SendInvoicesRequest) ResolveChannel() entities.SendChannel {
	return entities.SendChannel(strings.ToLower(strings.TrimSpace(r.Channel)))
}

type ForceToTodayRequest struct {
	Force *bool `json:"force" binding:"required"`
}

type ManualAdjustmentRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"-5000"`
	Reason string          `json:"reason" example:"holiday discount"`
}

type PutPayoutAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountHolder string `json:"account_holder" binding:"required"`
}
