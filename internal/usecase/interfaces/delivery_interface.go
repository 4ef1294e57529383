package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// INotifier publishes domain events (push, kakao). Delivery is best effort.
type INotifier interface {
	Notify(ctx context.Context, event string, payload map[string]any) error
}

type ISmsSender interface {
	SendSms(ctx context.Context, phone, message string) error
}

// PaymentLinkRequest describes the single line item of a payment link.
type PaymentLinkRequest struct {
	InvoiceID string
	Title     string
	Amount    decimal.Decimal
	PayerName string
}

// IPaymentLinkProvider abstracts external payment providers (e.g. Mercado
// Pago). It returns a URL the client can open to pay the invoice.
type IPaymentLinkProvider interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (string, error)
}
