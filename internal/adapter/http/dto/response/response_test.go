package response

import (
	"testing"
	"time"

	"lesson_billing/internal/domain/billing"
	"lesson_billing/internal/domain/entities"
	"lesson_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromContract(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Contract{
		ID:          "c-1",
		ProviderID:  "p-1",
		ClientID:    "cl-1",
		BillingMode: entities.BillingModePrepaid,
		Pricing:     entities.SessionsPricing(10),
		BasePrice:   decimal.NewFromInt(100000),
		Status:      entities.ContractStatusSent,
		SentAt:      &now,
		CreatedAt:   now,
	}

	res := FromContract(c)
	if res.ID != "c-1" || res.ProviderID != "p-1" || res.ClientID != "cl-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.BillingMode != "prepaid" || res.Status != "sent" {
		t.Fatalf("unexpected enums: %+v", res)
	}
	if !res.BasePrice.Equal(decimal.NewFromInt(100000)) || res.Pricing.TotalSessions != 10 {
		t.Fatalf("unexpected pricing: %+v", res)
	}
	if res.SentAt == nil || !res.SentAt.Equal(now) {
		t.Fatalf("unexpected sent_at: %+v", res.SentAt)
	}
	if got := FromContracts([]entities.Contract{c, c}); len(got) != 2 {
		t.Fatalf("expected 2 contracts, got %d", len(got))
	}
}

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:            "inv-1",
		Month:         time.March,
		InvoiceNumber: 2,
		FinalAmount:   decimal.NewFromInt(45000),
		SendStatus:    entities.SendStatusNotSent,
	}

	res := FromInvoice(inv)
	if res.Month != 3 || res.InvoiceNumber != 2 || res.SendStatus != "not_sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.SendHistory == nil {
		t.Fatalf("send_history should render as an empty list")
	}
}

func TestFromBuckets(t *testing.T) {
	b := billing.Buckets{
		DueToday: []entities.Invoice{{ID: "inv-1"}},
		Sent: []billing.SentGroup{{
			Year:     2024,
			Month:    time.January,
			Invoices: []billing.SentInvoice{{Invoice: entities.Invoice{ID: "inv-2"}, DisplayPeriod: "1회~10회"}},
		}},
	}

	res := FromBuckets(b)
	if len(res.InProgress) != 0 || len(res.DueToday) != 1 {
		t.Fatalf("unexpected buckets: %+v", res)
	}
	if len(res.Sent) != 1 || res.Sent[0].Month != 1 || res.Sent[0].Invoices[0].DisplayPeriod != "1회~10회" {
		t.Fatalf("unexpected sent group: %+v", res.Sent)
	}
}

func TestFromSendResults(t *testing.T) {
	res := FromSendResults([]usecase.SendResult{{
		InvoiceID: "inv-1",
		Channel:   entities.SendChannelSMS,
		Success:   false,
		Detail:    "sms delivery disabled",
		Invoice:   entities.Invoice{ID: "inv-1"},
	}})
	if len(res) != 1 || res[0].Channel != "sms" || res[0].Success || res[0].Invoice.ID != "inv-1" {
		t.Fatalf("unexpected send results: %+v", res)
	}
}
