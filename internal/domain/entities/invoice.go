package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SendStatus tracks delivery of an invoice. Only not_sent -> sent is produced
// by this service; partial is accepted from imports and kept as is.
type SendStatus string

const (
	SendStatusNotSent SendStatus = "not_sent"
	SendStatusSent    SendStatus = "sent"
	SendStatusPartial SendStatus = "partial"
)

type SendChannel string

const (
	SendChannelSMS   SendChannel = "sms"
	SendChannelLink  SendChannel = "link"
	SendChannelKakao SendChannel = "kakao"
)

func (c SendChannel) Valid() bool {
	switch c {
	case SendChannelSMS, SendChannelLink, SendChannelKakao:
		return true
	}
	return false
}

// SendHistoryEntry is one delivery attempt. DisplayPeriod is frozen at send
// time and never recomputed.
type SendHistoryEntry struct {
	Channel       SendChannel `json:"channel"`
	SentAt        time.Time   `json:"sent_at"`
	DisplayPeriod string      `json:"display_period"`
	Success       bool        `json:"success"`
	Detail        string      `json:"detail,omitempty"`
}

// InvoiceKey is the uniqueness key of an invoice row.
type InvoiceKey struct {
	ClientID      string
	ContractID    string
	Year          int
	Month         time.Month
	InvoiceNumber int
}

func (k InvoiceKey) String() string {
	return fmt.Sprintf("%s#%s#%04d-%02d#%d", k.ClientID, k.ContractID, k.Year, int(k.Month), k.InvoiceNumber)
}

// Invoice is a statement for one contract covering one computed period.
//
// Storage model (DynamoDB):
//   - PK: invoice_key (client#contract#yyyy-mm#n)
//   - GSI1 (id-index): id
//   - GSI2 (contract_id-index): contract_id
//   - GSI3 (provider_id-index): provider_id
//
// Year/Month is the due month, not necessarily the service period.
type Invoice struct {
	ID            string     `json:"id"`
	ProviderID    string     `json:"provider_id"`
	ClientID      string     `json:"client_id"`
	ContractID    string     `json:"contract_id"`
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	InvoiceNumber int        `json:"invoice_number"`

	BaseAmount       decimal.Decimal `json:"base_amount"`
	AutoAdjustment   decimal.Decimal `json:"auto_adjustment"`
	ManualAdjustment decimal.Decimal `json:"manual_adjustment"`
	ManualReason     string          `json:"manual_reason,omitempty"`
	FinalAmount      decimal.Decimal `json:"final_amount"`

	PeriodStart *time.Time `json:"period_start,omitempty"`
	PeriodEnd   *time.Time `json:"period_end,omitempty"`

	SendStatus          SendStatus         `json:"send_status"`
	SendHistory         []SendHistoryEntry `json:"send_history"`
	ForceToTodayBilling bool               `json:"force_to_today_billing"`

	AccountSnapshot *PayoutAccount `json:"account_snapshot,omitempty"`

	// Version increments on every write and guards concurrent updates.
	Version int `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i Invoice) Key() InvoiceKey {
	return InvoiceKey{
		ClientID:      i.ClientID,
		ContractID:    i.ContractID,
		Year:          i.Year,
		Month:         i.Month,
		InvoiceNumber: i.InvoiceNumber,
	}
}

// Total is base + auto + manual.
func (i Invoice) Total() decimal.Decimal {
	return i.BaseAmount.Add(i.AutoAdjustment).Add(i.ManualAdjustment)
}

// LastSuccessfulSend returns the most recent successful delivery entry.
func (i Invoice) LastSuccessfulSend() (SendHistoryEntry, bool) {
	for idx := len(i.SendHistory) - 1; idx >= 0; idx-- {
		if i.SendHistory[idx].Success {
			return i.SendHistory[idx], true
		}
	}
	return SendHistoryEntry{}, false
}
