package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicySnapshot is the copy of pricing terms taken when the contract is
// confirmed. Later changes to provider defaults never reach it; the only
// mutation is appending an Extension, which returns a new value.
type PolicySnapshot struct {
	BillingMode      BillingMode     `json:"billing_mode"`
	AbsencePolicy    AbsencePolicy   `json:"absence_policy"`
	Price            decimal.Decimal `json:"price"`
	Pricing          PricingMode     `json:"pricing"`
	PerSessionAmount decimal.Decimal `json:"per_session_amount"`
	CapturedAt       time.Time       `json:"captured_at"`
	Extensions       []Extension     `json:"extensions"`
}

type ExtensionKind string

const (
	ExtensionKindSessions ExtensionKind = "sessions"
	ExtensionKindAmount   ExtensionKind = "amount"
	ExtensionKindPeriod   ExtensionKind = "period"
)

// Extension records one contract renewal. Records are appended, never edited.
//
// PreviousTotal/NewTotal hold the allotment (sessions or balance) for
// sessions/amount extensions and are zero for period extensions.
type Extension struct {
	Seq            int              `json:"seq"`
	Kind           ExtensionKind    `json:"kind"`
	AddedSessions  int              `json:"added_sessions,omitempty"`
	AddedAmount    decimal.Decimal  `json:"added_amount"`
	NewEndDate     *time.Time       `json:"new_end_date,omitempty"`
	ExtensionPrice *decimal.Decimal `json:"extension_price,omitempty"`
	PreviousTotal  decimal.Decimal  `json:"previous_total"`
	NewTotal       decimal.Decimal  `json:"new_total"`
	ExtendedAt     time.Time        `json:"extended_at"`
	ExtendedBy     string           `json:"extended_by"`
}

// AddedAllotment is the number of sessions or the balance this extension adds.
func (e Extension) AddedAllotment() decimal.Decimal {
	switch e.Kind {
	case ExtensionKindSessions:
		return decimal.NewFromInt(int64(e.AddedSessions))
	case ExtensionKindAmount:
		return e.AddedAmount
	}
	return decimal.Zero
}

// Chained reports whether the extension gets its own invoice.
func (e Extension) Chained() bool {
	return e.Kind == ExtensionKindSessions || e.Kind == ExtensionKindAmount
}

// ChainExtensions returns the extensions that back invoices #2..#N, in order.
func (p PolicySnapshot) ChainExtensions() []Extension {
	out := make([]Extension, 0, len(p.Extensions))
	for _, e := range p.Extensions {
		if e.Chained() {
			out = append(out, e)
		}
	}
	return out
}

// InitialAllotment is the allotment billed by invoice #1.
func (p PolicySnapshot) InitialAllotment() decimal.Decimal {
	switch p.Pricing.Kind {
	case PricingKindSessions:
		return decimal.NewFromInt(int64(p.Pricing.TotalSessions))
	case PricingKindAmount:
		return p.Price
	}
	return decimal.Zero
}

// AllotmentThrough is the cumulative allotment covered by invoices 1..n.
func (p PolicySnapshot) AllotmentThrough(n int) decimal.Decimal {
	total := p.InitialAllotment()
	for i, e := range p.ChainExtensions() {
		if i+2 > n {
			break
		}
		total = total.Add(e.AddedAllotment())
	}
	return total
}

// CurrentAllotment is the allotment including every extension.
func (p PolicySnapshot) CurrentAllotment() decimal.Decimal {
	return p.AllotmentThrough(len(p.ChainExtensions()) + 1)
}

// TotalSessions is the captured session count plus session extensions.
func (p PolicySnapshot) TotalSessions() int {
	total := p.Pricing.TotalSessions
	for _, e := range p.Extensions {
		total += e.AddedSessions
	}
	return total
}

// WithExtension returns a copy of the snapshot with e appended.
func (p PolicySnapshot) WithExtension(e Extension) PolicySnapshot {
	exts := make([]Extension, len(p.Extensions), len(p.Extensions)+1)
	copy(exts, p.Extensions)
	e.Seq = len(exts) + 1
	p.Extensions = append(exts, e)
	return p
}
