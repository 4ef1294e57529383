package billing

import (
	"sort"
	"time"

	"lesson_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ResolveInvoiceSlice returns the attendance window billed by invoice n.
//
// Invoice 1 covers everything before the first extension. Invoice k covers
// [ext[k-2].ExtendedAt, ext[k-1].ExtendedAt), open on the right for the last
// extension. Windows are half-open, so two extensions at the same instant
// leave the earlier one an empty slice, and a record at exactly an extension
// instant belongs to the later slice.
func ResolveInvoiceSlice(extensions []entities.Extension, n int) Window {
	if len(extensions) == 0 {
		if n <= 1 {
			return Window{}
		}
		return emptyWindow()
	}
	if n <= 1 {
		to := extensions[0].ExtendedAt
		return Window{To: &to}
	}
	if n-2 >= len(extensions) {
		return emptyWindow()
	}

	from := extensions[n-2].ExtendedAt
	if n-1 < len(extensions) {
		to := extensions[n-1].ExtendedAt
		return Window{From: &from, To: &to}
	}
	return Window{From: &from}
}

func emptyWindow() Window {
	var zero time.Time
	return Window{From: &zero, To: &zero}
}

// SliceOf returns the invoice number whose slice holds t.
func SliceOf(extensions []entities.Extension, t time.Time) int {
	n := 1
	for _, e := range extensions {
		if t.Before(e.ExtendedAt) {
			break
		}
		n++
	}
	return n
}

// Allotment is what a pass grants: a session count or a monetary balance.
type Allotment struct {
	Kind  entities.PricingKind
	Total decimal.Decimal
}

// Usage sums consumption of the records inside slice: one per consuming
// record for session passes, the recorded amount for amount passes.
func Usage(records []entities.AttendanceRecord, slice Window, kind entities.PricingKind) decimal.Decimal {
	used := decimal.Zero
	for _, r := range records {
		if !r.Consuming() || !slice.Contains(r.EffectiveAt()) {
			continue
		}
		used = used.Add(consumption(r, kind))
	}
	return used
}

func consumption(r entities.AttendanceRecord, kind entities.PricingKind) decimal.Decimal {
	if kind == entities.PricingKindAmount {
		return r.ConsumedAmount()
	}
	return decimal.NewFromInt(1)
}

// IsPriorSliceExhausted reports whether consumption inside slice has reached
// the allotment. A non-positive allotment is never exhausted.
func IsPriorSliceExhausted(records []entities.AttendanceRecord, slice Window, allotment Allotment) bool {
	if !allotment.Total.IsPositive() {
		return false
	}
	return Usage(records, slice, allotment.Kind).GreaterThanOrEqual(allotment.Total)
}

// ExhaustionPoint returns the effective instant of the consuming record whose
// cumulative usage first reaches allotment. Records are ordered by effective
// time, then creation time, then id, so the answer is stable under
// retroactive edits.
func ExhaustionPoint(records []entities.AttendanceRecord, allotment Allotment) (time.Time, bool) {
	if !allotment.Total.IsPositive() {
		return time.Time{}, false
	}

	consuming := make([]entities.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Consuming() {
			consuming = append(consuming, r)
		}
	}
	sort.SliceStable(consuming, func(i, j int) bool {
		a, b := consuming[i], consuming[j]
		if !a.EffectiveAt().Equal(b.EffectiveAt()) {
			return a.EffectiveAt().Before(b.EffectiveAt())
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	used := decimal.Zero
	for _, r := range consuming {
		used = used.Add(consumption(r, allotment.Kind))
		if used.GreaterThanOrEqual(allotment.Total) {
			return r.EffectiveAt(), true
		}
	}
	return time.Time{}, false
}

// ExtensionBase is the base amount of the invoice backed by e: the explicit
// extension price when given, otherwise unit price x added sessions for
// session passes and the added balance for amount passes.
func ExtensionBase(policy entities.PolicySnapshot, e entities.Extension, year int, month time.Month) decimal.Decimal {
	if e.ExtensionPrice != nil {
		return *e.ExtensionPrice
	}
	switch e.Kind {
	case entities.ExtensionKindSessions:
		return UnitPrice(policy, year, month).Mul(decimal.NewFromInt(int64(e.AddedSessions)))
	case entities.ExtensionKindAmount:
		return e.AddedAmount
	}
	return decimal.Zero
}
