package billing

import (
	"time"

	"lesson_billing/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Window is a half-open instant range [From, To). Nil bounds are open.
type Window struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && !t.Before(*w.To) {
		return false
	}
	return true
}

// UnitPrice resolves the per-session price of a policy:
//  1. the explicit per-session amount, when positive
//  2. price / total sessions for session passes
//  3. price / expected sessions of (year, month) for calendar contracts
//
// Divisions are truncated to whole currency units. A zero result means no
// automatic adjustment can be computed.
func UnitPrice(policy entities.PolicySnapshot, year int, month time.Month) decimal.Decimal {
	if policy.PerSessionAmount.IsPositive() {
		return policy.PerSessionAmount
	}

	switch policy.Pricing.Kind {
	case entities.PricingKindSessions:
		if policy.Pricing.TotalSessions > 0 {
			return policy.Price.Div(decimal.NewFromInt(int64(policy.Pricing.TotalSessions))).Truncate(0)
		}
	case entities.PricingKindCalendar:
		if n := ExpectedSessionCount(policy.Pricing.Weekdays, year, month); n > 0 {
			return policy.Price.Div(decimal.NewFromInt(int64(n))).Truncate(0)
		}
	}
	return decimal.Zero
}

// EffectiveRecords keeps the non-voided records billed inside window, or
// inside (year, month) when window is nil.
func EffectiveRecords(records []entities.AttendanceRecord, year int, month time.Month, window *Window) []entities.AttendanceRecord {
	return lo.Filter(records, func(r entities.AttendanceRecord, _ int) bool {
		if r.Voided {
			return false
		}
		at := r.EffectiveAt()
		if window != nil {
			return window.Contains(at)
		}
		return SameMonth(at, year, month)
	})
}

// AutoAdjustment is the signed delta implied by absences in the billed
// window. carry_over contracts return zero here; their absences are billed
// by CarryOverAdjustment or CarriedSliceAdjustment on the following invoice.
func AutoAdjustment(policy entities.PolicySnapshot, records []entities.AttendanceRecord, year int, month time.Month, window *Window) decimal.Decimal {
	var counted entities.AttendanceStatus
	switch policy.AbsencePolicy {
	case entities.AbsencePolicyDeductNext:
		counted = entities.AttendanceAbsent
	case entities.AbsencePolicyVanish:
		counted = entities.AttendanceVanish
	default:
		return decimal.Zero
	}

	count := lo.CountBy(EffectiveRecords(records, year, month, window), func(r entities.AttendanceRecord) bool {
		return r.EffectiveStatus() == counted
	})
	return deduction(UnitPrice(policy, year, month), count)
}

// CarryOverAdjustment deducts the previous calendar month's absences from
// the invoice of (year, month). A substitute from the previous month counts
// when it has no makeup date or when its makeup lands in (year, month).
func CarryOverAdjustment(policy entities.PolicySnapshot, records []entities.AttendanceRecord, year int, month time.Month) decimal.Decimal {
	if policy.AbsencePolicy != entities.AbsencePolicyCarryOver {
		return decimal.Zero
	}

	py, pm := PriorMonth(year, month)
	count := lo.CountBy(records, func(r entities.AttendanceRecord) bool {
		if r.Voided || !SameMonth(r.OccurredAt, py, pm) {
			return false
		}
		switch r.Status {
		case entities.AttendanceAbsent:
			return true
		case entities.AttendanceSubstitute:
			return r.SubstituteAt == nil || SameMonth(*r.SubstituteAt, year, month)
		}
		return false
	})
	return deduction(UnitPrice(policy, py, pm), count)
}

// CarriedSliceAdjustment deducts the absences of a pass's prior slice from
// the invoice of (year, month). Substitutes without a makeup date count as
// absences; voided records never count.
func CarriedSliceAdjustment(policy entities.PolicySnapshot, records []entities.AttendanceRecord, prior Window, year int, month time.Month) decimal.Decimal {
	if policy.AbsencePolicy != entities.AbsencePolicyCarryOver {
		return decimal.Zero
	}

	count := lo.CountBy(records, func(r entities.AttendanceRecord) bool {
		return !r.Voided && prior.Contains(r.EffectiveAt()) && r.EffectiveStatus() == entities.AttendanceAbsent
	})
	return deduction(UnitPrice(policy, year, month), count)
}

func deduction(unit decimal.Decimal, count int) decimal.Decimal {
	if count == 0 || unit.IsZero() {
		return decimal.Zero
	}
	return unit.Mul(decimal.NewFromInt(int64(count))).Neg()
}
