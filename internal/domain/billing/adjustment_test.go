package billing

import (
	"testing"
	"time"

	"lesson_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func calendarPolicy(absence entities.AbsencePolicy) entities.PolicySnapshot {
	return entities.PolicySnapshot{
		BillingMode:   entities.BillingModePrepaid,
		AbsencePolicy: absence,
		Price:         decimal.NewFromInt(100000),
		Pricing:       entities.CalendarPricing(time.Tuesday, time.Thursday),
	}
}

func record(id string, at time.Time, status entities.AttendanceStatus) entities.AttendanceRecord {
	return entities.AttendanceRecord{ID: id, ContractID: "c-1", OccurredAt: at, Status: status, CreatedAt: at}
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.NewFromInt(want).Equal(got), "expected %d, got %s", want, got.String())
}

func TestUnitPrice(t *testing.T) {
	t.Run("explicit per-session amount wins", func(t *testing.T) {
		p := entities.PolicySnapshot{
			Price:            decimal.NewFromInt(100000),
			Pricing:          entities.SessionsPricing(10),
			PerSessionAmount: decimal.NewFromInt(7000),
		}
		assertDecimal(t, 7000, UnitPrice(p, 2024, time.January))
	})

	t.Run("session pass divides by total sessions", func(t *testing.T) {
		p := entities.PolicySnapshot{Price: decimal.NewFromInt(100000), Pricing: entities.SessionsPricing(10)}
		assertDecimal(t, 10000, UnitPrice(p, 2024, time.January))
	})

	t.Run("division truncates", func(t *testing.T) {
		p := entities.PolicySnapshot{Price: decimal.NewFromInt(100000), Pricing: entities.SessionsPricing(3)}
		assertDecimal(t, 33333, UnitPrice(p, 2024, time.January))
	})

	t.Run("calendar divides by expected sessions", func(t *testing.T) {
		assertDecimal(t, 11111, UnitPrice(calendarPolicy(entities.AbsencePolicyDeductNext), 2024, time.January))
	})

	t.Run("amount pass without per-session amount has no unit", func(t *testing.T) {
		p := entities.PolicySnapshot{Price: decimal.NewFromInt(300000), Pricing: entities.AmountPricing()}
		assert.True(t, UnitPrice(p, 2024, time.January).IsZero())
	})
}

func TestAutoAdjustment_CalendarScenario(t *testing.T) {
	policy := calendarPolicy(entities.AbsencePolicyDeductNext)
	records := []entities.AttendanceRecord{
		record("a1", date(2024, time.January, 9), entities.AttendanceAbsent),
		record("a2", date(2024, time.January, 18), entities.AttendanceAbsent),
		record("p1", date(2024, time.January, 2), entities.AttendancePresent),
		record("feb", date(2024, time.February, 1), entities.AttendanceAbsent),
	}

	assert.Equal(t, 9, ExpectedSessionCount(policy.Pricing.Weekdays, 2024, time.January))
	assertDecimal(t, -22222, AutoAdjustment(policy, records, 2024, time.January, nil))
}

func TestAutoAdjustment_Policies(t *testing.T) {
	records := []entities.AttendanceRecord{
		record("a1", date(2024, time.January, 9), entities.AttendanceAbsent),
		record("v1", date(2024, time.January, 11), entities.AttendanceVanish),
		record("v2", date(2024, time.January, 16), entities.AttendanceVanish),
	}

	t.Run("deduct_next counts absences", func(t *testing.T) {
		assertDecimal(t, -11111, AutoAdjustment(calendarPolicy(entities.AbsencePolicyDeductNext), records, 2024, time.January, nil))
	})

	t.Run("vanish counts vanished sessions", func(t *testing.T) {
		assertDecimal(t, -22222, AutoAdjustment(calendarPolicy(entities.AbsencePolicyVanish), records, 2024, time.January, nil))
	})

	t.Run("carry_over defers to the next month", func(t *testing.T) {
		assert.True(t, AutoAdjustment(calendarPolicy(entities.AbsencePolicyCarryOver), records, 2024, time.January, nil).IsZero())
	})
}

func TestAutoAdjustment_Records(t *testing.T) {
	policy := calendarPolicy(entities.AbsencePolicyDeductNext)

	t.Run("voided records are ignored", func(t *testing.T) {
		voided := record("a1", date(2024, time.January, 9), entities.AttendanceAbsent)
		voided.Voided = true
		assert.True(t, AutoAdjustment(policy, []entities.AttendanceRecord{voided}, 2024, time.January, nil).IsZero())
	})

	t.Run("substitute without makeup date is an absence", func(t *testing.T) {
		sub := record("s1", date(2024, time.January, 9), entities.AttendanceSubstitute)
		assertDecimal(t, -11111, AutoAdjustment(policy, []entities.AttendanceRecord{sub}, 2024, time.January, nil))
	})

	t.Run("substitute with makeup date is consumption in the makeup month", func(t *testing.T) {
		sub := record("s1", date(2024, time.January, 30), entities.AttendanceSubstitute)
		sub.SubstituteAt = timePtr(date(2024, time.February, 6))
		assert.True(t, AutoAdjustment(policy, []entities.AttendanceRecord{sub}, 2024, time.January, nil).IsZero())
		assert.True(t, AutoAdjustment(policy, []entities.AttendanceRecord{sub}, 2024, time.February, nil).IsZero())
		assert.Empty(t, EffectiveRecords([]entities.AttendanceRecord{sub}, 2024, time.January, nil))
		assert.Len(t, EffectiveRecords([]entities.AttendanceRecord{sub}, 2024, time.February, nil), 1)
	})

	t.Run("window overrides the month filter", func(t *testing.T) {
		records := []entities.AttendanceRecord{
			record("a1", date(2024, time.January, 16), entities.AttendanceAbsent),
			record("a2", date(2024, time.February, 13), entities.AttendanceAbsent),
			record("a3", date(2024, time.February, 20), entities.AttendanceAbsent),
		}
		w := Period{Start: date(2024, time.January, 15), End: date(2024, time.February, 14)}.Window()
		assertDecimal(t, -22222, AutoAdjustment(policy, records, 2024, time.January, &w))
	})

	t.Run("missing denominator degrades to zero", func(t *testing.T) {
		amount := entities.PolicySnapshot{
			AbsencePolicy: entities.AbsencePolicyDeductNext,
			Price:         decimal.NewFromInt(300000),
			Pricing:       entities.AmountPricing(),
		}
		absent := record("a1", date(2024, time.January, 9), entities.AttendanceAbsent)
		assert.True(t, AutoAdjustment(amount, []entities.AttendanceRecord{absent}, 2024, time.January, nil).IsZero())
	})
}

func TestCarryOverAdjustment(t *testing.T) {
	policy := calendarPolicy(entities.AbsencePolicyCarryOver)

	t.Run("absence is deducted exactly once in the following month", func(t *testing.T) {
		records := []entities.AttendanceRecord{record("a1", date(2024, time.January, 9), entities.AttendanceAbsent)}

		total := decimal.Zero
		hits := 0
		for _, m := range []time.Month{time.January, time.February, time.March} {
			adj := AutoAdjustment(policy, records, 2024, m, nil).Add(CarryOverAdjustment(policy, records, 2024, m))
			if !adj.IsZero() {
				hits++
				assert.Equal(t, time.February, m)
			}
			total = total.Add(adj)
		}
		assert.Equal(t, 1, hits)
		assertDecimal(t, -11111, total)
	})

	t.Run("substitute made up in the current month counts against the prior month", func(t *testing.T) {
		sub := record("s1", date(2024, time.January, 30), entities.AttendanceSubstitute)
		sub.SubstituteAt = timePtr(date(2024, time.February, 6))
		assertDecimal(t, -11111, CarryOverAdjustment(policy, []entities.AttendanceRecord{sub}, 2024, time.February))
	})

	t.Run("substitute made up within the prior month is not carried", func(t *testing.T) {
		sub := record("s1", date(2024, time.January, 9), entities.AttendanceSubstitute)
		sub.SubstituteAt = timePtr(date(2024, time.January, 23))
		assert.True(t, CarryOverAdjustment(policy, []entities.AttendanceRecord{sub}, 2024, time.February).IsZero())
	})

	t.Run("year boundary", func(t *testing.T) {
		records := []entities.AttendanceRecord{record("a1", date(2023, time.December, 5), entities.AttendanceAbsent)}
		// December 2023 has 4 Tuesdays and 4 Thursdays.
		assertDecimal(t, -12500, CarryOverAdjustment(policy, records, 2024, time.January))
	})

	t.Run("other policies never carry", func(t *testing.T) {
		records := []entities.AttendanceRecord{record("a1", date(2024, time.January, 9), entities.AttendanceAbsent)}
		assert.True(t, CarryOverAdjustment(calendarPolicy(entities.AbsencePolicyDeductNext), records, 2024, time.February).IsZero())
	})
}

func TestCarriedSliceAdjustment(t *testing.T) {
	policy := entities.PolicySnapshot{
		AbsencePolicy: entities.AbsencePolicyCarryOver,
		Price:         decimal.NewFromInt(100000),
		Pricing:       entities.SessionsPricing(10),
	}
	cut := date(2024, time.January, 20)
	first := Window{To: &cut}
	second := Window{From: &cut}

	t.Run("absence of the prior slice is deducted once", func(t *testing.T) {
		records := []entities.AttendanceRecord{
			record("a1", date(2024, time.January, 5), entities.AttendanceAbsent),
			record("p1", date(2024, time.January, 6), entities.AttendancePresent),
		}
		assertDecimal(t, -10000, CarriedSliceAdjustment(policy, records, first, 2024, time.February))
		assert.True(t, CarriedSliceAdjustment(policy, records, second, 2024, time.February).IsZero())
		assert.True(t, AutoAdjustment(policy, records, 2024, time.January, &first).IsZero())
	})

	t.Run("substitutes count only without a makeup date", func(t *testing.T) {
		open := record("s1", date(2024, time.January, 5), entities.AttendanceSubstitute)
		madeUp := record("s2", date(2024, time.January, 6), entities.AttendanceSubstitute)
		madeUp.SubstituteAt = timePtr(date(2024, time.January, 9))
		records := []entities.AttendanceRecord{open, madeUp}
		assertDecimal(t, -10000, CarriedSliceAdjustment(policy, records, first, 2024, time.February))
	})

	t.Run("voided absences and other policies never carry", func(t *testing.T) {
		voided := record("a1", date(2024, time.January, 5), entities.AttendanceAbsent)
		voided.Voided = true
		assert.True(t, CarriedSliceAdjustment(policy, []entities.AttendanceRecord{voided}, first, 2024, time.February).IsZero())

		deduct := policy
		deduct.AbsencePolicy = entities.AbsencePolicyDeductNext
		absent := record("a2", date(2024, time.January, 5), entities.AttendanceAbsent)
		assert.True(t, CarriedSliceAdjustment(deduct, []entities.AttendanceRecord{absent}, first, 2024, time.February).IsZero())
	})
}
