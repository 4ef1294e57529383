package billing

import (
	"time"
)

// maxPeriods bounds period walks for contracts without an end date.
const maxPeriods = 1200

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t's date lies within the period.
func (p Period) Contains(t time.Time) bool {
	d := DateOf(t.In(p.Start.Location()))
	return !d.Before(p.Start) && !d.After(p.End)
}

// Window converts the inclusive date range into a half-open instant range.
func (p Period) Window() Window {
	from := p.Start
	to := p.End.AddDate(0, 0, 1)
	return Window{From: &from, To: &to}
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PriorMonth returns the calendar month before (year, month).
func PriorMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

// SameMonth reports whether t falls in (year, month) in t's location.
func SameMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// ExpectedSessionCount counts the dates of the month whose weekday is in
// weekdays. Duplicate weekdays are counted once.
func ExpectedSessionCount(weekdays []time.Weekday, year int, month time.Month) int {
	if len(weekdays) == 0 {
		return 0
	}
	set := make(map[time.Weekday]struct{}, len(weekdays))
	for _, d := range weekdays {
		set[d] = struct{}{}
	}

	count := 0
	days := DaysIn(year, month)
	for day := 1; day <= days; day++ {
		wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		if _, ok := set[wd]; ok {
			count++
		}
	}
	return count
}

// addMonthsOnDay moves t by months and places it on day, clamped to the
// target month's last day.
func addMonthsOnDay(t time.Time, months, day int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if maxDay := DaysIn(first.Year(), first.Month()); day > maxDay {
		day = maxDay
	}
	if day < 1 {
		day = 1
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func clipToEnd(p Period, contractEnd *time.Time) Period {
	if contractEnd == nil {
		return p
	}
	end := DateOf(contractEnd.In(p.Start.Location()))
	if end.Before(p.End) {
		p.End = end
	}
	return p
}

// DefaultPeriodBoundaries computes the billing period of invoice seq.
//
// Period 1 is [start, start+1 month-1 day]. Period N starts the day after the
// prior period's end and ends the day before the billing day of the following
// month. Both are clipped to the contract end. When prior is nil for seq > 1
// the chain is walked from period 1.
func DefaultPeriodBoundaries(contractStart time.Time, contractEnd *time.Time, billingDay *int, seq int, prior *Period) Period {
	start := DateOf(contractStart)
	if seq <= 1 {
		end := addMonthsOnDay(start, 1, start.Day()).AddDate(0, 0, -1)
		return clipToEnd(Period{Start: start, End: end}, contractEnd)
	}

	if prior == nil {
		p := DefaultPeriodBoundaries(contractStart, contractEnd, billingDay, 1, nil)
		for i := 2; i <= seq; i++ {
			p = DefaultPeriodBoundaries(contractStart, contractEnd, billingDay, i, &p)
		}
		return p
	}

	day := start.Day()
	if billingDay != nil && *billingDay > 0 {
		day = *billingDay
	}
	next := DateOf(prior.End).AddDate(0, 0, 1)
	end := addMonthsOnDay(next, 1, day).AddDate(0, 0, -1)
	return clipToEnd(Period{Start: next, End: end}, contractEnd)
}

// PeriodContaining finds the period sequence number whose range holds date.
// It returns false when date is before the contract start or after its end.
func PeriodContaining(contractStart time.Time, contractEnd *time.Time, billingDay *int, date time.Time) (int, Period, bool) {
	d := DateOf(date.In(contractStart.Location()))
	if d.Before(DateOf(contractStart)) {
		return 0, Period{}, false
	}
	if contractEnd != nil && d.After(DateOf(contractEnd.In(contractStart.Location()))) {
		return 0, Period{}, false
	}

	p := DefaultPeriodBoundaries(contractStart, contractEnd, billingDay, 1, nil)
	for seq := 1; seq <= maxPeriods; seq++ {
		if p.Contains(d) {
			return seq, p, true
		}
		if contractEnd != nil && !p.End.Before(DateOf(contractEnd.In(contractStart.Location()))) {
			break
		}
		p = DefaultPeriodBoundaries(contractStart, contractEnd, billingDay, seq+1, &p)
	}
	return 0, Period{}, false
}
