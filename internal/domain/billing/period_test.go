package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestExpectedSessionCount(t *testing.T) {
	cases := []struct {
		name     string
		weekdays []time.Weekday
		year     int
		month    time.Month
		want     int
	}{
		{name: "tue thu january 2024", weekdays: []time.Weekday{time.Tuesday, time.Thursday}, year: 2024, month: time.January, want: 9},
		{name: "mon wed fri february 2024", weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday}, year: 2024, month: time.February, want: 12},
		{name: "thursday leap february", weekdays: []time.Weekday{time.Thursday}, year: 2024, month: time.February, want: 5},
		{name: "duplicates counted once", weekdays: []time.Weekday{time.Tuesday, time.Tuesday}, year: 2024, month: time.January, want: 5},
		{name: "no weekdays", weekdays: nil, year: 2024, month: time.January, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExpectedSessionCount(tc.weekdays, tc.year, tc.month))
		})
	}
}

func TestDefaultPeriodBoundaries(t *testing.T) {
	t.Run("first period is one month minus a day", func(t *testing.T) {
		p := DefaultPeriodBoundaries(date(2024, time.January, 15), nil, intPtr(15), 1, nil)
		assert.Equal(t, date(2024, time.January, 15), p.Start)
		assert.Equal(t, date(2024, time.February, 14), p.End)
	})

	t.Run("next period starts after prior end", func(t *testing.T) {
		p1 := DefaultPeriodBoundaries(date(2024, time.January, 15), nil, intPtr(15), 1, nil)
		p2 := DefaultPeriodBoundaries(date(2024, time.January, 15), nil, intPtr(15), 2, &p1)
		assert.Equal(t, date(2024, time.February, 15), p2.Start)
		assert.Equal(t, date(2024, time.March, 14), p2.End)
	})

	t.Run("billing day different from start day", func(t *testing.T) {
		p1 := DefaultPeriodBoundaries(date(2024, time.January, 15), nil, intPtr(10), 1, nil)
		p2 := DefaultPeriodBoundaries(date(2024, time.January, 15), nil, intPtr(10), 2, &p1)
		assert.Equal(t, date(2024, time.February, 15), p2.Start)
		assert.Equal(t, date(2024, time.March, 9), p2.End)
	})

	t.Run("billing day clamped to short months in a leap year", func(t *testing.T) {
		start := date(2024, time.January, 31)
		p1 := DefaultPeriodBoundaries(start, nil, intPtr(31), 1, nil)
		assert.Equal(t, date(2024, time.February, 28), p1.End)

		p2 := DefaultPeriodBoundaries(start, nil, intPtr(31), 2, &p1)
		assert.Equal(t, date(2024, time.February, 29), p2.Start)
		assert.Equal(t, date(2024, time.March, 30), p2.End)

		p3 := DefaultPeriodBoundaries(start, nil, intPtr(31), 3, &p2)
		assert.Equal(t, date(2024, time.March, 31), p3.Start)
		assert.Equal(t, date(2024, time.April, 29), p3.End)
	})

	t.Run("billing day clamped in a common year", func(t *testing.T) {
		start := date(2023, time.January, 31)
		p1 := DefaultPeriodBoundaries(start, nil, intPtr(31), 1, nil)
		assert.Equal(t, date(2023, time.February, 27), p1.End)

		p2 := DefaultPeriodBoundaries(start, nil, intPtr(31), 2, &p1)
		assert.Equal(t, date(2023, time.February, 28), p2.Start)
		assert.Equal(t, date(2023, time.March, 30), p2.End)
	})

	t.Run("clipped to contract end", func(t *testing.T) {
		end := date(2024, time.January, 20)
		p := DefaultPeriodBoundaries(date(2024, time.January, 1), &end, nil, 1, nil)
		assert.Equal(t, date(2024, time.January, 1), p.Start)
		assert.Equal(t, end, p.End)
	})

	t.Run("nil billing day falls back to start day", func(t *testing.T) {
		p1 := DefaultPeriodBoundaries(date(2024, time.March, 5), nil, nil, 1, nil)
		p2 := DefaultPeriodBoundaries(date(2024, time.March, 5), nil, nil, 2, &p1)
		assert.Equal(t, date(2024, time.April, 5), p2.Start)
		assert.Equal(t, date(2024, time.May, 4), p2.End)
	})

	t.Run("walks the chain without a prior period", func(t *testing.T) {
		start := date(2024, time.January, 15)
		p1 := DefaultPeriodBoundaries(start, nil, intPtr(15), 1, nil)
		p2 := DefaultPeriodBoundaries(start, nil, intPtr(15), 2, &p1)
		p3 := DefaultPeriodBoundaries(start, nil, intPtr(15), 3, &p2)
		assert.Equal(t, p3, DefaultPeriodBoundaries(start, nil, intPtr(15), 3, nil))
	})
}

func TestPeriodContaining(t *testing.T) {
	start := date(2024, time.January, 15)
	end := date(2024, time.June, 30)

	seq, p, ok := PeriodContaining(start, &end, intPtr(15), date(2024, time.March, 20))
	require.True(t, ok)
	assert.Equal(t, 3, seq)
	assert.Equal(t, date(2024, time.March, 15), p.Start)
	assert.Equal(t, date(2024, time.April, 14), p.End)

	seq, p, ok = PeriodContaining(start, &end, intPtr(15), date(2024, time.June, 30))
	require.True(t, ok)
	assert.Equal(t, 6, seq)
	assert.Equal(t, end, p.End)

	_, _, ok = PeriodContaining(start, &end, intPtr(15), date(2024, time.January, 14))
	assert.False(t, ok)

	_, _, ok = PeriodContaining(start, &end, intPtr(15), date(2024, time.July, 1))
	assert.False(t, ok)
}

func TestPeriodWindow(t *testing.T) {
	p := Period{Start: date(2024, time.January, 1), End: date(2024, time.January, 31)}
	w := p.Window()

	assert.True(t, w.Contains(date(2024, time.January, 31).Add(23*time.Hour)))
	assert.False(t, w.Contains(date(2024, time.February, 1)))
	assert.True(t, p.Contains(date(2024, time.January, 31).Add(23*time.Hour)))
}

func TestPriorMonth(t *testing.T) {
	y, m := PriorMonth(2024, time.January)
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.December, m)
}
