package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestRangeMonth(t *testing.T) {
	cases := []struct {
		name   string
		anchor time.Time
		from   time.Time
		to     time.Time
	}{
		{
			name:   "mid year",
			anchor: date(2026, time.February, 14, 10, 30),
			from:   date(2026, time.February, 1, 0, 0),
			to:     time.Date(2026, time.February, 28, 23, 59, 59, 0, time.UTC),
		},
		{
			name:   "january stays in january",
			anchor: date(2026, time.January, 15, 9, 0),
			from:   date(2026, time.January, 1, 0, 0),
			to:     time.Date(2026, time.January, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:   "december stays in december",
			anchor: date(2025, time.December, 31, 23, 0),
			from:   date(2025, time.December, 1, 0, 0),
			to:     time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := Range(ViewMonth, tc.anchor)
			if !from.Equal(tc.from) {
				t.Errorf("month from = %v, want %v", from, tc.from)
			}
			if !to.Equal(tc.to) {
				t.Errorf("month to = %v, want %v", to, tc.to)
			}
		})
	}
}

func TestRangeWeekSpansYearBoundary(t *testing.T) {
	// Thursday 2026-01-01; the containing week starts Sunday 2025-12-28.
	from, to := Range(ViewWeek, date(2026, time.January, 1, 12, 0))

	if got, want := from, date(2025, time.December, 28, 0, 0); !got.Equal(want) {
		t.Errorf("week from = %v, want %v", got, want)
	}
	if got, want := to, time.Date(2026, time.January, 3, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Errorf("week to = %v, want %v", got, want)
	}
	if from.Weekday() != time.Sunday {
		t.Errorf("week starts on %v, want Sunday", from.Weekday())
	}
}

func TestRangeDay(t *testing.T) {
	from, to := Range(ViewDay, date(2026, time.March, 15, 18, 45))

	if got, want := from, date(2026, time.March, 15, 0, 0); !got.Equal(want) {
		t.Errorf("day from = %v, want %v", got, want)
	}
	if got, want := to, time.Date(2026, time.March, 15, 23, 59, 59, 0, time.UTC); !got.Equal(want) {
		t.Errorf("day to = %v, want %v", got, want)
	}
}

func TestPrevNextRoundTrip(t *testing.T) {
	anchor := date(2026, time.March, 15, 0, 0)
	for _, view := range []ViewMode{ViewMonth, ViewWeek, ViewDay} {
		if got := Prev(view, Next(view, anchor)); !got.Equal(anchor) {
			t.Errorf("%s: prev(next(anchor)) = %v, want %v", view, got, anchor)
		}
	}
}

func TestNextMonthLandsInFollowingMonth(t *testing.T) {
	got := Next(ViewMonth, date(2026, time.January, 15, 0, 0))
	if got.Month() != time.February {
		t.Errorf("next month anchor = %v, want February", got)
	}
}
