package calendar

import "time"

// Range derives the active [from, to] window for a view mode and anchor date.
// Month spans the first through last day of the anchor's month; week spans the
// Sunday-to-Saturday week containing the anchor; day spans the anchor date.
// The end bound is always clamped to 23:59:59 local time.
func Range(view ViewMode, anchor time.Time) (time.Time, time.Time) {
	loc := anchor.Location()
	switch view {
	case ViewWeek:
		start := startOfDay(anchor).AddDate(0, 0, -int(anchor.Weekday()))
		return start, endOfDay(start.AddDate(0, 0, 6))
	case ViewDay:
		return startOfDay(anchor), endOfDay(anchor)
	default: // month
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		last := first.AddDate(0, 1, -1)
		return first, endOfDay(last)
	}
}

// Prev shifts the anchor back one unit of the current view.
func Prev(view ViewMode, anchor time.Time) time.Time {
	switch view {
	case ViewWeek:
		return anchor.AddDate(0, 0, -7)
	case ViewDay:
		return anchor.AddDate(0, 0, -1)
	default:
		return anchor.AddDate(0, -1, 0)
	}
}

// Next shifts the anchor forward one unit of the current view.
func Next(view ViewMode, anchor time.Time) time.Time {
	switch view {
	case ViewWeek:
		return anchor.AddDate(0, 0, 7)
	case ViewDay:
		return anchor.AddDate(0, 0, 1)
	default:
		return anchor.AddDate(0, 1, 0)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
