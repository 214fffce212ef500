package calendar

import (
	"time"

	"github.com/chatstack/botadmin/pkg/backend"
)

// ViewMode selects the grid granularity.
type ViewMode string

// Supported view modes.
const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

// ItemKind distinguishes appointment blocks from external calendar events.
type ItemKind string

// Block sources.
const (
	KindAppointment ItemKind = "appointment"
	KindEvent       ItemKind = "event"
)

// Item is the unified render input: either an appointment or a deduplicated
// external calendar event.
type Item struct {
	ID     string
	Kind   ItemKind
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool
	// Appointment is set when Kind is KindAppointment so detail modals and
	// cancellation have the full record.
	Appointment *backend.Appointment
}

// GridConfig describes the pixel geometry of the timed lane.
type GridConfig struct {
	// StartHour is the first rendered hour (0 = midnight).
	StartHour int
	// Hours is the number of rendered hours.
	Hours int
	// HourPixels is the pixel height of one hour row.
	HourPixels float64
	// MinBlockPixels floors a block's height so zero-duration items stay
	// visible.
	MinBlockPixels float64
}

// DefaultGrid mirrors the dashboard's 24-hour, 40px-per-hour layout.
func DefaultGrid() GridConfig {
	return GridConfig{StartHour: 0, Hours: 24, HourPixels: 40, MinBlockPixels: 12}
}

// TotalPixels is the full height of the timed lane.
func (g GridConfig) TotalPixels() float64 {
	return float64(g.Hours) * g.HourPixels
}

// Block is a positioned item ready for rendering.
type Block struct {
	Item
	DayKey string
	Top    float64
	Height float64
	// Column is the zero-based slot within the day's overlap group; Columns is
	// the divisor for the rendered width (100% / Columns).
	Column  int
	Columns int
}

// WidthPercent is the rendered width of the block.
func (b Block) WidthPercent() float64 {
	if b.Columns <= 0 {
		return 100
	}
	return 100 / float64(b.Columns)
}

// DayKey formats the local wall-clock date used to bucket blocks per day.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
