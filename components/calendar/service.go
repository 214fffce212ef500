package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chatstack/botadmin/pkg/backend"
	"github.com/chatstack/botadmin/pkg/session"
)

// Backend is the slice of the API client the calendar needs.
type Backend interface {
	Appointments(ctx context.Context, botID string) ([]backend.Appointment, error)
	CalendarEvents(ctx context.Context, botID string, from, to time.Time) ([]backend.CalendarEvent, error)
	CalendarConfig(ctx context.Context, botID string) (backend.CalendarConfig, error)
	CancelBooking(ctx context.Context, botID string, req backend.CancelBookingRequest) error
}

// Options configures the calendar service. Backend is required; everything
// else falls back to a safe default.
type Options struct {
	Backend   Backend
	Session   session.Store
	Telemetry Telemetry
	Logger    *slog.Logger
	Grid      GridConfig
}

// Service loads booking windows and drives the cancel flow.
type Service struct {
	backend   Backend
	session   session.Store
	telemetry Telemetry
	logger    *slog.Logger
	grid      GridConfig
}

// NewService builds a calendar service from options.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("calendar: backend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	grid := opts.Grid
	if grid.HourPixels == 0 {
		grid = DefaultGrid()
	}
	return &Service{
		backend:   opts.Backend,
		session:   opts.Session,
		telemetry: normalizeTelemetry(opts.Telemetry),
		logger:    logger,
		grid:      grid,
	}, nil
}

// DayLayout is one rendered day column.
type DayLayout struct {
	Key    string
	Timed  []Block
	AllDay []Block
}

// Window is a fully laid out calendar range.
type Window struct {
	View         ViewMode
	Anchor       time.Time
	From         time.Time
	To           time.Time
	Appointments []backend.Appointment
	Items        []Item
	Days         []DayLayout
}

// LoadWindow fetches appointments and events for the view's range, drops
// events already represented by an appointment, and lays out each day.
// Appointments are fetched first so the merge order is stable.
func (s *Service) LoadWindow(ctx context.Context, botID string, view ViewMode, anchor time.Time) (*Window, error) {
	from, to := Range(view, anchor)

	appts, err := s.backend.Appointments(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("calendar: load appointments: %w", err)
	}
	events, err := s.backend.CalendarEvents(ctx, botID, from, to)
	if err != nil {
		// The booking grid is still useful without the external feed.
		s.logger.Warn("calendar events unavailable", "bot_id", botID, "error", err)
		events = nil
	}

	inWindow := make([]backend.Appointment, 0, len(appts))
	for _, appt := range appts {
		if appt.StartTime.Before(from) || appt.StartTime.After(to) {
			continue
		}
		inWindow = append(inWindow, appt)
	}

	items := Items(inWindow, DedupeEvents(events, inWindow))
	win := &Window{
		View:         view,
		Anchor:       anchor,
		From:         from,
		To:           to,
		Appointments: inWindow,
		Items:        items,
		Days:         s.layoutDays(items),
	}

	s.telemetry.Record(ctx, "calendar.window_loaded", map[string]any{
		"bot_id": botID,
		"view":   string(view),
		"items":  len(items),
	})
	return win, nil
}

func (s *Service) layoutDays(items []Item) []DayLayout {
	byDay := make(map[string][]Item)
	var order []string
	for _, item := range items {
		key := DayKey(item.Start)
		if _, ok := byDay[key]; !ok {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], item)
	}
	days := make([]DayLayout, 0, len(order))
	for _, key := range order {
		timed, allDay := LayoutDay(byDay[key], s.grid)
		days = append(days, DayLayout{Key: key, Timed: timed, AllDay: allDay})
	}
	return days
}

// Cancel calls the booking cancel endpoint and patches the local copy to
// cancelled. The patch is optimistic: on success the caller keeps the updated
// slice until the next reload confirms it.
func (s *Service) Cancel(ctx context.Context, botID string, appts []backend.Appointment, appointmentID string) ([]backend.Appointment, error) {
	orgID := ""
	if s.session != nil {
		orgID = s.session.OrgID(ctx)
	}
	err := s.backend.CancelBooking(ctx, botID, backend.CancelBookingRequest{
		AppointmentID: appointmentID,
		OrgID:         orgID,
	})
	if err != nil {
		return appts, fmt.Errorf("calendar: cancel booking %s: %w", appointmentID, err)
	}

	out := make([]backend.Appointment, len(appts))
	copy(out, appts)
	for i := range out {
		if out[i].ID == appointmentID {
			out[i].Status = backend.StatusCancelled
		}
	}

	s.telemetry.Record(ctx, "calendar.booking_cancelled", map[string]any{
		"bot_id":         botID,
		"appointment_id": appointmentID,
	})
	return out, nil
}
