package calendar

import (
	"strings"

	"github.com/chatstack/botadmin/pkg/backend"
)

// StatusFilter narrows the appointment list by lifecycle state.
type StatusFilter string

// Available status filters. FilterUpcoming excludes cancelled and completed
// bookings and keeps everything else.
const (
	FilterAll       StatusFilter = "all"
	FilterUpcoming  StatusFilter = "upcoming"
	FilterConfirmed StatusFilter = "confirmed"
	FilterCompleted StatusFilter = "completed"
	FilterCancelled StatusFilter = "cancelled"
)

// MatchesStatus applies the status predicate to one appointment.
func MatchesStatus(appt backend.Appointment, filter StatusFilter) bool {
	switch filter {
	case FilterUpcoming:
		return appt.Status != backend.StatusCancelled && appt.Status != backend.StatusCompleted
	case FilterConfirmed:
		return appt.Status == backend.StatusConfirmed
	case FilterCompleted:
		return appt.Status == backend.StatusCompleted
	case FilterCancelled:
		return appt.Status == backend.StatusCancelled
	default:
		return true
	}
}

// MatchesSearch applies a case-insensitive substring match against the
// appointment's id, name, email, phone, and service fields. An empty query
// matches everything.
func MatchesSearch(appt backend.Appointment, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, field := range []string{
		appt.ID,
		appt.CustomerName,
		appt.CustomerEmail,
		appt.CustomerPhone,
		appt.Service,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// FilterAppointments applies both predicates, preserving input order.
func FilterAppointments(appts []backend.Appointment, filter StatusFilter, query string) []backend.Appointment {
	out := make([]backend.Appointment, 0, len(appts))
	for _, appt := range appts {
		if MatchesStatus(appt, filter) && MatchesSearch(appt, query) {
			out = append(out, appt)
		}
	}
	return out
}
