package calendar

import "github.com/chatstack/botadmin/pkg/backend"

// DedupeEvents drops calendar events already represented by an appointment.
// A booking synced to the external calendar shows up in both fetches; the
// appointment variant wins so a slot is never double-counted.
func DedupeEvents(events []backend.CalendarEvent, appts []backend.Appointment) []backend.CalendarEvent {
	linked := make(map[string]struct{}, len(appts))
	for _, appt := range appts {
		if appt.ExternalEventID != "" {
			linked[appt.ExternalEventID] = struct{}{}
		}
		if appt.CalendarEventID != "" {
			linked[appt.CalendarEventID] = struct{}{}
		}
	}
	out := make([]backend.CalendarEvent, 0, len(events))
	for _, ev := range events {
		if _, ok := linked[ev.ID]; ok {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Items merges appointments and deduplicated events into render items,
// preserving fetch order (appointments first).
func Items(appts []backend.Appointment, events []backend.CalendarEvent) []Item {
	items := make([]Item, 0, len(appts)+len(events))
	for i := range appts {
		appt := appts[i]
		title := appt.Service
		if title == "" {
			title = appt.CustomerName
		}
		items = append(items, Item{
			ID:          appt.ID,
			Kind:        KindAppointment,
			Title:       title,
			Start:       appt.StartTime,
			End:         appt.EndTime,
			Appointment: &appt,
		})
	}
	for _, ev := range events {
		items = append(items, Item{
			ID:     ev.ID,
			Kind:   KindEvent,
			Title:  ev.Summary,
			Start:  ev.Start,
			End:    ev.End,
			AllDay: ev.AllDay,
		})
	}
	return items
}
