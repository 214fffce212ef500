package calendar

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/chatstack/botadmin/pkg/backend"
)

var csvHeader = []string{"id", "customer_name", "customer_email", "customer_phone", "service", "start_time", "end_time", "status"}

// ExportCSV flattens the appointment list into an RFC 4180 document. Embedded
// quotes are doubled so any standard parser round-trips the fields.
func ExportCSV(appts []backend.Appointment) (string, error) {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return "", fmt.Errorf("calendar: write csv header: %w", err)
	}
	for _, appt := range appts {
		record := []string{
			appt.ID,
			appt.CustomerName,
			appt.CustomerEmail,
			appt.CustomerPhone,
			appt.Service,
			appt.StartTime.Format(time.RFC3339),
			appt.EndTime.Format(time.RFC3339),
			string(appt.Status),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("calendar: write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("calendar: flush csv: %w", err)
	}
	return buf.String(), nil
}

// ExportICS serializes the appointment list as an iCalendar feed so operators
// can pull bookings into their own calendar clients.
func ExportICS(appts []backend.Appointment) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//botadmin//bookings//EN")
	for _, appt := range appts {
		event := cal.AddEvent(appt.ID)
		event.SetDtStampTime(time.Now().UTC())
		event.SetStartAt(appt.StartTime)
		event.SetEndAt(appt.EndTime)
		summary := appt.Service
		if summary == "" {
			summary = appt.CustomerName
		}
		event.SetSummary(summary)
		event.SetDescription(fmt.Sprintf("%s <%s> — %s", appt.CustomerName, appt.CustomerEmail, appt.Status))
		if appt.Status == backend.StatusCancelled {
			event.SetStatus(ics.ObjectStatusCancelled)
		}
	}
	return cal.Serialize()
}
