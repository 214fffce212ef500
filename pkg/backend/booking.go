package backend

import (
	"context"
	"net/url"
	"time"
)

// Booking fetches a single booking via the public status endpoint.
func (c *Client) Booking(ctx context.Context, bookingID string) (Appointment, error) {
	var appt Appointment
	if err := c.get(ctx, "/api/booking/"+url.PathEscape(bookingID), &appt); err != nil {
		return Appointment{}, err
	}
	return appt, nil
}

// CancelPublicBooking cancels a booking through the public (unauthenticated)
// cancel link.
func (c *Client) CancelPublicBooking(ctx context.Context, bookingID string) error {
	return c.post(ctx, "/api/bookings/"+url.PathEscape(bookingID)+"/cancel", nil, nil)
}

// Appointments lists the bot's bookings for the organization.
func (c *Client) Appointments(ctx context.Context, botID string) ([]Appointment, error) {
	var appts []Appointment
	if err := c.get(ctx, "/api/bots/"+url.PathEscape(botID)+"/booking/appointments", &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// CalendarEvents lists the bot's external calendar events within [from, to].
func (c *Client) CalendarEvents(ctx context.Context, botID string, from, to time.Time) ([]CalendarEvent, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))
	var events []CalendarEvent
	path := "/api/bots/" + url.PathEscape(botID) + "/calendar/events?" + query.Encode()
	if err := c.get(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CalendarConfig reports the bot's external calendar linkage.
func (c *Client) CalendarConfig(ctx context.Context, botID string) (CalendarConfig, error) {
	var cfg CalendarConfig
	if err := c.get(ctx, "/api/bots/"+url.PathEscape(botID)+"/calendar/config", &cfg); err != nil {
		return CalendarConfig{}, err
	}
	return cfg, nil
}

// CancelBookingRequest identifies the appointment to cancel.
type CancelBookingRequest struct {
	AppointmentID string `json:"appointment_id"`
	OrgID         string `json:"org_id"`
}

// CancelBooking cancels an appointment through the authenticated endpoint.
func (c *Client) CancelBooking(ctx context.Context, botID string, req CancelBookingRequest) error {
	return c.post(ctx, "/api/bots/"+url.PathEscape(botID)+"/booking/cancel", req, nil)
}
