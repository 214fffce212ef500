package queries

import (
	"context"
	"time"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/components/calendar"
)

// CalendarWindowInput identifies a booking grid request.
type CalendarWindowInput struct {
	BotID  string
	View   calendar.ViewMode
	Anchor time.Time
}

type calendarService interface {
	LoadWindow(ctx context.Context, botID string, view calendar.ViewMode, anchor time.Time) (*calendar.Window, error)
}

// CalendarWindowQuery executes read-only booking grid resolution.
type CalendarWindowQuery struct {
	service calendarService
}

// NewCalendarWindowQuery builds the query.
func NewCalendarWindowQuery(service calendarService) *CalendarWindowQuery {
	return &CalendarWindowQuery{service: service}
}

var _ gocommand.Querier[CalendarWindowInput, *calendar.Window] = (*CalendarWindowQuery)(nil)

// Query resolves the laid-out window for the request.
func (q *CalendarWindowQuery) Query(ctx context.Context, input CalendarWindowInput) (*calendar.Window, error) {
	return q.service.LoadWindow(ctx, input.BotID, input.View, input.Anchor)
}
