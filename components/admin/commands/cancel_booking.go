package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/pkg/activity"
	"github.com/chatstack/botadmin/pkg/backend"
)

// CancelBookingInput captures a booking cancellation request.
type CancelBookingInput struct {
	BotID         string `json:"bot_id"`
	AppointmentID string `json:"appointment_id"`
	ActorID       string `json:"actor_id"`
	TenantID      string `json:"tenant_id"`
}

type cancelService interface {
	Cancel(ctx context.Context, botID string, appts []backend.Appointment, appointmentID string) ([]backend.Appointment, error)
}

// CancelBookingCommand wraps calendar.Service.Cancel.
type CancelBookingCommand struct {
	service   cancelService
	emitter   *activity.Emitter
	telemetry Telemetry
}

// NewCancelBookingCommand creates the command.
func NewCancelBookingCommand(service cancelService, emitter *activity.Emitter, telemetry Telemetry) *CancelBookingCommand {
	return &CancelBookingCommand{service: service, emitter: emitter, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[CancelBookingInput] = (*CancelBookingCommand)(nil)

// Execute cancels the appointment.
func (c *CancelBookingCommand) Execute(ctx context.Context, msg CancelBookingInput) error {
	if c.service == nil {
		return errors.New("cancel command requires service")
	}
	if msg.BotID == "" || msg.AppointmentID == "" {
		return errors.New("cancel command requires bot and appointment ids")
	}
	if _, err := c.service.Cancel(ctx, msg.BotID, nil, msg.AppointmentID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.booking.cancel", map[string]any{
		"bot_id":         msg.BotID,
		"appointment_id": msg.AppointmentID,
	})
	_ = c.emitter.Emit(ctx, activity.Event{
		Verb:       "cancel",
		ActorID:    msg.ActorID,
		TenantID:   msg.TenantID,
		ObjectType: "booking",
		ObjectID:   msg.AppointmentID,
		Metadata:   map[string]any{"bot_id": msg.BotID},
	})
	return nil
}
