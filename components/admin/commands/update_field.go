package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/pkg/activity"
	"github.com/chatstack/botadmin/pkg/backend"
)

// UpdateFormFieldInput captures a form field edit.
type UpdateFormFieldInput struct {
	FieldID  string            `json:"field_id"`
	Field    backend.FormField `json:"field"`
	ActorID  string            `json:"actor_id"`
	TenantID string            `json:"tenant_id"`
}

type updateFieldService interface {
	UpdateField(ctx context.Context, field backend.FormField) error
}

// UpdateFormFieldCommand wraps forms.Service.UpdateField.
type UpdateFormFieldCommand struct {
	service   updateFieldService
	emitter   *activity.Emitter
	telemetry Telemetry
}

// NewUpdateFormFieldCommand creates the command.
func NewUpdateFormFieldCommand(service updateFieldService, emitter *activity.Emitter, telemetry Telemetry) *UpdateFormFieldCommand {
	return &UpdateFormFieldCommand{service: service, emitter: emitter, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateFormFieldInput] = (*UpdateFormFieldCommand)(nil)

// Execute persists the field definition.
func (c *UpdateFormFieldCommand) Execute(ctx context.Context, msg UpdateFormFieldInput) error {
	if c.service == nil {
		return errors.New("update field command requires service")
	}
	if msg.FieldID == "" {
		return errors.New("update field command requires field id")
	}
	msg.Field.ID = msg.FieldID
	if err := c.service.UpdateField(ctx, msg.Field); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.form.field_update", map[string]any{
		"field_id": msg.FieldID,
	})
	_ = c.emitter.Emit(ctx, activity.Event{
		Verb:       "update",
		ActorID:    msg.ActorID,
		TenantID:   msg.TenantID,
		ObjectType: "form_field",
		ObjectID:   msg.FieldID,
	})
	return nil
}
