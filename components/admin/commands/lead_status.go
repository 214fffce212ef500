package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/pkg/activity"
	"github.com/chatstack/botadmin/pkg/backend"
)

// UpdateLeadStatusInput captures a lead pipeline transition.
type UpdateLeadStatusInput struct {
	LeadID   string             `json:"lead_id"`
	Status   backend.LeadStatus `json:"status"`
	ActorID  string             `json:"actor_id"`
	TenantID string             `json:"tenant_id"`
}

type leadStatusService interface {
	UpdateStatus(ctx context.Context, leadID string, status backend.LeadStatus) error
}

// UpdateLeadStatusCommand wraps leads.Service.UpdateStatus.
type UpdateLeadStatusCommand struct {
	service   leadStatusService
	emitter   *activity.Emitter
	telemetry Telemetry
}

// NewUpdateLeadStatusCommand creates the command.
func NewUpdateLeadStatusCommand(service leadStatusService, emitter *activity.Emitter, telemetry Telemetry) *UpdateLeadStatusCommand {
	return &UpdateLeadStatusCommand{service: service, emitter: emitter, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateLeadStatusInput] = (*UpdateLeadStatusCommand)(nil)

// Execute moves the lead to the requested status.
func (c *UpdateLeadStatusCommand) Execute(ctx context.Context, msg UpdateLeadStatusInput) error {
	if c.service == nil {
		return errors.New("lead status command requires service")
	}
	if msg.LeadID == "" {
		return errors.New("lead status command requires lead id")
	}
	if err := c.service.UpdateStatus(ctx, msg.LeadID, msg.Status); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.lead.status", map[string]any{
		"lead_id": msg.LeadID,
		"status":  string(msg.Status),
	})
	_ = c.emitter.Emit(ctx, activity.Event{
		Verb:       "update",
		ActorID:    msg.ActorID,
		TenantID:   msg.TenantID,
		ObjectType: "lead",
		ObjectID:   msg.LeadID,
		Metadata:   map[string]any{"status": string(msg.Status)},
	})
	return nil
}
