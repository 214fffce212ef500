package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/pkg/activity"
)

// ClearKnowledgeInput captures a knowledge base wipe request.
type ClearKnowledgeInput struct {
	BotID    string `json:"bot_id"`
	ActorID  string `json:"actor_id"`
	TenantID string `json:"tenant_id"`
}

type clearKnowledgeService interface {
	Clear(ctx context.Context, botID string) error
}

// ClearKnowledgeCommand wraps ingest.Service.Clear.
type ClearKnowledgeCommand struct {
	service   clearKnowledgeService
	emitter   *activity.Emitter
	telemetry Telemetry
}

// NewClearKnowledgeCommand creates the command.
func NewClearKnowledgeCommand(service clearKnowledgeService, emitter *activity.Emitter, telemetry Telemetry) *ClearKnowledgeCommand {
	return &ClearKnowledgeCommand{service: service, emitter: emitter, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ClearKnowledgeInput] = (*ClearKnowledgeCommand)(nil)

// Execute wipes the bot's knowledge base.
func (c *ClearKnowledgeCommand) Execute(ctx context.Context, msg ClearKnowledgeInput) error {
	if c.service == nil {
		return errors.New("clear knowledge command requires service")
	}
	if msg.BotID == "" {
		return errors.New("clear knowledge command requires bot id")
	}
	if err := c.service.Clear(ctx, msg.BotID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.knowledge.clear", map[string]any{
		"bot_id": msg.BotID,
	})
	_ = c.emitter.Emit(ctx, activity.Event{
		Verb:       "clear",
		ActorID:    msg.ActorID,
		TenantID:   msg.TenantID,
		ObjectType: "knowledge_base",
		ObjectID:   msg.BotID,
	})
	return nil
}
