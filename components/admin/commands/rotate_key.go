package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"

	"github.com/chatstack/botadmin/pkg/activity"
	"github.com/chatstack/botadmin/pkg/backend"
)

// RotateBotKeyInput captures a public key rotation request.
type RotateBotKeyInput struct {
	BotID    string `json:"bot_id"`
	ActorID  string `json:"actor_id"`
	TenantID string `json:"tenant_id"`
}

type rotateKeyService interface {
	RotateKey(ctx context.Context, botID string) (backend.BotKey, error)
}

// RotateBotKeyCommand wraps bots.Service.RotateKey.
type RotateBotKeyCommand struct {
	service   rotateKeyService
	emitter   *activity.Emitter
	telemetry Telemetry
}

// NewRotateBotKeyCommand creates the command.
func NewRotateBotKeyCommand(service rotateKeyService, emitter *activity.Emitter, telemetry Telemetry) *RotateBotKeyCommand {
	return &RotateBotKeyCommand{service: service, emitter: emitter, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[RotateBotKeyInput] = (*RotateBotKeyCommand)(nil)

// Execute rotates the bot's public key.
func (c *RotateBotKeyCommand) Execute(ctx context.Context, msg RotateBotKeyInput) error {
	if c.service == nil {
		return errors.New("rotate key command requires service")
	}
	if msg.BotID == "" {
		return errors.New("rotate key command requires bot id")
	}
	if _, err := c.service.RotateKey(ctx, msg.BotID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "admin.bot.key_rotate", map[string]any{
		"bot_id": msg.BotID,
	})
	_ = c.emitter.Emit(ctx, activity.Event{
		Verb:       "rotate",
		ActorID:    msg.ActorID,
		TenantID:   msg.TenantID,
		ObjectType: "bot_key",
		ObjectID:   msg.BotID,
	})
	return nil
}
