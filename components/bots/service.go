package bots

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chatstack/botadmin/pkg/backend"
)

// Backend is the slice of the API client the bot pages need.
type Backend interface {
	ListBots(ctx context.Context) ([]backend.Bot, error)
	CreateBot(ctx context.Context, req backend.CreateBotRequest) (backend.Bot, error)
	BotConfig(ctx context.Context, botID string) (backend.BotConfig, error)
	SaveBotConfig(ctx context.Context, botID string, cfg backend.BotConfig) error
	BotKey(ctx context.Context, botID string) (backend.BotKey, error)
	RotateBotKey(ctx context.Context, botID string) (backend.BotKey, error)
	RevokeBotKey(ctx context.Context, botID string) error
}

// Telemetry records bot management activity.
type Telemetry interface {
	Record(ctx context.Context, event string, fields map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// Options configures the bots service.
type Options struct {
	Backend   Backend
	Telemetry Telemetry
	Logger    *slog.Logger
}

// Service manages bot records, behavior config, and public keys.
type Service struct {
	backend   Backend
	telemetry Telemetry
	logger    *slog.Logger
}

// NewService builds a bots service from options.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("bots: backend is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		backend:   opts.Backend,
		telemetry: normalizeTelemetry(opts.Telemetry),
		logger:    logger,
	}, nil
}

// List fetches the org's bots.
func (s *Service) List(ctx context.Context) ([]backend.Bot, error) {
	bots, err := s.backend.ListBots(ctx)
	if err != nil {
		return nil, fmt.Errorf("bots: list: %w", err)
	}
	return bots, nil
}

// Create validates and submits a new bot.
func (s *Service) Create(ctx context.Context, req backend.CreateBotRequest) (backend.Bot, error) {
	if strings.TrimSpace(req.Name) == "" {
		return backend.Bot{}, fmt.Errorf("bots: name is required")
	}
	if !backend.ValidBehavior(req.Behavior) {
		return backend.Bot{}, fmt.Errorf("bots: invalid behavior %q", req.Behavior)
	}
	bot, err := s.backend.CreateBot(ctx, req)
	if err != nil {
		return backend.Bot{}, fmt.Errorf("bots: create: %w", err)
	}
	s.telemetry.Record(ctx, "bots.created", map[string]any{
		"bot_id":   bot.ID,
		"behavior": string(bot.Behavior),
	})
	return bot, nil
}

// Config fetches the bot's editable settings.
func (s *Service) Config(ctx context.Context, botID string) (backend.BotConfig, error) {
	cfg, err := s.backend.BotConfig(ctx, botID)
	if err != nil {
		return backend.BotConfig{}, fmt.Errorf("bots: load config: %w", err)
	}
	return cfg, nil
}

// SaveConfig validates and persists the bot's settings.
func (s *Service) SaveConfig(ctx context.Context, botID string, cfg backend.BotConfig) error {
	if !backend.ValidBehavior(cfg.Behavior) {
		return fmt.Errorf("bots: invalid behavior %q", cfg.Behavior)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("bots: temperature %v out of range [0, 2]", cfg.Temperature)
	}
	if err := s.backend.SaveBotConfig(ctx, botID, cfg); err != nil {
		return fmt.Errorf("bots: save config: %w", err)
	}
	s.telemetry.Record(ctx, "bots.config_saved", map[string]any{"bot_id": botID})
	return nil
}

// Key fetches the bot's current public key.
func (s *Service) Key(ctx context.Context, botID string) (backend.BotKey, error) {
	key, err := s.backend.BotKey(ctx, botID)
	if err != nil {
		return backend.BotKey{}, fmt.Errorf("bots: load key: %w", err)
	}
	return key, nil
}

// RotateKey replaces the bot's public key. Snippets embedding the old key
// stop working once the rotation lands.
func (s *Service) RotateKey(ctx context.Context, botID string) (backend.BotKey, error) {
	key, err := s.backend.RotateBotKey(ctx, botID)
	if err != nil {
		return backend.BotKey{}, fmt.Errorf("bots: rotate key: %w", err)
	}
	s.telemetry.Record(ctx, "bots.key_rotated", map[string]any{"bot_id": botID})
	return key, nil
}

// RevokeKey disables the bot's public key without issuing a new one.
func (s *Service) RevokeKey(ctx context.Context, botID string) error {
	if err := s.backend.RevokeBotKey(ctx, botID); err != nil {
		return fmt.Errorf("bots: revoke key: %w", err)
	}
	s.telemetry.Record(ctx, "bots.key_revoked", map[string]any{"bot_id": botID})
	return nil
}
