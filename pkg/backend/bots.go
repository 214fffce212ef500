package backend

import (
	"context"
	"net/url"
)

// ListBots returns every bot in the session's organization.
func (c *Client) ListBots(ctx context.Context) ([]Bot, error) {
	var bots []Bot
	if err := c.get(ctx, "/api/bots", &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

// CreateBotRequest carries the fields needed to create a bot.
type CreateBotRequest struct {
	Name           string      `json:"name"`
	Behavior       BotBehavior `json:"behavior"`
	SystemPrompt   string      `json:"system_prompt,omitempty"`
	WelcomeMessage string      `json:"welcome_message,omitempty"`
}

// CreateBot creates a bot and returns the backend-issued record.
func (c *Client) CreateBot(ctx context.Context, req CreateBotRequest) (Bot, error) {
	var bot Bot
	if err := c.post(ctx, "/api/bots", req, &bot); err != nil {
		return Bot{}, err
	}
	return bot, nil
}

// BotConfig fetches the bot's behavior/prompt settings.
func (c *Client) BotConfig(ctx context.Context, botID string) (BotConfig, error) {
	var cfg BotConfig
	if err := c.get(ctx, "/api/bots/"+url.PathEscape(botID)+"/config", &cfg); err != nil {
		return BotConfig{}, err
	}
	return cfg, nil
}

// SaveBotConfig persists the bot's behavior/prompt settings.
func (c *Client) SaveBotConfig(ctx context.Context, botID string, cfg BotConfig) error {
	return c.post(ctx, "/api/bots/"+url.PathEscape(botID)+"/config", cfg, nil)
}

// BotKey fetches the bot's public widget credential.
func (c *Client) BotKey(ctx context.Context, botID string) (BotKey, error) {
	var key BotKey
	if err := c.get(ctx, "/api/bots/"+url.PathEscape(botID)+"/key", &key); err != nil {
		return BotKey{}, err
	}
	return key, nil
}

// RotateBotKey issues a fresh public key, invalidating the previous one.
func (c *Client) RotateBotKey(ctx context.Context, botID string) (BotKey, error) {
	var key BotKey
	if err := c.post(ctx, "/api/bots/"+url.PathEscape(botID)+"/key/rotate", nil, &key); err != nil {
		return BotKey{}, err
	}
	return key, nil
}

// RevokeBotKey disables the bot's public key without issuing a replacement.
func (c *Client) RevokeBotKey(ctx context.Context, botID string) error {
	return c.post(ctx, "/api/bots/"+url.PathEscape(botID)+"/key/revoke", nil, nil)
}
