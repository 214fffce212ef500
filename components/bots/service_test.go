package bots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatstack/botadmin/pkg/backend"
)

type fakeBackend struct {
	bots    []backend.Bot
	created []backend.CreateBotRequest
	saved   map[string]backend.BotConfig
	key     backend.BotKey
	rotated int
	revoked int
}

func (f *fakeBackend) ListBots(context.Context) ([]backend.Bot, error) {
	return f.bots, nil
}

func (f *fakeBackend) CreateBot(_ context.Context, req backend.CreateBotRequest) (backend.Bot, error) {
	f.created = append(f.created, req)
	return backend.Bot{ID: "bot-new", Name: req.Name, Behavior: req.Behavior}, nil
}

func (f *fakeBackend) BotConfig(context.Context, string) (backend.BotConfig, error) {
	return backend.BotConfig{Behavior: backend.BehaviorSupport}, nil
}

func (f *fakeBackend) SaveBotConfig(_ context.Context, botID string, cfg backend.BotConfig) error {
	if f.saved == nil {
		f.saved = map[string]backend.BotConfig{}
	}
	f.saved[botID] = cfg
	return nil
}

func (f *fakeBackend) BotKey(context.Context, string) (backend.BotKey, error) {
	return f.key, nil
}

func (f *fakeBackend) RotateBotKey(context.Context, string) (backend.BotKey, error) {
	f.rotated++
	return backend.BotKey{Key: "pk_rotated"}, nil
}

func (f *fakeBackend) RevokeBotKey(context.Context, string) error {
	f.revoked++
	return nil
}

func newTestService(t *testing.T, fb *fakeBackend) *Service {
	t.Helper()
	svc, err := NewService(Options{Backend: fb})
	require.NoError(t, err)
	return svc
}

func TestCreateValidates(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)
	ctx := context.Background()

	_, err := svc.Create(ctx, backend.CreateBotRequest{Name: " ", Behavior: backend.BehaviorSupport})
	assert.Error(t, err)

	_, err = svc.Create(ctx, backend.CreateBotRequest{Name: "Helper", Behavior: "pirate"})
	assert.Error(t, err)
	assert.Empty(t, fb.created)

	bot, err := svc.Create(ctx, backend.CreateBotRequest{Name: "Helper", Behavior: backend.BehaviorQnA})
	require.NoError(t, err)
	assert.Equal(t, "bot-new", bot.ID)
	require.Len(t, fb.created, 1)
}

func TestSaveConfigValidates(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)
	ctx := context.Background()

	err := svc.SaveConfig(ctx, "bot-1", backend.BotConfig{Behavior: "pirate"})
	assert.Error(t, err)

	err = svc.SaveConfig(ctx, "bot-1", backend.BotConfig{Behavior: backend.BehaviorSales, Temperature: 3})
	assert.Error(t, err)
	assert.Empty(t, fb.saved)

	err = svc.SaveConfig(ctx, "bot-1", backend.BotConfig{Behavior: backend.BehaviorSales, Temperature: 0.7})
	require.NoError(t, err)
	assert.Equal(t, 0.7, fb.saved["bot-1"].Temperature)
}

func TestKeyLifecycle(t *testing.T) {
	fb := &fakeBackend{key: backend.BotKey{Key: "pk_live"}}
	svc := newTestService(t, fb)
	ctx := context.Background()

	key, err := svc.Key(ctx, "bot-1")
	require.NoError(t, err)
	assert.Equal(t, "pk_live", key.Key)

	rotated, err := svc.RotateKey(ctx, "bot-1")
	require.NoError(t, err)
	assert.Equal(t, "pk_rotated", rotated.Key)
	assert.Equal(t, 1, fb.rotated)

	require.NoError(t, svc.RevokeKey(ctx, "bot-1"))
	assert.Equal(t, 1, fb.revoked)
}
