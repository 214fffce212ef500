package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldToken     = "token"
	fieldOrgID     = "org_id"
	fieldTheme     = "theme"
	fieldCollapsed = "sidebar_collapsed"
)

// RedisConfig configures the Redis-backed session store.
type RedisConfig struct {
	Client    *redis.Client
	SessionID string
	// TTL bounds how long credentials survive without activity. Zero disables
	// expiry.
	TTL time.Duration
}

// RedisStore keeps the session in Redis so multiple dashboard replicas share
// one logical session.
type RedisStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewRedisStore builds a store scoped to one session id.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if cfg.Client == nil {
		return nil, errors.New("session: redis client is required")
	}
	if cfg.SessionID == "" {
		return nil, errors.New("session: session id is required")
	}
	return &RedisStore{
		client:    cfg.Client,
		sessionID: cfg.SessionID,
		ttl:       cfg.TTL,
	}, nil
}

func (s *RedisStore) key(field string) string {
	return "session:" + s.sessionID + ":" + field
}

func (s *RedisStore) get(ctx context.Context, field string) string {
	val, err := s.client.Get(ctx, s.key(field)).Result()
	if err != nil {
		return ""
	}
	return val
}

func (s *RedisStore) set(ctx context.Context, field, value string) error {
	return s.client.Set(ctx, s.key(field), value, s.ttl).Err()
}

// Token returns the stored bearer token, empty when absent.
func (s *RedisStore) Token(ctx context.Context) string { return s.get(ctx, fieldToken) }

// SetToken stores the bearer token.
func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, fieldToken, token)
}

// OrgID returns the active tenant identifier.
func (s *RedisStore) OrgID(ctx context.Context) string { return s.get(ctx, fieldOrgID) }

// SetOrgID stores the active tenant identifier.
func (s *RedisStore) SetOrgID(ctx context.Context, orgID string) error {
	return s.set(ctx, fieldOrgID, orgID)
}

// Theme returns the UI theme preference.
func (s *RedisStore) Theme(ctx context.Context) string { return s.get(ctx, fieldTheme) }

// SetTheme stores the UI theme preference.
func (s *RedisStore) SetTheme(ctx context.Context, theme string) error {
	return s.set(ctx, fieldTheme, theme)
}

// SidebarCollapsed reports whether the navigation sidebar is collapsed.
func (s *RedisStore) SidebarCollapsed(ctx context.Context) bool {
	return s.get(ctx, fieldCollapsed) == "1"
}

// SetSidebarCollapsed stores the sidebar state.
func (s *RedisStore) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	val := "0"
	if collapsed {
		val = "1"
	}
	return s.set(ctx, fieldCollapsed, val)
}

// Clear removes the credentials, keeping cosmetic preferences.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key(fieldToken), s.key(fieldOrgID)).Err()
}

var _ Store = (*RedisStore)(nil)
