package session

import (
	"context"
	"sync"
)

// Store is the single source of truth for the operator session. The browser
// original scattered localStorage reads across pages; here every consumer goes
// through this interface so logout has exactly one effect.
type Store interface {
	Token(ctx context.Context) string
	SetToken(ctx context.Context, token string) error
	OrgID(ctx context.Context) string
	SetOrgID(ctx context.Context, orgID string) error
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
	SidebarCollapsed(ctx context.Context) bool
	SetSidebarCollapsed(ctx context.Context, collapsed bool) error
	// Clear drops the credentials (token + org). Cosmetic fields survive, the
	// same way logout left theme and sidebar keys in localStorage.
	Clear(ctx context.Context) error
}

// InMemoryStore provides a concurrency-safe default store for single-process
// deployments and tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	token     string
	orgID     string
	theme     string
	collapsed bool
}

// NewInMemoryStore creates an empty session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Token returns the stored bearer token, empty when logged out.
func (s *InMemoryStore) Token(context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the bearer token.
func (s *InMemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// OrgID returns the active tenant identifier.
func (s *InMemoryStore) OrgID(context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orgID
}

// SetOrgID stores the active tenant identifier.
func (s *InMemoryStore) SetOrgID(_ context.Context, orgID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgID = orgID
	return nil
}

// Theme returns the UI theme preference.
func (s *InMemoryStore) Theme(context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores the UI theme preference.
func (s *InMemoryStore) SetTheme(_ context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

// SidebarCollapsed reports whether the navigation sidebar is collapsed.
func (s *InMemoryStore) SidebarCollapsed(context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collapsed
}

// SetSidebarCollapsed stores the sidebar state.
func (s *InMemoryStore) SetSidebarCollapsed(_ context.Context, collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collapsed = collapsed
	return nil
}

// Clear removes the credentials, keeping cosmetic preferences.
func (s *InMemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.orgID = ""
	return nil
}
