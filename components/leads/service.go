package leads

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/chatstack/botadmin/pkg/backend"
)

// Backend is the slice of the API client the leads page needs.
type Backend interface {
	Leads(ctx context.Context, botID string) ([]backend.Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID string, status backend.LeadStatus) error
	DeleteLead(ctx context.Context, leadID string) error
}

// Telemetry records lead pipeline activity.
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

// Options configures the leads service.
type Options struct {
	Backend   Backend
	Telemetry Telemetry
	Logger    *slog.Logger
}

// Service reads the lead list and mutates pipeline status.
type Service struct {
	backend   Backend
	telemetry Telemetry
	logger    *slog.Logger
}

// NewService builds a leads service from options.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("leads: backend is required")
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

// List fetches the bot's leads newest first.
func (s *Service) List(ctx context.Context, botID string) ([]backend.Lead, error) {
	leads, err := s.backend.Leads(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("leads: list: %w", err)
	}
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

// Filter narrows a lead list by pipeline status and a case-insensitive
// substring over name, email, and phone. Empty arguments match everything.
func Filter(leads []backend.Lead, status backend.LeadStatus, query string) []backend.Lead {
	query = strings.TrimSpace(strings.ToLower(query))
	out := make([]backend.Lead, 0, len(leads))
	for _, lead := range leads {
		if status != "" && lead.Status != status {
			continue
		}
		if query != "" && !matchesQuery(lead, query) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

func matchesQuery(lead backend.Lead, query string) bool {
	for _, field := range []string{lead.Name, lead.Email, lead.Phone} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// UpdateStatus moves a lead through the pipeline. Unknown statuses are
// rejected before the backend is called.
func (s *Service) UpdateStatus(ctx context.Context, leadID string, status backend.LeadStatus) error {
	if !backend.ValidLeadStatus(status) {
		return fmt.Errorf("leads: invalid status %q", status)
	}
	if err := s.backend.UpdateLeadStatus(ctx, leadID, status); err != nil {
		return fmt.Errorf("leads: update status: %w", err)
	}
	s.telemetry.Record(ctx, "leads.status_updated", map[string]any{
		"lead_id": leadID,
		"status":  string(status),
	})
	return nil
}

// Delete removes a lead permanently.
func (s *Service) Delete(ctx context.Context, leadID string) error {
	if err := s.backend.DeleteLead(ctx, leadID); err != nil {
		return fmt.Errorf("leads: delete: %w", err)
	}
	s.telemetry.Record(ctx, "leads.deleted", map[string]any{"lead_id": leadID})
	return nil
}
