package usage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chatstack/botadmin/pkg/backend"
	"github.com/chatstack/botadmin/pkg/session"
)

// Backend is the slice of the API client the usage page needs.
type Backend interface {
	Usage(ctx context.Context, orgID, botID string) ([]backend.UsagePoint, error)
	UsageSummary(ctx context.Context, orgID, botID string) (backend.UsageSummary, error)
}

// Options configures the usage service.
type Options struct {
	Backend  Backend
	Session  session.Store
	Renderer *ChartRenderer
	Cache    RenderCache
	Logger   *slog.Logger
}

// Service loads usage analytics and renders them as charts.
type Service struct {
	backend  Backend
	session  session.Store
	renderer *ChartRenderer
	cache    RenderCache
	logger   *slog.Logger
}

// NewService builds a usage service from options.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("usage: backend is required")
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewChartRenderer()
	}
	cache := opts.Cache
	if cache == nil {
		cache = NewChartCache(5 * time.Minute)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		backend:  opts.Backend,
		session:  opts.Session,
		renderer: renderer,
		cache:    cache,
		logger:   logger,
	}, nil
}

// Report is the rendered analytics page payload.
type Report struct {
	Points       []backend.UsagePoint
	Summary      backend.UsageSummary
	DailyHTML    string
	SummaryHTML  string
	FallbackHTML string
}

// Load fetches usage for the session's org and renders the page charts.
// Chart HTML is cached per org and bot.
func (s *Service) Load(ctx context.Context, botID string) (*Report, error) {
	orgID, err := s.orgID(ctx)
	if err != nil {
		return nil, err
	}

	points, err := s.backend.Usage(ctx, orgID, botID)
	if err != nil {
		return nil, fmt.Errorf("usage: load daily usage: %w", err)
	}
	summary, err := s.backend.UsageSummary(ctx, orgID, botID)
	if err != nil {
		return nil, fmt.Errorf("usage: load summary: %w", err)
	}

	report := &Report{Points: points, Summary: summary}
	prefix := fmt.Sprintf("%s:%s", orgID, botID)

	report.DailyHTML, err = s.cache.GetOrRender(prefix+":daily", func() (string, error) {
		return s.renderer.DailyLine("Daily usage", points)
	})
	if err != nil {
		return nil, fmt.Errorf("usage: render daily chart: %w", err)
	}
	report.SummaryHTML, err = s.cache.GetOrRender(prefix+":summary", func() (string, error) {
		return s.renderer.SummaryPie("Messages", summary)
	})
	if err != nil {
		return nil, fmt.Errorf("usage: render summary chart: %w", err)
	}
	report.FallbackHTML, err = s.cache.GetOrRender(prefix+":fallback", func() (string, error) {
		return s.renderer.FallbackGauge("Fallback rate", summary)
	})
	if err != nil {
		return nil, fmt.Errorf("usage: render fallback gauge: %w", err)
	}
	return report, nil
}

func (s *Service) orgID(ctx context.Context) (string, error) {
	if s.session == nil {
		return "", fmt.Errorf("usage: no session configured")
	}
	orgID := s.session.OrgID(ctx)
	if orgID == "" {
		return "", fmt.Errorf("usage: no active organization")
	}
	return orgID, nil
}
