package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/chatstack/botadmin/components/bots"
	"github.com/chatstack/botadmin/components/usage"
)

// Default schedules. PruneSpec trims the chart cache; PrewarmSpec re-renders
// usage charts before the workday so the first page load is warm.
const (
	DefaultPruneSpec   = "@every 10m"
	DefaultPrewarmSpec = "0 6 * * *"
)

// SchedulerOptions wires background jobs. Nil services disable their jobs.
type SchedulerOptions struct {
	Bots        *bots.Service
	Usage       *usage.Service
	Cache       *usage.ChartCache
	Logger      *slog.Logger
	PruneSpec   string
	PrewarmSpec string
}

// Scheduler runs the dashboard's periodic maintenance jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler registers the maintenance jobs on a cron runner. Start must be
// called to begin execution.
func NewScheduler(opts SchedulerOptions) (*Scheduler, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runner := cron.New()
	s := &Scheduler{cron: runner, logger: logger}

	if opts.Cache != nil {
		spec := opts.PruneSpec
		if spec == "" {
			spec = DefaultPruneSpec
		}
		if _, err := runner.AddFunc(spec, func() {
			if removed := opts.Cache.Prune(); removed > 0 {
				logger.Debug("pruned chart cache", "removed", removed)
			}
		}); err != nil {
			return nil, fmt.Errorf("admin: schedule cache prune: %w", err)
		}
	}

	if opts.Bots != nil && opts.Usage != nil {
		spec := opts.PrewarmSpec
		if spec == "" {
			spec = DefaultPrewarmSpec
		}
		if _, err := runner.AddFunc(spec, func() {
			s.prewarm(context.Background(), opts.Bots, opts.Usage)
		}); err != nil {
			return nil, fmt.Errorf("admin: schedule chart prewarm: %w", err)
		}
	}

	return s, nil
}

func (s *Scheduler) prewarm(ctx context.Context, botSvc *bots.Service, usageSvc *usage.Service) {
	list, err := botSvc.List(ctx)
	if err != nil {
		s.logger.Warn("chart prewarm: list bots", "error", err)
		return
	}
	for _, bot := range list {
		if _, err := usageSvc.Load(ctx, bot.ID); err != nil {
			s.logger.Warn("chart prewarm: render usage", "bot_id", bot.ID, "error", err)
		}
	}
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
