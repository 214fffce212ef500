package calendar

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is how often the booking view refreshes itself.
const DefaultPollInterval = 15 * time.Second

// Poller periodically reloads a calendar window and hands each result to a
// callback. Every poll is a full reload; the latest response wins.
type Poller struct {
	service  *Service
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPoller builds a poller over the service. A non-positive interval falls
// back to DefaultPollInterval.
func NewPoller(service *Service, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{service: service, interval: interval}
}

// Start begins polling and fires onWindow after every successful reload.
// Failed polls are skipped; the next tick retries at the same cadence. Start
// replaces any in-flight subscription.
func (p *Poller) Start(ctx context.Context, botID string, view ViewMode, anchor time.Time, onWindow func(*Window)) {
	p.Stop()

	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			if win, err := p.service.LoadWindow(ctx, botID, view, anchor); err == nil {
				onWindow(win)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop ends the active subscription, if any.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}
