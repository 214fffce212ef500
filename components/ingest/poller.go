package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/chatstack/botadmin/pkg/backend"
)

// Poll cadence. Status is fetched every second while the job is live; the
// "training" caption advances every two seconds independent of fetch results.
const (
	DefaultPollInterval = time.Second
	captionInterval     = 2 * time.Second
)

// trainingCaptions rotate under the progress bar while a job runs.
var trainingCaptions = []string{
	"Reading your content...",
	"Splitting into chunks...",
	"Building the knowledge index...",
	"Teaching your bot...",
	"Almost there...",
}

// Progress is one poller update delivered to the callback.
type Progress struct {
	Job     backend.IngestJob
	Caption string
}

// Poller tracks one ingestion job: it polls status on a fixed interval with
// no backoff and stops on its own once the job reaches a terminal state.
type Poller struct {
	service  *Service
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPoller builds a job poller. A non-positive interval falls back to
// DefaultPollInterval.
func NewPoller(service *Service, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{service: service, interval: interval}
}

// Start polls the job until it completes or fails. onProgress fires after
// every successful status fetch; onDone fires exactly once with the terminal
// job. Failed fetches are skipped and retried at the same cadence. Start
// replaces any in-flight subscription.
func (p *Poller) Start(ctx context.Context, jobID string, onProgress func(Progress), onDone func(backend.IngestJob)) {
	p.Stop()

	ctx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	go func() {
		defer cancel()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		started := time.Now()
		for {
			if job, err := p.service.JobStatus(ctx, jobID); err == nil {
				if job.Status.Terminal() {
					if onDone != nil {
						onDone(job)
					}
					return
				}
				if onProgress != nil {
					onProgress(Progress{Job: job, Caption: CaptionAt(time.Since(started))})
				}
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

// CaptionAt returns the rotating training caption for a given elapsed time.
func CaptionAt(elapsed time.Duration) string {
	idx := int(elapsed/captionInterval) % len(trainingCaptions)
	if idx < 0 {
		idx = 0
	}
	return trainingCaptions[idx]
}
