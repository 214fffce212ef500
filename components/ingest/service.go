package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chatstack/botadmin/pkg/backend"
)

// Backend is the slice of the API client the ingestion page needs.
type Backend interface {
	IngestText(ctx context.Context, botID, text string) (backend.IngestJob, error)
	IngestQA(ctx context.Context, botID string, pairs []backend.QAPair) (backend.IngestJob, error)
	IngestURL(ctx context.Context, botID, url string) (backend.IngestJob, error)
	IngestPDF(ctx context.Context, botID, filename string, file io.Reader) (backend.IngestJob, error)
	ClearKnowledge(ctx context.Context, botID string) error
	IngestJobStatus(ctx context.Context, jobID string) (backend.IngestJob, error)
}

// Telemetry records ingestion activity.
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

// Options configures the ingestion service.
type Options struct {
	Backend   Backend
	Telemetry Telemetry
	Logger    *slog.Logger
}

// Service submits knowledge uploads and tracks the resulting jobs.
type Service struct {
	backend   Backend
	telemetry Telemetry
	logger    *slog.Logger
}

// NewService builds an ingestion service from options.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("ingest: backend is required")
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

// UploadText submits raw text for ingestion.
func (s *Service) UploadText(ctx context.Context, botID, text string) (backend.IngestJob, error) {
	if strings.TrimSpace(text) == "" {
		return backend.IngestJob{}, fmt.Errorf("ingest: text is empty")
	}
	job, err := s.backend.IngestText(ctx, botID, text)
	if err != nil {
		return backend.IngestJob{}, fmt.Errorf("ingest: submit text: %w", err)
	}
	s.record(ctx, botID, job, "text")
	return job, nil
}

// UploadQA submits question/answer pairs for ingestion. Pairs with an empty
// question or answer are rejected up front.
func (s *Service) UploadQA(ctx context.Context, botID string, pairs []backend.QAPair) (backend.IngestJob, error) {
	if len(pairs) == 0 {
		return backend.IngestJob{}, fmt.Errorf("ingest: no qa pairs given")
	}
	for i, p := range pairs {
		if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.Answer) == "" {
			return backend.IngestJob{}, fmt.Errorf("ingest: qa pair %d is incomplete", i)
		}
	}
	job, err := s.backend.IngestQA(ctx, botID, pairs)
	if err != nil {
		return backend.IngestJob{}, fmt.Errorf("ingest: submit qa: %w", err)
	}
	s.record(ctx, botID, job, "qa")
	return job, nil
}

// UploadURL submits a page URL for crawling and ingestion.
func (s *Service) UploadURL(ctx context.Context, botID, url string) (backend.IngestJob, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return backend.IngestJob{}, fmt.Errorf("ingest: url %q must be http or https", url)
	}
	job, err := s.backend.IngestURL(ctx, botID, url)
	if err != nil {
		return backend.IngestJob{}, fmt.Errorf("ingest: submit url: %w", err)
	}
	s.record(ctx, botID, job, "url")
	return job, nil
}

// UploadPDF submits a PDF file for ingestion.
func (s *Service) UploadPDF(ctx context.Context, botID, filename string, file io.Reader) (backend.IngestJob, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return backend.IngestJob{}, fmt.Errorf("ingest: %q is not a pdf", filename)
	}
	job, err := s.backend.IngestPDF(ctx, botID, filename, file)
	if err != nil {
		return backend.IngestJob{}, fmt.Errorf("ingest: submit pdf: %w", err)
	}
	s.record(ctx, botID, job, "pdf")
	return job, nil
}

// Clear wipes the bot's knowledge base.
func (s *Service) Clear(ctx context.Context, botID string) error {
	if err := s.backend.ClearKnowledge(ctx, botID); err != nil {
		return fmt.Errorf("ingest: clear knowledge: %w", err)
	}
	s.telemetry.Record(ctx, "ingest.knowledge_cleared", map[string]any{"bot_id": botID})
	return nil
}

// JobStatus fetches the current state of one ingestion job.
func (s *Service) JobStatus(ctx context.Context, jobID string) (backend.IngestJob, error) {
	job, err := s.backend.IngestJobStatus(ctx, jobID)
	if err != nil {
		return backend.IngestJob{}, fmt.Errorf("ingest: job status %s: %w", jobID, err)
	}
	return job, nil
}

func (s *Service) record(ctx context.Context, botID string, job backend.IngestJob, source string) {
	s.telemetry.Record(ctx, "ingest.job_submitted", map[string]any{
		"bot_id": botID,
		"job_id": job.ID,
		"source": source,
	})
}
