package admin

import (
	"context"
	"log/slog"
)

// Telemetry records admin events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// SlogTelemetry writes telemetry events through a structured logger.
type SlogTelemetry struct {
	Logger *slog.Logger
}

// Record implements Telemetry.
func (s SlogTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := make([]any, 0, len(payload)*2)
	for k, v := range payload {
		attrs = append(attrs, k, v)
	}
	logger.InfoContext(ctx, event, attrs...)
}
