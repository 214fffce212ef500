package calendar

import "context"

// Telemetry records calendar activity for observability pipelines.
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
