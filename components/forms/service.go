package forms

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/chatstack/botadmin/pkg/backend"
)

// Backend is the slice of the API client the form builder needs.
type Backend interface {
	FormConfigs(ctx context.Context, botID string) ([]backend.FormConfig, error)
	SaveFormConfig(ctx context.Context, cfg backend.FormConfig) (backend.FormConfig, error)
	UpdateFormField(ctx context.Context, field backend.FormField) error
	FormTemplates(ctx context.Context) ([]backend.FormTemplate, error)
	Resources(ctx context.Context, botID string) ([]backend.Resource, error)
	CreateResource(ctx context.Context, res backend.Resource) (backend.Resource, error)
	UpdateResource(ctx context.Context, res backend.Resource) error
	DeleteResource(ctx context.Context, resourceID string) error
	UpdateSchedule(ctx context.Context, sched backend.Schedule) error
}

// Telemetry records form builder activity.
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

// Options configures the forms service. A nil Validator disables field
// validation.
type Options struct {
	Backend   Backend
	Validator FieldValidator
	Telemetry Telemetry
	Logger    *slog.Logger
}

// Service manages form configs, their fields, and bookable resources.
type Service struct {
	backend   Backend
	validator FieldValidator
	telemetry Telemetry
	logger    *slog.Logger
}

// NewService builds a forms service from options.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("forms: backend is required")
	}
	validator := opts.Validator
	if validator == nil {
		validator = noopFieldValidator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		backend:   opts.Backend,
		validator: validator,
		telemetry: normalizeTelemetry(opts.Telemetry),
		logger:    logger,
	}, nil
}

// Configs fetches the bot's form configs with fields ordered by position.
func (s *Service) Configs(ctx context.Context, botID string) ([]backend.FormConfig, error) {
	configs, err := s.backend.FormConfigs(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("forms: list configs: %w", err)
	}
	for i := range configs {
		sort.SliceStable(configs[i].Fields, func(a, b int) bool {
			return configs[i].Fields[a].Position < configs[i].Fields[b].Position
		})
	}
	return configs, nil
}

// Save validates every field and persists the config. A config without an ID
// is created; one with an ID is replaced.
func (s *Service) Save(ctx context.Context, cfg backend.FormConfig) (backend.FormConfig, error) {
	if strings.TrimSpace(cfg.Title) == "" {
		return backend.FormConfig{}, fmt.Errorf("forms: title is required")
	}
	for _, field := range cfg.Fields {
		if err := s.validator.Validate(field); err != nil {
			return backend.FormConfig{}, err
		}
	}
	saved, err := s.backend.SaveFormConfig(ctx, cfg)
	if err != nil {
		return backend.FormConfig{}, fmt.Errorf("forms: save config: %w", err)
	}
	s.telemetry.Record(ctx, "forms.config_saved", map[string]any{
		"form_id": saved.ID,
		"bot_id":  saved.BotID,
		"fields":  len(saved.Fields),
	})
	return saved, nil
}

// UpdateField validates and persists one field definition. The field carries
// its own ID.
func (s *Service) UpdateField(ctx context.Context, field backend.FormField) error {
	if strings.TrimSpace(field.ID) == "" {
		return fmt.Errorf("forms: field id is required")
	}
	if err := s.validator.Validate(field); err != nil {
		return err
	}
	if err := s.backend.UpdateFormField(ctx, field); err != nil {
		return fmt.Errorf("forms: update field: %w", err)
	}
	s.telemetry.Record(ctx, "forms.field_updated", map[string]any{"field_id": field.ID})
	return nil
}

// Templates lists the reusable form templates.
func (s *Service) Templates(ctx context.Context) ([]backend.FormTemplate, error) {
	templates, err := s.backend.FormTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("forms: list templates: %w", err)
	}
	return templates, nil
}

// ApplyTemplate copies a template's fields into a fresh config for the bot.
func (s *Service) ApplyTemplate(ctx context.Context, botID string, template backend.FormTemplate) (backend.FormConfig, error) {
	fields := make([]backend.FormField, len(template.Fields))
	copy(fields, template.Fields)
	for i := range fields {
		fields[i].ID = ""
		fields[i].Position = i
	}
	return s.Save(ctx, backend.FormConfig{
		BotID:  botID,
		Title:  template.Name,
		Fields: fields,
	})
}

// Resources lists the bot's bookable resources.
func (s *Service) Resources(ctx context.Context, botID string) ([]backend.Resource, error) {
	resources, err := s.backend.Resources(ctx, botID)
	if err != nil {
		return nil, fmt.Errorf("forms: list resources: %w", err)
	}
	return resources, nil
}

// CreateResource validates and persists a new bookable resource.
func (s *Service) CreateResource(ctx context.Context, res backend.Resource) (backend.Resource, error) {
	if strings.TrimSpace(res.Name) == "" {
		return backend.Resource{}, fmt.Errorf("forms: resource name is required")
	}
	if res.Capacity < 1 {
		return backend.Resource{}, fmt.Errorf("forms: resource capacity must be at least 1")
	}
	created, err := s.backend.CreateResource(ctx, res)
	if err != nil {
		return backend.Resource{}, fmt.Errorf("forms: create resource: %w", err)
	}
	s.telemetry.Record(ctx, "forms.resource_created", map[string]any{
		"bot_id":      res.BotID,
		"resource_id": created.ID,
	})
	return created, nil
}

// UpdateResource persists changes to a resource.
func (s *Service) UpdateResource(ctx context.Context, res backend.Resource) error {
	if strings.TrimSpace(res.ID) == "" {
		return fmt.Errorf("forms: resource id is required")
	}
	if res.Capacity < 1 {
		return fmt.Errorf("forms: resource capacity must be at least 1")
	}
	if err := s.backend.UpdateResource(ctx, res); err != nil {
		return fmt.Errorf("forms: update resource: %w", err)
	}
	return nil
}

// DeleteResource removes a resource and its schedules.
func (s *Service) DeleteResource(ctx context.Context, resourceID string) error {
	if err := s.backend.DeleteResource(ctx, resourceID); err != nil {
		return fmt.Errorf("forms: delete resource: %w", err)
	}
	s.telemetry.Record(ctx, "forms.resource_deleted", map[string]any{"resource_id": resourceID})
	return nil
}

// UpdateSchedule persists one availability window. Weekday must be 0 through
// 6 unless a specific date is set.
func (s *Service) UpdateSchedule(ctx context.Context, sched backend.Schedule) error {
	if sched.Date == "" && (sched.Weekday < 0 || sched.Weekday > 6) {
		return fmt.Errorf("forms: weekday %d out of range", sched.Weekday)
	}
	if sched.StartTime >= sched.EndTime {
		return fmt.Errorf("forms: schedule window %s-%s is empty", sched.StartTime, sched.EndTime)
	}
	if err := s.backend.UpdateSchedule(ctx, sched); err != nil {
		return fmt.Errorf("forms: update schedule: %w", err)
	}
	return nil
}
