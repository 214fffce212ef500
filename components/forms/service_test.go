package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatstack/botadmin/pkg/backend"
)

type fakeBackend struct {
	configs   []backend.FormConfig
	saved     []backend.FormConfig
	fields    map[string]backend.FormField
	resources []backend.Resource
	schedules map[string]backend.Schedule
	deleted   []string
}

func (f *fakeBackend) FormConfigs(context.Context, string) ([]backend.FormConfig, error) {
	return f.configs, nil
}

func (f *fakeBackend) SaveFormConfig(_ context.Context, cfg backend.FormConfig) (backend.FormConfig, error) {
	if cfg.ID == "" {
		cfg.ID = "form-new"
	}
	f.saved = append(f.saved, cfg)
	return cfg, nil
}

func (f *fakeBackend) UpdateFormField(_ context.Context, field backend.FormField) error {
	if f.fields == nil {
		f.fields = map[string]backend.FormField{}
	}
	f.fields[field.ID] = field
	return nil
}

func (f *fakeBackend) FormTemplates(context.Context) ([]backend.FormTemplate, error) {
	return nil, nil
}

func (f *fakeBackend) Resources(context.Context, string) ([]backend.Resource, error) {
	return f.resources, nil
}

func (f *fakeBackend) CreateResource(_ context.Context, res backend.Resource) (backend.Resource, error) {
	res.ID = "res-new"
	f.resources = append(f.resources, res)
	return res, nil
}

func (f *fakeBackend) UpdateResource(context.Context, backend.Resource) error {
	return nil
}

func (f *fakeBackend) DeleteResource(_ context.Context, resourceID string) error {
	f.deleted = append(f.deleted, resourceID)
	return nil
}

func (f *fakeBackend) UpdateSchedule(_ context.Context, sched backend.Schedule) error {
	if f.schedules == nil {
		f.schedules = map[string]backend.Schedule{}
	}
	f.schedules[sched.ID] = sched
	return nil
}

func newTestService(t *testing.T, fb *fakeBackend) *Service {
	t.Helper()
	svc, err := NewService(Options{Backend: fb, Validator: NewJSONSchemaValidator()})
	require.NoError(t, err)
	return svc
}

func TestConfigsOrderFieldsByPosition(t *testing.T) {
	fb := &fakeBackend{configs: []backend.FormConfig{{
		ID: "form-1",
		Fields: []backend.FormField{
			{Name: "b", Position: 2},
			{Name: "a", Position: 1},
		},
	}}}
	svc := newTestService(t, fb)

	configs, err := svc.Configs(context.Background(), "bot-1")
	require.NoError(t, err)
	assert.Equal(t, "a", configs[0].Fields[0].Name)
	assert.Equal(t, "b", configs[0].Fields[1].Name)
}

func TestSaveRejectsInvalidFields(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)
	ctx := context.Background()

	_, err := svc.Save(ctx, backend.FormConfig{Title: "Intake", Fields: []backend.FormField{
		{Name: "age", Type: "hologram"},
	}})
	assert.Error(t, err)

	_, err = svc.Save(ctx, backend.FormConfig{Title: "Intake", Fields: []backend.FormField{
		{Name: "specialty", Type: "select"},
	}})
	assert.Error(t, err)
	assert.Empty(t, fb.saved)

	saved, err := svc.Save(ctx, backend.FormConfig{Title: "Intake", Fields: []backend.FormField{
		{Name: "name", Type: "text", Validation: map[string]any{"max_length": 80}},
		{Name: "specialty", Type: "select", Options: []string{"Dental", "Vision"}},
	}})
	require.NoError(t, err)
	assert.Equal(t, "form-new", saved.ID)
}

func TestValidatorRejectsUnknownRules(t *testing.T) {
	v := NewJSONSchemaValidator()

	err := v.Validate(backend.FormField{
		Name: "name", Type: "text",
		Validation: map[string]any{"allow_html": true},
	})
	assert.Error(t, err)

	err = v.Validate(backend.FormField{
		Name: "name", Type: "text",
		Validation: map[string]any{"min_length": -1},
	})
	assert.Error(t, err)

	err = v.Validate(backend.FormField{
		Name: "age", Type: "number",
		Validation: map[string]any{"min": 0, "max": 120},
	})
	assert.NoError(t, err)
}

func TestApplyTemplateResetsFieldIdentity(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)

	saved, err := svc.ApplyTemplate(context.Background(), "bot-1", backend.FormTemplate{
		Name: "Clinic intake",
		Fields: []backend.FormField{
			{ID: "tpl-f1", Name: "name", Type: "text", Position: 9},
			{ID: "tpl-f2", Name: "email", Type: "email", Position: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "bot-1", saved.BotID)
	for i, field := range saved.Fields {
		assert.Empty(t, field.ID)
		assert.Equal(t, i, field.Position)
	}
}

func TestResourceValidation(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)
	ctx := context.Background()

	_, err := svc.CreateResource(ctx, backend.Resource{BotID: "bot-1", Name: "Room A", Capacity: 0})
	assert.Error(t, err)

	created, err := svc.CreateResource(ctx, backend.Resource{BotID: "bot-1", Name: "Room A", Kind: "room", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, "res-new", created.ID)
}

func TestUpdateScheduleValidation(t *testing.T) {
	fb := &fakeBackend{}
	svc := newTestService(t, fb)
	ctx := context.Background()

	err := svc.UpdateSchedule(ctx, backend.Schedule{ID: "sch-1", Weekday: 7, StartTime: "09:00", EndTime: "17:00"})
	assert.Error(t, err)

	err = svc.UpdateSchedule(ctx, backend.Schedule{ID: "sch-1", Weekday: 1, StartTime: "17:00", EndTime: "09:00"})
	assert.Error(t, err)

	err = svc.UpdateSchedule(ctx, backend.Schedule{ID: "sch-1", Weekday: 1, StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)
	assert.Equal(t, "09:00", fb.schedules["sch-1"].StartTime)
}
