package backend

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockData seeds deterministic backend responses for tests or local demos.
type MockData struct {
	Bots         []Bot
	Configs      map[string]BotConfig
	Keys         map[string]BotKey
	Appointments map[string][]Appointment
	Events       map[string][]CalendarEvent
	Leads        map[string][]Lead
	Usage        map[string][]UsagePoint
	Summaries    map[string]UsageSummary
	FormConfigs  map[string][]FormConfig
	Templates    []FormTemplate
	Resources    map[string][]Resource
	Jobs         map[string]IngestJob
}

// MockClient implements the backend surface using in-memory fixtures. Cancel
// and status mutations are applied to the fixtures so reload-after-mutate
// flows behave like the real backend.
type MockClient struct {
	mu   sync.RWMutex
	data MockData
}

// NewMockClient builds a mock backend from the provided fixtures.
func NewMockClient(data MockData) *MockClient {
	if data.Configs == nil {
		data.Configs = map[string]BotConfig{}
	}
	if data.Keys == nil {
		data.Keys = map[string]BotKey{}
	}
	if data.Appointments == nil {
		data.Appointments = map[string][]Appointment{}
	}
	if data.Events == nil {
		data.Events = map[string][]CalendarEvent{}
	}
	if data.Leads == nil {
		data.Leads = map[string][]Lead{}
	}
	if data.Usage == nil {
		data.Usage = map[string][]UsagePoint{}
	}
	if data.Summaries == nil {
		data.Summaries = map[string]UsageSummary{}
	}
	if data.FormConfigs == nil {
		data.FormConfigs = map[string][]FormConfig{}
	}
	if data.Resources == nil {
		data.Resources = map[string][]Resource{}
	}
	if data.Jobs == nil {
		data.Jobs = map[string]IngestJob{}
	}
	return &MockClient{data: data}
}

// ListBots returns the seeded bots.
func (c *MockClient) ListBots(context.Context) ([]Bot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Bot(nil), c.data.Bots...), nil
}

// CreateBot appends a bot with a generated id.
func (c *MockClient) CreateBot(_ context.Context, req CreateBotRequest) (Bot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bot := Bot{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Behavior:       req.Behavior,
		SystemPrompt:   req.SystemPrompt,
		WelcomeMessage: req.WelcomeMessage,
		CreatedAt:      time.Now().UTC(),
	}
	c.data.Bots = append(c.data.Bots, bot)
	return bot, nil
}

// BotConfig returns the seeded config for the bot.
func (c *MockClient) BotConfig(_ context.Context, botID string) (BotConfig, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Configs[botID], nil
}

// SaveBotConfig stores the config.
func (c *MockClient) SaveBotConfig(_ context.Context, botID string, cfg BotConfig) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Configs[botID] = cfg
	return nil
}

// BotKey returns the seeded key.
func (c *MockClient) BotKey(_ context.Context, botID string) (BotKey, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Keys[botID], nil
}

// RotateBotKey replaces the key with a fresh one.
func (c *MockClient) RotateBotKey(_ context.Context, botID string) (BotKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := BotKey{Key: "pk_" + uuid.NewString(), RotatedAt: time.Now().UTC()}
	c.data.Keys[botID] = key
	return key, nil
}

// RevokeBotKey marks the key revoked.
func (c *MockClient) RevokeBotKey(_ context.Context, botID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.data.Keys[botID]
	key.Revoked = true
	c.data.Keys[botID] = key
	return nil
}

// Appointments returns the seeded bookings for the bot.
func (c *MockClient) Appointments(_ context.Context, botID string) ([]Appointment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Appointment(nil), c.data.Appointments[botID]...), nil
}

// CalendarEvents returns seeded events overlapping [from, to].
func (c *MockClient) CalendarEvents(_ context.Context, botID string, from, to time.Time) ([]CalendarEvent, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []CalendarEvent
	for _, ev := range c.data.Events[botID] {
		if ev.End.Before(from) || ev.Start.After(to) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// CalendarConfig reports a connected mock calendar.
func (c *MockClient) CalendarConfig(context.Context, string) (CalendarConfig, error) {
	return CalendarConfig{Provider: "google", Connected: true}, nil
}

// CancelBooking flips the matching appointment to cancelled.
func (c *MockClient) CancelBooking(_ context.Context, botID string, req CancelBookingRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	appts := c.data.Appointments[botID]
	for i := range appts {
		if appts[i].ID == req.AppointmentID {
			appts[i].Status = StatusCancelled
			return nil
		}
	}
	return fmt.Errorf("backend: appointment %s not found", req.AppointmentID)
}

// Leads returns the seeded leads.
func (c *MockClient) Leads(_ context.Context, botID string) ([]Lead, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Lead(nil), c.data.Leads[botID]...), nil
}

// UpdateLeadStatus mutates the matching lead.
func (c *MockClient) UpdateLeadStatus(_ context.Context, leadID string, status LeadStatus) error {
	if !ValidLeadStatus(status) {
		return fmt.Errorf("backend: invalid lead status %q", status)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for botID, leads := range c.data.Leads {
		for i := range leads {
			if leads[i].ID == leadID {
				c.data.Leads[botID][i].Status = status
				return nil
			}
		}
	}
	return fmt.Errorf("backend: lead %s not found", leadID)
}

// DeleteLead drops the matching lead.
func (c *MockClient) DeleteLead(_ context.Context, leadID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for botID, leads := range c.data.Leads {
		for i := range leads {
			if leads[i].ID == leadID {
				c.data.Leads[botID] = append(leads[:i], leads[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("backend: lead %s not found", leadID)
}

// Usage returns the seeded series.
func (c *MockClient) Usage(_ context.Context, orgID, botID string) ([]UsagePoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]UsagePoint(nil), c.data.Usage[orgID+"/"+botID]...), nil
}

// UsageSummary returns the seeded rollup.
func (c *MockClient) UsageSummary(_ context.Context, orgID, botID string) (UsageSummary, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Summaries[orgID+"/"+botID], nil
}

// IngestText starts a mock job.
func (c *MockClient) IngestText(_ context.Context, botID, _ string) (IngestJob, error) {
	return c.startJob(botID), nil
}

// IngestQA starts a mock job.
func (c *MockClient) IngestQA(_ context.Context, botID string, _ []QAPair) (IngestJob, error) {
	return c.startJob(botID), nil
}

// IngestURL starts a mock job.
func (c *MockClient) IngestURL(_ context.Context, botID, _ string) (IngestJob, error) {
	return c.startJob(botID), nil
}

// IngestPDF starts a mock job, consuming the upload.
func (c *MockClient) IngestPDF(_ context.Context, botID, _ string, file io.Reader) (IngestJob, error) {
	_, _ = io.Copy(io.Discard, file)
	return c.startJob(botID), nil
}

func (c *MockClient) startJob(botID string) IngestJob {
	c.mu.Lock()
	defer c.mu.Unlock()
	job := IngestJob{ID: uuid.NewString(), BotID: botID, Status: JobPending}
	c.data.Jobs[job.ID] = job
	return job
}

// ClearKnowledge is a no-op for the mock.
func (c *MockClient) ClearKnowledge(context.Context, string) error { return nil }

// IngestJobStatus advances a seeded job toward completion on each poll.
func (c *MockClient) IngestJobStatus(_ context.Context, jobID string) (IngestJob, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	job, ok := c.data.Jobs[jobID]
	if !ok {
		return IngestJob{}, fmt.Errorf("backend: job %s not found", jobID)
	}
	switch job.Status {
	case JobPending:
		job.Status = JobProcessing
		job.Progress = 25
	case JobProcessing:
		job.Progress += 25
		if job.Progress >= 100 {
			job.Progress = 100
			job.Status = JobCompleted
		}
	}
	c.data.Jobs[jobID] = job
	return job, nil
}

// SetJob overrides a job fixture, useful for driving poller tests.
func (c *MockClient) SetJob(job IngestJob) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Jobs[job.ID] = job
}

// FormConfigs returns the seeded configs.
func (c *MockClient) FormConfigs(_ context.Context, botID string) ([]FormConfig, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]FormConfig(nil), c.data.FormConfigs[botID]...), nil
}

// SaveFormConfig stores the config, issuing an id when missing.
func (c *MockClient) SaveFormConfig(_ context.Context, cfg FormConfig) (FormConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
		c.data.FormConfigs[cfg.BotID] = append(c.data.FormConfigs[cfg.BotID], cfg)
		return cfg, nil
	}
	configs := c.data.FormConfigs[cfg.BotID]
	for i := range configs {
		if configs[i].ID == cfg.ID {
			configs[i] = cfg
			return cfg, nil
		}
	}
	c.data.FormConfigs[cfg.BotID] = append(configs, cfg)
	return cfg, nil
}

// UpdateFormField updates a field across all seeded configs.
func (c *MockClient) UpdateFormField(_ context.Context, field FormField) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for botID, configs := range c.data.FormConfigs {
		for i := range configs {
			for j := range configs[i].Fields {
				if configs[i].Fields[j].ID == field.ID {
					c.data.FormConfigs[botID][i].Fields[j] = field
					return nil
				}
			}
		}
	}
	return fmt.Errorf("backend: form field %s not found", field.ID)
}

// FormTemplates returns the seeded templates.
func (c *MockClient) FormTemplates(context.Context) ([]FormTemplate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]FormTemplate(nil), c.data.Templates...), nil
}

// Resources returns the seeded resources.
func (c *MockClient) Resources(_ context.Context, botID string) ([]Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Resource(nil), c.data.Resources[botID]...), nil
}

// CreateResource appends a resource with a generated id.
func (c *MockClient) CreateResource(_ context.Context, res Resource) (Resource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res.ID = uuid.NewString()
	c.data.Resources[res.BotID] = append(c.data.Resources[res.BotID], res)
	return res, nil
}

// UpdateResource replaces the matching resource.
func (c *MockClient) UpdateResource(_ context.Context, res Resource) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, resources := range c.data.Resources {
		for i := range resources {
			if resources[i].ID == res.ID {
				c.data.Resources[key][i] = res
				return nil
			}
		}
	}
	return fmt.Errorf("backend: resource %s not found", res.ID)
}

// DeleteResource drops the matching resource.
func (c *MockClient) DeleteResource(_ context.Context, resourceID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, resources := range c.data.Resources {
		for i := range resources {
			if resources[i].ID == resourceID {
				c.data.Resources[key] = append(resources[:i], resources[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("backend: resource %s not found", resourceID)
}

// UpdateSchedule replaces the matching schedule on its resource.
func (c *MockClient) UpdateSchedule(_ context.Context, sched Schedule) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, resources := range c.data.Resources {
		for i := range resources {
			for j := range resources[i].Schedules {
				if resources[i].Schedules[j].ID == sched.ID {
					c.data.Resources[key][i].Schedules[j] = sched
					return nil
				}
			}
		}
	}
	return fmt.Errorf("backend: schedule %s not found", sched.ID)
}
