package backend

import (
	"context"
	"io"
	"time"
)

// API is the backend surface the dashboard components consume. Both the HTTP
// Client and the MockClient satisfy it; auth and the public booking endpoints
// are live-only and stay off the interface.
type API interface {
	ListBots(ctx context.Context) ([]Bot, error)
	CreateBot(ctx context.Context, req CreateBotRequest) (Bot, error)
	BotConfig(ctx context.Context, botID string) (BotConfig, error)
	SaveBotConfig(ctx context.Context, botID string, cfg BotConfig) error
	BotKey(ctx context.Context, botID string) (BotKey, error)
	RotateBotKey(ctx context.Context, botID string) (BotKey, error)
	RevokeBotKey(ctx context.Context, botID string) error

	Appointments(ctx context.Context, botID string) ([]Appointment, error)
	CalendarEvents(ctx context.Context, botID string, from, to time.Time) ([]CalendarEvent, error)
	CalendarConfig(ctx context.Context, botID string) (CalendarConfig, error)
	CancelBooking(ctx context.Context, botID string, req CancelBookingRequest) error

	Leads(ctx context.Context, botID string) ([]Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID string, status LeadStatus) error
	DeleteLead(ctx context.Context, leadID string) error

	Usage(ctx context.Context, orgID, botID string) ([]UsagePoint, error)
	UsageSummary(ctx context.Context, orgID, botID string) (UsageSummary, error)

	IngestText(ctx context.Context, botID, text string) (IngestJob, error)
	IngestQA(ctx context.Context, botID string, pairs []QAPair) (IngestJob, error)
	IngestURL(ctx context.Context, botID, pageURL string) (IngestJob, error)
	IngestPDF(ctx context.Context, botID, fileName string, file io.Reader) (IngestJob, error)
	ClearKnowledge(ctx context.Context, botID string) error
	IngestJobStatus(ctx context.Context, jobID string) (IngestJob, error)

	FormConfigs(ctx context.Context, botID string) ([]FormConfig, error)
	SaveFormConfig(ctx context.Context, cfg FormConfig) (FormConfig, error)
	UpdateFormField(ctx context.Context, field FormField) error
	FormTemplates(ctx context.Context) ([]FormTemplate, error)
	Resources(ctx context.Context, botID string) ([]Resource, error)
	CreateResource(ctx context.Context, res Resource) (Resource, error)
	UpdateResource(ctx context.Context, res Resource) error
	DeleteResource(ctx context.Context, resourceID string) error
	UpdateSchedule(ctx context.Context, sched Schedule) error
}

var (
	_ API = (*Client)(nil)
	_ API = (*MockClient)(nil)
)
