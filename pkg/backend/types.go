package backend

import "time"

// BotBehavior enumerates the supported assistant behaviors.
type BotBehavior string

// Supported bot behaviors.
const (
	BehaviorSupport     BotBehavior = "support"
	BehaviorSales       BotBehavior = "sales"
	BehaviorAppointment BotBehavior = "appointment"
	BehaviorQnA         BotBehavior = "qna"
)

// ValidBehavior reports whether the behavior is one of the platform enums.
func ValidBehavior(b BotBehavior) bool {
	switch b {
	case BehaviorSupport, BehaviorSales, BehaviorAppointment, BehaviorQnA:
		return true
	}
	return false
}

// Bot is a configured chatbot instance scoped to an organization.
type Bot struct {
	ID             string      `json:"id"`
	OrgID          string      `json:"org_id"`
	Name           string      `json:"name"`
	Behavior       BotBehavior `json:"behavior"`
	SystemPrompt   string      `json:"system_prompt"`
	WelcomeMessage string      `json:"welcome_message"`
	CreatedAt      time.Time   `json:"created_at"`
}

// BotConfig carries the editable behavior/prompt settings.
type BotConfig struct {
	Behavior       BotBehavior `json:"behavior"`
	SystemPrompt   string      `json:"system_prompt"`
	WelcomeMessage string      `json:"welcome_message"`
	Temperature    float64     `json:"temperature,omitempty"`
}

// BotKey is the rotatable public credential embedded in widget snippets.
type BotKey struct {
	Key       string    `json:"key"`
	Revoked   bool      `json:"revoked"`
	RotatedAt time.Time `json:"rotated_at"`
}

// AppointmentStatus enumerates booking lifecycle states.
type AppointmentStatus string

// Booking lifecycle states.
const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment is a booking created through a public form link. The dashboard
// never creates these; it only reads, filters, and cancels them.
type Appointment struct {
	ID              string            `json:"id"`
	BotID           string            `json:"bot_id"`
	OrgID           string            `json:"org_id"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	Service         string            `json:"service"`
	StartTime       time.Time         `json:"start_time"`
	EndTime         time.Time         `json:"end_time"`
	Status          AppointmentStatus `json:"status"`
	FormData        map[string]any    `json:"form_data,omitempty"`
	ExternalEventID string            `json:"external_event_id,omitempty"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
}

// CalendarEvent is an external-calendar-sourced, read-only event.
type CalendarEvent struct {
	ID      string    `json:"id"`
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	AllDay  bool      `json:"all_day"`
}

// CalendarConfig reports the bot's external calendar linkage.
type CalendarConfig struct {
	Provider  string `json:"provider"`
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}

// FormField describes one intake-form field definition.
type FormField struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Required   bool           `json:"required"`
	Options    []string       `json:"options,omitempty"`
	Validation map[string]any `json:"validation,omitempty"`
	Position   int            `json:"position"`
}

// FormConfig groups the fields and resources backing one public intake form.
type FormConfig struct {
	ID        string      `json:"id"`
	BotID     string      `json:"bot_id"`
	Title     string      `json:"title"`
	Fields    []FormField `json:"fields"`
	Resources []Resource  `json:"resources,omitempty"`
}

// FormTemplate is a reusable starting point for form configs.
type FormTemplate struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Fields []FormField `json:"fields"`
}

// Resource is a bookable entity (doctor, room, staff, equipment).
type Resource struct {
	ID        string     `json:"id"`
	BotID     string     `json:"bot_id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Capacity  int        `json:"capacity"`
	Schedules []Schedule `json:"schedules,omitempty"`
}

// Schedule is a weekly or date-specific availability window for a resource.
type Schedule struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	// Weekday is 0 (Sunday) through 6; -1 when Date is set instead.
	Weekday   int    `json:"weekday"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// LeadStatus enumerates the lead pipeline states.
type LeadStatus string

// Lead pipeline states.
const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadClosed    LeadStatus = "closed"
)

// ValidLeadStatus reports whether the status is one of the pipeline enums.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadClosed:
		return true
	}
	return false
}

// Lead is a captured contact. Status is the only field the dashboard mutates.
type Lead struct {
	ID        string     `json:"id"`
	BotID     string     `json:"bot_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Message   string     `json:"message,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// UsagePoint is one day of backend-aggregated usage.
type UsagePoint struct {
	Day           time.Time `json:"day"`
	Conversations int       `json:"conversations"`
	Messages      int       `json:"messages"`
	Fallbacks     int       `json:"fallbacks"`
}

// UsageSummary is the rollup shown on the analytics page. Fallbacks counts
// turns the bot could not answer from its knowledge base.
type UsageSummary struct {
	Conversations int `json:"conversations"`
	Messages      int `json:"messages"`
	Fallbacks     int `json:"fallbacks"`
	Leads         int `json:"leads"`
}

// IngestJobStatus enumerates ingestion job states.
type IngestJobStatus string

// Ingestion job states.
const (
	JobPending    IngestJobStatus = "pending"
	JobProcessing IngestJobStatus = "processing"
	JobCompleted  IngestJobStatus = "completed"
	JobFailed     IngestJobStatus = "failed"
)

// Terminal reports whether the job will make no further progress.
func (s IngestJobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// IngestJob tracks one knowledge ingestion run.
type IngestJob struct {
	ID       string          `json:"id"`
	BotID    string          `json:"bot_id"`
	Status   IngestJobStatus `json:"status"`
	Progress int             `json:"progress"`
	Error    string          `json:"error,omitempty"`
}

// QAPair is one question/answer knowledge entry.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AuthUser is the profile returned by the auth endpoints.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	OrgID string `json:"org_id"`
	Name  string `json:"name,omitempty"`
}

// LoginResult carries the issued token and profile.
type LoginResult struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
