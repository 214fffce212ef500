package queries

import (
	"context"
	"testing"
	"time"

	"github.com/chatstack/botadmin/components/calendar"
	"github.com/chatstack/botadmin/components/usage"
	"github.com/chatstack/botadmin/pkg/backend"
)

type stubCalendarService struct {
	calls int
}

func (s *stubCalendarService) LoadWindow(context.Context, string, calendar.ViewMode, time.Time) (*calendar.Window, error) {
	s.calls++
	return &calendar.Window{View: calendar.ViewMonth}, nil
}

type stubLeadsService struct {
	leads []backend.Lead
}

func (s *stubLeadsService) List(context.Context, string) ([]backend.Lead, error) {
	return s.leads, nil
}

type stubUsageService struct {
	calls int
}

func (s *stubUsageService) Load(context.Context, string) (*usage.Report, error) {
	s.calls++
	return &usage.Report{}, nil
}

func TestCalendarWindowQuery(t *testing.T) {
	service := &stubCalendarService{}
	query := NewCalendarWindowQuery(service)
	win, err := query.Query(context.Background(), CalendarWindowInput{BotID: "bot-1", View: calendar.ViewMonth, Anchor: time.Now()})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if win == nil || service.calls != 1 {
		t.Fatalf("expected 1 call with a window, got %d", service.calls)
	}
}

func TestLeadsQueryFilters(t *testing.T) {
	service := &stubLeadsService{leads: []backend.Lead{
		{ID: "l1", Name: "Marie Curie", Status: backend.LeadNew},
		{ID: "l2", Name: "Niels Bohr", Status: backend.LeadContacted},
	}}
	query := NewLeadsQuery(service)

	out, err := query.Query(context.Background(), LeadsInput{BotID: "bot-1", Status: backend.LeadNew})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "l1" {
		t.Fatalf("expected only the new lead, got %v", out)
	}

	out, err = query.Query(context.Background(), LeadsInput{BotID: "bot-1", Search: "bohr"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "l2" {
		t.Fatalf("expected the search match, got %v", out)
	}
}

func TestUsageReportQuery(t *testing.T) {
	service := &stubUsageService{}
	query := NewUsageReportQuery(service)
	_, err := query.Query(context.Background(), UsageReportInput{BotID: "bot-1"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if service.calls != 1 {
		t.Fatalf("expected 1 call, got %d", service.calls)
	}
}
