package commands

import (
	"context"
	"testing"

	"github.com/chatstack/botadmin/pkg/activity"
	"github.com/chatstack/botadmin/pkg/backend"
)

type recordingTelemetry struct {
	events []string
}

func (r *recordingTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	r.events = append(r.events, event)
}

type recordingHook struct {
	events []activity.Event
}

func (h *recordingHook) Notify(_ context.Context, evt activity.Event) error {
	h.events = append(h.events, evt)
	return nil
}

type fakeCancelService struct {
	cancelled []string
}

func (f *fakeCancelService) Cancel(_ context.Context, _ string, appts []backend.Appointment, appointmentID string) ([]backend.Appointment, error) {
	f.cancelled = append(f.cancelled, appointmentID)
	return appts, nil
}

func TestCancelBookingCommand(t *testing.T) {
	service := &fakeCancelService{}
	telemetry := &recordingTelemetry{}
	hook := &recordingHook{}
	emitter := activity.NewEmitter(activity.Hooks{hook}, activity.Config{Enabled: true})
	cmd := NewCancelBookingCommand(service, emitter, telemetry)

	if err := cmd.Execute(context.Background(), CancelBookingInput{}); err == nil {
		t.Fatalf("expected error for missing ids")
	}

	err := cmd.Execute(context.Background(), CancelBookingInput{
		BotID:         "bot-1",
		AppointmentID: "appt-1",
		ActorID:       "admin-1",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(service.cancelled) != 1 || service.cancelled[0] != "appt-1" {
		t.Fatalf("unexpected cancellations: %v", service.cancelled)
	}
	if len(telemetry.events) != 1 || telemetry.events[0] != "admin.booking.cancel" {
		t.Fatalf("unexpected telemetry: %v", telemetry.events)
	}
	if len(hook.events) != 1 || hook.events[0].ObjectType != "booking" {
		t.Fatalf("unexpected activity: %+v", hook.events)
	}
}

type fakeLeadService struct {
	updates map[string]backend.LeadStatus
}

func (f *fakeLeadService) UpdateStatus(_ context.Context, leadID string, status backend.LeadStatus) error {
	if f.updates == nil {
		f.updates = map[string]backend.LeadStatus{}
	}
	f.updates[leadID] = status
	return nil
}

func TestUpdateLeadStatusCommand(t *testing.T) {
	service := &fakeLeadService{}
	cmd := NewUpdateLeadStatusCommand(service, nil, nil)

	if err := cmd.Execute(context.Background(), UpdateLeadStatusInput{Status: backend.LeadContacted}); err == nil {
		t.Fatalf("expected error for missing lead id")
	}

	err := cmd.Execute(context.Background(), UpdateLeadStatusInput{
		LeadID: "lead-1",
		Status: backend.LeadContacted,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if service.updates["lead-1"] != backend.LeadContacted {
		t.Fatalf("unexpected updates: %v", service.updates)
	}
}

type fakeRotateService struct {
	rotated []string
}

func (f *fakeRotateService) RotateKey(_ context.Context, botID string) (backend.BotKey, error) {
	f.rotated = append(f.rotated, botID)
	return backend.BotKey{Key: "pk_new"}, nil
}

func TestRotateBotKeyCommand(t *testing.T) {
	service := &fakeRotateService{}
	hook := &recordingHook{}
	emitter := activity.NewEmitter(activity.Hooks{hook}, activity.Config{Enabled: true})
	cmd := NewRotateBotKeyCommand(service, emitter, nil)

	if err := cmd.Execute(context.Background(), RotateBotKeyInput{}); err == nil {
		t.Fatalf("expected error for missing bot id")
	}

	if err := cmd.Execute(context.Background(), RotateBotKeyInput{BotID: "bot-1"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(service.rotated) != 1 {
		t.Fatalf("unexpected rotations: %v", service.rotated)
	}
	if len(hook.events) != 1 || hook.events[0].Verb != "rotate" {
		t.Fatalf("unexpected activity: %+v", hook.events)
	}
}

type fakeClearService struct {
	cleared []string
}

func (f *fakeClearService) Clear(_ context.Context, botID string) error {
	f.cleared = append(f.cleared, botID)
	return nil
}

func TestClearKnowledgeCommand(t *testing.T) {
	service := &fakeClearService{}
	cmd := NewClearKnowledgeCommand(service, nil, nil)

	if err := cmd.Execute(context.Background(), ClearKnowledgeInput{}); err == nil {
		t.Fatalf("expected error for missing bot id")
	}
	if err := cmd.Execute(context.Background(), ClearKnowledgeInput{BotID: "bot-1"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(service.cleared) != 1 {
		t.Fatalf("unexpected clears: %v", service.cleared)
	}
}

type fakeFieldService struct {
	fields map[string]backend.FormField
}

func (f *fakeFieldService) UpdateField(_ context.Context, field backend.FormField) error {
	if f.fields == nil {
		f.fields = map[string]backend.FormField{}
	}
	f.fields[field.ID] = field
	return nil
}

func TestUpdateFormFieldCommand(t *testing.T) {
	service := &fakeFieldService{}
	cmd := NewUpdateFormFieldCommand(service, nil, nil)

	if err := cmd.Execute(context.Background(), UpdateFormFieldInput{}); err == nil {
		t.Fatalf("expected error for missing field id")
	}
	err := cmd.Execute(context.Background(), UpdateFormFieldInput{
		FieldID: "f-1",
		Field:   backend.FormField{Name: "email", Type: "email"},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if service.fields["f-1"].Name != "email" {
		t.Fatalf("unexpected fields: %v", service.fields)
	}
}
