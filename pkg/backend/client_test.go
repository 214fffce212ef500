package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chatstack/botadmin/pkg/session"
)

func TestClientInjectsBearerToken(t *testing.T) {
	store := session.NewInMemoryStore()
	_ = store.SetToken(context.Background(), "jwt-abc")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer jwt-abc" {
			t.Fatalf("expected bearer header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]Bot{{ID: "b1", Name: "Support"}})
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Session: store})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	bots, err := client.ListBots(context.Background())
	if err != nil {
		t.Fatalf("list bots: %v", err)
	}
	if len(bots) != 1 || bots[0].ID != "b1" {
		t.Fatalf("unexpected bots: %#v", bots)
	}
}

func TestClientUnauthorizedClearsSession(t *testing.T) {
	store := session.NewInMemoryStore()
	ctx := context.Background()
	_ = store.SetToken(ctx, "stale")
	_ = store.SetOrgID(ctx, "org-1")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Session: store})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.ListBots(ctx)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if store.Token(ctx) != "" || store.OrgID(ctx) != "" {
		t.Fatalf("expected session cleared after 401")
	}
}

func TestClientUnwrapsDetailField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "behavior must be one of support, sales, appointment, qna"})
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Session: session.NewInMemoryStore()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.CreateBot(context.Background(), CreateBotRequest{Name: "x", Behavior: "invalid"})
	if err == nil || !strings.Contains(err.Error(), "behavior must be one of") {
		t.Fatalf("expected detail surfaced, got %v", err)
	}
}

func TestCalendarEventsPassesRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("from"); got != from.Format(time.RFC3339) {
			t.Fatalf("unexpected from %q", got)
		}
		if got := r.URL.Query().Get("to"); got != to.Format(time.RFC3339) {
			t.Fatalf("unexpected to %q", got)
		}
		_ = json.NewEncoder(w).Encode([]CalendarEvent{{ID: "ev1", Summary: "Standup"}})
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL, Session: session.NewInMemoryStore()})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	events, err := client.CalendarEvents(context.Background(), "bot-1", from, to)
	if err != nil {
		t.Fatalf("calendar events: %v", err)
	}
	if len(events) != 1 || events[0].ID != "ev1" {
		t.Fatalf("unexpected events: %#v", events)
	}
}

func TestStreamChatReadsDataChunks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Bot-Key"); got != "pk_test" {
			t.Fatalf("expected bot key header, got %q", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: Hello\n\ndata:  world\n\ndata: [DONE]\n\n"))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	var got strings.Builder
	err = client.StreamChat(context.Background(), "bot-1", "pk_test", "hi", func(token string) {
		got.WriteString(token)
	})
	if err != nil {
		t.Fatalf("stream chat: %v", err)
	}
	if got.String() != "Hello world" {
		t.Fatalf("unexpected stream payload %q", got.String())
	}
}

func TestUpdateLeadStatusRejectsUnknownEnum(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://backend.invalid"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.UpdateLeadStatus(context.Background(), "lead-1", "archived"); err == nil {
		t.Fatalf("expected invalid status error")
	}
}
