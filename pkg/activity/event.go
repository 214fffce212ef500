package activity

import (
	"strings"
	"time"
)

// DefaultChannel is applied when an event does not name one.
const DefaultChannel = "botadmin"

// Event is one admin action worth recording: a cancelled booking, a rotated
// key, a cleared knowledge base.
type Event struct {
	Verb           string
	ActorID        string
	UserID         string
	TenantID       string
	ObjectType     string
	ObjectID       string
	Channel        string
	DefinitionCode string
	Recipients     []string
	Metadata       map[string]any
	OccurredAt     time.Time
}

// Valid reports whether the event carries the minimum identifying fields.
func (e Event) Valid() bool {
	return strings.TrimSpace(e.Verb) != ""
}

// NormalizeEvent trims identifying fields, applies the default channel and
// timestamp, and clones the metadata map and recipients slice so hooks can
// mutate their copy freely.
func NormalizeEvent(evt Event) Event {
	out := evt
	out.Verb = strings.TrimSpace(evt.Verb)
	out.ObjectType = strings.TrimSpace(evt.ObjectType)
	out.ObjectID = strings.TrimSpace(evt.ObjectID)
	out.Channel = strings.TrimSpace(evt.Channel)
	if out.Channel == "" {
		out.Channel = DefaultChannel
	}
	if out.OccurredAt.IsZero() {
		out.OccurredAt = time.Now()
	}
	if evt.Metadata != nil {
		out.Metadata = make(map[string]any, len(evt.Metadata))
		for k, v := range evt.Metadata {
			out.Metadata[k] = v
		}
	}
	if evt.Recipients != nil {
		out.Recipients = append([]string(nil), evt.Recipients...)
	}
	return out
}
