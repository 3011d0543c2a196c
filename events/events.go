package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the kinds of events the bot emits
type EventType string

const (
	EventTypePreferenceUpdated EventType = "preference_updated"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// Publisher delivers events to whoever is listening
type Publisher interface {
	Publish(event Event) error
}

// PreferenceUpdatedEvent is emitted after a user's stored preferences change
type PreferenceUpdatedEvent struct {
	DiscordID int64  `json:"discord_id"`
	Name      string `json:"name"`
	SteamID   string `json:"steam_id,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Field     string `json:"field"`
}

func (e PreferenceUpdatedEvent) Type() EventType {
	return EventTypePreferenceUpdated
}

// Envelope wraps every published payload
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     EventType       `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

const sourceService = "schnose"

// Subject returns the NATS subject an event type is published on
func Subject(eventType EventType) string {
	return "schnose.events." + string(eventType)
}

func encodeEnvelope(event Event, now time.Time) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	data, err := json.Marshal(Envelope{
		EventID:       uuid.New().String(),
		EventType:     event.Type(),
		Timestamp:     now.UTC(),
		SourceService: sourceService,
		Payload:       payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	return data, nil
}
