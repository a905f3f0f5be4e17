package events

import (
	"context"
	"time"

	"cardtracker/internal/model"
)

// Type names a change to the card inventory.
type Type string

const (
	CardCreated Type = "card.created"
	CardUpdated Type = "card.updated"
	CardDeleted Type = "card.deleted"
)

// Event is the JSON message published after a successful write.
type Event struct {
	Type   Type        `json:"type"`
	ID     int64       `json:"id"`
	CardID string      `json:"card_id"`
	At     time.Time   `json:"at"`
	Card   *model.Card `json:"card,omitempty"`
}

// Publisher delivers inventory events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
