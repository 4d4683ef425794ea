// Package notify describes directory change events and where they are sent.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	VenueCreated  Type = "venue.created"
	VenueUpdated  Type = "venue.updated"
	VenueDeleted  Type = "venue.deleted"
	ArtistCreated Type = "artist.created"
	ArtistUpdated Type = "artist.updated"
	ArtistDeleted Type = "artist.deleted"
	ShowCreated   Type = "show.created"
	ShowDeleted   Type = "show.deleted"
)

// Event is published after a change has been committed.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	EntityID   int       `json:"entity_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t Type, entityID int, name string, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		EntityID:   entityID,
		Name:       name,
		OccurredAt: at.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Discard drops every event. It is used when no broker is configured.
type Discard struct{}

func (Discard) Publish(context.Context, Event) error {
	return nil
}
