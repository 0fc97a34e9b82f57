// Package events carries change notifications for graph entities to NATS
// JetStream and to WebSocket clients of the admin UI.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Op is the kind of change applied to an entity.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Entity names used in subjects and event bodies.
const (
	EntityTeam   = "team"
	EntityPlayer = "player"
	EntityMatch  = "match"
	EntityLeague = "league"
	EntitySeason = "season"
)

// ChangeEvent describes one successful write. Key is the element id, or the
// team name for teams.
type ChangeEvent struct {
	ID         uuid.UUID `json:"id"`
	Entity     string    `json:"entity"`
	Op         Op        `json:"op"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Publisher delivers change events somewhere.
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, ChangeEvent) error { return nil }

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, event ChangeEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
