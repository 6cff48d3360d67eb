// Package telemetry provides match statistics, highlights, CSV output and snapshots.
package telemetry

import (
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/systems"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventPlayerHit EventType = iota
	EventOpponentHit
	EventWallBounce
	EventPoint
)

// String returns a short snake_case name used in logs.
func (t EventType) String() string {
	switch t {
	case EventPlayerHit:
		return "player_hit"
	case EventOpponentHit:
		return "opponent_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int32
	Side components.Side // Scoring side for EventPoint

	X, Y   float64
	SpeedY float64 // Vertical speed after the event was resolved
}

// EventsFromContacts converts one frame's contact record into events.
// A wall bounce is reported before any paddle event of the same frame.
func EventsFromContacts(tick int32, c systems.Contacts, speedY float64) []Event {
	if !c.Any() {
		return nil
	}

	events := make([]Event, 0, 2)
	if c.WallBounce {
		events = append(events, Event{Type: EventWallBounce, Tick: tick, X: c.X, Y: c.Y, SpeedY: speedY})
	}
	if c.PlayerHit {
		events = append(events, Event{Type: EventPlayerHit, Tick: tick, X: c.X, Y: c.Y, SpeedY: speedY})
	}
	if c.OpponentHit {
		events = append(events, Event{Type: EventOpponentHit, Tick: tick, X: c.X, Y: c.Y, SpeedY: speedY})
	}
	if c.Scored != components.SideNone {
		events = append(events, Event{Type: EventPoint, Tick: tick, Side: c.Scored, X: c.X, Y: c.Y, SpeedY: speedY})
	}
	return events
}
