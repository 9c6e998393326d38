package types

import "time"

// EventKind identifies a deferred transition.
type EventKind string

const (
	// EventGameOver ends a session whose lives reached zero
	EventGameOver EventKind = "game-over"
	// EventCelebrationEnd turns the celebration off
	EventCelebrationEnd EventKind = "celebration-end"
)

// ScheduledEvent is a transition to apply once Delay has elapsed.
// It is ignored when the session has moved to another epoch.
type ScheduledEvent struct {
	Kind      EventKind
	SessionID string
	Epoch     uint64
	Seq       uint64
	Delay     time.Duration
}

// TimerEvent is enqueued when a scheduled event's delay has elapsed.
type TimerEvent struct {
	Event   ScheduledEvent
	FiredAt int64
}
