package game

import (
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/queue"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

const (
	// DefaultEnqueueRetryDelay is the first backoff after the event queue was full
	DefaultEnqueueRetryDelay = 100 * time.Millisecond
	// maxEnqueueRetryDelay caps the doubling backoff
	maxEnqueueRetryDelay = time.Second
	// maxEnqueueAttempts bounds how long a fired event waits for room in the queue
	maxEnqueueAttempts = 60
)

// Scheduler delivers scheduled events once their delay has elapsed.
type Scheduler interface {
	Schedule(event types.ScheduledEvent)
}

// TimerScheduler enqueues a TimerEvent on the event queue when the delay of
// a scheduled event elapses. Timers are never stopped; the game loop drops
// events from superseded epochs. A fired event that finds the queue full is
// retried with backoff, a lost game-over would leave its session without lives
// but still playing.
type TimerScheduler struct {
	eventQueue queue.Queue
	retryDelay time.Duration
}

func NewTimerScheduler(eventQueue queue.Queue) *TimerScheduler {
	return &TimerScheduler{
		eventQueue: eventQueue,
		retryDelay: DefaultEnqueueRetryDelay,
	}
}

func (s *TimerScheduler) Schedule(event types.ScheduledEvent) {
	time.AfterFunc(event.Delay, func() {
		s.deliver(event, 1, s.retryDelay)
	})
}

func (s *TimerScheduler) deliver(event types.ScheduledEvent, attempt int, backoff time.Duration) {
	timerEvent := &types.TimerEvent{
		Event:   event,
		FiredAt: time.Now().UnixMilli(),
	}
	err := s.eventQueue.Enqueue(timerEvent)
	if err == nil {
		return
	}
	if attempt >= maxEnqueueAttempts {
		log.Error("Giving up on %s event for session %s after %d attempts: %v", event.Kind, event.SessionID, attempt, err)
		return
	}
	log.Warn("Failed to enqueue %s event for session %s, retrying in %s: %v", event.Kind, event.SessionID, backoff, err)

	next := backoff * 2
	if next > maxEnqueueRetryDelay {
		next = maxEnqueueRetryDelay
	}
	time.AfterFunc(backoff, func() {
		s.deliver(event, attempt+1, next)
	})
}
