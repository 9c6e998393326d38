package workers

import (
	"context"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
)

// SessionReaper removes the sessions that were last updated before a unix
// millisecond timestamp and returns how many it removed.
type SessionReaper interface {
	ReapSessions(ctx context.Context, updatedBefore int64) (int, error)
}

type SessionReaperWorker struct {
	reaper   SessionReaper
	ttl      time.Duration
	interval time.Duration
}

type NewSessionReaperWorkerOptions struct {
	Reaper   SessionReaper
	TTL      time.Duration
	Interval time.Duration
}

// NewSessionReaperWorker creates a worker that periodically removes
// sessions idle for longer than the TTL.
func NewSessionReaperWorker(opts NewSessionReaperWorkerOptions) *SessionReaperWorker {
	return &SessionReaperWorker{
		reaper:   opts.Reaper,
		ttl:      opts.TTL,
		interval: opts.Interval,
	}
}

func (w *SessionReaperWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			w.reap(ctx, t)
		}
	}
}

func (w *SessionReaperWorker) reap(ctx context.Context, now time.Time) {
	n, err := w.reaper.ReapSessions(ctx, now.Add(-w.ttl).UnixMilli())
	if err != nil {
		log.Error("Failed to reap sessions: %v", err)
		return
	}
	if n > 0 {
		log.Info("Reaped %d idle sessions", n)
	}
}
