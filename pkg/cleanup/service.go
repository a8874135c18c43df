// Package cleanup provides data retention and orphan recovery.
package cleanup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/config"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

// SessionSweeper is the slice of the session service the sweep needs.
type SessionSweeper interface {
	StaleSessions(ctx context.Context, cutoff time.Time) ([]*ent.StudySession, error)
	AbandonSession(ctx context.Context, sessionID string, metrics *models.SessionMetrics) (*ent.StudySession, error)
}

// EventCleaner removes persisted events past their TTL.
type EventCleaner interface {
	CleanupOrphanedEvents(ctx context.Context, ttlDays int) (int, error)
}

// LiveChecker reports which sessions currently have a running loop. Stale
// sweeps must never touch those.
type LiveChecker interface {
	LiveSessionIDs() []string
}

// Publisher announces sweep-driven abandonment to any attached clients.
type Publisher interface {
	PublishSessionAbandoned(ctx context.Context, payload events.SessionEndedPayload) error
}

// Service periodically enforces retention policies:
//   - Abandons in-progress sessions with no heartbeat past the stale timeout
//     (crashed process, client that never came back)
//   - Removes persisted Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config    *config.RetentionConfig
	sessions  SessionSweeper
	eventsSvc EventCleaner
	live      LiveChecker
	publisher Publisher

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. live may be nil when no engine
// runs in this process.
func NewService(
	cfg *config.RetentionConfig,
	sessions SessionSweeper,
	eventsSvc EventCleaner,
	live LiveChecker,
	publisher Publisher,
) *Service {
	return &Service{
		config:    cfg,
		sessions:  sessions,
		eventsSvc: eventsSvc,
		live:      live,
		publisher: publisher,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"stale_session_timeout", s.config.StaleSessionTimeout,
		"event_ttl_days", s.config.EventTTLDays,
		"interval", s.config.SweepInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.abandonStaleSessions(ctx)
	s.cleanupOrphanedEvents(ctx)
}

// abandonStaleSessions closes out in-progress sessions whose last heartbeat
// predates the stale timeout. Sessions with a live loop in this process are
// skipped; their own loop owns the lifecycle.
func (s *Service) abandonStaleSessions(_ context.Context) {
	ctx := context.Background()
	cutoff := time.Now().Add(-s.config.StaleSessionTimeout)

	stale, err := s.sessions.StaleSessions(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: stale session query failed", "error", err)
		return
	}

	liveIDs := map[string]bool{}
	if s.live != nil {
		for _, id := range s.live.LiveSessionIDs() {
			liveIDs[id] = true
		}
	}

	abandoned := 0
	for _, session := range stale {
		if liveIDs[session.ID] {
			continue
		}
		// No metrics: whatever loop owned this session is gone, so its
		// counters are gone with it.
		if _, err := s.sessions.AbandonSession(ctx, session.ID, nil); err != nil {
			// Lost the race to another pod or the session's own loop.
			if errors.Is(err, services.ErrSessionEnded) || errors.Is(err, services.ErrNotFound) {
				continue
			}
			slog.Error("Retention: abandon stale session failed",
				"session_id", session.ID, "error", err)
			continue
		}
		abandoned++
		if s.publisher != nil {
			_ = s.publisher.PublishSessionAbandoned(ctx, events.SessionEndedPayload{
				SessionID: session.ID,
				Timestamp: events.Timestamp(time.Now()),
			})
		}
	}
	if abandoned > 0 {
		slog.Info("Retention: abandoned stale sessions", "count", abandoned)
	}
}

func (s *Service) cleanupOrphanedEvents(_ context.Context) {
	count, err := s.eventsSvc.CleanupOrphanedEvents(context.Background(), s.config.EventTTLDays)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up orphaned events", "count", count)
	}
}
