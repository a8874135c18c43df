package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/event"
)

// EventService queries the persistent transport event log. Writes happen in
// the publisher's NOTIFY transaction, not here.
type EventService struct {
	client *ent.Client
}

func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel after sinceID.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupSessionEvents drops every stored event for a session, typically
// after the session reaches a terminal state and replay is no longer needed.
func (s *EventService) CleanupSessionEvents(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.SessionIDEQ(sessionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}
	return count, nil
}

// CleanupOrphanedEvents drops events older than ttlDays, catching sessions
// whose terminal cleanup never ran.
func (s *EventService) CleanupOrphanedEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup orphaned events: %w", err)
	}
	return count, nil
}
