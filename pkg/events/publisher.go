package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher publishes session events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (token deltas, busy, errors) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a new Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Timestamp renders the canonical event timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// --- Typed public methods ---

// PublishSessionStarted persists and broadcasts a session_started event.
func (p *Publisher) PublishSessionStarted(ctx context.Context, payload SessionStartedPayload) error {
	payload.Type = EventTypeSessionStarted
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishUserMessageAccepted persists and broadcasts a user_message_accepted event.
func (p *Publisher) PublishUserMessageAccepted(ctx context.Context, payload UserMessageAcceptedPayload) error {
	payload.Type = EventTypeUserMessageAccepted
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishAssistantToken broadcasts one streaming delta (no DB persistence).
// Ephemeral — the final text arrives with assistant_complete.
func (p *Publisher) PublishAssistantToken(ctx context.Context, payload AssistantTokenPayload) error {
	payload.Type = EventTypeAssistantToken
	return p.transient(ctx, payload.SessionID, payload)
}

// PublishAssistantComplete persists and broadcasts an assistant_complete event.
func (p *Publisher) PublishAssistantComplete(ctx context.Context, payload AssistantCompletePayload) error {
	payload.Type = EventTypeAssistantComplete
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishPointRecalled persists and broadcasts a point_recalled tick.
func (p *Publisher) PublishPointRecalled(ctx context.Context, payload PointRecalledPayload) error {
	payload.Type = EventTypePointRecalled
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishRabbitholeEntered persists and broadcasts a rabbithole_entered event.
func (p *Publisher) PublishRabbitholeEntered(ctx context.Context, payload RabbitholeEnteredPayload) error {
	payload.Type = EventTypeRabbitholeEntered
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishRabbitholeReturned persists and broadcasts a rabbithole_returned event.
func (p *Publisher) PublishRabbitholeReturned(ctx context.Context, payload RabbitholeReturnedPayload) error {
	payload.Type = EventTypeRabbitholeReturned
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishRabbitholeMessage broadcasts a tangent reply (no DB persistence —
// the tangent history lives on the RabbitholeEvent row, not the event log).
func (p *Publisher) PublishRabbitholeMessage(ctx context.Context, payload RabbitholeMessagePayload) error {
	payload.Type = EventTypeRabbitholeMessage
	return p.transient(ctx, payload.SessionID, payload)
}

// PublishAllPointsRecalled persists and broadcasts an all_points_recalled event.
func (p *Publisher) PublishAllPointsRecalled(ctx context.Context, payload AllPointsRecalledPayload) error {
	payload.Type = EventTypeAllPointsRecalled
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishSessionCompleted persists and broadcasts a session_completed event.
func (p *Publisher) PublishSessionCompleted(ctx context.Context, payload SessionCompletedPayload) error {
	payload.Type = EventTypeSessionCompleted
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishSessionAbandoned persists and broadcasts a session_abandoned event.
func (p *Publisher) PublishSessionAbandoned(ctx context.Context, payload SessionEndedPayload) error {
	payload.Type = EventTypeSessionAbandoned
	return p.persist(ctx, payload.SessionID, payload)
}

// PublishSessionPaused broadcasts a session_paused acknowledgment (transient —
// a paused session resumes from the persisted transcript, not the event log).
func (p *Publisher) PublishSessionPaused(ctx context.Context, payload SessionEndedPayload) error {
	payload.Type = EventTypeSessionPaused
	return p.transient(ctx, payload.SessionID, payload)
}

// PublishError broadcasts a categorized failure (no DB persistence).
func (p *Publisher) PublishError(ctx context.Context, payload ErrorPayload) error {
	payload.Type = EventTypeError
	return p.transient(ctx, payload.SessionID, payload)
}

// PublishBusy broadcasts a busy rejection (no DB persistence).
func (p *Publisher) PublishBusy(ctx context.Context, payload BusyPayload) error {
	payload.Type = EventTypeBusy
	return p.transient(ctx, payload.SessionID, payload)
}

// --- Internal core methods ---

func (p *Publisher) persist(ctx context.Context, sessionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	return p.persistAndNotify(ctx, sessionID, SessionChannel(sessionID), payloadJSON)
}

func (p *Publisher) transient(ctx context.Context, sessionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", payload, err)
	}
	return p.notifyOnly(ctx, SessionChannel(sessionID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, sessionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// pg_notify within the same transaction — held until COMMIT, so the
	// broadcast never races ahead of the insert.
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, keeping only the routing fields the client needs to
// fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		SessionID string `json:"session_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
