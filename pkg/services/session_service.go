package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/ent/studysession"
	"github.com/recollect-ai/recollect/pkg/models"
)

// SessionService manages study session lifecycle: start, heartbeat, and the
// terminal transitions to completed/abandoned.
type SessionService struct {
	client *ent.Client
	points *RecallPointService
	clock  Clock

	// maxTargetPoints caps the checklist selected at start.
	maxTargetPoints int
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client, points *RecallPointService, maxTargetPoints int, clock Clock) *SessionService {
	if clock == nil {
		clock = SystemClock()
	}
	if maxTargetPoints <= 0 {
		maxTargetPoints = 10
	}
	return &SessionService{
		client:          client,
		points:          points,
		clock:           clock,
		maxTargetPoints: maxTargetPoints,
	}
}

// StartSession starts a session on a recall set. The checklist is the set's
// due points, most overdue first, capped at the configured maximum. Fails
// with ErrNoDuePoints when nothing is due and ErrActiveSession when the set
// already has an in-progress session.
func (s *SessionService) StartSession(httpCtx context.Context, req models.StartSessionRequest) (*ent.StudySession, []*ent.RecallPoint, error) {
	if req.RecallSetID == "" {
		return nil, nil, NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	set, err := s.client.RecallSet.Get(ctx, req.RecallSetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to get recall set: %w", err)
	}
	if set.Status != recallset.StatusActive {
		return nil, nil, NewValidationError("recall_set_id", "set is not active")
	}

	limit := s.maxTargetPoints
	if req.MaxPoints > 0 && req.MaxPoints < limit {
		limit = req.MaxPoints
	}

	now := s.clock.Now()
	due, err := s.points.DuePoints(ctx, req.RecallSetID, now, limit)
	if err != nil {
		return nil, nil, err
	}
	if len(due) == 0 {
		return nil, nil, ErrNoDuePoints
	}

	targetIDs := make([]string, len(due))
	for i, p := range due {
		targetIDs[i] = p.ID
	}

	session, err := s.client.StudySession.Create().
		SetID(NewID("sess")).
		SetRecallSetID(req.RecallSetID).
		SetTargetPointIds(targetIDs).
		SetStartedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Partial unique index: one in-progress session per set.
			return nil, nil, ErrActiveSession
		}
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, due, nil
}

// GetSession returns a session by ID.
func (s *SessionService) GetSession(httpCtx context.Context, sessionID string) (*ent.StudySession, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	session, err := s.client.StudySession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ActiveSession returns the in-progress session for a set, or nil.
func (s *SessionService) ActiveSession(httpCtx context.Context, setID string) (*ent.StudySession, error) {
	if setID == "" {
		return nil, NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	session, err := s.client.StudySession.Query().
		Where(
			studysession.RecallSetIDEQ(setID),
			studysession.StatusEQ(studysession.StatusInProgress),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query active session: %w", err)
	}
	return session, nil
}

// ListSessions returns sessions, newest first.
func (s *SessionService) ListSessions(httpCtx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := s.client.StudySession.Query()
	if filters.RecallSetID != "" {
		query = query.Where(studysession.RecallSetIDEQ(filters.RecallSetID))
	}
	if filters.Status != "" {
		status := studysession.Status(filters.Status)
		if err := studysession.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "must be in_progress, completed, or abandoned")
		}
		query = query.Where(studysession.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	sessions, err := query.
		Order(ent.Desc(studysession.FieldStartedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// Touch records session activity for orphan detection.
func (s *SessionService) Touch(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.StudySession.UpdateOneID(sessionID).
		SetLastActivityAt(s.clock.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// CompleteSession marks a session completed and stores its metrics.
func (s *SessionService) CompleteSession(httpCtx context.Context, sessionID string, metrics models.SessionMetrics) (*ent.StudySession, error) {
	return s.end(httpCtx, sessionID, studysession.StatusCompleted, &metrics)
}

// AbandonSession marks a session abandoned. Metrics are still computed by the
// caller so partial work is not lost.
func (s *SessionService) AbandonSession(httpCtx context.Context, sessionID string, metrics *models.SessionMetrics) (*ent.StudySession, error) {
	return s.end(httpCtx, sessionID, studysession.StatusAbandoned, metrics)
}

func (s *SessionService) end(httpCtx context.Context, sessionID string, status studysession.Status, metrics *models.SessionMetrics) (*ent.StudySession, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	session, err := s.client.StudySession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session.Status != studysession.StatusInProgress {
		return nil, ErrSessionEnded
	}

	upd := session.Update().
		SetStatus(status).
		SetEndedAt(s.clock.Now())
	if metrics != nil {
		upd.SetMetrics(metricsToMap(*metrics))
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	return updated, nil
}

// StaleSessions returns in-progress sessions whose last activity predates the
// cutoff. Used by the orphan cleanup sweep.
func (s *SessionService) StaleSessions(httpCtx context.Context, cutoff time.Time) ([]*ent.StudySession, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sessions, err := s.client.StudySession.Query().
		Where(
			studysession.StatusEQ(studysession.StatusInProgress),
			studysession.LastActivityAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale sessions: %w", err)
	}
	return sessions, nil
}

// metricsToMap converts metrics through JSON so stored keys match the wire
// format exactly.
func metricsToMap(m models.SessionMetrics) map[string]interface{} {
	raw, err := json.Marshal(m)
	if err != nil {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
