package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/models"
)

// RecallPointService manages recall points and their FSRS memory state.
type RecallPointService struct {
	client    *ent.Client
	scheduler fsrs.Scheduler
	clock     Clock
}

// NewRecallPointService creates a new RecallPointService
func NewRecallPointService(client *ent.Client, scheduler fsrs.Scheduler, clock Clock) *RecallPointService {
	if clock == nil {
		clock = SystemClock()
	}
	return &RecallPointService{client: client, scheduler: scheduler, clock: clock}
}

// AddPoint adds a point to a set with fresh FSRS state (due immediately).
func (s *RecallPointService) AddPoint(httpCtx context.Context, setID string, req models.CreateRecallPointRequest) (*ent.RecallPoint, error) {
	if setID == "" {
		return nil, NewValidationError("recall_set_id", "required")
	}
	if len(req.Content) < 10 {
		return nil, NewValidationError("content", "must be at least 10 characters")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	now := s.clock.Now()
	state := s.scheduler.NewState(now)

	point, err := s.client.RecallPoint.Create().
		SetID(NewID("rp")).
		SetRecallSetID(setID).
		SetContent(req.Content).
		SetContext(req.Context).
		SetDifficulty(state.Difficulty).
		SetStability(state.Stability).
		SetDue(state.Due).
		SetState(recallpoint.State(state.State)).
		SetCreatedAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// FK violation: the set does not exist.
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add recall point: %w", err)
	}
	return point, nil
}

// GetPoint returns a recall point by ID.
func (s *RecallPointService) GetPoint(httpCtx context.Context, pointID string) (*ent.RecallPoint, error) {
	if pointID == "" {
		return nil, NewValidationError("recall_point_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	point, err := s.client.RecallPoint.Get(ctx, pointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recall point: %w", err)
	}
	return point, nil
}

// ListPoints returns the points of a set ordered by due date.
func (s *RecallPointService) ListPoints(httpCtx context.Context, setID string, filters models.RecallPointFilters) ([]*ent.RecallPoint, error) {
	if setID == "" {
		return nil, NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	query := s.client.RecallPoint.Query().
		Where(recallpoint.RecallSetIDEQ(setID))
	if filters.DueOnly {
		query = query.Where(recallpoint.DueLTE(s.clock.Now()))
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	points, err := query.
		Order(ent.Asc(recallpoint.FieldDue)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recall points: %w", err)
	}
	return points, nil
}

// DuePoints returns up to limit points of a set that are due at or before
// now, most overdue first. This is the session-start checklist query.
func (s *RecallPointService) DuePoints(httpCtx context.Context, setID string, now time.Time, limit int) ([]*ent.RecallPoint, error) {
	if setID == "" {
		return nil, NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	query := s.client.RecallPoint.Query().
		Where(
			recallpoint.RecallSetIDEQ(setID),
			recallpoint.DueLTE(now),
		).
		Order(ent.Asc(recallpoint.FieldDue))
	if limit > 0 {
		query = query.Limit(limit)
	}

	points, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due points: %w", err)
	}
	return points, nil
}

// MemoryState converts a stored point into the scheduler's value type.
func MemoryState(p *ent.RecallPoint) fsrs.MemoryState {
	return fsrs.MemoryState{
		Difficulty: p.Difficulty,
		Stability:  p.Stability,
		Due:        p.Due,
		LastReview: p.LastReview,
		Reps:       p.Reps,
		Lapses:     p.Lapses,
		State:      fsrs.State(p.State),
	}
}

// ApplyReview persists an updated FSRS state and appends a history entry.
// The scheduler has already been run; this is the write-back.
func (s *RecallPointService) ApplyReview(httpCtx context.Context, pointID string, state fsrs.MemoryState, success bool, latencyMs int64) (*ent.RecallPoint, error) {
	if pointID == "" {
		return nil, NewValidationError("recall_point_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	point, err := s.client.RecallPoint.Get(ctx, pointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recall point: %w", err)
	}

	history := append(point.RecallHistory, map[string]interface{}{
		"timestamp":  s.clock.Now().UTC().Format(time.RFC3339),
		"success":    success,
		"latency_ms": latencyMs,
	})

	upd := point.Update().
		SetDifficulty(state.Difficulty).
		SetStability(state.Stability).
		SetDue(state.Due).
		SetReps(state.Reps).
		SetLapses(state.Lapses).
		SetState(recallpoint.State(state.State)).
		SetRecallHistory(history)
	if state.LastReview != nil {
		upd.SetLastReview(*state.LastReview)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply review: %w", err)
	}
	return updated, nil
}
