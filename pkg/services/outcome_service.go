package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/pkg/fsrs"
)

// OutcomeService records demonstrated and failed recalls.
type OutcomeService struct {
	client *ent.Client
	clock  Clock
}

// NewOutcomeService creates a new OutcomeService
func NewOutcomeService(client *ent.Client, clock Clock) *OutcomeService {
	if clock == nil {
		clock = SystemClock()
	}
	return &OutcomeService{client: client, clock: clock}
}

// RecordOutcomeRequest carries the evaluator verdict for one point.
type RecordOutcomeRequest struct {
	SessionID         string
	RecallPointID     string
	Success           bool
	Confidence        float64
	Rating            fsrs.Rating
	Reasoning         string
	MessageIndexStart int
	MessageIndexEnd   int
	TimeSpentMs       int64
}

// RecordOutcome persists a recall outcome.
func (s *OutcomeService) RecordOutcome(httpCtx context.Context, req RecordOutcomeRequest) (*ent.RecallOutcome, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.RecallPointID == "" {
		return nil, NewValidationError("recall_point_id", "required")
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		return nil, NewValidationError("confidence", "must be in [0,1]")
	}
	if req.MessageIndexStart > req.MessageIndexEnd {
		return nil, NewValidationError("message_index_start", "must be <= message_index_end")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	outcome, err := s.client.RecallOutcome.Create().
		SetID(NewID("out")).
		SetSessionID(req.SessionID).
		SetRecallPointID(req.RecallPointID).
		SetSuccess(req.Success).
		SetConfidence(req.Confidence).
		SetRating(recalloutcome.Rating(req.Rating.String())).
		SetReasoning(req.Reasoning).
		SetMessageIndexStart(req.MessageIndexStart).
		SetMessageIndexEnd(req.MessageIndexEnd).
		SetTimeSpentMs(req.TimeSpentMs).
		SetCreatedAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record outcome: %w", err)
	}
	return outcome, nil
}

// ListOutcomes returns a session's outcomes in recording order.
func (s *OutcomeService) ListOutcomes(httpCtx context.Context, sessionID string) ([]*ent.RecallOutcome, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	outcomes, err := s.client.RecallOutcome.Query().
		Where(recalloutcome.SessionIDEQ(sessionID)).
		Order(ent.Asc(recalloutcome.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list outcomes: %w", err)
	}
	return outcomes, nil
}
