// Package services contains the business logic layer over the Ent client.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/pkg/models"
)

// RecallSetService manages recall sets and their lifecycle status.
type RecallSetService struct {
	client *ent.Client
	clock  Clock
}

// NewRecallSetService creates a new RecallSetService
func NewRecallSetService(client *ent.Client, clock Clock) *RecallSetService {
	if clock == nil {
		clock = SystemClock()
	}
	return &RecallSetService{client: client, clock: clock}
}

// CreateSet creates a new recall set. Names are unique case-insensitively.
func (s *RecallSetService) CreateSet(httpCtx context.Context, req models.CreateRecallSetRequest) (*ent.RecallSet, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	set, err := s.client.RecallSet.Create().
		SetID(NewID("rs")).
		SetName(req.Name).
		SetDescription(req.Description).
		SetDiscussionSystemPrompt(req.DiscussionSystemPrompt).
		SetCreatedAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create recall set: %w", err)
	}
	return set, nil
}

// GetSet returns a recall set by ID.
func (s *RecallSetService) GetSet(httpCtx context.Context, setID string) (*ent.RecallSet, error) {
	if setID == "" {
		return nil, NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	set, err := s.client.RecallSet.Get(ctx, setID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recall set: %w", err)
	}
	return set, nil
}

// ListSets returns recall sets ordered by creation time, newest first.
func (s *RecallSetService) ListSets(httpCtx context.Context, limit, offset int) (*models.RecallSetListResponse, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := s.client.RecallSet.Query()
	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count recall sets: %w", err)
	}

	sets, err := query.
		Order(ent.Desc(recallset.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recall sets: %w", err)
	}

	return &models.RecallSetListResponse{
		Sets:       sets,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateSet applies the non-nil fields of req to a recall set.
func (s *RecallSetService) UpdateSet(httpCtx context.Context, setID string, req models.UpdateRecallSetRequest) (*ent.RecallSet, error) {
	if setID == "" {
		return nil, NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	upd := s.client.RecallSet.UpdateOneID(setID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.DiscussionSystemPrompt != nil {
		upd.SetDiscussionSystemPrompt(*req.DiscussionSystemPrompt)
	}
	if req.Status != nil {
		status := recallset.Status(*req.Status)
		if err := recallset.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "must be active, paused, or archived")
		}
		upd.SetStatus(status)
	}

	set, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update recall set: %w", err)
	}
	return set, nil
}

// DeleteSet removes a recall set; points cascade, sessions are preserved.
func (s *RecallSetService) DeleteSet(httpCtx context.Context, setID string) error {
	if setID == "" {
		return NewValidationError("recall_set_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.RecallSet.DeleteOneID(setID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete recall set: %w", err)
	}
	return nil
}
