package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
)

// RabbitholeService persists tangent conversations. A rabbithole is open
// while return_message_index is unset.
type RabbitholeService struct {
	client *ent.Client
	clock  Clock
}

// NewRabbitholeService creates a new RabbitholeService
func NewRabbitholeService(client *ent.Client, clock Clock) *RabbitholeService {
	if clock == nil {
		clock = SystemClock()
	}
	return &RabbitholeService{client: client, clock: clock}
}

// OpenRabbithole records a new tangent starting at the trigger message.
func (s *RabbitholeService) OpenRabbithole(httpCtx context.Context, sessionID, topic string, depth, triggerIndex int) (*ent.RabbitholeEvent, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if topic == "" {
		return nil, NewValidationError("topic", "required")
	}
	if depth < 1 {
		return nil, NewValidationError("depth", "must be >= 1")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rh, err := s.client.RabbitholeEvent.Create().
		SetID(NewID("rh")).
		SetSessionID(sessionID).
		SetTopic(topic).
		SetDepth(depth).
		SetTriggerMessageIndex(triggerIndex).
		SetCreatedAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open rabbithole: %w", err)
	}
	return rh, nil
}

// CloseRabbithole stores the return index and the full tangent history.
func (s *RabbitholeService) CloseRabbithole(httpCtx context.Context, rabbitholeID string, returnIndex int, history []map[string]interface{}) (*ent.RabbitholeEvent, error) {
	if rabbitholeID == "" {
		return nil, NewValidationError("rabbithole_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rh, err := s.client.RabbitholeEvent.Get(ctx, rabbitholeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rabbithole: %w", err)
	}
	if returnIndex <= rh.TriggerMessageIndex {
		return nil, NewValidationError("return_message_index", "must be greater than trigger_message_index")
	}

	updated, err := rh.Update().
		SetReturnMessageIndex(returnIndex).
		SetConversationHistory(history).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close rabbithole: %w", err)
	}
	return updated, nil
}

// ListRabbitholes returns a session's rabbitholes in trigger order.
func (s *RabbitholeService) ListRabbitholes(httpCtx context.Context, sessionID string) ([]*ent.RabbitholeEvent, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rhs, err := s.client.RabbitholeEvent.Query().
		Where(rabbitholeevent.SessionIDEQ(sessionID)).
		Order(ent.Asc(rabbitholeevent.FieldTriggerMessageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rabbitholes: %w", err)
	}
	return rhs, nil
}
