package services

import (
	"context"
	"fmt"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/pkg/llm"
)

// MessageService manages the main-line session transcript. Indexes are dense
// and immutable; rabbithole history never passes through here.
type MessageService struct {
	client *ent.Client
	clock  Clock
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client, clock Clock) *MessageService {
	if clock == nil {
		clock = SystemClock()
	}
	return &MessageService{client: client, clock: clock}
}

// AppendMessage persists the next message in a session at the given index.
// The unique (session_id, message_index) index rejects races; callers hold
// the per-session turn lock so a constraint error indicates a bug.
func (s *MessageService) AppendMessage(httpCtx context.Context, sessionID string, index int, role, content, displayContent string) (*ent.SessionMessage, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if index < 0 {
		return nil, NewValidationError("message_index", "must be >= 0")
	}
	msgRole := sessionmessage.Role(role)
	if err := sessionmessage.RoleValidator(msgRole); err != nil {
		return nil, NewValidationError("role", "must be system, user, or assistant")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.SessionMessage.Create().
		SetID(NewID("msg")).
		SetSessionID(sessionID).
		SetMessageIndex(index).
		SetRole(msgRole).
		SetContent(content).
		SetTokenCount(llm.CountTokens(content)).
		SetCreatedAt(s.clock.Now())
	if displayContent != "" && displayContent != content {
		create.SetDisplayContent(displayContent)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("message index %d already taken in session %s: %w", index, sessionID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// ListMessages returns a session's messages ordered by index, starting at
// fromIndex (0 for the whole transcript).
func (s *MessageService) ListMessages(httpCtx context.Context, sessionID string, fromIndex int) ([]*ent.SessionMessage, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	query := s.client.SessionMessage.Query().
		Where(sessionmessage.SessionIDEQ(sessionID))
	if fromIndex > 0 {
		query = query.Where(sessionmessage.MessageIndexGTE(fromIndex))
	}

	messages, err := query.
		Order(ent.Asc(sessionmessage.FieldMessageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// NextIndex returns the next free message index for a session.
func (s *MessageService) NextIndex(httpCtx context.Context, sessionID string) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	last, err := s.client.SessionMessage.Query().
		Where(sessionmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(sessionmessage.FieldMessageIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query last message: %w", err)
	}
	return last.MessageIndex + 1, nil
}
