package events

import (
	"context"

	"github.com/recollect-ai/recollect/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	evts, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(evts))
	for i, evt := range evts {
		result[i] = CatchupEvent{
			ID:      evt.ID,
			Payload: evt.Payload,
		}
	}
	return result, nil
}

// MessageServiceAdapter wraps services.MessageService to implement
// MessageReplayer.
type MessageServiceAdapter struct {
	messages *services.MessageService
}

// NewMessageServiceAdapter creates a MessageReplayer from a MessageService.
func NewMessageServiceAdapter(ms *services.MessageService) *MessageServiceAdapter {
	return &MessageServiceAdapter{messages: ms}
}

// ReplayMessages returns the persisted transcript from fromIndex onward in
// the replay payload shape.
func (a *MessageServiceAdapter) ReplayMessages(ctx context.Context, sessionID string, fromIndex int) ([]MessageReplayPayload, error) {
	msgs, err := a.messages.ListMessages(ctx, sessionID, fromIndex)
	if err != nil {
		return nil, err
	}

	out := make([]MessageReplayPayload, len(msgs))
	for i, msg := range msgs {
		out[i] = MessageReplayPayload{
			Type:         EventTypeMessageReplay,
			SessionID:    sessionID,
			MessageIndex: msg.MessageIndex,
			Role:         string(msg.Role),
			Content:      msg.Content,
			DisplayText:  msg.DisplayContent,
			Timestamp:    Timestamp(msg.CreatedAt),
		}
	}
	return out, nil
}
