package events_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/services"
	"github.com/recollect-ai/recollect/test/util"
)

// recordingSink collects notifications dispatched by the listener.
type recordingSink struct {
	mu     sync.Mutex
	events [][]byte
}

func (s *recordingSink) Broadcast(channel string, event []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, append([]byte(nil), event...))
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *recordingSink) payload(i int) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	var m map[string]any
	_ = json.Unmarshal(s.events[i], &m)
	return m
}

// Full round trip: publish inside a transaction, receive over a dedicated
// LISTEN connection, catch up from the events table.
func TestPublisherListenerRoundTrip(t *testing.T) {
	ctx := context.Background()
	entClient, db := util.SetupTestDatabase(t)

	publisher := events.NewPublisher(db)
	sink := &recordingSink{}

	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), sink)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	const sessionID = "sess_roundtrip"
	channel := events.SessionChannel(sessionID)
	require.NoError(t, listener.Subscribe(ctx, channel))

	// Persistent event: lands in the table and on the channel.
	err := publisher.PublishSessionStarted(ctx, events.SessionStartedPayload{
		SessionID:   sessionID,
		TotalPoints: 3,
		Timestamp:   events.Timestamp(time.Now()),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return sink.count() >= 1 }, 5*time.Second, 20*time.Millisecond)

	got := sink.payload(0)
	assert.Equal(t, events.EventTypeSessionStarted, got["type"])
	assert.Equal(t, sessionID, got["session_id"])
	// NOTIFY payloads carry db_event_id so clients can track catchup position.
	assert.NotNil(t, got["db_event_id"])

	// Transient event: broadcast but never stored.
	err = publisher.PublishAssistantToken(ctx, events.AssistantTokenPayload{
		SessionID: sessionID,
		Delta:     "The proton",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return sink.count() >= 2 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, events.EventTypeAssistantToken, sink.payload(1)["type"])

	eventService := services.NewEventService(entClient)
	stored, err := eventService.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, events.EventTypeSessionStarted, stored[0].Payload["type"])
}

func TestListenerUnsubscribeStopsDelivery(t *testing.T) {
	ctx := context.Background()
	_, db := util.SetupTestDatabase(t)

	publisher := events.NewPublisher(db)
	sink := &recordingSink{}

	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), sink)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	const sessionID = "sess_unsub"
	channel := events.SessionChannel(sessionID)
	require.NoError(t, listener.Subscribe(ctx, channel))

	require.NoError(t, publisher.PublishBusy(ctx, events.BusyPayload{SessionID: sessionID}))
	require.Eventually(t, func() bool { return sink.count() == 1 }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, listener.Unsubscribe(ctx, channel))
	require.NoError(t, publisher.PublishBusy(ctx, events.BusyPayload{SessionID: sessionID}))

	// Give a stray notification time to arrive before asserting it did not.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 1, sink.count())
}

func TestEventCleanup(t *testing.T) {
	ctx := context.Background()
	entClient, db := util.SetupTestDatabase(t)

	publisher := events.NewPublisher(db)
	const sessionID = "sess_cleanup"
	channel := events.SessionChannel(sessionID)

	require.NoError(t, publisher.PublishSessionStarted(ctx, events.SessionStartedPayload{
		SessionID: sessionID,
		Timestamp: events.Timestamp(time.Now()),
	}))

	eventService := services.NewEventService(entClient)

	// Fresh events survive the TTL sweep.
	n, err := eventService.CleanupOrphanedEvents(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Per-session cleanup removes them regardless of age.
	n, err = eventService.CleanupSessionEvents(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := eventService.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
