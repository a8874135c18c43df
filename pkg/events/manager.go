package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. If more were missed, a catchup.overflow message tells the client
// to do a full REST reload.
const catchupLimit = 200

// listenTimeout bounds how long a LISTEN command may block when a connection
// subscribes to a new PG channel.
const listenTimeout = 10 * time.Second

// AttachInfo is the session snapshot returned to a connecting client.
type AttachInfo struct {
	SessionID           string
	Status              string
	TotalPoints         int
	RecalledCount       int
	OpeningMessageIndex int
	NextMessageIndex    int
}

// SessionGateway is the engine surface the transport drives. One method per
// client frame; the gateway owns all session semantics (busy rejection,
// completion rules) and reports outcomes through the Publisher.
type SessionGateway interface {
	// Attach validates that the session accepts a client and returns its
	// snapshot. Called on hello.
	Attach(ctx context.Context, sessionID string) (AttachInfo, error)

	// SubmitUserMessage hands one user turn to the session's turn loop.
	SubmitUserMessage(sessionID, text, sourceKind string) error

	Leave(ctx context.Context, sessionID string) error
	Abandon(ctx context.Context, sessionID string) error
	Complete(ctx context.Context, sessionID string) error
}

// MessageReplayer provides the persisted transcript for resume.
type MessageReplayer interface {
	ReplayMessages(ctx context.Context, sessionID string, fromIndex int) ([]MessageReplayPayload, error)
}

// CatchupEvent holds the data returned by the catchup query.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries persisted events for catchup. Implemented by the
// EventService adapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager manages WebSocket connections and channel subscriptions.
// Each process has one instance.
type ConnectionManager struct {
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel → set of connection_ids
	channels  map[string]map[string]bool
	channelMu sync.RWMutex

	gateway  SessionGateway
	replayer MessageReplayer
	catchup  CatchupQuerier

	// NotifyListener for dynamic LISTEN/UNLISTEN (set after construction)
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// Connection represents a single WebSocket client bound to one session.
//
// sessionID and subscriptions are accessed without a lock: all reads and
// writes happen on the goroutine that owns this connection (HandleConnection's
// read loop and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	sessionID     string // set by the hello handshake
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(gateway SessionGateway, replayer MessageReplayer, catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		gateway:      gateway,
		replayer:     replayer,
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener sets the NotifyListener for dynamic LISTEN/UNLISTEN.
// Called once during startup after both components exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed — the session itself lives on.
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			slog.Warn("Invalid WebSocket frame", "connection_id", connID, "error", err)
			m.sendError(c, "bad_frame", "frame is not valid JSON")
			continue
		}

		m.handleFrame(ctx, c, &frame)
	}
}

// Broadcast sends an event payload to all connections subscribed to the channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.channelMu.RLock()
	connIDs, exists := m.channels[channel]
	if !exists {
		m.channelMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	m.channelMu.RUnlock()

	// Snapshot connection pointers under the lock, then release before
	// sending: writes can take up to writeTimeout each.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := m.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	m.mu.RUnlock()

	for _, conn := range conns {
		if err := m.sendRaw(conn, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported — used by tests to poll instead of sleeping.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.channelMu.RLock()
	defer m.channelMu.RUnlock()
	return len(m.channels[channel])
}

// handleFrame dispatches one client frame. Everything except hello and ping
// requires a completed handshake.
func (m *ConnectionManager) handleFrame(ctx context.Context, c *Connection, frame *ClientFrame) {
	switch frame.Type {
	case FrameHello:
		m.handleHello(ctx, c, frame)

	case FramePing:
		m.sendJSON(c, map[string]string{"type": "pong"})

	case FrameUserMessage:
		if !m.requireSession(c) {
			return
		}
		source := frame.SourceKind
		if source != SourceVoice {
			source = SourceTyped
		}
		if err := m.gateway.SubmitUserMessage(c.sessionID, frame.Text, source); err != nil {
			m.sendError(c, "submit_failed", err.Error())
		}

	case FrameLeaveSession:
		if !m.requireSession(c) {
			return
		}
		if err := m.gateway.Leave(ctx, c.sessionID); err != nil {
			m.sendError(c, "leave_failed", err.Error())
		}

	case FrameAbandon:
		if !m.requireSession(c) {
			return
		}
		if err := m.gateway.Abandon(ctx, c.sessionID); err != nil {
			m.sendError(c, "abandon_failed", err.Error())
		}

	case FrameComplete:
		if !m.requireSession(c) {
			return
		}
		if err := m.gateway.Complete(ctx, c.sessionID); err != nil {
			m.sendError(c, "complete_failed", err.Error())
		}

	default:
		m.sendError(c, "unknown_frame", "unrecognized frame type: "+frame.Type)
	}
}

// handleHello performs the handshake: validate the session, subscribe to its
// channel, replay the transcript for resume, then catch up missed events.
//
// LISTEN completes before replay starts, so an event published during replay
// is never lost — at worst the client sees it twice and deduplicates by
// db_event_id.
func (m *ConnectionManager) handleHello(ctx context.Context, c *Connection, frame *ClientFrame) {
	if c.sessionID != "" {
		m.sendError(c, "already_attached", "hello already completed for this connection")
		return
	}
	if frame.SessionID == "" {
		m.sendError(c, "bad_frame", "hello requires session_id")
		return
	}

	info, err := m.gateway.Attach(ctx, frame.SessionID)
	if err != nil {
		m.sendError(c, "attach_failed", err.Error())
		return
	}

	channel := SessionChannel(frame.SessionID)
	if err := m.subscribe(c, channel); err != nil {
		m.sendError(c, "subscribe_failed", "failed to subscribe to session channel")
		return
	}
	c.sessionID = frame.SessionID

	m.sendJSON(c, SessionStartedPayload{
		Type:                EventTypeSessionStarted,
		SessionID:           info.SessionID,
		TotalPoints:         info.TotalPoints,
		RecalledCount:       info.RecalledCount,
		OpeningMessageIndex: info.OpeningMessageIndex,
		Timestamp:           Timestamp(time.Now()),
	})

	// Resume: replay the persisted transcript from the requested index so a
	// reconnecting client reaches the same visible state as a fresh load.
	if frame.ResumeFromIndex != nil && m.replayer != nil {
		replayed, err := m.replayer.ReplayMessages(ctx, frame.SessionID, *frame.ResumeFromIndex)
		if err != nil {
			slog.Error("Message replay failed",
				"session_id", frame.SessionID, "error", err)
			m.sendError(c, "replay_failed", "failed to replay messages")
			return
		}
		for i := range replayed {
			replayed[i].Type = EventTypeMessageReplay
			m.sendJSON(c, replayed[i])
		}
	}

	if frame.LastEventID != nil {
		m.handleCatchup(ctx, c, channel, *frame.LastEventID)
	}
}

func (m *ConnectionManager) requireSession(c *Connection) bool {
	if c.sessionID == "" {
		m.sendError(c, "no_session", "hello handshake required first")
		return false
	}
	return true
}

// subscribe registers a connection for a channel and starts LISTEN if it is
// the first subscriber. LISTEN is synchronous so catchup/replay never run in
// a window where published events would be dropped.
func (m *ConnectionManager) subscribe(c *Connection, channel string) error {
	m.channelMu.Lock()
	needsListen := false
	if _, exists := m.channels[channel]; !exists {
		m.channels[channel] = make(map[string]bool)
		needsListen = true
	}
	m.channels[channel][c.ID] = true
	m.channelMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, listenCancel := context.WithTimeout(context.Background(), listenTimeout)
			defer listenCancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.channelMu.Lock()
				delete(m.channels[channel], c.ID)
				if len(m.channels[channel]) == 0 {
					delete(m.channels, channel)
				}
				m.channelMu.Unlock()
				return err
			}
		}
	}

	c.subscriptions[channel] = true
	return nil
}

// unsubscribe removes a connection from a channel and stops LISTEN if it was
// the last subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, channel string) {
	m.channelMu.Lock()
	if subs, exists := m.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.channels, channel)
			// The goroutine re-checks m.channels before issuing UNLISTEN to
			// tolerate a rapid unsubscribe/resubscribe cycle.
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.channelMu.RLock()
					_, resubscribed := m.channels[channel]
					m.channelMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup sends persisted events since lastEventID to the client.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if m.catchup == nil {
		return
	}

	// Query one past the limit to detect overflow.
	catchupEvents, err := m.catchup.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(catchupEvents) > catchupLimit
	if hasMore {
		catchupEvents = catchupEvents[:catchupLimit]
	}

	// Send missed events in order, injecting db_event_id for position
	// tracking (the stored payload doesn't contain it; it is only added to
	// the NOTIFY payload at publish time).
	for _, evt := range catchupEvents {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	if hasMore {
		m.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// registerConnection adds a connection to the tracking map.
func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

// unregisterConnection removes a connection and all its subscriptions.
func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		m.unsubscribe(c, ch)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendError(c *Connection, code, message string) {
	m.sendJSON(c, ErrorPayload{
		Type:      EventTypeError,
		SessionID: c.sessionID,
		Code:      code,
		Message:   message,
		Timestamp: Timestamp(time.Now()),
	})
}

// sendJSON marshals and sends a JSON message to a single connection.
func (m *ConnectionManager) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
