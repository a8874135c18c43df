// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two delivery classes exist. Persistent events are written to the events
// table and broadcast in the same transaction; after a reconnect the client
// catches up from the table using db_event_id. Transient events (token
// deltas, busy, errors) are NOTIFY-only: cheap, high-frequency, and safe to
// lose because the persisted assistant_complete carries the final text.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeSessionStarted      = "session_started"
	EventTypeUserMessageAccepted = "user_message_accepted"
	EventTypeAssistantComplete   = "assistant_complete"
	EventTypePointRecalled       = "point_recalled"
	EventTypeRabbitholeEntered   = "rabbithole_entered"
	EventTypeRabbitholeReturned  = "rabbithole_returned"
	EventTypeAllPointsRecalled   = "all_points_recalled"
	EventTypeSessionCompleted    = "session_completed"
	EventTypeSessionAbandoned    = "session_abandoned"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Streaming tutor deltas — high-frequency, ephemeral.
	EventTypeAssistantToken = "assistant_token"

	// Turn rejected because one is already processing.
	EventTypeBusy = "busy"

	// Categorized failure surfaced to the client.
	EventTypeError = "error"

	// Tangent agent reply. Transient by design: rabbithole history is never
	// merged into the persisted main transcript.
	EventTypeRabbitholeMessage = "rabbithole_message"

	// Leave acknowledged; session stays in_progress for later resume.
	EventTypeSessionPaused = "session_paused"

	// Replayed transcript entry sent during resume, before live events.
	EventTypeMessageReplay = "message_replay"
)

// Client → server frame types.
const (
	FrameHello        = "hello"
	FrameUserMessage  = "user_message"
	FrameLeaveSession = "leave_session"
	FrameAbandon      = "abandon"
	FrameComplete     = "complete"
	FramePing         = "ping"
)

// User input source kinds carried on user_message frames.
const (
	SourceVoice = "voice"
	SourceTyped = "typed"
)

// SessionChannel returns the NOTIFY channel for a session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientFrame is the JSON structure for client → server WebSocket messages.
// The first frame on a connection must be hello; everything else is rejected
// until the handshake completes.
type ClientFrame struct {
	Type string `json:"type"`

	// hello fields
	SessionID       string `json:"session_id,omitempty"`
	ResumeFromIndex *int   `json:"resume_from_index,omitempty"`
	LastEventID     *int   `json:"last_event_id,omitempty"`

	// user_message fields
	Text       string `json:"text,omitempty"`
	SourceKind string `json:"source_kind,omitempty"`
}
