package events

// SessionStartedPayload is emitted once the session (new or resumed) is
// attached and the opening message exists.
type SessionStartedPayload struct {
	Type                string `json:"type"` // always EventTypeSessionStarted
	SessionID           string `json:"session_id"`
	TotalPoints         int    `json:"total_points"`
	RecalledCount       int    `json:"recalled_count"`
	OpeningMessageIndex int    `json:"opening_message_index"`
	Timestamp           string `json:"timestamp"` // RFC3339Nano
}

// CorrectionPayload is one transcription fix shown to the user.
type CorrectionPayload struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// UserMessageAcceptedPayload acknowledges a persisted user turn.
type UserMessageAcceptedPayload struct {
	Type         string              `json:"type"` // always EventTypeUserMessageAccepted
	SessionID    string              `json:"session_id"`
	MessageIndex int                 `json:"message_index"`
	DisplayText  string              `json:"display_text"`
	Corrections  []CorrectionPayload `json:"corrections,omitempty"`
	Timestamp    string              `json:"timestamp"`
}

// AssistantTokenPayload is one streamed tutor delta (transient).
type AssistantTokenPayload struct {
	Type      string `json:"type"` // always EventTypeAssistantToken
	SessionID string `json:"session_id"`
	Delta     string `json:"delta"`
	Timestamp string `json:"timestamp"`
}

// AssistantCompletePayload marks the end of one assistant message. The full
// text rides along so reconnecting clients recover dropped deltas.
type AssistantCompletePayload struct {
	Type         string `json:"type"` // always EventTypeAssistantComplete
	SessionID    string `json:"session_id"`
	MessageIndex int    `json:"message_index"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
}

// PointRecalledPayload is one checklist tick.
type PointRecalledPayload struct {
	Type          string `json:"type"` // always EventTypePointRecalled
	SessionID     string `json:"session_id"`
	PointID       string `json:"point_id"`
	RecalledCount int    `json:"recalled_count"`
	TotalPoints   int    `json:"total_points"`
	Timestamp     string `json:"timestamp"`
}

// RabbitholeEnteredPayload marks the start of a tangent.
type RabbitholeEnteredPayload struct {
	Type                string `json:"type"` // always EventTypeRabbitholeEntered
	SessionID           string `json:"session_id"`
	Topic               string `json:"topic"`
	Depth               int    `json:"depth"`
	TriggerMessageIndex int    `json:"trigger_message_index"`
	Timestamp           string `json:"timestamp"`
}

// RabbitholeReturnedPayload marks the return to the main line.
type RabbitholeReturnedPayload struct {
	Type               string `json:"type"` // always EventTypeRabbitholeReturned
	SessionID          string `json:"session_id"`
	Topic              string `json:"topic"`
	ReturnMessageIndex int    `json:"return_message_index"`
	Timestamp          string `json:"timestamp"`
}

// RabbitholeMessagePayload carries one tangent agent reply (transient).
type RabbitholeMessagePayload struct {
	Type      string `json:"type"` // always EventTypeRabbitholeMessage
	SessionID string `json:"session_id"`
	Topic     string `json:"topic"`
	Depth     int    `json:"depth"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// AllPointsRecalledPayload fires when the checklist empties. The session
// keeps running until the client sends complete or leaves.
type AllPointsRecalledPayload struct {
	Type          string `json:"type"` // always EventTypeAllPointsRecalled
	SessionID     string `json:"session_id"`
	RecalledCount int    `json:"recalled_count"`
	TotalPoints   int    `json:"total_points"`
	Timestamp     string `json:"timestamp"`
}

// SessionCompletedPayload carries the final metrics summary.
type SessionCompletedPayload struct {
	Type      string                 `json:"type"` // always EventTypeSessionCompleted
	SessionID string                 `json:"session_id"`
	Metrics   map[string]interface{} `json:"metrics"`
	Timestamp string                 `json:"timestamp"`
}

// SessionEndedPayload covers session_paused and session_abandoned.
type SessionEndedPayload struct {
	Type      string `json:"type"` // EventTypeSessionPaused or EventTypeSessionAbandoned
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// ErrorPayload surfaces a categorized failure (transient).
type ErrorPayload struct {
	Type      string `json:"type"` // always EventTypeError
	SessionID string `json:"session_id"`
	Code      string `json:"code"` // llm.Kind values plus engine codes like no_due_points
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// BusyPayload rejects a concurrent user turn (transient).
type BusyPayload struct {
	Type      string `json:"type"` // always EventTypeBusy
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// MessageReplayPayload is one transcript entry sent during resume.
type MessageReplayPayload struct {
	Type         string `json:"type"` // always EventTypeMessageReplay
	SessionID    string `json:"session_id"`
	MessageIndex int    `json:"message_index"`
	Role         string `json:"role"`
	Content      string `json:"content"`
	DisplayText  string `json:"display_text,omitempty"`
	Timestamp    string `json:"timestamp"`
}
