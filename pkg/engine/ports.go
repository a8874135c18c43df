// Package engine runs live study sessions: one goroutine per session driving
// the turn loop (transcription → rabbithole detection → tutor stream →
// evaluation → FSRS updates) and reporting through the event publisher.
package engine

import (
	"context"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

// The engine consumes the service layer through narrow interfaces so the turn
// loop can be unit-tested against in-memory fakes.

// SetStore reads recall sets.
type SetStore interface {
	GetSet(ctx context.Context, setID string) (*ent.RecallSet, error)
}

// PointStore reads points and writes back reviewed FSRS state.
type PointStore interface {
	GetPoint(ctx context.Context, pointID string) (*ent.RecallPoint, error)
	ApplyReview(ctx context.Context, pointID string, state fsrs.MemoryState, success bool, latencyMs int64) (*ent.RecallPoint, error)
}

// SessionStore manages session rows.
type SessionStore interface {
	StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.StudySession, []*ent.RecallPoint, error)
	GetSession(ctx context.Context, sessionID string) (*ent.StudySession, error)
	Touch(ctx context.Context, sessionID string) error
	CompleteSession(ctx context.Context, sessionID string, metrics models.SessionMetrics) (*ent.StudySession, error)
	AbandonSession(ctx context.Context, sessionID string, metrics *models.SessionMetrics) (*ent.StudySession, error)
}

// MessageStore manages the main-line transcript.
type MessageStore interface {
	AppendMessage(ctx context.Context, sessionID string, index int, role, content, displayContent string) (*ent.SessionMessage, error)
	ListMessages(ctx context.Context, sessionID string, fromIndex int) ([]*ent.SessionMessage, error)
}

// OutcomeStore records recall outcomes.
type OutcomeStore interface {
	RecordOutcome(ctx context.Context, req services.RecordOutcomeRequest) (*ent.RecallOutcome, error)
	ListOutcomes(ctx context.Context, sessionID string) ([]*ent.RecallOutcome, error)
}

// RabbitholeStore persists tangent events.
type RabbitholeStore interface {
	OpenRabbithole(ctx context.Context, sessionID, topic string, depth, triggerIndex int) (*ent.RabbitholeEvent, error)
	CloseRabbithole(ctx context.Context, rabbitholeID string, returnIndex int, history []map[string]interface{}) (*ent.RabbitholeEvent, error)
}

// Publisher is the outbound event surface. Implemented by events.Publisher.
type Publisher interface {
	PublishSessionStarted(ctx context.Context, payload events.SessionStartedPayload) error
	PublishUserMessageAccepted(ctx context.Context, payload events.UserMessageAcceptedPayload) error
	PublishAssistantToken(ctx context.Context, payload events.AssistantTokenPayload) error
	PublishAssistantComplete(ctx context.Context, payload events.AssistantCompletePayload) error
	PublishPointRecalled(ctx context.Context, payload events.PointRecalledPayload) error
	PublishRabbitholeEntered(ctx context.Context, payload events.RabbitholeEnteredPayload) error
	PublishRabbitholeMessage(ctx context.Context, payload events.RabbitholeMessagePayload) error
	PublishRabbitholeReturned(ctx context.Context, payload events.RabbitholeReturnedPayload) error
	PublishAllPointsRecalled(ctx context.Context, payload events.AllPointsRecalledPayload) error
	PublishSessionCompleted(ctx context.Context, payload events.SessionCompletedPayload) error
	PublishSessionPaused(ctx context.Context, payload events.SessionEndedPayload) error
	PublishSessionAbandoned(ctx context.Context, payload events.SessionEndedPayload) error
	PublishError(ctx context.Context, payload events.ErrorPayload) error
	PublishBusy(ctx context.Context, payload events.BusyPayload) error
}

// Stores bundles the persistence surface handed to the engine.
type Stores struct {
	Sets        SetStore
	Points      PointStore
	Sessions    SessionStore
	Messages    MessageStore
	Outcomes    OutcomeStore
	Rabbitholes RabbitholeStore
}

// Config holds the engine knobs (see pkg/config for defaults).
type Config struct {
	EvaluatorWindow         int
	EvaluatorThreshold      float64
	RabbitholeEnter         float64
	RabbitholeReturn        float64
	StallThreshold          time.Duration
	EnableNotationDetection bool

	// Token prices per million, for the session cost metric.
	InputPricePerMTok  float64
	OutputPricePerMTok float64
}
