package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/ent/studysession"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

// fakeStores is an in-memory implementation of the engine's store ports.
type fakeStores struct {
	mu          sync.Mutex
	sets        map[string]*ent.RecallSet
	points      map[string]*ent.RecallPoint
	sessions    map[string]*ent.StudySession
	messages    map[string][]*ent.SessionMessage
	outcomes    map[string][]*ent.RecallOutcome
	rabbitholes map[string]*ent.RabbitholeEvent
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		sets:        make(map[string]*ent.RecallSet),
		points:      make(map[string]*ent.RecallPoint),
		sessions:    make(map[string]*ent.StudySession),
		messages:    make(map[string][]*ent.SessionMessage),
		outcomes:    make(map[string][]*ent.RecallOutcome),
		rabbitholes: make(map[string]*ent.RabbitholeEvent),
	}
}

func (f *fakeStores) bundle() Stores {
	return Stores{
		Sets:        f,
		Points:      f,
		Sessions:    f,
		Messages:    f,
		Outcomes:    f,
		Rabbitholes: f,
	}
}

func (f *fakeStores) addSet(id, name string) *ent.RecallSet {
	f.mu.Lock()
	defer f.mu.Unlock()
	set := &ent.RecallSet{
		ID:        id,
		Name:      name,
		Status:    recallset.StatusActive,
		CreatedAt: time.Now(),
	}
	f.sets[id] = set
	return set
}

func (f *fakeStores) addPoint(id, setID, content string) *ent.RecallPoint {
	f.mu.Lock()
	defer f.mu.Unlock()
	point := &ent.RecallPoint{
		ID:          id,
		RecallSetID: setID,
		Content:     content,
		Difficulty:  5.0,
		Stability:   0.5,
		Due:         time.Now().Add(-time.Hour),
		State:       recallpoint.StateNew,
		CreatedAt:   time.Now(),
	}
	f.points[id] = point
	return point
}

// --- SetStore ---

func (f *fakeStores) GetSet(ctx context.Context, setID string) (*ent.RecallSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	set, ok := f.sets[setID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return set, nil
}

// --- PointStore ---

func (f *fakeStores) GetPoint(ctx context.Context, pointID string) (*ent.RecallPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	point, ok := f.points[pointID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return point, nil
}

func (f *fakeStores) ApplyReview(ctx context.Context, pointID string, state fsrs.MemoryState, success bool, latencyMs int64) (*ent.RecallPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	point, ok := f.points[pointID]
	if !ok {
		return nil, services.ErrNotFound
	}
	updated := *point
	updated.Difficulty = state.Difficulty
	updated.Stability = state.Stability
	updated.Due = state.Due
	updated.LastReview = state.LastReview
	updated.Reps = state.Reps
	updated.Lapses = state.Lapses
	updated.State = recallpoint.State(state.State)
	updated.RecallHistory = append(updated.RecallHistory, map[string]interface{}{
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"success":    success,
		"latency_ms": latencyMs,
	})
	f.points[pointID] = &updated
	return &updated, nil
}

// --- SessionStore ---

func (f *fakeStores) StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.StudySession, []*ent.RecallPoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sets[req.RecallSetID]; !ok {
		return nil, nil, services.ErrNotFound
	}
	var targets []*ent.RecallPoint
	for _, p := range f.points {
		if p.RecallSetID == req.RecallSetID {
			targets = append(targets, p)
		}
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].ID < targets[j].ID })
	if len(targets) == 0 {
		return nil, nil, services.ErrNoDuePoints
	}
	ids := make([]string, len(targets))
	for i, p := range targets {
		ids[i] = p.ID
	}
	session := &ent.StudySession{
		ID:             services.NewID("sess"),
		RecallSetID:    req.RecallSetID,
		Status:         studysession.StatusInProgress,
		TargetPointIds: ids,
		StartedAt:      time.Now(),
	}
	f.sessions[session.ID] = session
	return session, targets, nil
}

func (f *fakeStores) GetSession(ctx context.Context, sessionID string) (*ent.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return session, nil
}

func (f *fakeStores) Touch(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return services.ErrNotFound
	}
	now := time.Now()
	session.LastActivityAt = &now
	return nil
}

func (f *fakeStores) CompleteSession(ctx context.Context, sessionID string, metrics models.SessionMetrics) (*ent.StudySession, error) {
	return f.end(sessionID, studysession.StatusCompleted, &metrics)
}

func (f *fakeStores) AbandonSession(ctx context.Context, sessionID string, metrics *models.SessionMetrics) (*ent.StudySession, error) {
	return f.end(sessionID, studysession.StatusAbandoned, metrics)
}

func (f *fakeStores) end(sessionID string, status studysession.Status, metrics *models.SessionMetrics) (*ent.StudySession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	if session.Status != studysession.StatusInProgress {
		return nil, services.ErrSessionEnded
	}
	session.Status = status
	now := time.Now()
	session.EndedAt = &now
	if metrics != nil {
		session.Metrics = metricsMap(*metrics)
	}
	return session, nil
}

// --- MessageStore ---

func (f *fakeStores) AppendMessage(ctx context.Context, sessionID string, index int, role, content, displayContent string) (*ent.SessionMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages[sessionID] {
		if m.MessageIndex == index {
			return nil, fmt.Errorf("message index %d: %w", index, services.ErrAlreadyExists)
		}
	}
	msg := &ent.SessionMessage{
		ID:             services.NewID("msg"),
		SessionID:      sessionID,
		MessageIndex:   index,
		Role:           sessionmessage.Role(role),
		Content:        content,
		DisplayContent: displayContent,
		CreatedAt:      time.Now(),
	}
	f.messages[sessionID] = append(f.messages[sessionID], msg)
	return msg, nil
}

func (f *fakeStores) ListMessages(ctx context.Context, sessionID string, fromIndex int) ([]*ent.SessionMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.SessionMessage
	for _, m := range f.messages[sessionID] {
		if m.MessageIndex >= fromIndex {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MessageIndex < out[j].MessageIndex })
	return out, nil
}

func (f *fakeStores) messageCount(sessionID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages[sessionID])
}

// --- OutcomeStore ---

func (f *fakeStores) RecordOutcome(ctx context.Context, req services.RecordOutcomeRequest) (*ent.RecallOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	outcome := &ent.RecallOutcome{
		ID:                services.NewID("out"),
		SessionID:         req.SessionID,
		RecallPointID:     req.RecallPointID,
		Success:           req.Success,
		Confidence:        req.Confidence,
		Reasoning:         req.Reasoning,
		MessageIndexStart: req.MessageIndexStart,
		MessageIndexEnd:   req.MessageIndexEnd,
		TimeSpentMs:       req.TimeSpentMs,
		CreatedAt:         time.Now(),
	}
	f.outcomes[req.SessionID] = append(f.outcomes[req.SessionID], outcome)
	return outcome, nil
}

func (f *fakeStores) ListOutcomes(ctx context.Context, sessionID string) ([]*ent.RecallOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ent.RecallOutcome(nil), f.outcomes[sessionID]...), nil
}

// --- RabbitholeStore ---

func (f *fakeStores) OpenRabbithole(ctx context.Context, sessionID, topic string, depth, triggerIndex int) (*ent.RabbitholeEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := &ent.RabbitholeEvent{
		ID:                  services.NewID("rh"),
		SessionID:           sessionID,
		Topic:               topic,
		Depth:               depth,
		TriggerMessageIndex: triggerIndex,
		CreatedAt:           time.Now(),
	}
	f.rabbitholes[row.ID] = row
	return row, nil
}

func (f *fakeStores) CloseRabbithole(ctx context.Context, rabbitholeID string, returnIndex int, history []map[string]interface{}) (*ent.RabbitholeEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rabbitholes[rabbitholeID]
	if !ok {
		return nil, services.ErrNotFound
	}
	row.ReturnMessageIndex = &returnIndex
	row.ConversationHistory = history
	return row, nil
}

// fakePublisher records every published event in order.
type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	eventType string
	payload   interface{}
}

func (p *fakePublisher) record(eventType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{eventType: eventType, payload: payload})
	return nil
}

func (p *fakePublisher) PublishSessionStarted(ctx context.Context, payload events.SessionStartedPayload) error {
	return p.record(events.EventTypeSessionStarted, payload)
}

func (p *fakePublisher) PublishUserMessageAccepted(ctx context.Context, payload events.UserMessageAcceptedPayload) error {
	return p.record(events.EventTypeUserMessageAccepted, payload)
}

func (p *fakePublisher) PublishAssistantToken(ctx context.Context, payload events.AssistantTokenPayload) error {
	return p.record(events.EventTypeAssistantToken, payload)
}

func (p *fakePublisher) PublishAssistantComplete(ctx context.Context, payload events.AssistantCompletePayload) error {
	return p.record(events.EventTypeAssistantComplete, payload)
}

func (p *fakePublisher) PublishPointRecalled(ctx context.Context, payload events.PointRecalledPayload) error {
	return p.record(events.EventTypePointRecalled, payload)
}

func (p *fakePublisher) PublishRabbitholeEntered(ctx context.Context, payload events.RabbitholeEnteredPayload) error {
	return p.record(events.EventTypeRabbitholeEntered, payload)
}

func (p *fakePublisher) PublishRabbitholeMessage(ctx context.Context, payload events.RabbitholeMessagePayload) error {
	return p.record(events.EventTypeRabbitholeMessage, payload)
}

func (p *fakePublisher) PublishRabbitholeReturned(ctx context.Context, payload events.RabbitholeReturnedPayload) error {
	return p.record(events.EventTypeRabbitholeReturned, payload)
}

func (p *fakePublisher) PublishAllPointsRecalled(ctx context.Context, payload events.AllPointsRecalledPayload) error {
	return p.record(events.EventTypeAllPointsRecalled, payload)
}

func (p *fakePublisher) PublishSessionCompleted(ctx context.Context, payload events.SessionCompletedPayload) error {
	return p.record(events.EventTypeSessionCompleted, payload)
}

func (p *fakePublisher) PublishSessionPaused(ctx context.Context, payload events.SessionEndedPayload) error {
	return p.record(events.EventTypeSessionPaused, payload)
}

func (p *fakePublisher) PublishSessionAbandoned(ctx context.Context, payload events.SessionEndedPayload) error {
	return p.record(events.EventTypeSessionAbandoned, payload)
}

func (p *fakePublisher) PublishError(ctx context.Context, payload events.ErrorPayload) error {
	return p.record(events.EventTypeError, payload)
}

func (p *fakePublisher) PublishBusy(ctx context.Context, payload events.BusyPayload) error {
	return p.record(events.EventTypeBusy, payload)
}

// types returns the event type sequence recorded so far.
func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.eventType
	}
	return out
}

// ofType returns every recorded payload of the given type, in order.
func (p *fakePublisher) ofType(eventType string) []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []interface{}
	for _, e := range p.events {
		if e.eventType == eventType {
			out = append(out, e.payload)
		}
	}
	return out
}

func (p *fakePublisher) count(eventType string) int {
	return len(p.ofType(eventType))
}

// firstIndex returns the position of the first event of the given type, or -1.
func (p *fakePublisher) firstIndex(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, e := range p.events {
		if e.eventType == eventType {
			return i
		}
	}
	return -1
}
