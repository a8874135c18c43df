package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/studysession"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

// ErrEngineStopped is returned once graceful shutdown has begun.
var ErrEngineStopped = errors.New("engine is shutting down")

// ErrSessionNotLive is returned when a frame targets a session with no
// running turn loop.
var ErrSessionNotLive = errors.New("session is not live")

// Engine owns every live session in this process. One goroutine per session
// runs the turn loop; the engine tracks them for graceful shutdown.
type Engine struct {
	cfg       Config
	scheduler fsrs.Scheduler
	stores    Stores
	publisher Publisher
	tutor     llm.Binding // streaming tutor model; persona set per session
	utility   llm.Binding // cheap model for evaluator/detector/transcription
	clock     services.Clock

	mu      sync.Mutex
	active  map[string]*liveSession
	wg      sync.WaitGroup
	stopped bool
}

// New creates an Engine.
func New(cfg Config, scheduler fsrs.Scheduler, stores Stores, publisher Publisher, tutor, utility llm.Binding, clock services.Clock) *Engine {
	if clock == nil {
		clock = services.SystemClock()
	}
	if cfg.EvaluatorWindow <= 0 {
		cfg.EvaluatorWindow = 6
	}
	return &Engine{
		cfg:       cfg,
		scheduler: scheduler,
		stores:    stores,
		publisher: publisher,
		tutor:     tutor,
		utility:   utility,
		clock:     clock,
		active:    make(map[string]*liveSession),
	}
}

// StartSession creates a session row, spins up its turn loop, and returns.
// The opening tutor message is produced asynchronously by the loop; clients
// observe it via session_started and assistant_complete events.
func (e *Engine) StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.StudySession, error) {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return nil, ErrEngineStopped
	}
	e.mu.Unlock()

	session, targets, err := e.stores.Sessions.StartSession(ctx, req)
	if err != nil {
		return nil, err
	}

	set, err := e.stores.Sets.GetSet(ctx, session.RecallSetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recall set for session %s: %w", session.ID, err)
	}

	if err := e.spawn(session, set, targets, nil, nil); err != nil {
		return nil, err
	}
	return session, nil
}

// Attach implements events.SessionGateway: it validates the session and
// ensures a live loop exists, resuming an in-progress session if needed.
func (e *Engine) Attach(ctx context.Context, sessionID string) (events.AttachInfo, error) {
	e.mu.Lock()
	if ls, ok := e.active[sessionID]; ok {
		e.mu.Unlock()
		return ls.attachInfo(), nil
	}
	stopped := e.stopped
	e.mu.Unlock()
	if stopped {
		return events.AttachInfo{}, ErrEngineStopped
	}

	session, err := e.stores.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		return events.AttachInfo{}, err
	}
	if session.Status != studysession.StatusInProgress {
		return events.AttachInfo{}, services.ErrSessionEnded
	}

	if err := e.resume(ctx, session); err != nil {
		return events.AttachInfo{}, err
	}

	e.mu.Lock()
	ls, ok := e.active[sessionID]
	e.mu.Unlock()
	if !ok {
		return events.AttachInfo{}, ErrSessionNotLive
	}
	return ls.attachInfo(), nil
}

// resume rebuilds the in-memory state of a paused session: checklist from
// outcomes, transcript and next index from messages.
func (e *Engine) resume(ctx context.Context, session *ent.StudySession) error {
	set, err := e.stores.Sets.GetSet(ctx, session.RecallSetID)
	if err != nil {
		return fmt.Errorf("failed to load recall set: %w", err)
	}

	targets := make([]*ent.RecallPoint, 0, len(session.TargetPointIds))
	for _, pointID := range session.TargetPointIds {
		point, err := e.stores.Points.GetPoint(ctx, pointID)
		if err != nil {
			// A target deleted mid-session shrinks the checklist.
			slog.Warn("Target point missing on resume",
				"session_id", session.ID, "point_id", pointID)
			continue
		}
		targets = append(targets, point)
	}

	outcomes, err := e.stores.Outcomes.ListOutcomes(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("failed to load outcomes: %w", err)
	}
	checked := make(map[string]bool)
	for _, o := range outcomes {
		if o.Success {
			checked[o.RecallPointID] = true
		}
	}

	messages, err := e.stores.Messages.ListMessages(ctx, session.ID, 0)
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	return e.spawn(session, set, targets, checked, messages)
}

// spawn registers and starts one live session loop. checked and transcript
// are nil for fresh sessions.
func (e *Engine) spawn(session *ent.StudySession, set *ent.RecallSet, targets []*ent.RecallPoint, checked map[string]bool, transcript []*ent.SessionMessage) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrEngineStopped
	}
	if _, ok := e.active[session.ID]; ok {
		return nil // already live
	}

	ls := newLiveSession(e, session, set, targets, checked, transcript)
	e.active[session.ID] = ls

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer e.remove(session.ID)
		ls.run()
	}()
	return nil
}

func (e *Engine) remove(sessionID string) {
	e.mu.Lock()
	delete(e.active, sessionID)
	e.mu.Unlock()
}

func (e *Engine) lookup(sessionID string) (*liveSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ls, ok := e.active[sessionID]
	if !ok {
		return nil, ErrSessionNotLive
	}
	return ls, nil
}

// SubmitUserMessage implements events.SessionGateway. A turn already in
// flight produces a busy event instead of queueing.
func (e *Engine) SubmitUserMessage(sessionID, text, sourceKind string) error {
	ls, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	ls.submit(text, sourceKind)
	return nil
}

// Leave implements events.SessionGateway: the session pauses (status stays
// in_progress) and its loop stops; a later Attach resumes it.
func (e *Engine) Leave(ctx context.Context, sessionID string) error {
	ls, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	ls.leave()
	return nil
}

// Abandon implements events.SessionGateway: terminal, cancels any in-flight
// LLM call, persists metrics.
func (e *Engine) Abandon(ctx context.Context, sessionID string) error {
	ls, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	ls.abandon()
	return nil
}

// Complete implements events.SessionGateway. Accepted only once every target
// point has been recalled; otherwise the client receives an error event.
func (e *Engine) Complete(ctx context.Context, sessionID string) error {
	ls, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	ls.complete()
	return nil
}

// ActiveSessions returns the number of live session loops.
func (e *Engine) ActiveSessions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.active)
}

// LiveSessionIDs returns the IDs of sessions with a running loop, so the
// retention sweep can skip them.
func (e *Engine) LiveSessionIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.active))
	for id := range e.active {
		ids = append(ids, id)
	}
	return ids
}

// Stop pauses every live session and waits for the loops to drain, bounded
// by ctx. In-progress sessions stay resumable after restart.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	e.stopped = true
	live := make([]*liveSession, 0, len(e.active))
	for _, ls := range e.active {
		live = append(live, ls)
	}
	e.mu.Unlock()

	for _, ls := range live {
		ls.leave()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("engine shutdown timed out: %w", ctx.Err())
	}
}
