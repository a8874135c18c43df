package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/evaluator"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/rabbithole"
	"github.com/recollect-ai/recollect/pkg/services"
	"github.com/recollect-ai/recollect/pkg/transcription"
)

const terminalWriteTimeout = 5 * time.Second

type inboundKind int

const (
	inUserTurn inboundKind = iota
	inLeave
	inAbandon
	inComplete
)

type inbound struct {
	kind   inboundKind
	text   string
	source string
}

// tangent pairs a running rabbithole agent with its persisted row.
type tangent struct {
	agent *rabbithole.Agent
	rowID string
}

// liveSession is one running study session. A single goroutine consumes the
// inbox, so turn processing is strictly serial; concurrent user messages are
// rejected with a busy event before they reach the loop.
type liveSession struct {
	engine  *Engine
	session *ent.StudySession
	set     *ent.RecallSet
	targets []*ent.RecallPoint

	ctx    context.Context
	cancel context.CancelFunc
	inbox  chan inbound

	// Collaborators, built once in bootstrap.
	tutor     llm.Binding
	pipeline  *transcription.Pipeline
	detector  *rabbithole.Detector
	evaluator *evaluator.Evaluator

	// Loop-goroutine state, no locking needed.
	conversation []llm.Message       // tutor context: main line only
	window       []evaluator.Message // indexed transcript tail for evaluation
	stack        []*tangent
	pendingTicks []events.PointRecalledPayload
	lastCredited []string // point ids credited by the previous evaluation
	lastTurnAt   time.Time
	announcedAll bool
	rabbitholes  int
	inputTokens  int64
	outputTokens int64

	// Shared with Attach/Submit callers.
	mu         sync.Mutex
	processing bool
	turnCancel context.CancelFunc
	nextIndex  int
	checked    map[string]bool
	activeMs   int64
}

// beginNote is the synthetic user turn that opens the tutor conversation;
// providers require conversations to start with role user. It is never
// persisted to the transcript.
const beginNote = "(Begin the review session now. Greet the learner briefly and open with the first point.)"

// returnNote re-engages the tutor after a tangent closes. Also never persisted.
const returnNote = "(The learner is back from the tangent. Briefly re-anchor and continue the review.)"

func newLiveSession(e *Engine, session *ent.StudySession, set *ent.RecallSet, targets []*ent.RecallPoint, checked map[string]bool, transcript []*ent.SessionMessage) *liveSession {
	if checked == nil {
		checked = make(map[string]bool)
	}
	ctx, cancel := context.WithCancel(context.Background())
	ls := &liveSession{
		engine:     e,
		session:    session,
		set:        set,
		targets:    targets,
		ctx:        ctx,
		cancel:     cancel,
		inbox:      make(chan inbound, 8),
		nextIndex:  len(transcript),
		checked:    checked,
		lastTurnAt: e.clock.Now(),
	}
	// A session paused after the last point was credited already announced
	// all_points_recalled; resuming must not announce it again.
	recalled := 0
	for _, p := range targets {
		if checked[p.ID] {
			recalled++
		}
	}
	ls.announcedAll = len(targets) > 0 && recalled == len(targets)

	ls.conversation = append(ls.conversation, llm.Message{Role: llm.RoleUser, Content: beginNote})
	for _, m := range transcript {
		ls.conversation = append(ls.conversation, llm.Message{Role: string(m.Role), Content: m.Content})
		ls.window = append(ls.window, evaluator.Message{Index: m.MessageIndex, Role: string(m.Role), Content: m.Content})
	}
	return ls
}

func (ls *liveSession) run() {
	defer ls.cancel()
	ls.bootstrap()
	for {
		select {
		case <-ls.ctx.Done():
			return
		case in := <-ls.inbox:
			switch in.kind {
			case inUserTurn:
				ls.handleTurn(in.text, in.source)
				ls.setProcessing(false)
			case inLeave:
				ls.pause()
				return
			case inAbandon:
				ls.abandonNow()
				return
			case inComplete:
				if ls.completeNow() {
					return
				}
			}
		}
	}
}

// bootstrap builds the per-session collaborators and, for a fresh session,
// produces the tutor's opening message.
func (ls *liveSession) bootstrap() {
	e := ls.engine
	texts := make([]string, len(ls.targets))
	for i, p := range ls.targets {
		texts[i] = p.Content
	}
	terms := transcription.ExtractTerminology(ls.ctx, e.utility, ls.session.ID, texts)
	ls.pipeline = transcription.NewPipeline(e.utility, terms, e.cfg.EnableNotationDetection)
	ls.detector = rabbithole.NewDetector(e.utility, e.cfg.RabbitholeEnter, e.cfg.RabbitholeReturn)
	ls.evaluator = evaluator.New(e.utility, e.cfg.EvaluatorThreshold)
	ls.tutor = e.tutor.WithSystemPrompt(tutorPrompt(ls.set, ls.targets))

	if ls.currentIndex() > 0 {
		return // resumed session, transcript already exists
	}
	ls.openConversation()
}

// openConversation requests the tutor's opening message, persists it at
// index 0, and announces the session birth.
func (ls *liveSession) openConversation() {
	e := ls.engine
	out, err := ls.tutor.Complete(ls.ctx, ls.session.ID, ls.conversation)
	if err != nil {
		slog.Error("Tutor opening failed", "session_id", ls.session.ID, "error", err)
		ls.publishError(ls.ctx, errorCode(err), "tutor opening failed")
		return
	}
	ls.addUsage(out.Usage)

	if _, err := e.stores.Messages.AppendMessage(ls.ctx, ls.session.ID, 0, "assistant", out.Text, ""); err != nil {
		slog.Error("Failed to persist opening message", "session_id", ls.session.ID, "error", err)
		ls.publishError(ls.ctx, "internal", "failed to persist opening message")
		return
	}
	ls.conversation = append(ls.conversation, llm.Message{Role: llm.RoleAssistant, Content: out.Text})
	ls.window = append(ls.window, evaluator.Message{Index: 0, Role: llm.RoleAssistant, Content: out.Text})
	ls.setNextIndex(1)

	ts := events.Timestamp(e.clock.Now())
	_ = e.publisher.PublishSessionStarted(ls.ctx, events.SessionStartedPayload{
		SessionID:           ls.session.ID,
		TotalPoints:         len(ls.targets),
		RecalledCount:       ls.recalledCount(),
		OpeningMessageIndex: 0,
		Timestamp:           ts,
	})
	_ = e.publisher.PublishAssistantComplete(ls.ctx, events.AssistantCompletePayload{
		SessionID:    ls.session.ID,
		MessageIndex: 0,
		Content:      out.Text,
		Timestamp:    ts,
	})
}

// --- Commands from the gateway (any goroutine) ---

func (ls *liveSession) submit(text, source string) {
	ls.mu.Lock()
	if ls.processing {
		ls.mu.Unlock()
		_ = ls.engine.publisher.PublishBusy(context.Background(), events.BusyPayload{
			SessionID: ls.session.ID,
			Timestamp: events.Timestamp(ls.engine.clock.Now()),
		})
		return
	}
	ls.processing = true
	ls.mu.Unlock()

	select {
	case ls.inbox <- inbound{kind: inUserTurn, text: text, source: source}:
	case <-ls.ctx.Done():
		ls.setProcessing(false)
	}
}

func (ls *liveSession) leave()    { ls.command(inLeave) }
func (ls *liveSession) complete() { ls.command(inComplete) }

func (ls *liveSession) abandon() {
	// Cancel any in-flight LLM call so the loop reaches the command quickly.
	ls.mu.Lock()
	if ls.turnCancel != nil {
		ls.turnCancel()
	}
	ls.mu.Unlock()
	ls.command(inAbandon)
}

func (ls *liveSession) command(kind inboundKind) {
	select {
	case ls.inbox <- inbound{kind: kind}:
	case <-ls.ctx.Done():
	}
}

func (ls *liveSession) attachInfo() events.AttachInfo {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return events.AttachInfo{
		SessionID:           ls.session.ID,
		Status:              string(ls.session.Status),
		TotalPoints:         len(ls.targets),
		RecalledCount:       len(ls.checked),
		OpeningMessageIndex: 0,
		NextMessageIndex:    ls.nextIndex,
	}
}

// --- Turn processing (loop goroutine) ---

func (ls *liveSession) handleTurn(text, source string) {
	e := ls.engine
	now := e.clock.Now()
	ls.accountActivity(now)

	ctx, cancel := context.WithCancel(ls.ctx)
	ls.setTurnCancel(cancel)
	defer func() {
		ls.setTurnCancel(nil)
		cancel()
	}()

	if err := e.stores.Sessions.Touch(ctx, ls.session.ID); err != nil {
		slog.Warn("Session heartbeat failed", "session_id", ls.session.ID, "error", err)
	}

	result := ls.pipeline.Process(ctx, ls.session.ID, text, transcription.Source(source))
	if strings.TrimSpace(result.LLMText) == "" {
		ls.publishError(ctx, "empty_message", "message text is empty")
		return
	}

	if len(ls.stack) > 0 {
		ls.handleTangentTurn(ctx, result, now)
		return
	}

	idx := ls.currentIndex()
	if _, err := e.stores.Messages.AppendMessage(ctx, ls.session.ID, idx, "user", result.LLMText, result.DisplayText); err != nil {
		slog.Error("Failed to persist user message", "session_id", ls.session.ID, "error", err)
		ls.publishError(ctx, "internal", "failed to persist message")
		return
	}
	ls.setNextIndex(idx + 1)
	ls.publishAccepted(ctx, idx, result)
	ls.conversation = append(ls.conversation, llm.Message{Role: llm.RoleUser, Content: result.LLMText})
	ls.window = append(ls.window, evaluator.Message{Index: idx, Role: llm.RoleUser, Content: result.LLMText})

	// The evaluation window ends at the user turn, before the tutor replies.
	evalMsgs := ls.windowTail()

	det, err := ls.detector.DetectEnter(ctx, ls.session.ID, result.LLMText, ls.conversationTail(4))
	if err != nil {
		slog.Warn("Rabbithole enter detection failed", "session_id", ls.session.ID, "error", err)
	}
	if det.Enter {
		ls.enterTangent(ctx, det.Topic, idx)
		ls.evaluate(ctx, evalMsgs, now)
		return
	}

	ls.streamTutorReply(ctx)
	ls.evaluate(ctx, evalMsgs, now)
}

// handleTangentTurn routes a user turn while at least one rabbithole is open.
// Nothing here touches the main transcript.
func (ls *liveSession) handleTangentTurn(ctx context.Context, result transcription.Result, turnStart time.Time) {
	top := ls.stack[len(ls.stack)-1]

	ret, err := ls.detector.DetectReturn(ctx, ls.session.ID, result.LLMText, top.agent.History())
	if err != nil {
		slog.Warn("Rabbithole return detection failed", "session_id", ls.session.ID, "error", err)
	}
	if ret.ReturnToMain {
		ls.closeTangent(ctx)
		if len(ls.stack) == 0 {
			ls.flushTicks(ctx)
			ls.conversation = append(ls.conversation, llm.Message{Role: llm.RoleUser, Content: returnNote})
			ls.streamTutorReply(ctx)
		} else {
			// Popped back into the parent tangent.
			ls.tangentReply(ctx, result.LLMText)
		}
		return
	}

	det, err := ls.detector.DetectEnter(ctx, ls.session.ID, result.LLMText, top.agent.History())
	if err != nil {
		slog.Warn("Rabbithole enter detection failed", "session_id", ls.session.ID, "error", err)
	}
	if det.Enter {
		ls.enterTangent(ctx, det.Topic, ls.currentIndex()-1)
	} else {
		ls.tangentReply(ctx, result.LLMText)
	}

	// A tangent turn can still demonstrate recall; ticks stay buffered until
	// the stack empties.
	msgs := append(ls.windowTail(), evaluator.Message{
		Index:   ls.currentIndex() - 1,
		Role:    llm.RoleUser,
		Content: result.LLMText,
	})
	ls.evaluate(ctx, msgs, turnStart)
}

func (ls *liveSession) enterTangent(ctx context.Context, topic string, triggerIdx int) {
	e := ls.engine
	depth := len(ls.stack) + 1
	row, err := e.stores.Rabbitholes.OpenRabbithole(ctx, ls.session.ID, topic, depth, triggerIdx)
	if err != nil {
		slog.Error("Failed to open rabbithole", "session_id", ls.session.ID, "error", err)
		ls.publishError(ctx, "internal", "failed to open tangent")
		return
	}
	agent := rabbithole.NewAgent(e.tutor, ls.session.ID, topic, ls.set.Name, ls.set.Description, depth)
	ls.stack = append(ls.stack, &tangent{agent: agent, rowID: row.ID})
	ls.rabbitholes++

	_ = e.publisher.PublishRabbitholeEntered(ctx, events.RabbitholeEnteredPayload{
		SessionID:           ls.session.ID,
		Topic:               topic,
		Depth:               depth,
		TriggerMessageIndex: triggerIdx,
		Timestamp:           events.Timestamp(e.clock.Now()),
	})

	reply, err := agent.Open(ctx)
	if err != nil {
		slog.Error("Rabbithole opening failed", "session_id", ls.session.ID, "topic", topic, "error", err)
		ls.publishError(ctx, errorCode(err), "tangent opening failed")
		return
	}
	ls.publishTangentMessage(ctx, agent, reply)
}

// closeTangent pops the top rabbithole and persists its history.
func (ls *liveSession) closeTangent(ctx context.Context) {
	e := ls.engine
	top := ls.stack[len(ls.stack)-1]
	ls.stack = ls.stack[:len(ls.stack)-1]

	returnIdx := ls.currentIndex()
	if _, err := e.stores.Rabbitholes.CloseRabbithole(ctx, top.rowID, returnIdx, top.agent.HistoryMaps()); err != nil {
		slog.Error("Failed to close rabbithole", "session_id", ls.session.ID, "error", err)
	}
	_ = e.publisher.PublishRabbitholeReturned(ctx, events.RabbitholeReturnedPayload{
		SessionID:          ls.session.ID,
		Topic:              top.agent.Topic(),
		ReturnMessageIndex: returnIdx,
		Timestamp:          events.Timestamp(e.clock.Now()),
	})
}

func (ls *liveSession) tangentReply(ctx context.Context, text string) {
	top := ls.stack[len(ls.stack)-1]
	reply, err := top.agent.Respond(ctx, text)
	if err != nil {
		slog.Error("Rabbithole reply failed", "session_id", ls.session.ID, "error", err)
		ls.publishError(ctx, errorCode(err), "tangent reply failed")
		return
	}
	ls.publishTangentMessage(ctx, top.agent, reply)
}

func (ls *liveSession) publishTangentMessage(ctx context.Context, agent *rabbithole.Agent, content string) {
	_ = ls.engine.publisher.PublishRabbitholeMessage(ctx, events.RabbitholeMessagePayload{
		SessionID: ls.session.ID,
		Topic:     agent.Topic(),
		Depth:     agent.Depth(),
		Content:   content,
		Timestamp: events.Timestamp(ls.engine.clock.Now()),
	})
}

// streamTutorReply runs one streaming tutor call and persists the result.
// On a mid-stream error the partial text is discarded: nothing is persisted
// and the loop returns to idle.
func (ls *liveSession) streamTutorReply(ctx context.Context) {
	e := ls.engine
	ch, cancelStream, err := ls.tutor.Stream(ctx, ls.session.ID, ls.conversation)
	if err != nil {
		slog.Error("Tutor call failed", "session_id", ls.session.ID, "error", err)
		ls.publishError(ctx, errorCode(err), "tutor call failed")
		return
	}
	defer cancelStream()

	var sb strings.Builder
	for chunk := range ch {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			sb.WriteString(c.Delta)
			_ = e.publisher.PublishAssistantToken(ctx, events.AssistantTokenPayload{
				SessionID: ls.session.ID,
				Delta:     c.Delta,
				Timestamp: events.Timestamp(e.clock.Now()),
			})
		case *llm.UsageChunk:
			ls.addUsage(c.Usage)
		case *llm.ErrorChunk:
			slog.Error("Tutor stream failed", "session_id", ls.session.ID,
				"kind", c.Err.Kind, "error", c.Err)
			ls.publishError(ctx, string(c.Err.Kind), c.Err.Message)
			return
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		ls.publishError(ctx, string(llm.KindServerError), "tutor returned an empty response")
		return
	}

	idx := ls.currentIndex()
	if _, err := e.stores.Messages.AppendMessage(ctx, ls.session.ID, idx, "assistant", text, ""); err != nil {
		slog.Error("Failed to persist assistant message", "session_id", ls.session.ID, "error", err)
		ls.publishError(ctx, "internal", "failed to persist assistant message")
		return
	}
	ls.setNextIndex(idx + 1)
	ls.conversation = append(ls.conversation, llm.Message{Role: llm.RoleAssistant, Content: text})
	ls.window = append(ls.window, evaluator.Message{Index: idx, Role: llm.RoleAssistant, Content: text})

	_ = e.publisher.PublishAssistantComplete(ctx, events.AssistantCompletePayload{
		SessionID:    ls.session.ID,
		MessageIndex: idx,
		Content:      text,
		Timestamp:    events.Timestamp(e.clock.Now()),
	})
}

// --- Evaluation and crediting ---

func (ls *liveSession) evaluate(ctx context.Context, msgs []evaluator.Message, turnStart time.Time) {
	eval, err := ls.evaluator.Evaluate(ctx, evaluator.Input{
		SessionID:       ls.session.ID,
		SetName:         ls.set.Name,
		SetDescription:  ls.set.Description,
		RecentMessages:  msgs,
		UncheckedPoints: ls.uncheckedPoints(),
		JustRecalledIDs: ls.lastCredited,
	})
	if err != nil {
		// Advisory: a failed evaluation never interrupts the session.
		slog.Warn("Recall evaluation failed", "session_id", ls.session.ID, "error", err)
		return
	}
	var credited []string
	for _, d := range eval.Demonstrated {
		if ls.creditPoint(ctx, d, turnStart) {
			credited = append(credited, d.PointID)
		}
	}
	// Evaluation windows overlap across turns; the next one is told what this
	// one already credited.
	ls.lastCredited = credited
	ls.checkAllRecalled(ctx)
}

// creditPoint runs the FSRS update, records the outcome, and ticks the
// checklist. Ticks are buffered while a rabbithole is open. Returns whether
// the point was actually checked off.
func (ls *liveSession) creditPoint(ctx context.Context, d evaluator.Demonstration, turnStart time.Time) bool {
	e := ls.engine
	point := ls.findTarget(d.PointID)
	if point == nil {
		return false
	}
	now := e.clock.Now()
	latency := now.Sub(turnStart).Milliseconds()

	next := e.scheduler.Update(services.MemoryState(point), d.Rating, now)
	updated, err := e.stores.Points.ApplyReview(ctx, d.PointID, next, true, latency)
	if err != nil {
		slog.Error("Failed to apply review", "session_id", ls.session.ID,
			"point_id", d.PointID, "error", err)
		return false
	}
	ls.replaceTarget(updated)

	if _, err := e.stores.Outcomes.RecordOutcome(ctx, services.RecordOutcomeRequest{
		SessionID:         ls.session.ID,
		RecallPointID:     d.PointID,
		Success:           true,
		Confidence:        d.Confidence,
		Rating:            d.Rating,
		Reasoning:         d.Reasoning,
		MessageIndexStart: d.MessageIndexStart,
		MessageIndexEnd:   d.MessageIndexEnd,
		TimeSpentMs:       latency,
	}); err != nil {
		slog.Error("Failed to record outcome", "session_id", ls.session.ID,
			"point_id", d.PointID, "error", err)
	}

	ls.mu.Lock()
	ls.checked[d.PointID] = true
	recalled := len(ls.checked)
	ls.mu.Unlock()

	tick := events.PointRecalledPayload{
		SessionID:     ls.session.ID,
		PointID:       d.PointID,
		RecalledCount: recalled,
		TotalPoints:   len(ls.targets),
		Timestamp:     events.Timestamp(now),
	}
	if len(ls.stack) > 0 {
		ls.pendingTicks = append(ls.pendingTicks, tick)
	} else {
		_ = e.publisher.PublishPointRecalled(ctx, tick)
	}
	return true
}

func (ls *liveSession) flushTicks(ctx context.Context) {
	for _, tick := range ls.pendingTicks {
		_ = ls.engine.publisher.PublishPointRecalled(ctx, tick)
	}
	ls.pendingTicks = nil
	ls.checkAllRecalled(ctx)
}

func (ls *liveSession) checkAllRecalled(ctx context.Context) {
	if ls.announcedAll || len(ls.stack) > 0 || len(ls.targets) == 0 {
		return
	}
	recalled := ls.recalledCount()
	if recalled < len(ls.targets) {
		return
	}
	ls.announcedAll = true
	_ = ls.engine.publisher.PublishAllPointsRecalled(ctx, events.AllPointsRecalledPayload{
		SessionID:     ls.session.ID,
		RecalledCount: recalled,
		TotalPoints:   len(ls.targets),
		Timestamp:     events.Timestamp(ls.engine.clock.Now()),
	})
}

// --- Terminal transitions ---

// pause acknowledges leave_session: the loop stops but the session row stays
// in_progress, ready for a later resume.
func (ls *liveSession) pause() {
	ctx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancel()
	ls.accountActivity(ls.engine.clock.Now())
	_ = ls.engine.publisher.PublishSessionPaused(ctx, events.SessionEndedPayload{
		SessionID: ls.session.ID,
		Timestamp: events.Timestamp(ls.engine.clock.Now()),
	})
}

func (ls *liveSession) abandonNow() {
	e := ls.engine
	ctx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancel()

	now := e.clock.Now()
	ls.accountActivity(now)
	metrics := ls.computeMetrics(now)
	if _, err := e.stores.Sessions.AbandonSession(ctx, ls.session.ID, &metrics); err != nil {
		slog.Error("Failed to abandon session", "session_id", ls.session.ID, "error", err)
	}
	_ = e.publisher.PublishSessionAbandoned(ctx, events.SessionEndedPayload{
		SessionID: ls.session.ID,
		Timestamp: events.Timestamp(now),
	})
}

// completeNow finishes the session when every target has been recalled.
// Returns true when the loop should exit.
func (ls *liveSession) completeNow() bool {
	e := ls.engine
	ctx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancel()

	recalled := ls.recalledCount()
	if recalled < len(ls.targets) {
		ls.publishError(ctx, "not_all_recalled",
			fmt.Sprintf("%d of %d points recalled", recalled, len(ls.targets)))
		return false
	}

	now := e.clock.Now()
	ls.accountActivity(now)
	metrics := ls.computeMetrics(now)
	if _, err := e.stores.Sessions.CompleteSession(ctx, ls.session.ID, metrics); err != nil {
		slog.Error("Failed to complete session", "session_id", ls.session.ID, "error", err)
		ls.publishError(ctx, "internal", "failed to complete session")
		return false
	}
	_ = e.publisher.PublishSessionCompleted(ctx, events.SessionCompletedPayload{
		SessionID: ls.session.ID,
		Metrics:   metricsMap(metrics),
		Timestamp: events.Timestamp(now),
	})
	return true
}

func (ls *liveSession) computeMetrics(now time.Time) models.SessionMetrics {
	ls.mu.Lock()
	activeMs := ls.activeMs
	recalled := len(ls.checked)
	msgCount := ls.nextIndex
	ls.mu.Unlock()

	durationMs := now.Sub(ls.session.StartedAt).Milliseconds()
	attempted := len(ls.targets)
	failed := attempted - recalled
	rate := 0.0
	if attempted > 0 {
		rate = float64(recalled) / float64(attempted)
	}

	cfg := ls.engine.cfg
	return models.SessionMetrics{
		DurationMs:      durationMs,
		ActiveTimeMs:    activeMs,
		MessageCount:    msgCount,
		PointsAttempted: attempted,
		PointsRecalled:  recalled,
		PointsFailed:    failed,
		RecallRate:      rate,
		EngagementScore: models.EngagementScore(activeMs, durationMs, rate, msgCount, attempted),
		RabbitholeCount: ls.rabbitholes,
		InputTokens:     ls.inputTokens,
		OutputTokens:    ls.outputTokens,
		CostUSD: float64(ls.inputTokens)/1e6*cfg.InputPricePerMTok +
			float64(ls.outputTokens)/1e6*cfg.OutputPricePerMTok,
	}
}

// metricsMap renders metrics in the stored/wire JSON shape.
func metricsMap(m models.SessionMetrics) map[string]interface{} {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// --- Small helpers ---

// accountActivity credits elapsed wall time toward active time. Gaps longer
// than the stall threshold (the user walked away) do not count.
func (ls *liveSession) accountActivity(now time.Time) {
	gap := now.Sub(ls.lastTurnAt)
	ls.lastTurnAt = now
	if gap <= 0 || gap > ls.engine.cfg.StallThreshold {
		return
	}
	ls.mu.Lock()
	ls.activeMs += gap.Milliseconds()
	ls.mu.Unlock()
}

func (ls *liveSession) publishAccepted(ctx context.Context, idx int, result transcription.Result) {
	corrections := make([]events.CorrectionPayload, 0, len(result.Corrections))
	for _, c := range result.Corrections {
		corrections = append(corrections, events.CorrectionPayload{
			Original:  c.Original,
			Corrected: c.Corrected,
		})
	}
	_ = ls.engine.publisher.PublishUserMessageAccepted(ctx, events.UserMessageAcceptedPayload{
		SessionID:    ls.session.ID,
		MessageIndex: idx,
		DisplayText:  result.DisplayText,
		Corrections:  corrections,
		Timestamp:    events.Timestamp(ls.engine.clock.Now()),
	})
}

func (ls *liveSession) publishError(ctx context.Context, code, message string) {
	_ = ls.engine.publisher.PublishError(ctx, events.ErrorPayload{
		SessionID: ls.session.ID,
		Code:      code,
		Message:   message,
		Timestamp: events.Timestamp(ls.engine.clock.Now()),
	})
}

func (ls *liveSession) addUsage(u llm.Usage) {
	ls.inputTokens += int64(u.InputTokens)
	ls.outputTokens += int64(u.OutputTokens)
}

func (ls *liveSession) setProcessing(v bool) {
	ls.mu.Lock()
	ls.processing = v
	ls.mu.Unlock()
}

func (ls *liveSession) setTurnCancel(cancel context.CancelFunc) {
	ls.mu.Lock()
	ls.turnCancel = cancel
	ls.mu.Unlock()
}

func (ls *liveSession) currentIndex() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.nextIndex
}

func (ls *liveSession) setNextIndex(idx int) {
	ls.mu.Lock()
	ls.nextIndex = idx
	ls.mu.Unlock()
}

func (ls *liveSession) recalledCount() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.checked)
}

func (ls *liveSession) uncheckedPoints() []evaluator.Point {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]evaluator.Point, 0, len(ls.targets))
	for _, p := range ls.targets {
		if ls.checked[p.ID] {
			continue
		}
		out = append(out, evaluator.Point{ID: p.ID, Content: p.Content, Context: p.Context})
	}
	return out
}

// windowTail returns the last N indexed transcript entries for evaluation.
func (ls *liveSession) windowTail() []evaluator.Message {
	n := ls.engine.cfg.EvaluatorWindow
	if len(ls.window) <= n {
		return append([]evaluator.Message(nil), ls.window...)
	}
	return append([]evaluator.Message(nil), ls.window[len(ls.window)-n:]...)
}

// conversationTail returns the last n main-line turns, excluding the synthetic
// opener note when it would be included.
func (ls *liveSession) conversationTail(n int) []llm.Message {
	msgs := ls.conversation
	if len(msgs) > 0 && msgs[0].Content == beginNote {
		msgs = msgs[1:]
	}
	if len(msgs) <= n {
		return append([]llm.Message(nil), msgs...)
	}
	return append([]llm.Message(nil), msgs[len(msgs)-n:]...)
}

func (ls *liveSession) findTarget(pointID string) *ent.RecallPoint {
	for _, p := range ls.targets {
		if p.ID == pointID {
			return p
		}
	}
	return nil
}

func (ls *liveSession) replaceTarget(updated *ent.RecallPoint) {
	for i, p := range ls.targets {
		if p.ID == updated.ID {
			ls.targets[i] = updated
			return
		}
	}
}

func errorCode(err error) string {
	var lerr *llm.Error
	if errors.As(err, &lerr) {
		return string(lerr.Kind)
	}
	return "internal"
}
