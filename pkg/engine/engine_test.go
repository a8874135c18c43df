package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/studysession"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/llm/llmtest"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/services"
)

func newTestEngine(tutorClient, utilityClient llm.Client, stores *fakeStores, pub *fakePublisher) *Engine {
	cfg := Config{
		EvaluatorWindow:    6,
		EvaluatorThreshold: 0.5,
		RabbitholeEnter:    0.7,
		RabbitholeReturn:   0.6,
		StallThreshold:     30 * time.Second,
		InputPricePerMTok:  3.0,
		OutputPricePerMTok: 15.0,
	}
	tutor := llm.NewBinding(tutorClient, llm.GenerationConfig{Model: "tutor-model"}, 5*time.Second)
	utility := llm.NewBinding(utilityClient, llm.GenerationConfig{Model: "utility-model"}, 5*time.Second)
	return New(cfg, fsrs.NewScheduler(fsrs.DefaultParams()), stores.bundle(), pub, tutor, utility, nil)
}

func waitCount(t *testing.T, pub *fakePublisher, eventType string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return pub.count(eventType) >= n
	}, 2*time.Second, 10*time.Millisecond, "waiting for %d %s events, got %d", n, eventType, pub.count(eventType))
}

const (
	noTangent  = `{"enter": false, "topic": "", "confidence": 0.1}`
	noRecall   = `{"demonstrated": [], "overall_feedback": ""}`
	stayInside = `{"return_to_main": false, "confidence": 0.2}`
)

func TestStartSessionOpensConversation(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(llmtest.Reply{Text: `["mitochondrion", "ATP"]`})
	tutor := llmtest.NewFakeClient(llmtest.Reply{Text: "Welcome back! What does the mitochondrion do?"})
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)

	waitCount(t, pub, events.EventTypeSessionStarted, 1)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	started := pub.ofType(events.EventTypeSessionStarted)[0].(events.SessionStartedPayload)
	assert.Equal(t, session.ID, started.SessionID)
	assert.Equal(t, 1, started.TotalPoints)
	assert.Equal(t, 0, started.RecalledCount)
	assert.Equal(t, 0, started.OpeningMessageIndex)

	msgs, err := stores.ListMessages(context.Background(), session.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, 0, msgs[0].MessageIndex)
	assert.Equal(t, "assistant", string(msgs[0].Role))
}

func TestUserTurnCreditsRecall(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},      // terminology
		llmtest.Reply{Text: noTangent}, // enter detection
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_1", "confidence": 0.9, "reasoning": "stated the function"}], "overall_feedback": "solid"}`},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "What is the role of the mitochondrion?"},
		llmtest.Reply{Text: "Exactly right, well done."},
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "it makes ATP for the cell", events.SourceTyped))

	waitCount(t, pub, events.EventTypePointRecalled, 1)
	waitCount(t, pub, events.EventTypeAllPointsRecalled, 1)

	// Ordering: accepted, streamed reply, then the tick.
	types := pub.types()
	accepted := pub.firstIndex(events.EventTypeUserMessageAccepted)
	tick := pub.firstIndex(events.EventTypePointRecalled)
	secondComplete := -1
	seen := 0
	for i, tp := range types {
		if tp == events.EventTypeAssistantComplete {
			seen++
			if seen == 2 {
				secondComplete = i
				break
			}
		}
	}
	require.GreaterOrEqual(t, secondComplete, 0)
	assert.Less(t, accepted, secondComplete)
	assert.Less(t, secondComplete, tick)
	assert.Greater(t, pub.count(events.EventTypeAssistantToken), 0)

	tickPayload := pub.ofType(events.EventTypePointRecalled)[0].(events.PointRecalledPayload)
	assert.Equal(t, "rp_1", tickPayload.PointID)
	assert.Equal(t, 1, tickPayload.RecalledCount)
	assert.Equal(t, 1, tickPayload.TotalPoints)

	// FSRS write-back: one rep, scheduled into the future, promoted to review.
	point, err := stores.GetPoint(context.Background(), "rp_1")
	require.NoError(t, err)
	assert.Equal(t, 1, point.Reps)
	assert.Equal(t, recallpoint.StateReview, point.State)
	assert.True(t, point.Due.After(time.Now()))
	require.NotNil(t, point.LastReview)

	outcomes, err := stores.ListOutcomes(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Success)
	assert.InDelta(t, 0.9, outcomes[0].Confidence, 1e-9)
	assert.Equal(t, 0, outcomes[0].MessageIndexStart)
	assert.Equal(t, 1, outcomes[0].MessageIndexEnd)

	assert.Equal(t, 3, stores.messageCount(session.ID))
}

func TestConcurrentTurnIsRejectedBusy(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},
		llmtest.Reply{Text: noTangent},
		llmtest.Reply{Text: noRecall},
	)

	gate := make(chan struct{})
	calls := 0
	tutor := llmtest.NewFakeClient()
	tutor.OnRequest = func(req *llm.Request) *llmtest.Reply {
		calls++
		if calls == 1 {
			return &llmtest.Reply{Text: "Opening question?"}
		}
		<-gate // hold the stream open until the test releases it
		return &llmtest.Reply{Text: "Slow reply."}
	}

	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "first answer attempt", events.SourceTyped))
	waitCount(t, pub, events.EventTypeUserMessageAccepted, 1)

	// The first turn is stuck in the tutor call; a second message must be
	// rejected without touching the transcript.
	require.NoError(t, e.SubmitUserMessage(session.ID, "second message too early", events.SourceTyped))
	waitCount(t, pub, events.EventTypeBusy, 1)

	close(gate)
	waitCount(t, pub, events.EventTypeAssistantComplete, 2)
	assert.Equal(t, 1, pub.count(events.EventTypeUserMessageAccepted))
	assert.Equal(t, 3, stores.messageCount(session.ID))
}

func TestRabbitholeFlow(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "ATP synthase produces ATP via chemiosmosis")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`}, // terminology
		// Turn 1: tangent opens.
		llmtest.Reply{Text: `{"enter": true, "topic": "proton gradients", "confidence": 0.9}`},
		llmtest.Reply{Text: noRecall},
		// Turn 2: stays inside, demonstrates recall mid-tangent.
		llmtest.Reply{Text: stayInside},
		llmtest.Reply{Text: noTangent},
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_1", "confidence": 0.8, "reasoning": "explained chemiosmosis"}], "overall_feedback": ""}`},
		// Turn 3: returns to the main line.
		llmtest.Reply{Text: `{"return_to_main": true, "confidence": 0.95}`},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "How does ATP synthase work?"},    // opening
		llmtest.Reply{Text: "Great tangent, let's explore!"},  // agent open
		llmtest.Reply{Text: "Yes, the gradient drives it."},   // agent respond
		llmtest.Reply{Text: "Welcome back. Where were we..."}, // post-return stream
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "wait, why do proton gradients matter?", events.SourceTyped))
	waitCount(t, pub, events.EventTypeRabbitholeEntered, 1)
	waitCount(t, pub, events.EventTypeRabbitholeMessage, 1)

	entered := pub.ofType(events.EventTypeRabbitholeEntered)[0].(events.RabbitholeEnteredPayload)
	assert.Equal(t, "proton gradients", entered.Topic)
	assert.Equal(t, 1, entered.Depth)
	assert.Equal(t, 1, entered.TriggerMessageIndex)

	require.NoError(t, e.SubmitUserMessage(session.ID, "so chemiosmosis is ATP synthase using the gradient", events.SourceTyped))
	waitCount(t, pub, events.EventTypeRabbitholeMessage, 2)

	// The recall credit is recorded but its tick is held until the return.
	require.Eventually(t, func() bool {
		outcomes, _ := stores.ListOutcomes(context.Background(), session.ID)
		return len(outcomes) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, pub.count(events.EventTypePointRecalled))

	require.NoError(t, e.SubmitUserMessage(session.ID, "ok, back to the review", events.SourceTyped))
	waitCount(t, pub, events.EventTypeRabbitholeReturned, 1)
	waitCount(t, pub, events.EventTypePointRecalled, 1)
	waitCount(t, pub, events.EventTypeAllPointsRecalled, 1)
	waitCount(t, pub, events.EventTypeAssistantComplete, 2)

	assert.Greater(t, pub.firstIndex(events.EventTypePointRecalled), pub.firstIndex(events.EventTypeRabbitholeReturned))

	// Tangent turns never reach the main transcript: opening, trigger
	// message, post-return reply.
	assert.Equal(t, 3, stores.messageCount(session.ID))

	// The rabbithole row closed with its isolated history.
	stores.mu.Lock()
	require.Len(t, stores.rabbitholes, 1)
	for _, rh := range stores.rabbitholes {
		require.NotNil(t, rh.ReturnMessageIndex)
		assert.Equal(t, 2, *rh.ReturnMessageIndex)
		assert.Len(t, rh.ConversationHistory, 4)
	}
	stores.mu.Unlock()
}

func TestTutorStreamErrorDiscardsPartial(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},
		llmtest.Reply{Text: noTangent},
		llmtest.Reply{Text: noRecall},
		llmtest.Reply{Text: noTangent},
		llmtest.Reply{Text: noRecall},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "Opening question?"},
		llmtest.Reply{Err: llm.NewError(llm.KindRateLimit, "rate limited", nil)},
		llmtest.Reply{Text: "Recovered on the next turn."},
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "not sure about this one", events.SourceTyped))
	waitCount(t, pub, events.EventTypeError, 1)

	errPayload := pub.ofType(events.EventTypeError)[0].(events.ErrorPayload)
	assert.Equal(t, string(llm.KindRateLimit), errPayload.Code)

	// User turn persisted, failed assistant reply not.
	assert.Equal(t, 2, stores.messageCount(session.ID))

	// The loop is back to idle: the next turn goes through.
	require.NoError(t, e.SubmitUserMessage(session.ID, "let me try again", events.SourceTyped))
	waitCount(t, pub, events.EventTypeAssistantComplete, 2)
	assert.Equal(t, 4, stores.messageCount(session.ID))
}

func TestCompleteRequiresAllRecalled(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")
	stores.addPoint("rp_2", "rs_1", "Ribosomes translate mRNA into protein")

	utility := llmtest.NewFakeClient(llmtest.Reply{Text: `[]`})
	tutor := llmtest.NewFakeClient(llmtest.Reply{Text: "Opening question?"})
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.Complete(context.Background(), session.ID))
	waitCount(t, pub, events.EventTypeError, 1)
	errPayload := pub.ofType(events.EventTypeError)[0].(events.ErrorPayload)
	assert.Equal(t, "not_all_recalled", errPayload.Code)

	got, err := stores.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusInProgress, got.Status)
	assert.Equal(t, 0, pub.count(events.EventTypeSessionCompleted))
}

func TestCompleteAfterAllRecalled(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},
		llmtest.Reply{Text: noTangent},
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_1", "confidence": 0.9, "reasoning": "got it"}], "overall_feedback": ""}`},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "Opening question?"},
		llmtest.Reply{Text: "Correct!"},
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "it synthesizes ATP", events.SourceTyped))
	waitCount(t, pub, events.EventTypeAllPointsRecalled, 1)

	require.NoError(t, e.Complete(context.Background(), session.ID))
	waitCount(t, pub, events.EventTypeSessionCompleted, 1)

	completed := pub.ofType(events.EventTypeSessionCompleted)[0].(events.SessionCompletedPayload)
	assert.Equal(t, float64(1), completed.Metrics["points_recalled"])
	assert.Equal(t, float64(1), completed.Metrics["recall_rate"])
	assert.Equal(t, float64(3), completed.Metrics["message_count"])

	got, err := stores.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusCompleted, got.Status)
	assert.NotNil(t, got.EndedAt)
	assert.NotEmpty(t, got.Metrics)

	require.Eventually(t, func() bool { return e.ActiveSessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestAbandonPersistsMetrics(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(llmtest.Reply{Text: `[]`})
	tutor := llmtest.NewFakeClient(llmtest.Reply{Text: "Opening question?"})
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.Abandon(context.Background(), session.ID))
	waitCount(t, pub, events.EventTypeSessionAbandoned, 1)

	got, err := stores.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusAbandoned, got.Status)
	assert.NotEmpty(t, got.Metrics)
	assert.Equal(t, float64(0), got.Metrics["points_recalled"])
	assert.Equal(t, float64(1), got.Metrics["points_failed"])

	require.Eventually(t, func() bool { return e.ActiveSessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestLeaveThenResume(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")
	stores.addPoint("rp_2", "rs_1", "Ribosomes translate mRNA into protein")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},      // terminology (first life)
		llmtest.Reply{Text: noTangent}, // turn 1 enter detection
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_1", "confidence": 0.85, "reasoning": "recalled"}], "overall_feedback": ""}`},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "Opening question?"},
		llmtest.Reply{Text: "Good. Next: ribosomes?"},
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "mitochondria make ATP", events.SourceTyped))
	waitCount(t, pub, events.EventTypePointRecalled, 1)

	require.NoError(t, e.Leave(context.Background(), session.ID))
	waitCount(t, pub, events.EventTypeSessionPaused, 1)
	require.Eventually(t, func() bool { return e.ActiveSessions() == 0 }, 2*time.Second, 10*time.Millisecond)

	got, err := stores.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusInProgress, got.Status)

	// Resume: the loop is rebuilt from the transcript and outcomes.
	utility.Append(
		llmtest.Reply{Text: `[]`},      // terminology (second life)
		llmtest.Reply{Text: noTangent}, // turn 2 enter detection
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_2", "confidence": 0.9, "reasoning": "recalled"}], "overall_feedback": ""}`},
	)
	tutor.Append(llmtest.Reply{Text: "That's both of them!"})

	info, err := e.Attach(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, info.SessionID)
	assert.Equal(t, 2, info.TotalPoints)
	assert.Equal(t, 1, info.RecalledCount)
	assert.Equal(t, 3, info.NextMessageIndex)

	// No second opening: the resumed loop picks up at the stored index.
	require.NoError(t, e.SubmitUserMessage(session.ID, "ribosomes build proteins from mRNA", events.SourceTyped))
	waitCount(t, pub, events.EventTypePointRecalled, 2)
	waitCount(t, pub, events.EventTypeAllPointsRecalled, 1)
	assert.Equal(t, 1, pub.count(events.EventTypeSessionStarted))
	assert.Equal(t, 5, stores.messageCount(session.ID))
}

func TestCreditedPointSuppressedInNextEvaluation(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")
	stores.addPoint("rp_2", "rs_1", "Ribosomes translate mRNA into protein")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},      // terminology
		llmtest.Reply{Text: noTangent}, // turn 1 enter detection
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_1", "confidence": 0.9, "reasoning": "recalled"}], "overall_feedback": ""}`},
		llmtest.Reply{Text: noTangent}, // turn 2 enter detection
		llmtest.Reply{Text: noRecall},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "Opening question?"},
		llmtest.Reply{Text: "Good. Next: ribosomes?"},
		llmtest.Reply{Text: "Take your time."},
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "mitochondria make ATP", events.SourceTyped))
	waitCount(t, pub, events.EventTypePointRecalled, 1)

	// The first turn may still be winding down; resubmit past the busy guard.
	require.Eventually(t, func() bool {
		_ = e.SubmitUserMessage(session.ID, "hmm, not sure about ribosomes", events.SourceTyped)
		return pub.count(events.EventTypeUserMessageAccepted) >= 2
	}, 2*time.Second, 20*time.Millisecond)
	require.Eventually(t, func() bool {
		return len(utility.Requests()) >= 5
	}, 2*time.Second, 10*time.Millisecond)

	// The second evaluation is told what the first one credited, and the
	// credited point is off the checklist.
	secondEval := utility.Requests()[4].Messages[0].Content
	assert.Contains(t, secondEval, "do not re-list")
	assert.Contains(t, secondEval, "rp_1")
	assert.NotContains(t, secondEval, "id=rp_1")
	assert.Contains(t, secondEval, "id=rp_2")
}

func TestResumeAfterAllRecalledAnnouncesOnce(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(
		llmtest.Reply{Text: `[]`},      // terminology (first life)
		llmtest.Reply{Text: noTangent}, // turn 1 enter detection
		llmtest.Reply{Text: `{"demonstrated": [{"point_id": "rp_1", "confidence": 0.9, "reasoning": "recalled"}], "overall_feedback": ""}`},
	)
	tutor := llmtest.NewFakeClient(
		llmtest.Reply{Text: "Opening question?"},
		llmtest.Reply{Text: "That's everything!"},
	)
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	require.NoError(t, e.SubmitUserMessage(session.ID, "mitochondria make ATP", events.SourceTyped))
	waitCount(t, pub, events.EventTypeAllPointsRecalled, 1)

	require.NoError(t, e.Leave(context.Background(), session.ID))
	waitCount(t, pub, events.EventTypeSessionPaused, 1)
	require.Eventually(t, func() bool { return e.ActiveSessions() == 0 }, 2*time.Second, 10*time.Millisecond)

	// Resume with everything already recalled; a further turn must not
	// re-announce the milestone.
	utility.Append(
		llmtest.Reply{Text: `[]`},      // terminology (second life)
		llmtest.Reply{Text: noTangent}, // turn 2 enter detection
	)
	tutor.Append(llmtest.Reply{Text: "Ready to wrap up whenever you are."})

	_, err = e.Attach(context.Background(), session.ID)
	require.NoError(t, err)

	require.NoError(t, e.SubmitUserMessage(session.ID, "great, so we are done?", events.SourceTyped))
	waitCount(t, pub, events.EventTypeAssistantComplete, 3)

	// Complete queues behind the turn, so once it lands the turn's evaluation
	// has definitely run.
	require.NoError(t, e.Complete(context.Background(), session.ID))
	waitCount(t, pub, events.EventTypeSessionCompleted, 1)
	assert.Equal(t, 1, pub.count(events.EventTypeAllPointsRecalled))
}

func TestAttachRejectsEndedSession(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	now := time.Now()
	stores.sessions["sess_done"] = &ent.StudySession{
		ID:          "sess_done",
		RecallSetID: "rs_1",
		Status:      studysession.StatusCompleted,
		StartedAt:   now.Add(-time.Hour),
		EndedAt:     &now,
	}

	pub := &fakePublisher{}
	e := newTestEngine(llmtest.NewFakeClient(), llmtest.NewFakeClient(), stores, pub)
	defer func() { _ = e.Stop(context.Background()) }()

	_, err := e.Attach(context.Background(), "sess_done")
	assert.ErrorIs(t, err, services.ErrSessionEnded)

	_, err = e.Attach(context.Background(), "sess_missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStopPausesLiveSessions(t *testing.T) {
	stores := newFakeStores()
	stores.addSet("rs_1", "Cell Biology")
	stores.addPoint("rp_1", "rs_1", "The mitochondrion is the site of ATP synthesis")

	utility := llmtest.NewFakeClient(llmtest.Reply{Text: `[]`})
	tutor := llmtest.NewFakeClient(llmtest.Reply{Text: "Opening question?"})
	pub := &fakePublisher{}
	e := newTestEngine(tutor, utility, stores, pub)

	session, err := e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	require.NoError(t, err)
	waitCount(t, pub, events.EventTypeAssistantComplete, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, e.Stop(ctx))
	assert.Equal(t, 0, e.ActiveSessions())

	got, err := stores.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, studysession.StatusInProgress, got.Status)

	_, err = e.StartSession(context.Background(), models.StartSessionRequest{RecallSetID: "rs_1"})
	assert.ErrorIs(t, err, ErrEngineStopped)
}
