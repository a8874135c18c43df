package fsrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func TestNewState(t *testing.T) {
	s := NewScheduler(DefaultParams())
	state := s.NewState(testNow)

	assert.Equal(t, StateNew, state.State)
	assert.Equal(t, 0, state.Reps)
	assert.Equal(t, 0, state.Lapses)
	assert.Nil(t, state.LastReview)
	assert.Equal(t, testNow, state.Due)
	assert.GreaterOrEqual(t, state.Difficulty, 1.0)
	assert.LessOrEqual(t, state.Difficulty, 10.0)
	assert.Greater(t, state.Stability, 0.0)
}

func TestUpdateNewPointGoodTransitionsToReview(t *testing.T) {
	s := NewScheduler(DefaultParams())
	prior := s.NewState(testNow)

	next := s.Update(prior, Good, testNow)

	assert.Equal(t, StateReview, next.State)
	assert.Equal(t, 1, next.Reps)
	assert.Equal(t, 0, next.Lapses)
	require.NotNil(t, next.LastReview)
	assert.True(t, next.Due.After(testNow))
	assert.Greater(t, next.Stability, prior.Stability,
		"first successful review must strictly raise stability")
}

// A caller that sets only the knobs it cares about still gets a working
// scheduler: the zero weight array falls back to the model defaults.
func TestNewSchedulerZeroWeightsUseDefaults(t *testing.T) {
	s := NewScheduler(Params{DesiredRetention: 0.9})

	state := s.Update(s.NewState(testNow), Good, testNow)
	assert.Greater(t, state.Difficulty, 1.0)
	assert.Greater(t, state.Stability, 1.0)

	prev := state
	for i := 0; i < 3; i++ {
		next := s.Update(prev, Good, prev.Due)
		assert.Greater(t, next.Stability, prev.Stability, "review %d", i)
		assert.Greater(t, next.Due.Sub(prev.Due), 24*time.Hour, "review %d", i)
		prev = next
	}
}

func TestUpdateNewPointAgainStaysLearning(t *testing.T) {
	s := NewScheduler(DefaultParams())
	prior := s.NewState(testNow)

	next := s.Update(prior, Again, testNow)

	assert.Equal(t, StateLearning, next.State)
	// Again gets the 1-day floor, not an earlier due date.
	assert.False(t, next.Due.Before(testNow.Add(24*time.Hour)))
}

func TestUpdateReviewAgainLapses(t *testing.T) {
	s := NewScheduler(DefaultParams())
	state := s.Update(s.NewState(testNow), Good, testNow)
	require.Equal(t, StateReview, state.State)

	reviewedAt := state.Due
	lapsed := s.Update(state, Again, reviewedAt)

	assert.Equal(t, StateRelearning, lapsed.State)
	assert.Equal(t, 1, lapsed.Lapses)
	assert.LessOrEqual(t, lapsed.Stability, state.Stability, "post-lapse stability must not exceed prior")
	assert.GreaterOrEqual(t, lapsed.Stability, DefaultParams().MinStability)
}

func TestUpdateRelearningGoodReturnsToReview(t *testing.T) {
	s := NewScheduler(DefaultParams())
	state := s.Update(s.NewState(testNow), Good, testNow)
	lapsed := s.Update(state, Again, state.Due)
	require.Equal(t, StateRelearning, lapsed.State)

	recovered := s.Update(lapsed, Good, lapsed.Due)
	assert.Equal(t, StateReview, recovered.State)
}

func TestUpdateSuccessGrowsStability(t *testing.T) {
	s := NewScheduler(DefaultParams())
	state := s.Update(s.NewState(testNow), Good, testNow)

	prev := state
	for i := 0; i < 5; i++ {
		next := s.Update(prev, Good, prev.Due)
		assert.Greater(t, next.Stability, prev.Stability,
			"stability should grow on successful review %d", i)
		assert.True(t, next.Due.After(prev.Due), "due should move forward on review %d", i)
		prev = next
	}
}

// Totality: for any lifecycle state and any rating, Update returns a state
// with difficulty in [1,10], stability >= MinStability, and due >= reviewedAt.
func TestUpdateTotality(t *testing.T) {
	s := NewScheduler(DefaultParams())
	params := DefaultParams()

	states := []MemoryState{
		{},
		s.NewState(testNow),
		{State: StateLearning, Difficulty: 5, Stability: 0.5, Reps: 1},
		{State: StateReview, Difficulty: 1, Stability: 0.01, Reps: 3},
		{State: StateReview, Difficulty: 10, Stability: 900, Reps: 40, Lapses: 7},
		{State: StateRelearning, Difficulty: 9.5, Stability: 1.2, Reps: 9, Lapses: 2},
		{State: "corrupt", Difficulty: -3, Stability: -1},
	}

	for _, prior := range states {
		for _, rating := range []Rating{Again, Hard, Good, Easy} {
			next := s.Update(prior, rating, testNow)
			assert.GreaterOrEqual(t, next.Difficulty, 1.0, "state=%v rating=%v", prior.State, rating)
			assert.LessOrEqual(t, next.Difficulty, 10.0, "state=%v rating=%v", prior.State, rating)
			assert.GreaterOrEqual(t, next.Stability, params.MinStability, "state=%v rating=%v", prior.State, rating)
			assert.False(t, next.Due.Before(testNow), "due must not precede review: state=%v rating=%v", prior.State, rating)
			assert.Equal(t, prior.Reps+1, next.Reps)
		}
	}
}

func TestWorseRatingsRaiseDifficulty(t *testing.T) {
	s := NewScheduler(DefaultParams())
	state := s.Update(s.NewState(testNow), Good, testNow)

	afterAgain := s.Update(state, Again, state.Due)
	afterEasy := s.Update(state, Easy, state.Due)
	assert.Greater(t, afterAgain.Difficulty, afterEasy.Difficulty)
}

// Applying Good and evaluating retention at the predicted due date should land
// on the desired retention (~0.9).
func TestRetentionAtDueDate(t *testing.T) {
	s := NewScheduler(DefaultParams())
	state := s.Update(s.NewState(testNow), Good, testNow)

	r := s.Retrievability(state, state.Due)
	assert.InDelta(t, 0.9, r, 0.02)
}

func TestIntervalClamps(t *testing.T) {
	s := NewScheduler(DefaultParams())

	assert.Equal(t, 1.0, s.Interval(0.001), "tiny stability clamps to 1 day")
	assert.Equal(t, 36500.0, s.Interval(1e9), "huge stability clamps to 100 years")
	// With the default decay the interval for a mid-range stability equals it.
	assert.InDelta(t, 42.0, s.Interval(42), 1e-9)
}

// Scenario E boundary mapping.
func TestRatingFromConfidenceBoundaries(t *testing.T) {
	cases := []struct {
		confidence float64
		want       Rating
	}{
		{0.0, Again},
		{0.299999, Again},
		{0.30, Hard},
		{0.599999, Hard},
		{0.60, Good},
		{0.849999, Good},
		{0.85, Easy},
		{1.0, Easy},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RatingFromConfidence(tc.confidence), "confidence=%v", tc.confidence)
	}
}

func TestRatingStringRoundTrip(t *testing.T) {
	for _, r := range []Rating{Again, Hard, Good, Easy} {
		assert.Equal(t, r, ParseRating(r.String()))
	}
	assert.Equal(t, Good, ParseRating("garbage"))
}
