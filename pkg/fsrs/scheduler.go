// Package fsrs implements the Free Spaced Repetition Scheduler used to update
// per-point memory parameters after each demonstrated recall. The scheduler is
// a pure function of (prior state, rating, review time) — no clocks, no I/O.
package fsrs

import (
	"math"
	"time"
)

// State identifies where a point sits in the learning lifecycle.
type State string

const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReview     State = "review"
	StateRelearning State = "relearning"
)

// MemoryState is the per-point FSRS memory snapshot.
type MemoryState struct {
	Difficulty float64    `json:"difficulty"` // [1,10]
	Stability  float64    `json:"stability"`  // days
	Due        time.Time  `json:"due"`
	LastReview *time.Time `json:"last_review,omitempty"`
	Reps       int        `json:"reps"`
	Lapses     int        `json:"lapses"`
	State      State      `json:"state"`
}

// Scheduler applies FSRS transitions. Construct once and share freely — it is
// an immutable value.
type Scheduler struct {
	params Params
}

// NewScheduler validates and wraps a parameter set. Zero fields fall back to
// the model defaults, so a caller may override just the knobs it cares about.
func NewScheduler(params Params) Scheduler {
	if params.Weights == ([19]float64{}) {
		params.Weights = defaultWeights
	}
	if params.DesiredRetention <= 0 || params.DesiredRetention >= 1 {
		params.DesiredRetention = 0.9
	}
	if params.Decay == 0 {
		params.Decay = 1.0
	}
	if params.MinStability <= 0 {
		params.MinStability = 0.01
	}
	if params.MaxIntervalDays <= 0 {
		params.MaxIntervalDays = 36500
	}
	return Scheduler{params: params}
}

// NewState returns the state of a point that has never been reviewed.
// Difficulty starts at the model's Good-rating prior; stability sits at the
// floor until the first rated review assigns its prior. The point is
// immediately due.
func (s Scheduler) NewState(now time.Time) MemoryState {
	return MemoryState{
		Difficulty: s.initialDifficulty(Good),
		Stability:  s.params.MinStability,
		Due:        now,
		Reps:       0,
		Lapses:     0,
		State:      StateNew,
	}
}

// Update applies one review outcome and returns the next memory state.
// It is total: any prior state (including zero values) and any of the four
// ratings produce a well-formed result.
func (s Scheduler) Update(prior MemoryState, rating Rating, reviewedAt time.Time) MemoryState {
	if rating < Again || rating > Easy {
		rating = Good
	}

	next := prior
	next.Reps = prior.Reps + 1
	reviewed := reviewedAt
	next.LastReview = &reviewed

	switch prior.State {
	case StateNew, "":
		next.Difficulty = s.initialDifficulty(rating)
		next.Stability = s.clampStability(s.params.Weights[rating-1])
		next.State = afterLearning(rating)
	case StateLearning, StateRelearning:
		next.Difficulty = s.nextDifficulty(prior.Difficulty, rating)
		next.Stability = s.shortTermStability(prior.Stability, rating)
		next.State = afterLearning(rating)
		if prior.State == StateRelearning && (rating == Good || rating == Easy) {
			next.State = StateReview
		}
	case StateReview:
		elapsed := reviewedAt.Sub(valueOr(prior.LastReview, reviewedAt))
		retrievability := s.retrievability(prior.Stability, elapsed)
		next.Difficulty = s.nextDifficulty(prior.Difficulty, rating)
		if rating == Again {
			next.Stability = s.postLapseStability(prior, retrievability)
			next.Lapses = prior.Lapses + 1
			next.State = StateRelearning
		} else {
			next.Stability = s.recallStability(prior, rating, retrievability)
			next.State = StateReview
		}
	default:
		// Unknown persisted state — treat as a fresh point.
		next.Difficulty = s.initialDifficulty(rating)
		next.Stability = s.clampStability(s.params.Weights[rating-1])
		next.State = afterLearning(rating)
	}

	intervalDays := s.Interval(next.Stability)
	if rating == Again {
		// Lapsed points come back after the 1-day floor regardless of the
		// (reduced) stability's nominal interval.
		intervalDays = 1
	}
	next.Due = reviewedAt.Add(time.Duration(intervalDays * 24 * float64(time.Hour)))
	return next
}

// Interval returns the scheduled interval in days for a given stability,
// targeting the configured retention:
//
//	interval = 9 · stability · (retention^(−1/decay) − 1)
//
// clamped to [1, MaxIntervalDays].
func (s Scheduler) Interval(stability float64) float64 {
	r := s.params.DesiredRetention
	days := 9 * stability * (math.Pow(r, -1/s.params.Decay) - 1)
	if days < 1 {
		return 1
	}
	if days > s.params.MaxIntervalDays {
		return s.params.MaxIntervalDays
	}
	return days
}

// Retrievability estimates the probability of recall at the given time.
func (s Scheduler) Retrievability(state MemoryState, at time.Time) float64 {
	if state.LastReview == nil {
		return 0
	}
	return s.retrievability(state.Stability, at.Sub(*state.LastReview))
}

// retrievability follows the curve R(t) = (1 + t/(9·S))^(−decay), which at
// the scheduled interval evaluates to the desired retention.
func (s Scheduler) retrievability(stability float64, elapsed time.Duration) float64 {
	if stability <= 0 {
		return 0
	}
	days := elapsed.Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Pow(1+days/(9*stability), -s.params.Decay)
}

func (s Scheduler) initialDifficulty(rating Rating) float64 {
	w := s.params.Weights
	d := w[4] - math.Exp(w[5]*float64(rating-1)) + 1
	return clampDifficulty(d)
}

// nextDifficulty moves difficulty by the rating delta, then reverts toward the
// Easy-rating baseline (mean reversion keeps repeated Good reviews from
// pinning difficulty).
func (s Scheduler) nextDifficulty(d float64, rating Rating) float64 {
	if d == 0 {
		d = s.initialDifficulty(Good)
	}
	w := s.params.Weights
	delta := -w[6] * float64(rating-3)
	moved := d + delta*(10-d)/9
	baseline := s.initialDifficulty(Easy)
	reverted := w[7]*baseline + (1-w[7])*moved
	return clampDifficulty(reverted)
}

// recallStability grows stability multiplicatively on success. Growth is
// larger when retrievability is low (spacing effect), reduced for Hard and
// boosted for Easy.
func (s Scheduler) recallStability(prior MemoryState, rating Rating, retrievability float64) float64 {
	w := s.params.Weights
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = w[16]
	}
	stability := prior.Stability
	if stability <= 0 {
		stability = s.params.MinStability
	}
	growth := math.Exp(w[8]) *
		(11 - prior.Difficulty) *
		math.Pow(stability, -w[9]) *
		(math.Exp(w[10]*(1-retrievability)) - 1) *
		hardPenalty * easyBonus
	next := stability * (1 + growth)
	if next < stability {
		next = stability
	}
	return s.clampStability(next)
}

// postLapseStability resets stability after Again, never above the prior value.
func (s Scheduler) postLapseStability(prior MemoryState, retrievability float64) float64 {
	w := s.params.Weights
	d := prior.Difficulty
	if d <= 0 {
		d = s.initialDifficulty(Good)
	}
	stability := prior.Stability
	if stability <= 0 {
		stability = s.params.MinStability
	}
	next := w[11] *
		math.Pow(d, -w[12]) *
		(math.Pow(stability+1, w[13]) - 1) *
		math.Exp(w[14]*(1-retrievability))
	if next > stability {
		next = stability
	}
	return s.clampStability(next)
}

// shortTermStability handles same-session learning steps (new/learning/relearning).
func (s Scheduler) shortTermStability(stability float64, rating Rating) float64 {
	w := s.params.Weights
	if stability <= 0 {
		stability = s.params.Weights[rating-1]
	}
	return s.clampStability(stability * math.Exp(w[17]*(float64(rating-3)+w[18])))
}

func (s Scheduler) clampStability(v float64) float64 {
	if v < s.params.MinStability || math.IsNaN(v) {
		return s.params.MinStability
	}
	return v
}

func clampDifficulty(d float64) float64 {
	if d < 1 || math.IsNaN(d) {
		return 1
	}
	if d > 10 {
		return 10
	}
	return d
}

func afterLearning(rating Rating) State {
	if rating == Good || rating == Easy {
		return StateReview
	}
	return StateLearning
}

func valueOr(t *time.Time, fallback time.Time) time.Time {
	if t != nil {
		return *t
	}
	return fallback
}
