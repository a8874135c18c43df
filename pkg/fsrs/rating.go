package fsrs

// Rating grades one recall outcome.
type Rating int

const (
	Again Rating = iota + 1
	Hard
	Good
	Easy
)

// String returns the canonical name used in persisted outcomes.
func (r Rating) String() string {
	switch r {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	default:
		return "unknown"
	}
}

// ParseRating maps a persisted rating name back to its Rating. Unknown names
// map to Good so replayed history from older builds stays usable.
func ParseRating(s string) Rating {
	switch s {
	case "again":
		return Again
	case "hard":
		return Hard
	case "easy":
		return Easy
	default:
		return Good
	}
}

// RatingFromConfidence derives a rating from evaluator confidence using the
// piecewise mapping [0,0.3)→Again, [0.3,0.6)→Hard, [0.6,0.85)→Good, [0.85,1]→Easy.
func RatingFromConfidence(confidence float64) Rating {
	switch {
	case confidence < 0.3:
		return Again
	case confidence < 0.6:
		return Hard
	case confidence < 0.85:
		return Good
	default:
		return Easy
	}
}
