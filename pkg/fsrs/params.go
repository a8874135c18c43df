package fsrs

// Params holds the 19 FSRS model weights plus the scheduling knobs layered on
// top of them. NewScheduler fills every zero field with its default, so
// partial overrides are safe.
type Params struct {
	// Weights w0..w18. w0..w3 are the initial stabilities per rating,
	// the rest parameterize difficulty and stability transitions.
	Weights [19]float64

	// DesiredRetention is the retention level the interval targets.
	DesiredRetention float64

	// Decay shapes the forgetting curve. With the default of 1.0 the
	// retrievability at the scheduled due date equals DesiredRetention.
	Decay float64

	// MinStability is the floor applied to every computed stability, in days.
	MinStability float64

	// MaxIntervalDays caps the scheduled interval.
	MaxIntervalDays float64
}

// defaultWeights are the published FSRS-5 defaults.
var defaultWeights = [19]float64{
	0.40255, 1.18385, 3.173, 15.69105, // w0..w3: initial stability per rating
	7.1949, 0.5345, // w4, w5: initial difficulty
	1.4604, 0.0046, // w6, w7: difficulty update + mean reversion
	1.54575, 0.1192, 1.01925, // w8..w10: recall stability growth
	1.9395, 0.11, 0.29605, 2.2698, // w11..w14: post-lapse stability
	0.2315, 2.9898, // w15, w16: hard penalty, easy bonus
	0.51655, 0.6621, // w17, w18: short-term (learning) stability
}

// DefaultParams returns the stock parameter set.
func DefaultParams() Params {
	return Params{
		Weights:          defaultWeights,
		DesiredRetention: 0.9,
		Decay:            1.0,
		MinStability:     0.01,
		MaxIntervalDays:  36500,
	}
}
