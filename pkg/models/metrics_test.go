package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementScore(t *testing.T) {
	// Fully active, perfect recall, ample conversation -> 100.
	assert.Equal(t, 100.0, EngagementScore(60000, 60000, 1.0, 20, 5))

	// No activity at all -> 0.
	assert.Equal(t, 0.0, EngagementScore(0, 60000, 0, 0, 5))

	// Half active, half recalled, message volume at half the 2x target.
	got := EngagementScore(30000, 60000, 0.5, 5, 5)
	assert.InDelta(t, 0.4*0.5*100+0.4*0.5*100+0.2*0.5*100, got, 1e-9)

	// Zero duration must not divide by zero.
	assert.Equal(t, 0.4*100.0, EngagementScore(0, 0, 1.0, 0, 0))
}

func TestSessionMetricsJSONRoundTrip(t *testing.T) {
	m := SessionMetrics{
		DurationMs:      90_000,
		ActiveTimeMs:    72_000,
		MessageCount:    14,
		PointsAttempted: 5,
		PointsRecalled:  4,
		PointsFailed:    1,
		RecallRate:      0.8,
		EngagementScore: 87.5,
		RabbitholeCount: 1,
		InputTokens:     12345,
		OutputTokens:    6789,
		CostUSD:         0.1388,
	}

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var back SessionMetrics
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, m, back)
}
