package models

// SessionMetrics is the derived summary computed when a session ends. It is
// stored on the session row and echoed in the session_completed event.
type SessionMetrics struct {
	DurationMs      int64   `json:"duration_ms"`
	ActiveTimeMs    int64   `json:"active_time_ms"`
	MessageCount    int     `json:"message_count"`
	PointsAttempted int     `json:"points_attempted"`
	PointsRecalled  int     `json:"points_recalled"`
	PointsFailed    int     `json:"points_failed"`
	RecallRate      float64 `json:"recall_rate"`
	EngagementScore float64 `json:"engagement_score"`
	RabbitholeCount int     `json:"rabbithole_count"`
	InputTokens     int64   `json:"input_tokens"`
	OutputTokens    int64   `json:"output_tokens"`
	CostUSD         float64 `json:"cost_usd"`
}

// EngagementScore combines activity, recall, and conversational depth into
// a single [0,100] figure: 40% active-time ratio, 40% recall rate, 20%
// message volume relative to twice the target count.
func EngagementScore(activeTimeMs, durationMs int64, recallRate float64, messageCount, targetCount int) float64 {
	activeRatio := 0.0
	if durationMs > 0 {
		activeRatio = float64(activeTimeMs) / float64(durationMs)
		if activeRatio > 1 {
			activeRatio = 1
		}
	}
	volume := 0.0
	if targetCount > 0 {
		volume = float64(messageCount) / float64(targetCount*2)
		if volume > 1 {
			volume = 1
		}
	}
	score := (0.4*activeRatio + 0.4*recallRate + 0.2*volume) * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
