package models

import (
	"github.com/recollect-ai/recollect/ent"
)

// StartSessionRequest contains fields for starting a study session
type StartSessionRequest struct {
	RecallSetID string `json:"recall_set_id"`
	// MaxPoints caps how many due points the session targets; zero means
	// the configured default.
	MaxPoints int `json:"max_points,omitempty"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*ent.StudySession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	RecallSetID string `json:"recall_set_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}
