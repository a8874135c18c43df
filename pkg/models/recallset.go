// Package models defines request/response types shared by the API layer and
// the services, plus derived value types like SessionMetrics.
package models

import (
	"github.com/recollect-ai/recollect/ent"
)

// CreateRecallSetRequest contains fields for creating a new recall set
type CreateRecallSetRequest struct {
	Name                   string `json:"name"`
	Description            string `json:"description,omitempty"`
	DiscussionSystemPrompt string `json:"discussion_system_prompt,omitempty"`
}

// UpdateRecallSetRequest contains mutable recall set fields; nil means unchanged
type UpdateRecallSetRequest struct {
	Name                   *string `json:"name,omitempty"`
	Description            *string `json:"description,omitempty"`
	Status                 *string `json:"status,omitempty"`
	DiscussionSystemPrompt *string `json:"discussion_system_prompt,omitempty"`
}

// RecallSetListResponse contains a paginated recall set list
type RecallSetListResponse struct {
	Sets       []*ent.RecallSet `json:"sets"`
	TotalCount int              `json:"total_count"`
	Limit      int              `json:"limit"`
	Offset     int              `json:"offset"`
}

// CreateRecallPointRequest contains fields for adding a point to a set
type CreateRecallPointRequest struct {
	Content string `json:"content"`
	Context string `json:"context,omitempty"`
}

// RecallPointFilters contains filtering options for listing points
type RecallPointFilters struct {
	DueOnly bool `json:"due_only,omitempty"`
	Limit   int  `json:"limit,omitempty"`
	Offset  int  `json:"offset,omitempty"`
}
