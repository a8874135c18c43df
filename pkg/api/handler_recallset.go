package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/recollect-ai/recollect/pkg/models"
)

// CreateSet handles POST /api/v1/recall-sets
func (s *Server) CreateSet(c *gin.Context) {
	var req models.CreateRecallSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	set, err := s.sets.CreateSet(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

// ListSets handles GET /api/v1/recall-sets
func (s *Server) ListSets(c *gin.Context) {
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", 0)

	resp, err := s.sets.ListSets(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSet handles GET /api/v1/recall-sets/:id
func (s *Server) GetSet(c *gin.Context) {
	set, err := s.sets.GetSet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// UpdateSet handles PATCH /api/v1/recall-sets/:id
func (s *Server) UpdateSet(c *gin.Context) {
	var req models.UpdateRecallSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	set, err := s.sets.UpdateSet(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// DeleteSet handles DELETE /api/v1/recall-sets/:id
func (s *Server) DeleteSet(c *gin.Context) {
	if err := s.sets.DeleteSet(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPoint handles POST /api/v1/recall-sets/:id/points
func (s *Server) AddPoint(c *gin.Context) {
	var req models.CreateRecallPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	point, err := s.points.AddPoint(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, point)
}

// ListPoints handles GET /api/v1/recall-sets/:id/points
func (s *Server) ListPoints(c *gin.Context) {
	filters := models.RecallPointFilters{
		DueOnly: c.Query("due_only") == "true",
		Limit:   queryInt(c, "limit", 0),
		Offset:  queryInt(c, "offset", 0),
	}

	points, err := s.points.ListPoints(c.Request.Context(), c.Param("id"), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GetPoint handles GET /api/v1/points/:id
func (s *Server) GetPoint(c *gin.Context) {
	point, err := s.points.GetPoint(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
