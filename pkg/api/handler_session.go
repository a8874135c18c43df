package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recollect-ai/recollect/pkg/models"
)

// StartSession handles POST /api/v1/sessions. The engine creates the session
// and starts its turn loop; the client then attaches over /ws.
func (s *Server) StartSession(c *gin.Context) {
	var req models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	session, err := s.starter.StartSession(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /api/v1/sessions
func (s *Server) ListSessions(c *gin.Context) {
	filters := models.SessionFilters{
		RecallSetID: c.Query("recall_set_id"),
		Status:      c.Query("status"),
		Limit:       queryInt(c, "limit", 0),
		Offset:      queryInt(c, "offset", 0),
	}

	resp, err := s.sessions.ListSessions(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession handles GET /api/v1/sessions/:id
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ActiveSession handles GET /api/v1/recall-sets/:id/active-session.
// Returns 404 when the set has no in-progress session.
func (s *Server) ActiveSession(c *gin.Context) {
	session, err := s.sessions.ActiveSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListMessages handles GET /api/v1/sessions/:id/messages
func (s *Server) ListMessages(c *gin.Context) {
	msgs, err := s.messages.ListMessages(c.Request.Context(), c.Param("id"), queryInt(c, "from_index", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// ListOutcomes handles GET /api/v1/sessions/:id/outcomes
func (s *Server) ListOutcomes(c *gin.Context) {
	outcomes, err := s.outcomes.ListOutcomes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcomes": outcomes})
}

// ListRabbitholes handles GET /api/v1/sessions/:id/rabbitholes
func (s *Server) ListRabbitholes(c *gin.Context) {
	rabbitholes, err := s.rabbitholes.ListRabbitholes(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rabbitholes": rabbitholes})
}
