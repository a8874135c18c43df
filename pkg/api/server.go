// Package api exposes the REST surface (recall set and session management)
// and the WebSocket endpoint that drives live study sessions.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/recollect-ai/recollect/ent"
	"github.com/recollect-ai/recollect/pkg/database"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/models"
	"github.com/recollect-ai/recollect/pkg/version"
)

// SetService is the recall set surface the handlers need.
type SetService interface {
	CreateSet(ctx context.Context, req models.CreateRecallSetRequest) (*ent.RecallSet, error)
	GetSet(ctx context.Context, setID string) (*ent.RecallSet, error)
	ListSets(ctx context.Context, limit, offset int) (*models.RecallSetListResponse, error)
	UpdateSet(ctx context.Context, setID string, req models.UpdateRecallSetRequest) (*ent.RecallSet, error)
	DeleteSet(ctx context.Context, setID string) error
}

// PointService is the recall point surface the handlers need.
type PointService interface {
	AddPoint(ctx context.Context, setID string, req models.CreateRecallPointRequest) (*ent.RecallPoint, error)
	GetPoint(ctx context.Context, pointID string) (*ent.RecallPoint, error)
	ListPoints(ctx context.Context, setID string, filters models.RecallPointFilters) ([]*ent.RecallPoint, error)
}

// SessionService is the read-side session surface.
type SessionService interface {
	GetSession(ctx context.Context, sessionID string) (*ent.StudySession, error)
	ActiveSession(ctx context.Context, setID string) (*ent.StudySession, error)
	ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error)
}

// SessionStarter starts sessions. Implemented by the engine, which owns the
// live loop; plain service reads stay on SessionService.
type SessionStarter interface {
	StartSession(ctx context.Context, req models.StartSessionRequest) (*ent.StudySession, error)
}

// MessageService lists a session's persisted transcript.
type MessageService interface {
	ListMessages(ctx context.Context, sessionID string, fromIndex int) ([]*ent.SessionMessage, error)
}

// OutcomeService lists a session's recall outcomes.
type OutcomeService interface {
	ListOutcomes(ctx context.Context, sessionID string) ([]*ent.RecallOutcome, error)
}

// RabbitholeService lists a session's tangents.
type RabbitholeService interface {
	ListRabbitholes(ctx context.Context, sessionID string) ([]*ent.RabbitholeEvent, error)
}

// Server wires the HTTP handlers to the service layer and the WebSocket
// connection manager.
type Server struct {
	sets        SetService
	points      PointService
	sessions    SessionService
	starter     SessionStarter
	messages    MessageService
	outcomes    OutcomeService
	rabbitholes RabbitholeService

	manager        *events.ConnectionManager
	db             *database.Client // nil in handler tests
	allowedOrigins []string
}

// NewServer creates the API server.
func NewServer(
	sets SetService,
	points PointService,
	sessions SessionService,
	starter SessionStarter,
	messages MessageService,
	outcomes OutcomeService,
	rabbitholes RabbitholeService,
	manager *events.ConnectionManager,
	db *database.Client,
	allowedOrigins []string,
) *Server {
	return &Server{
		sets:           sets,
		points:         points,
		sessions:       sessions,
		starter:        starter,
		messages:       messages,
		outcomes:       outcomes,
		rabbitholes:    rabbitholes,
		manager:        manager,
		db:             db,
		allowedOrigins: allowedOrigins,
	}
}

// RegisterRoutes mounts all endpoints on the router.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.Health)
	r.GET("/ws", s.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/recall-sets", s.CreateSet)
		v1.GET("/recall-sets", s.ListSets)
		v1.GET("/recall-sets/:id", s.GetSet)
		v1.PATCH("/recall-sets/:id", s.UpdateSet)
		v1.DELETE("/recall-sets/:id", s.DeleteSet)
		v1.POST("/recall-sets/:id/points", s.AddPoint)
		v1.GET("/recall-sets/:id/points", s.ListPoints)
		v1.GET("/recall-sets/:id/active-session", s.ActiveSession)

		v1.GET("/points/:id", s.GetPoint)

		v1.POST("/sessions", s.StartSession)
		v1.GET("/sessions", s.ListSessions)
		v1.GET("/sessions/:id", s.GetSession)
		v1.GET("/sessions/:id/messages", s.ListMessages)
		v1.GET("/sessions/:id/outcomes", s.ListOutcomes)
		v1.GET("/sessions/:id/rabbitholes", s.ListRabbitholes)
	}
}

// Health reports process and database health.
func (s *Server) Health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
