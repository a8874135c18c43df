package api

import (
	"log/slog"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// HandleWebSocket upgrades GET /ws and hands the connection to the
// ConnectionManager's read loop. The first client frame must be a hello
// carrying the session_id; everything else is rejected until then.
func (s *Server) HandleWebSocket(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.allowedOrigins,
	})
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	// Blocks until the client disconnects. The session loop lives on.
	s.manager.HandleConnection(c.Request.Context(), conn)
	_ = conn.Close(websocket.StatusNormalClosure, "")
}
