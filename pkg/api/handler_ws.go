package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to the
// events Hub, which owns subscriptions and catchup.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.deps.ConnManager == nil {
		return apiError(c, http.StatusServiceUnavailable, "unavailable", "live feed not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// The feed sits behind the same reverse proxy as the API; origin
		// enforcement happens there.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.deps.ConnManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
