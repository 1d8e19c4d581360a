package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves liveness; ping, when set, checks the store.
type Handler struct {
	ping func(ctx context.Context) error
}

func NewHandler(ping func(ctx context.Context) error) *Handler { return &Handler{ping: ping} }

func (h *Handler) Health(c echo.Context) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "degraded",
				"db":     err.Error(),
				"time":   now,
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   now,
	})
}
