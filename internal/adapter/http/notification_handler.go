package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lostfound-backend/internal/domain/apperr"
	ucNotification "lostfound-backend/internal/usecase/notification"
)

const maxInboxLimit = 100

var errBadLimit = apperr.Validation("limit must be between 1 and 100")

type NotificationHandler struct {
	errorWriter
	svc *ucNotification.Service
}

func NewNotificationHandler(svc *ucNotification.Service, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{errorWriter: newErrorWriter(logger), svc: svc}
}

func (h *NotificationHandler) Recent(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxInboxLimit {
			return h.fail(c, errBadLimit)
		}
		limit = n
	}
	dto, err := h.svc.Recent(c.Request().Context(), actor.UserID, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	n, err := h.svc.UnreadCount(c.Request().Context(), actor.UserID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread_count": n})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.svc.MarkRead(c.Request().Context(), id, actor.UserID); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	n, err := h.svc.MarkAllRead(c.Request().Context(), actor.UserID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"marked": n})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.svc.Delete(c.Request().Context(), id, actor.UserID); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
