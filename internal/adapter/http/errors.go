package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"lostfound-backend/internal/domain/apperr"
)

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorWriter maps usecase errors onto ErrorResponse. Server side causes
// are logged; the client only sees which operation failed.
type errorWriter struct{ logger *zap.Logger }

func newErrorWriter(logger *zap.Logger) errorWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return errorWriter{logger: logger}
}

func (w errorWriter) fail(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		return he
	}
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		w.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("route", c.Path()),
			zap.String("kind", string(apperr.KindOf(err))),
			zap.Error(err))
		return c.JSON(code, ErrorResponse{Error: serverMessage(err)})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}

// serverMessage keeps the operation summary of an *apperr.Error and drops
// its cause, which may carry hosts, DSNs or provider payloads.
func serverMessage(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg + " failed"
	}
	return "internal error"
}
