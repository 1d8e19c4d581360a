package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"lostfound-backend/internal/adapter/middleware"
	"lostfound-backend/internal/domain/apperr"
	"lostfound-backend/internal/domain/user"
)

var (
	errBadID     = apperr.Validation("id must be a positive integer")
	errAdminOnly = apperr.Forbidden("admin role required")
	errNoActor   = &echo.HTTPError{Code: http.StatusUnauthorized, Message: "unauthenticated"}
)

func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id == 0 {
		return 0, errBadID
	}
	return id, nil
}

func actorOf(c echo.Context) (user.Actor, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return user.Actor{}, errNoActor
	}
	return a, nil
}

// bindValid binds the body into dst and runs the struct validator.
// A non-nil error has already been written to the response.
func bindValid(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(dst); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
