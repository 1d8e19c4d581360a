package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	ucMatching "lostfound-backend/internal/usecase/matching"
)

type MatchHandler struct {
	errorWriter
	uc *ucMatching.Usecase
}

func NewMatchHandler(uc *ucMatching.Usecase, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{errorWriter: newErrorWriter(logger), uc: uc}
}

func (h *MatchHandler) ListMine(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.ListForUser(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Run triggers the pipeline on demand; an empty body uses the configured threshold.
func (h *MatchHandler) Run(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return h.fail(c, errAdminOnly)
	}
	var in ucMatching.RunInput
	if c.Request().ContentLength != 0 {
		if ok, err := bindValid(c, &in); !ok {
			return err
		}
	}
	threshold := h.uc.Threshold()
	if in.Threshold != nil {
		threshold = *in.Threshold
	}
	res, err := h.uc.RunPipeline(c.Request().Context(), threshold)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
