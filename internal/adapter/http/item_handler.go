package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	ucItem "lostfound-backend/internal/usecase/item"
)

type ItemHandler struct {
	errorWriter
	uc *ucItem.Usecase
}

func NewItemHandler(uc *ucItem.Usecase, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{errorWriter: newErrorWriter(logger), uc: uc}
}

func (h *ItemHandler) ReportLost(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in ucItem.LostItemInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.ReportLost(c.Request().Context(), actor, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ItemHandler) ReportFound(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in ucItem.FoundItemInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.ReportFound(c.Request().Context(), actor, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ItemHandler) ListMine(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) GetLost(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	dto, err := h.uc.GetLost(c.Request().Context(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) GetFound(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	dto, err := h.uc.GetFound(c.Request().Context(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) UpdateLost(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in ucItem.LostItemInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.UpdateLost(c.Request().Context(), actor, id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) UpdateFound(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in ucItem.FoundItemInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.UpdateFound(c.Request().Context(), actor, id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ItemHandler) CloseLost(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	dto, err := h.uc.CloseLost(c.Request().Context(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
