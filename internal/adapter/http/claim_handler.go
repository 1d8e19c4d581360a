package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	ucClaim "lostfound-backend/internal/usecase/claim"
)

type ClaimHandler struct {
	errorWriter
	uc *ucClaim.Usecase
}

func NewClaimHandler(uc *ucClaim.Usecase, logger *zap.Logger) *ClaimHandler {
	return &ClaimHandler{errorWriter: newErrorWriter(logger), uc: uc}
}

func (h *ClaimHandler) Submit(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in ucClaim.SubmitInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), actor, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type claimListResp struct {
	Claims       []ucClaim.ClaimDTO `json:"claims"`
	PendingCount int64              `json:"pending_count"`
}

func (h *ClaimHandler) List(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	claims, err := h.uc.List(ctx, actor, c.QueryParam("status"))
	if err != nil {
		return h.fail(c, err)
	}
	pending, err := h.uc.PendingCount(ctx, actor)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, claimListResp{Claims: claims, PendingCount: pending})
}

func (h *ClaimHandler) Approve(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	dto, err := h.uc.Approve(c.Request().Context(), actor, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClaimHandler) Reject(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in ucClaim.RejectInput
	if c.Request().ContentLength != 0 {
		if ok, err := bindValid(c, &in); !ok {
			return err
		}
	}
	dto, err := h.uc.Reject(c.Request().Context(), actor, id, in.Reason)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ClaimHandler) LinkItem(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	var in ucClaim.LinkInput
	if ok, err := bindValid(c, &in); !ok {
		return err
	}
	dto, err := h.uc.LinkItem(c.Request().Context(), actor, id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
