package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/delivery"
	"github.com/minterra/marketapi/base/metrics"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/reward"
	"github.com/minterra/marketapi/middleware"
)

const nativeDecimals = 18

var met metrics.Service

type handler struct {
	reward reward.UseCase
}

func New(e *echo.Echo, reward reward.UseCase) {
	met = metrics.New("reward")

	h := &handler{reward}

	g := e.Group("/rewards")

	g.POST("/release", h.release)
	g.GET("/:address", h.getAvailable, middleware.IsValidAddress("address"))
}

type releaseParams struct {
	Caller domain.Address `json:"caller" validate:"required"`
}

func (h *handler) release(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &releaseParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	released, err := h.reward.Release(ctx, p.Caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("released", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"released": released.String(),
	})
}

func (h *handler) getAvailable(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	addr := domain.Address(c.Param("address"))
	available, err := h.reward.CalculateAvailableRewards(ctx, addr)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"available":        available.String(),
		"displayAvailable": decimal.NewFromBigInt(available, -nativeDecimals).String(),
	})
}
