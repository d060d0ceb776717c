package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/delivery"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/event"
)

type handler struct {
	event event.UseCase
}

func New(e *echo.Echo, event event.UseCase) {
	h := &handler{event}

	e.GET("/events", h.getAll)
}

type getAllParams struct {
	Type            *event.Type     `query:"type"`
	ChainId         *domain.ChainId `query:"chainId"`
	ContractAddress *domain.Address `query:"contractAddress"`
	TokenId         *domain.TokenId `query:"tokenId"`
	Actor           *domain.Address `query:"actor"`
	Offset          int32           `query:"offset"`
	Limit           int32           `query:"limit"`
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &getAllParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []event.FindAllOptionsFunc{}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}
	if p.ChainId != nil {
		opts = append(opts, event.WithChainId(*p.ChainId))
	}
	if p.ContractAddress != nil {
		opts = append(opts, event.WithContractAddress(*p.ContractAddress))
	}
	if p.TokenId != nil {
		opts = append(opts, event.WithTokenId(*p.TokenId))
	}
	if p.Actor != nil {
		opts = append(opts, event.WithActor(*p.Actor))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, event.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.event.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
