package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/delivery"
	"github.com/minterra/marketapi/base/metrics"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/token"
)

var met metrics.Service

type handler struct {
	token token.UseCase
}

func New(e *echo.Echo, token token.UseCase) {
	met = metrics.New("token")

	h := &handler{token}

	g := e.Group("/tokens")

	g.POST("/mint", h.mint)
	g.GET("", h.tokensOfOwner)
	g.GET("/:chainId/:contract/:tokenId", h.get)
}

type mintParams struct {
	Minter  domain.Address `json:"minter" validate:"required"`
	Count   int64          `json:"count" validate:"required"`
	Payment string         `json:"payment" validate:"required"`
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &mintParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	payment, err := domain.ToBigInt(p.Payment)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.token.Mint(ctx, p.Minter, p.Count, payment)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("minted", float64(len(res.TokenIds)))
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	chainId, err := strconv.ParseInt(c.Param("chainId"), 10, 32)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidChainId)
	}
	id := token.Id{
		ChainId:         domain.ChainId(chainId),
		ContractAddress: domain.Address(c.Param("contract")),
		TokenId:         domain.TokenId(c.Param("tokenId")),
	}
	res, err := h.token.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type tokensOfOwnerParams struct {
	ChainId         domain.ChainId `query:"chainId" validate:"required"`
	ContractAddress domain.Address `query:"contractAddress" validate:"required"`
	Owner           domain.Address `query:"owner" validate:"required"`
}

func (h *handler) tokensOfOwner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &tokensOfOwnerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.token.TokensOfOwner(ctx, p.ChainId, p.ContractAddress, p.Owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
