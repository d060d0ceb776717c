package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/delivery"
	"github.com/minterra/marketapi/base/metrics"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/listing"
	"github.com/minterra/marketapi/domain/marketplace"
	"github.com/minterra/marketapi/domain/offer"
	"github.com/minterra/marketapi/domain/token"
)

// nativeDecimals scales native units into display prices.
const nativeDecimals = 18

var met metrics.Service

type handler struct {
	marketplace marketplace.UseCase
}

func New(e *echo.Echo, marketplace marketplace.UseCase) {
	met = metrics.New("marketplace")

	h := &handler{marketplace}

	g := e.Group("/marketplace")

	g.POST("/listings", h.createListing)
	g.GET("/listings", h.getListings)
	g.GET("/listings/:id", h.getListing)
	g.GET("/listings/:id/price", h.getBuyPrice)
	g.DELETE("/listings/:id", h.cancelListing)
	g.POST("/listings/:id/buy", h.buy)
	g.POST("/listings/:id/bids", h.placeBid)
	g.POST("/listings/:id/conclude", h.concludeAuction)

	g.POST("/offers", h.createOffer)
	g.GET("/offers", h.getOffers)
	g.DELETE("/offers/:id", h.cancelOffer)
	g.POST("/offers/:id/accept", h.acceptOffer)
	g.POST("/offers/:id/reject", h.rejectOffer)

	g.GET("/params", h.getParams)
	g.PATCH("/params", h.updateParams)
	g.POST("/pause", h.pause)
	g.POST("/unpause", h.unpause)
}

func adminCaller(c echo.Context) domain.Address {
	return domain.Address(c.Request().Header.Get("X-Admin-Address"))
}

func parseListingId(c echo.Context) (listing.Id, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return listing.Id(id), nil
}

func parseOfferId(c echo.Context) (offer.Id, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return offer.Id(id), nil
}

type createListingParams struct {
	Kind            listing.Kind   `json:"kind" validate:"required"`
	ChainId         domain.ChainId `json:"chainId" validate:"required"`
	ContractAddress domain.Address `json:"contractAddress" validate:"required"`
	TokenId         domain.TokenId `json:"tokenId" validate:"required"`
	Seller          domain.Address `json:"seller" validate:"required"`
	Price           string         `json:"price" validate:"required"`
	EndingPrice     string         `json:"endingPrice"`
	BuyoutPrice     string         `json:"buyoutPrice"`
	Duration        int64          `json:"duration"`
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &createListingParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	price, err := domain.ToBigInt(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	endingPrice, err := domain.ToBigInt(p.EndingPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	buyoutPrice, err := domain.ToBigInt(p.BuyoutPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	req := &marketplace.CreateListingReq{
		Token: token.Id{
			ChainId:         p.ChainId,
			ContractAddress: p.ContractAddress,
			TokenId:         p.TokenId,
		},
		Seller:      p.Seller,
		Price:       price,
		EndingPrice: endingPrice,
		BuyoutPrice: buyoutPrice,
		Duration:    p.Duration,
	}

	var id listing.Id
	switch p.Kind {
	case listing.KindFixedPrice:
		id, err = h.marketplace.CreateFixedPriceListing(ctx, req)
	case listing.KindDutchAuction:
		id, err = h.marketplace.CreateDutchAuctionListing(ctx, req)
	case listing.KindEnglishAuction:
		id, err = h.marketplace.CreateEnglishAuctionListing(ctx, req)
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listing kind")
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("listing.created", 1, "kind", string(p.Kind))
	return delivery.MakeJsonResp(c, http.StatusCreated, id)
}

type getListingsParams struct {
	ChainId         *domain.ChainId `query:"chainId"`
	ContractAddress *domain.Address `query:"contractAddress"`
	Seller          *domain.Address `query:"seller"`
	Kind            *listing.Kind   `query:"kind"`
	Offset          int32           `query:"offset"`
	Limit           int32           `query:"limit"`
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &getListingsParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.ChainId != nil {
		opts = append(opts, listing.WithChainId(*p.ChainId))
	}
	if p.ContractAddress != nil {
		opts = append(opts, listing.WithContractAddress(*p.ContractAddress))
	}
	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}
	if p.Kind != nil {
		opts = append(opts, listing.WithKind(*p.Kind))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.marketplace.GetListings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.marketplace.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getBuyPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	price, err := h.marketplace.GetBuyPrice(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"price":        price.String(),
		"displayPrice": decimal.NewFromBigInt(price, -nativeDecimals).String(),
	})
}

type callerParams struct {
	Caller domain.Address `json:"caller" query:"caller" validate:"required"`
}

func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &callerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.marketplace.CancelListing(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

type paymentParams struct {
	Caller  domain.Address `json:"caller" validate:"required"`
	Payment string         `json:"payment" validate:"required"`
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &paymentParams{}
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
	if err := h.marketplace.Buy(ctx, p.Caller, id, payment); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("listing.sold", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &paymentParams{}
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
	if err := h.marketplace.PlaceBid(ctx, p.Caller, id, payment); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("bid.placed", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) concludeAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &callerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.marketplace.ConcludeAuction(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("auction.concluded", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

type createOfferParams struct {
	ChainId         domain.ChainId `json:"chainId" validate:"required"`
	ContractAddress domain.Address `json:"contractAddress" validate:"required"`
	TokenId         domain.TokenId `json:"tokenId" validate:"required"`
	Offerer         domain.Address `json:"offerer" validate:"required"`
	Amount          string         `json:"amount" validate:"required"`
}

func (h *handler) createOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &createOfferParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	amount, err := domain.ToBigInt(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	id := token.Id{ChainId: p.ChainId, ContractAddress: p.ContractAddress, TokenId: p.TokenId}
	offerId, err := h.marketplace.CreateOffer(ctx, p.Offerer, id, amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("offer.created", 1)
	return delivery.MakeJsonResp(c, http.StatusCreated, offerId)
}

type getOffersParams struct {
	ChainId         *domain.ChainId `query:"chainId"`
	ContractAddress *domain.Address `query:"contractAddress"`
	TokenId         *domain.TokenId `query:"tokenId"`
	Offerer         *domain.Address `query:"offerer"`
	Offset          int32           `query:"offset"`
	Limit           int32           `query:"limit"`
}

func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &getOffersParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []offer.FindAllOptionsFunc{}
	if p.ChainId != nil && p.ContractAddress != nil && p.TokenId != nil {
		opts = append(opts, offer.WithToken(token.Id{
			ChainId:         *p.ChainId,
			ContractAddress: *p.ContractAddress,
			TokenId:         *p.TokenId,
		}))
	}
	if p.Offerer != nil {
		opts = append(opts, offer.WithOfferer(*p.Offerer))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, offer.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.marketplace.GetOffers(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancelOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseOfferId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &callerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.marketplace.CancelOffer(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseOfferId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &callerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.marketplace.AcceptOffer(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("offer.accepted", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) rejectOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseOfferId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p := &callerParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := h.marketplace.RejectOffer(ctx, p.Caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getParams(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	params, err := h.marketplace.GetParams(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, params)
}

func (h *handler) updateParams(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	patch := &marketplace.ParamsPatchable{}
	if err := c.Bind(patch); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	params, err := h.marketplace.UpdateParams(ctx, adminCaller(c), patch)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, params)
}

func (h *handler) pause(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.marketplace.Pause(ctx, adminCaller(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("paused", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) unpause(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.marketplace.Unpause(ctx, adminCaller(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	met.BumpSum("unpaused", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
