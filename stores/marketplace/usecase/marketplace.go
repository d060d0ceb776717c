package usecase

import (
	"math/big"
	"sync"
	"time"

	bCtx "github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/base/ptr"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/event"
	"github.com/minterra/marketapi/domain/listing"
	"github.com/minterra/marketapi/domain/marketplace"
	"github.com/minterra/marketapi/domain/offer"
	"github.com/minterra/marketapi/domain/pause"
	"github.com/minterra/marketapi/domain/payment"
	"github.com/minterra/marketapi/domain/reward"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
)

var timeNow = time.Now

type MarketplaceUseCaseCfg struct {
	Q           query.Mongo
	ListingRepo listing.Repo
	OfferRepo   offer.Repo
	ParamsRepo  marketplace.ParamsRepo
	Registry    token.Registry
	Vault       payment.Vault
	RewardUC    reward.UseCase
	PauseUC     pause.UseCase
	EventRepo   event.Repo

	// Owner may pause, unpause and retune parameters.
	Owner domain.Address
	// Escrow is the marketplace account holding listed tokens in custody.
	Escrow domain.Address
}

type marketplaceUseCaseImpl struct {
	q           query.Mongo
	listingRepo listing.Repo
	offerRepo   offer.Repo
	paramsRepo  marketplace.ParamsRepo
	registry    token.Registry
	vault       payment.Vault
	rewardUC    reward.UseCase
	pauseUC     pause.UseCase
	eventRepo   event.Repo
	owner       domain.Address
	escrow      domain.Address

	// serializes state-changing transactions
	mu sync.Mutex
}

func NewMarketplaceUseCase(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &marketplaceUseCaseImpl{
		q:           cfg.Q,
		listingRepo: cfg.ListingRepo,
		offerRepo:   cfg.OfferRepo,
		paramsRepo:  cfg.ParamsRepo,
		registry:    cfg.Registry,
		vault:       cfg.Vault,
		rewardUC:    cfg.RewardUC,
		pauseUC:     cfg.PauseUC,
		eventRepo:   cfg.EventRepo,
		owner:       cfg.Owner.ToLower(),
		escrow:      cfg.Escrow.ToLower(),
	}
}

func (u *marketplaceUseCaseImpl) requireNotPaused(ctx bCtx.Ctx) error {
	paused, err := u.pauseUC.IsPaused(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("pauseUC.IsPaused failed")
		return err
	}
	if paused {
		return domain.ErrPaused
	}
	return nil
}

// splitSalePrice settles one sale: the minter and seller cuts become
// pull-payment credits, only the developer wallet is paid out directly.
func (u *marketplaceUseCaseImpl) splitSalePrice(ctx bCtx.Ctx, params *marketplace.Params, id token.Id, seller domain.Address, price *big.Int) error {
	minterCut := domain.ApplyRate(price, params.MinterRate)
	developerCut := domain.ApplyRate(price, params.DeveloperRate)
	sellerCut := new(big.Int).Sub(price, minterCut)
	sellerCut.Sub(sellerCut, developerCut)

	if minterCut.Sign() > 0 {
		minter, err := u.registry.MinterOf(ctx, id)
		if err != nil {
			ctx.WithFields(log.Fields{"err": err, "id": id}).Error("registry.MinterOf failed")
			return err
		}
		if err := u.rewardUC.DepositPersonalReward(ctx, minter, minterCut); err != nil {
			ctx.WithFields(log.Fields{"err": err}).Error("rewardUC.DepositPersonalReward failed")
			return err
		}
	}
	if developerCut.Sign() > 0 {
		if err := u.vault.Payout(ctx, params.DeveloperWallet, developerCut); err != nil {
			ctx.WithFields(log.Fields{"err": err}).Error("vault.Payout failed")
			return err
		}
	}
	if sellerCut.Sign() > 0 {
		if err := u.rewardUC.DepositPersonalReward(ctx, seller, sellerCut); err != nil {
			ctx.WithFields(log.Fields{"err": err}).Error("rewardUC.DepositPersonalReward failed")
			return err
		}
	}
	return nil
}

func (u *marketplaceUseCaseImpl) insertListingEvent(ctx bCtx.Ctx, typ event.Type, l *listing.Listing, actor, counterparty domain.Address, amount string, detail map[string]interface{}) error {
	e := &event.Event{
		Type:            typ,
		Timestamp:       timeNow(),
		ChainId:         l.ChainId,
		ContractAddress: l.ContractAddress,
		TokenId:         l.TokenId,
		ListingId:       uint64(l.Id),
		Actor:           actor.ToLower(),
		Counterparty:    counterparty.ToLower(),
		Amount:          amount,
		Detail:          detail,
	}
	if err := u.eventRepo.Insert(ctx, e); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("eventRepo.Insert failed")
		return err
	}
	return nil
}

func (u *marketplaceUseCaseImpl) insertOfferEvent(ctx bCtx.Ctx, typ event.Type, o *offer.Offer, actor domain.Address) error {
	e := &event.Event{
		Type:            typ,
		Timestamp:       timeNow(),
		ChainId:         o.ChainId,
		ContractAddress: o.ContractAddress,
		TokenId:         o.TokenId,
		OfferId:         uint64(o.Id),
		Actor:           actor.ToLower(),
		Counterparty:    o.Offerer,
		Amount:          o.Amount,
	}
	if err := u.eventRepo.Insert(ctx, e); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("eventRepo.Insert failed")
		return err
	}
	return nil
}

// checkCreateListing runs the validations shared by all three listing kinds.
func (u *marketplaceUseCaseImpl) checkCreateListing(ctx bCtx.Ctx, req *marketplace.CreateListingReq) (*marketplace.Params, error) {
	if err := u.requireNotPaused(ctx); err != nil {
		return nil, err
	}
	params, err := u.paramsRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
		return nil, err
	}
	if !params.IsWhitelisted(req.Token.ContractAddress) {
		return nil, domain.ErrNotWhitelisted
	}
	owner, err := u.registry.OwnerOf(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if !owner.Equals(req.Seller) {
		return nil, domain.ErrNotOwner
	}
	return params, nil
}

func checkAuctionDuration(params *marketplace.Params, duration int64) error {
	if duration < params.MinListingDuration || duration > params.MaxListingDuration {
		return domain.ErrInvalidDuration
	}
	return nil
}

func (u *marketplaceUseCaseImpl) addListing(ctx bCtx.Ctx, l *listing.Listing, req *marketplace.CreateListingReq, detail map[string]interface{}) (listing.Id, error) {
	// the marketplace takes custody for the lifetime of the listing
	if err := u.registry.Transfer(ctx, l.ToTokenId(), l.Seller, u.escrow); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": l.ToTokenId()}).Error("registry.Transfer failed")
		return 0, err
	}
	id, err := u.listingRepo.Add(ctx, l)
	if err != nil {
		if err != domain.ErrAlreadyListed {
			ctx.WithFields(log.Fields{"err": err}).Error("listingRepo.Add failed")
		}
		return 0, err
	}
	amount := ""
	if req.Price != nil {
		amount = req.Price.String()
	}
	detail["kind"] = string(l.Kind)
	if err := u.insertListingEvent(ctx, event.TypeListingCreated, l, req.Seller, "", amount, detail); err != nil {
		return 0, err
	}
	return id, nil
}

func (u *marketplaceUseCaseImpl) CreateFixedPriceListing(ctx bCtx.Ctx, req *marketplace.CreateListingReq) (listing.Id, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var id listing.Id
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if _, err := u.checkCreateListing(c, req); err != nil {
			return err
		}
		snapshot, err := u.pauseUC.Snapshot(c)
		if err != nil {
			return err
		}
		l, err := listing.NewFixedPrice(req.Token, req.Seller, req.Price, timeNow(), snapshot)
		if err != nil {
			return err
		}
		id, err = u.addListing(c, l, req, map[string]interface{}{})
		return err
	})
	return id, err
}

func (u *marketplaceUseCaseImpl) CreateDutchAuctionListing(ctx bCtx.Ctx, req *marketplace.CreateListingReq) (listing.Id, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var id listing.Id
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		params, err := u.checkCreateListing(c, req)
		if err != nil {
			return err
		}
		if !params.AuctionsEnabled {
			return domain.ErrAuctionsDisabled
		}
		if err := checkAuctionDuration(params, req.Duration); err != nil {
			return err
		}
		snapshot, err := u.pauseUC.Snapshot(c)
		if err != nil {
			return err
		}
		l, err := listing.NewDutchAuction(req.Token, req.Seller, req.Price, req.EndingPrice, req.Duration, timeNow(), snapshot)
		if err != nil {
			return err
		}
		id, err = u.addListing(c, l, req, map[string]interface{}{
			"endingPrice": req.EndingPrice.String(),
			"duration":    req.Duration,
		})
		return err
	})
	return id, err
}

func (u *marketplaceUseCaseImpl) CreateEnglishAuctionListing(ctx bCtx.Ctx, req *marketplace.CreateListingReq) (listing.Id, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var id listing.Id
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		params, err := u.checkCreateListing(c, req)
		if err != nil {
			return err
		}
		if !params.AuctionsEnabled {
			return domain.ErrAuctionsDisabled
		}
		if err := checkAuctionDuration(params, req.Duration); err != nil {
			return err
		}
		snapshot, err := u.pauseUC.Snapshot(c)
		if err != nil {
			return err
		}
		l, err := listing.NewEnglishAuction(req.Token, req.Seller, req.Price, req.BuyoutPrice, req.Duration, timeNow(), snapshot)
		if err != nil {
			return err
		}
		detail := map[string]interface{}{"duration": req.Duration}
		if req.BuyoutPrice != nil && req.BuyoutPrice.Sign() > 0 {
			detail["buyoutPrice"] = req.BuyoutPrice.String()
		}
		id, err = u.addListing(c, l, req, detail)
		return err
	})
	return id, err
}

// CancelListing is allowed even while paused so sellers are never locked in.
// An English auction that already holds a bid can no longer be cancelled.
func (u *marketplaceUseCaseImpl) CancelListing(ctx bCtx.Ctx, caller domain.Address, id listing.Id) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		l, err := u.listingRepo.FindOne(c, id)
		if err != nil {
			return err
		}
		if !l.Seller.Equals(caller) && !caller.Equals(u.owner) {
			return domain.ErrNotOwner
		}
		if l.HasBid() {
			return domain.ErrAuctionHasBids
		}
		if err := u.registry.Transfer(c, l.ToTokenId(), u.escrow, l.Seller); err != nil {
			c.WithFields(log.Fields{"err": err, "id": l.ToTokenId()}).Error("registry.Transfer failed")
			return err
		}
		if err := u.listingRepo.Remove(c, id); err != nil {
			return err
		}
		return u.insertListingEvent(c, event.TypeListingCancelled, l, caller, "", "", nil)
	})
}

// settleSale moves the token and the money for a concluded sale and retires
// the listing.
func (u *marketplaceUseCaseImpl) settleSale(ctx bCtx.Ctx, params *marketplace.Params, l *listing.Listing, buyer domain.Address, price *big.Int) error {
	if err := u.registry.Transfer(ctx, l.ToTokenId(), u.escrow, buyer); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": l.ToTokenId()}).Error("registry.Transfer failed")
		return err
	}
	if err := u.splitSalePrice(ctx, params, l.ToTokenId(), l.Seller, price); err != nil {
		return err
	}
	if err := u.listingRepo.Remove(ctx, l.Id); err != nil {
		return err
	}
	return u.insertListingEvent(ctx, event.TypeListingSold, l, buyer, l.Seller, price.String(), nil)
}

// refundBid returns an outbid or obsolete English-auction bid to its bidder.
func (u *marketplaceUseCaseImpl) refundBid(ctx bCtx.Ctx, l *listing.Listing) error {
	if !l.HasBid() {
		return nil
	}
	bid := domain.MustBigInt(l.EnglishAuction.HighestBid)
	bidder := l.EnglishAuction.HighestBidder
	// refunds are credited to the bidder's personal balance, never pushed
	if err := u.rewardUC.DepositPersonalReward(ctx, bidder, bid); err != nil {
		ctx.WithFields(log.Fields{"err": err, "bidder": bidder}).Error("rewardUC.DepositPersonalReward failed")
		return err
	}
	return u.insertListingEvent(ctx, event.TypeBidRefunded, l, bidder, "", bid.String(), nil)
}

func (u *marketplaceUseCaseImpl) Buy(ctx bCtx.Ctx, buyer domain.Address, id listing.Id, payment *big.Int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := u.requireNotPaused(c); err != nil {
			return err
		}
		l, err := u.listingRepo.FindOne(c, id)
		if err != nil {
			return err
		}
		if l.Seller.Equals(buyer) {
			return domain.ErrSelfPurchase
		}
		if l.Kind == listing.KindEnglishAuction && !l.HasBuyout() {
			return domain.ErrWrongListingKind
		}

		snapshot, err := u.pauseUC.Snapshot(c)
		if err != nil {
			return err
		}
		now := timeNow()
		if l.Expired(now, snapshot) {
			return domain.ErrAuctionEnded
		}

		price := l.BuyPrice(now)
		if payment == nil || payment.Cmp(price) < 0 {
			return domain.ErrInsufficientPayment
		}

		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}

		if err := u.vault.Deposit(c, buyer, payment); err != nil {
			return err
		}
		// overpayment above the resolved price goes straight back
		if excess := new(big.Int).Sub(payment, price); excess.Sign() > 0 {
			if err := u.vault.Payout(c, buyer, excess); err != nil {
				return err
			}
		}
		// buying out an English auction releases the standing bid
		if err := u.refundBid(c, l); err != nil {
			return err
		}
		return u.settleSale(c, params, l, buyer, price)
	})
}

func (u *marketplaceUseCaseImpl) PlaceBid(ctx bCtx.Ctx, bidder domain.Address, id listing.Id, payment *big.Int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := u.requireNotPaused(c); err != nil {
			return err
		}
		l, err := u.listingRepo.FindOne(c, id)
		if err != nil {
			return err
		}
		if l.Kind != listing.KindEnglishAuction {
			return domain.ErrWrongListingKind
		}
		if l.Seller.Equals(bidder) {
			return domain.ErrSelfPurchase
		}

		snapshot, err := u.pauseUC.Snapshot(c)
		if err != nil {
			return err
		}
		now := timeNow()
		if l.Expired(now, snapshot) {
			return domain.ErrAuctionEnded
		}

		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}

		// a bid at or above the buyout price wins outright
		if l.HasBuyout() && payment != nil && payment.Cmp(l.BuyoutPriceBig()) >= 0 {
			price := l.BuyoutPriceBig()
			if err := u.vault.Deposit(c, bidder, payment); err != nil {
				return err
			}
			if excess := new(big.Int).Sub(payment, price); excess.Sign() > 0 {
				if err := u.vault.Payout(c, bidder, excess); err != nil {
					return err
				}
			}
			if err := u.refundBid(c, l); err != nil {
				return err
			}
			return u.settleSale(c, params, l, bidder, price)
		}

		if payment == nil || payment.Cmp(l.MinNextBid(params.MinBidIncreaseRate)) < 0 {
			return domain.ErrBidTooLow
		}

		if err := u.vault.Deposit(c, bidder, payment); err != nil {
			return err
		}
		if err := u.refundBid(c, l); err != nil {
			return err
		}

		patch := listing.Patchable{}
		lowered := bidder.ToLower()
		patch.HighestBid = ptr.String(payment.String())
		patch.HighestBidder = &lowered

		// a late bid stretches the deadline so others can respond
		if params.BidExtensionTime > 0 && l.EndTime(snapshot).Sub(now) < time.Duration(params.BidExtensionTime)*time.Second {
			patch.Duration = ptr.Int64(l.EnglishAuction.Duration + params.BidExtensionTime)
		}

		if err := u.listingRepo.Update(c, id, patch); err != nil {
			return err
		}
		return u.insertListingEvent(c, event.TypeBidPlaced, l, bidder, l.Seller, payment.String(), nil)
	})
}

// ConcludeAuction settles an expired auction: with a standing bid the highest
// bidder wins, without one the listing is simply retired. Anyone may turn the
// crank once the deadline has passed.
func (u *marketplaceUseCaseImpl) ConcludeAuction(ctx bCtx.Ctx, caller domain.Address, id listing.Id) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := u.requireNotPaused(c); err != nil {
			return err
		}
		l, err := u.listingRepo.FindOne(c, id)
		if err != nil {
			return err
		}
		if !l.IsAuction() {
			return domain.ErrWrongListingKind
		}

		snapshot, err := u.pauseUC.Snapshot(c)
		if err != nil {
			return err
		}
		if !l.Expired(timeNow(), snapshot) {
			return domain.ErrAuctionNotEnded
		}

		if !l.HasBid() {
			// nobody bid, custody goes back to the seller
			if err := u.registry.Transfer(c, l.ToTokenId(), u.escrow, l.Seller); err != nil {
				c.WithFields(log.Fields{"err": err, "id": l.ToTokenId()}).Error("registry.Transfer failed")
				return err
			}
			if err := u.listingRepo.Remove(c, id); err != nil {
				return err
			}
			return u.insertListingEvent(c, event.TypeAuctionConcluded, l, caller, "", "", nil)
		}

		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}
		winner := l.EnglishAuction.HighestBidder
		price := domain.MustBigInt(l.EnglishAuction.HighestBid)
		if err := u.insertListingEvent(c, event.TypeAuctionConcluded, l, caller, winner, price.String(), nil); err != nil {
			return err
		}
		return u.settleSale(c, params, l, winner, price)
	})
}

func (u *marketplaceUseCaseImpl) CreateOffer(ctx bCtx.Ctx, offerer domain.Address, id token.Id, payment *big.Int) (offer.Id, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	var offerId offer.Id
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := u.requireNotPaused(c); err != nil {
			return err
		}
		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}
		if !params.IsWhitelisted(id.ContractAddress) {
			return domain.ErrNotWhitelisted
		}
		owner, err := u.registry.OwnerOf(c, id)
		if err != nil {
			return err
		}
		if owner.Equals(offerer) {
			return domain.ErrSelfPurchase
		}
		// a listed token is held by the escrow account, look through it
		if l, found, err := u.listingRepo.TryFindOneByToken(c, id); err != nil {
			return err
		} else if found && l.Seller.Equals(offerer) {
			return domain.ErrSelfPurchase
		}

		o, err := offer.New(id, offerer, payment, timeNow())
		if err != nil {
			return err
		}
		// offers are escrowed up front
		if err := u.vault.Deposit(c, offerer, payment); err != nil {
			return err
		}
		offerId, err = u.offerRepo.Add(c, o)
		if err != nil {
			if err != domain.ErrDuplicateOffer {
				c.WithFields(log.Fields{"err": err}).Error("offerRepo.Add failed")
			}
			return err
		}
		return u.insertOfferEvent(c, event.TypeOfferCreated, o, offerer)
	})
	if err != nil {
		return 0, err
	}
	return offerId, nil
}

// CancelOffer is allowed even while paused so escrowed funds stay reachable.
func (u *marketplaceUseCaseImpl) CancelOffer(ctx bCtx.Ctx, caller domain.Address, id offer.Id) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		o, err := u.offerRepo.FindOne(c, id)
		if err != nil {
			return err
		}
		if !o.Offerer.Equals(caller) && !caller.Equals(u.owner) {
			return domain.ErrNotOwner
		}
		if err := u.rewardUC.DepositPersonalReward(c, o.Offerer, o.AmountBig()); err != nil {
			return err
		}
		if err := u.offerRepo.Remove(c, id); err != nil {
			return err
		}
		return u.insertOfferEvent(c, event.TypeOfferCancelled, o, caller)
	})
}

func (u *marketplaceUseCaseImpl) AcceptOffer(ctx bCtx.Ctx, caller domain.Address, id offer.Id) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		if err := u.requireNotPaused(c); err != nil {
			return err
		}
		o, err := u.offerRepo.FindOne(c, id)
		if err != nil {
			return err
		}

		// a listed token sits with the escrow account, so the listing decides
		// who the seller is; the listing dissolves with the sale
		holder := caller
		if l, found, err := u.listingRepo.TryFindOneByToken(c, o.ToTokenId()); err != nil {
			return err
		} else if found {
			if !l.Seller.Equals(caller) {
				return domain.ErrNotOwner
			}
			if l.HasBid() {
				return domain.ErrAuctionHasBids
			}
			if err := u.listingRepo.Remove(c, l.Id); err != nil {
				return err
			}
			if err := u.insertListingEvent(c, event.TypeListingCancelled, l, caller, "", "", nil); err != nil {
				return err
			}
			holder = u.escrow
		} else {
			owner, err := u.registry.OwnerOf(c, o.ToTokenId())
			if err != nil {
				return err
			}
			if !owner.Equals(caller) {
				return domain.ErrNotOwner
			}
		}

		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}
		if err := u.registry.Transfer(c, o.ToTokenId(), holder, o.Offerer); err != nil {
			c.WithFields(log.Fields{"err": err, "id": o.ToTokenId()}).Error("registry.Transfer failed")
			return err
		}
		if err := u.splitSalePrice(c, params, o.ToTokenId(), caller, o.AmountBig()); err != nil {
			return err
		}
		if err := u.offerRepo.Remove(c, id); err != nil {
			return err
		}
		return u.insertOfferEvent(c, event.TypeOfferAccepted, o, caller)
	})
}

// RejectOffer returns the escrow to the offerer. Allowed while paused.
func (u *marketplaceUseCaseImpl) RejectOffer(ctx bCtx.Ctx, caller domain.Address, id offer.Id) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		o, err := u.offerRepo.FindOne(c, id)
		if err != nil {
			return err
		}
		// for a listed token the listing names the seller, the registry would
		// report the escrow account
		if l, found, err := u.listingRepo.TryFindOneByToken(c, o.ToTokenId()); err != nil {
			return err
		} else if found {
			if !l.Seller.Equals(caller) {
				return domain.ErrNotOwner
			}
		} else {
			owner, err := u.registry.OwnerOf(c, o.ToTokenId())
			if err != nil {
				return err
			}
			if !owner.Equals(caller) {
				return domain.ErrNotOwner
			}
		}
		if err := u.rewardUC.DepositPersonalReward(c, o.Offerer, o.AmountBig()); err != nil {
			return err
		}
		if err := u.offerRepo.Remove(c, id); err != nil {
			return err
		}
		return u.insertOfferEvent(c, event.TypeOfferRejected, o, caller)
	})
}

func (u *marketplaceUseCaseImpl) Pause(ctx bCtx.Ctx, caller domain.Address) error {
	if !caller.Equals(u.owner) {
		return domain.ErrNotOwner
	}
	if err := u.pauseUC.Pause(ctx); err != nil {
		return err
	}
	return u.eventRepo.Insert(ctx, &event.Event{
		Type:      event.TypePaused,
		Timestamp: timeNow(),
		Actor:     caller.ToLower(),
	})
}

func (u *marketplaceUseCaseImpl) Unpause(ctx bCtx.Ctx, caller domain.Address) error {
	if !caller.Equals(u.owner) {
		return domain.ErrNotOwner
	}
	if err := u.pauseUC.Unpause(ctx); err != nil {
		return err
	}
	return u.eventRepo.Insert(ctx, &event.Event{
		Type:      event.TypeUnpaused,
		Timestamp: timeNow(),
		Actor:     caller.ToLower(),
	})
}

func (u *marketplaceUseCaseImpl) GetParams(ctx bCtx.Ctx) (*marketplace.Params, error) {
	params, err := u.paramsRepo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
		return nil, err
	}
	return params, nil
}

func (u *marketplaceUseCaseImpl) UpdateParams(ctx bCtx.Ctx, caller domain.Address, patch *marketplace.ParamsPatchable) (*marketplace.Params, error) {
	if !caller.Equals(u.owner) {
		return nil, domain.ErrNotOwner
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	var updated marketplace.Params
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}
		updated = patch.Apply(*params)
		if err := updated.Validate(); err != nil {
			return err
		}
		if err := u.paramsRepo.Set(c, &updated); err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Set failed")
			return err
		}
		// one event per touched tunable
		for _, ch := range patch.Changed() {
			err := u.eventRepo.Insert(c, &event.Event{
				Type:      event.TypeParamsChanged,
				Timestamp: timeNow(),
				Actor:     caller.ToLower(),
				Detail:    map[string]interface{}{"param": ch.Name, "value": ch.Value},
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (u *marketplaceUseCaseImpl) GetListing(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	return u.listingRepo.FindOne(ctx, id)
}

func (u *marketplaceUseCaseImpl) GetListings(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return u.listingRepo.FindAll(ctx, opts...)
}

func (u *marketplaceUseCaseImpl) GetBuyPrice(ctx bCtx.Ctx, id listing.Id) (*big.Int, error) {
	l, err := u.listingRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Kind == listing.KindEnglishAuction && !l.HasBuyout() {
		return nil, domain.ErrWrongListingKind
	}
	snapshot, err := u.pauseUC.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	if l.Expired(now, snapshot) {
		return nil, domain.ErrAuctionEnded
	}
	return l.BuyPrice(now), nil
}

func (u *marketplaceUseCaseImpl) GetOffers(ctx bCtx.Ctx, opts ...offer.FindAllOptionsFunc) ([]*offer.Offer, error) {
	return u.offerRepo.FindAll(ctx, opts...)
}
