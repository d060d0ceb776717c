package marketplace

import (
	"math/big"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/listing"
	"github.com/minterra/marketapi/domain/offer"
	"github.com/minterra/marketapi/domain/token"
)

// Params are the owner-tunable marketplace parameters. Rates use 0.1%
// precision units (scale 1000). Durations and times are in seconds.
type Params struct {
	MintFee            string           `json:"mintFee" bson:"mintFee"`
	SharedRewardRate   int64            `json:"sharedRewardRate" bson:"sharedRewardRate"`
	MaxMintPerTx       int64            `json:"maxMintPerTx" bson:"maxMintPerTx"`
	MaxSupply          int64            `json:"maxSupply" bson:"maxSupply"`
	DeveloperWallet    domain.Address   `json:"developerWallet" bson:"developerWallet"`
	MinterRate         int64            `json:"minterRate" bson:"minterRate"`
	DeveloperRate      int64            `json:"developerRate" bson:"developerRate"`
	MinListingDuration int64            `json:"minListingDuration" bson:"minListingDuration"`
	MaxListingDuration int64            `json:"maxListingDuration" bson:"maxListingDuration"`
	MinBidIncreaseRate int64            `json:"minBidIncreaseRate" bson:"minBidIncreaseRate"`
	BidExtensionTime   int64            `json:"bidExtensionTime" bson:"bidExtensionTime"`
	AuctionsEnabled    bool             `json:"auctionsEnabled" bson:"auctionsEnabled"`
	Whitelist          []domain.Address `json:"whitelist" bson:"whitelist"`
}

func (p *Params) IsWhitelisted(contract domain.Address) bool {
	for _, c := range p.Whitelist {
		if c.Equals(contract) {
			return true
		}
	}
	return false
}

func (p *Params) MintFeeBig() *big.Int {
	return domain.MustBigInt(p.MintFee)
}

// Validate rejects rate sums above 100%.
func (p *Params) Validate() error {
	if p.MinterRate < 0 || p.DeveloperRate < 0 || p.SharedRewardRate < 0 ||
		p.MinterRate+p.DeveloperRate > 1000 || p.SharedRewardRate > 1000 {
		return domain.ErrInvalidRates
	}
	if p.MinListingDuration < 0 || p.MaxListingDuration < p.MinListingDuration {
		return domain.ErrInvalidDuration
	}
	return nil
}

type ParamsPatchable struct {
	MintFee            *string           `json:"mintFee" bson:"mintFee,omitempty"`
	SharedRewardRate   *int64            `json:"sharedRewardRate" bson:"sharedRewardRate,omitempty"`
	MaxMintPerTx       *int64            `json:"maxMintPerTx" bson:"maxMintPerTx,omitempty"`
	MaxSupply          *int64            `json:"maxSupply" bson:"maxSupply,omitempty"`
	DeveloperWallet    *domain.Address   `json:"developerWallet" bson:"developerWallet,omitempty"`
	MinterRate         *int64            `json:"minterRate" bson:"minterRate,omitempty"`
	DeveloperRate      *int64            `json:"developerRate" bson:"developerRate,omitempty"`
	MinListingDuration *int64            `json:"minListingDuration" bson:"minListingDuration,omitempty"`
	MaxListingDuration *int64            `json:"maxListingDuration" bson:"maxListingDuration,omitempty"`
	MinBidIncreaseRate *int64            `json:"minBidIncreaseRate" bson:"minBidIncreaseRate,omitempty"`
	BidExtensionTime   *int64            `json:"bidExtensionTime" bson:"bidExtensionTime,omitempty"`
	AuctionsEnabled    *bool             `json:"auctionsEnabled" bson:"auctionsEnabled,omitempty"`
	Whitelist          *[]domain.Address `json:"whitelist" bson:"whitelist,omitempty"`
}

// Apply merges the patch into a copy of p.
func (patch *ParamsPatchable) Apply(p Params) Params {
	if patch.MintFee != nil {
		p.MintFee = *patch.MintFee
	}
	if patch.SharedRewardRate != nil {
		p.SharedRewardRate = *patch.SharedRewardRate
	}
	if patch.MaxMintPerTx != nil {
		p.MaxMintPerTx = *patch.MaxMintPerTx
	}
	if patch.MaxSupply != nil {
		p.MaxSupply = *patch.MaxSupply
	}
	if patch.DeveloperWallet != nil {
		p.DeveloperWallet = *patch.DeveloperWallet
	}
	if patch.MinterRate != nil {
		p.MinterRate = *patch.MinterRate
	}
	if patch.DeveloperRate != nil {
		p.DeveloperRate = *patch.DeveloperRate
	}
	if patch.MinListingDuration != nil {
		p.MinListingDuration = *patch.MinListingDuration
	}
	if patch.MaxListingDuration != nil {
		p.MaxListingDuration = *patch.MaxListingDuration
	}
	if patch.MinBidIncreaseRate != nil {
		p.MinBidIncreaseRate = *patch.MinBidIncreaseRate
	}
	if patch.BidExtensionTime != nil {
		p.BidExtensionTime = *patch.BidExtensionTime
	}
	if patch.AuctionsEnabled != nil {
		p.AuctionsEnabled = *patch.AuctionsEnabled
	}
	if patch.Whitelist != nil {
		p.Whitelist = *patch.Whitelist
	}
	return p
}

// ParamChange names one tunable touched by a patch.
type ParamChange struct {
	Name  string
	Value interface{}
}

// Changed lists the tunables the patch sets, in declaration order.
func (patch *ParamsPatchable) Changed() []ParamChange {
	changes := []ParamChange{}
	if patch.MintFee != nil {
		changes = append(changes, ParamChange{"mintFee", *patch.MintFee})
	}
	if patch.SharedRewardRate != nil {
		changes = append(changes, ParamChange{"sharedRewardRate", *patch.SharedRewardRate})
	}
	if patch.MaxMintPerTx != nil {
		changes = append(changes, ParamChange{"maxMintPerTx", *patch.MaxMintPerTx})
	}
	if patch.MaxSupply != nil {
		changes = append(changes, ParamChange{"maxSupply", *patch.MaxSupply})
	}
	if patch.DeveloperWallet != nil {
		changes = append(changes, ParamChange{"developerWallet", *patch.DeveloperWallet})
	}
	if patch.MinterRate != nil {
		changes = append(changes, ParamChange{"minterRate", *patch.MinterRate})
	}
	if patch.DeveloperRate != nil {
		changes = append(changes, ParamChange{"developerRate", *patch.DeveloperRate})
	}
	if patch.MinListingDuration != nil {
		changes = append(changes, ParamChange{"minListingDuration", *patch.MinListingDuration})
	}
	if patch.MaxListingDuration != nil {
		changes = append(changes, ParamChange{"maxListingDuration", *patch.MaxListingDuration})
	}
	if patch.MinBidIncreaseRate != nil {
		changes = append(changes, ParamChange{"minBidIncreaseRate", *patch.MinBidIncreaseRate})
	}
	if patch.BidExtensionTime != nil {
		changes = append(changes, ParamChange{"bidExtensionTime", *patch.BidExtensionTime})
	}
	if patch.AuctionsEnabled != nil {
		changes = append(changes, ParamChange{"auctionsEnabled", *patch.AuctionsEnabled})
	}
	if patch.Whitelist != nil {
		changes = append(changes, ParamChange{"whitelist", *patch.Whitelist})
	}
	return changes
}

type ParamsRepo interface {
	Get(ctx ctx.Ctx) (*Params, error)
	Set(ctx ctx.Ctx, p *Params) error
}

type CreateListingReq struct {
	Token  token.Id
	Seller domain.Address
	// Price is the fixed price, the Dutch starting price, or the English
	// starting price depending on the operation.
	Price *big.Int
	// EndingPrice (Dutch) / BuyoutPrice (English; nil or zero for none).
	EndingPrice *big.Int
	BuyoutPrice *big.Int
	// Duration in seconds; ignored for fixed price.
	Duration int64
}

// UseCase is the marketplace state machine. Every operation runs as one
// serialized transaction: it either completes fully or leaves no trace.
type UseCase interface {
	CreateFixedPriceListing(ctx ctx.Ctx, req *CreateListingReq) (listing.Id, error)
	CreateDutchAuctionListing(ctx ctx.Ctx, req *CreateListingReq) (listing.Id, error)
	CreateEnglishAuctionListing(ctx ctx.Ctx, req *CreateListingReq) (listing.Id, error)
	CancelListing(ctx ctx.Ctx, caller domain.Address, id listing.Id) error
	Buy(ctx ctx.Ctx, buyer domain.Address, id listing.Id, payment *big.Int) error
	PlaceBid(ctx ctx.Ctx, bidder domain.Address, id listing.Id, payment *big.Int) error
	ConcludeAuction(ctx ctx.Ctx, caller domain.Address, id listing.Id) error

	CreateOffer(ctx ctx.Ctx, offerer domain.Address, id token.Id, payment *big.Int) (offer.Id, error)
	CancelOffer(ctx ctx.Ctx, caller domain.Address, id offer.Id) error
	AcceptOffer(ctx ctx.Ctx, caller domain.Address, id offer.Id) error
	RejectOffer(ctx ctx.Ctx, caller domain.Address, id offer.Id) error

	Pause(ctx ctx.Ctx, caller domain.Address) error
	Unpause(ctx ctx.Ctx, caller domain.Address) error

	GetParams(ctx ctx.Ctx) (*Params, error)
	UpdateParams(ctx ctx.Ctx, caller domain.Address, patch *ParamsPatchable) (*Params, error)

	GetListing(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error)
	GetListings(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error)
	GetBuyPrice(ctx ctx.Ctx, id listing.Id) (*big.Int, error)
	GetOffers(ctx ctx.Ctx, opts ...offer.FindAllOptionsFunc) ([]*offer.Offer, error)
}
