package listing

import (
	"math/big"
	"time"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/token"
)

// Id is a 48-bit sequence id allocated by the repository.
type Id uint64

const IdMask = Id(1<<48 - 1)

type Kind string

const (
	KindFixedPrice     Kind = "fixedPrice"
	KindDutchAuction   Kind = "dutchAuction"
	KindEnglishAuction Kind = "englishAuction"
)

type FixedPriceTerms struct {
	Price string `json:"price" bson:"price"`
}

type DutchAuctionTerms struct {
	StartingPrice string `json:"startingPrice" bson:"startingPrice"`
	EndingPrice   string `json:"endingPrice" bson:"endingPrice"`
	// Duration in seconds
	Duration int64 `json:"duration" bson:"duration"`
}

type EnglishAuctionTerms struct {
	StartingPrice string `json:"startingPrice" bson:"startingPrice"`
	// BuyoutPrice is empty or "0" when the auction has no buyout.
	BuyoutPrice string `json:"buyoutPrice" bson:"buyoutPrice"`
	// Duration in seconds
	Duration      int64          `json:"duration" bson:"duration"`
	HighestBid    string         `json:"highestBid" bson:"highestBid"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
}

// Listing is a tagged variant: Kind selects exactly one non-nil terms struct.
// The kind is immutable after creation.
type Listing struct {
	Id              Id             `json:"id" bson:"id"`
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Seller          domain.Address `json:"seller" bson:"seller"`
	Kind            Kind           `json:"kind" bson:"kind"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
	// PausedSnapshot is the cumulative paused seconds at creation time,
	// subtracted from the live total when computing the effective deadline.
	PausedSnapshot int64 `json:"pausedSnapshot" bson:"pausedSnapshot"`

	FixedPrice     *FixedPriceTerms     `json:"fixedPrice,omitempty" bson:"fixedPrice,omitempty"`
	DutchAuction   *DutchAuctionTerms   `json:"dutchAuction,omitempty" bson:"dutchAuction,omitempty"`
	EnglishAuction *EnglishAuctionTerms `json:"englishAuction,omitempty" bson:"englishAuction,omitempty"`
}

func (l *Listing) ToTokenId() token.Id {
	return token.Id{ChainId: l.ChainId, ContractAddress: l.ContractAddress, TokenId: l.TokenId}
}

func NewFixedPrice(id token.Id, seller domain.Address, price *big.Int, createdAt time.Time, pausedSnapshot int64) (*Listing, error) {
	if price == nil || price.Sign() <= 0 {
		return nil, domain.ErrZeroAmount
	}
	return &Listing{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
		Seller:          seller.ToLower(),
		Kind:            KindFixedPrice,
		CreatedAt:       createdAt,
		PausedSnapshot:  pausedSnapshot,
		FixedPrice:      &FixedPriceTerms{Price: price.String()},
	}, nil
}

func NewDutchAuction(id token.Id, seller domain.Address, startingPrice, endingPrice *big.Int, duration int64, createdAt time.Time, pausedSnapshot int64) (*Listing, error) {
	if endingPrice == nil || endingPrice.Sign() <= 0 {
		return nil, domain.ErrZeroAmount
	}
	if startingPrice == nil || startingPrice.Cmp(endingPrice) <= 0 {
		return nil, domain.ErrInvalidPriceRange
	}
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	return &Listing{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
		Seller:          seller.ToLower(),
		Kind:            KindDutchAuction,
		CreatedAt:       createdAt,
		PausedSnapshot:  pausedSnapshot,
		DutchAuction: &DutchAuctionTerms{
			StartingPrice: startingPrice.String(),
			EndingPrice:   endingPrice.String(),
			Duration:      duration,
		},
	}, nil
}

func NewEnglishAuction(id token.Id, seller domain.Address, startingPrice, buyoutPrice *big.Int, duration int64, createdAt time.Time, pausedSnapshot int64) (*Listing, error) {
	if startingPrice == nil || startingPrice.Sign() <= 0 {
		return nil, domain.ErrZeroAmount
	}
	if buyoutPrice == nil {
		buyoutPrice = new(big.Int)
	}
	if buyoutPrice.Sign() != 0 && buyoutPrice.Cmp(startingPrice) <= 0 {
		return nil, domain.ErrInvalidBuyoutPrice
	}
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	return &Listing{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
		Seller:          seller.ToLower(),
		Kind:            KindEnglishAuction,
		CreatedAt:       createdAt,
		PausedSnapshot:  pausedSnapshot,
		EnglishAuction: &EnglishAuctionTerms{
			StartingPrice: startingPrice.String(),
			BuyoutPrice:   buyoutPrice.String(),
			Duration:      duration,
		},
	}, nil
}

func (l *Listing) IsAuction() bool {
	return l.Kind == KindDutchAuction || l.Kind == KindEnglishAuction
}

// Duration returns the auction duration; zero for fixed-price listings.
func (l *Listing) Duration() int64 {
	switch l.Kind {
	case KindDutchAuction:
		return l.DutchAuction.Duration
	case KindEnglishAuction:
		return l.EnglishAuction.Duration
	default:
		return 0
	}
}

// EndTime returns the pause-adjusted auction deadline. Any time the
// marketplace spent paused after this listing was created pushes the deadline
// out by exactly that long.
func (l *Listing) EndTime(totalPausedNow int64) time.Time {
	pausedSince := totalPausedNow - l.PausedSnapshot
	return l.CreatedAt.Add(time.Duration(l.Duration()+pausedSince) * time.Second)
}

func (l *Listing) Expired(now time.Time, totalPausedNow int64) bool {
	if !l.IsAuction() {
		return false
	}
	return !now.Before(l.EndTime(totalPausedNow))
}

func (l *Listing) HasBid() bool {
	return l.Kind == KindEnglishAuction && l.EnglishAuction.HighestBid != "" && l.EnglishAuction.HighestBid != "0"
}

func (l *Listing) HasBuyout() bool {
	return l.Kind == KindEnglishAuction && l.EnglishAuction.BuyoutPrice != "" && l.EnglishAuction.BuyoutPrice != "0"
}

func (l *Listing) BuyoutPriceBig() *big.Int {
	return domain.MustBigInt(l.EnglishAuction.BuyoutPrice)
}

// priceScale gives Dutch interpolation sub-integer precision.
var priceScale = big.NewInt(1000)

// BuyPrice resolves the price a buyer pays right now. Fixed-price listings
// return the flat price, English auctions the buyout price, and Dutch
// auctions interpolate linearly from starting to ending price over the
// elapsed fraction of the duration, rounding toward zero.
func (l *Listing) BuyPrice(now time.Time) *big.Int {
	switch l.Kind {
	case KindFixedPrice:
		return domain.MustBigInt(l.FixedPrice.Price)
	case KindEnglishAuction:
		return domain.MustBigInt(l.EnglishAuction.BuyoutPrice)
	case KindDutchAuction:
		starting := domain.MustBigInt(l.DutchAuction.StartingPrice)
		ending := domain.MustBigInt(l.DutchAuction.EndingPrice)
		elapsed := int64(now.Sub(l.CreatedAt) / time.Second)
		if elapsed <= 0 {
			return starting
		}
		if elapsed >= l.DutchAuction.Duration {
			return ending
		}
		// drop = (starting - ending) * (elapsed * scale / duration) / scale
		scaledElapsed := new(big.Int).Mul(big.NewInt(elapsed), priceScale)
		scaledElapsed.Div(scaledElapsed, big.NewInt(l.DutchAuction.Duration))
		drop := new(big.Int).Sub(starting, ending)
		drop.Mul(drop, scaledElapsed)
		drop.Div(drop, priceScale)
		return new(big.Int).Sub(starting, drop)
	default:
		return new(big.Int)
	}
}

// MinNextBid is the lowest acceptable English-auction bid: the starting price
// while no bid stands, afterwards the highest bid raised by minIncreaseRate
// (0.1% units).
func (l *Listing) MinNextBid(minIncreaseRate int64) *big.Int {
	if !l.HasBid() {
		return domain.MustBigInt(l.EnglishAuction.StartingPrice)
	}
	highest := domain.MustBigInt(l.EnglishAuction.HighestBid)
	return new(big.Int).Add(highest, domain.ApplyRate(highest, minIncreaseRate))
}

// Patchable updates English-auction bid state. Duration changes implement bid
// extensions near the deadline.
type Patchable struct {
	HighestBid    *string         `bson:"englishAuction.highestBid,omitempty"`
	HighestBidder *domain.Address `bson:"englishAuction.highestBidder,omitempty"`
	Duration      *int64          `bson:"englishAuction.duration,omitempty"`
}

type FindAllOptions struct {
	ChainId         *domain.ChainId
	ContractAddress *domain.Address
	Seller          *domain.Address
	Kind            *Kind
	Offset          *int32
	Limit           *int32
	Sort            *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithContractAddress(contract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ContractAddress = contract.ToLowerPtr()
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithKind(kind Kind) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Kind = &kind
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// Repo owns the listing records. Adding allocates the next sequence id and
// fails with domain.ErrAlreadyListed while an active listing exists for the
// same token; removing deletes the id-keyed and token-keyed views atomically.
type Repo interface {
	Add(ctx ctx.Ctx, l *Listing) (Id, error)
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindOneByToken(ctx ctx.Ctx, id token.Id) (*Listing, error)
	TryFindOneByToken(ctx ctx.Ctx, id token.Id) (*Listing, bool, error)
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error
	Remove(ctx ctx.Ctx, id Id) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}
