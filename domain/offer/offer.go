package offer

import (
	"math/big"
	"time"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/token"
)

// Id is a sequence id allocated by the repository.
type Id uint64

// Offer is an escrowed bid on a token independent of any listing.
type Offer struct {
	Id              Id             `json:"id" bson:"id"`
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Offerer         domain.Address `json:"offerer" bson:"offerer"`
	Amount          string         `json:"amount" bson:"amount"`
	CreatedAt       time.Time      `json:"createdAt" bson:"createdAt"`
}

func (o *Offer) ToTokenId() token.Id {
	return token.Id{ChainId: o.ChainId, ContractAddress: o.ContractAddress, TokenId: o.TokenId}
}

func (o *Offer) AmountBig() *big.Int {
	return domain.MustBigInt(o.Amount)
}

func New(id token.Id, offerer domain.Address, amount *big.Int, createdAt time.Time) (*Offer, error) {
	if offerer.IsEmpty() {
		return nil, domain.ErrZeroAddress
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, domain.ErrZeroAmount
	}
	return &Offer{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
		Offerer:         offerer.ToLower(),
		Amount:          amount.String(),
		CreatedAt:       createdAt,
	}, nil
}

type FindAllOptions struct {
	ChainId         *domain.ChainId
	ContractAddress *domain.Address
	TokenId         *domain.TokenId
	Offerer         *domain.Address
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

func WithToken(id token.Id) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &id.ChainId
		options.ContractAddress = id.ContractAddress.ToLowerPtr()
		options.TokenId = &id.TokenId
		return nil
	}
}

func WithOfferer(offerer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offerer = offerer.ToLowerPtr()
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

// Repo owns offer records. At most one active offer may exist per
// (token, offerer) pair; Add maps the unique-index violation to
// domain.ErrDuplicateOffer.
type Repo interface {
	Add(ctx ctx.Ctx, o *Offer) (Id, error)
	FindOne(ctx ctx.Ctx, id Id) (*Offer, error)
	FindOneByTokenAndOfferer(ctx ctx.Ctx, id token.Id, offerer domain.Address) (*Offer, error)
	TryFindOneByTokenAndOfferer(ctx ctx.Ctx, id token.Id, offerer domain.Address) (*Offer, bool, error)
	Remove(ctx ctx.Ctx, id Id) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Offer, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}
