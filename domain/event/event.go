package event

import (
	"time"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
)

type Type string

const (
	TypeListingCreated   Type = "listingCreated"
	TypeListingCancelled Type = "listingCancelled"
	TypeListingSold      Type = "listingSold"
	TypeBidPlaced        Type = "bidPlaced"
	TypeBidRefunded      Type = "bidRefunded"
	TypeAuctionConcluded Type = "auctionConcluded"
	TypeOfferCreated     Type = "offerCreated"
	TypeOfferCancelled   Type = "offerCancelled"
	TypeOfferAccepted    Type = "offerAccepted"
	TypeOfferRejected    Type = "offerRejected"
	TypePaused           Type = "paused"
	TypeUnpaused         Type = "unpaused"
	TypeMinted           Type = "minted"
	TypeRewardDeposited  Type = "rewardDeposited"
	TypeRewardReleased   Type = "rewardReleased"
	TypeParamsChanged    Type = "paramsChanged"
)

// Event is one observable state transition, appended for external indexers.
type Event struct {
	Type            Type           `json:"type" bson:"type"`
	Timestamp       time.Time      `json:"timestamp" bson:"timestamp"`
	ChainId         domain.ChainId `json:"chainId,omitempty" bson:"chainId,omitempty"`
	ContractAddress domain.Address `json:"contractAddress,omitempty" bson:"contractAddress,omitempty"`
	TokenId         domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	ListingId       uint64         `json:"listingId,omitempty" bson:"listingId,omitempty"`
	OfferId         uint64         `json:"offerId,omitempty" bson:"offerId,omitempty"`
	// Actor is the address whose call produced the transition.
	Actor domain.Address `json:"actor,omitempty" bson:"actor,omitempty"`
	// Counterparty is the other side of a transfer, when one exists.
	Counterparty domain.Address `json:"counterparty,omitempty" bson:"counterparty,omitempty"`
	Amount       string         `json:"amount,omitempty" bson:"amount,omitempty"`
	// Detail carries transition-specific terms (listing kind, changed
	// parameter name, and the like).
	Detail map[string]interface{} `json:"detail,omitempty" bson:"detail,omitempty"`
}

type FindAllOptions struct {
	Type            *Type
	ChainId         *domain.ChainId
	ContractAddress *domain.Address
	TokenId         *domain.TokenId
	Actor           *domain.Address
	Offset          *int32
	Limit           *int32
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

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithActor(actor domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Actor = actor.ToLowerPtr()
		return nil
	}
}

func WithContractAddress(contract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ContractAddress = contract.ToLowerPtr()
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenId = &tokenId
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

type Repo interface {
	Insert(ctx ctx.Ctx, e *Event) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}

type UseCase interface {
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
}
