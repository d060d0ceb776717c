package token

import (
	"math/big"
	"time"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
)

// Id identifies a token across collections.
type Id struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
}

func (id Id) ToLower() Id {
	id.ContractAddress = id.ContractAddress.ToLower()
	return id
}

// Token is a registry mirror entry for a minted token.
type Token struct {
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner           domain.Address `json:"owner" bson:"owner"`
	Minter          domain.Address `json:"minter" bson:"minter"`
	MintedAt        time.Time      `json:"mintedAt" bson:"mintedAt"`
}

func (t *Token) ToId() Id {
	return Id{ChainId: t.ChainId, ContractAddress: t.ContractAddress, TokenId: t.TokenId}
}

// Registry is the external token contract as the marketplace sees it: an
// ownable, transferable, enumerable token registry with minter lookup.
// Transfer is the failure-prone custody move; an error aborts the whole
// marketplace operation.
type Registry interface {
	OwnerOf(ctx ctx.Ctx, id Id) (domain.Address, error)
	MinterOf(ctx ctx.Ctx, id Id) (domain.Address, error)
	Exists(ctx ctx.Ctx, id Id) (bool, error)
	TotalSupply(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address) (int64, error)
	TokensOfOwner(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address, owner domain.Address) ([]*Token, error)
	Transfer(ctx ctx.Ctx, id Id, from, to domain.Address) error
}

// Repo extends Registry with the lookup and write paths used by minting.
type Repo interface {
	Registry
	FindOne(ctx ctx.Ctx, id Id) (*Token, error)
	Insert(ctx ctx.Ctx, t *Token) error
}

type MintResult struct {
	TokenIds []Id     `json:"tokenIds"`
	Fee      *big.Int `json:"-"`
}

// UseCase mints tokens under the configured supply cap, collecting the mint
// fee and splitting it between the shared reward pool and the developer wallet.
type UseCase interface {
	Mint(ctx ctx.Ctx, minter domain.Address, count int64, payment *big.Int) (*MintResult, error)
	Get(ctx ctx.Ctx, id Id) (*Token, error)
	TokensOfOwner(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address, owner domain.Address) ([]*Token, error)
}
