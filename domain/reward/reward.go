package reward

import (
	"math/big"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/token"
)

// Ledger is the single global accounting document. SharedRewardPotential is
// the monotonically non-decreasing per-token entitlement accumulator;
// TotalReceived/TotalReleased exist so conservation of funds stays checkable.
type Ledger struct {
	SharedRewardPotential string `json:"sharedRewardPotential" bson:"sharedRewardPotential"`
	TotalReceived         string `json:"totalReceived" bson:"totalReceived"`
	TotalReleased         string `json:"totalReleased" bson:"totalReleased"`
}

func (l *Ledger) PotentialBig() *big.Int {
	return domain.MustBigInt(l.SharedRewardPotential)
}

// TokenSnapshot pins a token's last claimed potential. A token's unclaimed
// shared reward is the delta between the global potential and this value.
type TokenSnapshot struct {
	ChainId              domain.ChainId `json:"chainId" bson:"chainId"`
	ContractAddress      domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId              domain.TokenId `json:"tokenId" bson:"tokenId"`
	LastClaimedPotential string         `json:"lastClaimedPotential" bson:"lastClaimedPotential"`
}

// Balance is an address's pull-payment personal reward balance.
type Balance struct {
	Address           domain.Address `json:"address" bson:"address"`
	UnclaimedPersonal string         `json:"unclaimedPersonal" bson:"unclaimedPersonal"`
}

type Repo interface {
	GetLedger(ctx ctx.Ctx) (*Ledger, error)
	SetLedger(ctx ctx.Ctx, l *Ledger) error

	GetSnapshot(ctx ctx.Ctx, id token.Id) (*TokenSnapshot, error)
	SetSnapshot(ctx ctx.Ctx, s *TokenSnapshot) error

	GetBalance(ctx ctx.Ctx, addr domain.Address) (*Balance, error)
	SetBalance(ctx ctx.Ctx, b *Balance) error
}

// UseCase is the pull-based reward ledger. Deposits are guaranteed-success
// bookkeeping; the only external transfer happens in Release, initiated by
// the recipient.
type UseCase interface {
	// InitializeToken snapshots the current global potential as the token's
	// baseline. Only the mint path calls this, once per token.
	InitializeToken(ctx ctx.Ctx, id token.Id) error

	// DepositSharedReward spreads payment over the current supply, raising
	// the global potential by payment/supply (integer division; the
	// remainder is accepted dust).
	DepositSharedReward(ctx ctx.Ctx, payment *big.Int) error

	DepositPersonalReward(ctx ctx.Ctx, recipient domain.Address, payment *big.Int) error

	// Release pays out the caller's personal balance plus the shared-reward
	// delta of every token the caller currently owns, and returns the total.
	Release(ctx ctx.Ctx, caller domain.Address) (*big.Int, error)

	// CalculateAvailableRewards is the read-only equivalent of Release.
	CalculateAvailableRewards(ctx ctx.Ctx, addr domain.Address) (*big.Int, error)
}
