package usecase

import (
	"math/big"
	"sync"
	"time"

	bCtx "github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/event"
	"github.com/minterra/marketapi/domain/payment"
	"github.com/minterra/marketapi/domain/reward"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
)

var timeNow = time.Now

type RewardUseCaseCfg struct {
	Q         query.Mongo
	Repo      reward.Repo
	Registry  token.Registry
	Vault     payment.Vault
	EventRepo event.Repo

	// the managed collection
	ChainId         domain.ChainId
	ContractAddress domain.Address
}

type rewardUseCaseImpl struct {
	q         query.Mongo
	repo      reward.Repo
	registry  token.Registry
	vault     payment.Vault
	eventRepo event.Repo

	chainId         domain.ChainId
	contractAddress domain.Address

	// serializes release transactions; deposits run inside the caller's
	// transaction and take no lock here
	mu sync.Mutex
}

func NewRewardUseCase(cfg *RewardUseCaseCfg) reward.UseCase {
	return &rewardUseCaseImpl{
		q:               cfg.Q,
		repo:            cfg.Repo,
		registry:        cfg.Registry,
		vault:           cfg.Vault,
		eventRepo:       cfg.EventRepo,
		chainId:         cfg.ChainId,
		contractAddress: cfg.ContractAddress.ToLower(),
	}
}

// InitializeToken pins the token's baseline at the current global potential so
// it only earns from deposits made after it exists. The baseline is pinned
// exactly once; a repeated call must not reset an accrued delta.
func (u *rewardUseCaseImpl) InitializeToken(ctx bCtx.Ctx, id token.Id) error {
	if _, err := u.repo.GetSnapshot(ctx, id); err == nil {
		return nil
	} else if err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("repo.GetSnapshot failed")
		return err
	}
	ledger, err := u.repo.GetLedger(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.GetLedger failed")
		return err
	}
	id = id.ToLower()
	return u.repo.SetSnapshot(ctx, &reward.TokenSnapshot{
		ChainId:              id.ChainId,
		ContractAddress:      id.ContractAddress,
		TokenId:              id.TokenId,
		LastClaimedPotential: ledger.SharedRewardPotential,
	})
}

// DepositSharedReward spreads payment over the current supply. The integer
// division remainder never enters the potential and stays in the pool as dust.
func (u *rewardUseCaseImpl) DepositSharedReward(ctx bCtx.Ctx, payment *big.Int) error {
	if payment == nil || payment.Sign() <= 0 {
		return domain.ErrZeroAmount
	}
	supply, err := u.registry.TotalSupply(ctx, u.chainId, u.contractAddress)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("registry.TotalSupply failed")
		return err
	}
	if supply == 0 {
		return domain.ErrZeroSupply
	}

	ledger, err := u.repo.GetLedger(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.GetLedger failed")
		return err
	}

	perToken := new(big.Int).Div(payment, big.NewInt(supply))
	potential := new(big.Int).Add(ledger.PotentialBig(), perToken)
	received := new(big.Int).Add(domain.MustBigInt(ledger.TotalReceived), payment)

	ledger.SharedRewardPotential = potential.String()
	ledger.TotalReceived = received.String()
	if err := u.repo.SetLedger(ctx, ledger); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.SetLedger failed")
		return err
	}

	return u.insertEvent(ctx, event.TypeRewardDeposited, "", payment, map[string]interface{}{
		"shared":   true,
		"perToken": perToken.String(),
	})
}

func (u *rewardUseCaseImpl) DepositPersonalReward(ctx bCtx.Ctx, recipient domain.Address, payment *big.Int) error {
	if payment == nil || payment.Sign() <= 0 {
		return domain.ErrZeroAmount
	}
	if recipient.IsEmpty() {
		return domain.ErrZeroAddress
	}

	balance, err := u.repo.GetBalance(ctx, recipient)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.GetBalance failed")
		return err
	}
	unclaimed := new(big.Int).Add(domain.MustBigInt(balance.UnclaimedPersonal), payment)
	balance.UnclaimedPersonal = unclaimed.String()
	if err := u.repo.SetBalance(ctx, balance); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.SetBalance failed")
		return err
	}

	ledger, err := u.repo.GetLedger(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.GetLedger failed")
		return err
	}
	received := new(big.Int).Add(domain.MustBigInt(ledger.TotalReceived), payment)
	ledger.TotalReceived = received.String()
	if err := u.repo.SetLedger(ctx, ledger); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.SetLedger failed")
		return err
	}

	return u.insertEvent(ctx, event.TypeRewardDeposited, recipient, payment, map[string]interface{}{
		"shared": false,
	})
}

// Release pays out everything the caller can claim right now: the personal
// balance plus the shared-reward delta of every owned token. Claimed deltas
// advance the token snapshots so nothing can be claimed twice.
func (u *rewardUseCaseImpl) Release(ctx bCtx.Ctx, caller domain.Address) (*big.Int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if caller.IsEmpty() {
		return nil, domain.ErrZeroAddress
	}

	total := new(big.Int)
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		ledger, err := u.repo.GetLedger(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("repo.GetLedger failed")
			return err
		}
		potential := ledger.PotentialBig()

		balance, err := u.repo.GetBalance(c, caller)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("repo.GetBalance failed")
			return err
		}
		total.Add(total, domain.MustBigInt(balance.UnclaimedPersonal))

		tokens, err := u.registry.TokensOfOwner(c, u.chainId, u.contractAddress, caller)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("registry.TokensOfOwner failed")
			return err
		}
		for _, t := range tokens {
			snapshot, err := u.repo.GetSnapshot(c, t.ToId())
			if err != nil {
				c.WithFields(log.Fields{"err": err, "id": t.ToId()}).Error("repo.GetSnapshot failed")
				return err
			}
			delta := new(big.Int).Sub(potential, domain.MustBigInt(snapshot.LastClaimedPotential))
			if delta.Sign() <= 0 {
				continue
			}
			total.Add(total, delta)
			snapshot.LastClaimedPotential = ledger.SharedRewardPotential
			if err := u.repo.SetSnapshot(c, snapshot); err != nil {
				c.WithFields(log.Fields{"err": err}).Error("repo.SetSnapshot failed")
				return err
			}
		}

		if total.Sign() == 0 {
			return nil
		}

		balance.UnclaimedPersonal = "0"
		if err := u.repo.SetBalance(c, balance); err != nil {
			c.WithFields(log.Fields{"err": err}).Error("repo.SetBalance failed")
			return err
		}

		released := new(big.Int).Add(domain.MustBigInt(ledger.TotalReleased), total)
		ledger.TotalReleased = released.String()
		if err := u.repo.SetLedger(c, ledger); err != nil {
			c.WithFields(log.Fields{"err": err}).Error("repo.SetLedger failed")
			return err
		}

		if err := u.vault.Payout(c, caller, total); err != nil {
			c.WithFields(log.Fields{"err": err, "caller": caller}).Error("vault.Payout failed")
			return err
		}

		return u.insertEvent(c, event.TypeRewardReleased, caller, total, nil)
	})
	if err != nil {
		return nil, err
	}
	return total, nil
}

// CalculateAvailableRewards is Release without the writes.
func (u *rewardUseCaseImpl) CalculateAvailableRewards(ctx bCtx.Ctx, addr domain.Address) (*big.Int, error) {
	ledger, err := u.repo.GetLedger(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.GetLedger failed")
		return nil, err
	}
	potential := ledger.PotentialBig()

	balance, err := u.repo.GetBalance(ctx, addr)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.GetBalance failed")
		return nil, err
	}
	total := domain.MustBigInt(balance.UnclaimedPersonal)

	tokens, err := u.registry.TokensOfOwner(ctx, u.chainId, u.contractAddress, addr)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("registry.TokensOfOwner failed")
		return nil, err
	}
	for _, t := range tokens {
		snapshot, err := u.repo.GetSnapshot(ctx, t.ToId())
		if err != nil {
			ctx.WithFields(log.Fields{"err": err, "id": t.ToId()}).Error("repo.GetSnapshot failed")
			return nil, err
		}
		delta := new(big.Int).Sub(potential, domain.MustBigInt(snapshot.LastClaimedPotential))
		if delta.Sign() > 0 {
			total.Add(total, delta)
		}
	}
	return total, nil
}

func (u *rewardUseCaseImpl) insertEvent(ctx bCtx.Ctx, typ event.Type, addr domain.Address, amount *big.Int, detail map[string]interface{}) error {
	e := &event.Event{
		Type:            typ,
		Timestamp:       timeNow(),
		ChainId:         u.chainId,
		ContractAddress: u.contractAddress,
		Actor:           addr.ToLower(),
		Amount:          amount.String(),
		Detail:          detail,
	}
	if err := u.eventRepo.Insert(ctx, e); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("eventRepo.Insert failed")
		return err
	}
	return nil
}
