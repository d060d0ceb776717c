package usecase

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	bCtx "github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/event"
	"github.com/minterra/marketapi/domain/marketplace"
	"github.com/minterra/marketapi/domain/payment"
	"github.com/minterra/marketapi/domain/reward"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
)

var timeNow = time.Now

type TokenUseCaseCfg struct {
	Q          query.Mongo
	TokenRepo  token.Repo
	ParamsRepo marketplace.ParamsRepo
	RewardUC   reward.UseCase
	Vault      payment.Vault
	EventRepo  event.Repo

	// the managed collection
	ChainId         domain.ChainId
	ContractAddress domain.Address
}

type tokenUseCaseImpl struct {
	q          query.Mongo
	tokenRepo  token.Repo
	paramsRepo marketplace.ParamsRepo
	rewardUC   reward.UseCase
	vault      payment.Vault
	eventRepo  event.Repo

	chainId         domain.ChainId
	contractAddress domain.Address

	// serializes mint transactions
	mu sync.Mutex
}

func NewTokenUseCase(cfg *TokenUseCaseCfg) token.UseCase {
	return &tokenUseCaseImpl{
		q:               cfg.Q,
		tokenRepo:       cfg.TokenRepo,
		paramsRepo:      cfg.ParamsRepo,
		rewardUC:        cfg.RewardUC,
		vault:           cfg.Vault,
		eventRepo:       cfg.EventRepo,
		chainId:         cfg.ChainId,
		contractAddress: cfg.ContractAddress.ToLower(),
	}
}

// Mint creates count tokens for minter, charging mintFee per token. The shared
// reward cut of the fee is spread over the post-mint supply; the remainder is
// paid straight to the developer wallet.
func (u *tokenUseCaseImpl) Mint(ctx bCtx.Ctx, minter domain.Address, count int64, payment *big.Int) (*token.MintResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if minter.IsEmpty() {
		return nil, domain.ErrZeroAddress
	}
	if count <= 0 {
		return nil, domain.ErrZeroAmount
	}

	res := &token.MintResult{}
	err := u.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		params, err := u.paramsRepo.Get(c)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("paramsRepo.Get failed")
			return err
		}
		if count > params.MaxMintPerTx {
			return domain.ErrTooManyMints
		}

		supply, err := u.tokenRepo.TotalSupply(c, u.chainId, u.contractAddress)
		if err != nil {
			c.WithFields(log.Fields{"err": err}).Error("tokenRepo.TotalSupply failed")
			return err
		}
		if supply+count > params.MaxSupply {
			return domain.ErrSupplyCapExceeded
		}

		fee := new(big.Int).Mul(params.MintFeeBig(), big.NewInt(count))
		if payment == nil || payment.Cmp(fee) != 0 {
			return domain.ErrInsufficientPayment
		}
		res.Fee = fee

		if err := u.vault.Deposit(c, minter, fee); err != nil {
			c.WithFields(log.Fields{"err": err}).Error("vault.Deposit failed")
			return err
		}

		now := timeNow()
		for i := int64(0); i < count; i++ {
			id := token.Id{
				ChainId:         u.chainId,
				ContractAddress: u.contractAddress,
				TokenId:         domain.TokenId(fmt.Sprint(supply + i + 1)),
			}
			if err := u.tokenRepo.Insert(c, &token.Token{
				ChainId:         id.ChainId,
				ContractAddress: id.ContractAddress,
				TokenId:         id.TokenId,
				Owner:           minter,
				Minter:          minter,
				MintedAt:        now,
			}); err != nil {
				c.WithFields(log.Fields{"err": err, "id": id}).Error("tokenRepo.Insert failed")
				return err
			}
			if err := u.rewardUC.InitializeToken(c, id); err != nil {
				c.WithFields(log.Fields{"err": err, "id": id}).Error("rewardUC.InitializeToken failed")
				return err
			}
			res.TokenIds = append(res.TokenIds, id)
		}

		sharedCut := domain.ApplyRate(fee, params.SharedRewardRate)
		developerCut := new(big.Int).Sub(fee, sharedCut)

		if sharedCut.Sign() > 0 {
			if err := u.rewardUC.DepositSharedReward(c, sharedCut); err != nil {
				c.WithFields(log.Fields{"err": err}).Error("rewardUC.DepositSharedReward failed")
				return err
			}
		}
		// the developer wallet is admin-controlled, it gets paid directly
		// like on the sale path
		if developerCut.Sign() > 0 {
			if err := u.vault.Payout(c, params.DeveloperWallet, developerCut); err != nil {
				c.WithFields(log.Fields{"err": err}).Error("vault.Payout failed")
				return err
			}
		}

		if err := u.eventRepo.Insert(c, &event.Event{
			Type:            event.TypeMinted,
			Timestamp:       now,
			ChainId:         u.chainId,
			ContractAddress: u.contractAddress,
			Actor:           minter.ToLower(),
			Amount:          fee.String(),
			Detail: map[string]interface{}{
				"count":        count,
				"sharedCut":    sharedCut.String(),
				"developerCut": developerCut.String(),
			},
		}); err != nil {
			c.WithFields(log.Fields{"err": err}).Error("eventRepo.Insert failed")
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (u *tokenUseCaseImpl) Get(ctx bCtx.Ctx, id token.Id) (*token.Token, error) {
	t, err := u.tokenRepo.FindOne(ctx, id)
	if err != nil {
		if err != domain.ErrNoSuchToken {
			ctx.WithFields(log.Fields{"err": err, "id": id}).Error("tokenRepo.FindOne failed")
		}
		return nil, err
	}
	return t, nil
}

func (u *tokenUseCaseImpl) TokensOfOwner(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, owner domain.Address) ([]*token.Token, error) {
	tokens, err := u.tokenRepo.TokensOfOwner(ctx, chainId, contract, owner)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("tokenRepo.TokensOfOwner failed")
		return nil, err
	}
	return tokens, nil
}
