package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/reward"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// the global ledger is a single well-known document
var ledgerSelector = bson.M{"name": "rewardLedger"}

type ledgerDoc struct {
	Name          string `bson:"name"`
	reward.Ledger `bson:",inline"`
}

type rewardRepoImpl struct {
	q query.Mongo
}

func NewRewardRepo(q query.Mongo) reward.Repo {
	return &rewardRepoImpl{q}
}

func (im *rewardRepoImpl) GetLedger(ctx ctx.Ctx) (*reward.Ledger, error) {
	doc := &ledgerDoc{}
	if err := im.q.FindOne(ctx, domain.TableRewardLedgers, ledgerSelector, doc); err != nil {
		if err == query.ErrNotFound {
			return &reward.Ledger{
				SharedRewardPotential: "0",
				TotalReceived:         "0",
				TotalReleased:         "0",
			}, nil
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.FindOne")
		return nil, err
	}
	return &doc.Ledger, nil
}

func (im *rewardRepoImpl) SetLedger(ctx ctx.Ctx, l *reward.Ledger) error {
	doc := &ledgerDoc{Name: "rewardLedger", Ledger: *l}
	if err := im.q.Upsert(ctx, domain.TableRewardLedgers, ledgerSelector, doc); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func makeSnapshotSelector(id token.Id) bson.M {
	id = id.ToLower()
	return bson.M{
		"chainId":         id.ChainId,
		"contractAddress": id.ContractAddress,
		"tokenId":         id.TokenId,
	}
}

func (im *rewardRepoImpl) GetSnapshot(ctx ctx.Ctx, id token.Id) (*reward.TokenSnapshot, error) {
	res := &reward.TokenSnapshot{}
	if err := im.q.FindOne(ctx, domain.TableRewardTokenSnapshots, makeSnapshotSelector(id), res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *rewardRepoImpl) SetSnapshot(ctx ctx.Ctx, s *reward.TokenSnapshot) error {
	copy := &reward.TokenSnapshot{
		ChainId:              s.ChainId,
		ContractAddress:      s.ContractAddress.ToLower(),
		TokenId:              s.TokenId,
		LastClaimedPotential: s.LastClaimedPotential,
	}
	selector := makeSnapshotSelector(token.Id{
		ChainId:         s.ChainId,
		ContractAddress: s.ContractAddress,
		TokenId:         s.TokenId,
	})
	if err := im.q.Upsert(ctx, domain.TableRewardTokenSnapshots, selector, copy); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

func (im *rewardRepoImpl) GetBalance(ctx ctx.Ctx, addr domain.Address) (*reward.Balance, error) {
	res := &reward.Balance{}
	if err := im.q.FindOne(ctx, domain.TableRewardBalances, bson.M{"address": addr.ToLower()}, res); err != nil {
		if err == query.ErrNotFound {
			return &reward.Balance{Address: addr.ToLower(), UnclaimedPersonal: "0"}, nil
		}
		ctx.WithFields(log.Fields{"err": err, "address": addr}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *rewardRepoImpl) SetBalance(ctx ctx.Ctx, b *reward.Balance) error {
	copy := &reward.Balance{
		Address:           b.Address.ToLower(),
		UnclaimedPersonal: b.UnclaimedPersonal,
	}
	if err := im.q.Upsert(ctx, domain.TableRewardBalances, bson.M{"address": copy.Address}, copy); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
