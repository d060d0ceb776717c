package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type tokenRepoImpl struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) token.Repo {
	return &tokenRepoImpl{q}
}

func makeSelector(id token.Id) bson.M {
	id = id.ToLower()
	return bson.M{
		"chainId":         id.ChainId,
		"contractAddress": id.ContractAddress,
		"tokenId":         id.TokenId,
	}
}

func (im *tokenRepoImpl) findOne(ctx ctx.Ctx, id token.Id) (*token.Token, error) {
	res := &token.Token{}
	if err := im.q.FindOne(ctx, domain.TableTokens, makeSelector(id), res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNoSuchToken
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *tokenRepoImpl) FindOne(ctx ctx.Ctx, id token.Id) (*token.Token, error) {
	return im.findOne(ctx, id)
}

func (im *tokenRepoImpl) Insert(ctx ctx.Ctx, t *token.Token) error {
	copy := &token.Token{
		ChainId:         t.ChainId,
		ContractAddress: t.ContractAddress.ToLower(),
		TokenId:         t.TokenId,
		Owner:           t.Owner.ToLower(),
		Minter:          t.Minter.ToLower(),
		MintedAt:        t.MintedAt,
	}
	if err := im.q.Insert(ctx, domain.TableTokens, copy); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *tokenRepoImpl) OwnerOf(ctx ctx.Ctx, id token.Id) (domain.Address, error) {
	t, err := im.findOne(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Owner, nil
}

func (im *tokenRepoImpl) MinterOf(ctx ctx.Ctx, id token.Id) (domain.Address, error) {
	t, err := im.findOne(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Minter, nil
}

func (im *tokenRepoImpl) Exists(ctx ctx.Ctx, id token.Id) (bool, error) {
	_, err := im.findOne(ctx, id)
	if err == domain.ErrNoSuchToken {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (im *tokenRepoImpl) TotalSupply(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address) (int64, error) {
	selector := bson.M{
		"chainId":         chainId,
		"contractAddress": contract.ToLower(),
	}
	cnt, err := im.q.Count(ctx, domain.TableTokens, selector)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "selector": selector}).Error("failed to q.Count")
		return 0, err
	}
	return int64(cnt), nil
}

func (im *tokenRepoImpl) TokensOfOwner(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address, owner domain.Address) ([]*token.Token, error) {
	selector := bson.M{
		"chainId":         chainId,
		"contractAddress": contract.ToLower(),
		"owner":           owner.ToLower(),
	}
	res := []*token.Token{}
	if err := im.q.Search(ctx, domain.TableTokens, 0, 0, "tokenId", selector, &res); err != nil {
		ctx.WithFields(log.Fields{"err": err, "selector": selector}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

// Transfer moves ownership. The caller must pass the current owner as from;
// anything else means the custody assumptions upstream are broken.
func (im *tokenRepoImpl) Transfer(ctx ctx.Ctx, id token.Id, from, to domain.Address) error {
	if to.IsEmpty() {
		return domain.ErrTransferRejected
	}
	t, err := im.findOne(ctx, id)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(from) {
		return domain.ErrNotOwner
	}
	update := bson.M{"owner": to.ToLower()}
	if err := im.q.Patch(ctx, domain.TableTokens, makeSelector(id), update); err != nil {
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.Patch")
		return err
	}
	return nil
}
