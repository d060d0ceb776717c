package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/offer"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const counterName = "offers"

type counter struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

type offerRepoImpl struct {
	q query.Mongo
}

func NewOfferRepo(q query.Mongo) offer.Repo {
	return &offerRepoImpl{q}
}

func (im *offerRepoImpl) makeQuery(opts ...offer.FindAllOptionsFunc) (bson.M, error) {
	options, err := offer.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if options.ContractAddress != nil {
		query["contractAddress"] = *options.ContractAddress
	}

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	if options.Offerer != nil {
		query["offerer"] = *options.Offerer
	}

	return query, nil
}

// Add allocates the next sequence id and inserts the offer. One active offer
// per (token, offerer) pair.
func (im *offerRepoImpl) Add(ctx ctx.Ctx, o *offer.Offer) (offer.Id, error) {
	if _, found, err := im.TryFindOneByTokenAndOfferer(ctx, o.ToTokenId(), o.Offerer); err != nil {
		return 0, err
	} else if found {
		return 0, domain.ErrDuplicateOffer
	}

	cnt := &counter{}
	if err := im.q.Increment(ctx, domain.TableCounters, bson.M{"name": counterName}, cnt, "seq", int64(1)); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Increment")
		return 0, err
	}

	o.Id = offer.Id(cnt.Seq)
	if err := im.q.Insert(ctx, domain.TableOffers, o); err != nil {
		if err == query.ErrDuplicateKey {
			return 0, domain.ErrDuplicateOffer
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Insert")
		return 0, err
	}
	return o.Id, nil
}

func (im *offerRepoImpl) FindOne(ctx ctx.Ctx, id offer.Id) (*offer.Offer, error) {
	res := &offer.Offer{}
	if err := im.q.FindOne(ctx, domain.TableOffers, bson.M{"id": id}, res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNoSuchOffer
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *offerRepoImpl) FindOneByTokenAndOfferer(ctx ctx.Ctx, id token.Id, offerer domain.Address) (*offer.Offer, error) {
	id = id.ToLower()
	res := &offer.Offer{}
	selector := bson.M{
		"chainId":         id.ChainId,
		"contractAddress": id.ContractAddress,
		"tokenId":         id.TokenId,
		"offerer":         offerer.ToLower(),
	}
	if err := im.q.FindOne(ctx, domain.TableOffers, selector, res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNoSuchOffer
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *offerRepoImpl) TryFindOneByTokenAndOfferer(ctx ctx.Ctx, id token.Id, offerer domain.Address) (*offer.Offer, bool, error) {
	res, err := im.FindOneByTokenAndOfferer(ctx, id, offerer)
	if err == domain.ErrNoSuchOffer {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

func (im *offerRepoImpl) Remove(ctx ctx.Ctx, id offer.Id) error {
	if err := im.q.Remove(ctx, domain.TableOffers, bson.M{"id": id}); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNoSuchOffer
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.Remove")
		return err
	}
	return nil
}

func (im *offerRepoImpl) FindAll(ctx ctx.Ctx, opts ...offer.FindAllOptionsFunc) ([]*offer.Offer, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := offer.GetFindAllOptions(opts...)
	offset, limit, sort := 0, 0, "id"
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*offer.Offer{}
	if err := im.q.Search(ctx, domain.TableOffers, offset, limit, sort, query, &res); err != nil {
		ctx.WithFields(log.Fields{"err": err, "query": query}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *offerRepoImpl) Count(ctx ctx.Ctx, opts ...offer.FindAllOptionsFunc) (int, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableOffers, query)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "query": query}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
