package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/listing"
	"github.com/minterra/marketapi/domain/token"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

const counterName = "listings"

type counter struct {
	Name string `bson:"name"`
	Seq  int64  `bson:"seq"`
}

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
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

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.Kind != nil {
		query["kind"] = *options.Kind
	}

	return query, nil
}

// Add allocates the next 48-bit sequence id and inserts the listing. The
// token-keyed unique index keeps a token from carrying two active listings.
func (im *listingRepoImpl) Add(ctx ctx.Ctx, l *listing.Listing) (listing.Id, error) {
	if _, found, err := im.TryFindOneByToken(ctx, l.ToTokenId()); err != nil {
		return 0, err
	} else if found {
		return 0, domain.ErrAlreadyListed
	}

	cnt := &counter{}
	if err := im.q.Increment(ctx, domain.TableCounters, bson.M{"name": counterName}, cnt, "seq", int64(1)); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Increment")
		return 0, err
	}

	l.Id = listing.Id(cnt.Seq) & listing.IdMask
	if err := im.q.Insert(ctx, domain.TableListings, l); err != nil {
		if err == query.ErrDuplicateKey {
			return 0, domain.ErrAlreadyListed
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Insert")
		return 0, err
	}
	return l.Id, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(ctx, domain.TableListings, bson.M{"id": id}, res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNoSuchListing
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) FindOneByToken(ctx ctx.Ctx, id token.Id) (*listing.Listing, error) {
	id = id.ToLower()
	res := &listing.Listing{}
	selector := bson.M{
		"chainId":         id.ChainId,
		"contractAddress": id.ContractAddress,
		"tokenId":         id.TokenId,
	}
	if err := im.q.FindOne(ctx, domain.TableListings, selector, res); err != nil {
		if err == query.ErrNotFound {
			return nil, domain.ErrNoSuchListing
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) TryFindOneByToken(ctx ctx.Ctx, id token.Id) (*listing.Listing, bool, error) {
	res, err := im.FindOneByToken(ctx, id)
	if err == domain.ErrNoSuchListing {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return res, true, nil
}

func (im *listingRepoImpl) Update(ctx ctx.Ctx, id listing.Id, patchable listing.Patchable) error {
	if err := im.q.Patch(ctx, domain.TableListings, bson.M{"id": id}, patchable); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNoSuchListing
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.Patch")
		return err
	}
	return nil
}

func (im *listingRepoImpl) Remove(ctx ctx.Ctx, id listing.Id) error {
	if err := im.q.Remove(ctx, domain.TableListings, bson.M{"id": id}); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNoSuchListing
		}
		ctx.WithFields(log.Fields{"err": err, "id": id}).Error("failed to q.Remove")
		return err
	}
	return nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := listing.GetFindAllOptions(opts...)
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

	res := []*listing.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, offset, limit, sort, query, &res); err != nil {
		ctx.WithFields(log.Fields{"err": err, "query": query}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableListings, query)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "query": query}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
