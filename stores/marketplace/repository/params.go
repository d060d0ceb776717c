package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/marketplace"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// the params live in a single well-known document
var selector = bson.M{"name": "marketplaceParams"}

type paramsDoc struct {
	Name               string `bson:"name"`
	marketplace.Params `bson:",inline"`
}

type paramsRepoImpl struct {
	q        query.Mongo
	defaults marketplace.Params
}

func NewParamsRepo(q query.Mongo, defaults marketplace.Params) marketplace.ParamsRepo {
	return &paramsRepoImpl{q: q, defaults: defaults}
}

func (im *paramsRepoImpl) Get(ctx ctx.Ctx) (*marketplace.Params, error) {
	doc := &paramsDoc{}
	if err := im.q.FindOne(ctx, domain.TableMarketplaceParams, selector, doc); err != nil {
		if err == query.ErrNotFound {
			defaults := im.defaults
			return &defaults, nil
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.FindOne")
		return nil, err
	}
	return &doc.Params, nil
}

func (im *paramsRepoImpl) Set(ctx ctx.Ctx, p *marketplace.Params) error {
	doc := &paramsDoc{Name: "marketplaceParams", Params: *p}
	if err := im.q.Upsert(ctx, domain.TableMarketplaceParams, selector, doc); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
