package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/event"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) event.Repo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Insert(ctx ctx.Ctx, e *event.Event) error {
	if err := im.q.Insert(ctx, domain.TableEvents, e); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *eventRepoImpl) FindAll(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("event.GetFindAllOptions failed")
		return nil, err
	}

	query := bson.M{}
	if options.Type != nil {
		query["type"] = *options.Type
	}
	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}
	if options.ContractAddress != nil {
		query["contractAddress"] = *options.ContractAddress
	}
	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}
	if options.Actor != nil {
		query["actor"] = *options.Actor
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*event.Event{}
	if err := im.q.Search(ctx, domain.TableEvents, offset, limit, "-timestamp", query, &res); err != nil {
		ctx.WithFields(log.Fields{"err": err, "query": query}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
