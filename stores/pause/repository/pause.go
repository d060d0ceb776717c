package repository

import (
	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/pause"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// the metrics live in a single well-known document
var selector = bson.M{"name": "pauseMetrics"}

type pauseDoc struct {
	Name string `bson:"name"`
	pause.Metrics `bson:",inline"`
}

type pauseRepoImpl struct {
	q query.Mongo
}

func NewPauseRepo(q query.Mongo) pause.Repo {
	return &pauseRepoImpl{q}
}

func (im *pauseRepoImpl) Get(ctx ctx.Ctx) (*pause.Metrics, error) {
	doc := &pauseDoc{}
	if err := im.q.FindOne(ctx, domain.TablePauseMetrics, selector, doc); err != nil {
		if err == query.ErrNotFound {
			return &pause.Metrics{}, nil
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.FindOne")
		return nil, err
	}
	return &doc.Metrics, nil
}

func (im *pauseRepoImpl) Set(ctx ctx.Ctx, m *pause.Metrics) error {
	doc := &pauseDoc{Name: "pauseMetrics", Metrics: *m}
	if err := im.q.Upsert(ctx, domain.TablePauseMetrics, selector, doc); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
