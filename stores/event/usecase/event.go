package usecase

import (
	bCtx "github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain/event"
)

type eventUseCaseImpl struct {
	repo event.Repo
}

func NewEventUseCase(repo event.Repo) event.UseCase {
	return &eventUseCaseImpl{repo: repo}
}

func (u *eventUseCaseImpl) FindAll(ctx bCtx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	res, err := u.repo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}
