package usecase

import (
	"time"

	bCtx "github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/pause"
)

var timeNow = time.Now

type pauseUseCaseImpl struct {
	repo pause.Repo
}

func NewPauseUseCase(repo pause.Repo) pause.UseCase {
	return &pauseUseCaseImpl{repo: repo}
}

func (u *pauseUseCaseImpl) Pause(ctx bCtx.Ctx) error {
	m, err := u.repo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.Get failed")
		return err
	}
	if m.IsPaused() {
		return domain.ErrAlreadyPaused
	}
	m.LastPausedAt = timeNow().Unix()
	if err := u.repo.Set(ctx, m); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.Set failed")
		return err
	}
	return nil
}

func (u *pauseUseCaseImpl) Unpause(ctx bCtx.Ctx) error {
	m, err := u.repo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.Get failed")
		return err
	}
	if !m.IsPaused() {
		return domain.ErrNotPaused
	}
	m.TotalPausedSeconds += timeNow().Unix() - m.LastPausedAt
	m.LastPausedAt = 0
	if err := u.repo.Set(ctx, m); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.Set failed")
		return err
	}
	return nil
}

func (u *pauseUseCaseImpl) IsPaused(ctx bCtx.Ctx) (bool, error) {
	m, err := u.repo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.Get failed")
		return false, err
	}
	return m.IsPaused(), nil
}

// Snapshot counts a still running pause up to now, so deadline math sees the
// current pause as already elapsed.
func (u *pauseUseCaseImpl) Snapshot(ctx bCtx.Ctx) (int64, error) {
	m, err := u.repo.Get(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("repo.Get failed")
		return 0, err
	}
	total := m.TotalPausedSeconds
	if m.IsPaused() {
		total += timeNow().Unix() - m.LastPausedAt
	}
	return total, nil
}
