package pause

import (
	"github.com/minterra/marketapi/base/ctx"
)

// Metrics tracks how long the marketplace has been paused in total, so
// auction deadlines can be shifted by time lost to pauses.
type Metrics struct {
	// LastPausedAt is a unix timestamp, non-zero only while paused.
	LastPausedAt int64 `json:"lastPausedAt" bson:"lastPausedAt"`
	// TotalPausedSeconds accumulates across all completed pause cycles.
	TotalPausedSeconds int64 `json:"totalPausedSeconds" bson:"totalPausedSeconds"`
}

func (m *Metrics) IsPaused() bool {
	return m.LastPausedAt != 0
}

type Repo interface {
	Get(ctx ctx.Ctx) (*Metrics, error)
	Set(ctx ctx.Ctx, m *Metrics) error
}

// UseCase is the two-state pause machine. Pause fails with
// domain.ErrAlreadyPaused, Unpause with domain.ErrNotPaused; Unpause folds
// the elapsed interval into the cumulative total.
type UseCase interface {
	Pause(ctx ctx.Ctx) error
	Unpause(ctx ctx.Ctx) error
	IsPaused(ctx ctx.Ctx) (bool, error)
	// Snapshot returns the cumulative paused seconds, counting a currently
	// running pause up to now.
	Snapshot(ctx ctx.Ctx) (int64, error)
}
