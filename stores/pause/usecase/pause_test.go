package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tmock "github.com/stretchr/testify/mock"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/mocks"
	"github.com/minterra/marketapi/domain/pause"
)

func fakeClock(t *testing.T, unix int64) {
	orig := timeNow
	timeNow = func() time.Time { return time.Unix(unix, 0) }
	t.Cleanup(func() { timeNow = orig })
}

func TestPauseAndUnpauseAccumulate(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewPauseRepo(t)
	u := NewPauseUseCase(repo)

	fakeClock(t, 100)
	repo.On("Get", tmock.Anything).Return(&pause.Metrics{}, nil).Once()
	repo.On("Set", tmock.Anything, &pause.Metrics{LastPausedAt: 100}).Return(nil).Once()
	require.NoError(t, u.Pause(c))

	// 40 seconds later the pause lifts and folds into the total
	fakeClock(t, 140)
	repo.On("Get", tmock.Anything).Return(&pause.Metrics{LastPausedAt: 100}, nil).Once()
	repo.On("Set", tmock.Anything, &pause.Metrics{TotalPausedSeconds: 40}).Return(nil).Once()
	require.NoError(t, u.Unpause(c))
}

func TestPauseWhilePaused(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewPauseRepo(t)
	u := NewPauseUseCase(repo)

	repo.On("Get", tmock.Anything).Return(&pause.Metrics{LastPausedAt: 100}, nil).Once()
	require.Equal(t, domain.ErrAlreadyPaused, u.Pause(c))
}

func TestUnpauseWhileRunning(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewPauseRepo(t)
	u := NewPauseUseCase(repo)

	repo.On("Get", tmock.Anything).Return(&pause.Metrics{TotalPausedSeconds: 7}, nil).Once()
	require.Equal(t, domain.ErrNotPaused, u.Unpause(c))
}

func TestSnapshotCountsRunningPause(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewPauseRepo(t)
	u := NewPauseUseCase(repo)

	fakeClock(t, 160)
	repo.On("Get", tmock.Anything).Return(&pause.Metrics{LastPausedAt: 150, TotalPausedSeconds: 40}, nil).Once()
	total, err := u.Snapshot(c)
	require.NoError(t, err)
	require.Equal(t, int64(50), total)

	repo.On("Get", tmock.Anything).Return(&pause.Metrics{TotalPausedSeconds: 40}, nil).Once()
	total, err = u.Snapshot(c)
	require.NoError(t, err)
	require.Equal(t, int64(40), total)
}

func TestIsPaused(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewPauseRepo(t)
	u := NewPauseUseCase(repo)

	repo.On("Get", tmock.Anything).Return(&pause.Metrics{LastPausedAt: 5}, nil).Once()
	paused, err := u.IsPaused(c)
	require.NoError(t, err)
	require.True(t, paused)
}
