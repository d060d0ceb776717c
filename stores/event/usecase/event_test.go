package usecase

import (
	"testing"

	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain/event"
	"github.com/minterra/marketapi/domain/mocks"
)

func TestFindAllPassesThrough(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewEventRepo(t)
	u := NewEventUseCase(repo)

	evs := []*event.Event{{Type: event.TypeListingCreated}, {Type: event.TypeListingSold}}
	repo.On("FindAll", tmock.Anything).Return(evs, nil).Once()

	got, err := u.FindAll(c)
	require.NoError(t, err)
	require.Equal(t, evs, got)
}

func TestFindAllError(t *testing.T) {
	c := ctx.Background()
	repo := mocks.NewEventRepo(t)
	u := NewEventUseCase(repo)

	repo.On("FindAll", tmock.Anything).Return(nil, xerrors.New("mongo down")).Once()

	_, err := u.FindAll(c)
	require.Error(t, err)
}
