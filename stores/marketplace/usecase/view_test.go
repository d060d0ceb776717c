package usecase

import (
	"math/big"
	"testing"
	"time"

	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/listing"
	"github.com/minterra/marketapi/domain/marketplace"
	"github.com/minterra/marketapi/domain/mocks"
	"github.com/minterra/marketapi/domain/offer"
	"github.com/minterra/marketapi/domain/token"
)

type viewMocks struct {
	listingRepo *mocks.ListingRepo
	offerRepo   *mocks.OfferRepo
	paramsRepo  *mocks.MarketplaceParamsRepo
	pauseUC     *mocks.PauseUseCase
}

func newViewUseCase(t *testing.T) (viewMocks, marketplace.UseCase) {
	m := viewMocks{
		listingRepo: mocks.NewListingRepo(t),
		offerRepo:   mocks.NewOfferRepo(t),
		paramsRepo:  mocks.NewMarketplaceParamsRepo(t),
		pauseUC:     mocks.NewPauseUseCase(t),
	}
	u := NewMarketplaceUseCase(&MarketplaceUseCaseCfg{
		ListingRepo: m.listingRepo,
		OfferRepo:   m.offerRepo,
		ParamsRepo:  m.paramsRepo,
		Registry:    mocks.NewTokenRepo(t),
		Vault:       mocks.NewPaymentVault(t),
		RewardUC:    mocks.NewRewardUseCase(t),
		PauseUC:     m.pauseUC,
		EventRepo:   mocks.NewEventRepo(t),
		Owner:       "0xowner",
		Escrow:      "0xmarket",
	})
	return m, u
}

func fakeClock(t *testing.T, unix int64) {
	orig := timeNow
	timeNow = func() time.Time { return time.Unix(unix, 0) }
	t.Cleanup(func() { timeNow = orig })
}

func mustDutch(t *testing.T, createdAt int64) *listing.Listing {
	id := token.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "1"}
	l, err := listing.NewDutchAuction(id, "0xalice", big.NewInt(1000), big.NewInt(100), 900, time.Unix(createdAt, 0), 0)
	require.NoError(t, err)
	l.Id = 1
	return l
}

func TestGetBuyPriceTracksDutchDecline(t *testing.T) {
	c := ctx.Background()
	m, u := newViewUseCase(t)

	l := mustDutch(t, 1700000000)
	m.listingRepo.On("FindOne", tmock.Anything, listing.Id(1)).Return(l, nil)
	m.pauseUC.On("Snapshot", tmock.Anything).Return(int64(0), nil)

	fakeClock(t, 1700000000+450)
	price, err := u.GetBuyPrice(c, 1)
	require.NoError(t, err)
	require.Equal(t, int64(550), price.Int64())

	fakeClock(t, 1700000000+900)
	_, err = u.GetBuyPrice(c, 1)
	require.ErrorIs(t, err, domain.ErrAuctionEnded)
}

func TestGetBuyPriceShiftsWithPause(t *testing.T) {
	c := ctx.Background()
	m, u := newViewUseCase(t)

	// 40 paused seconds push the deadline out; the price ramp itself has
	// already bottomed out at the ending price.
	l := mustDutch(t, 1700000000)
	m.listingRepo.On("FindOne", tmock.Anything, listing.Id(1)).Return(l, nil)
	m.pauseUC.On("Snapshot", tmock.Anything).Return(int64(40), nil)

	fakeClock(t, 1700000000+920)
	price, err := u.GetBuyPrice(c, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), price.Int64())
}

func TestGetBuyPriceEnglishBuyout(t *testing.T) {
	c := ctx.Background()
	m, u := newViewUseCase(t)

	id := token.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "1"}
	l, err := listing.NewEnglishAuction(id, "0xalice", big.NewInt(100), big.NewInt(500), 900, time.Unix(1700000000, 0), 0)
	require.NoError(t, err)
	l.Id = 2
	m.listingRepo.On("FindOne", tmock.Anything, listing.Id(2)).Return(l, nil)
	m.pauseUC.On("Snapshot", tmock.Anything).Return(int64(0), nil)

	fakeClock(t, 1700000000+10)
	price, err := u.GetBuyPrice(c, 2)
	require.NoError(t, err)
	require.Equal(t, int64(500), price.Int64())
}

func TestViewsDelegateToRepos(t *testing.T) {
	c := ctx.Background()
	m, u := newViewUseCase(t)

	l := mustDutch(t, 1700000000)
	m.listingRepo.On("FindOne", tmock.Anything, listing.Id(1)).Return(l, nil).Once()
	got, err := u.GetListing(c, 1)
	require.NoError(t, err)
	require.Equal(t, l, got)

	m.listingRepo.On("FindAll", tmock.Anything).Return([]*listing.Listing{l}, nil).Once()
	ls, err := u.GetListings(c)
	require.NoError(t, err)
	require.Len(t, ls, 1)

	o := &offer.Offer{Id: 9, Offerer: "0xbob", Amount: "30"}
	m.offerRepo.On("FindAll", tmock.Anything).Return([]*offer.Offer{o}, nil).Once()
	os, err := u.GetOffers(c)
	require.NoError(t, err)
	require.Equal(t, offer.Id(9), os[0].Id)

	params := &marketplace.Params{MintFee: "2", DeveloperWallet: "0xdev"}
	m.paramsRepo.On("Get", tmock.Anything).Return(params, nil).Once()
	p, err := u.GetParams(c)
	require.NoError(t, err)
	require.Equal(t, params, p)
}

func TestAdminOpsRejectNonOwner(t *testing.T) {
	c := ctx.Background()
	_, u := newViewUseCase(t)

	require.ErrorIs(t, u.Pause(c, "0xmallory"), domain.ErrNotOwner)
	require.ErrorIs(t, u.Unpause(c, "0xmallory"), domain.ErrNotOwner)
	_, err := u.UpdateParams(c, "0xmallory", &marketplace.ParamsPatchable{})
	require.ErrorIs(t, err, domain.ErrNotOwner)
}
