package usecase

import (
	"math/big"
	"testing"

	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/mocks"
	"github.com/minterra/marketapi/domain/reward"
	"github.com/minterra/marketapi/domain/token"
)

type rewardMocks struct {
	repo     *mocks.RewardRepo
	registry *mocks.TokenRepo
}

func newMockedUseCase(t *testing.T) (rewardMocks, reward.UseCase) {
	m := rewardMocks{
		repo:     mocks.NewRewardRepo(t),
		registry: mocks.NewTokenRepo(t),
	}
	u := NewRewardUseCase(&RewardUseCaseCfg{
		Repo:            m.repo,
		Registry:        m.registry,
		Vault:           mocks.NewPaymentVault(t),
		EventRepo:       mocks.NewEventRepo(t),
		ChainId:         1,
		ContractAddress: "0xcontract",
	})
	return m, u
}

func TestAvailableSumsPersonalAndSharedDeltas(t *testing.T) {
	c := ctx.Background()
	m, u := newMockedUseCase(t)

	m.repo.On("GetLedger", tmock.Anything).
		Return(&reward.Ledger{SharedRewardPotential: "7", TotalReceived: "0", TotalReleased: "0"}, nil).Once()
	m.repo.On("GetBalance", tmock.Anything, domain.Address("0xalice")).
		Return(&reward.Balance{Address: "0xalice", UnclaimedPersonal: "5"}, nil).Once()
	m.registry.On("TokensOfOwner", tmock.Anything, domain.ChainId(1), domain.Address("0xcontract"), domain.Address("0xalice")).
		Return([]*token.Token{
			{ChainId: 1, ContractAddress: "0xcontract", TokenId: "1", Owner: "0xalice"},
			{ChainId: 1, ContractAddress: "0xcontract", TokenId: "2", Owner: "0xalice"},
		}, nil).Once()
	m.repo.On("GetSnapshot", tmock.Anything, token.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "1"}).
		Return(&reward.TokenSnapshot{LastClaimedPotential: "3"}, nil).Once()
	// token 2 was minted after the latest shared deposit, nothing accrued yet
	m.repo.On("GetSnapshot", tmock.Anything, token.Id{ChainId: 1, ContractAddress: "0xcontract", TokenId: "2"}).
		Return(&reward.TokenSnapshot{LastClaimedPotential: "7"}, nil).Once()

	total, err := u.CalculateAvailableRewards(c, "0xalice")
	require.NoError(t, err)
	require.Equal(t, int64(9), total.Int64())
}

func TestDepositSharedRewardGuards(t *testing.T) {
	c := ctx.Background()
	m, u := newMockedUseCase(t)

	require.ErrorIs(t, u.DepositSharedReward(c, nil), domain.ErrZeroAmount)
	require.ErrorIs(t, u.DepositSharedReward(c, big.NewInt(0)), domain.ErrZeroAmount)

	m.registry.On("TotalSupply", tmock.Anything, domain.ChainId(1), domain.Address("0xcontract")).
		Return(int64(0), nil).Once()
	require.ErrorIs(t, u.DepositSharedReward(c, big.NewInt(10)), domain.ErrZeroSupply)
}

func TestDepositPersonalRewardGuards(t *testing.T) {
	c := ctx.Background()
	_, u := newMockedUseCase(t)

	require.ErrorIs(t, u.DepositPersonalReward(c, "0xalice", nil), domain.ErrZeroAmount)
	require.ErrorIs(t, u.DepositPersonalReward(c, "", big.NewInt(10)), domain.ErrZeroAddress)
}
