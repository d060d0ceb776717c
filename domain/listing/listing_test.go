package listing

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/token"
)

var (
	testToken = token.Id{ChainId: 1, ContractAddress: "0xabc", TokenId: "7"}
	seller    = domain.Address("0x5566")
	t0        = time.Unix(1_650_000_000, 0)
)

func TestNewFixedPriceValidation(t *testing.T) {
	req := require.New(t)

	_, err := NewFixedPrice(testToken, seller, big.NewInt(0), t0, 0)
	req.ErrorIs(err, domain.ErrZeroAmount)

	l, err := NewFixedPrice(testToken, seller, big.NewInt(100), t0, 0)
	req.NoError(err)
	req.Equal(KindFixedPrice, l.Kind)
	req.Equal("100", l.FixedPrice.Price)
	req.Nil(l.DutchAuction)
	req.Nil(l.EnglishAuction)
}

func TestNewDutchAuctionValidation(t *testing.T) {
	cases := []struct {
		desc     string
		starting int64
		ending   int64
		duration int64
		expErr   error
	}{
		{desc: "zero ending price", starting: 100, ending: 0, duration: 60, expErr: domain.ErrZeroAmount},
		{desc: "starting below ending", starting: 10, ending: 20, duration: 60, expErr: domain.ErrInvalidPriceRange},
		{desc: "starting equals ending", starting: 20, ending: 20, duration: 60, expErr: domain.ErrInvalidPriceRange},
		{desc: "zero duration", starting: 100, ending: 10, duration: 0, expErr: domain.ErrInvalidDuration},
		{desc: "ok", starting: 100, ending: 10, duration: 60},
	}
	for _, c := range cases {
		_, err := NewDutchAuction(testToken, seller, big.NewInt(c.starting), big.NewInt(c.ending), c.duration, t0, 0)
		if c.expErr != nil {
			require.ErrorIs(t, err, c.expErr, c.desc)
		} else {
			require.NoError(t, err, c.desc)
		}
	}
}

func TestNewEnglishAuctionValidation(t *testing.T) {
	req := require.New(t)

	_, err := NewEnglishAuction(testToken, seller, big.NewInt(0), nil, 60, t0, 0)
	req.ErrorIs(err, domain.ErrZeroAmount)

	_, err = NewEnglishAuction(testToken, seller, big.NewInt(10), big.NewInt(10), 60, t0, 0)
	req.ErrorIs(err, domain.ErrInvalidBuyoutPrice)

	// zero buyout means no buyout
	l, err := NewEnglishAuction(testToken, seller, big.NewInt(10), nil, 60, t0, 0)
	req.NoError(err)
	req.Equal("0", l.EnglishAuction.BuyoutPrice)

	l, err = NewEnglishAuction(testToken, seller, big.NewInt(10), big.NewInt(30), 60, t0, 0)
	req.NoError(err)
	req.Equal("30", l.EnglishAuction.BuyoutPrice)
}

func TestDutchBuyPriceInterpolation(t *testing.T) {
	req := require.New(t)

	l, err := NewDutchAuction(testToken, seller, big.NewInt(1000), big.NewInt(200), 100, t0, 0)
	req.NoError(err)

	req.Equal(big.NewInt(1000), l.BuyPrice(t0))
	req.Equal(big.NewInt(600), l.BuyPrice(t0.Add(50*time.Second)))
	req.Equal(big.NewInt(200), l.BuyPrice(t0.Add(100*time.Second)))
	// clamped once the duration has fully elapsed
	req.Equal(big.NewInt(200), l.BuyPrice(t0.Add(500*time.Second)))
}

func TestDutchBuyPriceMonotonic(t *testing.T) {
	req := require.New(t)

	l, err := NewDutchAuction(testToken, seller, big.NewInt(997), big.NewInt(13), 3600, t0, 0)
	req.NoError(err)

	prev := l.BuyPrice(t0)
	req.Equal("997", prev.String())
	for elapsed := int64(1); elapsed <= 3700; elapsed += 7 {
		cur := l.BuyPrice(t0.Add(time.Duration(elapsed) * time.Second))
		req.True(cur.Cmp(prev) <= 0, "price increased at elapsed=%d", elapsed)
		req.True(cur.Cmp(big.NewInt(13)) >= 0, "price fell below ending at elapsed=%d", elapsed)
		prev = cur
	}
	req.Equal("13", prev.String())
}

func TestEndTimePauseAdjusted(t *testing.T) {
	req := require.New(t)

	// created while the marketplace had accumulated 40s of paused time
	l, err := NewEnglishAuction(testToken, seller, big.NewInt(10), nil, 100, t0, 40)
	req.NoError(err)

	// no pause since creation
	req.Equal(t0.Add(100*time.Second), l.EndTime(40))
	// 20 more paused seconds extend the deadline by exactly 20s
	req.Equal(t0.Add(120*time.Second), l.EndTime(60))

	req.False(l.Expired(t0.Add(110*time.Second), 60))
	req.True(l.Expired(t0.Add(120*time.Second), 60))
	req.True(l.Expired(t0.Add(125*time.Second), 60))
}

func TestMinNextBid(t *testing.T) {
	req := require.New(t)

	l, err := NewEnglishAuction(testToken, seller, big.NewInt(10), nil, 100, t0, 0)
	req.NoError(err)

	// no standing bid: starting price
	req.Equal(big.NewInt(10), l.MinNextBid(100))
	req.False(l.HasBid())

	l.EnglishAuction.HighestBid = "10"
	l.EnglishAuction.HighestBidder = "0x1111"
	req.True(l.HasBid())
	// 10% over 10 -> 11
	req.Equal(big.NewInt(11), l.MinNextBid(100))

	l.EnglishAuction.HighestBid = "1005"
	// rounding toward zero: 1005 * 100 / 1000 = 100
	req.Equal(big.NewInt(1105), l.MinNextBid(100))
}
