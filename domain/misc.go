package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)

	// RateScale is the denominator for fixed-point percentage math, 0.1% per unit.
	RateScale = big.NewInt(1000)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", xerrors.Errorf("invalid id %s", i)
	}
	return fmt.Sprintf("%064x", id), nil
}

type BlockNumber uint64

type TxHash string

// ToBigInt parses a base-10 amount string. Empty strings count as zero so
// documents may omit zero-valued fields.
func ToBigInt(num string) (*big.Int, error) {
	if num == "" {
		return new(big.Int), nil
	}
	bn, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	return bn, nil
}

// MustBigInt is ToBigInt for trusted, repository-validated amounts.
func MustBigInt(num string) *big.Int {
	bn, err := ToBigInt(num)
	if err != nil {
		panic(err)
	}
	return bn
}

// ApplyRate computes amount * rate / RateScale rounding toward zero.
func ApplyRate(amount *big.Int, rate int64) *big.Int {
	res := new(big.Int).Mul(amount, big.NewInt(rate))
	return res.Div(res, RateScale)
}
