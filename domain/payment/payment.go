package payment

import (
	"math/big"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/domain"
)

// Vault holds the native funds the marketplace has custody of: attached
// payments on payable operations flow in through Deposit, and Payout moves
// funds out to a wallet. Payout is the failure-prone external transfer; a
// failed payout must abort the whole operation.
type Vault interface {
	Deposit(ctx ctx.Ctx, from domain.Address, amount *big.Int) error
	Payout(ctx ctx.Ctx, to domain.Address, amount *big.Int) error
	// PoolBalance reports the funds currently held in escrow.
	PoolBalance(ctx ctx.Ctx) (*big.Int, error)
}
