package repository

import (
	"math/big"

	"github.com/minterra/marketapi/base/ctx"
	"github.com/minterra/marketapi/base/log"
	"github.com/minterra/marketapi/domain"
	"github.com/minterra/marketapi/domain/payment"
	"github.com/minterra/marketapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// escrowKey is the document holding the pooled custody funds.
const escrowKey = "escrow"

type balanceDoc struct {
	Name    string `bson:"name"`
	Balance string `bson:"balance"`
}

type vaultRepoImpl struct {
	q query.Mongo
}

func NewVaultRepo(q query.Mongo) payment.Vault {
	return &vaultRepoImpl{q}
}

func (im *vaultRepoImpl) getPool(ctx ctx.Ctx) (*big.Int, error) {
	doc := &balanceDoc{}
	if err := im.q.FindOne(ctx, domain.TableVaultBalances, bson.M{"name": escrowKey}, doc); err != nil {
		if err == query.ErrNotFound {
			return new(big.Int), nil
		}
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.FindOne")
		return nil, err
	}
	return domain.ToBigInt(doc.Balance)
}

func (im *vaultRepoImpl) setPool(ctx ctx.Ctx, balance *big.Int) error {
	doc := &balanceDoc{Name: escrowKey, Balance: balance.String()}
	if err := im.q.Upsert(ctx, domain.TableVaultBalances, bson.M{"name": escrowKey}, doc); err != nil {
		ctx.WithFields(log.Fields{"err": err}).Error("failed to q.Upsert")
		return err
	}
	return nil
}

// Deposit takes custody of an attached payment. The payer is recorded by the
// caller's event, not here; the vault only tracks the pooled total.
func (im *vaultRepoImpl) Deposit(ctx ctx.Ctx, from domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrZeroAmount
	}
	pool, err := im.getPool(ctx)
	if err != nil {
		return err
	}
	return im.setPool(ctx, pool.Add(pool, amount))
}

// Payout releases custody funds to a wallet. Paying more than the pool holds
// means the ledgers disagree with the escrow, so the operation must abort.
func (im *vaultRepoImpl) Payout(ctx ctx.Ctx, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return domain.ErrZeroAmount
	}
	if to.IsEmpty() {
		return domain.ErrTransferRejected
	}
	pool, err := im.getPool(ctx)
	if err != nil {
		return err
	}
	if pool.Cmp(amount) < 0 {
		ctx.WithFields(log.Fields{"pool": pool.String(), "amount": amount.String()}).Error("payout exceeds pool")
		return domain.ErrInsufficientFunds
	}
	return im.setPool(ctx, pool.Sub(pool, amount))
}

func (im *vaultRepoImpl) PoolBalance(ctx ctx.Ctx) (*big.Int, error) {
	return im.getPool(ctx)
}
