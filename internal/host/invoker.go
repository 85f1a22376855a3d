package host

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/storage"
)

// EscrowAddress is the account holding value the contract has
// received but not yet paid out.  It exists only in the simulated
// ledger; on a real chain this would be the contract account itself.
var EscrowAddress = model.Address{0x0b, 0x0f, 0x01}

// Invoker runs contract invocations with the atomicity the core
// assumes of its host ledger: each invocation is one MySQL
// transaction covering the attached-value deposit, the state writes
// and the transfers.  A hard abort from the core rolls everything
// back; soft failures and successes commit.
type Invoker struct {
	db    *sql.DB
	chain *Chain
}

// NewInvoker builds an Invoker over the service database and chain.
func NewInvoker(db *sql.DB, chain *Chain) *Invoker {
	return &Invoker{db: db, chain: chain}
}

// Invoke executes one contract invocation.  The attached value is
// debited from the caller into escrow before fn runs; fn receives the
// invocation context and a BoxOffice bound to the transaction.  Any
// error from fn (or from the deposit) rolls the transaction back and
// is returned unchanged.
func (iv *Invoker) Invoke(ctx context.Context, caller model.Address, attached uint64, fn func(call contract.Context, box *contract.BoxOffice) error) error {
	tx, err := iv.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	bank := NewLedgerBank(tx, EscrowAddress)
	if attached > 0 {
		if err := bank.Deposit(ctx, caller, attached); err != nil {
			return err
		}
	}
	box := contract.New(storage.NewState(storage.NewMySQLKV(tx)), bank)
	call := contract.Context{
		Caller:        caller,
		Height:        iv.chain.Height(),
		AttachedValue: attached,
	}
	if err := fn(call, box); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Query runs a read-only operation outside any transaction.  The
// bank is nil-safe here because queries never move value.
func (iv *Invoker) Query(ctx context.Context, fn func(call contract.Context, box *contract.BoxOffice) error) error {
	box := contract.New(storage.NewState(storage.NewMySQLKV(iv.db)), readOnlyBank{})
	call := contract.Context{Height: iv.chain.Height()}
	return fn(call, box)
}

// Height exposes the chain height for status responses.
func (iv *Invoker) Height() uint64 {
	return iv.chain.Height()
}

// readOnlyBank guards against a query path ever attempting a
// transfer.
type readOnlyBank struct{}

func (readOnlyBank) Transfer(context.Context, model.Address, uint64) error {
	return errReadOnlyInvocation
}

var errReadOnlyInvocation = errors.New("host: transfer attempted in read-only invocation")
