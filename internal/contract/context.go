package contract

import (
	"context"

	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/storage"
)

// Context is the host-supplied invocation context.  The adapter
// builds one per call from the authenticated caller, the ledger
// height at that moment, and the value attached to the message.  The
// core never reaches for globals to learn any of these.
type Context struct {
	Caller        model.Address // authenticated sender of the invocation
	Height        uint64        // ledger height the invocation executes at
	AttachedValue uint64        // value units carried by the message
}

// Bank is the value-transfer primitive of the host ledger.  Transfers
// always move value out of the contract's escrow account; depositing
// the attached value into escrow is the adapter's job before the core
// runs.  Implementations must be transactional with the state writes
// of the same invocation so a hard abort undoes both.
type Bank interface {
	Transfer(ctx context.Context, to model.Address, amount uint64) error
}

// BoxOffice is the contract instance: the state machine bound to its
// storage and bank collaborators.  Invocations are strictly
// serialized by the host; the type holds no mutable fields of its own
// and needs no locking.
type BoxOffice struct {
	state *storage.State
	bank  Bank
}

// New binds the state machine to its collaborators.  A fresh
// BoxOffice is cheap; the service builds one per invocation around
// the invocation's transaction.
func New(state *storage.State, bank Bank) *BoxOffice {
	return &BoxOffice{state: state, bank: bank}
}

// refund sends amount back to the caller.  Zero amounts are skipped
// so rejection branches can refund unconditionally.
func (b *BoxOffice) refund(ctx context.Context, to model.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return b.bank.Transfer(ctx, to, amount)
}
