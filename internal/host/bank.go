package host

import (
	"context"

	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/repository"
	"github.com/mkarimov/boxoffice/internal/storage"
)

// LedgerBank implements contract.Bank over the accounts table.  It is
// bound to the invocation's transaction, so every transfer commits or
// rolls back together with the contract state writes.
type LedgerBank struct {
	q      storage.Querier
	escrow model.Address
}

// NewLedgerBank binds a bank to a transaction and the contract's
// escrow address.
func NewLedgerBank(q storage.Querier, escrow model.Address) *LedgerBank {
	return &LedgerBank{q: q, escrow: escrow}
}

// Transfer moves value out of escrow to a recipient account.  This is
// the primitive the core calls for refunds and release payouts.
func (b *LedgerBank) Transfer(ctx context.Context, to model.Address, amount uint64) error {
	return repository.MoveBalance(ctx, b.q, b.escrow, to, amount)
}

// Deposit moves the attached value from the caller into escrow before
// the core runs.  Failing here (insufficient account balance) means
// the invocation never reaches the contract.
func (b *LedgerBank) Deposit(ctx context.Context, from model.Address, amount uint64) error {
	return repository.MoveBalance(ctx, b.q, from, b.escrow, amount)
}

// RecordingBank is the test double for contract.Bank: it records
// transfers in order instead of touching a database.
type RecordingBank struct {
	Transfers []Transferred
}

// Transferred is one recorded Transfer call.
type Transferred struct {
	To     model.Address
	Amount uint64
}

func (r *RecordingBank) Transfer(_ context.Context, to model.Address, amount uint64) error {
	r.Transfers = append(r.Transfers, Transferred{To: to, Amount: amount})
	return nil
}

// Total sums all recorded transfers to the given address.
func (r *RecordingBank) Total(to model.Address) uint64 {
	var sum uint64
	for _, t := range r.Transfers {
		if t.To == to {
			sum += t.Amount
		}
	}
	return sum
}
