package contract

import (
	"context"
	"math"

	"github.com/mkarimov/boxoffice/internal/model"
)

// SetTicketReleaseFee rewrites the fee withheld when a holder
// voluntarily releases a ticket.  Owner-only, and only while no sale
// window is open (Inactive or AwaitingClose); changing the fee under
// buyers mid-sale is not allowed.  The value persists across sales.
// Emits a ReleaseFeeChanged notification.
func (b *BoxOffice) SetTicketReleaseFee(ctx context.Context, call Context, fee uint64) ([]Notification, error) {
	if err := b.requireOwner(ctx, call); err != nil {
		return nil, err
	}
	phase, _, err := b.phase(ctx, call)
	if err != nil {
		return nil, err
	}
	if phase == PhaseOpen {
		return nil, ErrSaleStillOpen
	}
	if err := b.state.SetReleaseFee(ctx, fee); err != nil {
		return nil, err
	}
	return []Notification{ReleaseFeeChanged{Fee: fee}}, nil
}

// SetNoReleaseBlocks rewrites the no-refund window: the number of
// blocks before sale close during which release is disallowed.  Same
// gating as SetTicketReleaseFee.  Emits a NoRefundBlocksChanged
// notification.
func (b *BoxOffice) SetNoReleaseBlocks(ctx context.Context, call Context, blocks uint64) ([]Notification, error) {
	if err := b.requireOwner(ctx, call); err != nil {
		return nil, err
	}
	phase, _, err := b.phase(ctx, call)
	if err != nil {
		return nil, err
	}
	if phase == PhaseOpen {
		return nil, ErrSaleStillOpen
	}
	if err := b.state.SetNoRefundBlocks(ctx, blocks); err != nil {
		return nil, err
	}
	return []Notification{NoRefundBlocksChanged{Blocks: blocks}}, nil
}

// ReleaseTicket lets the current holder surrender a ticket for a
// partial refund of price minus the release fee.  The seat goes back
// on sale at its existing price; only EndSale wipes prices.
//
// All rejections here are hard aborts: the sale must be open, the
// remaining window must exceed the configured no-refund buffer
// (height + NoRefundBlocks < EndOfSale), the seat must exist and the
// caller must hold it.  None of these is a state a client should
// "handle"; the request is simply invalid in the current phase.
//
// When price <= fee the holder gets nothing back yet still loses the
// ticket.  That fee floor is deliberate upstream behavior and is kept
// as-is rather than rounding the refund up to zero-fee.
func (b *BoxOffice) ReleaseTicket(ctx context.Context, call Context, seat model.Seat) error {
	if call.Caller.IsZero() {
		return ErrZeroAddress
	}
	phase, endOfSale, err := b.phase(ctx, call)
	if err != nil {
		return err
	}
	if phase != PhaseOpen {
		return ErrSaleNotOpen
	}
	noRefund, err := b.state.NoRefundBlocks(ctx)
	if err != nil {
		return err
	}
	// The sum saturates; a wrapped value would let a release through
	// inside an oversized window.
	cutoff := call.Height + noRefund
	if cutoff < call.Height {
		cutoff = math.MaxUint64
	}
	if cutoff >= endOfSale {
		return ErrNoRefundWindow
	}

	tickets, err := b.state.Tickets(ctx)
	if err != nil {
		return err
	}
	i := findTicket(tickets, seat)
	if i < 0 {
		return ErrSeatUnknown
	}
	if tickets[i].Owner != call.Caller {
		return ErrNotTicketHolder
	}

	fee, err := b.state.ReleaseFee(ctx)
	if err != nil {
		return err
	}
	price := tickets[i].Price
	tickets[i].Owner = model.ZeroAddress
	// Ownership is cleared before the refund leaves escrow; a
	// reentrant call sees the seat as free, not half-released.
	if err := b.state.SetTickets(ctx, tickets); err != nil {
		return err
	}
	if price > fee {
		if err := b.bank.Transfer(ctx, call.Caller, price-fee); err != nil {
			return err
		}
	}
	return nil
}
