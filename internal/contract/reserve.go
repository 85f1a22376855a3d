package contract

import (
	"context"

	"github.com/mkarimov/boxoffice/internal/model"
)

// findTicket resolves a seat identity to its position in the ticket
// ledger with a linear scan.  Catalogs are small; an index structure
// would buy nothing.  Returns -1 when the seat is unknown or the
// sentinel.
func findTicket(tickets []model.Ticket, seat model.Seat) int {
	if seat.IsSentinel() {
		return -1
	}
	for i, t := range tickets {
		if t.Seat == seat {
			return i
		}
	}
	return -1
}

// Reserve attempts to buy the ticket for the given seat with the
// value attached to the invocation.  Two failure classes apply:
//
//   - Hard aborts (error returned, invocation rolled back): the sale
//     is not open, the caller is anonymous, or the seat does not
//     exist.  The attached value is refunded before the abort so the
//     refund is visible to the host even when it discards the rest.
//
//   - Soft failures (false, nil): the seat is already taken or the
//     payment does not cover the price.  The attached value is
//     refunded in full and the invocation commits, so the caller can
//     retry with a different seat or amount.
//
// On success the caller becomes the ticket owner, the customer
// identifier is recorded, and any overpayment is returned.  In every
// branch refund + applied == AttachedValue, with applied either zero
// or exactly the ticket price.
func (b *BoxOffice) Reserve(ctx context.Context, call Context, seat model.Seat, customerID string) (bool, error) {
	if call.Caller.IsZero() {
		if err := b.refund(ctx, call.Caller, call.AttachedValue); err != nil {
			return false, err
		}
		return false, ErrZeroAddress
	}
	phase, _, err := b.phase(ctx, call)
	if err != nil {
		return false, err
	}
	if phase != PhaseOpen {
		if err := b.refund(ctx, call.Caller, call.AttachedValue); err != nil {
			return false, err
		}
		return false, ErrSaleNotOpen
	}

	tickets, err := b.state.Tickets(ctx)
	if err != nil {
		return false, err
	}
	i := findTicket(tickets, seat)
	if i < 0 {
		if err := b.refund(ctx, call.Caller, call.AttachedValue); err != nil {
			return false, err
		}
		return false, ErrSeatUnknown
	}

	if !tickets[i].Available() {
		// Ordinary race: someone got there first.
		if err := b.refund(ctx, call.Caller, call.AttachedValue); err != nil {
			return false, err
		}
		return false, nil
	}
	if call.AttachedValue < tickets[i].Price {
		// Underpaid: no partial reservation, money goes straight back.
		if err := b.refund(ctx, call.Caller, call.AttachedValue); err != nil {
			return false, err
		}
		return false, nil
	}

	excess := call.AttachedValue - tickets[i].Price
	tickets[i].Owner = call.Caller
	tickets[i].CustomerID = customerID
	// State is written before the excess leaves the contract so a
	// reentrant transfer cannot observe the seat as still free.
	if err := b.state.SetTickets(ctx, tickets); err != nil {
		return false, err
	}
	if err := b.refund(ctx, call.Caller, excess); err != nil {
		return false, err
	}
	return true, nil
}
