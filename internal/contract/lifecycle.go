package contract

import (
	"context"

	"github.com/mkarimov/boxoffice/internal/model"
)

// Phase is the sale lifecycle state derived from EndOfSale and the
// current ledger height.  It is never stored; it is recomputed from
// those two numbers on every invocation.
type Phase string

const (
	// PhaseInactive: no sale is running (EndOfSale == 0).
	PhaseInactive Phase = "INACTIVE"
	// PhaseOpen: a sale is running and the close height has not been
	// reached.
	PhaseOpen Phase = "OPEN"
	// PhaseAwaitingClose: the close height has passed; only EndSale
	// can move the contract back to Inactive.
	PhaseAwaitingClose Phase = "AWAITING_CLOSE"
)

// phaseOf derives the lifecycle phase.  EndOfSale == 0 always means
// Inactive, regardless of height.
func phaseOf(endOfSale, height uint64) Phase {
	switch {
	case endOfSale == 0:
		return PhaseInactive
	case height < endOfSale:
		return PhaseOpen
	default:
		return PhaseAwaitingClose
	}
}

// phase loads EndOfSale and derives the phase for this invocation.
func (b *BoxOffice) phase(ctx context.Context, call Context) (Phase, uint64, error) {
	end, err := b.state.EndOfSale(ctx)
	if err != nil {
		return "", 0, err
	}
	return phaseOf(end, call.Height), end, nil
}

// requireOwner aborts unless the caller is the contract owner.
func (b *BoxOffice) requireOwner(ctx context.Context, call Context) error {
	owner, err := b.state.Owner(ctx)
	if err != nil {
		return err
	}
	if call.Caller != owner {
		return ErrNotOwner
	}
	return nil
}

// BeginSale opens a sale: it prices every ticket and sets the close
// height.  Callable by the owner only, and only while no sale is
// running.  The price list must cover the catalog exactly (one entry
// per seat, matched by seat identity, no extras, no repeats) or the
// whole invocation aborts with ErrBadPriceList.  Emits a ShowOpened
// notification.
func (b *BoxOffice) BeginSale(ctx context.Context, call Context, prices []model.SeatPrice, show model.ShowInfo) ([]Notification, error) {
	if err := b.requireOwner(ctx, call); err != nil {
		return nil, err
	}
	phase, _, err := b.phase(ctx, call)
	if err != nil {
		return nil, err
	}
	if phase != PhaseInactive {
		return nil, ErrSaleActive
	}
	if show.EndHeight <= call.Height {
		return nil, ErrBadEndHeight
	}

	tickets, err := b.state.Tickets(ctx)
	if err != nil {
		return nil, err
	}
	priced, err := matchPrices(tickets, prices)
	if err != nil {
		return nil, err
	}
	if err := b.state.SetTickets(ctx, priced); err != nil {
		return nil, err
	}
	if err := b.state.SetEndOfSale(ctx, show.EndHeight); err != nil {
		return nil, err
	}
	return []Notification{ShowOpened{
		Name:      show.Name,
		Organiser: show.Organiser,
		Time:      show.Time,
		EndHeight: show.EndHeight,
	}}, nil
}

// matchPrices applies a price list to the ticket ledger by seat
// identity.  Every catalog seat must appear exactly once; a missing
// seat, a repeated seat or an unknown seat rejects the whole list.
func matchPrices(tickets []model.Ticket, prices []model.SeatPrice) ([]model.Ticket, error) {
	if len(prices) != len(tickets) {
		return nil, ErrBadPriceList
	}
	bySeat := make(map[model.Seat]uint64, len(prices))
	for _, p := range prices {
		if _, dup := bySeat[p.Seat]; dup {
			return nil, ErrBadPriceList
		}
		bySeat[p.Seat] = p.Price
	}
	out := make([]model.Ticket, len(tickets))
	for i, t := range tickets {
		price, ok := bySeat[t.Seat]
		if !ok {
			return nil, ErrBadPriceList
		}
		t.Price = price
		out[i] = t
	}
	return out, nil
}

// EndSale closes a finished sale: every ticket is reset to unowned,
// unpriced and without a customer identifier, and EndOfSale returns
// to zero.  Callable by the owner only, and only once the close
// height has passed (AwaitingClose).  Calling it while the sale is
// still open or when no sale exists aborts.
func (b *BoxOffice) EndSale(ctx context.Context, call Context) error {
	if err := b.requireOwner(ctx, call); err != nil {
		return err
	}
	phase, _, err := b.phase(ctx, call)
	if err != nil {
		return err
	}
	switch phase {
	case PhaseOpen:
		return ErrSaleStillOpen
	case PhaseInactive:
		return ErrNoActiveSale
	}

	tickets, err := b.state.Tickets(ctx)
	if err != nil {
		return err
	}
	for i := range tickets {
		tickets[i].Reset()
	}
	if err := b.state.SetTickets(ctx, tickets); err != nil {
		return err
	}
	return b.state.SetEndOfSale(ctx, 0)
}
