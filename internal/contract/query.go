package contract

import (
	"context"

	"github.com/mkarimov/boxoffice/internal/model"
)

// CheckAvailability reports whether a seat can currently be reserved.
// It requires an open sale and a known seat; clients are expected to
// call it before attaching value to a Reserve.
func (b *BoxOffice) CheckAvailability(ctx context.Context, call Context, seat model.Seat) (bool, error) {
	phase, _, err := b.phase(ctx, call)
	if err != nil {
		return false, err
	}
	if phase != PhaseOpen {
		return false, ErrSaleNotOpen
	}
	tickets, err := b.state.Tickets(ctx)
	if err != nil {
		return false, err
	}
	i := findTicket(tickets, seat)
	if i < 0 {
		return false, ErrSeatUnknown
	}
	return tickets[i].Available(), nil
}

// Reservation is the answer to CheckReservation.
type Reservation struct {
	OwnsTicket bool   `json:"owns_ticket"` // whether the address holds the seat
	CustomerID string `json:"customer_id"` // recorded identifier, empty unless held by the address
}

// CheckReservation reports whether the given address holds the seat's
// ticket.  Unlike availability it works in any phase, so a buyer can
// verify a purchase after the sale closes.  The customer identifier
// is only disclosed to a matching holder query.
func (b *BoxOffice) CheckReservation(ctx context.Context, seat model.Seat, holder model.Address) (Reservation, error) {
	if holder.IsZero() {
		return Reservation{}, ErrZeroAddress
	}
	tickets, err := b.state.Tickets(ctx)
	if err != nil {
		return Reservation{}, err
	}
	i := findTicket(tickets, seat)
	if i < 0 {
		return Reservation{}, ErrSeatUnknown
	}
	if tickets[i].Owner != holder {
		return Reservation{}, nil
	}
	return Reservation{OwnsTicket: true, CustomerID: tickets[i].CustomerID}, nil
}

// Status returns a read-only snapshot of the sale configuration and
// the derived phase at the invocation height.
func (b *BoxOffice) Status(ctx context.Context, call Context) (model.SaleStatus, error) {
	end, err := b.state.EndOfSale(ctx)
	if err != nil {
		return model.SaleStatus{}, err
	}
	fee, err := b.state.ReleaseFee(ctx)
	if err != nil {
		return model.SaleStatus{}, err
	}
	blocks, err := b.state.NoRefundBlocks(ctx)
	if err != nil {
		return model.SaleStatus{}, err
	}
	return model.SaleStatus{
		Phase:          string(phaseOf(end, call.Height)),
		Height:         call.Height,
		EndOfSale:      end,
		ReleaseFee:     fee,
		NoRefundBlocks: blocks,
	}, nil
}

// Tickets exposes the ticket ledger for read-only listing endpoints.
// Mutation stays inside the operation methods.
func (b *BoxOffice) Tickets(ctx context.Context) ([]model.Ticket, error) {
	return b.state.Tickets(ctx)
}
