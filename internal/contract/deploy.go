package contract

import (
	"context"

	"github.com/mkarimov/boxoffice/internal/model"
)

// Deploy constructs the venue contract: it fixes the seat catalog,
// records the caller as the immutable owner and creates one
// zero-valued ticket per seat.  The catalog can never be resized or
// renamed afterwards.  Emits a VenueCreated notification.
//
// Hard aborts: ErrAlreadyDeployed when an owner already exists,
// ErrZeroAddress for an anonymous caller, ErrBadCatalog for an empty
// catalog, a sentinel seat or a duplicated seat identity.
func (b *BoxOffice) Deploy(ctx context.Context, call Context, seats []model.Seat, venueName string) ([]Notification, error) {
	if call.Caller.IsZero() {
		return nil, ErrZeroAddress
	}
	deployed, err := b.state.Deployed(ctx)
	if err != nil {
		return nil, err
	}
	if deployed {
		return nil, ErrAlreadyDeployed
	}
	if len(seats) == 0 {
		return nil, ErrBadCatalog
	}
	seen := make(map[model.Seat]struct{}, len(seats))
	for _, s := range seats {
		if s.IsSentinel() {
			return nil, ErrBadCatalog
		}
		if _, dup := seen[s]; dup {
			return nil, ErrBadCatalog
		}
		seen[s] = struct{}{}
	}

	tickets := make([]model.Ticket, len(seats))
	for i, s := range seats {
		tickets[i] = model.Ticket{Seat: s}
	}
	if err := b.state.SetOwner(ctx, call.Caller); err != nil {
		return nil, err
	}
	if err := b.state.SetTickets(ctx, tickets); err != nil {
		return nil, err
	}
	return []Notification{VenueCreated{Name: venueName}}, nil
}
