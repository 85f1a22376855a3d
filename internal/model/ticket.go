package model

// Ticket is the mutable sale record bound 1:1 to a catalog seat.  The
// ticket array always has the same length and order as the seat
// catalog; position i of the array is forever the ticket for seat i.
//
// Fields:
//  Seat       – the seat identity this ticket belongs to (immutable).
//  Price      – current price in value units; zero before a sale has
//               ever priced the ticket or after EndSale wipes it.
//  Owner      – holder of the ticket; ZeroAddress means available.
//  CustomerID – free-form customer identifier supplied on reserve,
//               e.g. a loyalty number shown at the door.
type Ticket struct {
	Seat       Seat    `json:"seat"`        // bound seat identity
	Price      uint64  `json:"price"`       // price in value units
	Owner      Address `json:"owner"`       // ZeroAddress when unreserved
	CustomerID string  `json:"customer_id"` // set on reservation, wiped on reset
}

// Available reports whether the ticket can currently be reserved.
func (t Ticket) Available() bool {
	return t.Owner.IsZero()
}

// Reset returns the ticket to its post-EndSale state: no owner, no
// price, no customer identifier.  The seat identity is kept.
func (t *Ticket) Reset() {
	t.Price = 0
	t.Owner = ZeroAddress
	t.CustomerID = ""
}
