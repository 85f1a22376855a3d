package model

import "strconv"

// Seat is the immutable identity of a single seat in the venue.
// Seats are defined once when the venue contract is deployed and are
// never added, removed or renamed afterwards.  Identity is the pair
// (number, letter); two seats with the same pair are the same seat.
//
// Fields:
//  Number – row/position number, must be non-zero for real seats.
//  Letter – seat letter stored as a UTF-16 code unit (e.g. 'A').
type Seat struct {
	Number int32  `json:"number"` // seat number within the venue
	Letter uint16 `json:"letter"` // seat letter as a UTF-16 code unit
}

// IsSentinel reports whether the seat is the reserved "not found"
// value {0, NUL}.  The sentinel must never appear in a catalog.
func (s Seat) IsSentinel() bool {
	return s.Number == 0 && s.Letter == 0
}

// Label renders the seat in the human form "12F" used in logs and
// notification payloads.
func (s Seat) Label() string {
	return strconv.FormatInt(int64(s.Number), 10) + string(rune(s.Letter))
}

// SeatPrice pairs a seat identity with the price the owner assigns to
// it when opening a sale.  BeginSale requires exactly one SeatPrice
// per catalog seat, matched by identity rather than position.
type SeatPrice struct {
	Seat  Seat   `json:"seat"`  // seat identity the price applies to
	Price uint64 `json:"price"` // price in indivisible value units
}
