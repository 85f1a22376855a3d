// Package codec implements the fixed binary layouts used both for the
// seat wire format (seat identifiers passed to every seat-addressed
// API method) and for the values persisted under the contract state
// keys.  All integers are big-endian.  Decode failures are reported
// with distinct sentinel errors so callers can treat malformed input
// as a protocol violation rather than a storage fault.
package codec

import "errors"

// ErrShortBuffer is returned when a decode runs out of bytes before
// the layout is complete.
var ErrShortBuffer = errors.New("codec: short buffer")

// ErrTrailingBytes is returned when a top-level decode succeeds but
// leaves unconsumed bytes, which means the input was not produced by
// the matching encoder.
var ErrTrailingBytes = errors.New("codec: trailing bytes")

// Byte sizes of the fixed-width layouts.
const (
	SeatWireSize    = 4 + 2                // int32 number + uint16 letter
	addressSize     = 20                   // model.AddressLength
	ticketFixedSize = SeatWireSize + 8 + addressSize // seat + price + owner, before the customer id
)
