package codec

import (
	"encoding/binary"
	"math"

	"github.com/mkarimov/boxoffice/internal/model"
)

// appendTicket writes one ticket record:
//
//	seat (6 bytes) | price uint64 | owner (20 bytes) |
//	customer id length uint16 | customer id bytes
func appendTicket(buf []byte, t model.Ticket) []byte {
	buf = append(buf, EncodeSeat(t.Seat)...)
	buf = binary.BigEndian.AppendUint64(buf, t.Price)
	buf = append(buf, t.Owner[:]...)
	id := t.CustomerID
	if len(id) > math.MaxUint16 {
		// Customer identifiers are capped at the wire layout limit;
		// longer input is truncated rather than corrupting the record.
		id = id[:math.MaxUint16]
	}
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(id)))
	return append(buf, id...)
}

// decodeTicket parses one ticket record and returns the remaining
// bytes for the caller to continue with.
func decodeTicket(buf []byte) (model.Ticket, []byte, error) {
	if len(buf) < ticketFixedSize+2 {
		return model.Ticket{}, nil, ErrShortBuffer
	}
	seat, err := DecodeSeat(buf[:SeatWireSize])
	if err != nil {
		return model.Ticket{}, nil, err
	}
	off := SeatWireSize
	price := binary.BigEndian.Uint64(buf[off : off+8])
	off += 8
	var owner model.Address
	copy(owner[:], buf[off:off+addressSize])
	off += addressSize
	idLen := int(binary.BigEndian.Uint16(buf[off : off+2]))
	off += 2
	if len(buf) < off+idLen {
		return model.Ticket{}, nil, ErrShortBuffer
	}
	t := model.Ticket{
		Seat:       seat,
		Price:      price,
		Owner:      owner,
		CustomerID: string(buf[off : off+idLen]),
	}
	return t, buf[off+idLen:], nil
}

// EncodeTickets serializes the ticket ledger as a uint32 count
// followed by the ticket records in catalog order.  This is the value
// stored under the "tickets" state key.
func EncodeTickets(tickets []model.Ticket) []byte {
	buf := make([]byte, 4, 4+len(tickets)*(ticketFixedSize+2))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(tickets)))
	for _, t := range tickets {
		buf = appendTicket(buf, t)
	}
	return buf
}

// DecodeTickets parses a ticket ledger written by EncodeTickets.
func DecodeTickets(buf []byte) ([]model.Ticket, error) {
	if len(buf) < 4 {
		return nil, ErrShortBuffer
	}
	n := int(binary.BigEndian.Uint32(buf[0:4]))
	rest := buf[4:]
	// Bound the count against the smallest possible record before
	// allocating; a corrupted prefix must not size the slice.
	if n > len(rest)/(ticketFixedSize+2) {
		return nil, ErrShortBuffer
	}
	tickets := make([]model.Ticket, 0, n)
	for i := 0; i < n; i++ {
		t, tail, err := decodeTicket(rest)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
		rest = tail
	}
	if len(rest) != 0 {
		return nil, ErrTrailingBytes
	}
	return tickets, nil
}

// EncodeUint64 / DecodeUint64 handle the scalar state keys
// (end_of_sale, release_fee, no_refund_blocks).
func EncodeUint64(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

func DecodeUint64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, ErrShortBuffer
	}
	if len(buf) > 8 {
		return 0, ErrTrailingBytes
	}
	return binary.BigEndian.Uint64(buf), nil
}

// EncodeAddress / DecodeAddress handle the "owner" state key.
func EncodeAddress(a model.Address) []byte {
	out := make([]byte, addressSize)
	copy(out, a[:])
	return out
}

func DecodeAddress(buf []byte) (model.Address, error) {
	if len(buf) < addressSize {
		return model.Address{}, ErrShortBuffer
	}
	if len(buf) > addressSize {
		return model.Address{}, ErrTrailingBytes
	}
	var a model.Address
	copy(a[:], buf)
	return a, nil
}
