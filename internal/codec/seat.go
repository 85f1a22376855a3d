package codec

import (
	"encoding/binary"

	"github.com/mkarimov/boxoffice/internal/model"
)

// EncodeSeat renders a seat identity in its 6-byte wire layout:
//
//	offset 0: number, int32 big-endian
//	offset 4: letter, uint16 big-endian (UTF-16 code unit)
//
// This layout is the argument format of every seat-addressed method.
func EncodeSeat(s model.Seat) []byte {
	buf := make([]byte, SeatWireSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(s.Number))
	binary.BigEndian.PutUint16(buf[4:6], s.Letter)
	return buf
}

// DecodeSeat parses a 6-byte seat identifier.  The buffer must be
// exactly SeatWireSize long; anything else is a malformed identifier.
func DecodeSeat(buf []byte) (model.Seat, error) {
	if len(buf) < SeatWireSize {
		return model.Seat{}, ErrShortBuffer
	}
	if len(buf) > SeatWireSize {
		return model.Seat{}, ErrTrailingBytes
	}
	return model.Seat{
		Number: int32(binary.BigEndian.Uint32(buf[0:4])),
		Letter: binary.BigEndian.Uint16(buf[4:6]),
	}, nil
}

// EncodeCatalog serializes the immutable seat catalog as a uint32
// count followed by the seats in order.
func EncodeCatalog(seats []model.Seat) []byte {
	buf := make([]byte, 4, 4+len(seats)*SeatWireSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(seats)))
	for _, s := range seats {
		buf = append(buf, EncodeSeat(s)...)
	}
	return buf
}

// DecodeCatalog parses a catalog previously written by EncodeCatalog.
func DecodeCatalog(buf []byte) ([]model.Seat, error) {
	if len(buf) < 4 {
		return nil, ErrShortBuffer
	}
	n := int(binary.BigEndian.Uint32(buf[0:4]))
	rest := buf[4:]
	if len(rest) < n*SeatWireSize {
		return nil, ErrShortBuffer
	}
	if len(rest) > n*SeatWireSize {
		return nil, ErrTrailingBytes
	}
	seats := make([]model.Seat, 0, n)
	for i := 0; i < n; i++ {
		s, err := DecodeSeat(rest[i*SeatWireSize : (i+1)*SeatWireSize])
		if err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, nil
}
