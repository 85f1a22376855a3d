package model

import (
	"encoding/hex"
	"errors"
	"strings"
)

// AddressLength is the size in bytes of a ledger account address.
const AddressLength = 20

// Address identifies a ledger account.  The zero value is the
// reserved sentinel meaning "no owner" / "unset"; it can never be a
// real account and must be rejected wherever an actual party is
// required.
type Address [AddressLength]byte

// ZeroAddress is the sentinel address.  A ticket whose owner equals
// ZeroAddress is available for reservation.
var ZeroAddress Address

// ErrBadAddress is returned when an address string cannot be decoded
// into exactly AddressLength bytes.
var ErrBadAddress = errors.New("malformed address")

// IsZero reports whether the address is the sentinel.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Hex returns the lowercase hex representation with a 0x prefix.
// This is the form used in JSON responses and JWT subjects.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAddress decodes a hex string (with or without 0x prefix) into
// an Address.  It returns ErrBadAddress when the input is not exactly
// AddressLength bytes of hex.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != AddressLength {
		return Address{}, ErrBadAddress
	}
	var a Address
	copy(a[:], raw)
	return a, nil
}
