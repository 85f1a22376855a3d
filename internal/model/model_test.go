package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressHexRoundTrip(t *testing.T) {
	var a Address
	a[0], a[19] = 0xde, 0x01

	got, err := ParseAddress(a.Hex())
	require.NoError(t, err)
	assert.Equal(t, a, got)

	// The 0x prefix is optional on input.
	got, err = ParseAddress(a.Hex()[2:])
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestParseAddressRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "0x", "zz", "0xdead", "0x" + string(make([]byte, 41))} {
		_, err := ParseAddress(s)
		assert.ErrorIs(t, err, ErrBadAddress, "input %q", s)
	}
}

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "12F", Seat{Number: 12, Letter: 'F'}.Label())
	assert.Equal(t, "-3Z", Seat{Number: -3, Letter: 'Z'}.Label())
	assert.Equal(t, "0A", Seat{Number: 0, Letter: 'A'}.Label())
}

func TestSeatSentinel(t *testing.T) {
	assert.True(t, Seat{}.IsSentinel())
	assert.False(t, Seat{Number: 1}.IsSentinel())
	assert.False(t, Seat{Letter: 'A'}.IsSentinel())
}

func TestTicketAvailableAndReset(t *testing.T) {
	tk := Ticket{Seat: Seat{Number: 1, Letter: 'A'}}
	assert.True(t, tk.Available())

	tk.Owner[0] = 0xaa
	tk.Price = 50
	tk.CustomerID = "cust-1"
	assert.False(t, tk.Available())

	tk.Reset()
	assert.True(t, tk.Available())
	assert.Zero(t, tk.Price)
	assert.Empty(t, tk.CustomerID)
	assert.Equal(t, Seat{Number: 1, Letter: 'A'}, tk.Seat, "reset keeps the seat identity")
}
