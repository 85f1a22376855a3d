package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
)

func TestCheckAvailability(t *testing.T) {
	f := open(t)

	free, err := f.box.CheckAvailability(context.Background(), call(alice, 20, 0), seat1A)
	require.NoError(t, err)
	assert.True(t, free)

	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 50), seat1A, "cust-1")
	require.NoError(t, err)
	require.True(t, ok)

	free, err = f.box.CheckAvailability(context.Background(), call(bob, 21, 0), seat1A)
	require.NoError(t, err)
	assert.False(t, free)

	_, err = f.box.CheckAvailability(context.Background(), call(bob, 21, 0), model.Seat{Number: 99, Letter: 'Z'})
	assert.ErrorIs(t, err, contract.ErrSeatUnknown)

	// Availability is an open-sale question only.
	_, err = f.box.CheckAvailability(context.Background(), call(bob, 150, 0), seat1A)
	assert.ErrorIs(t, err, contract.ErrSaleNotOpen)
}

func TestCheckReservation(t *testing.T) {
	f := open(t)
	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 50), seat1A, "cust-1")
	require.NoError(t, err)
	require.True(t, ok)

	res, err := f.box.CheckReservation(context.Background(), seat1A, alice)
	require.NoError(t, err)
	assert.True(t, res.OwnsTicket)
	assert.Equal(t, "cust-1", res.CustomerID)

	// A non-holder learns nothing, including the customer id.
	res, err = f.box.CheckReservation(context.Background(), seat1A, bob)
	require.NoError(t, err)
	assert.False(t, res.OwnsTicket)
	assert.Empty(t, res.CustomerID)

	// Works past the close height, unlike availability.
	res, err = f.box.CheckReservation(context.Background(), seat1A, alice)
	require.NoError(t, err)
	assert.True(t, res.OwnsTicket)

	_, err = f.box.CheckReservation(context.Background(), seat1A, model.ZeroAddress)
	assert.ErrorIs(t, err, contract.ErrZeroAddress)

	_, err = f.box.CheckReservation(context.Background(), model.Seat{Number: 99, Letter: 'Z'}, alice)
	assert.ErrorIs(t, err, contract.ErrSeatUnknown)
}

func TestStatusPhaseDerivation(t *testing.T) {
	f := open(t)
	cases := []struct {
		height uint64
		phase  contract.Phase
	}{
		{10, contract.PhaseOpen},
		{99, contract.PhaseOpen},
		{100, contract.PhaseAwaitingClose},
		{5000, contract.PhaseAwaitingClose},
	}
	for _, tc := range cases {
		st, err := f.box.Status(context.Background(), call(alice, tc.height, 0))
		require.NoError(t, err)
		assert.Equal(t, string(tc.phase), st.Phase, "height %d", tc.height)
		assert.Equal(t, tc.height, st.Height)
	}
}
