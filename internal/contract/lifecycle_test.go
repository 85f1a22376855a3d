package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/model"
)

func TestBeginSalePricesEverySeat(t *testing.T) {
	f := deployed(t)

	notes, err := f.box.BeginSale(context.Background(), call(owner, 10, 0), prices(50, 60, 70), model.ShowInfo{
		Name: "Evening Show", Organiser: "House", Time: "20:00", EndHeight: 100,
	})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "show.opened", notes[0].Kind())

	tickets, err := f.box.Tickets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(50), tickets[0].Price)
	assert.Equal(t, uint64(60), tickets[1].Price)
	assert.Equal(t, uint64(70), tickets[2].Price)

	st, err := f.box.Status(context.Background(), call(owner, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, string(contract.PhaseOpen), st.Phase)
	assert.Equal(t, uint64(100), st.EndOfSale)
}

func TestBeginSaleOwnerOnly(t *testing.T) {
	f := deployed(t)
	_, err := f.box.BeginSale(context.Background(), call(alice, 10, 0), prices(1, 2, 3), model.ShowInfo{EndHeight: 100})
	assert.ErrorIs(t, err, contract.ErrNotOwner)
}

func TestBeginSaleRejectsWhileSaleExists(t *testing.T) {
	f := open(t)

	// Open phase.
	_, err := f.box.BeginSale(context.Background(), call(owner, 20, 0), prices(1, 2, 3), model.ShowInfo{EndHeight: 200})
	assert.ErrorIs(t, err, contract.ErrSaleActive)

	// AwaitingClose still counts as an existing sale.
	_, err = f.box.BeginSale(context.Background(), call(owner, 150, 0), prices(1, 2, 3), model.ShowInfo{EndHeight: 200})
	assert.ErrorIs(t, err, contract.ErrSaleActive)
}

func TestBeginSaleRejectsPastEndHeight(t *testing.T) {
	f := deployed(t)
	for _, end := range []uint64{0, 9, 10} {
		_, err := f.box.BeginSale(context.Background(), call(owner, 10, 0), prices(1, 2, 3), model.ShowInfo{EndHeight: end})
		assert.ErrorIs(t, err, contract.ErrBadEndHeight, "end height %d", end)
	}
}

func TestBeginSaleRejectsBadPriceLists(t *testing.T) {
	cases := map[string][]model.SeatPrice{
		"too few":  {{Seat: seat1A, Price: 1}},
		"too many": append(prices(1, 2, 3), model.SeatPrice{Seat: seat1A, Price: 9}),
		"duplicate seat": {
			{Seat: seat1A, Price: 1},
			{Seat: seat1A, Price: 2},
			{Seat: seat3B, Price: 3},
		},
		"unknown seat": {
			{Seat: seat1A, Price: 1},
			{Seat: seat2A, Price: 2},
			{Seat: model.Seat{Number: 99, Letter: 'Z'}, Price: 3},
		},
	}
	for name, list := range cases {
		t.Run(name, func(t *testing.T) {
			f := deployed(t)
			before := f.kv.Snapshot()
			_, err := f.box.BeginSale(context.Background(), call(owner, 10, 0), list, model.ShowInfo{EndHeight: 100})
			assert.ErrorIs(t, err, contract.ErrBadPriceList)
			assert.Equal(t, before, f.kv.Snapshot())
		})
	}
}

func TestEndSaleResetsTickets(t *testing.T) {
	f := open(t)
	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 50), seat1A, "cust-1")
	require.NoError(t, err)
	require.True(t, ok)

	// Past the close height the owner can end the sale.
	require.NoError(t, f.box.EndSale(context.Background(), call(owner, 100, 0)))

	tickets, err := f.box.Tickets(context.Background())
	require.NoError(t, err)
	for _, tk := range tickets {
		assert.True(t, tk.Available())
		assert.Zero(t, tk.Price)
		assert.Empty(t, tk.CustomerID)
	}
	st, err := f.box.Status(context.Background(), call(owner, 100, 0))
	require.NoError(t, err)
	assert.Equal(t, string(contract.PhaseInactive), st.Phase)

	// A new sale can start immediately with fresh prices.
	_, err = f.box.BeginSale(context.Background(), call(owner, 101, 0), prices(5, 6, 7), model.ShowInfo{EndHeight: 300})
	assert.NoError(t, err)
}

func TestEndSalePhaseGating(t *testing.T) {
	f := open(t)

	err := f.box.EndSale(context.Background(), call(owner, 50, 0))
	assert.ErrorIs(t, err, contract.ErrSaleStillOpen)

	err = f.box.EndSale(context.Background(), call(alice, 150, 0))
	assert.ErrorIs(t, err, contract.ErrNotOwner)

	require.NoError(t, f.box.EndSale(context.Background(), call(owner, 150, 0)))
	err = f.box.EndSale(context.Background(), call(owner, 150, 0))
	assert.ErrorIs(t, err, contract.ErrNoActiveSale)
}

func TestPolicyPersistsAcrossSales(t *testing.T) {
	f := deployed(t)
	_, err := f.box.SetTicketReleaseFee(context.Background(), call(owner, 0, 0), 7)
	require.NoError(t, err)
	_, err = f.box.SetNoReleaseBlocks(context.Background(), call(owner, 0, 0), 11)
	require.NoError(t, err)

	_, err = f.box.BeginSale(context.Background(), call(owner, 10, 0), prices(50, 60, 70), model.ShowInfo{EndHeight: 100})
	require.NoError(t, err)
	require.NoError(t, f.box.EndSale(context.Background(), call(owner, 150, 0)))

	st, err := f.box.Status(context.Background(), call(owner, 150, 0))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), st.ReleaseFee)
	assert.Equal(t, uint64(11), st.NoRefundBlocks)
}

func TestPolicySettersGating(t *testing.T) {
	f := open(t)

	_, err := f.box.SetTicketReleaseFee(context.Background(), call(owner, 20, 0), 5)
	assert.ErrorIs(t, err, contract.ErrSaleStillOpen)
	_, err = f.box.SetNoReleaseBlocks(context.Background(), call(owner, 20, 0), 5)
	assert.ErrorIs(t, err, contract.ErrSaleStillOpen)

	_, err = f.box.SetTicketReleaseFee(context.Background(), call(alice, 150, 0), 5)
	assert.ErrorIs(t, err, contract.ErrNotOwner)

	// AwaitingClose is fine: the window is no longer open.
	notes, err := f.box.SetTicketReleaseFee(context.Background(), call(owner, 150, 0), 5)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, contract.ReleaseFeeChanged{Fee: 5}, notes[0])
}
