package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/host"
	"github.com/mkarimov/boxoffice/internal/model"
)

func TestReserveExactPayment(t *testing.T) {
	f := open(t)

	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 50), seat1A, "cust-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, f.bank.Transfers, "exact payment leaves nothing to refund")

	tickets, err := f.box.Tickets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, alice, tickets[0].Owner)
	assert.Equal(t, "cust-1", tickets[0].CustomerID)
	assert.Equal(t, uint64(50), tickets[0].Price)
}

func TestReserveRefundsOverpayment(t *testing.T) {
	f := open(t)

	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 80), seat1A, "cust-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []host.Transferred{{To: alice, Amount: 30}}, f.bank.Transfers)
}

func TestReserveTakenSeatSoftFails(t *testing.T) {
	f := open(t)
	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 50), seat1A, "cust-1")
	require.NoError(t, err)
	require.True(t, ok)
	f.bank.Transfers = nil

	ok, err = f.box.Reserve(context.Background(), call(bob, 21, 50), seat1A, "cust-2")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uint64(50), f.bank.Total(bob), "full refund on a taken seat")

	// Alice keeps the ticket.
	tickets, err := f.box.Tickets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, alice, tickets[0].Owner)
	assert.Equal(t, "cust-1", tickets[0].CustomerID)
}

func TestReserveUnderpaymentSoftFails(t *testing.T) {
	f := open(t)

	ok, err := f.box.Reserve(context.Background(), call(alice, 20, 49), seat1A, "cust-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, uint64(49), f.bank.Total(alice))

	tickets, err := f.box.Tickets(context.Background())
	require.NoError(t, err)
	assert.True(t, tickets[0].Available())
}

func TestReserveHardAborts(t *testing.T) {
	t.Run("sale not open", func(t *testing.T) {
		f := deployed(t)
		_, err := f.box.Reserve(context.Background(), call(alice, 20, 50), seat1A, "cust-1")
		assert.ErrorIs(t, err, contract.ErrSaleNotOpen)
		// The attached value is refunded before the abort.
		assert.Equal(t, uint64(50), f.bank.Total(alice))
	})
	t.Run("after close height", func(t *testing.T) {
		f := open(t)
		_, err := f.box.Reserve(context.Background(), call(alice, 100, 50), seat1A, "cust-1")
		assert.ErrorIs(t, err, contract.ErrSaleNotOpen)
	})
	t.Run("unknown seat", func(t *testing.T) {
		f := open(t)
		before := f.kv.Snapshot()
		_, err := f.box.Reserve(context.Background(), call(alice, 20, 50), model.Seat{Number: 99, Letter: 'Z'}, "cust-1")
		assert.ErrorIs(t, err, contract.ErrSeatUnknown)
		assert.Equal(t, uint64(50), f.bank.Total(alice))
		assert.Equal(t, before, f.kv.Snapshot())
	})
	t.Run("sentinel seat", func(t *testing.T) {
		f := open(t)
		_, err := f.box.Reserve(context.Background(), call(alice, 20, 50), model.Seat{}, "cust-1")
		assert.ErrorIs(t, err, contract.ErrSeatUnknown)
	})
	t.Run("anonymous caller", func(t *testing.T) {
		f := open(t)
		_, err := f.box.Reserve(context.Background(), call(model.ZeroAddress, 20, 50), seat1A, "cust-1")
		assert.ErrorIs(t, err, contract.ErrZeroAddress)
	})
}

// Every Reserve outcome must satisfy refund + applied == attached,
// with applied either zero or exactly the ticket price.
func TestReserveValueConservation(t *testing.T) {
	cases := []struct {
		name     string
		attached uint64
		want     bool
		applied  uint64
	}{
		{"exact", 50, true, 50},
		{"overpaid", 120, true, 50},
		{"underpaid", 10, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := open(t)
			ok, err := f.box.Reserve(context.Background(), call(alice, 20, tc.attached), seat1A, "cust-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			assert.Equal(t, tc.attached-tc.applied, f.bank.Total(alice))
		})
	}
}
