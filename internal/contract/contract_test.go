package contract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarimov/boxoffice/internal/contract"
	"github.com/mkarimov/boxoffice/internal/host"
	"github.com/mkarimov/boxoffice/internal/model"
	"github.com/mkarimov/boxoffice/internal/storage"
)

// Shared fixtures for the contract tests.  Everything runs on the
// in-memory substrate and the recording bank so each test can inspect
// both the state bytes and the transfers an operation produced.

func addr(b byte) model.Address {
	var a model.Address
	a[0] = b
	return a
}

var (
	owner = addr(0x01)
	alice = addr(0xaa)
	bob   = addr(0xbb)
)

var (
	seat1A = model.Seat{Number: 1, Letter: 'A'}
	seat2A = model.Seat{Number: 2, Letter: 'A'}
	seat3B = model.Seat{Number: 3, Letter: 'B'}
)

func catalog() []model.Seat {
	return []model.Seat{seat1A, seat2A, seat3B}
}

func prices(p1, p2, p3 uint64) []model.SeatPrice {
	return []model.SeatPrice{
		{Seat: seat1A, Price: p1},
		{Seat: seat2A, Price: p2},
		{Seat: seat3B, Price: p3},
	}
}

// fixture bundles a contract instance with its collaborators so tests
// can reach past the operation surface.
type fixture struct {
	kv   *storage.MemoryKV
	bank *host.RecordingBank
	box  *contract.BoxOffice
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := storage.NewMemoryKV()
	bank := &host.RecordingBank{}
	return &fixture{kv: kv, bank: bank, box: contract.New(storage.NewState(kv), bank)}
}

func call(caller model.Address, height, attached uint64) contract.Context {
	return contract.Context{Caller: caller, Height: height, AttachedValue: attached}
}

// deployed returns a fixture with the venue constructed.
func deployed(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	_, err := f.box.Deploy(context.Background(), call(owner, 0, 0), catalog(), "Roxy")
	require.NoError(t, err)
	return f
}

// open returns a deployed fixture with a sale running until height 100
// and seat prices 50/60/70.
func open(t *testing.T) *fixture {
	t.Helper()
	f := deployed(t)
	_, err := f.box.BeginSale(context.Background(), call(owner, 10, 0), prices(50, 60, 70), model.ShowInfo{
		Name:      "Evening Show",
		Organiser: "House",
		Time:      "2026-09-01T20:00:00Z",
		EndHeight: 100,
	})
	require.NoError(t, err)
	return f
}
