// Package storage holds the persistence collaborator of the contract
// core: a typed view over the five named state keys the contract
// owns.  Implementations differ only in where the raw bytes live
// (MySQL for the service, a map for tests); the binary layout of each
// value is fixed by the codec package either way.
package storage

import (
	"context"
	"errors"

	"github.com/mkarimov/boxoffice/internal/codec"
	"github.com/mkarimov/boxoffice/internal/model"
)

// Persisted state keys.  Every durable piece of contract state lives
// under one of these names.
const (
	KeyOwner          = "owner"
	KeyTickets        = "tickets"
	KeyEndOfSale      = "end_of_sale"
	KeyReleaseFee     = "release_fee"
	KeyNoRefundBlocks = "no_refund_blocks"
)

// ErrNotDeployed is returned when the owner or ticket keys are read
// before the venue contract has been deployed.
var ErrNotDeployed = errors.New("storage: contract not deployed")

// KV is the raw byte substrate a State is built on.  Get reports
// found=false for absent keys rather than inventing defaults; the
// typed layer decides which keys have zero-value fallbacks.
type KV interface {
	Get(ctx context.Context, key string) (val []byte, found bool, err error)
	Put(ctx context.Context, key string, val []byte) error
}

// State is the typed storage collaborator handed to the contract
// core.  Scalar keys (end_of_sale, release_fee, no_refund_blocks)
// read as zero when never written; owner and tickets must exist,
// otherwise ErrNotDeployed is returned.
type State struct {
	kv KV
}

// NewState wraps a raw key-value substrate in the typed view.
func NewState(kv KV) *State {
	return &State{kv: kv}
}

// Deployed reports whether the contract has been constructed, i.e.
// the owner key has been written.
func (s *State) Deployed(ctx context.Context) (bool, error) {
	_, found, err := s.kv.Get(ctx, KeyOwner)
	return found, err
}

// Owner returns the contract owner set at deployment.
func (s *State) Owner(ctx context.Context) (model.Address, error) {
	raw, found, err := s.kv.Get(ctx, KeyOwner)
	if err != nil {
		return model.Address{}, err
	}
	if !found {
		return model.Address{}, ErrNotDeployed
	}
	return codec.DecodeAddress(raw)
}

// SetOwner writes the contract owner.  Called exactly once, at
// deployment; the core never mutates it afterwards.
func (s *State) SetOwner(ctx context.Context, a model.Address) error {
	return s.kv.Put(ctx, KeyOwner, codec.EncodeAddress(a))
}

// Tickets returns the full ticket ledger in catalog order.
func (s *State) Tickets(ctx context.Context) ([]model.Ticket, error) {
	raw, found, err := s.kv.Get(ctx, KeyTickets)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotDeployed
	}
	return codec.DecodeTickets(raw)
}

// SetTickets replaces the ticket ledger.  The caller must preserve
// length and seat order; the storage layer does not re-check it.
func (s *State) SetTickets(ctx context.Context, tickets []model.Ticket) error {
	return s.kv.Put(ctx, KeyTickets, codec.EncodeTickets(tickets))
}

// EndOfSale returns the close height of the current sale, zero when
// no sale is active.
func (s *State) EndOfSale(ctx context.Context) (uint64, error) {
	return s.scalar(ctx, KeyEndOfSale)
}

func (s *State) SetEndOfSale(ctx context.Context, h uint64) error {
	return s.kv.Put(ctx, KeyEndOfSale, codec.EncodeUint64(h))
}

// ReleaseFee returns the fee withheld on voluntary ticket release.
func (s *State) ReleaseFee(ctx context.Context) (uint64, error) {
	return s.scalar(ctx, KeyReleaseFee)
}

func (s *State) SetReleaseFee(ctx context.Context, fee uint64) error {
	return s.kv.Put(ctx, KeyReleaseFee, codec.EncodeUint64(fee))
}

// NoRefundBlocks returns the size of the closing window during which
// ticket release is disallowed.
func (s *State) NoRefundBlocks(ctx context.Context) (uint64, error) {
	return s.scalar(ctx, KeyNoRefundBlocks)
}

func (s *State) SetNoRefundBlocks(ctx context.Context, n uint64) error {
	return s.kv.Put(ctx, KeyNoRefundBlocks, codec.EncodeUint64(n))
}

func (s *State) scalar(ctx context.Context, key string) (uint64, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return codec.DecodeUint64(raw)
}
