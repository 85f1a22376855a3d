// Package host adapts the deterministic contract core to its
// surroundings: it supplies the ledger height, moves value between
// simulated accounts, and wraps every invocation in a database
// transaction so a hard abort discards all effects at once, which is
// the rollback guarantee the core assumes of its ledger.
package host

import "time"

// Chain derives the current ledger height from wall-clock time: one
// block every Interval since Genesis.  The height is monotonic and
// identical across restarts, which is all the sale lifecycle needs.
type Chain struct {
	Genesis  time.Time     // start of block zero
	Interval time.Duration // duration of one block

	// now is swapped out by tests; defaults to time.Now.
	now func() time.Time
}

// NewChain builds a Chain.  Interval must be positive.
func NewChain(genesis time.Time, interval time.Duration) *Chain {
	if interval <= 0 {
		interval = time.Second
	}
	return &Chain{Genesis: genesis, Interval: interval, now: time.Now}
}

// Height returns the current block height.  Before genesis the
// height is zero.
func (c *Chain) Height() uint64 {
	elapsed := c.now().UTC().Sub(c.Genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / c.Interval)
}
