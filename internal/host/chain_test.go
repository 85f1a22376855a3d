package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChainHeight(t *testing.T) {
	genesis := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewChain(genesis, 10*time.Second)

	cases := []struct {
		at   time.Time
		want uint64
	}{
		{genesis.Add(-time.Hour), 0}, // before genesis
		{genesis, 0},
		{genesis.Add(9 * time.Second), 0},
		{genesis.Add(10 * time.Second), 1},
		{genesis.Add(95 * time.Second), 9},
		{genesis.Add(24 * time.Hour), 8640},
	}
	for _, tc := range cases {
		c.now = func() time.Time { return tc.at }
		assert.Equal(t, tc.want, c.Height(), "at %s", tc.at)
	}
}

func TestChainDefaultsInterval(t *testing.T) {
	c := NewChain(time.Now(), 0)
	assert.Equal(t, time.Second, c.Interval)
}
