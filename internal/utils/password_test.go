package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestAccountPasswordRoundTrip(t *testing.T) {
	hash, err := HashAccountPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckAccountPassword(hash, "s3cret"))
	assert.False(t, CheckAccountPassword(hash, "wrong"))
	assert.False(t, CheckAccountPassword("not-a-hash", "s3cret"))
}

func TestHashAccountPasswordClampsCost(t *testing.T) {
	// Out-of-range costs use the bcrypt default instead of failing.
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hash, err := HashAccountPassword("s3cret", cost)
		require.NoError(t, err, "cost %d", cost)
		c, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, c, "cost %d", cost)
	}
}
