package utils

import "golang.org/x/crypto/bcrypt"

// HashAccountPassword hashes an account password with the configured
// bcrypt cost.  Costs outside bcrypt's valid range fall back to the
// library default so a bad config value cannot weaken or break
// registration.
func HashAccountPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckAccountPassword reports whether plain matches the stored hash.
// The comparison is constant time inside bcrypt.
func CheckAccountPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
