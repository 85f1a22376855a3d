package utils // utils provides token helpers shared by handlers and middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens

	"github.com/mkarimov/boxoffice/internal/model"
)

// AccessToken is a signed HS256 JWT plus its expiry.  The subject
// claim carries the account's ledger address in hex form, which is
// how handlers recover the invocation caller.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for an account.  The
// claims are: sub (hex address), exp and iat.
func NewAccessToken(secret string, addr model.Address, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": addr.Hex(),
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
