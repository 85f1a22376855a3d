package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT parsing and validation
	"github.com/labstack/echo/v4"  // Echo framework middleware types
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the token's subject (the caller's ledger address
// in hex) into the request context under "caller".  The provided
// secret must match the one used when issuing tokens.  Handlers on
// protected routes recover the invocation caller via c.Get("caller").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid Authorization header starts with "Bearer "
			// followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret; reject any other
			// signing method.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid subject"})
			}

			// Store the caller address for handlers and the rate
			// limiter key builder.
			c.Set("caller", sub)
			return next(c)
		}
	}
}
