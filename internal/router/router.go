package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/mkarimov/boxoffice/internal/config"
	"github.com/mkarimov/boxoffice/internal/handler"
	"github.com/mkarimov/boxoffice/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the account endpoints.  Register and login
// live under /v1/auth and need no session; /v1/me requires a valid
// access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterContract registers every contract endpoint.  Mutating routes
// require a JWT (the subject is the caller address) and are rate
// limited; read-only routes are public and served through the Redis
// response cache when one is configured.
func RegisterContract(e *echo.Echo, h *handler.ContractHandler, jwtSecret string, rdb *redis.Client) {
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	if rdb != nil {
		auth.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}

	// Venue and sale lifecycle (owner side, except deploy which makes
	// the caller the owner).
	auth.POST("/venue", h.DeployVenue)
	auth.POST("/sale", h.BeginSale)
	auth.DELETE("/sale", h.EndSale)
	auth.PUT("/policy/release-fee", h.SetReleaseFee)
	auth.PUT("/policy/no-release-blocks", h.SetNoReleaseBlocks)

	// Value-bearing ticket operations.
	auth.POST("/tickets/reserve", h.Reserve)
	auth.POST("/tickets/release", h.Release)

	// Reservation lookup defaults to the caller, so it stays behind
	// auth even though it never moves value.
	auth.GET("/seats/:seat/reservation", h.GetReservation)

	// Public read-only routes.
	pub := e.Group("/v1")
	if rdb != nil {
		pub.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	}
	pub.GET("/sale", h.GetStatus)
	pub.GET("/tickets", h.ListTickets)
	pub.GET("/seats/:seat/availability", h.GetAvailability)
}
