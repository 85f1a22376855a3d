package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/mkarimov/boxoffice/internal/config"
	"github.com/mkarimov/boxoffice/internal/database"
	"github.com/mkarimov/boxoffice/internal/handler"
	"github.com/mkarimov/boxoffice/internal/host"
	"github.com/mkarimov/boxoffice/internal/queue"
	"github.com/mkarimov/boxoffice/internal/repository"
	"github.com/mkarimov/boxoffice/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	accounts := repository.NewAccountRepo(db)
	// The escrow account must exist before the first value-bearing
	// invocation tries to move funds into it.
	if err := accounts.EnsureSystemAccount(ctx, host.EscrowAddress); err != nil {
		log.Fatalf("escrow account setup failed: %v", err)
	}

	chain := host.NewChain(cfg.ChainGenesis, cfg.BlockInterval)
	inv := host.NewInvoker(db, chain)

	rdb := config.NewRedisClient() // nil when Redis is unreachable

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, accounts), cfg.JWTSecret)
	router.RegisterContract(e, handler.NewContractHandler(inv), cfg.JWTSecret, rdb)

	// Event consumer owns its reconnect loop; a broker outage only
	// delays notification logging.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, height=%d)", addr, cfg.Env, chain.Height())

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
