package config // config loads application configuration from environment variables

import (
	"log"     // report configuration errors and halt execution
	"os"      // access to environment variables
	"strconv" // string conversion helpers
	"time"    // durations and genesis parsing

	"github.com/joho/godotenv" // optional .env loading for development
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  The chain settings define
// the simulated ledger clock: block height = (now - genesis) /
// interval.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	DBUser          string        // database username
	DBPass          string        // database password (optional)
	DBHost          string        // database host address
	DBPort          string        // database port number
	DBName          string        // database name
	JWTSecret       string        // secret used to sign JWTs
	AccessTTLMin    int           // access token time-to-live in minutes
	BcryptCost      int           // bcrypt cost for password hashing
	StartingBalance uint64        // value units credited to new accounts
	ChainGenesis    time.Time     // start of block zero (unix seconds)
	BlockInterval   time.Duration // duration of one ledger block
}

// Load reads configuration from the environment (and a .env file when
// present).  Required variables are enforced by must(); missing
// values exit with a fatal log message.
func Load() Config {
	// A missing .env is fine outside development.
	_ = godotenv.Load()

	return Config{
		Env:             must("APP_ENV"),
		Port:            must("APP_PORT"),
		DBUser:          must("DB_USER"),
		DBPass:          os.Getenv("DB_PASS"), // empty allowed
		DBHost:          must("DB_HOST"),
		DBPort:          must("DB_PORT"),
		DBName:          must("DB_NAME"),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:      mustInt("BCRYPT_COST"),
		StartingBalance: uint64(mustInt("STARTING_BALANCE")),
		ChainGenesis:    time.Unix(int64(mustInt("CHAIN_GENESIS_UNIX")), 0).UTC(),
		BlockInterval:   time.Duration(mustInt("BLOCK_INTERVAL_SEC")) * time.Second,
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value to an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
