package config

import (
	"os"

	"github.com/joho/godotenv"

	"bid4service/utils"
)

// Config carries process-level settings loaded once at startup.
type Config struct {
	DBDSN       string
	ServerPort  string
	JWTSecret   string
	GatewayMode string // "sandbox" or "live"
	UseMemory   bool   // run against the in-memory ledger, no Postgres
}

// Load reads configuration from the environment, falling back to a .env file
// when present. Missing required values are fatal at startup.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		ServerPort:  os.Getenv("PORT"),
		JWTSecret:   os.Getenv("AUTH_JWT_SECRET"),
		GatewayMode: os.Getenv("GATEWAY_MODE"),
		UseMemory:   os.Getenv("LEDGER_BACKEND") == "memory",
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.GatewayMode == "" {
		cfg.GatewayMode = "sandbox"
	}
	if cfg.JWTSecret == "" {
		utils.Fatal("AUTH_JWT_SECRET is not set", nil)
	}
	if cfg.DBDSN == "" && !cfg.UseMemory {
		utils.Fatal("DB_DSN is not set", nil)
	}

	return cfg
}
