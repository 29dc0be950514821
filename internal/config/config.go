// Package config centralizes environment-driven settings for the server.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string

	HTTPAddr    string // public MCP endpoint
	MetricsAddr string // /metrics and /healthz only
	MCPPath     string

	APIKey     string // LEAGUE_MCP_API_KEY; empty disables auth
	AuthHeader string

	RedisAddr string // empty disables the Redis valuation snapshot

	SleeperBaseURL     string
	FantasyCalcBaseURL string

	LeagueID     string // default league when a tool call omits one
	PlayoffSlots int    // fallback when the league settings carry none
	OddsTrials   int
	ValuationTTL time.Duration
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "league-server"),

		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9095"),
		MCPPath:     getEnv("MCP_PATH", "/mcp"),

		APIKey:     strings.TrimSpace(os.Getenv("LEAGUE_MCP_API_KEY")),
		AuthHeader: getEnv("AUTH_HEADER", "X-API-Key"),

		RedisAddr: getEnv("REDIS_ADDR", ""),

		SleeperBaseURL:     getEnv("SLEEPER_BASE_URL", "https://api.sleeper.app/v1"),
		FantasyCalcBaseURL: getEnv("FANTASYCALC_BASE_URL", "https://api.fantasycalc.com"),

		LeagueID:     getEnv("LEAGUE_ID", ""),
		PlayoffSlots: getEnvInt("PLAYOFF_SLOTS", 6),
		OddsTrials:   getEnvInt("ODDS_TRIALS", 5000),
		ValuationTTL: getEnvDuration("VALUATION_TTL", 6*time.Hour),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
