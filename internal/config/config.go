package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string

	SearchAPIKey  string
	SearchBaseURL string

	// Extra business names appended to the built-in blacklist,
	// comma-separated in the environment.
	BlacklistNames []string
}

func Load() Config {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "3000"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SearchAPIKey:  os.Getenv("SEARCH_API_KEY"),
		SearchBaseURL: getenv("SEARCH_BASE_URL", "https://api.yelp.com"),

		BlacklistNames: splitList(os.Getenv("BLACKLIST_NAMES")),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
