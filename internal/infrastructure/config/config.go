package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	FrontendURL string `env:"FRONTEND_URL"`

	JWTSecret  string        `env:"JWT_SECRET"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=168h"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Market MarketConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=briefly"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MarketConfig struct {
	CoinGeckoURL  string        `env:"COINGECKO_API_URL, default=https://api.coingecko.com/api/v3/coins/markets"`
	FinnhubURL    string        `env:"FINNHUB_API_URL,   default=https://finnhub.io/api/v1/quote"`
	FinnhubAPIKey string        `env:"FINNHUB_API_KEY"`
	CacheTTL      time.Duration `env:"MARKET_CACHE_TTL,  default=60s"`
}

// IsProduction reports whether the service runs with production cookie and
// CORS policy (Secure cookies, SameSite=None for the cross-site frontend).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
