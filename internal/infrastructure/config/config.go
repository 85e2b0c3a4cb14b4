package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Engine EngineConfig
	GeoIP  GeoIPConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

// EngineConfig carries the verification-engine tunables. The defaults mirror
// the documented gate and aggregation constants; none of them is an invariant
// and all may be recalibrated per deployment.
type EngineConfig struct {
	AccuracyThresholdM   float64 `env:"ACCURACY_THRESHOLD_M,    default=100"`
	DefaultRadiusM       float64 `env:"GEOFENCE_RADIUS_M,       default=50"`
	IPMismatchThresholdM float64 `env:"IP_MISMATCH_THRESHOLD_M, default=10000"`
	RiskThreshold        int     `env:"RISK_THRESHOLD,          default=50"`
	MovementWindow       int     `env:"MOVEMENT_WINDOW,         default=5"`
}

// GeoIPConfig controls the best-effort IP geolocation lookup.
type GeoIPConfig struct {
	Enabled bool `env:"GEOIP_ENABLED, default=true"`
	// BaseURL of the coarse IP lookup service (ip-api.com JSON wire format).
	BaseURL  string        `env:"GEOIP_BASE_URL,  default=http://ip-api.com/json"`
	Timeout  time.Duration `env:"GEOIP_TIMEOUT,   default=5s"`
	CacheTTL time.Duration `env:"GEOIP_CACHE_TTL, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=location_verification"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Read once at startup; nothing in the engine mutates it afterwards.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
