package config

import (
	"errors"
	"fmt"
	"time"

	"tonotes/utils"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type AppConfig struct {
	Env             string
	Port            string
	StoreDriver     string
	RedisURL        string
	ActivityTTL     time.Duration
	JWTSecretKey    string
	TrackingTimeout time.Duration
	ShutdownTimeout time.Duration
	MaxRequestBytes int64
	Database        DatabaseConfig
	Ranking         RankingConfig
}

// LoadAppConfig reads the whole service configuration from the environment.
// Call godotenv.Load first to pick up a local .env file.
func LoadAppConfig() (AppConfig, error) {
	cfg := AppConfig{
		Env:             utils.GetEnvAsString("GO_ENV", "development"),
		Port:            utils.GetEnvAsString("PORT", "8080"),
		StoreDriver:     utils.GetEnvAsString("STORE_DRIVER", StoreMongo),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", ""),
		ActivityTTL:     utils.GetEnvAsDuration("ACTIVITY_CACHE_TTL", 10*time.Minute),
		JWTSecretKey:    utils.GetEnvAsString("JWT_SECRET_KEY", ""),
		TrackingTimeout: utils.GetEnvAsDuration("TRACKING_TIMEOUT", 5*time.Second),
		ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxRequestBytes: int64(utils.GetEnvAsInt("MAX_REQUEST_BYTES", 1<<20)),
		Database:        LoadDatabaseConfig(),
		Ranking:         LoadRankingConfig(),
	}
	return cfg, cfg.Validate()
}

func (c AppConfig) Validate() error {
	var errs []error
	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is not set"))
	}
	switch c.StoreDriver {
	case StoreMongo:
		if c.Database.URI == "" {
			errs = append(errs, errors.New("MONGO_URI is not set"))
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.TrackingTimeout <= 0 {
		errs = append(errs, errors.New("TRACKING_TIMEOUT must be positive"))
	}
	if err := c.Ranking.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
