package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Storage StorageConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AUTOGESTION_APP_ENV" required:"true"`
	Port         string `envconfig:"AUTOGESTION_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"AUTOGESTION_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AUTOGESTION_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"AUTOGESTION_REDIS_URL"`
	Address      string        `envconfig:"AUTOGESTION_REDIS_ADDR"`
	Password     string        `envconfig:"AUTOGESTION_REDIS_PASSWORD"`
	DB           int           `envconfig:"AUTOGESTION_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AUTOGESTION_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AUTOGESTION_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AUTOGESTION_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AUTOGESTION_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AUTOGESTION_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a Redis endpoint was supplied at all. When it is
// absent the local fallback store is opened without probing.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

type StorageConfig struct {
	// FallbackPath is the SQLite file used when the host-provided store is
	// unreachable at startup.
	FallbackPath  string        `envconfig:"AUTOGESTION_STORAGE_FALLBACK_PATH" default:"autogestion.db"`
	ProbeAttempts uint64        `envconfig:"AUTOGESTION_STORAGE_PROBE_ATTEMPTS" default:"3"`
	ProbeBackoff  time.Duration `envconfig:"AUTOGESTION_STORAGE_PROBE_BACKOFF" default:"250ms"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AUTOGESTION_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
