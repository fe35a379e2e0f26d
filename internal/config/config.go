package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Service holds deployment-level settings.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
}

// Database holds the document-store settings.
type Database struct {
	Path string `envconfig:"DATABASE_PATH" default:"eventflow.db"`
}

// Valkey holds the snapshot-cache connection settings.
type Valkey struct {
	Host string `envconfig:"VALKEY_HOST" required:"true"`
	Port string `envconfig:"VALKEY_PORT" required:"true"`
	DB   int    `envconfig:"VALKEY_DB" default:"0"`
}

// SQS holds the calendar-sync queue settings.
type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

// Cache holds the freshness-gate windows. The effective timeout depends on
// the deployment environment: iterating against a dev stack wants to see
// remote changes quickly, production favors fewer reads.
type Cache struct {
	FreshnessDevSec  int `envconfig:"CACHE_FRESHNESS_DEV_SEC" default:"300"`
	FreshnessProdSec int `envconfig:"CACHE_FRESHNESS_PROD_SEC" default:"600"`
}

// Worker holds the sync-worker settings.
type Worker struct {
	HealthCheckPort string `envconfig:"WORKER_HEALTH_CHECK_PORT" default:"8081"`
	BufferSize      int    `envconfig:"WORKER_BUFFER_SIZE" default:"100"`
}

type Config struct {
	Service  Service
	Database Database
	Valkey   Valkey
	SQS      SQS
	Cache    Cache
	Worker   Worker
}

// FreshnessTimeout returns the cache-freshness window for the configured
// environment.
func (c *Config) FreshnessTimeout() time.Duration {
	if c.Service.Environment == "production" {
		return time.Duration(c.Cache.FreshnessProdSec) * time.Second
	}
	return time.Duration(c.Cache.FreshnessDevSec) * time.Second
}

func Load() (*Config, error) {
	// Local development keeps settings in a .env file; absence is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
