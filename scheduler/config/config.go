package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/helpers"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/schedule"
	"github.com/argusmon/argus-core/sync"
)

var ErrReadYaml = errors.New("failed to read config file")

const (
	DefaultLoggingLevel            = "info"
	DefaultHealthServerPort        = 8081
	DefaultBlockSize         int64 = 10
	DefaultRefreshInterval         = time.Minute
	DefaultClaimInterval           = 5 * time.Second
	DefaultInterlockType     int64 = 1
	DefaultInterlockTTL            = 30 * time.Second
	DefaultInterlockRefresh        = 10 * time.Second
	DefaultHttpClientTimeout       = 5 * time.Second
	DefaultBreakerFailures   int64 = 3
	DefaultAlertCacheTTL           = 30 * time.Second
)

type SchedulingConfig struct {
	BlockSize       int64                `yaml:"block_size"`
	RefreshInterval time.Duration        `yaml:"refresh_interval"`
	ClaimInterval   time.Duration        `yaml:"claim_interval"`
	Retry           schedule.RetryConfig `yaml:"retry"`
}

type CircuitBreakerConfig struct {
	ConsecutiveFailureCount int64 `yaml:"consecutive_failure_count"`
}

type EvaluatorConfig struct {
	MetricServerURL   string               `yaml:"metric_server_url"`
	TLSClientCerts    models.TLSCerts      `yaml:"tls"`
	HttpClientTimeout time.Duration        `yaml:"http_client_timeout"`
	CircuitBreaker    CircuitBreakerConfig `yaml:"circuit_breaker"`
}

type AlertCacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

type InstanceConfig struct {
	Hostname string `yaml:"hostname"`
}

type Config struct {
	Logging    helpers.LoggingConfig        `yaml:"logging"`
	Db         map[string]db.DatabaseConfig `yaml:"db"`
	Health     helpers.HealthConfig         `yaml:"health"`
	Scheduling SchedulingConfig             `yaml:"scheduling"`
	Interlock  sync.InterlockConfig         `yaml:"interlock"`
	Evaluator  EvaluatorConfig              `yaml:"evaluator"`
	AlertCache AlertCacheConfig             `yaml:"alert_cache"`
	Instance   InstanceConfig               `yaml:"instance"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: DefaultLoggingLevel},
		Db:      make(map[string]db.DatabaseConfig),
		Health: helpers.HealthConfig{
			ServerConfig: helpers.ServerConfig{
				Port: DefaultHealthServerPort,
			},
		},
		Scheduling: SchedulingConfig{
			BlockSize:       DefaultBlockSize,
			RefreshInterval: DefaultRefreshInterval,
			ClaimInterval:   DefaultClaimInterval,
			Retry:           schedule.DefaultRetryConfig(),
		},
		Interlock: sync.InterlockConfig{
			LockType:        DefaultInterlockType,
			Expiration:      DefaultInterlockTTL,
			RefreshInterval: DefaultInterlockRefresh,
		},
		Evaluator: EvaluatorConfig{
			HttpClientTimeout: DefaultHttpClientTimeout,
			CircuitBreaker: CircuitBreakerConfig{
				ConsecutiveFailureCount: DefaultBreakerFailures,
			},
		},
		AlertCache: AlertCacheConfig{TTL: DefaultAlertCacheTTL},
	}
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()
	if reader != nil {
		dec := yaml.NewDecoder(reader)
		dec.SetStrict(true)
		if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrReadYaml, err.Error())
		}
	}
	conf.Logging.Level = strings.ToLower(conf.Logging.Level)
	return &conf, nil
}

// LockDB returns the lock_db settings, falling back to argus_db.
func (c *Config) LockDB() db.DatabaseConfig {
	if lockDB, ok := c.Db[db.LockDb]; ok && lockDB.URL != "" {
		return lockDB
	}
	return c.Db[db.ArgusDb]
}

func (c *Config) Validate() error {
	if c.Db[db.ArgusDb].URL == "" {
		return fmt.Errorf("Configuration error: db.argus_db.url is empty")
	}
	if c.Scheduling.BlockSize <= 0 {
		return fmt.Errorf("Configuration error: scheduling.block_size is less than or equal to 0")
	}
	if c.Scheduling.RefreshInterval != time.Minute {
		return fmt.Errorf("Configuration error: scheduling.refresh_interval must be 1m, alerts are scheduled per cron minute")
	}
	if c.Scheduling.ClaimInterval <= 0 {
		return fmt.Errorf("Configuration error: scheduling.claim_interval is less than or equal to 0")
	}
	if c.Scheduling.Retry.MaxAttempts < 0 {
		return fmt.Errorf("Configuration error: scheduling.retry.max_attempts is negative")
	}
	if c.Interlock.Enabled {
		if c.Interlock.RefreshInterval <= 0 {
			return fmt.Errorf("Configuration error: interlock.refresh_interval is less than or equal to 0")
		}
		if c.Interlock.Expiration <= c.Interlock.RefreshInterval {
			return fmt.Errorf("Configuration error: interlock.expiration must be greater than interlock.refresh_interval")
		}
	}
	if c.Evaluator.MetricServerURL == "" {
		return fmt.Errorf("Configuration error: evaluator.metric_server_url is empty")
	}
	if c.Evaluator.HttpClientTimeout <= 0 {
		return fmt.Errorf("Configuration error: evaluator.http_client_timeout is less than or equal to 0")
	}
	if c.Evaluator.CircuitBreaker.ConsecutiveFailureCount < 0 {
		return fmt.Errorf("Configuration error: evaluator.circuit_breaker.consecutive_failure_count is negative")
	}
	if c.AlertCache.TTL <= 0 {
		return fmt.Errorf("Configuration error: alert_cache.ttl is less than or equal to 0")
	}
	if _, err := helpers.ParseLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("Configuration error: %w", err)
	}
	return c.Health.Validate()
}
