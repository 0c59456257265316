// Package config loads service configuration from an optional YAML file
// and CLAIMS_EVENTS_* environment variables, env taking precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`

	Log   LogConfig   `mapstructure:"log"`
	Kafka KafkaConfig `mapstructure:"kafka"`
	Redis RedisConfig `mapstructure:"redis"`

	ClaimsAPI    APIConfig `mapstructure:"claims_api"`
	FeeSchemeAPI APIConfig `mapstructure:"fee_scheme_api"`
	ProviderAPI  APIConfig `mapstructure:"provider_api"`

	PostgresDSN string `mapstructure:"postgres_dsn"`

	RulesFile string `mapstructure:"rules_file"`

	MaxInFlight   int           `mapstructure:"max_in_flight"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// KafkaConfig configures the validation event pipeline.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Group   string   `mapstructure:"group"`
}

// RedisConfig configures the shared submission lock. An empty URL
// falls back to the in-process lock.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// APIConfig configures one upstream REST collaborator.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	RPS     float64       `mapstructure:"rps"`
	Burst   int           `mapstructure:"burst"`
}

// Load reads configuration from path (optional) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CLAIMS_EVENTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group", "claims-validation")

	// Empty defaults keep env-only keys visible to Unmarshal.
	v.SetDefault("redis.url", "")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("rules_file", "")

	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	for _, api := range []string{"claims_api", "fee_scheme_api", "provider_api"} {
		v.SetDefault(api+".timeout", 10*time.Second)
		v.SetDefault(api+".rps", 50.0)
		v.SetDefault(api+".burst", 100)
	}
	v.SetDefault("claims_api.base_url", "http://localhost:8091")
	v.SetDefault("fee_scheme_api.base_url", "http://localhost:8092")
	v.SetDefault("provider_api.base_url", "http://localhost:8093")

	v.SetDefault("max_in_flight", 8)
	v.SetDefault("retry_delay", 5*time.Minute)
	v.SetDefault("sweep_schedule", "@every 1m")
	v.SetDefault("lock_ttl", 10*time.Minute)
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one kafka broker is required")
	}
	if c.Kafka.Group == "" {
		return fmt.Errorf("kafka consumer group is required")
	}
	for name, api := range map[string]APIConfig{
		"claims_api":     c.ClaimsAPI,
		"fee_scheme_api": c.FeeSchemeAPI,
		"provider_api":   c.ProviderAPI,
	} {
		if api.BaseURL == "" {
			return fmt.Errorf("%s.base_url is required", name)
		}
	}
	if c.MaxInFlight <= 0 {
		return fmt.Errorf("max_in_flight must be positive")
	}
	return nil
}
