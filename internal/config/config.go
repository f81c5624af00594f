package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/rules"
)

type Config struct {
	Environment string
	Host        string
	Port        int

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// vision sidecar, decodes videos and estimates poses
	VisionBaseURL        string `toml:"vision_base_url"`
	VisionTimeoutSeconds int    `toml:"vision_timeout_seconds"`

	AnalyzeRateLimitAllowedPerMin int `toml:"analyze_rate_limit_allowed_per_min"`

	// optional overrides of the form check thresholds,
	// zero values fall back to the defaults
	Thresholds rules.Thresholds `toml:"thresholds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = env
	return cfg, nil
}
