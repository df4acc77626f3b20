package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logger   LoggerConfig   `yaml:"logger"`
	Database DatabaseConfig `yaml:"database"`
	S3       S3Config       `yaml:"s3"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" envconfig:"PORT"`
	Mode            string        `yaml:"mode" envconfig:"GIN_MODE"`
	BasePath        string        `yaml:"base_path" envconfig:"SERVER_BASE_PATH"`
	Env             string        `yaml:"env" envconfig:"ENV"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

type LoggerConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
}

// DatabaseConfig describes the relational store.
// Driver is "postgres" (default) or "sqlite".
type DatabaseConfig struct {
	Driver          string        `yaml:"driver" envconfig:"DB_DRIVER"`
	URL             string        `yaml:"url" envconfig:"DATABASE_URL"`
	Host            string        `yaml:"host" envconfig:"DB_HOST"`
	Port            int           `yaml:"port" envconfig:"DB_PORT"`
	User            string        `yaml:"user" envconfig:"DB_USER"`
	Password        string        `yaml:"password" envconfig:"DB_PASSWORD"`
	Name            string        `yaml:"name" envconfig:"DB_NAME"`
	SSLMode         string        `yaml:"ssl_mode" envconfig:"DB_SSL_MODE"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"DB_CONN_MAX_LIFETIME"`
	AutoMigrate     bool          `yaml:"auto_migrate" envconfig:"DB_AUTO_MIGRATE"`
}

// S3Config holds object storage settings for attachment content.
// Endpoint is only set for MinIO.
type S3Config struct {
	Bucket    string `yaml:"bucket" envconfig:"S3_BUCKET"`
	Region    string `yaml:"region" envconfig:"S3_REGION"`
	Endpoint  string `yaml:"endpoint" envconfig:"S3_ENDPOINT"`
	AccessKey string `yaml:"access_key" envconfig:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" envconfig:"S3_SECRET_KEY"`
}

// MetricsConfig controls the periodic table size collector
type MetricsConfig struct {
	CollectInterval time.Duration `yaml:"collect_interval" envconfig:"METRICS_COLLECT_INTERVAL"`
	DBStatsInterval time.Duration `yaml:"db_stats_interval" envconfig:"METRICS_DB_STATS_INTERVAL"`
}

// GetDSN returns the connection string for the configured driver.
// An explicit URL always wins over the discrete fields.
func (c DatabaseConfig) GetDSN() string {
	if c.URL != "" {
		return c.URL
	}
	if c.Driver == "sqlite" {
		return "file:task_tracker.db?_foreign_keys=on"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads the yaml file at path (if it exists) over the defaults and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            "8000",
			Mode:            "debug",
			BasePath:        "/api/tasks",
			Env:             "dev",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "task_tracker",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			AutoMigrate:     true,
		},
		Metrics: MetricsConfig{
			CollectInterval: 60 * time.Second,
			DBStatsInterval: 15 * time.Second,
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Each field is looked up
// under its section prefix first (SERVER_PORT) and then under the bare name
// in its envconfig tag (PORT). Unset variables leave the yaml value alone.
func applyEnv(cfg *Config) error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to read environment overrides: %w", err)
	}
	cfg.Server.AllowedOrigins = trimList(cfg.Server.AllowedOrigins)
	return nil
}

func trimList(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q (must be postgres or sqlite)", c.Database.Driver)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Metrics.CollectInterval <= 0 {
		return fmt.Errorf("metrics collect_interval must be positive, got %s", c.Metrics.CollectInterval)
	}
	if c.Metrics.DBStatsInterval <= 0 {
		return fmt.Errorf("metrics db_stats_interval must be positive, got %s", c.Metrics.DBStatsInterval)
	}
	return nil
}
