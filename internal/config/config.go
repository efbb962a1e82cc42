// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Driver     string        `json:"driver" yaml:"driver"`
		Host       string        `json:"host" yaml:"host"`
		Port       string        `json:"port" yaml:"port"`
		User       string        `json:"user" yaml:"user"`
		Password   string        `json:"password" yaml:"password"`
		Name       string        `json:"name" yaml:"name"`
		SSLMode    string        `json:"sslmode" yaml:"sslmode"`
		SearchPath string        `json:"schema" yaml:"schema"`
		FilePath   string        `json:"file_path" yaml:"file_path"`
		Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"database" yaml:"database"`
	JWT struct {
		Secret       string        `json:"secret" yaml:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period" yaml:"expiry_period"`
	} `json:"jwt" yaml:"jwt"`
	// Argon2id cost for new password hashes. Zero fields keep the defaults.
	PasswordHash struct {
		Time      uint32 `json:"time" yaml:"time"`
		MemoryKiB uint32 `json:"memory_kib" yaml:"memory_kib"`
		Threads   uint8  `json:"threads" yaml:"threads"`
	} `json:"password_hash" yaml:"password_hash"`
	Server struct {
		Port         string        `json:"port" yaml:"port"`
		ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	} `json:"server" yaml:"server"`
	Sendgrid struct {
		APIKey string `json:"api_key" yaml:"api_key"`
		From   string `json:"from" yaml:"from"`
	} `json:"sendgrid" yaml:"sendgrid"`
	SMTP map[string]struct {
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
		From     string `json:"from" yaml:"from"`
	} `json:"smtp" yaml:"smtp"`
	Redis struct {
		Addr     string `json:"addr" yaml:"addr"`
		Password string `json:"password" yaml:"password"`
		DB       int    `json:"db" yaml:"db"`
	} `json:"redis" yaml:"redis"`
	Cache struct {
		TTL  time.Duration `json:"ttl" yaml:"ttl"`
		Size int           `json:"size" yaml:"size"`
	} `json:"cache" yaml:"cache"`
	Organizations struct {
		AutoApprove bool `json:"auto_approve" yaml:"auto_approve"`
	} `json:"organizations" yaml:"organizations"`
	Reconcile struct {
		Schedule  string `json:"schedule" yaml:"schedule"`
		BatchSize int    `json:"batch_size" yaml:"batch_size"`
	} `json:"reconcile" yaml:"reconcile"`
	Metrics struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`
	EmailNotifications bool   `json:"email_notifications" yaml:"email_notifications"`
	BaseURL            string `json:"base_url" yaml:"base_url"`
}

// Load builds the configuration from an optional YAML file named by
// TOUNESNA_CONFIG, then lets environment variables override it.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("TOUNESNA_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// Database configuration
	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("DB_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", cfg.Database.SSLMode)
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", cfg.Database.SearchPath)
	cfg.Database.FilePath = getEnv("DB_FILE", cfg.Database.FilePath)
	cfg.Database.Timeout = getEnvDuration("DB_TIMEOUT", cfg.Database.Timeout)

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", cfg.JWT.Secret)
	cfg.JWT.ExpiryPeriod = getEnvDuration("JWT_EXPIRY", cfg.JWT.ExpiryPeriod)

	cfg.PasswordHash.Time = uint32(getEnvInt("ARGON2_TIME", int(cfg.PasswordHash.Time)))
	cfg.PasswordHash.MemoryKiB = uint32(getEnvInt("ARGON2_MEMORY_KIB", int(cfg.PasswordHash.MemoryKiB)))
	cfg.PasswordHash.Threads = uint8(getEnvInt("ARGON2_THREADS", int(cfg.PasswordHash.Threads)))

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", cfg.Sendgrid.APIKey)
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", cfg.Sendgrid.From)
	cfg.EmailNotifications = getEnvBool("EMAIL_NOTIFICATIONS", cfg.EmailNotifications)

	// Redis follower counters
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", cfg.Cache.TTL)
	cfg.Cache.Size = getEnvInt("CACHE_SIZE", cfg.Cache.Size)

	cfg.Organizations.AutoApprove = getEnvBool("ORG_AUTO_APPROVE", cfg.Organizations.AutoApprove)

	cfg.Reconcile.Schedule = getEnv("RECONCILE_SCHEDULE", cfg.Reconcile.Schedule)
	cfg.Reconcile.BatchSize = getEnvInt("RECONCILE_BATCH_SIZE", cfg.Reconcile.BatchSize)

	cfg.Metrics.Enabled = getEnvBool("METRICS_ENABLED", cfg.Metrics.Enabled)

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", cfg.Server.Port)
	cfg.BaseURL = getEnv("BASE_URL", cfg.BaseURL)

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}

	cfg.Database.Driver = "postgres"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "tounesna"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"
	cfg.Database.FilePath = "tounesna.db"
	cfg.Database.Timeout = 5 * time.Second

	cfg.JWT.Secret = "your-secret-key"
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	cfg.Cache.TTL = 5 * time.Minute
	cfg.Cache.Size = 1024

	cfg.Organizations.AutoApprove = true

	cfg.Reconcile.Schedule = "@every 30m"
	cfg.Reconcile.BatchSize = 100

	cfg.Metrics.Enabled = true

	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.BaseURL = "http://localhost:8080"

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
