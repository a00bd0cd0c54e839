package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Dataset configuration
	DatasetPath  string `yaml:"dataset_path"`
	DatasetWatch bool   `yaml:"dataset_watch"`

	// Session configuration
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`

	// Query cache
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	// Rate limiting (per client IP)
	RateLimitRequests      int `yaml:"rate_limit_requests"`
	RateLimitWindowSeconds int `yaml:"rate_limit_window_seconds"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableCORS    bool `yaml:"enable_cors"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoadConfig loads configuration from defaults, an optional YAML overlay
// file (CONFIG_FILE), and environment variables, in ascending priority
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := getEnv("CONFIG_FILE", "config/base.yaml"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:          ":8080",
		Environment:            "development",
		DatasetPath:            "data/professor_clusters.json",
		DatasetWatch:           true,
		SessionTTLMinutes:      30,
		CacheTTLSeconds:        60,
		RateLimitRequests:      120,
		RateLimitWindowSeconds: 60,
		LogLevel:               "info",
		EnableMetrics:          true,
		EnableCORS:             true,
		AllowedOrigins:         []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// loadFile overlays values from a YAML file. A missing file is fine: the
// default path is only a convention.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides from environment variables, the highest-priority source
func applyEnv(cfg *Config) {
	cfg.ServerAddress = getEnv("SERVER_ADDRESS", cfg.ServerAddress)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.DatasetPath = getEnv("DATASET_PATH", cfg.DatasetPath)
	cfg.DatasetWatch = getEnvBool("DATASET_WATCH", cfg.DatasetWatch)
	cfg.SessionTTLMinutes = getEnvInt("SESSION_TTL_MINUTES", cfg.SessionTTLMinutes)
	cfg.CacheTTLSeconds = getEnvInt("CACHE_TTL_SECONDS", cfg.CacheTTLSeconds)
	cfg.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", cfg.RateLimitRequests)
	cfg.RateLimitWindowSeconds = getEnvInt("RATE_LIMIT_WINDOW_SECONDS", cfg.RateLimitWindowSeconds)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.EnableMetrics = getEnvBool("ENABLE_METRICS", cfg.EnableMetrics)
	cfg.EnableCORS = getEnvBool("ENABLE_CORS", cfg.EnableCORS)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitAndTrim(origins)
	}
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	if c.RateLimitRequests <= 0 || c.RateLimitWindowSeconds <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}
	return nil
}

// SessionTTL returns the session TTL as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// RateLimitWindow returns the rate limit refill window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
