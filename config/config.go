package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	Scrape    ScrapeConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig holds the resolution tunables
type MatchingConfig struct {
	Threshold   int  `mapstructure:"threshold"`     // minimum 0-100 match score
	MaxBoxPrice int  `mapstructure:"max_box_price"` // yen ceiling for a sealed box
	Debug       bool `mapstructure:"debug"`
}

// CacheConfig selects and tunes the per-shop snapshot store
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory", "sqlite" or "redis"
	Path     string        `mapstructure:"path"`
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ScrapeConfig holds observation acquisition settings
type ScrapeConfig struct {
	SourcesDir string        `mapstructure:"sources_dir"` // per-shop observation dumps
	Interval   time.Duration `mapstructure:"interval"`    // 0 disables periodic refresh
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/kaitori/")

	// Environment variable settings
	v.SetEnvPrefix("KAITORI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads variables from a .env file in the working directory.
// Missing file is not an error. Existing environment variables win.
func loadEnvFile() error {
	f, err := os.Open(".env")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, value)
	}
	return scanner.Err()
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Matching defaults
	v.SetDefault("matching.threshold", 75)
	v.SetDefault("matching.max_box_price", 60000)
	v.SetDefault("matching.debug", false)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.path", "data/snapshots.db")
	v.SetDefault("cache.ttl", "168h") // 7 days

	// Scrape defaults
	v.SetDefault("scrape.sources_dir", "data/observations")
	v.SetDefault("scrape.interval", "0")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Matching.Threshold < 1 || config.Matching.Threshold > 100 {
		return fmt.Errorf("matching threshold must be between 1 and 100, got: %d", config.Matching.Threshold)
	}

	if config.Matching.MaxBoxPrice <= 0 {
		return fmt.Errorf("max box price must be positive, got: %d", config.Matching.MaxBoxPrice)
	}

	switch config.Cache.Type {
	case "memory":
	case "sqlite":
		if config.Cache.Path == "" {
			return fmt.Errorf("cache path is required when cache type is 'sqlite'")
		}
	case "redis":
		if config.Cache.RedisURL == "" {
			return fmt.Errorf("Redis URL is required when cache type is 'redis'")
		}
	default:
		return fmt.Errorf("cache type must be 'memory', 'sqlite' or 'redis', got: %s", config.Cache.Type)
	}

	return nil
}
