package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("KAITORI_SERVER_PORT")
		os.Unsetenv("KAITORI_SERVER_ENVIRONMENT")
		os.Unsetenv("KAITORI_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("KAITORI_MATCHING_THRESHOLD")
		os.Unsetenv("KAITORI_MATCHING_MAX_BOX_PRICE")
		os.Unsetenv("KAITORI_MATCHING_DEBUG")
		os.Unsetenv("KAITORI_CACHE_TYPE")
		os.Unsetenv("KAITORI_CACHE_PATH")
		os.Unsetenv("KAITORI_CACHE_REDIS_URL")
		os.Unsetenv("KAITORI_CACHE_TTL")
		os.Unsetenv("KAITORI_SCRAPE_SOURCES_DIR")
		os.Unsetenv("KAITORI_SCRAPE_INTERVAL")
		os.Unsetenv("KAITORI_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.Threshold != 75 {
			t.Errorf("Matching.Threshold = %d, want 75", cfg.Matching.Threshold)
		}
		if cfg.Matching.MaxBoxPrice != 60000 {
			t.Errorf("Matching.MaxBoxPrice = %d, want 60000", cfg.Matching.MaxBoxPrice)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 168*time.Hour {
			t.Errorf("Cache.TTL = %v, want 168h", cfg.Cache.TTL)
		}
		if cfg.Scrape.SourcesDir != "data/observations" {
			t.Errorf("Scrape.SourcesDir = %s, want data/observations", cfg.Scrape.SourcesDir)
		}
		if cfg.Scrape.Interval != 0 {
			t.Errorf("Scrape.Interval = %v, want 0", cfg.Scrape.Interval)
		}
		if cfg.RateLimit.PerIP != 60 {
			t.Errorf("RateLimit.PerIP = %d, want 60", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("KAITORI_SERVER_PORT", "9090")
		os.Setenv("KAITORI_SERVER_ENVIRONMENT", "production")
		os.Setenv("KAITORI_MATCHING_THRESHOLD", "80")
		os.Setenv("KAITORI_MATCHING_MAX_BOX_PRICE", "50000")
		os.Setenv("KAITORI_CACHE_TYPE", "redis")
		os.Setenv("KAITORI_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("KAITORI_CACHE_TTL", "24h")
		os.Setenv("KAITORI_SCRAPE_INTERVAL", "30m")
		os.Setenv("KAITORI_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Matching.Threshold != 80 {
			t.Errorf("Matching.Threshold = %d, want 80", cfg.Matching.Threshold)
		}
		if cfg.Matching.MaxBoxPrice != 50000 {
			t.Errorf("Matching.MaxBoxPrice = %d, want 50000", cfg.Matching.MaxBoxPrice)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Scrape.Interval != 30*time.Minute {
			t.Errorf("Scrape.Interval = %v, want 30m", cfg.Scrape.Interval)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("KAITORI_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails validation when redis URL missing for redis cache", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("KAITORI_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})

	t.Run("fails validation for out-of-range threshold", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("KAITORI_MATCHING_THRESHOLD", "150")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for threshold over 100")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		err := loadEnvFile()
		if err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables from .env file", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Create .env file
		envContent := `
# Comment line
TEST_VAR_1=value1
TEST_VAR_2=value2

# Another comment
TEST_VAR_3=value3
`
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		// Clear any existing values
		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_VAR_1") != "value1" {
			t.Errorf("TEST_VAR_1 = %s, want value1", os.Getenv("TEST_VAR_1"))
		}
		if os.Getenv("TEST_VAR_2") != "value2" {
			t.Errorf("TEST_VAR_2 = %s, want value2", os.Getenv("TEST_VAR_2"))
		}
		if os.Getenv("TEST_VAR_3") != "value3" {
			t.Errorf("TEST_VAR_3 = %s, want value3", os.Getenv("TEST_VAR_3"))
		}

		// Cleanup
		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")
	})

	t.Run("skips empty lines and comments", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Create .env file with various formats
		envContent := `
# This is a comment
   # This is also a comment

TEST_SKIP_1=value1

TEST_SKIP_2=value2
# TEST_COMMENTED=should_not_load
`
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Unsetenv("TEST_SKIP_1")
		os.Unsetenv("TEST_SKIP_2")
		os.Unsetenv("TEST_COMMENTED")

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_SKIP_1") != "value1" {
			t.Errorf("TEST_SKIP_1 not loaded correctly")
		}
		if os.Getenv("TEST_SKIP_2") != "value2" {
			t.Errorf("TEST_SKIP_2 not loaded correctly")
		}
		if os.Getenv("TEST_COMMENTED") != "" {
			t.Errorf("TEST_COMMENTED should not be loaded from comment")
		}

		os.Unsetenv("TEST_SKIP_1")
		os.Unsetenv("TEST_SKIP_2")
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		// Save current directory
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		// Create temp directory
		tempDir := t.TempDir()
		os.Chdir(tempDir)

		// Set existing env var
		os.Setenv("TEST_OVERRIDE", "existing-value")

		// Create .env file that tries to override
		envContent := "TEST_OVERRIDE=new-value"
		err := os.WriteFile(".env", []byte(envContent), 0644)
		if err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		err = loadEnvFile()
		if err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		// Should still have original value
		if os.Getenv("TEST_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_OVERRIDE"))
		}

		os.Unsetenv("TEST_OVERRIDE")
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Matching: MatchingConfig{Threshold: 75, MaxBoxPrice: 60000},
			Cache:    CacheConfig{Type: "memory"},
		}
	}

	t.Run("validates successfully with sane values", func(t *testing.T) {
		cfg := base()

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when threshold is zero", func(t *testing.T) {
		cfg := base()
		cfg.Matching.Threshold = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero threshold")
		}
	})

	t.Run("fails when max box price is negative", func(t *testing.T) {
		cfg := base()
		cfg.Matching.MaxBoxPrice = -1

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for negative price ceiling")
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cfg := base()
		cfg.Cache.Type = "invalid-type"

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for invalid cache type")
		}
	})

	t.Run("validates sqlite cache type with path", func(t *testing.T) {
		cfg := base()
		cfg.Cache = CacheConfig{Type: "sqlite", Path: "data/snapshots.db"}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil for valid sqlite config", err)
		}
	})

	t.Run("fails for sqlite cache without path", func(t *testing.T) {
		cfg := base()
		cfg.Cache = CacheConfig{Type: "sqlite"}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for sqlite without path")
		}
	})

	t.Run("validates redis cache type with URL", func(t *testing.T) {
		cfg := base()
		cfg.Cache = CacheConfig{Type: "redis", RedisURL: "redis://localhost:6379"}

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil for valid redis config", err)
		}
	})

	t.Run("fails for redis cache without URL", func(t *testing.T) {
		cfg := base()
		cfg.Cache = CacheConfig{Type: "redis", RedisURL: ""}

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for redis without URL")
		}
	})
}
