package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// WattageScope controls which part kinds contribute to a build's total wattage.
type WattageScope string

const (
	// WattageScopeAll sums wattage over every item in the build.
	WattageScopeAll WattageScope = "all"
	// WattageScopeCpuGpu restricts the sum to CPU and GPU items.
	WattageScopeCpuGpu WattageScope = "cpu_gpu"
)

// IsValid checks if the WattageScope is valid
func (s WattageScope) IsValid() bool {
	switch s {
	case WattageScopeAll, WattageScopeCpuGpu:
		return true
	}
	return false
}

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration for user sessions
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Share token configuration
	ShareSecret  string `mapstructure:"SHARE_SECRET"`
	ShareBaseURL string `mapstructure:"SHARE_BASE_URL"`

	// Aggregate configuration
	WattageScope WattageScope `mapstructure:"WATTAGE_SCOPE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "pc_builder")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// Share defaults; SHARE_SECRET falls back to JWT_SECRET when unset
	viper.SetDefault("SHARE_SECRET", "")
	viper.SetDefault("SHARE_BASE_URL", "http://localhost:8080")

	viper.SetDefault("WATTAGE_SCOPE", string(WattageScopeAll))

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(cfg *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ShareSecret == "" {
		cfg.ShareSecret = cfg.JWTSecret
	}
	if !cfg.WattageScope.IsValid() {
		return fmt.Errorf("WATTAGE_SCOPE must be %q or %q", WattageScopeAll, WattageScopeCpuGpu)
	}
	return nil
}
