package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Vision    VisionConfig
	Cache     CacheConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
	Matching  MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VisionConfig holds vision/embedding provider configuration
type VisionConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds analysis-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// CatalogConfig holds catalog store configuration
type CatalogConfig struct {
	SeedFile string `mapstructure:"seed_file"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// MatchingConfig holds matching engine configuration
type MatchingConfig struct {
	StyleWeight             float64 `mapstructure:"style_weight"`
	ColorWeight             float64 `mapstructure:"color_weight"`
	PriceWeight             float64 `mapstructure:"price_weight"`
	OccasionWeight          float64 `mapstructure:"occasion_weight"`
	HighConfidenceThreshold float64 `mapstructure:"high_confidence_threshold"`
	ParallelThreshold       int     `mapstructure:"parallel_threshold"`
	EnableDebugLogging      bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stylematch/")

	// Environment variable settings
	v.SetEnvPrefix("STYLEMATCH")
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Vision defaults
	v.SetDefault("vision.base_url", "https://api.stylevision.example.com")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)

	// Matching defaults: style dominates, secondary factors share the rest
	v.SetDefault("matching.style_weight", 0.4)
	v.SetDefault("matching.color_weight", 0.2)
	v.SetDefault("matching.price_weight", 0.2)
	v.SetDefault("matching.occasion_weight", 0.2)
	v.SetDefault("matching.high_confidence_threshold", 0.8)
	v.SetDefault("matching.parallel_threshold", 2000)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Vision.APIKey == "" {
		return fmt.Errorf("vision API key is required (set STYLEMATCH_VISION_API_KEY)")
	}

	weights := map[string]float64{
		"style_weight":    config.Matching.StyleWeight,
		"color_weight":    config.Matching.ColorWeight,
		"price_weight":    config.Matching.PriceWeight,
		"occasion_weight": config.Matching.OccasionWeight,
	}
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("matching.%s must be in [0,1], got: %v", name, w)
		}
	}

	if t := config.Matching.HighConfidenceThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("matching.high_confidence_threshold must be in (0,1], got: %v", t)
	}

	return nil
}
