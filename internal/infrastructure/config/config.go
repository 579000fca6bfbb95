// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Planner  PlannerConfig  `mapstructure:"planner"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database configuration
type DatabaseConfig struct {
	Driver      string `mapstructure:"driver"`
	Path        string `mapstructure:"path"`
	LogLevel    string `mapstructure:"log_level"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// PlannerConfig contains the tuning constants of the generation engine.
// These are configuration, not business rules; the defaults mirror the
// consumer-app heuristics and carry no deeper derivation.
type PlannerConfig struct {
	// BudgetSafetyFactor is applied on top of the budget/cost ratio when
	// scaling costs down, leaving headroom against rounding drift.
	BudgetSafetyFactor float64 `mapstructure:"budget_safety_factor"`

	// Shopping list heuristics
	MinPurchaseQuantityG float64 `mapstructure:"min_purchase_quantity_g"`

	// Meal prep heuristics, all in minutes except the bulk discount
	BasePrepMinutes       int     `mapstructure:"base_prep_minutes"`
	BaseCookMinutes       int     `mapstructure:"base_cook_minutes"`
	MinutesPerServing     int     `mapstructure:"minutes_per_serving"`
	IndividualTaskMinutes int     `mapstructure:"individual_task_minutes"`
	ChoppingCapMinutes    int     `mapstructure:"chopping_cap_minutes"`
	BulkDiscountEUR       float64 `mapstructure:"bulk_discount_eur"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/platewise")
	}

	// Enable environment variable override
	v.SetEnvPrefix("PLATEWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration built from defaults only, for tests
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("default config does not unmarshal: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Platewise")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.max_header_bytes", 1<<20) // 1MB
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "platewise.db")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.auto_migrate", true)

	// Planner defaults
	v.SetDefault("planner.budget_safety_factor", 0.98)
	v.SetDefault("planner.min_purchase_quantity_g", 100.0)
	v.SetDefault("planner.base_prep_minutes", 30)
	v.SetDefault("planner.base_cook_minutes", 45)
	v.SetDefault("planner.minutes_per_serving", 10)
	v.SetDefault("planner.individual_task_minutes", 25)
	v.SetDefault("planner.chopping_cap_minutes", 30)
	v.SetDefault("planner.bulk_discount_eur", 0.15)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		return fmt.Errorf("database.path is required for sqlite")
	}

	if c.Planner.BudgetSafetyFactor <= 0 || c.Planner.BudgetSafetyFactor > 1 {
		return fmt.Errorf("planner.budget_safety_factor must be in (0, 1]")
	}

	if c.Planner.MinPurchaseQuantityG < 0 {
		return fmt.Errorf("planner.min_purchase_quantity_g cannot be negative")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
