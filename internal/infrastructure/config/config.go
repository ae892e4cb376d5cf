package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/folio-hq/folio/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"rate_limit"`
	Tenancy   sharedConfig.TenancyConfig   `mapstructure:"tenancy"`
	Plans     sharedConfig.PlansConfig     `mapstructure:"plans"`
	Admin     sharedConfig.AdminConfig     `mapstructure:"admin"`
	Storage   sharedConfig.StorageConfig   `mapstructure:"storage"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Messaging sharedConfig.MessagingConfig `mapstructure:"messaging"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// configPath overrides the default search locations when non-empty.
func Load(env string, configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !asConfigNotFound(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func asConfigNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	nf, ok := err.(viper.ConfigFileNotFoundError)
	if ok {
		*target = nf
	}
	return ok
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:5000")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.timezone", "UTC")
	v.SetDefault("server.root_domain", "folio.local")

	// Database defaults
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "folio_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.exp_hours", 24*7)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limit defaults: 100 requests per 15 minutes per IP
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window_minutes", 15)

	// Tenancy defaults
	v.SetDefault("tenancy.reserved_subdomains", []string{"www", "api", "admin", "dashboard", "support", "help", "blog", "docs"})
	v.SetDefault("tenancy.site_cache_minutes", 10)

	// Plan table defaults
	v.SetDefault("plans.free.portfolio_limit", 3)
	v.SetDefault("plans.free.testimonial_limit", 5)
	v.SetDefault("plans.free.service_limit", 3)
	v.SetDefault("plans.free.award_limit", 3)
	v.SetDefault("plans.premium.portfolio_limit", 20)
	v.SetDefault("plans.premium.testimonial_limit", 20)
	v.SetDefault("plans.premium.service_limit", 10)
	v.SetDefault("plans.premium.award_limit", 10)
	v.SetDefault("plans.premium.custom_domain", true)
	v.SetDefault("plans.premium.analytics", true)
	v.SetDefault("plans.premium.seo_optimization", true)
	v.SetDefault("plans.enterprise.portfolio_limit", -1)
	v.SetDefault("plans.enterprise.testimonial_limit", -1)
	v.SetDefault("plans.enterprise.service_limit", -1)
	v.SetDefault("plans.enterprise.award_limit", -1)
	v.SetDefault("plans.enterprise.custom_domain", true)
	v.SetDefault("plans.enterprise.analytics", true)
	v.SetDefault("plans.enterprise.seo_optimization", true)
	v.SetDefault("plans.enterprise.priority_support", true)

	// Admin defaults
	v.SetDefault("admin.emails", []string{})

	// Storage defaults
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.base_path", "./uploads")
	v.SetDefault("storage.base_url", "http://localhost:5000/uploads")
	v.SetDefault("storage.max_size_mb", 5)

	// Email defaults
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "noreply@folio.local")
	v.SetDefault("email.from_name", "Folio")

	// Messaging defaults
	v.SetDefault("messaging.amqp_url", "")
	v.SetDefault("messaging.exchange", "folio.events")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
