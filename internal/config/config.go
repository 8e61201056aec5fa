package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the rulebook API service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	CacheTTL      time.Duration
	LoginRateMax  int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// DemoMode reports whether the service runs without a backing store and
// serves the placeholder dataset instead. This is a supported configuration,
// not an error state.
func (c Config) DemoMode() bool {
	return c.DatabaseURL == ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RULEBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Rulebook API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("login.rate_max", 10)
	// Demo credentials carried over from the original admin console; override
	// them in any non-demo deployment.
	v.SetDefault("admin.username", "Developer")
	v.SetDefault("admin.password", "Developer123")

	ttlString := v.GetString("cache.ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid cache ttl: %w", err)
	}

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		DatabaseURL:   v.GetString("database.url"),
		RedisURL:      v.GetString("redis.url"),
		JWTSecret:     v.GetString("jwt.secret"),
		AdminUsername: v.GetString("admin.username"),
		AdminPassword: v.GetString("admin.password"),
		CacheTTL:      ttl,
		LoginRateMax:  v.GetInt("login.rate_max"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.LoginRateMax <= 0 {
		cfg.LoginRateMax = 10
	}

	return cfg, nil
}
