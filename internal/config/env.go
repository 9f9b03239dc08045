package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port              string        `envconfig:"PORT" default:"8080"`
	KeystoreDir       string        `envconfig:"KEYSTORE_DIR" required:"true"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	NotifyFailures    bool          `envconfig:"NOTIFY_FAILURES" default:"false"`
	NotificationLimit int           `envconfig:"NOTIFICATION_LIMIT" default:"50"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	// envconfig accepts a required key that is set but empty
	if c.KeystoreDir == "" {
		return fmt.Errorf("failed to process config: KEYSTORE_DIR must not be empty")
	}
	if c.NotificationLimit <= 0 {
		return fmt.Errorf("failed to process config: NOTIFICATION_LIMIT must be positive")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetKeystoreDir returns the directory holding .cwt account files
func GetKeystoreDir() string {
	return Get().KeystoreDir
}

// GetLogLevel returns log level from configuration
func GetLogLevel() string {
	return Get().LogLevel
}
