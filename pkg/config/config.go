package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a .env file).
type Config struct {
	App       AppConfig
	API       APIConfig
	Print     PrintConfig
	DevServer DevServerConfig
	Log       LogConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig settings of the accounting backend the client talks to.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PrintConfig settings of the printable-document output.
type PrintConfig struct {
	OutputDir string
}

// DevServerConfig settings of the local development backend.
type DevServerConfig struct {
	Host string
	Port int
	// WithIssuer controls whether /issuer-profile is served. Disabling it
	// exercises the client's fallback path.
	WithIssuer bool
}

// Addr returns the listen address (host:port).
func (c DevServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig logging settings.
type LogConfig struct {
	Level string
}

// Load reads the configuration from environment variables (and optionally a
// .env file). Env vars take priority. Expected names: APP_ENV, API_BASE_URL,
// API_TIMEOUT_SECONDS, PRINT_OUTPUT_DIR, DEVSERVER_PORT, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional .env file next to the binary.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "accounting-client"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "http://localhost:8080"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Print: PrintConfig{
			OutputDir: getString(v, "PRINT_OUTPUT_DIR", "."),
		},
		DevServer: DevServerConfig{
			Host:       getString(v, "DEVSERVER_HOST", "127.0.0.1"),
			Port:       getInt(v, "DEVSERVER_PORT", 8080),
			WithIssuer: getBool(v, "DEVSERVER_WITH_ISSUER", true),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt keeps the default when the value is absent or not a number, so a
// typo in API_TIMEOUT_SECONDS can never zero the client timeout.
func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
