package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env" validate:"oneof=local development production"` // current application environment
	LogLevel         string    `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	TelegramAPIToken string    `mapstructure:"telegram_api_token" validate:"required"` // Telegram API token loaded from environment
	DB               DB        `mapstructure:"database"`
	OpenAI           OpenAI    `mapstructure:"openai"`
	Languages        Languages `mapstructure:"languages"`
	HTTP             HTTP      `mapstructure:"http"`
	Reminders        Reminders `mapstructure:"reminders"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"url" validate:"required"`    // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_conns" validate:"min=1"` // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`          // maximum lifetime of a single connection
	AutoMigrate     bool          `mapstructure:"auto_migrate"`               // apply embedded migrations on startup
}

// OpenAI configures the card content generator.
type OpenAI struct {
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	Model   string        `mapstructure:"model" validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1s"`
}

// Languages are the language tags of the two card sides.
type Languages struct {
	Source string `mapstructure:"source" validate:"required"`
	Target string `mapstructure:"target" validate:"required,nefield=Source"`
}

// HTTP configures the JSON API.
type HTTP struct {
	Enabled         bool   `mapstructure:"enabled"`
	Addr            string `mapstructure:"addr" validate:"required_if=Enabled true"`
	RateLimit       int    `mapstructure:"rate_limit" validate:"min=1"` // requests per minute per IP
	AllowHeaderAuth bool   `mapstructure:"allow_header_auth"`           // trust X-User-Id headers, for local development
}

// Reminders configures the due-card reminder dispatcher.
type Reminders struct {
	Schedule string        `mapstructure:"schedule" validate:"required"`
	Interval time.Duration `mapstructure:"interval" validate:"min=1m"` // minimum gap between two reminders to one user
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// IsProduction reports whether the production profile is active.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Local .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("openai.model", "gpt-4.1-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.timeout", "30s")
	v.SetDefault("languages.source", "ru")
	v.SetDefault("languages.target", "el")
	v.SetDefault("http.enabled", true)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.rate_limit", 100)
	v.SetDefault("http.allow_header_auth", false)
	v.SetDefault("reminders.schedule", "0 * * * *")
	v.SetDefault("reminders.interval", "20h")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("openai.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("languages.source", "SOURCE_LANGUAGE")
	_ = v.BindEnv("languages.target", "TARGET_LANGUAGE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	var missing, invalid []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" || fe.Tag() == "required_if" {
			missing = append(missing, fe.Namespace())
			continue
		}
		invalid = append(invalid, fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param()))
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnvironmentVariables, strings.Join(missing, ", "))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(invalid, "; "))
}
