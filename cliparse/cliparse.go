package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Host         string        `env:"HOST" env-default:"127.0.0.1"`
	Port         int           `env:"PORT" env-default:"3318"`
	DatabaseType string        `env:"DATABASE_TYPE" env-default:"sqlite"`
	DatabaseURL  string        `env:"DATABASE_URL" env-default:"quickly-spin.db"`
	LogLevel     string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat    string        `env:"LOG_FORMAT" env-default:"auto"`
	HistoryLimit int           `env:"HISTORY_LIMIT" env-default:"30"`
	SpinDuration time.Duration `env:"SPIN_DURATION" env-default:"2s"`

	// Roulettes with id <= this count as built-in even without the flag.
	// 0 disables the threshold.
	LegacyBuiltInMaxID int64 `env:"LEGACY_BUILTIN_MAX_ID" env-default:"0"`
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ParseFlags resolves configuration. Flags win over the environment,
// the environment wins over the .env file, and env-default tags fill the rest.
func ParseFlags(args []string) (Config, error) {
	var flags Config

	fs := flag.NewFlagSet("quickly-spin", flag.ContinueOnError)

	envFile := fs.String("env-file", ".env", "Optional dotenv file")

	// Network config
	fs.StringVar(&flags.Host, "host", "", "Listen host (loopback by default)")
	fs.IntVar(&flags.Port, "p", 0, "Server port")

	// Storage config
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL (sqlite file path or postgres DSN)")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Behaviour
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&flags.LogFormat, "log-format", "", "Log format (text, json, auto)")
	fs.IntVar(&flags.HistoryLimit, "history-limit", 0, "Default number of history entries")
	fs.DurationVar(&flags.SpinDuration, "spin-duration", 0, "Wheel spin animation duration")
	fs.Int64Var(&flags.LegacyBuiltInMaxID, "legacy-builtin-max-id", 0, "Treat roulette ids up to this value as built-in")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	// CLI overrides env
	if flags.Host != "" {
		cfg.Host = flags.Host
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.DatabaseURL != "" {
		cfg.DatabaseURL = flags.DatabaseURL
	}
	if flags.DatabaseType != "" {
		cfg.DatabaseType = flags.DatabaseType
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.LogFormat = flags.LogFormat
	}
	if flags.HistoryLimit != 0 {
		cfg.HistoryLimit = flags.HistoryLimit
	}
	if flags.SpinDuration != 0 {
		cfg.SpinDuration = flags.SpinDuration
	}
	if flags.LegacyBuiltInMaxID != 0 {
		cfg.LegacyBuiltInMaxID = flags.LegacyBuiltInMaxID
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	if c.DatabaseType != DatabaseSQLite && c.DatabaseType != DatabasePostgres {
		return fmt.Errorf("invalid database type %q (use sqlite or postgres)", c.DatabaseType)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.HistoryLimit <= 0 {
		return errors.New("history limit must be positive")
	}
	if c.SpinDuration <= 0 {
		return errors.New("spin duration must be positive")
	}
	if c.LegacyBuiltInMaxID < 0 {
		return errors.New("legacy built-in max id cannot be negative")
	}
	return nil
}
