package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the commands.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Parser   ParserConfig   `mapstructure:"parser"`
	Source   SourceConfig   `mapstructure:"source"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File is an optional path that receives a JSON copy of every record.
	File string `mapstructure:"file"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type ParserConfig struct {
	MaxDepth int `mapstructure:"max_depth"`
}

// SourceConfig names the table and columns the load command reads WKT from.
type SourceConfig struct {
	Table     string `mapstructure:"table"`
	Column    string `mapstructure:"column"`
	KeyColumn string `mapstructure:"key_column"`
	Geometry  bool   `mapstructure:"geometry"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("parser.max_depth", 64)
	v.SetDefault("source.table", "")
	v.SetDefault("source.column", "wkt")
	v.SetDefault("source.key_column", "id")
	v.SetDefault("source.geometry", false)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	// Environment variables: WKTSTUFF_DATABASE_DSN → database.dsn
	v.SetEnvPrefix("WKTSTUFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Parser.MaxDepth < 0 {
		errs = append(errs, fmt.Sprintf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth))
	}

	return joinProblems(errs)
}

// ValidateSource checks the settings only the load command needs.
func (c *Config) ValidateSource() error {
	var errs []string

	if c.Database.DSN == "" {
		errs = append(errs, "database.dsn is required")
	}
	if c.Source.Table == "" {
		errs = append(errs, "source.table is required")
	}
	if c.Source.Column == "" {
		errs = append(errs, "source.column is required")
	}
	if c.Source.KeyColumn == "" {
		errs = append(errs, "source.key_column is required")
	}

	return joinProblems(errs)
}

func joinProblems(errs []string) error {
	if len(errs) > 0 {
		return errors.Newf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
