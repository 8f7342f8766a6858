package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, "", cfg.Log.File)
	require.Equal(t, 64, cfg.Parser.MaxDepth)
	require.Equal(t, "wkt", cfg.Source.Column)
	require.Equal(t, "id", cfg.Source.KeyColumn)
	require.False(t, cfg.Source.Geometry)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WKTSTUFF_LOG_LEVEL", "debug")
	t.Setenv("WKTSTUFF_DATABASE_DSN", "dbname=gis")
	t.Setenv("WKTSTUFF_PARSER_MAX_DEPTH", "8")
	t.Setenv("WKTSTUFF_SOURCE_TABLE", "parcels")
	t.Setenv("WKTSTUFF_SOURCE_GEOMETRY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "dbname=gis", cfg.Database.DSN)
	require.Equal(t, 8, cfg.Parser.MaxDepth)
	require.Equal(t, "parcels", cfg.Source.Table)
	require.True(t, cfg.Source.Geometry)
	require.NoError(t, cfg.ValidateSource())
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("WKTSTUFF_LOG_LEVEL", "loud")

	_, err := Load()
	require.EqualError(t, err,
		"config validation failed:\n  - log.level must be debug, info, warn or error, got \"loud\"")
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		Log:    LogConfig{Level: "info", Format: "xml"},
		Parser: ParserConfig{MaxDepth: -1},
	}

	err := cfg.Validate()
	require.EqualError(t, err,
		"config validation failed:\n"+
			"  - log.format must be json or text, got \"xml\"\n"+
			"  - parser.max_depth must not be negative, got -1")
}

func TestValidateSource(t *testing.T) {
	cfg := &Config{Source: SourceConfig{Column: "wkt", KeyColumn: "id"}}

	err := cfg.ValidateSource()
	require.EqualError(t, err,
		"config validation failed:\n  - database.dsn is required\n  - source.table is required")
}
