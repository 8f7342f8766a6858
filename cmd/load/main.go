package main

import (
	"os"
	"os/signal"

	"github.com/graeme-hill/wktstuff-go/internal/cli"
	"github.com/graeme-hill/wktstuff-go/internal/config"
	"github.com/graeme-hill/wktstuff-go/lib"
	"github.com/spf13/cobra"
)

func main() {
	cli.Exit(makeLoadCommand().Execute())
}

type sourceFlags struct {
	table     string
	column    string
	keyColumn string
	geometry  bool
}

func makeLoadCommand() *cobra.Command {
	var flags sourceFlags

	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		env, err := cli.Bootstrap()
		if err != nil {
			return err
		}
		defer env.Close()

		applySourceFlags(cmd, flags, env.Config)
		if err := env.Config.ValidateSource(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		docs, err := lib.LoadDocumentsFromTable(ctx, env.Config.Database.DSN, tableSource(env.Config), env.ParseOptions())
		if err != nil {
			return err
		}
		return lib.WriteReport(cmd.OutOrStdout(), docs)
	}

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Parse the WKT stored in a Postgres table and print a report",
		Long: `Parse the WKT stored in a Postgres table and print a report. Every row is one
document named after its key column. With --geometry the column is read
through ST_AsText, so PostGIS geometry columns work as well as text ones.

The connection string comes from database.dsn (WKTSTUFF_DATABASE_DSN).`,
		Args:          cobra.NoArgs,
		RunE:          runCmdFunc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&flags.table, "table", "", "table to read (source.table)")
	cmd.Flags().StringVar(&flags.column, "column", "", "column holding the WKT (source.column)")
	cmd.Flags().StringVar(&flags.keyColumn, "key-column", "", "column naming each row (source.key_column)")
	cmd.Flags().BoolVar(&flags.geometry, "geometry", false, "column is a PostGIS geometry (source.geometry)")
	return cmd
}

// applySourceFlags lets flags that were set on the command line override
// the loaded configuration.
func applySourceFlags(cmd *cobra.Command, flags sourceFlags, cfg *config.Config) {
	if cmd.Flags().Changed("table") {
		cfg.Source.Table = flags.table
	}
	if cmd.Flags().Changed("column") {
		cfg.Source.Column = flags.column
	}
	if cmd.Flags().Changed("key-column") {
		cfg.Source.KeyColumn = flags.keyColumn
	}
	if cmd.Flags().Changed("geometry") {
		cfg.Source.Geometry = flags.geometry
	}
}

func tableSource(cfg *config.Config) lib.TableSource {
	return lib.TableSource{
		Table:     cfg.Source.Table,
		Column:    cfg.Source.Column,
		KeyColumn: cfg.Source.KeyColumn,
		Geometry:  cfg.Source.Geometry,
	}
}
