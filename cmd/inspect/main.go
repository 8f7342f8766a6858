package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/graeme-hill/wktstuff-go/internal/cli"
	"github.com/graeme-hill/wktstuff-go/lib"
	"github.com/spf13/cobra"
)

func main() {
	cli.Exit(makeInspectCommand().Execute())
}

func makeInspectCommand() *cobra.Command {
	var format string
	var maxDepth int

	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("max-depth") && maxDepth < 1 {
			return errors.WithHint(
				errors.Newf("--max-depth must be at least 1 but got %d", maxDepth),
				fmt.Sprintf("leave --max-depth out to use the default of %d", lib.DefaultMaxDepth))
		}

		env, err := cli.Bootstrap()
		if err != nil {
			return err
		}
		defer env.Close()

		opts := env.ParseOptions()
		if cmd.Flags().Changed("max-depth") {
			opts.MaxDepth = maxDepth
		}

		docs, err := readDocuments(args, opts)
		if err != nil {
			return err
		}
		slog.Debug("parsed wkt documents", "documents", len(docs))

		return writeDocuments(cmd.OutOrStdout(), format, docs)
	}

	cmd := &cobra.Command{
		Use:   "inspect <path>...",
		Short: "Parse WKT files and print what they contain",
		Long: `Parse WKT files and print what they contain. Each path is either a .wkt file
or a directory whose .wkt files are all read.

Formats:
    report   geometry trees plus totals (default)
    tree     geometry trees only
    geojson  one GeoJSON geometry per line`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCmdFunc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&format, "format", "report", "output format: report, tree or geojson")
	cmd.Flags().IntVar(&maxDepth, "max-depth", lib.DefaultMaxDepth, "deepest GEOMETRYCOLLECTION nesting accepted, at least 1")
	return cmd
}

func readDocuments(paths []string, opts lib.Options) ([]lib.Document, error) {
	docs := []lib.Document{}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			dirDocs, err := lib.ReadDocumentsFromDir(path, opts)
			if err != nil {
				return nil, err
			}
			docs = append(docs, dirDocs...)
			continue
		}
		doc, err := lib.ReadDocumentFromFile(path, opts)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func writeDocuments(w io.Writer, format string, docs []lib.Document) error {
	switch format {
	case "report":
		return lib.WriteReport(w, docs)
	case "tree":
		for _, doc := range docs {
			if _, err := io.WriteString(w, lib.FormatTree(doc.Geometries)); err != nil {
				return err
			}
		}
		return nil
	case "geojson":
		for _, doc := range docs {
			for _, g := range doc.Geometries {
				b, err := lib.MarshalGeoJSON(g)
				if err != nil {
					return errors.Wrapf(err, "document %s", doc.Name)
				}
				if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return errors.WithHint(
			errors.Newf("unknown format %q", format),
			"supported formats are report, tree and geojson")
	}
}
