package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tank/internal/diagfmt"
	"tank/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.tank",
	Short: "Parse a tank template and dump its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().String("config", "", "JSON config seeding global symbols")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	config, err := loadConfigFlag(cmd)
	if err != nil {
		return err
	}

	result, err := driver.ParseSeeded(args[0], config, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: 2,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatAstPretty(os.Stdout, result.Tree, result.Root)
	case "json":
		return diagfmt.FormatAstJSON(os.Stdout, result.Tree, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func loadConfigFlag(cmd *cobra.Command) (map[string]string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	return driver.LoadConfig(path)
}
