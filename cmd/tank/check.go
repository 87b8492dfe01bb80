package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tank/internal/diagfmt"
	"tank/internal/driver"
	"tank/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.tank | dir]",
	Short: "Check templates for errors without generating output",
	Long: `Check parses templates and reports every diagnostic found. Any error
blocks generation, so a failing check exits non-zero. With no argument it
checks the templates directory of the enclosing tank.toml project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("config", "", "JSON config seeding global symbols")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "reparse even unchanged clean templates")
}

func runCheck(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	target, config, err := resolveCheckTarget(cmd, args)
	if err != nil {
		return err
	}

	var cache *driver.CheckCache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		// Cache trouble is never a reason to fail a check.
		cache, _ = driver.OpenCheckCache("tank")
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	var results []*driver.CheckResult
	if info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		results, err = driver.CheckDir(cmd.Context(), target, config, maxDiagnostics(cmd), jobs, cache)
	} else {
		var res *driver.CheckResult
		res, err = driver.Check(target, config, maxDiagnostics(cmd), cache)
		if res != nil {
			results = []*driver.CheckResult{res}
		}
	}
	if err != nil {
		return err
	}

	opts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 2,
	}

	failed := 0
	for _, res := range results {
		bag := res.Bag()
		if bag.Len() > 0 && res.Parse != nil {
			diagfmt.Pretty(os.Stderr, bag, res.Parse.FileSet, opts)
		}
		if !res.Clean() {
			failed++
		} else if !quiet {
			status := "ok"
			if res.Cached {
				status = "ok (cached)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Path, status)
		}
	}

	if failed > 0 {
		return fmt.Errorf("check failed: %d of %d template(s) have errors", failed, len(results))
	}
	return nil
}

// resolveCheckTarget decides what to check and which config seeds the
// symbols: explicit arguments win, then the enclosing tank.toml project.
func resolveCheckTarget(cmd *cobra.Command, args []string) (string, map[string]string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	if target == "" || configPath == "" {
		if manifestPath, ok, err := project.FindTankToml("."); err == nil && ok {
			manifest, err := project.LoadManifest(manifestPath)
			if err != nil {
				return "", nil, err
			}
			if target == "" {
				target = manifest.Templates
			}
			if configPath == "" {
				configPath = manifest.Config
			}
		}
	}
	if target == "" {
		return "", nil, fmt.Errorf("nothing to check: no argument and no tank.toml found")
	}

	var config map[string]string
	if configPath != "" {
		if config, err = driver.LoadConfig(configPath); err != nil {
			return "", nil, err
		}
	}
	return target, config, nil
}
