package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a new tank project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

const initManifest = `[project]
name = %q
templates = "templates"
config = "config.json"
output = "out"
`

const initTemplate = `// Sample tank template. %siteName% comes from config.json.
html() -> body() -> {
	h1() -> welcome to %siteName%
}
`

const initConfig = `{
  "siteName": "my site"
}
`

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(filepath.Join(dir, "templates"), 0o755); err != nil {
		return err
	}

	name := filepath.Base(absOrSelf(dir))
	files := map[string]string{
		"tank.toml":            fmt.Sprintf(initManifest, name),
		"config.json":          initConfig,
		"templates/index.tank": initTemplate,
	}

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", path)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized tank project %q in %s\n", name, dir)
	return nil
}

func absOrSelf(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}
