package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a project's tank.toml [project] section, with paths resolved
// against the manifest's own directory.
type Manifest struct {
	Name      string
	Templates string // directory holding *.tank files
	Config    string // optional flat JSON config seeding globals
	Output    string // where the generator writes markup
}

var (
	// ErrProjectSectionMissing indicates tank.toml has no [project] table.
	ErrProjectSectionMissing = errors.New("missing [project]")
	// ErrProjectNameMissing indicates [project].name is absent or blank.
	ErrProjectNameMissing = errors.New("missing [project].name")
)

type manifestFile struct {
	Project struct {
		Name      string `toml:"name"`
		Templates string `toml:"templates"`
		Config    string `toml:"config"`
		Output    string `toml:"output"`
	} `toml:"project"`
}

// LoadManifest parses tank.toml at path.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}
	name := strings.TrimSpace(cfg.Project.Name)
	if !meta.IsDefined("project", "name") || name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectNameMissing)
	}

	base := filepath.Dir(path)
	m := Manifest{
		Name:      name,
		Templates: resolve(base, cfg.Project.Templates, "templates"),
		Output:    resolve(base, cfg.Project.Output, "out"),
	}
	if cfg.Project.Config != "" {
		m.Config = resolve(base, cfg.Project.Config, "")
	}
	return m, nil
}

func resolve(base, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(base, value)
}
