package driver

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadConfig reads a flat JSON object of strings and returns the
// name→literal mapping used to seed Global symbols before parsing.
// Anything but a flat object of strings is an error.
func LoadConfig(path string) (map[string]string, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var mapping map[string]string
	if err := json.Unmarshal(content, &mapping); err != nil {
		return nil, fmt.Errorf("config %s must be a flat JSON object of strings: %w", path, err)
	}
	return mapping, nil
}
