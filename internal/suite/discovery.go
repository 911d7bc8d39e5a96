package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Discover resolves the config's file glob relative to baseDir and returns
// the matching test files. When the glob matches nothing the error reports
// the pattern verbatim, so a stray trailing comment that leaked into the
// value is visible in the message.
func Discover(cfg *Config, baseDir string) ([]string, error) {
	if cfg.Settings != "" {
		settings := cfg.Settings
		if !filepath.IsAbs(settings) {
			settings = filepath.Join(baseDir, settings)
		}
		// load the settings file before discovering anything, so a bad
		// pointer fails up front
		if _, err := os.ReadFile(settings); err != nil {
			return nil, fmt.Errorf("settings file %q: %w", cfg.Settings, err)
		}
	}

	pattern := filepath.Join(baseDir, cfg.Files)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad file pattern %q: %w", cfg.Files, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matching files found for pattern %q", cfg.Files)
	}
	sort.Strings(matches)
	return matches, nil
}
