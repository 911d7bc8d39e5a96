package suite

import (
	"fmt"
	"os"
	"strings"
)

// SectionName is the section suite settings are read from, e.g.
//
//	[suite]
//	settings = settings.yaml
//	files = test_*.go
//	options = -v -count=1
const SectionName = "suite"

// Config is the parsed suite.ini.
type Config struct {
	// Settings points at a settings file loaded before discovery. Optional.
	Settings string
	// Files is the glob used to discover test files. Required.
	Files string
	// Options is an extra command-line options string, split on whitespace.
	Options string
}

// LoadConfig reads and validates a suite.ini file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open suite config: %w", err)
	}
	defer f.Close()

	ini, err := parseINI(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := &Config{}
	cfg.Settings, _ = ini.get(SectionName, "settings")
	cfg.Options, _ = ini.get(SectionName, "options")

	files, ok := ini.get(SectionName, "files")
	if !ok || files == "" {
		return nil, fmt.Errorf("%s: missing required key %q in [%s]", path, "files", SectionName)
	}
	cfg.Files = files
	return cfg, nil
}

// OptionList splits the options string into individual arguments.
func (c *Config) OptionList() []string {
	return strings.Fields(c.Options)
}
