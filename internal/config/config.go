package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"organizer/internal/domain"
	appErrors "organizer/internal/errors"
)

const (
	// DefaultConfigFile is the mapping file looked up when --config is not
	// given, resolved relative to the target directory.
	DefaultConfigFile = "file_types.json"

	// DefaultLogFile is created in append mode inside the target directory.
	DefaultLogFile = "organizer.log"
)

type Config struct {
	TargetDir   string
	ConfigPath  string
	DryRun      bool
	NoLogFile   bool
	Verbose     bool
	Interactive bool
}

// Finalize resolves the target to an absolute path, applies environment
// fallbacks, and anchors a relative config path to the target directory.
func (c *Config) Finalize() error {
	if c.TargetDir == "" {
		return errors.New("target directory is required")
	}

	abs, err := filepath.Abs(c.TargetDir)
	if err != nil {
		return err
	}
	c.TargetDir = abs

	if c.ConfigPath == "" {
		c.ConfigPath = envOrEmpty("ORGANIZER_CONFIG")
	}
	if c.ConfigPath == "" {
		c.ConfigPath = DefaultConfigFile
	}
	if !filepath.IsAbs(c.ConfigPath) {
		c.ConfigPath = filepath.Join(c.TargetDir, c.ConfigPath)
	}

	if !c.Verbose {
		c.Verbose = envTruthy("ORGANIZER_VERBOSE")
	}

	return nil
}

// LogPath is where the append-mode log file lives for this run.
func (c Config) LogPath() string {
	return filepath.Join(c.TargetDir, DefaultLogFile)
}

// LoadMapping reads the JSON category -> extensions table and normalizes it
// into a domain.Mapping. A missing or malformed file is fatal; the run must
// not start with a guessed mapping.
func LoadMapping(path string) (domain.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Mapping{}, appErrors.Wrap(appErrors.InvalidConfig, "read config", path, err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.Mapping{}, appErrors.Wrap(appErrors.InvalidConfig, "parse config", path, err)
	}
	if len(raw) == 0 {
		return domain.Mapping{}, appErrors.Wrap(appErrors.InvalidConfig, "parse config", path, errors.New("no categories defined"))
	}

	return domain.NewMapping(raw), nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
