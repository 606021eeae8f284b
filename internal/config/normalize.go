package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRelay()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(strings.TrimSpace(c.Paths.WorkDir)); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	c.Paths.StateDir = strings.TrimSpace(c.Paths.StateDir)
	if c.Paths.StateDir == "" || c.Paths.StateDir == defaultStateDir {
		c.Paths.StateDir = fallbackStateDir()
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

// fallbackStateDir returns the default state directory, or a directory under
// the system temp dir when no home directory can be resolved.
func fallbackStateDir() string {
	if _, err := os.UserHomeDir(); err != nil {
		return filepath.Join(os.TempDir(), "inputrelay")
	}
	return defaultStateDir
}

func (c *Config) normalizeRelay() {
	c.Relay.RequestFile = strings.TrimSpace(c.Relay.RequestFile)
	if c.Relay.RequestFile == "" {
		c.Relay.RequestFile = defaultRequestFile
	}
	c.Relay.MarkerFile = strings.TrimSpace(c.Relay.MarkerFile)
	if c.Relay.MarkerFile == "" {
		c.Relay.MarkerFile = defaultMarkerFile
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
