package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRelay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRelay() error {
	if err := ensureBareName("relay.request_file", c.Relay.RequestFile); err != nil {
		return err
	}
	if err := ensureBareName("relay.marker_file", c.Relay.MarkerFile); err != nil {
		return err
	}
	if c.Relay.RequestFile == c.Relay.MarkerFile {
		return errors.New("relay.request_file and relay.marker_file must differ")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// ensureBareName rejects names that would escape the working directory.
func ensureBareName(field, name string) error {
	if name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("%s must be a plain file name, got %q", field, name)
	}
	return nil
}
