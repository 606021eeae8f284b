package testsupport

import (
	"path/filepath"
	"testing"

	"inputrelay/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The work and state directories are not created; use EnsureWorkDir or
// cfg.EnsureDirectories as needed.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.WorkDir = filepath.Join(base, "work")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithoutMarkerLock disables the advisory marker lock.
func WithoutMarkerLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Relay.MarkerLock = false
	}
}

// WithFileNames overrides the request and marker file names.
func WithFileNames(request, marker string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Relay.RequestFile = request
		b.cfg.Relay.MarkerFile = marker
	}
}

// WithCreatedDirs creates the work and state directories.
func WithCreatedDirs() ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		EnsureDir(b.t, b.cfg.Paths.WorkDir)
		EnsureDir(b.t, b.cfg.Paths.StateDir)
	}
}
