package preflight

import (
	"inputrelay/internal/config"
)

// Result reports the outcome of a single preflight check. Optional results
// describe conditions that are expected in normal use, such as the request
// file not having been written yet.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Working directory", cfg.Paths.WorkDir),
		CheckRequestFile("Request file", cfg.RequestPath()),
		CheckMarkerTarget("Marker file", cfg.MarkerPath()),
	}

	// State directory only matters when marker writes are locked.
	if cfg.Relay.MarkerLock {
		results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	}

	return results
}

// Failed reports whether any required check did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed && !r.Optional {
			return true
		}
	}
	return false
}
