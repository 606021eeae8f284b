package config

const (
	defaultWorkDir     = "."
	defaultStateDir    = "~/.local/share/inputrelay"
	defaultRequestFile = "user_input.txt"
	defaultMarkerFile  = "input_processed.txt"
	defaultMarkerLock  = true
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:  defaultWorkDir,
			StateDir: defaultStateDir,
		},
		Relay: Relay{
			RequestFile: defaultRequestFile,
			MarkerFile:  defaultMarkerFile,
			MarkerLock:  defaultMarkerLock,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
