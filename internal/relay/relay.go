package relay

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/flock"

	"inputrelay/internal/logging"
)

const (
	DefaultRequestFile = "user_input.txt"
	DefaultMarkerFile  = "input_processed.txt"

	// MarkerContent is the exact body of the acknowledgment marker.
	MarkerContent = "processed"

	lockRetryDelay = 50 * time.Millisecond
)

// Outcome is the branch a run took.
type Outcome int

const (
	OutcomeMissing Outcome = iota
	OutcomeStop
	OutcomePayload
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMissing:
		return "missing"
	case OutcomeStop:
		return "stop"
	case OutcomePayload:
		return "payload"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Options configures a run. Zero values fall back to the current directory and
// the default file names.
type Options struct {
	Dir         string
	RequestFile string
	MarkerFile  string
	// LockPath, when set, names an advisory lock held while the marker is written.
	LockPath string
	Console  *Console
	Logger   *slog.Logger
}

// Result describes what a run observed.
type Result struct {
	Outcome     Outcome
	Content     string
	RequestPath string
	MarkerPath  string
}

// MarkerWritten reports whether the run wrote the acknowledgment marker.
func (r Result) MarkerWritten() bool {
	return r.Outcome == OutcomePayload
}

// Run performs one intake of the request file.
func Run(ctx context.Context, opts Options) (Result, error) {
	opts = opts.withDefaults()
	console := opts.Console
	logger := opts.Logger.With(logging.String(logging.FieldComponent, "relay"))

	result := Result{
		RequestPath: filepath.Join(opts.Dir, opts.RequestFile),
		MarkerPath:  filepath.Join(opts.Dir, opts.MarkerFile),
	}

	console.banner(opts.RequestFile)

	content, found, err := readRequest(result.RequestPath)
	if err != nil {
		return result, err
	}
	if !found {
		result.Outcome = OutcomeMissing
		logger.Info("request file not found", logging.Args(logging.String(logging.FieldPath, result.RequestPath))...)
		console.missing(opts.RequestFile)
		return result, console.Err()
	}
	result.Content = content

	if IsStopSignal(content) {
		result.Outcome = OutcomeStop
		logger.Info("stop signal received", logging.Args(logging.String(logging.FieldPath, result.RequestPath))...)
		console.stop()
		return result, console.Err()
	}

	result.Outcome = OutcomePayload
	console.received(content)
	if err := writeMarker(ctx, result.MarkerPath, opts.LockPath, logger); err != nil {
		return result, err
	}
	logger.Info("acknowledgment marker written",
		logging.Args(
			logging.String(logging.FieldPath, result.MarkerPath),
			logging.Int("bytes", len(content)),
		)...,
	)
	return result, console.Err()
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Dir) == "" {
		o.Dir = "."
	}
	if o.RequestFile == "" {
		o.RequestFile = DefaultRequestFile
	}
	if o.MarkerFile == "" {
		o.MarkerFile = DefaultMarkerFile
	}
	if o.Console == nil {
		o.Console = NewConsole(nil, false)
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	return o
}

// readRequest returns the trimmed request content. found is false only when
// the file does not exist; any other stat or read failure is an error.
func readRequest(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("stat request file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", false, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("read request file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", false, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return strings.TrimSpace(string(data)), true, nil
}

func writeMarker(ctx context.Context, path, lockPath string, logger *slog.Logger) error {
	if lockPath != "" {
		lock := flock.New(lockPath)
		locked, err := lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("acquire marker lock: %w", err)
		}
		if !locked {
			return fmt.Errorf("acquire marker lock: %s is held by another process", lockPath)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release marker lock", logging.Args(logging.String(logging.FieldPath, lockPath), logging.Error(err))...)
			}
		}()
	}

	if err := os.WriteFile(path, []byte(MarkerContent), 0o644); err != nil {
		return fmt.Errorf("write acknowledgment marker: %w", err)
	}
	return nil
}
