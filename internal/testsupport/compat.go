package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// Chdir changes the working directory to dir for the duration of the test,
// matching testing.T.Chdir (Go 1.24+): PWD is updated and the previous
// directory is restored on cleanup.
func Chdir(t testing.TB, dir string) {
	t.Helper()
	oldwd, err := os.Open(".")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		dir, err = os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		err := oldwd.Chdir()
		oldwd.Close()
		if err != nil {
			panic("testsupport.Chdir: restore working directory: " + err.Error())
		}
	})
}

// Context returns a context canceled just before cleanup functions run,
// matching testing.T.Context (Go 1.24+).
func Context(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
