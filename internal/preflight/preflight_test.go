package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"inputrelay/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	result := CheckDirectoryAccess("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	testsupport.WriteFile(t, f, "x")
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckRequestFile(t *testing.T) {
	dir := t.TempDir()

	missing := CheckRequestFile("req", filepath.Join(dir, "user_input.txt"))
	if missing.Passed || !missing.Optional {
		t.Fatalf("expected optional failure for missing request, got %+v", missing)
	}

	good := filepath.Join(dir, "good.txt")
	testsupport.WriteFile(t, good, "hello")
	if result := CheckRequestFile("req", good); !result.Passed {
		t.Fatalf("expected pass, got %+v", result)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte{0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckRequestFile("req", bad); result.Passed || result.Optional {
		t.Fatalf("expected required failure for invalid UTF-8, got %+v", result)
	}
}

func TestCheckMarkerTarget(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "input_processed.txt")

	if result := CheckMarkerTarget("marker", marker); !result.Passed {
		t.Fatalf("expected absent marker to pass, got %+v", result)
	}
	testsupport.WriteFile(t, marker, "processed")
	if result := CheckMarkerTarget("marker", marker); !result.Passed {
		t.Fatalf("expected writable marker to pass, got %+v", result)
	}

	asDir := filepath.Join(dir, "dir-marker")
	testsupport.EnsureDir(t, asDir)
	if result := CheckMarkerTarget("marker", asDir); result.Passed {
		t.Fatal("expected directory marker path to fail")
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCreatedDirs())
	results := RunAll(cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results with locking enabled, got %d", len(results))
	}
	if Failed(results) {
		t.Fatalf("expected only optional failures, got %+v", results)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithoutMarkerLock())
	results = RunAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results without locking, got %d", len(results))
	}
	if !Failed(results) {
		t.Fatal("expected missing work dir to fail")
	}

	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
