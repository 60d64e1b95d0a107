package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	cases := map[string]string{
		"":              "",
		"~":             home,
		"~/models/vosk": filepath.Join(home, "models", "vosk"),
		"/abs/path":     "/abs/path",
		"relative/path": "relative/path",
	}
	for in, want := range cases {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPathExists(t *testing.T) {
	d := t.TempDir()
	if !PathExists(d) {
		t.Fatalf("existing dir reported missing")
	}
	if PathExists(filepath.Join(d, "nope")) {
		t.Fatalf("missing path reported present")
	}
}

func TestIsDirAndIsRegular(t *testing.T) {
	d := t.TempDir()
	f := filepath.Join(d, "file")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !IsDir(d) || IsDir(f) {
		t.Fatalf("IsDir misclassified")
	}
	if !IsRegular(f) || IsRegular(d) {
		t.Fatalf("IsRegular misclassified")
	}
	if IsDir(filepath.Join(d, "nope")) || IsRegular(filepath.Join(d, "nope")) {
		t.Fatalf("missing path misclassified")
	}
}
