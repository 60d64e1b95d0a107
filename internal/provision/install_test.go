package provision

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"provisionctl/internal/config"
)

func TestInstallDeps_MissingManifest(t *testing.T) {
	cfg := config.Config{Manifest: filepath.Join(t.TempDir(), "requirements.txt")}
	ran := false
	stubRunCmd(t, func(ctx context.Context, name string, args ...string) error {
		ran = true
		return nil
	})
	if err := installDeps(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for missing manifest")
	}
	if ran {
		t.Fatalf("installer invoked without a manifest")
	}
}

func TestInstallDeps_ManifestIsDirectory(t *testing.T) {
	cfg := config.Config{Manifest: t.TempDir()}
	if err := installDeps(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for directory manifest")
	}
}

func TestInstallDeps_InvokesInstallerWithManifest(t *testing.T) {
	d := t.TempDir()
	man := filepath.Join(d, "requirements.txt")
	if err := os.WriteFile(man, []byte("vosk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{Manifest: man}
	var gotArgs []string
	stubRunCmd(t, func(ctx context.Context, name string, args ...string) error {
		gotArgs = args
		return nil
	})
	if err := installDeps(context.Background(), cfg); err != nil {
		t.Fatalf("installDeps: %v", err)
	}
	if len(gotArgs) != 3 || gotArgs[0] != "install" || gotArgs[1] != "-r" || gotArgs[2] != man {
		t.Fatalf("unexpected installer args: %#v", gotArgs)
	}
}

func TestInstallDeps_InstallerFailurePropagates(t *testing.T) {
	d := t.TempDir()
	man := filepath.Join(d, "requirements.txt")
	if err := os.WriteFile(man, []byte("vosk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{Manifest: man}
	stubRunCmd(t, func(ctx context.Context, name string, args ...string) error {
		return os.ErrPermission
	})
	if err := installDeps(context.Background(), cfg); err == nil {
		t.Fatalf("expected installer failure to propagate")
	}
}
