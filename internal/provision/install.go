package provision

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"provisionctl/internal/config"
)

// installDeps installs the Python package set declared in the manifest.
// The manifest must exist and be readable before the installer runs; a
// non-zero installer exit aborts the provisioning sequence.
func installDeps(ctx context.Context, cfg config.Config) error {
	fi, err := os.Stat(cfg.Manifest)
	if err != nil {
		return fmt.Errorf("dependency manifest %s: %w", cfg.Manifest, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("dependency manifest %s is a directory", cfg.Manifest)
	}
	info("Installing Python dependencies from %s...", cfg.Manifest)
	if err := fnRunCmd(ctx, pipExecutable(), "install", "-r", cfg.Manifest); err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	info("Python dependencies installed.")
	return nil
}

func pipExecutable() string {
	if p, err := exec.LookPath("pip3"); err == nil {
		return p
	}
	warn("pip3 not found in PATH, falling back to pip")
	return "pip"
}
