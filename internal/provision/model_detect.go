package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"provisionctl/internal/common/fsutil"
	"provisionctl/internal/config"
)

// ensureDetectionModel makes sure the detection model file exists, fetching
// the archive and moving the expected member into place if it does not.
// A present file is assumed complete and never re-validated.
func ensureDetectionModel(ctx context.Context, cfg config.Config) error {
	target := cfg.DetectModelPath()
	if fsutil.PathExists(target) {
		info("Detection model already present at %s, skipping download.", target)
		return nil
	}
	if err := os.MkdirAll(cfg.ModelsDir, 0o755); err != nil {
		return fmt.Errorf("create models dir: %w", err)
	}
	tmp := target + ".zip"
	info("Downloading detection model from %s", cfg.DetectURL)
	if err := downloadFile(ctx, cfg.DetectURL, tmp); err != nil {
		return fmt.Errorf("download detection model: %w", err)
	}
	stage := target + ".extract"
	info("Extracting %s", tmp)
	if err := extractZip(tmp, stage); err != nil {
		return fmt.Errorf("extract detection model: %w", err)
	}
	member := filepath.Join(stage, cfg.DetectMember)
	if err := os.Rename(member, target); err != nil {
		return fmt.Errorf("move %s to %s (archive layout changed upstream?): %w", member, target, err)
	}
	if err := os.RemoveAll(stage); err != nil {
		return fmt.Errorf("remove staging dir: %w", err)
	}
	if err := os.Remove(tmp); err != nil {
		return fmt.Errorf("remove temp archive: %w", err)
	}
	info("Detection model installed at %s", target)
	return nil
}
