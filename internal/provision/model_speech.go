package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"provisionctl/internal/common/fsutil"
	"provisionctl/internal/config"
)

// ensureSpeechModel makes sure the Vosk speech model directory exists,
// fetching and unpacking the archive if it does not. A present directory is
// assumed complete and never re-validated.
func ensureSpeechModel(ctx context.Context, cfg config.Config) error {
	target := cfg.SpeechModelPath()
	if fsutil.PathExists(target) {
		info("Speech model already present at %s, skipping download.", target)
		return nil
	}
	if err := os.MkdirAll(cfg.ModelsDir, 0o755); err != nil {
		return fmt.Errorf("create models dir: %w", err)
	}
	tmp := target + ".zip"
	info("Downloading speech model from %s", cfg.SpeechURL)
	if err := downloadFile(ctx, cfg.SpeechURL, tmp); err != nil {
		return fmt.Errorf("download speech model: %w", err)
	}
	info("Extracting %s", tmp)
	if err := extractZip(tmp, cfg.ModelsDir); err != nil {
		return fmt.Errorf("extract speech model: %w", err)
	}
	extracted := filepath.Join(cfg.ModelsDir, cfg.SpeechArchiveDir)
	if err := os.Rename(extracted, target); err != nil {
		return fmt.Errorf("rename %s to %s (archive layout changed upstream?): %w", extracted, target, err)
	}
	if err := os.Remove(tmp); err != nil {
		return fmt.Errorf("remove temp archive: %w", err)
	}
	info("Speech model installed at %s", target)
	return nil
}
