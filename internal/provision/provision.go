package provision

import (
	"context"

	"provisionctl/internal/config"
)

// runAll executes the full provisioning sequence strictly in order:
// dependencies, speech model, detection model. The first failing step stops
// the run; there is no rollback.
func runAll(ctx context.Context, cfg config.Config) error {
	if err := fnInstallDeps(ctx, cfg); err != nil {
		return err
	}
	if err := fnEnsureSpeech(ctx, cfg); err != nil {
		return err
	}
	if err := fnEnsureDetect(ctx, cfg); err != nil {
		return err
	}
	info("Provisioning complete. Dependencies and model artifacts are in place.")
	return nil
}
