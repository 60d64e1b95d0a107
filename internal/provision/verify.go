package provision

import (
	"fmt"
	"strings"

	"provisionctl/internal/common/fsutil"
	"provisionctl/internal/config"
)

// verifyResources checks that every provisioned resource exists. It is
// read-only and performs no network activity; like the provisioning checks
// themselves it tests presence only, never content.
func verifyResources(cfg config.Config) error {
	var missing []string
	if !fsutil.IsRegular(cfg.Manifest) {
		missing = append(missing, fmt.Sprintf("manifest %s", cfg.Manifest))
	}
	if !fsutil.IsDir(cfg.SpeechModelPath()) {
		missing = append(missing, fmt.Sprintf("speech model dir %s", cfg.SpeechModelPath()))
	}
	if !fsutil.IsRegular(cfg.DetectModelPath()) {
		missing = append(missing, fmt.Sprintf("detection model %s", cfg.DetectModelPath()))
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing resources: %s (run provisionctl to fetch)", strings.Join(missing, ", "))
	}
	info("All provisioned resources present.")
	return nil
}
