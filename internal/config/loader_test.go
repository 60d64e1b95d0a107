package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "manifest: reqs.txt\nmodels_dir: /m\nspeech_url: http://example/s.zip\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Manifest != "reqs.txt" || cfg.ModelsDir != "/m" || cfg.SpeechURL != "http://example/s.zip" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"manifest":"r.txt","detect_file":"d.tflite","detect_member":"detect.tflite"}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Manifest != "r.txt" || cfg.DetectFile != "d.tflite" || cfg.DetectMember != "detect.tflite" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "manifest=\"r.txt\"\nspeech_dir=\"vosk\"\nspeech_archive_dir=\"vosk-model-small-en-us-0.15\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Manifest != "r.txt" || cfg.SpeechDir != "vosk" || cfg.SpeechArchiveDir != "vosk-model-small-en-us-0.15" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.ini", "manifest=r.txt\n")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected error for .ini")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Manifest != "requirements.txt" || d.ModelsDir != "models" {
		t.Fatalf("unexpected defaults: %+v", d)
	}
	if d.SpeechModelPath() != filepath.Join("models", "vosk") {
		t.Fatalf("speech path: %s", d.SpeechModelPath())
	}
	if d.DetectModelPath() != filepath.Join("models", "mobilenet_ssd.tflite") {
		t.Fatalf("detect path: %s", d.DetectModelPath())
	}
	if !strings.HasSuffix(d.SpeechURL, ".zip") || !strings.HasSuffix(d.DetectURL, ".zip") {
		t.Fatalf("model URLs must point at zip archives: %+v", d)
	}
}

func TestMerged(t *testing.T) {
	c := Config{ModelsDir: "/custom", DetectURL: "http://mirror/d.zip"}.Merged()
	if c.ModelsDir != "/custom" || c.DetectURL != "http://mirror/d.zip" {
		t.Fatalf("explicit fields overwritten: %+v", c)
	}
	d := Defaults()
	if c.Manifest != d.Manifest || c.SpeechURL != d.SpeechURL || c.DetectMember != d.DetectMember {
		t.Fatalf("unset fields not defaulted: %+v", c)
	}
	if Defaults().Merged() != Defaults() {
		t.Fatalf("merging defaults must be a no-op")
	}
}
