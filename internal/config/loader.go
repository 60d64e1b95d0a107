package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config declares the resource set for a provisioning run.
// Zero values mean "unspecified" and are replaced by Defaults via Merged.
type Config struct {
	// Manifest is the path to the declarative package requirements list
	// consumed by the installer (pip -r).
	Manifest string `json:"manifest" yaml:"manifest" toml:"manifest"`

	// ModelsDir is the directory under which model artifacts live.
	ModelsDir string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`

	// SpeechDir is the canonical speech model directory name inside ModelsDir.
	SpeechDir string `json:"speech_dir" yaml:"speech_dir" toml:"speech_dir"`

	// SpeechURL is the archive URL for the speech-recognition model.
	SpeechURL string `json:"speech_url" yaml:"speech_url" toml:"speech_url"`

	// SpeechArchiveDir is the top-level folder inside the speech archive,
	// renamed to SpeechDir after extraction.
	SpeechArchiveDir string `json:"speech_archive_dir" yaml:"speech_archive_dir" toml:"speech_archive_dir"`

	// DetectFile is the canonical detection model file name inside ModelsDir.
	DetectFile string `json:"detect_file" yaml:"detect_file" toml:"detect_file"`

	// DetectURL is the archive URL for the object-detection model.
	DetectURL string `json:"detect_url" yaml:"detect_url" toml:"detect_url"`

	// DetectMember is the archive member moved to DetectFile after extraction.
	DetectMember string `json:"detect_member" yaml:"detect_member" toml:"detect_member"`
}

// Defaults returns the canonical resource set: the pip requirements manifest,
// the Vosk small English model, and the COCO SSD MobileNet tflite model.
func Defaults() Config {
	return Config{
		Manifest:         "requirements.txt",
		ModelsDir:        "models",
		SpeechDir:        "vosk",
		SpeechURL:        "https://alphacephei.com/vosk/models/vosk-model-small-en-us-0.15.zip",
		SpeechArchiveDir: "vosk-model-small-en-us-0.15",
		DetectFile:       "mobilenet_ssd.tflite",
		DetectURL:        "https://storage.googleapis.com/download.tensorflow.org/models/tflite/coco_ssd_mobilenet_v1_1.0_quant_2018_06_29.zip",
		DetectMember:     "detect.tflite",
	}
}

// Merged returns c with unset fields filled in from Defaults.
func (c Config) Merged() Config {
	d := Defaults()
	if c.Manifest == "" {
		c.Manifest = d.Manifest
	}
	if c.ModelsDir == "" {
		c.ModelsDir = d.ModelsDir
	}
	if c.SpeechDir == "" {
		c.SpeechDir = d.SpeechDir
	}
	if c.SpeechURL == "" {
		c.SpeechURL = d.SpeechURL
	}
	if c.SpeechArchiveDir == "" {
		c.SpeechArchiveDir = d.SpeechArchiveDir
	}
	if c.DetectFile == "" {
		c.DetectFile = d.DetectFile
	}
	if c.DetectURL == "" {
		c.DetectURL = d.DetectURL
	}
	if c.DetectMember == "" {
		c.DetectMember = d.DetectMember
	}
	return c
}

// SpeechModelPath is the canonical speech model directory.
func (c Config) SpeechModelPath() string { return filepath.Join(c.ModelsDir, c.SpeechDir) }

// DetectModelPath is the canonical detection model file.
func (c Config) DetectModelPath() string { return filepath.Join(c.ModelsDir, c.DetectFile) }

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
