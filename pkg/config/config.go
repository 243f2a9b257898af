// Package config handles loading and managing the advent CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the advent CLI.
type Config struct {
	Inputs InputsConfig `yaml:"inputs"`
	Runs   RunsConfig   `yaml:"runs"`
}

// InputsConfig controls where puzzle inputs live and how remote ones are
// fetched.
type InputsConfig struct {
	Dir     string    `yaml:"dir"`     // local inputs directory
	Storage string    `yaml:"storage"` // local, s3, or gcs
	S3      S3Config  `yaml:"s3"`
	GCS     GCSConfig `yaml:"gcs"`
}

// S3Config holds settings for the S3 input store.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// GCSConfig holds settings for the GCS input store.
type GCSConfig struct {
	Bucket string `yaml:"bucket"`
}

// RunsConfig controls the run log.
type RunsConfig struct {
	Disabled bool `yaml:"disabled"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Inputs: InputsConfig{
			Dir:     "inputs",
			Storage: "local",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .advent/config.yaml in the given directory and
// its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".advent", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the cache directory for a given working directory.
// Uses ~/.cache/advent/<dir-slug>/ to avoid polluting the project.
func CacheDir(workDir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "advent", dirSlug(workDir))
}

// RunDir returns the run-log directory for a working directory.
func RunDir(workDir string) string {
	return filepath.Join(CacheDir(workDir), "runs")
}

// dirSlug creates a filesystem-safe identifier from a directory path,
// using its last two components.
func dirSlug(workDir string) string {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		abs = workDir
	}
	dir := filepath.Base(filepath.Dir(abs))
	base := filepath.Base(abs)
	return dir + "_" + base
}
