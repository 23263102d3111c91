// Package config loads the tool config, simulation options documents and
// presets.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOptionsPath = "simopts.yaml"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultWorkers     = 4

	prefsDirName  = "simopts"
	prefsFileName = "prefs.db"
)

// DefaultPrefsPath is the per-user preferences database, shared by every
// invocation regardless of working directory. It falls back to a dot
// directory in the working directory when the user config dir is unknown.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join("."+prefsDirName, prefsFileName)
	}
	return filepath.Join(dir, prefsDirName, prefsFileName)
}

// Config is the tool configuration, separate from the simulation options
// document it edits.
type Config struct {
	OptionsPath string           `yaml:"options_path"`
	Prefs       PrefsConfig      `yaml:"prefs"`
	Log         LogConfig        `yaml:"log"`
	Validation  ValidationConfig `yaml:"validation"`
}

type PrefsConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ValidationConfig struct {
	Workers int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		OptionsPath: DefaultOptionsPath,
		Prefs: PrefsConfig{
			Backend: "sqlite",
			Path:    DefaultPrefsPath(),
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Validation: ValidationConfig{
			Workers: DefaultWorkers,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
