package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config collects the user-tunable settings. Everything has a working
// default; an optional YAML file and environment variables override it.
type Config struct {
	// Questions is the catalog file path.
	Questions string `yaml:"questions"`

	// Progress is the answer-history file path.
	Progress string `yaml:"progress"`

	// Assessment tier cutoffs, as percentages.
	Excellent float64 `yaml:"excellent_threshold"`
	Good      float64 `yaml:"good_threshold"`
	Fair      float64 `yaml:"fair_threshold"`

	// Weak-area analysis tunables.
	MinAttempts  int `yaml:"min_attempts"`
	MaxWeakAreas int `yaml:"max_weak_areas"`
	RecentWindow int `yaml:"recent_window"`

	// Default question counts per command.
	PracticeCount  int `yaml:"practice_count"`
	InterviewCount int `yaml:"interview_count"`
	ReviewCount    int `yaml:"review_count"`
}

// Default returns the built-in settings. Path fields are left empty and
// resolved lazily so env vars read at load time win.
func Default() Config {
	return Config{
		Excellent:      90,
		Good:           75,
		Fair:           60,
		MinAttempts:    3,
		MaxWeakAreas:   5,
		RecentWindow:   10,
		PracticeCount:  5,
		InterviewCount: 15,
		ReviewCount:    10,
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// optional config file, overlaid with environment variables. A missing
// config file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path, err := filePath()
	if err == nil {
		if raw, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if p := os.Getenv("DEVPREP_QUESTIONS"); p != "" {
		cfg.Questions = p
	}
	if p := os.Getenv("DEVPREP_PROGRESS"); p != "" {
		cfg.Progress = p
	}

	if cfg.Questions == "" {
		cfg.Questions = defaultQuestionsPath()
	}
	if cfg.Progress == "" {
		cfg.Progress, err = defaultProgressPath()
		if err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// filePath resolves the config file location:
// 1. DEVPREP_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/devprep/config.yaml
// 3. ~/.config/devprep/config.yaml
func filePath() (string, error) {
	if p := os.Getenv("DEVPREP_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "devprep", "config.yaml"), nil
}

// defaultQuestionsPath prefers a user-installed catalog and falls back to
// the repo-bundled one in the working directory.
func defaultQuestionsPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		p := filepath.Join(dataHome, "devprep", "questions.json")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join("data", "questions.json")
}

func defaultProgressPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "devprep", "progress.json"), nil
}
