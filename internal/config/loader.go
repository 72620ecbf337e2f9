package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the project-level config inside .planvas/.
	ProjectConfigFile = ".planvas/config.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/planvas"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load builds the effective configuration:
// 1. Defaults
// 2. User config (~/.config/planvas/config.yaml)
// 3. Project config (.planvas/config.yaml in the working directory)
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	userPath := l.userConfigPath()
	if userPath != "" {
		if userCfg, err := LoadFromFile(userPath); err == nil {
			l.logger.Debug("loaded user config", slog.String("path", userPath))
			cfg.Merge(userCfg)
		} else if !os.IsNotExist(err) {
			l.logger.Warn("failed to load user config",
				slog.String("path", userPath), slog.String("error", err.Error()))
		}
	}

	if projCfg, err := LoadFromFile(ProjectConfigFile); err == nil {
		l.logger.Debug("loaded project config", slog.String("path", ProjectConfigFile))
		cfg.Merge(projCfg)
	} else if !os.IsNotExist(err) {
		l.logger.Warn("failed to load project config",
			slog.String("path", ProjectConfigFile), slog.String("error", err.Error()))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
