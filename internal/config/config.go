package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable defaults. CLI arguments and flags
// override anything set here.
type Config struct {
	ProjectsDir string `toml:"projects_dir"`
	OutputDir   string `toml:"output_dir"`
	Lang        string `toml:"lang"`
}

// Load returns the built-in defaults overlaid with
// ~/.config/go-claude-export/config.toml when that file exists.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ProjectsDir: filepath.Join(home, ".claude", "projects"),
		OutputDir:   "output",
		Lang:        "zh",
	}

	cfgPath := filepath.Join(home, ".config", "go-claude-export", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.ProjectsDir = expandHome(cfg.ProjectsDir, home)
	cfg.OutputDir = expandHome(cfg.OutputDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
