package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/akyairhashvil/deliverydesk/internal/util"
)

// Config holds the file-backed settings of the portal tooling.
type Config struct {
	DatabasePath   string `toml:"database_path"`
	DefaultProject string `toml:"default_project"`
	ReportsOutput  string `toml:"reports_output"`
	ClientVisible  bool   `toml:"client_visible_default"`
	Theme          string `toml:"theme"`
}

func DefaultConfig() *Config {
	dataDir := util.DataDir(AppName)
	homeDir, _ := os.UserHomeDir()
	return &Config{
		DatabasePath:   filepath.Join(dataDir, DBFileName),
		DefaultProject: DefaultProjectSlug,
		ReportsOutput:  filepath.Join(homeDir, "Documents", "reports"),
		ClientVisible:  false,
		Theme:          "default",
	}
}

func ConfigPath() string {
	return filepath.Join(util.DataDir(AppName), "config.toml")
}

// Load reads the TOML config, creating it with defaults on first run.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.DatabasePath = expandPath(cfg.DatabasePath)
	cfg.ReportsOutput = expandPath(cfg.ReportsOutput)
	return cfg, nil
}

func Save(cfg *Config) error {
	f, err := os.Create(ConfigPath())
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
