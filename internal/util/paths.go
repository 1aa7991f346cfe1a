package util

import (
	"os"
	"path/filepath"
)

// DataDir returns the per-user data directory for the application,
// honoring XDG_DATA_HOME when set.
func DataDir(appName string) string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(home, ".local", "share", appName)
}
