package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml *.toml
var ConfigFS embed.FS

// Load returns the raw bytes of a config file, preferring a copy on disk
// under config/ so tuning can be edited without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanConfigPath(name)
	if data, err := os.ReadFile(diskConfigPath(clean)); err == nil {
		return data, nil
	}
	if filepath.IsAbs(name) {
		return os.ReadFile(name)
	}
	return ConfigFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanConfigPath(name)
	info, err := os.Stat(diskConfigPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanConfigPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "config/") {
		return strings.TrimPrefix(s, "config/")
	}
	return s
}

func diskConfigPath(clean string) string {
	return filepath.Join("config", filepath.FromSlash(clean))
}
