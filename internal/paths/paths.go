package paths

import (
	"os"
	"path/filepath"
)

// GetLurkerHome returns LURKER_HOME or the ~/.lurker default
func GetLurkerHome() string {
	home := os.Getenv("LURKER_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".lurker"
		}
		return filepath.Join(homeDir, ".lurker")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $LURKER_HOME/settings.yaml
func GetSettingsPath() string {
	return filepath.Join(GetLurkerHome(), "settings.yaml")
}

// GetArchivePath returns $LURKER_HOME/archive.db
func GetArchivePath() string {
	return filepath.Join(GetLurkerHome(), "archive.db")
}

// GetDefaultCACertsPath returns cert.pem next to the running executable,
// falling back to the working directory when the executable cannot be located
func GetDefaultCACertsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "cert.pem"
	}
	return filepath.Join(filepath.Dir(exe), "cert.pem")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
