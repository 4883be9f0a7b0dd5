package paths

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.gamechat.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".gamechat")
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// LogDir returns the log directory.
func LogDir() string {
	return filepath.Join(BaseDir(), "logs")
}

// LogPath returns the application log file path.
func LogPath() string {
	return filepath.Join(LogDir(), "gamechat.log")
}
