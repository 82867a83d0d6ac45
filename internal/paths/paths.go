// Package paths resolves the setcalc configuration directory location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigDirName is the CWD-relative directory checked before the
// platform default, so a project can carry its own setcalc config.
const DefaultConfigDirName = ".setcalc"

// EnvConfigDir is the environment variable overriding the config directory.
const EnvConfigDir = "SETCALC_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/setcalc (fallback ~/.config/setcalc)
// macOS:   ~/Library/Application Support/setcalc
// Windows: %APPDATA%/setcalc
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "setcalc"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "setcalc"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "setcalc"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SETCALC_CONFIG_DIR env > $(CWD)/.setcalc when
// that directory exists > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	if info, err := os.Stat(DefaultConfigDirName); err == nil && info.IsDir() {
		return filepath.Abs(DefaultConfigDirName)
	}
	return DefaultConfigDir()
}
