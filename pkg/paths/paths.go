package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/projmarks/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for projmarks
	EnvDataDir = "PROJMARKS_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for projmarks
	EnvConfigDir = "PROJMARKS_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for projmarks-specific files
	AppDirName = "projmarks"

	// StorageFileName is the default name of the marks file
	StorageFileName = "marks.json"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "projmarks.log"
)

// Paths provides the application directories
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	StorageFile() string
	ConfigFile() string
	LogFilePath() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance, respecting environment overrides.
func New() Paths {
	p := &paths{}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// xdg caches StateHome at init, so honour a later override explicitly
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

// DataDir returns the data directory for projmarks
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the config directory for projmarks
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the state directory for projmarks
func (p *paths) StateDir() string {
	return p.xdgState
}

// StorageFile returns the default location of the marks file
func (p *paths) StorageFile() string {
	return filepath.Join(p.xdgData, StorageFileName)
}

// ConfigFile returns the location of the user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	return expandHomeWith(path, GetHomeDirectory)
}

func expandHomeWith(path string, home func() (string, error)) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := home()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~\
	if path[1] == '/' || path[1] == '\\' {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "failed to get home directory")
	}
	return homeDir, nil
}
