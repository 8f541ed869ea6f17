package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/promptpaste/pkg/errors"
)

// Environment variable names
const (
	// EnvStorage overrides the storage root
	EnvStorage = "PROMPT_PASTE_STORAGE"

	// EnvConfigDir overrides the XDG config directory for promptpaste
	EnvConfigDir = "PP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names. These are not user-configurable.
const (
	// AppDirName is the directory name used under the XDG bases
	AppDirName = "promptpaste"

	// DefaultStorageDir is the storage directory name under $HOME
	DefaultStorageDir = ".prompt_paste"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "pp.log"
)

// Paths provides centralized path management for promptpaste
type Paths interface {
	StorageRoot() string
	ConfigDir() string
	ConfigFilePath() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	storageRoot string
	xdgConfig   string
	xdgState    string
}

// New creates a Paths instance rooted at storageRoot.
// If storageRoot is empty it is taken from PROMPT_PASTE_STORAGE, falling
// back to ~/.prompt_paste. The directory is not created here.
func New(storageRoot string) (Paths, error) {
	p := &paths{}

	if storageRoot == "" {
		storageRoot = DefaultStorageRoot()
	}
	if err := ValidatePath(storageRoot); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(expandHome(storageRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for storage root")
	}
	p.storageRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

// DefaultStorageRoot returns the storage root from the environment, or
// ~/.prompt_paste when unset
func DefaultStorageRoot() string {
	if root := os.Getenv(EnvStorage); root != "" {
		return expandHome(root)
	}
	return filepath.Join(GetHomeDirectoryWithDefault("."), DefaultStorageDir)
}

// setupXDGDirs reads the environment directly since xdg caches its values
// at init time
func (p *paths) setupXDGDirs() {
	switch {
	case os.Getenv(EnvConfigDir) != "":
		p.xdgConfig = expandHome(os.Getenv(EnvConfigDir))
	case os.Getenv("XDG_CONFIG_HOME") != "":
		p.xdgConfig = filepath.Join(os.Getenv("XDG_CONFIG_HOME"), AppDirName)
	default:
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

// StorageRoot returns the directory holding all entries
func (p *paths) StorageRoot() string {
	return p.storageRoot
}

// ConfigDir returns the promptpaste config directory
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the promptpaste state directory
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
	}
	return "", errors.New(errors.ErrFileAccess, "cannot determine home directory")
}

// GetHomeDirectoryWithDefault returns the home directory or defaultDir
func GetHomeDirectoryWithDefault(defaultDir string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return homeDir
}
