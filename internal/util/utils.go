package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/danielmiessler/tw2s/internal/i18n"
)

const (
	configDirName  = "tw2s"
	configFileName = "config.yaml"
	envFileName    = ".env"
)

// GetAbsolutePath resolves a given path to its absolute form, handling ~, ./, ../, UNC paths, and symlinks.
// Paths that do not exist yet are returned absolute but otherwise untouched.
func GetAbsolutePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(i18n.T("util_error_path_is_empty"))
	}

	// Handle UNC paths on Windows
	if runtime.GOOS == "windows" && strings.HasPrefix(path, `\\`) {
		return path, nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New(i18n.T("util_error_resolve_home_directory"))
		}
		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.New(i18n.T("util_error_get_absolute_path"))
	}

	resolvedPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return resolvedPath, nil
	}
	if os.IsNotExist(err) {
		return absPath, nil
	}

	return "", fmt.Errorf(i18n.T("util_error_resolve_symlinks"), err)
}

// GetConfigDir returns ~/.config/tw2s. The directory is not created.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf(i18n.T("util_error_determine_home_directory"), err)
	}
	return filepath.Join(homeDir, ".config", configDirName), nil
}

// GetDefaultConfigPath returns the default path for the configuration file
// if it exists, otherwise returns an empty string.
func GetDefaultConfigPath() (string, error) {
	return existingConfigFile(configFileName)
}

// GetDefaultEnvPath returns the path of the .env file next to the
// configuration file if it exists, otherwise returns an empty string.
func GetDefaultEnvPath() (string, error) {
	return existingConfigFile(envFileName)
}

func existingConfigFile(name string) (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(configDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil // Return no error for non-existent config path
		}
		return "", fmt.Errorf(i18n.T("util_error_accessing_config_path"), err)
	}
	return path, nil
}
