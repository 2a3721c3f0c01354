package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/daywise/daywise-tui/internal/api"
)

const (
	keyringService  = "daywise-tui"
	keyringSession  = "session"
	keyringTheme    = "theme"
	sessionFileName = ".session"
	themeFileName   = ".theme"
)

// Theme preference values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DataDir returns the path to the data directory for durable storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/daywise-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, "daywise-tui")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// RestoreSession reads the persisted session identity, if any.
// Returns (nil, nil) when no session is stored.
// Priority: 1. System keyring, 2. Session file
func RestoreSession() (*api.Session, error) {
	raw, err := keyring.Get(keyringService, keyringSession)
	if err != nil || raw == "" {
		raw, err = readDataFile(sessionFileName)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			return nil, nil
		}
	}

	var session api.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode stored session: %w", err)
	}
	return &session, nil
}

// SaveSession persists the session identity. Tries the system keyring
// first, falls back to a 0600 file in the data directory.
func SaveSession(session *api.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := keyring.Set(keyringService, keyringSession, string(data)); err == nil {
		return nil
	}

	return writeDataFile(sessionFileName, string(data))
}

// ClearSession removes the stored session from all locations.
func ClearSession() error {
	_ = keyring.Delete(keyringService, keyringSession)
	return removeDataFile(sessionFileName)
}

// LoadTheme returns the persisted theme preference, defaulting to dark.
func LoadTheme() string {
	raw, err := keyring.Get(keyringService, keyringTheme)
	if err != nil || raw == "" {
		raw, _ = readDataFile(themeFileName)
	}
	if raw == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// SaveTheme persists the theme preference.
func SaveTheme(theme string) error {
	if err := keyring.Set(keyringService, keyringTheme, theme); err == nil {
		return nil
	}
	return writeDataFile(themeFileName, theme)
}

// readDataFile reads a value from the data directory. Missing files
// read as empty.
func readDataFile(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func writeDataFile(name, value string) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dataDir, name)
	if err := os.WriteFile(path, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func removeDataFile(name string) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dataDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
