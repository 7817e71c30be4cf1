// Package config provides configuration management and state persistence
// for the tintbox application.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const currentStateVersion = 1

// AppState represents the application's persistent state.
type AppState struct {
	Version int     `json:"version"`
	UI      UIState `json:"ui"`
}

func defaultAppState() AppState {
	return AppState{
		Version: currentStateVersion,
		UI: UIState{
			Welcome:       WelcomeState{Shown: false},
			DefaultTheory: "",
		},
	}
}

func (s *AppState) normalize() {
	if s == nil {
		return
	}
	if s.Version == 0 {
		s.Version = currentStateVersion
	}
}

// GetTintboxDir returns the path to the .tintbox directory
func GetTintboxDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".tintbox"), nil
}

// EnsureTintboxDir creates the .tintbox directory if it doesn't exist
func EnsureTintboxDir() error {
	dir, err := GetTintboxDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// getStateFilePath returns the path to the state.json file
func getStateFilePath() (string, error) {
	dir, err := GetTintboxDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// LoadState loads the application state from disk
func LoadState() (*AppState, error) {
	stateFile, err := getStateFilePath()
	if err != nil {
		return nil, err
	}

	state := defaultAppState()

	// If file doesn't exist, return default state
	if _, err := os.Stat(stateFile); os.IsNotExist(err) {
		return &state, nil
	} else if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		return nil, err
	}

	// A corrupt state file falls back to defaults rather than failing startup
	if err := json.Unmarshal(data, &state); err != nil {
		state = defaultAppState()
		return &state, nil
	}

	state.normalize()
	return &state, nil
}

// SaveState saves the application state to disk
func SaveState(state *AppState) error {
	if state == nil {
		return errors.New("state cannot be nil")
	}

	if err := EnsureTintboxDir(); err != nil {
		return err
	}

	state.normalize()

	stateFile, err := getStateFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(stateFile, data, 0644)
}
