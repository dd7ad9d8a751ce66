package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WindowState captures the terminal geometry persisted on exit and restored
// at startup. X and Y are retained for interchange with window-positioning
// front ends; the terminal UI leaves them untouched.
type WindowState struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
	SavedAt time.Time `json:"saved_at"`
}

// LoadWindowState reads the state file. A missing file yields the zero state.
func LoadWindowState(path string) (WindowState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return WindowState{}, nil
		}
		return WindowState{}, err
	}
	var state WindowState
	if err := json.Unmarshal(data, &state); err != nil {
		return WindowState{}, fmt.Errorf("parse window state: %w", err)
	}
	return state, nil
}

// SaveWindowState writes the state file, stamping SavedAt.
func SaveWindowState(path string, state WindowState) error {
	state.SavedAt = time.Now()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode window state: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write window state: %w", err)
	}
	return nil
}
