package utils

import (
	"os"
	"path/filepath"
)

// ConfigDir returns ~/.config/loadout, creating it if needed.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "loadout")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
