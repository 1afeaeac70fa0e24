package main

import (
	"os"
	"path/filepath"
)

func defaultPreferencesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".datagrid", "preferences.json"), nil
}
