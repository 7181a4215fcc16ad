package persist

import (
	"encoding/json"
	"fmt"
	"os"
)

// SettingsFileName is read from the working directory at folder-open time.
const SettingsFileName = "settings.json"

// Settings holds the user-editable application settings.
type Settings struct {
	// DefaultDirectory seeds the folder picker's initial location.
	DefaultDirectory string `json:"default_directory"`
}

// LoadSettings reads the settings file at path. A missing file yields
// zero-value settings; a present but unparsable file is a
// MalformedDataError.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, &MalformedDataError{Path: path, Reason: "invalid JSON", Err: err}
	}

	return s, nil
}
