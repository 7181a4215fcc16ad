// Package persist reads and writes the annotation sidecar file
// ("ap.points") and the application settings file. The sidecar holds only
// visible annotations; hidden points are never written, so a round trip
// through disk resets them to their defaults.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PointsFileName is the sidecar file kept next to the frame images.
const PointsFileName = "ap.points"

// Entry is one persisted annotation: frame index, point id, and position.
// Field order in the JSON output is stable: z, id, pos.
type Entry struct {
	Z   int        `json:"z"`
	ID  int        `json:"id"`
	Pos [2]float64 `json:"pos"`
}

type pointsFile struct {
	Rois *[]Entry `json:"rois"`
}

// Load reads the sidecar at path. A missing file is not an error and
// yields (nil, nil); the caller treats that as "no prior annotations".
// Unparsable JSON or an absent "rois" key is a MalformedDataError.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pf pointsFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, &MalformedDataError{Path: path, Reason: "invalid JSON", Err: err}
	}
	if pf.Rois == nil {
		return nil, &MalformedDataError{Path: path, Reason: `missing "rois" key`}
	}

	return *pf.Rois, nil
}

// Save rewrites the sidecar wholesale with the given entries. The file is
// written to a temporary name in the same directory and renamed into
// place, so a concurrent reader never sees a half-written file.
func Save(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	out := struct {
		Rois []Entry `json:"rois"`
	}{Rois: entries}

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".ap.points-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
