package stack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	frameSuffix = ".png"
	segSuffix   = "_seg.png"
)

// DiscoverFrames scans dir for the stack's image files. Plain frames are
// named "N.png" and segmentation overlays "N_seg.png", N a zero-based
// integer. Both lists come back sorted by their numeric index, NOT
// lexically, so "10.png" follows "9.png".
//
// Discovery only collects and orders; Open validates that the numbering
// is contiguous.
func DiscoverFrames(dir string) (frames, segFrames []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read stack folder %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, frameSuffix) {
			continue
		}

		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, segSuffix) {
			segFrames = append(segFrames, path)
		} else {
			frames = append(frames, path)
		}
	}

	sortByIndex(frames, frameSuffix)
	sortByIndex(segFrames, segSuffix)

	return frames, segFrames, nil
}

// frameIndex extracts the numeric index embedded in a frame filename,
// e.g. 7 from "7.png" or "7_seg.png". Returns -1 when the name does not
// parse as digits followed by the suffix.
func frameIndex(path, suffix string) int {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, suffix) {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSuffix(name, suffix))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func sortByIndex(paths []string, suffix string) {
	sort.Slice(paths, func(i, j int) bool {
		return frameIndex(paths[i], suffix) < frameIndex(paths[j], suffix)
	})
}

// validateSequence checks that the sorted paths carry exactly the indices
// 0..len-1. Any gap, duplicate, or unparsable name is a ConsistencyError.
func validateSequence(paths []string, suffix string) error {
	for want, path := range paths {
		got := frameIndex(path, suffix)
		if got != want {
			return &ConsistencyError{Path: path, Want: want, Got: got}
		}
	}
	return nil
}
