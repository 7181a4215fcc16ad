package stack

import "fmt"

// ConsistencyError indicates that a frame file's embedded numeric index
// does not match its position in the sorted sequence. The stack cannot be
// addressed by frame index when the numbering has gaps or duplicates, so
// this aborts the whole open operation.
type ConsistencyError struct {
	// Path is the offending frame file.
	Path string

	// Want is the positional index the file should carry.
	Want int

	// Got is the index embedded in the filename, or -1 when the name
	// could not be parsed at all.
	Got int
}

func (e *ConsistencyError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("inconsistent frame numbering: %s has no parsable index (expected %d)", e.Path, e.Want)
	}
	return fmt.Sprintf("inconsistent frame numbering: %s carries index %d, expected %d", e.Path, e.Got, e.Want)
}
