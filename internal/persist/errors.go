package persist

import "fmt"

// MalformedDataError indicates a sidecar or settings file that exists but
// cannot be interpreted. It is fatal for the operation that triggered the
// read; there is no partial recovery.
type MalformedDataError struct {
	// Path is the file that failed to parse.
	Path string

	// Reason describes what was wrong with the content.
	Reason string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed data in %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed data in %s: %s", e.Path, e.Reason)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}
