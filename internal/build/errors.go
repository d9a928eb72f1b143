package build

import "fmt"

// OutputCollisionError reports two pages resolving to the same destination
// path. Detected by the plan stage before any file is written.
type OutputCollisionError struct {
	Path    string
	Sources [2]string
}

func (e *OutputCollisionError) Error() string {
	return fmt.Sprintf("output collision at %s: %s and %s", e.Path, e.Sources[0], e.Sources[1])
}

// IOError reports a filesystem failure while writing the output tree.
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io failure at %s: %v", e.Path, e.Cause)
}

func (e *IOError) Unwrap() error { return e.Cause }
