package gpxsplit

import "fmt"

// WriteError reports a split file that could not be written. Files written
// for earlier tracks are left in place.
type WriteError struct {
	Path  string
	Index int
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write track %d to %s: %v", e.Index, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
