package repository

import (
	"errors"
	"fmt"
)

// errNotFound marks lookups that matched no row.
var errNotFound = errors.New("record not found")

// IsNotFound reports whether err is a missing-row lookup failure.
func IsNotFound(err error) bool { return errors.Is(err, errNotFound) }

// PersistError reports a storage failure. The already-validated record is
// never lost on this path; callers may retry the save without re-running
// extraction. NotConnected distinguishes "database unreachable" from
// constraint or transaction failures.
type PersistError struct {
	Op           string
	NotConnected bool
	Err          error
}

func (e *PersistError) Error() string {
	if e.NotConnected {
		return fmt.Sprintf("%s: not connected: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
