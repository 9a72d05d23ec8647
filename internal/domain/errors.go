package domain

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrSourceUnreadable marks an input file that is missing or could not be read.
	ErrSourceUnreadable = errors.New("source file unreadable")
	// ErrValidationFailed is returned when at least one check fails.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidRule marks a malformed rule definition.
	ErrInvalidRule = errors.New("invalid rule")
)

// SourceError reports which input file failed to load.
type SourceError struct {
	Kind SourceKind
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	cause := e.Err
	// os errors already carry the path; keep it once.
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) && pathErr.Path == e.Path {
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s source %s: %v", e.Kind, e.Path, cause)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnreadable, e.Err}
}
