package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
)

// FileSystemError reports a failed directory creation or file write.
type FileSystemError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

// Error names the operation and path once; a wrapped *fs.PathError already
// carries both, so only its cause is printed.
func (e *FileSystemError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// TemplateReadError reports a missing or unreadable template file.
type TemplateReadError struct {
	Path string
	Err  error
}

func (e *TemplateReadError) Error() string {
	return fmt.Sprintf("reading template %s: %v", e.Path, e.Err)
}

func (e *TemplateReadError) Unwrap() error { return e.Err }
