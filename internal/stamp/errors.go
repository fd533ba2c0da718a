package stamp

import (
	"errors"
	"fmt"
)

// ErrNotRegularFile is returned when the source path names a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// ReadError reports a source image that could not be opened, decoded or accepted.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read image %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure creating the output directory or writing the result.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write image %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
