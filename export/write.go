package export

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteError is returned when the output file cannot be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteFile replaces path with data. The data goes to a temporary file first
// and is renamed into place, so a failed write never leaves a truncated file.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
