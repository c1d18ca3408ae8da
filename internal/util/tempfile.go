package util

import (
	"fmt"
	"io"
	"os"
)

// WithTempFile copies src into a fresh temp file named after pattern (see
// os.CreateTemp), closes it and calls fn with its path. The file is removed
// before WithTempFile returns, whatever fn does.
func WithTempFile(src io.Reader, pattern string, fn func(path string) error) error {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	return fn(path)
}
