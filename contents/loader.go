package contents

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	ErrFileRead        = errors.New("failed to read file")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// Load reads the whole file at path into memory as text.
// The returned error wraps ErrFileRead and the underlying cause.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFileRead, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: %w", ErrFileRead, path, ErrInvalidEncoding)
	}

	return string(data), nil
}
