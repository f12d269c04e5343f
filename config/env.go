package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// LookupFunc looks up an environment value by key
type LookupFunc func(key string) (value string, ok bool, err error)

// ProcessEnv looks up keys in the process environment
func ProcessEnv(key string) (string, bool, error) {
	value, ok := os.LookupEnv(key)
	return value, ok, nil
}

// DotenvLookup returns a lookup that prefers the process environment and falls back
// to the values in the dotenv file at path. The file is read on the first lookup
// that misses the process environment. A missing file is treated as empty.
func DotenvLookup(path string) LookupFunc {
	if path == "" {
		return ProcessEnv
	}

	var (
		once    sync.Once
		values  map[string]string
		readErr error
	)
	load := func() {
		values, readErr = godotenv.Read(path)
		if readErr != nil && os.IsNotExist(readErr) {
			values, readErr = map[string]string{}, nil
		}
		if readErr != nil {
			readErr = fmt.Errorf("failed to load env file %s: %w", path, readErr)
		}
	}

	return func(key string) (string, bool, error) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true, nil
		}
		once.Do(load)
		if readErr != nil {
			return "", false, readErr
		}
		value, ok := values[key]
		return value, ok, nil
	}
}
