package config

import (
	"errors"
	"fmt"
)

// IgnoreCaseEnv is the environment variable that enables case-insensitive matching
const IgnoreCaseEnv = "IGNORE_CASE"

var (
	ErrMissingQuery    = errors.New("missing query string argument")
	ErrMissingFilePath = errors.New("missing file path argument")
)

// Config holds the resolved parameters of a single run
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Build resolves the configuration from process-style arguments and an environment lookup.
// The first argument is the program name and is skipped.
func Build(args []string, lookup LookupFunc) (*Config, error) {
	next := argIterator(args)
	next() // program name

	query, ok := next()
	if !ok {
		return nil, ErrMissingQuery
	}

	filePath, ok := next()
	if !ok {
		return nil, ErrMissingFilePath
	}

	ignoreCase, err := ignoreCaseFromEnv(lookup)
	if err != nil {
		return nil, err
	}

	return &Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}

// ignoreCaseFromEnv reports whether IGNORE_CASE is exactly "1"
func ignoreCaseFromEnv(lookup LookupFunc) (bool, error) {
	if lookup == nil {
		return false, nil
	}
	value, ok, err := lookup(IgnoreCaseEnv)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", IgnoreCaseEnv, err)
	}
	return ok && value == "1", nil
}

func argIterator(args []string) func() (string, bool) {
	i := 0
	return func() (string, bool) {
		if i >= len(args) {
			return "", false
		}
		arg := args[i]
		i++
		return arg, true
	}
}
