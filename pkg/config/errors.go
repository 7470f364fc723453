package config

import (
	"errors"
	"fmt"
)

var (
	// ErrHomeNotFound is returned when HOME is unset and no explicit path was given
	ErrHomeNotFound = errors.New("HOME directory not found")
)

// ReadError wraps a filesystem failure while reading the config file
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read config %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError wraps a decoding failure for malformed config content
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DuplicateKeyError reports two entries bound to the same key character
type DuplicateKeyError struct {
	Key    rune
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in entries %d and %d", e.Key, e.First, e.Second)
}

// EmptyKeyError reports an entry without a key
type EmptyKeyError struct {
	Index int
}

func (e *EmptyKeyError) Error() string {
	return fmt.Sprintf("entries[%d]: key must not be empty", e.Index)
}
