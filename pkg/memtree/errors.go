package memtree

import (
	"errors"
	"strings"
)

// Sentinel errors for path operations.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := fs.Add(`docs\readme.txt`, data, int64(len(data)))
//	if errors.Is(err, memtree.ErrNotADirectory) {
//	    // "docs" already exists as a file
//	}
var (
	// ErrNotADirectory indicates a non-terminal path segment resolves to an existing file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotFound indicates the path does not resolve to a node.
	ErrNotFound = errors.New("no such file or directory")

	// ErrIsDirectory indicates a file operation was applied to a directory.
	ErrIsDirectory = errors.New("is a directory")

	// ErrInvalidSize indicates the byte count passed to Add is negative or
	// larger than the supplied content.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScriptFailed indicates an operation script could not be applied.
	ErrScriptFailed = errors.New("script failed")
)

// PathError records an error and the operation and path that caused it.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Script failures wrap the underlying path error, so check them first.
	switch {
	case errors.Is(err, ErrScriptFailed):
		return ExitScriptFailed
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotADirectory):
		return ExitNotADirectory
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrInvalidSize):
		return ExitInvalidContent
	}

	// Cobra reports argument and flag problems as plain errors.
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "accepts ") ||
		strings.HasPrefix(errStr, "requires at least") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.HasPrefix(errStr, "missing required argument") ||
		strings.HasPrefix(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
