// Package errs defines the error taxonomy shared by the fnsh core.
//
// Filesystem and process failures are surfaced as distinct sentinel
// errors so callers can branch with errors.Is regardless of which
// component produced them.
package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the destination already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPermission indicates the operation was denied.
	ErrPermission = errors.New("permission denied")

	// ErrCrossDevice indicates a rename across storage devices.
	// Move recovers this internally via copy-then-delete.
	ErrCrossDevice = errors.New("cross-device link unsupported")

	// ErrClassifierUnavailable indicates MIME classification failed.
	// Callers degrade to the textual heuristic; this never fails a caller.
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

// Classify maps an OS-level error onto the taxonomy, preserving the
// attempted operation and path in the message. A nil error stays nil;
// an error with no taxonomy match is wrapped as-is.
func Classify(op, path string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %s: %w", op, path, ErrNotFound)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%s %s: %w", op, path, ErrAlreadyExists)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %s: %w", op, path, ErrPermission)
	case IsCrossDevice(err):
		return fmt.Errorf("%s %s: %w", op, path, ErrCrossDevice)
	}

	return fmt.Errorf("%s %s: %w", op, path, err)
}

// IsCrossDevice reports whether err is a rename that failed because
// source and destination live on different storage devices.
func IsCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}
