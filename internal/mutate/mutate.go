// Package mutate implements move and copy over raw paths.
//
// Both operations check the destination before touching the
// filesystem and create missing parent directories. Move prefers an
// atomic rename and recovers exactly one failure mode: a rename that
// crossed storage devices falls back to copy-then-delete-source.
// Entities snapshotted before a mutation are stale afterwards.
package mutate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kivkovic/fnsh/internal/shared/errs"
)

// Move renames oldPath to newPath. Without overwrite it fails before
// touching anything when the destination exists. Only a cross-device
// rename failure is recovered (copy then unlink source); every other
// rename error propagates.
func Move(oldPath, newPath string, overwrite bool) error {
	if err := precheck("move", newPath, overwrite); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return errs.Classify("move", newPath, err)
	}

	err := os.Rename(oldPath, newPath)
	if err == nil {
		return nil
	}
	if !errs.IsCrossDevice(err) {
		return errs.Classify("move", oldPath, err)
	}

	if err := copyContents(oldPath, newPath); err != nil {
		return err
	}
	if err := os.Remove(oldPath); err != nil {
		return errs.Classify("move", oldPath, err)
	}
	return nil
}

// Copy duplicates the file at oldPath to newPath, leaving the source
// in place. The destination inherits the source's permission bits.
func Copy(oldPath, newPath string, overwrite bool) error {
	if err := precheck("copy", newPath, overwrite); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
		return errs.Classify("copy", newPath, err)
	}
	return copyContents(oldPath, newPath)
}

// precheck enforces the overwrite policy before any mutation.
func precheck(op, newPath string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("%s %s: %w", op, newPath, errs.ErrAlreadyExists)
	}
	return nil
}

// copyContents streams the file through a bounded buffer; handles are
// closed on every exit path.
func copyContents(oldPath, newPath string) error {
	src, err := os.Open(oldPath)
	if err != nil {
		return errs.Classify("copy", oldPath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return errs.Classify("copy", oldPath, err)
	}

	dst, err := os.OpenFile(newPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errs.Classify("copy", newPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return errs.Classify("copy", newPath, err)
	}
	if err := dst.Close(); err != nil {
		return errs.Classify("copy", newPath, err)
	}
	return nil
}
