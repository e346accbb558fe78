//go:build !linux && !darwin

package entity

import (
	"io/fs"
	"time"
)

// createdTime falls back to the modification time on platforms without
// an accessible creation timestamp.
func createdTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
