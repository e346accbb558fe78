//go:build darwin

package entity

import (
	"io/fs"
	"syscall"
	"time"
)

// createdTime extracts the birth time from the Darwin stat structure.
func createdTime(info fs.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok && stat.Birthtimespec.Sec != 0 {
		return time.Unix(stat.Birthtimespec.Sec, stat.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
