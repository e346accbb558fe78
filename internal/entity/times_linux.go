//go:build linux

package entity

import (
	"io/fs"
	"syscall"
	"time"
)

// createdTime extracts the inode change time, the closest thing to a
// creation timestamp Linux exposes without statx.
func createdTime(info fs.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
