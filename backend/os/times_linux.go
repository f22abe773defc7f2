//go:build linux

package os

import (
	"io/fs"
	"syscall"
	"time"
)

// accessTime returns the access time recorded in the stat result.
func accessTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Atim.Unix())
	}
	return info.ModTime()
}

// createTime returns the inode change time. Linux stat results carry no birth time.
func createTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Unix())
	}
	return info.ModTime()
}
