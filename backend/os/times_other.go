//go:build !linux

package os

import (
	"io/fs"
	"time"
)

// accessTime returns the modification time; access times are not read on this platform.
func accessTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}

// createTime returns the modification time; creation times are not read on this platform.
func createTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
