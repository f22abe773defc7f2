package os

import (
	"errors"
	"io/fs"
	"net/url"
)

const (
	// DefaultFileMode is applied to files created by Save.
	DefaultFileMode fs.FileMode = 0o644

	// DefaultDirMode is applied to folders created by Save.
	DefaultDirMode fs.FileMode = 0o755
)

var (
	errLocationRequired       = errors.New("a location directory is required")
	errBaseURLRequired        = errors.New("a base URL is required to build links")
	errBaseURLInvalid         = errors.New("base URL must be an absolute http(s) URL")
	errMaxNameAttemptsInvalid = errors.New("max name attempts may not be negative")
)

// Options holds configuration options for the local file system Storage.
type Options struct {
	// Location is the directory every name is stored under. It is created if missing.
	Location string

	// BaseURL prefixes the links returned by URL, ie: "https://example.com/media".
	BaseURL string

	// FileMode is applied to new files (default: 0644).
	FileMode fs.FileMode

	// DirMode is applied to new folders (default: 0755).
	DirMode fs.FileMode

	// MaxNameAttempts caps the number of alternative names GetAvailableName tries. Zero means no cap.
	MaxNameAttempts int
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		FileMode: DefaultFileMode,
		DirMode:  DefaultDirMode,
	}
}

func (o Options) validate() error {
	if o.Location == "" {
		return errLocationRequired
	}
	if o.MaxNameAttempts < 0 {
		return errMaxNameAttemptsInvalid
	}
	if o.BaseURL != "" {
		u, err := url.Parse(o.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errBaseURLInvalid
		}
	}
	return nil
}
