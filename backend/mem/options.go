package mem

import (
	"errors"
	"net/url"
)

var (
	errBaseURLRequired        = errors.New("a base URL is required to build links")
	errBaseURLInvalid         = errors.New("base URL must be an absolute http(s) URL")
	errMaxNameAttemptsInvalid = errors.New("max name attempts may not be negative")
)

// Options holds configuration options for the in-memory Storage.
type Options struct {
	// RootPath is the folder every name is stored under, ie: "/media". Empty means the top level.
	RootPath string

	// BaseURL prefixes the links returned by URL, ie: "http://localhost:8080/files". Storage serves those links
	// when mounted at the same path.
	BaseURL string

	// MaxNameAttempts caps the number of alternative names GetAvailableName tries. Zero means no cap.
	MaxNameAttempts int
}

func (o Options) validate() error {
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
