package dropbox

import (
	"net/http"
	"time"
)

const (
	// DefaultChunkSize is the payload size above which Save switches to an upload session.
	DefaultChunkSize = 4 * 1024 * 1024

	// DefaultTimeout bounds every HTTP request made on behalf of the backend.
	DefaultTimeout = 100 * time.Second

	// DefaultWriteMode never overwrites an existing file.
	DefaultWriteMode = WriteModeAdd
)

// WriteMode selects what Dropbox does when a file already exists at the target path.
type WriteMode string

const (
	// WriteModeAdd keeps the existing file; the write fails on conflict.
	WriteModeAdd WriteMode = "add"

	// WriteModeOverwrite replaces the existing file.
	WriteModeOverwrite WriteMode = "overwrite"
)

// Valid reports whether m is a mode Dropbox understands.
func (m WriteMode) Valid() bool {
	return m == WriteModeAdd || m == WriteModeOverwrite
}

// Options holds configuration options for the Dropbox Storage.
type Options struct {
	// AccessToken is a long-lived OAuth2 access token. Ignored when RefreshToken is set.
	AccessToken string

	// RefreshToken is an OAuth2 refresh token. Requires AppKey (and AppSecret for confidential apps).
	RefreshToken string

	// AppKey is the Dropbox app key (OAuth2 client id).
	AppKey string

	// AppSecret is the Dropbox app secret (OAuth2 client secret).
	AppSecret string

	// RootPath is the Dropbox folder every name is stored under, ie: "/media". Empty means the app's root.
	RootPath string

	// ChunkSize is the threshold, and the chunk length, for upload sessions (default: 4MB).
	ChunkSize int64

	// WriteMode is applied to every upload (default: add).
	WriteMode WriteMode

	// Timeout bounds each HTTP request (default: 100s).
	Timeout time.Duration

	// MaxNameAttempts caps the number of alternative names GetAvailableName tries. Zero means no cap.
	MaxNameAttempts int

	// HTTPClient fetches file content from temporary links in Open. Defaults to a client using Timeout.
	HTTPClient *http.Client
}

// NewOptions creates Options with default values.
func NewOptions() Options {
	return Options{
		ChunkSize: DefaultChunkSize,
		WriteMode: DefaultWriteMode,
		Timeout:   DefaultTimeout,
	}
}

func (o Options) validate() error {
	if o.ChunkSize <= 0 {
		return errChunkSizeInvalid
	}
	if !o.WriteMode.Valid() {
		return errWriteModeInvalid
	}
	if o.MaxNameAttempts < 0 {
		return errMaxNameAttemptsInvalid
	}
	return nil
}
