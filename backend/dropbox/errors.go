package dropbox

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

var (
	errCredentialsRequired    = errors.New("an access token or a refresh token is required for Dropbox authentication")
	errAppKeyRequired         = errors.New("app key is required when authenticating with a refresh token")
	errChunkSizeInvalid       = errors.New("chunk size must be greater than zero")
	errWriteModeInvalid       = errors.New(`write mode must be "add" or "overwrite"`)
	errMaxNameAttemptsInvalid = errors.New("max name attempts may not be negative")
	errNoSharedLink           = errors.New("no shared link found for path")
)

// StatusError is returned by Open when fetching file content answers with anything but 200 OK.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// transientMarkers appear in the error summaries of Dropbox errors worth retrying.
var transientMarkers = []string{
	"too_many_requests",
	"too_many_write_operations",
	"internal_error",
}

// IsNotFound checks if an error is a "path not found" error from Dropbox.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	// Dropbox returns errors with "path/not_found" or "not_found" in the message
	errStr := err.Error()
	return strings.Contains(errStr, "path/not_found") ||
		strings.Contains(errStr, "not_found") ||
		strings.Contains(errStr, "path_not_found")
}

// IsTransient reports whether err is likely to go away on its own: rate limiting, server-side failures and network
// errors. The backend never retries; callers may.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= http.StatusInternalServerError
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := err.Error()
	for _, marker := range transientMarkers {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}

func isSharedLinkExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "shared_link_already_exists")
}
