package storages

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrNotExist - File does not exist
	ErrNotExist = Error("file does not exist")

	// ErrNotFile - the name refers to something other than a file, ie: a folder
	ErrNotFile = Error("not a file")

	// ErrNoExtension - an alternative name can only be built for names whose base has an extension
	ErrNoExtension = Error("name has no extension to split on")

	// ErrNameUnavailable - no free name was found within the configured number of attempts
	ErrNameUnavailable = Error("no available name found")

	// ErrContentRequired - Save was called with nil content
	ErrContentRequired = Error("non-nil content is required")

	// ErrNameRequired - neither a name nor a named content was supplied
	ErrNameRequired = Error("non-empty name is required")

	// ErrClosed - the content was read after Close
	ErrClosed = Error("content is closed")
)
