package storages

import (
	"io"
	"time"
)

// Storage is the contract a web application uses to store files. Names handed back by Save and GetAvailableName are
// the keys every other method accepts.
type Storage interface {
	// Open retrieves the named file. The returned Content is positioned at the start of the file.
	Open(name string) (Content, error)

	// Save stores content under a name derived from name (or from content's own name when name is empty) and returns
	// the name it was actually stored under. Save never overwrites an existing file on purpose: it resolves a free name
	// first with GetAvailableName.
	Save(name string, content io.Reader) (string, error)

	// Delete removes the named file.
	Delete(name string) error

	// Exists reports whether the named file is present. A false result with a nil error means the file is absent;
	// a non-nil error means presence could not be determined.
	Exists(name string) (bool, error)

	// ListDir lists the immediate children of path as two slices: directories, then files.
	ListDir(path string) (directories []string, files []string, err error)

	// Size returns the size of the named file in bytes.
	Size(name string) (int64, error)

	// URL returns a link a browser can use to fetch the file content directly. When permanent is false the link is
	// short-lived.
	URL(name string, permanent bool) (string, error)

	// GetAvailableName returns a name, based on name, that is free on the storage system.
	GetAvailableName(name string) (string, error)

	// GenerateFilename validates filename and returns the name that would be handed to Save.
	GenerateFilename(filename string) string

	// GetValidName returns a name suitable for use on the storage system.
	GetValidName(name string) string

	// AccessedTime returns the last access time of the named file.
	AccessedTime(name string) (time.Time, error)

	// CreatedTime returns the creation time of the named file.
	CreatedTime(name string) (time.Time, error)

	// ModifiedTime returns the last modification time of the named file.
	ModifiedTime(name string) (time.Time, error)
}

// Content is file-like data handed to and returned from a Storage. The current offset (tell) is
// Seek(0, io.SeekCurrent).
type Content interface {
	io.Reader
	io.Seeker

	// Name returns the name the content was created with. May be empty.
	Name() string

	// Size returns the total size of the content in bytes.
	Size() int64

	// Open prepares the content for reading from the beginning.
	Open() error

	// Close releases the content.
	Close() error
}

// Tell returns the current read offset of c.
func Tell(c Content) (int64, error) {
	return c.Seek(0, io.SeekCurrent)
}
