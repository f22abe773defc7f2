package storages

import (
	"bytes"
	"io"
)

// File implements Content over an io.ReadSeeker.
type File struct {
	name   string
	reader io.ReadSeeker
	size   int64
	closed bool
}

// NewFile returns a File reading from r. The size is taken by seeking to the end of r, after which r is rewound to
// the start.
func NewFile(name string, r io.ReadSeeker) (*File, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return &File{
		name:   name,
		reader: r,
		size:   size,
	}, nil
}

// NewBytesFile returns a File holding b.
func NewBytesFile(name string, b []byte) *File {
	return &File{
		name:   name,
		reader: bytes.NewReader(b),
		size:   int64(len(b)),
	}
}

// AsContent returns r as a Content. Values that already implement Content are returned unchanged, seekable readers are
// wrapped as they are, and anything else is read fully into memory.
func AsContent(name string, r io.Reader) (Content, error) {
	switch v := r.(type) {
	case Content:
		return v, nil
	case io.ReadSeeker:
		return NewFile(name, v)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return NewBytesFile(name, b), nil
}

// Name returns the name of the file.
func (f *File) Name() string {
	return f.name
}

// Size returns the size of the file in bytes.
func (f *File) Size() int64 {
	return f.size
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.reader.Read(p)
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, ErrClosed
	}
	return f.reader.Seek(offset, whence)
}

// Open rewinds the file so it can be read from the start again.
func (f *File) Open() error {
	if f.closed {
		if _, ok := f.reader.(io.Closer); ok {
			// the underlying reader is gone
			return ErrClosed
		}
		f.closed = false
	}

	_, err := f.reader.Seek(0, io.SeekStart)
	return err
}

// Close closes the file, and the underlying reader if it is an io.Closer.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if c, ok := f.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
