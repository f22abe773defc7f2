package storages

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileTestSuite struct {
	suite.Suite
}

type nopReader struct {
	r io.Reader
}

func (n nopReader) Read(p []byte) (int, error) { return n.r.Read(p) }

type badSeeker struct {
	io.Reader
}

func (badSeeker) Seek(int64, int) (int64, error) { return 0, errors.New("cannot seek") }

type closingReadSeeker struct {
	*bytes.Reader
	closed bool
}

func (c *closingReadSeeker) Close() error {
	c.closed = true
	return nil
}

func (s *FileTestSuite) TestNewFile() {
	s.Run("Size is taken from the reader and reader is rewound", func() {
		r := strings.NewReader("some text")
		_, err := r.Seek(4, io.SeekStart)
		s.Require().NoError(err)

		f, err := NewFile("a.txt", r)
		s.Require().NoError(err)
		s.Equal("a.txt", f.Name())
		s.Equal(int64(9), f.Size())

		pos, err := Tell(f)
		s.Require().NoError(err)
		s.Equal(int64(0), pos)
	})

	s.Run("Seek failure is returned", func() {
		f, err := NewFile("a.txt", badSeeker{strings.NewReader("x")})
		s.Require().Error(err)
		s.Nil(f)
	})
}

func (s *FileTestSuite) TestAsContent() {
	s.Run("Content is returned unchanged", func() {
		f := NewBytesFile("a.txt", []byte("abc"))
		c, err := AsContent("other.txt", f)
		s.Require().NoError(err)
		s.Same(f, c)
		s.Equal("a.txt", c.Name())
	})

	s.Run("ReadSeeker is wrapped", func() {
		c, err := AsContent("b.txt", strings.NewReader("hello"))
		s.Require().NoError(err)
		s.Equal("b.txt", c.Name())
		s.Equal(int64(5), c.Size())
	})

	s.Run("Plain reader is buffered", func() {
		c, err := AsContent("c.txt", nopReader{strings.NewReader("hello world")})
		s.Require().NoError(err)
		s.Equal(int64(11), c.Size())

		b, err := io.ReadAll(c)
		s.Require().NoError(err)
		s.Equal("hello world", string(b))
	})
}

func (s *FileTestSuite) TestReadTellOpen() {
	f := NewBytesFile("a.txt", []byte("0123456789"))

	buf := make([]byte, 4)
	n, err := f.Read(buf)
	s.Require().NoError(err)
	s.Equal(4, n)

	pos, err := Tell(f)
	s.Require().NoError(err)
	s.Equal(int64(4), pos)

	s.Require().NoError(f.Open())
	pos, err = Tell(f)
	s.Require().NoError(err)
	s.Equal(int64(0), pos)
}

func (s *FileTestSuite) TestClose() {
	s.Run("Read after close fails", func() {
		f := NewBytesFile("a.txt", []byte("abc"))
		s.Require().NoError(f.Close())

		_, err := f.Read(make([]byte, 1))
		s.ErrorIs(err, ErrClosed)

		_, err = f.Seek(0, io.SeekStart)
		s.ErrorIs(err, ErrClosed)

		s.Require().NoError(f.Close(), "second close is a no-op")
	})

	s.Run("In-memory file can be reopened", func() {
		f := NewBytesFile("a.txt", []byte("abc"))
		s.Require().NoError(f.Close())
		s.Require().NoError(f.Open())

		b, err := io.ReadAll(f)
		s.Require().NoError(err)
		s.Equal("abc", string(b))
	})

	s.Run("Underlying closer is closed and cannot be reopened", func() {
		rs := &closingReadSeeker{Reader: bytes.NewReader([]byte("abc"))}
		f, err := NewFile("a.txt", rs)
		s.Require().NoError(err)

		s.Require().NoError(f.Close())
		s.True(rs.closed)
		s.ErrorIs(f.Open(), ErrClosed)
	})
}

func TestFileTestSuite(t *testing.T) {
	suite.Run(t, new(FileTestSuite))
}
