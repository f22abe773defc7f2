package dropbox

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/backend/dropbox/mocks"
)

const mib = 1024 * 1024

type UploadTestSuite struct {
	suite.Suite
	mockClient *mocks.Client
	storage    *Storage
}

func (s *UploadTestSuite) SetupTest() {
	s.mockClient = mocks.NewClient(s.T())
	s.storage = &Storage{
		client:  s.mockClient,
		options: NewOptions(),
		root:    "/media",
		logger:  slog.New(slog.DiscardHandler),
	}
}

// sessionCall records one upload session request.
type sessionCall struct {
	method string
	offset uint64
	size   int
}

// expectSession records every session call made against the mock into calls.
func (s *UploadTestSuite) expectSession(calls *[]sessionCall, received *bytes.Buffer) {
	read := func(r io.Reader) int {
		n, err := io.Copy(received, r)
		s.Require().NoError(err)
		return int(n)
	}

	s.mockClient.EXPECT().
		UploadSessionStart(mock.Anything, mock.Anything).
		RunAndReturn(func(_ *files.UploadSessionStartArg, r io.Reader) (*files.UploadSessionStartResult, error) {
			*calls = append(*calls, sessionCall{method: "start", size: read(r)})
			return &files.UploadSessionStartResult{SessionId: "session-1"}, nil
		}).
		Maybe()
	s.mockClient.EXPECT().
		UploadSessionAppendV2(mock.Anything, mock.Anything).
		RunAndReturn(func(arg *files.UploadSessionAppendArg, r io.Reader) error {
			s.Equal("session-1", arg.Cursor.SessionId)
			*calls = append(*calls, sessionCall{method: "append", offset: arg.Cursor.Offset, size: read(r)})
			return nil
		}).
		Maybe()
	s.mockClient.EXPECT().
		UploadSessionFinish(mock.Anything, mock.Anything).
		RunAndReturn(func(arg *files.UploadSessionFinishArg, r io.Reader) (*files.FileMetadata, error) {
			s.Equal("session-1", arg.Cursor.SessionId)
			s.Equal("/media/big.bin", arg.Commit.Path)
			s.Equal(string(s.storage.options.WriteMode), arg.Commit.Mode.Tag)
			*calls = append(*calls, sessionCall{method: "finish", offset: arg.Cursor.Offset, size: read(r)})
			return &files.FileMetadata{}, nil
		}).
		Maybe()
}

func (s *UploadTestSuite) TestWriteSingleRequest() {
	s.Run("Content at the threshold is one upload", func() {
		data := bytes.Repeat([]byte("x"), 16)
		s.storage.options.ChunkSize = 16

		s.mockClient.EXPECT().
			Upload(mock.MatchedBy(func(arg *files.UploadArg) bool {
				return arg.Path == "/media/a.bin" && arg.Mode.Tag == "add"
			}), mock.Anything).
			RunAndReturn(func(_ *files.UploadArg, r io.Reader) (*files.FileMetadata, error) {
				b, err := io.ReadAll(r)
				s.Require().NoError(err)
				s.Equal(data, b)
				return &files.FileMetadata{}, nil
			}).
			Once()

		f := storages.NewBytesFile("a.bin", data)
		s.Require().NoError(s.storage.write("/media/a.bin", f))

		_, err := f.Read(make([]byte, 1))
		s.Require().ErrorIs(err, storages.ErrClosed, "content is closed after the write")
	})

	s.Run("Overwrite mode is sent", func() {
		s.storage.options.WriteMode = WriteModeOverwrite
		defer func() { s.storage.options.WriteMode = DefaultWriteMode }()

		s.mockClient.EXPECT().
			Upload(mock.MatchedBy(func(arg *files.UploadArg) bool {
				return arg.Mode.Tag == "overwrite"
			}), mock.Anything).
			Return(&files.FileMetadata{}, nil).
			Once()

		s.Require().NoError(s.storage.write("/media/a.bin", storages.NewBytesFile("a.bin", []byte("x"))))
	})

	s.Run("Partially read content is rewound", func() {
		f := storages.NewBytesFile("a.bin", []byte("abcdef"))
		_, err := f.Read(make([]byte, 3))
		s.Require().NoError(err)

		s.mockClient.EXPECT().
			Upload(mock.Anything, mock.Anything).
			RunAndReturn(func(_ *files.UploadArg, r io.Reader) (*files.FileMetadata, error) {
				b, err := io.ReadAll(r)
				s.Require().NoError(err)
				s.Equal("abcdef", string(b))
				return &files.FileMetadata{}, nil
			}).
			Once()

		s.Require().NoError(s.storage.write("/media/a.bin", f))
	})
}

func (s *UploadTestSuite) TestChunkedUpload() {
	s.Run("10MiB with 4MiB chunks", func() {
		s.storage.options.ChunkSize = 4 * mib
		data := bytes.Repeat([]byte("0123456789abcdef"), 10*mib/16)

		var calls []sessionCall
		received := &bytes.Buffer{}
		s.expectSession(&calls, received)

		s.Require().NoError(s.storage.write("/media/big.bin", storages.NewBytesFile("big.bin", data)))

		s.Equal([]sessionCall{
			{method: "start", size: 4 * mib},
			{method: "append", offset: 4 * mib, size: 4 * mib},
			{method: "finish", offset: 8 * mib, size: 2 * mib},
		}, calls)
		s.True(bytes.Equal(data, received.Bytes()))
	})

	tests := []struct {
		name      string
		size      int
		chunkSize int64
		calls     int
	}{
		{name: "Exact multiple", size: 64, chunkSize: 16, calls: 4},
		{name: "One byte over", size: 17, chunkSize: 16, calls: 2},
		{name: "Many small chunks", size: 100, chunkSize: 7, calls: 15},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.storage.options.ChunkSize = tt.chunkSize
			data := bytes.Repeat([]byte("z"), tt.size)

			var calls []sessionCall
			received := &bytes.Buffer{}
			s.expectSession(&calls, received)

			s.Require().NoError(s.storage.write("/media/big.bin", storages.NewBytesFile("big.bin", data)))

			s.Len(calls, tt.calls)
			s.Equal("start", calls[0].method)
			s.Equal("finish", calls[len(calls)-1].method)

			total := 0
			for i, c := range calls {
				s.LessOrEqual(int64(c.size), tt.chunkSize)
				if i > 0 {
					s.Equal(uint64(total), c.offset, "cursor offset matches bytes sent")
				}
				total += c.size
			}
			s.Equal(tt.size, total)
			s.Equal(data, received.Bytes())
		})
	}
}

type shortContent struct {
	*storages.File
	size int64
}

func (c shortContent) Size() int64 {
	return c.size
}

func (s *UploadTestSuite) TestChunkedUploadErrors() {
	s.Run("Content shorter than its size fails", func() {
		s.storage.options.ChunkSize = 4
		content := shortContent{File: storages.NewBytesFile("big.bin", []byte("abcd")), size: 10}

		s.mockClient.EXPECT().
			UploadSessionStart(mock.Anything, mock.Anything).
			Return(&files.UploadSessionStartResult{SessionId: "session-1"}, nil).
			Once()

		err := s.storage.write("/media/big.bin", content)
		s.Require().ErrorIs(err, io.ErrUnexpectedEOF)
	})

	s.Run("Start failure stops the upload", func() {
		s.storage.options.ChunkSize = 4

		s.mockClient.EXPECT().
			UploadSessionStart(mock.Anything, mock.Anything).
			Return(nil, errors.New("too_many_write_operations/")).
			Once()

		err := s.storage.write("/media/big.bin", storages.NewBytesFile("big.bin", []byte("0123456789")))
		s.Require().Error(err)
		s.Contains(err.Error(), "upload error")
		s.True(IsTransient(err))
	})

	s.Run("Append failure stops the upload", func() {
		s.storage.options.ChunkSize = 4

		s.mockClient.EXPECT().
			UploadSessionStart(mock.Anything, mock.Anything).
			Return(&files.UploadSessionStartResult{SessionId: "session-1"}, nil).
			Once()
		s.mockClient.EXPECT().
			UploadSessionAppendV2(mock.Anything, mock.Anything).
			Return(errors.New("lookup_failed/incorrect_offset/")).
			Once()

		err := s.storage.write("/media/big.bin", storages.NewBytesFile("big.bin", []byte("0123456789")))
		s.Require().Error(err)
		s.Contains(err.Error(), "incorrect_offset")
	})
}

func (s *UploadTestSuite) TestReadChunk() {
	buf := make([]byte, 4)

	chunk, err := readChunk(bytes.NewReader([]byte("abcdef")), buf)
	s.Require().NoError(err)
	s.Equal("abcd", string(chunk))

	chunk, err = readChunk(bytes.NewReader([]byte("ab")), buf)
	s.Require().NoError(err)
	s.Equal("ab", string(chunk))

	_, err = readChunk(bytes.NewReader(nil), buf)
	s.Require().ErrorIs(err, io.ErrUnexpectedEOF)
}

func TestUploadTestSuite(t *testing.T) {
	suite.Run(t, new(UploadTestSuite))
}
