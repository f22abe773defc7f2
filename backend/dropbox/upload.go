package dropbox

import (
	"bytes"
	"errors"
	"io"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/utils"
)

func (s *Storage) writeMode() *files.WriteMode {
	return &files.WriteMode{Tagged: dropbox.Tagged{Tag: string(s.options.WriteMode)}}
}

// write uploads content to dest in one request, or through an upload session when it is larger than the chunk size.
func (s *Storage) write(dest string, content storages.Content) (err error) {
	if err := content.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := content.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if content.Size() <= s.options.ChunkSize {
		s.logger.Debug("dropbox upload", "path", dest, "size", content.Size(), "mode", s.options.WriteMode)

		uploadArg := files.NewUploadArg(dest)
		uploadArg.Mode = s.writeMode()
		_, err := s.client.Upload(uploadArg, content)
		return utils.WrapUploadError(err)
	}

	return utils.WrapUploadError(s.chunkedUpload(content, dest))
}

// chunkedUpload sends content through an upload session. The first chunk starts the session, middle chunks are
// appended at the cursor, and the chunk that reaches the end of content finishes the session and commits dest.
// Every chunk is at most ChunkSize bytes. A failure part way leaves the session uncommitted on the Dropbox side.
func (s *Storage) chunkedUpload(content storages.Content, dest string) error {
	size := content.Size()
	chunkSize := s.options.ChunkSize
	buf := make([]byte, chunkSize)

	chunk, err := readChunk(content, buf)
	if err != nil {
		return err
	}

	result, err := s.client.UploadSessionStart(&files.UploadSessionStartArg{}, bytes.NewReader(chunk))
	if err != nil {
		return err
	}

	offset, err := storages.Tell(content)
	if err != nil {
		return err
	}

	cursor := files.UploadSessionCursor{
		SessionId: result.SessionId,
		Offset:    uint64(offset),
	}
	commitInfo := files.NewCommitInfo(dest)
	commitInfo.Mode = s.writeMode()

	s.logger.Debug("dropbox upload session started",
		"path", dest, "session_id", cursor.SessionId, "offset", cursor.Offset, "size", size)

	for offset < size {
		last := size-offset <= chunkSize

		chunk, err := readChunk(content, buf)
		if err != nil {
			return err
		}

		if last {
			_, err = s.client.UploadSessionFinish(&files.UploadSessionFinishArg{
				Cursor: &files.UploadSessionCursor{SessionId: cursor.SessionId, Offset: cursor.Offset},
				Commit: commitInfo,
			}, bytes.NewReader(chunk))
			if err != nil {
				return err
			}
			s.logger.Debug("dropbox upload session finished", "path", dest, "session_id", cursor.SessionId)
		} else {
			err = s.client.UploadSessionAppendV2(&files.UploadSessionAppendArg{
				Cursor: &files.UploadSessionCursor{SessionId: cursor.SessionId, Offset: cursor.Offset},
			}, bytes.NewReader(chunk))
			if err != nil {
				return err
			}
		}

		if offset, err = storages.Tell(content); err != nil {
			return err
		}

		if !last {
			cursor.Offset = uint64(offset)
			s.logger.Debug("dropbox upload session appended", "session_id", cursor.SessionId, "offset", cursor.Offset)
		}
	}

	return nil
}

// readChunk fills buf from r. A short final chunk is fine; a read that yields nothing is not.
func readChunk(r io.Reader, buf []byte) ([]byte, error) {
	n, err := io.ReadFull(r, buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}

	return buf[:n], nil
}
