package os

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/storages"
)

type StorageTestSuite struct {
	suite.Suite
	dir     string
	storage *Storage
}

func (s *StorageTestSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "media")

	st, err := New(WithLocation(s.dir), WithBaseURL("https://example.com/media/"))
	s.Require().NoError(err)
	s.storage = st
}

func (s *StorageTestSuite) save(name, contents string) string {
	stored, err := s.storage.Save(name, strings.NewReader(contents))
	s.Require().NoError(err)
	return stored
}

func (s *StorageTestSuite) TestNew() {
	info, err := os.Stat(s.dir)
	s.Require().NoError(err, "location is created")
	s.True(info.IsDir())

	_, err = New()
	s.Require().ErrorIs(err, errLocationRequired)

	_, err = New(WithLocation(s.dir), WithMaxNameAttempts(-1))
	s.Require().ErrorIs(err, errMaxNameAttemptsInvalid)

	_, err = New(WithLocation(s.dir), WithBaseURL("example.com/media"))
	s.Require().ErrorIs(err, errBaseURLInvalid)
}

func (s *StorageTestSuite) TestSave() {
	name := s.save(`docs\a.txt`, "hello")
	s.Equal("/docs/a.txt", name)

	b, err := os.ReadFile(filepath.Join(s.dir, "docs", "a.txt"))
	s.Require().NoError(err)
	s.Equal("hello", string(b))

	s.Equal("/docs/a(1).txt", s.save("docs/a.txt", "again"))
	s.Equal("/a.txt", s.save("../../a.txt", "names cannot climb out of the location"))

	_, err = os.Stat(filepath.Join(s.dir, "a.txt"))
	s.Require().NoError(err)
}

func (s *StorageTestSuite) TestSaveOverDanglingSymlink() {
	link := filepath.Join(s.dir, "a.txt")
	s.Require().NoError(os.Symlink(filepath.Join(s.dir, "missing-target"), link))

	exists, err := s.storage.Exists("a.txt")
	s.Require().NoError(err)
	s.True(exists, "a dangling symlink takes up its name")

	done := make(chan struct{})
	var name string
	go func() {
		defer close(done)
		name, err = s.storage.Save("a.txt", strings.NewReader("x"))
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("save did not return")
	}
	s.Require().NoError(err)
	s.Equal("/a(1).txt", name)

	target, err := os.Readlink(link)
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "missing-target"), target, "the symlink is left alone")
}

func (s *StorageTestSuite) TestSaveModes() {
	st, err := New(WithLocation(s.dir), WithFileMode(0o600), WithDirMode(0o700))
	s.Require().NoError(err)

	_, err = st.Save("private/a.txt", strings.NewReader("x"))
	s.Require().NoError(err)

	info, err := os.Stat(filepath.Join(s.dir, "private", "a.txt"))
	s.Require().NoError(err)
	s.Equal(os.FileMode(0o600), info.Mode().Perm())

	info, err = os.Stat(filepath.Join(s.dir, "private"))
	s.Require().NoError(err)
	s.Equal(os.FileMode(0o700), info.Mode().Perm())
}

func (s *StorageTestSuite) TestSaveErrors() {
	_, err := s.storage.Save("a.txt", nil)
	s.Require().ErrorIs(err, storages.ErrContentRequired)

	_, err = s.storage.Save("", strings.NewReader("x"))
	s.Require().ErrorIs(err, storages.ErrNameRequired)

	s.save("readme", "x")
	_, err = s.storage.Save("readme", strings.NewReader("y"))
	s.Require().ErrorIs(err, storages.ErrNoExtension)
}

func (s *StorageTestSuite) TestSaveClosesContent() {
	content := storages.NewBytesFile("named.txt", []byte("named"))

	name, err := s.storage.Save("", content)
	s.Require().NoError(err)
	s.Equal("/named.txt", name)

	_, err = content.Read(make([]byte, 1))
	s.Require().ErrorIs(err, storages.ErrClosed)
}

func (s *StorageTestSuite) TestCreateExclusive() {
	s.save("a.txt", "first")

	err := s.storage.create("/a.txt", storages.NewBytesFile("a.txt", []byte("second")))
	s.Require().ErrorIs(err, os.ErrExist)

	b, err := os.ReadFile(filepath.Join(s.dir, "a.txt"))
	s.Require().NoError(err)
	s.Equal("first", string(b), "an existing file is never overwritten")
}

func (s *StorageTestSuite) TestOpen() {
	name := s.save("a.txt", "hello")

	f, err := s.storage.Open(name)
	s.Require().NoError(err)
	b, err := io.ReadAll(f)
	s.Require().NoError(err)
	s.Equal("hello", string(b))
	s.Equal(int64(5), f.Size())
	s.Require().NoError(f.Close())

	s.save("docs/b.txt", "b")
	_, err = s.storage.Open("docs")
	s.Require().ErrorIs(err, storages.ErrNotFile)

	_, err = s.storage.Open("missing.txt")
	s.Require().ErrorIs(err, storages.ErrNotExist)
}

func (s *StorageTestSuite) TestDeleteExists() {
	a := s.save("docs/a.txt", "a")
	s.save("docs/sub/b.txt", "b")

	s.Require().NoError(s.storage.Delete(a))
	exists, err := s.storage.Exists(a)
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.storage.Exists("docs/sub")
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.storage.Delete("docs"))
	exists, err = s.storage.Exists("docs/sub/b.txt")
	s.Require().NoError(err)
	s.False(exists)

	err = s.storage.Delete("docs")
	s.Require().ErrorIs(err, storages.ErrNotExist)

	s.save("c.txt", "c")
	s.Require().NoError(s.storage.Delete("/"))
	dirs, fileNames, err := s.storage.ListDir("")
	s.Require().NoError(err, "the location survives deleting everything")
	s.Empty(dirs)
	s.Empty(fileNames)
}

func (s *StorageTestSuite) TestListDir() {
	s.save("b.txt", "b")
	s.save("a.txt", "a")
	s.save("z/c.txt", "c")
	s.save("y/deeper/d.txt", "d")

	for _, root := range []string{"", "/"} {
		dirs, fileNames, err := s.storage.ListDir(root)
		s.Require().NoError(err)
		s.Equal([]string{"y", "z"}, dirs)
		s.Equal([]string{"a.txt", "b.txt"}, fileNames)
	}

	dirs, fileNames, err := s.storage.ListDir(`y\`)
	s.Require().NoError(err)
	s.Equal([]string{"deeper"}, dirs)
	s.Empty(fileNames)

	_, _, err = s.storage.ListDir("missing")
	s.Require().ErrorIs(err, storages.ErrNotExist)
	s.Contains(err.Error(), "list error")
}

func (s *StorageTestSuite) TestSizeAndTimes() {
	name := s.save("a.txt", "12345")

	size, err := s.storage.Size(name)
	s.Require().NoError(err)
	s.Equal(int64(5), size)

	modified := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(os.Chtimes(filepath.Join(s.dir, "a.txt"), modified, modified))

	got, err := s.storage.ModifiedTime(name)
	s.Require().NoError(err)
	s.True(modified.Equal(got))

	_, err = s.storage.AccessedTime(name)
	s.Require().NoError(err)
	_, err = s.storage.CreatedTime(name)
	s.Require().NoError(err)

	_, err = s.storage.Size("missing.txt")
	s.Require().ErrorIs(err, storages.ErrNotExist)

	s.save("docs/b.txt", "b")
	_, err = s.storage.CreatedTime("docs")
	s.Require().ErrorIs(err, storages.ErrNotFile)
	s.Contains(err.Error(), "time error")
}

func (s *StorageTestSuite) TestURL() {
	name := s.save("my docs/a.txt", "x")

	link, err := s.storage.URL(name, false)
	s.Require().NoError(err)
	s.Equal("https://example.com/media/my%20docs/a.txt", link)

	permanent, err := s.storage.URL(name, true)
	s.Require().NoError(err)
	s.Equal(link, permanent)

	_, err = s.storage.URL("missing.txt", false)
	s.Require().ErrorIs(err, storages.ErrNotExist)

	st, err := New(WithLocation(s.dir))
	s.Require().NoError(err)
	_, err = st.URL(name, false)
	s.Require().ErrorIs(err, errBaseURLRequired)
}

func (s *StorageTestSuite) TestServeHTTP() {
	name := s.save("docs/a(1).txt", "served")
	link, err := s.storage.URL(name, false)
	s.Require().NoError(err)

	rec := httptest.NewRecorder()
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, link, nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("served", rec.Body.String())

	rec = httptest.NewRecorder()
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "https://example.com/media/docs", nil))
	s.Equal(http.StatusNotFound, rec.Code, "folders are not served")

	rec = httptest.NewRecorder()
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "https://example.com/static/docs/a.txt", nil))
	s.Equal(http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, link, nil))
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}
