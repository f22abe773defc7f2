package mem

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/storages"
)

type StorageTestSuite struct {
	suite.Suite
	storage *Storage
	clock   time.Time
}

func (s *StorageTestSuite) SetupTest() {
	st, err := New(WithRootPath("media/"), WithBaseURL("http://files.example.com/uploads/"))
	s.Require().NoError(err)

	s.clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return s.clock }
	s.storage = st
}

func (s *StorageTestSuite) save(name, contents string) string {
	stored, err := s.storage.Save(name, strings.NewReader(contents))
	s.Require().NoError(err)
	return stored
}

func (s *StorageTestSuite) TestNew() {
	s.Equal("/media", s.storage.root)

	_, err := New(WithMaxNameAttempts(-1))
	s.Require().ErrorIs(err, errMaxNameAttemptsInvalid)

	for _, base := range []string{"ftp://files.example.com", "/relative", "http://"} {
		_, err = New(WithBaseURL(base))
		s.Require().ErrorIs(err, errBaseURLInvalid, base)
	}
}

func (s *StorageTestSuite) TestSaveOpen() {
	name := s.save(`docs\a.txt`, "hello")
	s.Equal("/media/docs/a.txt", name)

	s.Equal("/media/docs/a(1).txt", s.save("docs/a.txt", "again"))
	s.Equal("/media/docs/a(2).txt", s.save("/media/docs/a.txt", "rooted names are kept"))

	f, err := s.storage.Open(name)
	s.Require().NoError(err)
	b, err := io.ReadAll(f)
	s.Require().NoError(err)
	s.Equal("hello", string(b))
	s.Equal("a.txt", f.Name())
	s.Equal(int64(5), f.Size())

	_, err = s.storage.Open("docs")
	s.Require().ErrorIs(err, storages.ErrNotFile)

	_, err = s.storage.Open("missing.txt")
	s.Require().ErrorIs(err, storages.ErrNotExist)
	s.Contains(err.Error(), "open error")
}

func (s *StorageTestSuite) TestNamesStayUnderRoot() {
	tests := []struct {
		name     string
		expected string
	}{
		{"../escape.txt", "/media/escape.txt"},
		{"/media/../escape2.txt", "/media/escape2.txt"},
		{`..\..\esc3.txt`, "/media/esc3.txt"},
		{"docs/../../../esc4.txt", "/media/esc4.txt"},
		{"/media/docs//a.txt", "/media/docs/a.txt"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.expected, s.save(tt.name, "x"))
		})
	}

	dirs, fileNames, err := s.storage.ListDir("..")
	s.Require().NoError(err)
	s.Equal([]string{"docs"}, dirs, "listing above the root lists the root")
	s.Equal([]string{"esc3.txt", "esc4.txt", "escape.txt", "escape2.txt"}, fileNames)

	for key := range s.storage.files {
		s.True(strings.HasPrefix(key, "/media/"), "%s is stored outside the root", key)
	}
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
	s.Equal("/media/named.txt", name)

	_, err = content.Read(make([]byte, 1))
	s.Require().ErrorIs(err, storages.ErrClosed)
}

func (s *StorageTestSuite) TestMaxNameAttempts() {
	st, err := New(WithMaxNameAttempts(1))
	s.Require().NoError(err)

	for range 2 {
		_, err = st.Save("a.txt", strings.NewReader("x"))
		s.Require().NoError(err)
	}

	_, err = st.GetAvailableName("a.txt")
	s.Require().ErrorIs(err, storages.ErrNameUnavailable)
}

func (s *StorageTestSuite) TestDeleteExists() {
	a := s.save("docs/a.txt", "a")
	s.save("docs/sub/b.txt", "b")

	exists, err := s.storage.Exists("docs/sub")
	s.Require().NoError(err)
	s.True(exists, "folders exist")

	s.Require().NoError(s.storage.Delete(a))
	exists, err = s.storage.Exists(a)
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.storage.Exists("docs")
	s.Require().NoError(err)
	s.True(exists, "folders outlive their files")

	s.Require().NoError(s.storage.Delete("docs"))
	exists, err = s.storage.Exists("docs/sub/b.txt")
	s.Require().NoError(err)
	s.False(exists, "deleting a folder deletes its contents")

	err = s.storage.Delete("docs")
	s.Require().ErrorIs(err, storages.ErrNotExist)
	s.Contains(err.Error(), "delete error")
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
}

func (s *StorageTestSuite) TestSizeAndTimes() {
	name := s.save("a.txt", "12345")

	size, err := s.storage.Size(name)
	s.Require().NoError(err)
	s.Equal(int64(5), size)

	saved := s.clock
	s.clock = saved.Add(time.Hour)
	_, err = s.storage.Open(name)
	s.Require().NoError(err)

	accessed, err := s.storage.AccessedTime(name)
	s.Require().NoError(err)
	s.Equal(s.clock, accessed)

	created, err := s.storage.CreatedTime(name)
	s.Require().NoError(err)
	s.Equal(saved, created)

	modified, err := s.storage.ModifiedTime(name)
	s.Require().NoError(err)
	s.Equal(saved, modified)

	_, err = s.storage.Size("missing.txt")
	s.Require().ErrorIs(err, storages.ErrNotExist)

	_, err = s.storage.ModifiedTime("/media")
	s.Require().ErrorIs(err, storages.ErrNotFile)
	s.Contains(err.Error(), "time error")
}

func (s *StorageTestSuite) TestURL() {
	name := s.save("my docs/a.txt", "x")
	s.save("my docs/a.txt", "y")

	link, err := s.storage.URL(name, false)
	s.Require().NoError(err)
	s.Equal("http://files.example.com/uploads/media/my%20docs/a.txt", link)

	permanent, err := s.storage.URL(name, true)
	s.Require().NoError(err)
	s.Equal(link, permanent)

	link, err = s.storage.URL("my docs/a(1).txt", false)
	s.Require().NoError(err)
	s.Equal("http://files.example.com/uploads/media/my%20docs/a%281%29.txt", link)

	_, err = s.storage.URL("missing.txt", false)
	s.Require().ErrorIs(err, storages.ErrNotExist)

	st, err := New()
	s.Require().NoError(err)
	_, err = st.URL("a.txt", false)
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
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://files.example.com/uploads/media/docs", nil))
	s.Equal(http.StatusNotFound, rec.Code, "folders are not served")

	rec = httptest.NewRecorder()
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://files.example.com/other/media/docs/a.txt", nil))
	s.Equal(http.StatusNotFound, rec.Code, "paths outside the base URL are not served")

	rec = httptest.NewRecorder()
	s.storage.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, link, nil))
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}
