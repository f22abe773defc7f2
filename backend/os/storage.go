package os

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/options"
	"github.com/c2fo/storages/utils"
)

// maxCreateAttempts bounds how often Save resolves a name again after losing it to a concurrent writer.
const maxCreateAttempts = 10

// Storage implements storages.Storage for the local file system.
type Storage struct {
	options  Options
	location string
	baseURL  *url.URL
}

var (
	_ storages.Storage = (*Storage)(nil)
	_ http.Handler     = (*Storage)(nil)
)

// New initializes a Storage, creating the location directory if it does not exist.
func New(opts ...options.NewStorageOption[Storage]) (*Storage, error) {
	s := &Storage{
		options: NewOptions(),
	}

	options.ApplyOptions(s, opts...)

	if err := s.options.validate(); err != nil {
		return nil, err
	}

	location, err := filepath.Abs(s.options.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.options.Location, err)
	}
	if err := os.MkdirAll(location, s.options.DirMode); err != nil {
		return nil, err
	}
	s.location = location

	if s.options.BaseURL != "" {
		s.baseURL, _ = url.Parse(s.options.BaseURL)
		s.baseURL.Path = utils.RemoveTrailingSlash(s.baseURL.Path)
		s.baseURL.RawPath = ""
	}

	return s, nil
}

// key maps a name onto a cleaned, rooted slash path. A ".." never climbs above the location.
func (s *Storage) key(name string) string {
	return utils.RootedPath("", name)
}

func (s *Storage) fsPath(key string) string {
	return filepath.Join(s.location, filepath.FromSlash(key))
}

// GetValidName returns "/{name}" with backslashes in name replaced by forward slashes.
func (s *Storage) GetValidName(name string) string {
	return utils.JoinRoot("", name)
}

// GenerateFilename returns the name Save would be handed for filename.
func (s *Storage) GenerateFilename(filename string) string {
	return s.GetValidName(filename)
}

// GetAvailableName returns a name, based on name, at which nothing exists under the location.
func (s *Storage) GetAvailableName(name string) (string, error) {
	available, err := utils.AvailableName(s.key(name), s.options.MaxNameAttempts, s.exists)
	return available, utils.WrapNameError(err)
}

// exists reports whether any directory entry, dangling symlinks included, is at key.
func (s *Storage) exists(key string) (bool, error) {
	_, err := os.Lstat(s.fsPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Open opens the named file for reading. Closing the returned Content closes the file.
func (s *Storage) Open(name string) (storages.Content, error) {
	k := s.key(name)
	if _, err := s.stat(k); err != nil {
		return nil, utils.WrapOpenError(err)
	}

	f, err := os.Open(s.fsPath(k))
	if err != nil {
		return nil, utils.WrapOpenError(err)
	}

	content, err := storages.NewFile(path.Base(k), f)
	if err != nil {
		_ = f.Close()
		return nil, utils.WrapOpenError(err)
	}
	return content, nil
}

// Save stores content under a free name derived from name and returns that name. When name is empty the content's
// own name is used. Content is closed after it has been written.
func (s *Storage) Save(name string, content io.Reader) (string, error) {
	if content == nil {
		return "", utils.WrapSaveError(storages.ErrContentRequired)
	}

	c, err := storages.AsContent(name, content)
	if err != nil {
		return "", utils.WrapSaveError(err)
	}
	defer func() { _ = c.Close() }()

	if name == "" {
		name = c.Name()
	}
	if name == "" {
		return "", utils.WrapSaveError(storages.ErrNameRequired)
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		key, err := s.GetAvailableName(name)
		if err != nil {
			return "", utils.WrapSaveError(err)
		}

		err = s.create(key, c)
		if errors.Is(err, fs.ErrExist) {
			// taken since the name was resolved
			continue
		}
		if err != nil {
			return "", utils.WrapSaveError(err)
		}

		return key, nil
	}

	return "", utils.WrapSaveError(fmt.Errorf("%w: %s", storages.ErrNameUnavailable, name))
}

// create writes c to a new file at key, failing with fs.ErrExist if anything is already there.
func (s *Storage) create(key string, c storages.Content) error {
	p := s.fsPath(key)
	if err := os.MkdirAll(filepath.Dir(p), s.options.DirMode); err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.options.FileMode)
	if err != nil {
		return err
	}

	err = c.Open()
	if err == nil {
		_, err = io.Copy(f, c)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(p)
	}
	return err
}

// Delete removes the named file. Deleting a folder removes everything beneath it.
func (s *Storage) Delete(name string) error {
	k := s.key(name)
	p := s.fsPath(k)

	if _, err := os.Lstat(p); err != nil {
		return utils.WrapDeleteError(notExist(err))
	}

	if err := os.RemoveAll(p); err != nil {
		return utils.WrapDeleteError(err)
	}

	if k == "/" {
		return utils.WrapDeleteError(os.MkdirAll(s.location, s.options.DirMode))
	}
	return nil
}

// Exists reports whether a file or folder is stored under name.
func (s *Storage) Exists(name string) (bool, error) {
	exists, err := s.exists(s.key(name))
	return exists, utils.WrapExistsError(err)
}

// ListDir lists the immediate children of p, split into folder names and file names, each sorted. An empty path, or
// "/", lists the location itself.
func (s *Storage) ListDir(p string) ([]string, []string, error) {
	entries, err := os.ReadDir(s.fsPath(s.key(p)))
	if err != nil {
		return nil, nil, utils.WrapListError(notExist(err))
	}

	directories, fileNames := []string{}, []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			directories = append(directories, entry.Name())
		} else {
			fileNames = append(fileNames, entry.Name())
		}
	}

	return directories, fileNames, nil
}

// Size returns the size of the named file in bytes.
func (s *Storage) Size(name string) (int64, error) {
	info, err := s.stat(s.key(name))
	if err != nil {
		return 0, utils.WrapSizeError(err)
	}
	return info.Size(), nil
}

// URL returns BaseURL followed by the escaped name. Permanent and temporary links are the same.
func (s *Storage) URL(name string, _ bool) (string, error) {
	if s.baseURL == nil {
		return "", utils.WrapURLError(errBaseURLRequired)
	}

	k := s.key(name)
	if _, err := s.stat(k); err != nil {
		return "", utils.WrapURLError(err)
	}

	link := *s.baseURL
	link.Path += k
	return link.String(), nil
}

// AccessedTime returns the last access time of the named file.
func (s *Storage) AccessedTime(name string) (time.Time, error) {
	info, err := s.stat(s.key(name))
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}
	return accessTime(info), nil
}

// CreatedTime returns the creation time of the named file.
func (s *Storage) CreatedTime(name string) (time.Time, error) {
	info, err := s.stat(s.key(name))
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}
	return createTime(info), nil
}

// ModifiedTime returns the last modification time of the named file.
func (s *Storage) ModifiedTime(name string) (time.Time, error) {
	info, err := s.stat(s.key(name))
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}
	return info.ModTime(), nil
}

// stat returns the file info of the regular file at key.
func (s *Storage) stat(key string) (fs.FileInfo, error) {
	info, err := os.Stat(s.fsPath(key))
	if err != nil {
		return nil, notExist(err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", storages.ErrNotFile, key)
	}
	return info, nil
}

// notExist tags file system "not exist" errors with storages.ErrNotExist.
func notExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", storages.ErrNotExist, err)
	}
	return err
}

// ServeHTTP serves the content of the file a link returned by URL points at.
func (s *Storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	prefix := ""
	if s.baseURL != nil {
		prefix = s.baseURL.Path
	}
	p, ok := strings.CutPrefix(r.URL.Path, prefix)
	if !ok {
		http.NotFound(w, r)
		return
	}

	k := s.key(p)
	info, err := s.stat(k)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(s.fsPath(k))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
