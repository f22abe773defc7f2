package mem

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/options"
	"github.com/c2fo/storages/utils"
)

type object struct {
	data     []byte
	created  time.Time
	modified time.Time
	accessed time.Time
}

// Storage implements storages.Storage in memory.
type Storage struct {
	mu      sync.RWMutex
	files   map[string]*object
	folders map[string]struct{}

	options Options
	root    string
	baseURL *url.URL
	now     func() time.Time
}

var (
	_ storages.Storage = (*Storage)(nil)
	_ http.Handler     = (*Storage)(nil)
)

// New initializes an empty Storage.
func New(opts ...options.NewStorageOption[Storage]) (*Storage, error) {
	s := &Storage{
		files:   make(map[string]*object),
		folders: make(map[string]struct{}),
		now:     time.Now,
	}

	options.ApplyOptions(s, opts...)

	if err := s.options.validate(); err != nil {
		return nil, err
	}

	s.root = utils.CleanRoot(s.options.RootPath)
	s.folders[s.rootKey()] = struct{}{}

	if s.options.BaseURL != "" {
		s.baseURL, _ = url.Parse(s.options.BaseURL)
		s.baseURL.Path = utils.RemoveTrailingSlash(s.baseURL.Path)
		s.baseURL.RawPath = ""
	}

	return s, nil
}

func (s *Storage) rootKey() string {
	if s.root == "" {
		return "/"
	}
	return s.root
}

// key maps a name onto a cleaned path under the root.
func (s *Storage) key(name string) string {
	return utils.RootedPath(s.root, name)
}

// GetValidName returns "{root}/{name}" with backslashes in name replaced by forward slashes.
func (s *Storage) GetValidName(name string) string {
	return utils.JoinRoot(s.root, name)
}

// GenerateFilename returns the name Save would be handed for filename.
func (s *Storage) GenerateFilename(filename string) string {
	return s.GetValidName(filename)
}

// GetAvailableName returns a name under the root, based on name, at which no file exists.
func (s *Storage) GetAvailableName(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	available, err := s.availableName(name)
	return available, utils.WrapNameError(err)
}

func (s *Storage) availableName(name string) (string, error) {
	return utils.AvailableName(s.key(name), s.options.MaxNameAttempts, func(candidate string) (bool, error) {
		return s.exists(candidate), nil
	})
}

func (s *Storage) exists(key string) bool {
	if _, ok := s.files[key]; ok {
		return true
	}
	_, ok := s.folders[key]
	return ok
}

// Open returns a copy of the named file's content.
func (s *Storage) Open(name string) (storages.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := s.key(name)
	obj, err := s.file(k)
	if err != nil {
		return nil, utils.WrapOpenError(err)
	}
	obj.accessed = s.now()

	return storages.NewBytesFile(path.Base(k), bytes.Clone(obj.data)), nil
}

// Save stores content under a free name derived from name and returns that name. When name is empty the content's
// own name is used. Content is closed once it has been read.
func (s *Storage) Save(name string, content io.Reader) (string, error) {
	if content == nil {
		return "", utils.WrapSaveError(storages.ErrContentRequired)
	}

	c, err := storages.AsContent(name, content)
	if err != nil {
		return "", utils.WrapSaveError(err)
	}

	if name == "" {
		name = c.Name()
	}
	if name == "" {
		return "", utils.WrapSaveError(storages.ErrNameRequired)
	}

	data, err := readAll(c)
	if err != nil {
		return "", utils.WrapSaveError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, err := s.availableName(name)
	if err != nil {
		return "", utils.WrapSaveError(utils.WrapNameError(err))
	}

	now := s.now()
	s.files[key] = &object{data: data, created: now, modified: now, accessed: now}
	for dir := path.Dir(key); ; dir = path.Dir(dir) {
		s.folders[dir] = struct{}{}
		if dir == "/" {
			break
		}
	}

	return key, nil
}

func readAll(c storages.Content) ([]byte, error) {
	defer func() { _ = c.Close() }()

	if err := c.Open(); err != nil {
		return nil, err
	}
	if _, err := c.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(c)
}

// Delete removes the named file. Deleting a folder removes everything beneath it.
func (s *Storage) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := s.key(name)
	if _, ok := s.files[k]; ok {
		delete(s.files, k)
		return nil
	}

	if _, ok := s.folders[k]; !ok {
		return utils.WrapDeleteError(fmt.Errorf("%w: %s", storages.ErrNotExist, k))
	}

	prefix := utils.EnsureTrailingSlash(k)
	for f := range s.files {
		if strings.HasPrefix(f, prefix) {
			delete(s.files, f)
		}
	}
	for d := range s.folders {
		if strings.HasPrefix(d, prefix) {
			delete(s.folders, d)
		}
	}
	if k != s.rootKey() {
		delete(s.folders, k)
	}

	return nil
}

// Exists reports whether a file or folder is stored under name.
func (s *Storage) Exists(name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exists(s.key(name)), nil
}

// ListDir lists the immediate children of path, split into sorted folder names and file names. An empty path, or
// "/", lists the root.
func (s *Storage) ListDir(p string) ([]string, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir := s.rootKey()
	if trimmed := utils.RemoveTrailingSlash(utils.ToSlash(p)); trimmed != "" {
		dir = s.key(trimmed)
	}

	if _, ok := s.folders[dir]; !ok {
		return nil, nil, utils.WrapListError(fmt.Errorf("%w: %s", storages.ErrNotExist, dir))
	}

	directories, fileNames := []string{}, []string{}
	for d := range s.folders {
		if d != dir && path.Dir(d) == dir {
			directories = append(directories, path.Base(d))
		}
	}
	for f := range s.files {
		if path.Dir(f) == dir {
			fileNames = append(fileNames, path.Base(f))
		}
	}
	sort.Strings(directories)
	sort.Strings(fileNames)

	return directories, fileNames, nil
}

// Size returns the size of the named file in bytes.
func (s *Storage) Size(name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, err := s.file(s.key(name))
	if err != nil {
		return 0, utils.WrapSizeError(err)
	}
	return int64(len(obj.data)), nil
}

// URL returns BaseURL followed by the escaped name. Permanent and temporary links are the same.
func (s *Storage) URL(name string, _ bool) (string, error) {
	if s.baseURL == nil {
		return "", utils.WrapURLError(errBaseURLRequired)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	k := s.key(name)
	if _, err := s.file(k); err != nil {
		return "", utils.WrapURLError(err)
	}

	link := *s.baseURL
	link.Path += k
	return link.String(), nil
}

// AccessedTime returns the last time the named file was saved, opened or served.
func (s *Storage) AccessedTime(name string) (time.Time, error) {
	return s.fileTime(name, func(o *object) time.Time { return o.accessed })
}

// CreatedTime returns the time the named file was saved.
func (s *Storage) CreatedTime(name string) (time.Time, error) {
	return s.fileTime(name, func(o *object) time.Time { return o.created })
}

// ModifiedTime returns the time the named file was saved.
func (s *Storage) ModifiedTime(name string) (time.Time, error) {
	return s.fileTime(name, func(o *object) time.Time { return o.modified })
}

func (s *Storage) fileTime(name string, pick func(*object) time.Time) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, err := s.file(s.key(name))
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}
	return pick(obj), nil
}

// file must be called with mu held.
func (s *Storage) file(key string) (*object, error) {
	if obj, ok := s.files[key]; ok {
		return obj, nil
	}
	if _, ok := s.folders[key]; ok {
		return nil, fmt.Errorf("%w: %s", storages.ErrNotFile, key)
	}
	return nil, fmt.Errorf("%w: %s", storages.ErrNotExist, key)
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

	s.mu.Lock()
	obj, err := s.file(path.Clean(utils.EnsureLeadingSlash(p)))
	var data []byte
	var modified time.Time
	if err == nil {
		obj.accessed = s.now()
		data, modified = obj.data, obj.modified
	}
	s.mu.Unlock()

	if err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, path.Base(p), modified, bytes.NewReader(data))
}
