// Package dropboxtest provides an in-memory stand-in for the Dropbox API that satisfies dropbox.Client, plus an HTTP
// server answering the temporary and shared links it hands out.
//
//	srv := dropboxtest.NewServer()
//	defer srv.Close()
//
//	store, err := dropbox.New(dropbox.WithClient(srv), dropbox.WithRootPath("/media"))
package dropboxtest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/sharing"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/users"
)

// APIError mimics the error summaries the Dropbox API returns, ie: "path/not_found/".
type APIError struct {
	Summary string
}

func (e *APIError) Error() string {
	return e.Summary
}

func apiError(summary string) error {
	return &APIError{Summary: summary}
}

type file struct {
	display        string
	data           []byte
	clientModified time.Time
	serverModified time.Time
	rev            int
}

type session struct {
	data []byte
}

// Server is an in-memory Dropbox. The zero value is not usable; create one with New or NewServer.
type Server struct {
	// PageSize limits the entries returned per ListFolder page. Zero returns everything in one page.
	PageSize int

	// Account is returned by GetCurrentAccount.
	Account *users.FullAccount

	// Now supplies server timestamps.
	Now func() time.Time

	baseURL string
	httpSrv *httptest.Server

	mu       sync.Mutex
	files    map[string]*file
	folders  map[string]string
	sessions map[string]*session
	temp     map[string]string
	shared   map[string]string
	cursors  map[string][]files.IsMetadata
	calls    map[string]int
	seq      int
}

// New returns a Server without an HTTP listener. Links it hands out cannot be fetched.
func New() *Server {
	return &Server{
		Account: &users.FullAccount{
			Account: users.Account{
				AccountId: "dbid:fake",
				Email:     "fake@example.com",
			},
		},
		Now:      time.Now,
		baseURL:  "http://dropboxtest.invalid",
		files:    map[string]*file{},
		folders:  map[string]string{},
		sessions: map[string]*session{},
		temp:     map[string]string{},
		shared:   map[string]string{},
		cursors:  map[string][]files.IsMetadata{},
		calls:    map[string]int{},
	}
}

// NewServer returns a Server whose links are served by a local HTTP server. Call Close when done.
func NewServer() *Server {
	s := New()
	s.httpSrv = httptest.NewServer(s)
	s.baseURL = s.httpSrv.URL
	return s
}

// Close shuts down the HTTP server, if any.
func (s *Server) Close() {
	if s.httpSrv != nil {
		s.httpSrv.Close()
	}
}

// URL returns the base URL links are served from.
func (s *Server) URL() string {
	return s.baseURL
}

// Calls returns how many times the named Client method was called.
func (s *Server) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// OpenSessions returns the number of upload sessions started but not finished.
func (s *Server) OpenSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Put stores data at p directly, bypassing the upload calls.
func (s *Server) Put(p string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(p, data, nil)
}

// Get returns the content stored at p.
func (s *Server) Get(p string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[key(p)]
	if !ok {
		return nil, false
	}
	return bytes.Clone(f.data), true
}

func key(p string) string {
	return strings.ToLower(strings.TrimSuffix(p, "/"))
}

func (s *Server) record(method string) {
	s.calls[method]++
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return prefix + strconv.Itoa(s.seq)
}

// commit stores data at p and creates the parent folders. Must be called with mu held.
func (s *Server) commit(p string, data []byte, clientModified *time.Time) {
	now := s.Now().UTC().Truncate(time.Second)
	f, ok := s.files[key(p)]
	if !ok {
		f = &file{display: p}
		s.files[key(p)] = f
	}
	f.data = bytes.Clone(data)
	f.serverModified = now
	f.clientModified = now
	if clientModified != nil {
		f.clientModified = *clientModified
	}
	f.rev++

	for dir := path.Dir(p); dir != "/" && dir != "."; dir = path.Dir(dir) {
		if _, ok := s.folders[key(dir)]; !ok {
			s.folders[key(dir)] = dir
		}
	}
}

func (s *Server) fileMetadata(f *file) *files.FileMetadata {
	return &files.FileMetadata{
		Metadata: files.Metadata{
			Name:        path.Base(f.display),
			PathLower:   key(f.display),
			PathDisplay: f.display,
		},
		Id:             "id:" + key(f.display),
		ClientModified: f.clientModified,
		ServerModified: f.serverModified,
		Rev:            fmt.Sprintf("%09x", f.rev),
		Size:           uint64(len(f.data)),
	}
}

func folderMetadata(display string) *files.FolderMetadata {
	return &files.FolderMetadata{
		Metadata: files.Metadata{
			Name:        path.Base(display),
			PathLower:   key(display),
			PathDisplay: display,
		},
		Id: "id:" + key(display),
	}
}

// mode returns the write mode tag of m, "add" when unset.
func mode(m *files.WriteMode) string {
	if m == nil || m.Tag == "" {
		return "add"
	}
	return m.Tag
}

// GetCurrentAccount returns Account.
func (s *Server) GetCurrentAccount() (*users.FullAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("GetCurrentAccount")
	return s.Account, nil
}

// GetMetadata returns file or folder metadata.
func (s *Server) GetMetadata(arg *files.GetMetadataArg) (files.IsMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("GetMetadata")

	if f, ok := s.files[key(arg.Path)]; ok {
		return s.fileMetadata(f), nil
	}
	if display, ok := s.folders[key(arg.Path)]; ok {
		return folderMetadata(display), nil
	}
	return nil, apiError("path/not_found/")
}

// ListFolder lists the direct children of a folder, folders and files sorted by name.
func (s *Server) ListFolder(arg *files.ListFolderArg) (*files.ListFolderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListFolder")

	dir := key(arg.Path)
	if dir != "" {
		if _, ok := s.folders[dir]; !ok {
			if _, isFile := s.files[dir]; isFile {
				return nil, apiError("path/not_folder/")
			}
			return nil, apiError("path/not_found/")
		}
	}

	var entries []files.IsMetadata
	for k, display := range s.folders {
		if path.Dir(k) == dir || (dir == "" && path.Dir(k) == "/") {
			entries = append(entries, folderMetadata(display))
		}
	}
	for k, f := range s.files {
		if path.Dir(k) == dir || (dir == "" && path.Dir(k) == "/") {
			entries = append(entries, s.fileMetadata(f))
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entryName(entries[i]) < entryName(entries[j])
	})

	return s.page(entries), nil
}

// ListFolderContinue returns the next page of a listing.
func (s *Server) ListFolderContinue(arg *files.ListFolderContinueArg) (*files.ListFolderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListFolderContinue")

	entries, ok := s.cursors[arg.Cursor]
	if !ok {
		return nil, apiError("reset/")
	}
	delete(s.cursors, arg.Cursor)

	return s.page(entries), nil
}

func (s *Server) page(entries []files.IsMetadata) *files.ListFolderResult {
	if s.PageSize <= 0 || len(entries) <= s.PageSize {
		return &files.ListFolderResult{Entries: entries}
	}

	cursor := s.nextID("cursor-")
	s.cursors[cursor] = entries[s.PageSize:]
	return &files.ListFolderResult{
		Entries: entries[:s.PageSize],
		Cursor:  cursor,
		HasMore: true,
	}
}

func entryName(md files.IsMetadata) string {
	switch m := md.(type) {
	case *files.FileMetadata:
		return m.Name
	case *files.FolderMetadata:
		return m.Name
	}
	return ""
}

// Upload stores content in one request, honouring the write mode.
func (s *Server) Upload(arg *files.UploadArg, content io.Reader) (*files.FileMetadata, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Upload")

	return s.write(arg.Path, data, arg.Mode, arg.ClientModified)
}

func (s *Server) write(p string, data []byte, m *files.WriteMode, clientModified *time.Time) (*files.FileMetadata, error) {
	if _, ok := s.folders[key(p)]; ok {
		return nil, apiError("path/conflict/folder/")
	}
	if _, ok := s.files[key(p)]; ok && mode(m) == "add" {
		return nil, apiError("path/conflict/file/")
	}

	s.commit(p, data, clientModified)
	return s.fileMetadata(s.files[key(p)]), nil
}

// UploadSessionStart opens an upload session holding the first chunk.
func (s *Server) UploadSessionStart(_ *files.UploadSessionStartArg, content io.Reader) (*files.UploadSessionStartResult, error) {
	var data []byte
	if content != nil {
		var err error
		if data, err = io.ReadAll(content); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UploadSessionStart")

	id := s.nextID("session-")
	s.sessions[id] = &session{data: data}
	return &files.UploadSessionStartResult{SessionId: id}, nil
}

func (s *Server) appendChunk(cursor *files.UploadSessionCursor, content io.Reader) (*session, error) {
	sess, ok := s.sessions[cursor.SessionId]
	if !ok {
		return nil, apiError("lookup_failed/not_found/")
	}
	if cursor.Offset != uint64(len(sess.data)) {
		return nil, apiError(fmt.Sprintf("lookup_failed/incorrect_offset/%d/", len(sess.data)))
	}

	if content != nil {
		data, err := io.ReadAll(content)
		if err != nil {
			return nil, err
		}
		sess.data = append(sess.data, data...)
	}
	return sess, nil
}

// UploadSessionAppendV2 appends a chunk at the cursor offset.
func (s *Server) UploadSessionAppendV2(arg *files.UploadSessionAppendArg, content io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UploadSessionAppendV2")

	_, err := s.appendChunk(arg.Cursor, content)
	return err
}

// UploadSessionFinish appends the last chunk and commits the session.
func (s *Server) UploadSessionFinish(arg *files.UploadSessionFinishArg, content io.Reader) (*files.FileMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UploadSessionFinish")

	sess, err := s.appendChunk(arg.Cursor, content)
	if err != nil {
		return nil, err
	}
	delete(s.sessions, arg.Cursor.SessionId)

	return s.write(arg.Commit.Path, sess.data, arg.Commit.Mode, arg.Commit.ClientModified)
}

// DeleteV2 removes a file, or a folder and everything beneath it.
func (s *Server) DeleteV2(arg *files.DeleteArg) (*files.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DeleteV2")

	k := key(arg.Path)
	if f, ok := s.files[k]; ok {
		md := s.fileMetadata(f)
		delete(s.files, k)
		return &files.DeleteResult{Metadata: md}, nil
	}

	display, ok := s.folders[k]
	if !ok {
		return nil, apiError("path_lookup/not_found/")
	}
	for fk := range s.files {
		if strings.HasPrefix(fk, k+"/") {
			delete(s.files, fk)
		}
	}
	for dk := range s.folders {
		if dk == k || strings.HasPrefix(dk, k+"/") {
			delete(s.folders, dk)
		}
	}
	return &files.DeleteResult{Metadata: folderMetadata(display)}, nil
}

// GetTemporaryLink returns a link, served by ServeHTTP, to the file content.
func (s *Server) GetTemporaryLink(arg *files.GetTemporaryLinkArg) (*files.GetTemporaryLinkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("GetTemporaryLink")

	f, ok := s.files[key(arg.Path)]
	if !ok {
		return nil, apiError("path/not_found/")
	}

	token := s.nextID("t")
	s.temp[token] = key(arg.Path)
	return &files.GetTemporaryLinkResult{
		Metadata: s.fileMetadata(f),
		Link:     s.baseURL + "/temp/" + token + "/" + path.Base(f.display),
	}, nil
}

// CreateSharedLinkWithSettings creates a preview link for a file, failing if one already exists.
func (s *Server) CreateSharedLinkWithSettings(arg *sharing.CreateSharedLinkWithSettingsArg) (sharing.IsSharedLinkMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CreateSharedLinkWithSettings")

	f, ok := s.files[key(arg.Path)]
	if !ok {
		return nil, apiError("path/not_found/")
	}
	if _, ok := s.shared[key(arg.Path)]; ok {
		return nil, apiError("shared_link_already_exists/")
	}

	s.shared[key(arg.Path)] = s.baseURL + "/s/" + s.nextID("s") + "/" + path.Base(f.display) + "?dl=0"
	return s.sharedLinkMetadata(f), nil
}

// ListSharedLinks returns the shared link of a path, if any.
func (s *Server) ListSharedLinks(arg *sharing.ListSharedLinksArg) (*sharing.ListSharedLinksResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListSharedLinks")

	result := &sharing.ListSharedLinksResult{}
	if f, ok := s.files[key(arg.Path)]; ok {
		if _, ok := s.shared[key(arg.Path)]; ok {
			result.Links = append(result.Links, s.sharedLinkMetadata(f))
		}
	}
	return result, nil
}

func (s *Server) sharedLinkMetadata(f *file) *sharing.FileLinkMetadata {
	return &sharing.FileLinkMetadata{
		SharedLinkMetadata: sharing.SharedLinkMetadata{
			Url:       s.shared[key(f.display)],
			Name:      path.Base(f.display),
			PathLower: key(f.display),
		},
		ClientModified: f.clientModified,
		ServerModified: f.serverModified,
		Rev:            fmt.Sprintf("%09x", f.rev),
		Size:           uint64(len(f.data)),
	}
}

// ServeHTTP answers temporary links with the file content, and shared links with the content when dl=1 or a
// preview page otherwise.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if len(parts) < 2 {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	var (
		f  *file
		ok bool
	)
	switch parts[0] {
	case "temp":
		var k string
		if k, ok = s.temp[parts[1]]; ok {
			f, ok = s.files[k]
		}
	case "s":
		for k, link := range s.shared {
			if strings.Contains(link, "/s/"+parts[1]+"/") {
				f, ok = s.files[k]
				break
			}
		}
		if ok && r.URL.Query().Get("dl") != "1" {
			s.mu.Unlock()
			w.Header().Set("Content-Type", "text/html")
			_, _ = io.WriteString(w, "<html><body>preview</body></html>")
			return
		}
	}
	var data []byte
	if ok {
		data = bytes.Clone(f.data)
	}
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(data)
}
