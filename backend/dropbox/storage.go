package dropbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"golang.org/x/oauth2"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/options"
	"github.com/c2fo/storages/utils"
)

// Storage implements storages.Storage for Dropbox.
type Storage struct {
	client     Client
	options    Options
	root       string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ storages.Storage = (*Storage)(nil)

// New initializes a Storage, building the Dropbox client from the configured credentials unless one was supplied
// with WithClient, and verifies the credentials by fetching the current account.
func New(opts ...options.NewStorageOption[Storage]) (*Storage, error) {
	s := &Storage{
		options: NewOptions(),
		logger:  slog.New(slog.DiscardHandler),
	}

	options.ApplyOptions(s, opts...)

	if err := s.options.validate(); err != nil {
		return nil, err
	}

	s.root = utils.CleanRoot(s.options.RootPath)

	s.httpClient = s.options.HTTPClient
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: s.options.Timeout}
	}

	if s.client == nil {
		client, err := newClient(s.options)
		if err != nil {
			return nil, err
		}
		s.client = client
	}

	account, err := s.client.GetCurrentAccount()
	if err != nil {
		return nil, fmt.Errorf("dropbox account check: %w", err)
	}
	if account != nil {
		s.logger.Info("dropbox storage ready", "account_id", account.AccountId, "root", s.root)
	}

	return s, nil
}

// newClient builds an SDK client whose HTTP client authenticates every request. A refresh token takes precedence
// over an access token and is exchanged for short-lived access tokens as needed.
func newClient(opts Options) (Client, error) {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: opts.Timeout})

	var httpClient *http.Client
	switch {
	case opts.RefreshToken != "":
		if opts.AppKey == "" {
			return nil, errAppKeyRequired
		}
		conf := &oauth2.Config{
			ClientID:     opts.AppKey,
			ClientSecret: opts.AppSecret,
			Endpoint:     dropbox.OAuthEndpoint(""),
		}
		// no access token: the first request refreshes, and later ones refresh on expiry
		httpClient = conf.Client(ctx, &oauth2.Token{RefreshToken: opts.RefreshToken})
	case opts.AccessToken != "":
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken}))
	default:
		return nil, errCredentialsRequired
	}
	httpClient.Timeout = opts.Timeout

	return newSDKClient(dropbox.Config{
		Token:    opts.AccessToken,
		LogLevel: dropbox.LogOff,
		Client:   httpClient,
	}), nil
}

// Root returns the cleaned root path every name is stored under.
func (s *Storage) Root() string {
	return s.root
}

// remotePath maps a name onto a Dropbox path under the root. Names that already carry the root, such as those
// returned by Save, are not rooted twice, and ".." never leaves the root.
func (s *Storage) remotePath(name string) string {
	return utils.RootedPath(s.root, name)
}

// Open retrieves the named file by fetching it through a temporary link.
func (s *Storage) Open(name string) (storages.Content, error) {
	link, err := s.URL(name, false)
	if err != nil {
		return nil, utils.WrapOpenError(err)
	}

	resp, err := s.httpClient.Get(link)
	if err != nil {
		return nil, utils.WrapOpenError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.WrapOpenError(&StatusError{StatusCode: resp.StatusCode})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.WrapOpenError(err)
	}

	return storages.NewBytesFile(name, data), nil
}

// Save stores content under a free name derived from name and returns that name. When name is empty the content's
// own name is used. Content is opened before the upload and closed after it.
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

	name, err = s.GetAvailableName(name)
	if err != nil {
		return "", utils.WrapSaveError(err)
	}

	if err := s.write(name, c); err != nil {
		return "", utils.WrapSaveError(err)
	}

	return name, nil
}

// Delete removes the named file from Dropbox.
func (s *Storage) Delete(name string) error {
	p := s.remotePath(name)
	s.logger.Debug("dropbox delete", "path", p)

	_, err := s.client.DeleteV2(&files.DeleteArg{
		Path: p,
	})
	return utils.WrapDeleteError(err)
}

// Exists checks if the named file exists. A missing file yields false with a nil error; any other failure yields
// false with the error, so callers can tell "absent" from "could not tell".
func (s *Storage) Exists(name string) (bool, error) {
	_, err := s.client.GetMetadata(&files.GetMetadataArg{
		Path: s.remotePath(name),
	})
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, utils.WrapExistsError(err)
	}

	return true, nil
}

// ListDir lists the immediate children of path, split into folder names and file names in the order Dropbox
// reports them. An empty path, or "/", lists the root.
func (s *Storage) ListDir(path string) ([]string, []string, error) {
	listPath := s.root
	if p := utils.RemoveTrailingSlash(utils.ToSlash(path)); p != "" {
		listPath = s.remotePath(p)
	}

	directories, fileNames := []string{}, []string{}

	result, err := s.client.ListFolder(&files.ListFolderArg{
		Path: listPath,
	})
	for {
		if err != nil {
			return nil, nil, utils.WrapListError(err)
		}

		for _, entry := range result.Entries {
			switch md := entry.(type) {
			case *files.FolderMetadata:
				directories = append(directories, md.Name)
			case *files.FileMetadata:
				fileNames = append(fileNames, md.Name)
			}
		}

		if !result.HasMore {
			break
		}

		result, err = s.client.ListFolderContinue(&files.ListFolderContinueArg{
			Cursor: result.Cursor,
		})
	}

	return directories, fileNames, nil
}

// Size returns the size of the named file in bytes.
func (s *Storage) Size(name string) (int64, error) {
	md, err := s.fileMetadata(name)
	if err != nil {
		return 0, utils.WrapSizeError(err)
	}

	return int64(md.Size), nil
}

// AccessedTime returns the client-set modification time of the named file; Dropbox records no access time.
func (s *Storage) AccessedTime(name string) (time.Time, error) {
	md, err := s.fileMetadata(name)
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}

	return md.ClientModified, nil
}

// CreatedTime returns the client-set modification time of the named file; Dropbox records no creation time.
func (s *Storage) CreatedTime(name string) (time.Time, error) {
	md, err := s.fileMetadata(name)
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}

	return md.ClientModified, nil
}

// ModifiedTime returns the time Dropbox last recorded a change to the named file.
func (s *Storage) ModifiedTime(name string) (time.Time, error) {
	md, err := s.fileMetadata(name)
	if err != nil {
		return time.Time{}, utils.WrapTimeError(err)
	}

	return md.ServerModified, nil
}

func (s *Storage) fileMetadata(name string) (*files.FileMetadata, error) {
	metadata, err := s.client.GetMetadata(&files.GetMetadataArg{
		Path: s.remotePath(name),
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", storages.ErrNotExist, err)
		}
		return nil, err
	}

	fileMetadata, ok := metadata.(*files.FileMetadata)
	if !ok {
		return nil, storages.ErrNotFile
	}

	return fileMetadata, nil
}
