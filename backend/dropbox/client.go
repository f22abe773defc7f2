package dropbox

import (
	"io"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/sharing"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/users"
)

// Client defines the subset of Dropbox SDK methods used by this backend.
// This interface limits the API surface and enables efficient mocking in tests.
type Client interface {
	// GetCurrentAccount returns the account the credentials belong to.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#users-get_current_account
	GetCurrentAccount() (*users.FullAccount, error)

	// GetMetadata returns metadata for a file or folder.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-get_metadata
	GetMetadata(arg *files.GetMetadataArg) (files.IsMetadata, error)

	// ListFolder lists the contents of a folder.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-list_folder
	ListFolder(arg *files.ListFolderArg) (*files.ListFolderResult, error)

	// ListFolderContinue continues a paginated list operation.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-list_folder-continue
	ListFolderContinue(arg *files.ListFolderContinueArg) (*files.ListFolderResult, error)

	// Upload uploads a file in a single request (max 150MB).
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-upload
	Upload(arg *files.UploadArg, content io.Reader) (*files.FileMetadata, error)

	// UploadSessionStart starts a chunked upload session.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-upload_session-start
	UploadSessionStart(arg *files.UploadSessionStartArg, content io.Reader) (*files.UploadSessionStartResult, error)

	// UploadSessionAppendV2 appends data to an upload session.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-upload_session-append
	UploadSessionAppendV2(arg *files.UploadSessionAppendArg, content io.Reader) error

	// UploadSessionFinish completes an upload session and commits the file.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-upload_session-finish
	UploadSessionFinish(arg *files.UploadSessionFinishArg, content io.Reader) (*files.FileMetadata, error)

	// DeleteV2 deletes a file or folder.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-delete
	DeleteV2(arg *files.DeleteArg) (*files.DeleteResult, error)

	// GetTemporaryLink returns a short-lived direct download link.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#files-get_temporary_link
	GetTemporaryLink(arg *files.GetTemporaryLinkArg) (*files.GetTemporaryLinkResult, error)

	// CreateSharedLinkWithSettings creates a shared link with the given settings.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#sharing-create_shared_link_with_settings
	CreateSharedLinkWithSettings(arg *sharing.CreateSharedLinkWithSettingsArg) (sharing.IsSharedLinkMetadata, error)

	// ListSharedLinks lists shared links, optionally only those of a single path.
	// Docs: https://www.dropbox.com/developers/documentation/http/documentation#sharing-list_shared_links
	ListSharedLinks(arg *sharing.ListSharedLinksArg) (*sharing.ListSharedLinksResult, error)
}

// sdkClient joins the files, sharing and users SDK clients behind Client.
type sdkClient struct {
	files   files.Client
	sharing sharing.Client
	users   users.Client
}

func newSDKClient(config dropbox.Config) *sdkClient {
	return &sdkClient{
		files:   files.New(config),
		sharing: sharing.New(config),
		users:   users.New(config),
	}
}

func (c *sdkClient) GetCurrentAccount() (*users.FullAccount, error) {
	return c.users.GetCurrentAccount()
}

func (c *sdkClient) GetMetadata(arg *files.GetMetadataArg) (files.IsMetadata, error) {
	return c.files.GetMetadata(arg)
}

func (c *sdkClient) ListFolder(arg *files.ListFolderArg) (*files.ListFolderResult, error) {
	return c.files.ListFolder(arg)
}

func (c *sdkClient) ListFolderContinue(arg *files.ListFolderContinueArg) (*files.ListFolderResult, error) {
	return c.files.ListFolderContinue(arg)
}

func (c *sdkClient) Upload(arg *files.UploadArg, content io.Reader) (*files.FileMetadata, error) {
	return c.files.Upload(arg, content)
}

func (c *sdkClient) UploadSessionStart(arg *files.UploadSessionStartArg, content io.Reader) (*files.UploadSessionStartResult, error) {
	return c.files.UploadSessionStart(arg, content)
}

func (c *sdkClient) UploadSessionAppendV2(arg *files.UploadSessionAppendArg, content io.Reader) error {
	return c.files.UploadSessionAppendV2(arg, content)
}

func (c *sdkClient) UploadSessionFinish(arg *files.UploadSessionFinishArg, content io.Reader) (*files.FileMetadata, error) {
	return c.files.UploadSessionFinish(arg, content)
}

func (c *sdkClient) DeleteV2(arg *files.DeleteArg) (*files.DeleteResult, error) {
	return c.files.DeleteV2(arg)
}

func (c *sdkClient) GetTemporaryLink(arg *files.GetTemporaryLinkArg) (*files.GetTemporaryLinkResult, error) {
	return c.files.GetTemporaryLink(arg)
}

func (c *sdkClient) CreateSharedLinkWithSettings(arg *sharing.CreateSharedLinkWithSettingsArg) (sharing.IsSharedLinkMetadata, error) {
	return c.sharing.CreateSharedLinkWithSettings(arg)
}

func (c *sdkClient) ListSharedLinks(arg *sharing.ListSharedLinksArg) (*sharing.ListSharedLinksResult, error) {
	return c.sharing.ListSharedLinks(arg)
}
