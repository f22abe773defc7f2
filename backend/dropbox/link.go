package dropbox

import (
	"net/url"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/sharing"

	"github.com/c2fo/storages/utils"
)

// URL returns a link to the content of the named file. When permanent is false the link is a temporary one whose
// lifetime Dropbox decides (currently four hours), independent of the configured timeout. When permanent is true a
// shared link with downloads enabled is created, or the existing one reused, and rewritten to serve the content
// directly instead of the Dropbox preview page.
func (s *Storage) URL(name string, permanent bool) (string, error) {
	p := s.remotePath(name)

	if !permanent {
		result, err := s.client.GetTemporaryLink(&files.GetTemporaryLinkArg{
			Path: p,
		})
		if err != nil {
			return "", utils.WrapURLError(err)
		}
		return result.Link, nil
	}

	link, err := s.sharedLink(p)
	if err != nil {
		return "", utils.WrapURLError(err)
	}

	return directContentURL(link)
}

func (s *Storage) sharedLink(p string) (string, error) {
	metadata, err := s.client.CreateSharedLinkWithSettings(&sharing.CreateSharedLinkWithSettingsArg{
		Path: p,
		Settings: &sharing.SharedLinkSettings{
			AllowDownload: true,
		},
	})
	if err == nil {
		return sharedLinkURL(metadata)
	}
	if !isSharedLinkExists(err) {
		return "", err
	}

	s.logger.Debug("dropbox shared link exists, reusing", "path", p)

	result, err := s.client.ListSharedLinks(&sharing.ListSharedLinksArg{
		Path:       p,
		DirectOnly: true,
	})
	if err != nil {
		return "", err
	}
	if len(result.Links) == 0 {
		return "", errNoSharedLink
	}

	return sharedLinkURL(result.Links[0])
}

func sharedLinkURL(metadata sharing.IsSharedLinkMetadata) (string, error) {
	switch md := metadata.(type) {
	case *sharing.FileLinkMetadata:
		return md.Url, nil
	case *sharing.FolderLinkMetadata:
		return md.Url, nil
	}
	return "", errNoSharedLink
}

// directContentURL sets dl=1 on a shared link so it answers with the file content rather than the preview page.
func directContentURL(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("dl", "1")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
