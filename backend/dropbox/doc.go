// Package dropbox implements storages.Storage for Dropbox.
//
// # Usage
//
//	import "github.com/c2fo/storages/backend/dropbox"
//
//	func DoSomething() error {
//	    store, err := dropbox.New(
//	        dropbox.WithAppCredentials(appKey, appSecret),
//	        dropbox.WithRefreshToken(refreshToken),
//	        dropbox.WithRootPath("/media"),
//	    )
//	    if err != nil {
//	        return err
//	    }
//
//	    name, err := store.Save("avatars/me.png", f)
//	    ...
//	}
//
// New checks the credentials by fetching the current account, so a misconfigured backend fails at start-up
// rather than on first use.
//
// # Authentication
//
// Two kinds of credentials are supported:
//
// 1. A refresh token together with the app key and secret (WithRefreshToken, WithAppCredentials). Short-lived
// access tokens are fetched from the Dropbox token endpoint and renewed when they expire.
//
// 2. A long-lived access token (WithAccessToken), as generated from the app console.
//
// # Names
//
// Every name is stored under the root path: GetValidName("a\\b.txt") is "{root}/a/b.txt". Save never overwrites an
// existing file on purpose; GetAvailableName appends "(1)", "(2)", ... before the extension until a free name is
// found. Names without an extension cannot be given an alternative and fail with storages.ErrNoExtension when they
// collide.
//
// # Uploads
//
// Content up to ChunkSize (4MB by default) is uploaded in a single request. Larger content goes through an upload
// session: one start, zero or more appends and one finish, each carrying at most ChunkSize bytes, sent in order.
// Nothing is retried; a failed session is left uncommitted.
//
// # Errors
//
// Exists reports a missing file as (false, nil) and any other failure as (false, err). IsNotFound and IsTransient
// classify errors returned by every method, so callers can decide whether to retry.
//
// # Limitations
//
// 1. Dropbox records no access or creation time. AccessedTime and CreatedTime both return the client-set
// modification time.
//
// 2. Case Insensitive Paths: Dropbox paths are case-insensitive but case-preserving.
// /path/File.txt and /path/file.txt refer to the same file.
//
// 3. Temporary links expire on Dropbox's schedule, not the configured timeout.
package dropbox
