/*
Package backend keeps named storages so application code can look one up by alias instead of passing it around,
the way a web framework resolves its "default" or "staticfiles" storage:

	st, err := dropbox.New(dropbox.WithAccessToken(token), dropbox.WithRootPath("/media"))
	if err != nil {
	    return err
	}
	backend.Register(backend.DefaultAlias, st)

	// elsewhere
	name, err := backend.Default().Save("avatars/me.png", f)

Storages need credentials, so unlike a self-registering file system they are registered by the program that builds
them, usually once at start-up.

Development

To create your own backend, implement storages.Storage and run backend/testsuite's RunConformanceTests against it.
The Dropbox backend, backend/dropbox, is the reference implementation. backend/mem keeps files in memory and
backend/os keeps them in a local directory; both pass the same suite.
*/
package backend
