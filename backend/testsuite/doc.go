/*
Package testsuite is meant to be run by implementors of backends to ensure that the behaviors of their backend matches
the expected behavior of the storages.Storage interface. Note you may need to pass additional environmental variables
for authentication.

	func TestConformance(t *testing.T) {
	    st, _ := dropbox.New(dropbox.WithClient(fake))
	    testsuite.RunConformanceTests(t, st)
	}

The integration runner in this package reads its Dropbox settings the same way the CLI does:

	DROPBOX_OAUTH2_REFRESH_TOKEN=... \
	DROPBOX_APP_KEY=... \
	DROPBOX_APP_SECRET=... \
	DROPBOX_ROOT_PATH=/storages_test \
	go test -tags vfsintegration ./backend/testsuite
*/
package testsuite
