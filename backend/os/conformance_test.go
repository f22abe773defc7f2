package os_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_os "github.com/c2fo/storages/backend/os"
	"github.com/c2fo/storages/backend/testsuite"
)

// TestConformance runs the storage conformance test suite against the local file system backend.
//
// Optional environment variables:
//   - STORAGES_OS_TEST_PATH: Location for tests (default: a temp directory)
func TestConformance(t *testing.T) {
	var st *_os.Storage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st.ServeHTTP(w, r)
	}))
	defer srv.Close()

	st, err := _os.New(_os.WithLocation(getTestPath(t)), _os.WithBaseURL(srv.URL+"/media"))
	if err != nil {
		t.Fatalf("failed to create OS test storage: %v", err)
	}

	testsuite.RunConformanceTests(t, st)
}

// getTestPath returns the test path from environment variable or creates a temp directory.
func getTestPath(t *testing.T) string {
	t.Helper()
	if testPath := os.Getenv("STORAGES_OS_TEST_PATH"); testPath != "" {
		return testPath
	}
	return t.TempDir()
}
