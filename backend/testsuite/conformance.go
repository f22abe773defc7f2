package testsuite

import (
	"io"
	"net/http"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/storages"
)

// ConformanceOptions configures conformance test behavior
type ConformanceOptions struct {
	// Prefix is the folder, relative to the storage root, all test files are written under.
	// Defaults to "storages_conformance".
	Prefix string

	// SkipURLFetch skips fetching the links returned by URL. Set it when the links point somewhere the test
	// cannot reach.
	SkipURLFetch bool
}

// RunConformanceTests runs all conformance tests against the provided storage.
// This is the main entry point for backend conformance testing.
func RunConformanceTests(t *testing.T, st storages.Storage, opts ...ConformanceOptions) {
	t.Helper()
	opt := ConformanceOptions{}
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Prefix == "" {
		opt.Prefix = "storages_conformance"
	}
	defer teardownPrefix(t, st, opt.Prefix)

	t.Run("Names", func(t *testing.T) {
		RunNameTests(t, st, opt)
	})

	t.Run("Files", func(t *testing.T) {
		RunFileTests(t, st, opt)
	})

	t.Run("Listing", func(t *testing.T) {
		RunListTests(t, st, opt)
	})

	t.Run("URLs", func(t *testing.T) {
		RunURLTests(t, st, opt)
	})

	t.Run("Content", func(t *testing.T) {
		RunContentTests(t, st, opt)
	})
}

// RunNameTests tests name generation and collision resolution.
func RunNameTests(t *testing.T, st storages.Storage, opt ConformanceOptions) {
	t.Helper()

	valid := st.GetValidName(opt.Prefix + `\names\a.txt`)
	assert.NotContains(t, valid, `\`, "backslashes are replaced")
	assert.True(t, strings.HasSuffix(valid, opt.Prefix+"/names/a.txt"), "valid name %q keeps the relative path", valid)
	assert.Equal(t, valid, st.GenerateFilename(opt.Prefix+`\names\a.txt`))

	name := path.Join(opt.Prefix, "names", "taken.txt")
	first, err := st.Save(name, strings.NewReader("first"))
	require.NoError(t, err)
	defer func() { _ = st.Delete(first) }()

	available, err := st.GetAvailableName(name)
	require.NoError(t, err)
	assert.NotEqual(t, first, available, "an existing name is never returned")
	assert.True(t, strings.HasSuffix(available, "/taken(1).txt"), "got %q", available)

	exists, err := st.Exists(available)
	require.NoError(t, err)
	assert.False(t, exists)

	second, err := st.Save(name, strings.NewReader("second"))
	require.NoError(t, err)
	defer func() { _ = st.Delete(second) }()
	assert.Equal(t, available, second, "save stores under the available name")

	third, err := st.Save(name, strings.NewReader("third"))
	require.NoError(t, err)
	defer func() { _ = st.Delete(third) }()
	assert.True(t, strings.HasSuffix(third, "/taken(2).txt"), "got %q", third)
}

// RunFileTests tests the save, open, stat and delete lifecycle of a single file.
func RunFileTests(t *testing.T, st storages.Storage, opt ConformanceOptions) {
	t.Helper()

	name := path.Join(opt.Prefix, "files", "lifecycle.txt")
	contents := "lifecycle contents"

	exists, err := st.Exists(name)
	require.NoError(t, err)
	require.False(t, exists, "file should not exist before the test")

	before := time.Now().Add(-time.Minute)
	stored, err := st.Save(name, strings.NewReader(contents))
	require.NoError(t, err, "save should succeed")

	exists, err = st.Exists(stored)
	require.NoError(t, err)
	assert.True(t, exists, "file should exist after save")

	size, err := st.Size(stored)
	require.NoError(t, err)
	assert.Equal(t, int64(len(contents)), size)

	modified, err := st.ModifiedTime(stored)
	require.NoError(t, err)
	assert.True(t, modified.After(before), "modified time %s should be recent", modified)

	_, err = st.CreatedTime(stored)
	require.NoError(t, err)
	_, err = st.AccessedTime(stored)
	require.NoError(t, err)

	f, err := st.Open(stored)
	require.NoError(t, err, "open should succeed")
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, contents, string(b))
	assert.Equal(t, int64(len(contents)), f.Size())
	require.NoError(t, f.Close())

	require.NoError(t, st.Delete(stored), "delete should succeed")

	exists, err = st.Exists(stored)
	require.NoError(t, err)
	assert.False(t, exists, "file should not exist after delete")

	_, err = st.Size(stored)
	require.Error(t, err, "size of a deleted file should fail")

	_, err = st.Open(stored)
	require.Error(t, err, "open of a deleted file should fail")

	_, err = st.Save(path.Join(opt.Prefix, "files", "nil.txt"), nil)
	require.ErrorIs(t, err, storages.ErrContentRequired)

	stored, err = st.Save("", storages.NewBytesFile(path.Join(opt.Prefix, "files", "named.txt"), []byte("named")))
	require.NoError(t, err, "save should use the content name when no name is given")
	assert.True(t, strings.HasSuffix(stored, "/files/named.txt"), "got %q", stored)
	require.NoError(t, st.Delete(stored))
}

// RunListTests tests that ListDir splits folders from files.
func RunListTests(t *testing.T, st storages.Storage, opt ConformanceOptions) {
	t.Helper()

	dir := path.Join(opt.Prefix, "list")
	var stored []string
	for _, name := range []string{"a.txt", "b.txt", "sub/c.txt", "sub2/deeper/d.txt"} {
		s, err := st.Save(path.Join(dir, name), strings.NewReader(name))
		require.NoError(t, err)
		stored = append(stored, s)
	}
	defer func() {
		for _, s := range stored {
			_ = st.Delete(s)
		}
	}()

	dirs, files, err := st.ListDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sub", "sub2"}, dirs)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, files)

	dirs, files, err = st.ListDir(dir + "/sub/")
	require.NoError(t, err)
	assert.Empty(t, dirs)
	assert.Equal(t, []string{"c.txt"}, files)

	_, _, err = st.ListDir(path.Join(dir, "missing"))
	require.Error(t, err, "listing a missing folder should fail")
}

// RunURLTests tests temporary and permanent links.
func RunURLTests(t *testing.T, st storages.Storage, opt ConformanceOptions) {
	t.Helper()

	contents := "linked contents"
	stored, err := st.Save(path.Join(opt.Prefix, "urls", "linked.txt"), strings.NewReader(contents))
	require.NoError(t, err)
	defer func() { _ = st.Delete(stored) }()

	temporary, err := st.URL(stored, false)
	require.NoError(t, err)
	assert.NotEmpty(t, temporary)

	permanent, err := st.URL(stored, true)
	require.NoError(t, err)
	assert.NotEmpty(t, permanent)

	again, err := st.URL(stored, true)
	require.NoError(t, err, "a second permanent link request reuses the first")
	assert.Equal(t, permanent, again)

	_, err = st.URL(path.Join(opt.Prefix, "urls", "missing.txt"), false)
	require.Error(t, err, "a link to a missing file should fail")

	if opt.SkipURLFetch {
		return
	}

	for _, link := range []string{temporary, permanent} {
		assert.Equal(t, contents, fetch(t, link), "link %s should serve the content", link)
	}
}

func fetch(t *testing.T, link string) string {
	t.Helper()

	resp, err := http.Get(link) //nolint:gosec,noctx
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func teardownPrefix(t *testing.T, st storages.Storage, prefix string) {
	t.Helper()
	dirs, files, err := st.ListDir(prefix)
	if err != nil {
		t.Logf("warning: error listing files for cleanup: %v", err)
		return
	}
	for _, f := range files {
		if err := st.Delete(path.Join(prefix, f)); err != nil {
			t.Logf("warning: error deleting file %s: %v", f, err)
		}
	}
	for _, d := range dirs {
		if err := st.Delete(path.Join(prefix, d)); err != nil {
			t.Logf("warning: error deleting folder %s: %v", d, err)
		}
	}
}
