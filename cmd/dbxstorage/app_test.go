package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/backend/dropbox"
	"github.com/c2fo/storages/backend/dropbox/dropboxtest"
	"github.com/c2fo/storages/mocks"
)

type AppTestSuite struct {
	suite.Suite
	server *dropboxtest.Server
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func (s *AppTestSuite) SetupTest() {
	color.NoColor = true
	s.server = dropboxtest.NewServer()
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
	s.dir = s.T().TempDir()
}

func (s *AppTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *AppTestSuite) run(args ...string) error {
	s.stdout.Reset()
	s.stderr.Reset()

	factory := func(_ *cli.Context, logger *slog.Logger) (storages.Storage, error) {
		return dropbox.New(
			dropbox.WithClient(s.server),
			dropbox.WithRootPath("/media"),
			dropbox.WithLogger(logger),
		)
	}
	return newApp(s.stdout, s.stderr, factory).Run(append([]string{"dbxstorage"}, args...))
}

func (s *AppTestSuite) localFile(name, contents string) string {
	p := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(p, []byte(contents), 0o600))
	return p
}

func (s *AppTestSuite) TestPutGet() {
	local := s.localFile("report.txt", "quarterly numbers")

	s.Require().NoError(s.run("put", local, "reports/report.txt"))
	s.Equal("/media/reports/report.txt\n", s.stdout.String())

	s.Require().NoError(s.run("put", local, "reports/report.txt"))
	s.Equal("/media/reports/report(1).txt\n", s.stdout.String())

	s.Require().NoError(s.run("put", local))
	s.Equal("/media/report.txt\n", s.stdout.String())

	s.Require().NoError(s.run("get", "reports/report.txt"))
	s.Equal("quarterly numbers", s.stdout.String())

	target := filepath.Join(s.dir, "copy.txt")
	s.Require().NoError(s.run("get", "reports/report(1).txt", target))
	b, err := os.ReadFile(target)
	s.Require().NoError(err)
	s.Equal("quarterly numbers", string(b))
}

func (s *AppTestSuite) TestLsRmExists() {
	s.server.Put("/media/docs/a.txt", []byte("a"))
	s.server.Put("/media/docs/b.txt", []byte("bb"))
	s.server.Put("/media/docs/sub/c.txt", []byte("c"))

	s.Require().NoError(s.run("ls", "docs"))
	s.Equal("sub/\na.txt\nb.txt\n", s.stdout.String())

	s.Require().NoError(s.run("exists", "docs/a.txt"))
	s.Equal("true\n", s.stdout.String())

	s.Require().NoError(s.run("rm", "docs/a.txt", "docs/b.txt"))
	s.Equal("deleted docs/a.txt\ndeleted docs/b.txt\n", s.stdout.String())

	s.Require().NoError(s.run("exists", "docs/a.txt"))
	s.Equal("false\n", s.stdout.String())
}

func (s *AppTestSuite) TestSizeStat() {
	s.server.Put("/media/a.txt", []byte("12345"))

	s.Require().NoError(s.run("size", "a.txt"))
	s.Equal("5\n", s.stdout.String())

	s.Require().NoError(s.run("stat", "a.txt"))
	out := s.stdout.String()
	s.Contains(out, "size     5\n")
	s.Contains(out, "modified ")

	s.Require().Error(s.run("size", "missing.txt"))
}

func (s *AppTestSuite) TestURL() {
	s.server.Put("/media/a.txt", []byte("x"))

	s.Require().NoError(s.run("url", "a.txt"))
	s.True(strings.HasPrefix(s.stdout.String(), s.server.URL()+"/temp/"))

	s.Require().NoError(s.run("url", "--permanent", "a.txt"))
	s.Contains(s.stdout.String(), "dl=1")
}

func (s *AppTestSuite) TestName() {
	s.server.Put("/media/a.txt", []byte("x"))

	s.Require().NoError(s.run("name", "a.txt"))
	s.Equal("/media/a(1).txt\n", s.stdout.String())

	s.Require().NoError(s.run("name", "--valid", `dir\a.txt`))
	s.Equal("/media/dir/a.txt\n", s.stdout.String())
}

func (s *AppTestSuite) TestVerboseLogs() {
	s.server.Put("/media/a.txt", []byte("x"))

	s.Require().NoError(s.run("--verbose", "rm", "a.txt"))
	s.Contains(s.stderr.String(), "dropbox delete")
	s.Contains(s.stderr.String(), "path=/media/a.txt")
}

func (s *AppTestSuite) TestMissingArguments() {
	for _, cmd := range []string{"put", "get", "rm", "exists", "size", "url", "stat", "name"} {
		s.Run(cmd, func() {
			err := s.run(cmd)
			s.Require().Error(err)
			s.Contains(err.Error(), "requires at least 1 argument")
		})
	}
}

func (s *AppTestSuite) TestOpenStorageWithoutCredentials() {
	for _, key := range []string{"DROPBOX_OAUTH2_ACCESS_TOKEN", "DROPBOX_OAUTH2_REFRESH_TOKEN"} {
		s.T().Setenv(key, "")
	}
	cfg := filepath.Join(s.dir, "dbxstorage.yaml")
	s.Require().NoError(os.WriteFile(cfg, []byte("root_path: /media\n"), 0o600))

	err := newApp(s.stdout, s.stderr, openStorage).Run([]string{"dbxstorage", "--config", cfg, "ls"})
	s.Require().ErrorIs(err, errNoCredentials)
}

func (s *AppTestSuite) TestLocalStorage() {
	local := s.localFile("report.txt", "local numbers")
	media := filepath.Join(s.dir, "media")
	app := func(args ...string) error {
		s.stdout.Reset()
		base := []string{"dbxstorage", "--local", media, "--base-url", "https://example.com/media"}
		return newApp(s.stdout, s.stderr, openStorage).Run(append(base, args...))
	}

	s.Require().NoError(app("put", local, "reports/report.txt"))
	s.Equal("/reports/report.txt\n", s.stdout.String())

	s.Require().NoError(app("put", local, "reports/report.txt"))
	s.Equal("/reports/report(1).txt\n", s.stdout.String())

	s.Require().NoError(app("ls", "reports"))
	s.Equal("report(1).txt\nreport.txt\n", s.stdout.String())

	s.Require().NoError(app("url", "reports/report.txt"))
	s.Equal("https://example.com/media/reports/report.txt\n", s.stdout.String())

	b, err := os.ReadFile(filepath.Join(media, "reports", "report.txt"))
	s.Require().NoError(err)
	s.Equal("local numbers", string(b))
}

func (s *AppTestSuite) TestStorageErrors() {
	st := mocks.NewStorage(s.T())
	factory := func(_ *cli.Context, _ *slog.Logger) (storages.Storage, error) {
		return st, nil
	}
	app := func(args ...string) error {
		return newApp(s.stdout, s.stderr, factory).Run(append([]string{"dbxstorage"}, args...))
	}

	st.EXPECT().Exists("a.txt").Return(false, errors.New("exists error: too_many_requests/")).Once()
	err := app("exists", "a.txt")
	s.Require().Error(err)
	s.Contains(err.Error(), "too_many_requests")

	st.EXPECT().ListDir("docs").Return(nil, nil, errors.New("list error: path/not_found/")).Once()
	s.Require().Error(app("ls", "docs"))

	st.EXPECT().Delete("a.txt").Return(nil).Once()
	st.EXPECT().Delete("b.txt").Return(errors.New("delete error: path_lookup/not_found/")).Once()
	err = app("rm", "a.txt", "b.txt", "c.txt")
	s.Require().Error(err, "rm stops at the first failure")
	s.Contains(s.stdout.String(), "deleted a.txt")

	st.EXPECT().Open("a.txt").Return(nil, errors.New("open error: unexpected http status 404 Not Found")).Once()
	s.Require().Error(app("get", "a.txt"))

	st.EXPECT().Size("a.txt").Return(int64(3), nil).Once()
	st.EXPECT().AccessedTime("a.txt").Return(time.Time{}, errors.New("time error")).Once()
	s.Require().Error(app("stat", "a.txt"))

	factoryErr := errors.New("dropbox account check: invalid_access_token/")
	err = newApp(s.stdout, s.stderr, func(_ *cli.Context, _ *slog.Logger) (storages.Storage, error) {
		return nil, factoryErr
	}).Run([]string{"dbxstorage", "ls"})
	s.Require().ErrorIs(err, factoryErr)
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}
