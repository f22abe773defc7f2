package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/c2fo/storages"
	"github.com/c2fo/storages/backend/dropbox"
	_os "github.com/c2fo/storages/backend/os"
	"github.com/c2fo/storages/config"
)

// storageFactory builds the storage a command runs against.
type storageFactory func(c *cli.Context, logger *slog.Logger) (storages.Storage, error)

var errNoCredentials = errors.New("no Dropbox credentials: set DROPBOX_OAUTH2_ACCESS_TOKEN, or DROPBOX_OAUTH2_REFRESH_TOKEN with DROPBOX_APP_KEY")

func newApp(stdout, stderr io.Writer, factory storageFactory) *cli.App {
	app := cli.NewApp()
	app.Name = "dbxstorage"
	app.Usage = "Stores, fetches and lists files in a Dropbox folder"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Usage:  "path to a YAML settings file",
			EnvVar: "DBXSTORAGE_CONFIG",
		},
		cli.StringFlag{
			Name:  "root",
			Usage: "Dropbox folder names are stored under, overrides DROPBOX_ROOT_PATH",
		},
		cli.StringFlag{
			Name:  "write-mode",
			Usage: "add or overwrite, overrides DROPBOX_WRITE_MODE",
		},
		cli.StringFlag{
			Name:   "local",
			Usage:  "store files under this local directory instead of Dropbox",
			EnvVar: "DBXSTORAGE_LOCAL",
		},
		cli.StringFlag{
			Name:  "base-url",
			Usage: "URL the --local directory is served at, used by the url command",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log every Dropbox call to stderr",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("no-color") {
			color.NoColor = true
		}
		return nil
	}

	run := func(action func(c *cli.Context, st storages.Storage) error) func(c *cli.Context) error {
		return func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.GlobalBool("verbose") {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			st, err := factory(c, logger)
			if err != nil {
				return err
			}
			return action(c, st)
		}
	}

	app.Commands = []cli.Command{
		{
			Name:      "put",
			Usage:     "upload a local file, printing the name it was stored under",
			ArgsUsage: "<local file> [name]",
			Action:    run(putCmd),
		},
		{
			Name:      "get",
			Usage:     "download a file to a local path, or to stdout",
			ArgsUsage: "<name> [local file|-]",
			Action:    run(getCmd),
		},
		{
			Name:      "ls",
			Usage:     "list the folders and files directly under a path",
			ArgsUsage: "[path]",
			Action:    run(lsCmd),
		},
		{
			Name:      "rm",
			Usage:     "delete files",
			ArgsUsage: "<name>...",
			Action:    run(rmCmd),
		},
		{
			Name:      "exists",
			Usage:     "report whether a file exists",
			ArgsUsage: "<name>",
			Action:    run(existsCmd),
		},
		{
			Name:      "size",
			Usage:     "print the size of a file in bytes",
			ArgsUsage: "<name>",
			Action:    run(sizeCmd),
		},
		{
			Name:      "url",
			Usage:     "print a link to the content of a file",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "permanent",
					Usage: "create or reuse a shared link instead of a temporary one",
				},
			},
			Action: run(urlCmd),
		},
		{
			Name:      "stat",
			Usage:     "print the size and times of a file",
			ArgsUsage: "<name>",
			Action:    run(statCmd),
		},
		{
			Name:      "name",
			Usage:     "print the name a file would be stored under",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "valid",
					Usage: "print the valid name without checking for collisions",
				},
			},
			Action: run(nameCmd),
		},
	}

	return app
}

// openStorage builds a Dropbox storage from settings and global flags, or a local one when --local is set.
func openStorage(c *cli.Context, logger *slog.Logger) (storages.Storage, error) {
	settings, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if local := c.GlobalString("local"); local != "" {
		logger.Debug("local storage", "location", local)
		return _os.New(
			_os.WithLocation(local),
			_os.WithBaseURL(c.GlobalString("base-url")),
			_os.WithMaxNameAttempts(settings.MaxNameAttempts),
		)
	}
	if root := c.GlobalString("root"); root != "" {
		settings.RootPath = root
	}
	if mode := c.GlobalString("write-mode"); mode != "" {
		settings.WriteMode = mode
	}
	if !settings.HasCredentials() {
		return nil, errNoCredentials
	}

	return dropbox.New(append(settings.StorageOptions(), dropbox.WithLogger(logger))...)
}

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return fmt.Errorf("%s requires at least %d argument(s): %s", c.Command.Name, n, c.Command.ArgsUsage)
	}
	return nil
}

func putCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	local := c.Args().Get(0)
	name := c.Args().Get(1)
	if name == "" {
		name = filepath.Base(local)
	}

	f, err := os.Open(filepath.Clean(local))
	if err != nil {
		return err
	}

	content, err := storages.NewFile(name, f)
	if err != nil {
		_ = f.Close()
		return err
	}
	defer func() { _ = content.Close() }()

	stored, err := st.Save(name, content)
	if err != nil {
		return err
	}

	_, err = color.New(color.FgGreen).Fprintln(c.App.Writer, stored)
	return err
}

func getCmd(c *cli.Context, st storages.Storage) (err error) {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	content, err := st.Open(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer func() { _ = content.Close() }()

	out := c.App.Writer
	if local := c.Args().Get(1); local != "" && local != "-" {
		f, err := os.Create(filepath.Clean(local))
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}

	_, err = io.Copy(out, content)
	return err
}

func lsCmd(c *cli.Context, st storages.Storage) error {
	dirs, files, err := st.ListDir(c.Args().Get(0))
	if err != nil {
		return err
	}

	dirColor := color.New(color.FgBlue, color.Bold)
	for _, d := range dirs {
		if _, err := dirColor.Fprintln(c.App.Writer, d+"/"); err != nil {
			return err
		}
	}
	for _, f := range files {
		if _, err := fmt.Fprintln(c.App.Writer, f); err != nil {
			return err
		}
	}
	return nil
}

func rmCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	for _, name := range c.Args() {
		if err := st.Delete(name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(c.App.Writer, "deleted %s\n", name); err != nil {
			return err
		}
	}
	return nil
}

func existsCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	exists, err := st.Exists(c.Args().Get(0))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, strconv.FormatBool(exists))
	return err
}

func sizeCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	size, err := st.Size(c.Args().Get(0))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, size)
	return err
}

func urlCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	link, err := st.URL(c.Args().Get(0), c.Bool("permanent"))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, link)
	return err
}

func statCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	name := c.Args().Get(0)

	size, err := st.Size(name)
	if err != nil {
		return err
	}
	accessed, err := st.AccessedTime(name)
	if err != nil {
		return err
	}
	created, err := st.CreatedTime(name)
	if err != nil {
		return err
	}
	modified, err := st.ModifiedTime(name)
	if err != nil {
		return err
	}

	label := color.New(color.Faint)
	for _, row := range []struct {
		label string
		value string
	}{
		{"size", strconv.FormatInt(size, 10)},
		{"accessed", accessed.Format(time.RFC3339)},
		{"created", created.Format(time.RFC3339)},
		{"modified", modified.Format(time.RFC3339)},
	} {
		if _, err := label.Fprintf(c.App.Writer, "%-9s", row.label); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.App.Writer, row.value); err != nil {
			return err
		}
	}
	return nil
}

func nameCmd(c *cli.Context, st storages.Storage) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}
	name := c.Args().Get(0)

	if c.Bool("valid") {
		_, err := fmt.Fprintln(c.App.Writer, st.GetValidName(name))
		return err
	}

	available, err := st.GetAvailableName(name)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, available)
	return err
}
