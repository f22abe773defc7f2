// Command dbxstorage runs storage operations against a Dropbox folder from the command line.
//
//	dbxstorage put ./report.pdf reports/report.pdf
//	dbxstorage ls reports
//	dbxstorage url --permanent reports/report.pdf
//
// Credentials and defaults come from DROPBOX_* environment variables or a dbxstorage.yaml file, see package config.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	app := newApp(os.Stdout, os.Stderr, openStorage)
	if err := app.Run(os.Args); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "dbxstorage: %s\n", err)
		os.Exit(1)
	}
}
