package os

import (
	"io/fs"

	"github.com/c2fo/storages/options"
)

const (
	optionNameLocation        = "location"
	optionNameBaseURL         = "baseURL"
	optionNameFileMode        = "fileMode"
	optionNameDirMode         = "dirMode"
	optionNameMaxNameAttempts = "maxNameAttempts"
)

// WithLocation sets the directory files are stored under.
func WithLocation(dir string) options.NewStorageOption[Storage] {
	return &locationOpt{dir: dir}
}

type locationOpt struct {
	dir string
}

func (o *locationOpt) Apply(s *Storage) {
	s.options.Location = o.dir
}

func (o *locationOpt) NewStorageOptionName() string {
	return optionNameLocation
}

// WithBaseURL sets the URL links are built on.
func WithBaseURL(base string) options.NewStorageOption[Storage] {
	return &baseURLOpt{base: base}
}

type baseURLOpt struct {
	base string
}

func (o *baseURLOpt) Apply(s *Storage) {
	s.options.BaseURL = o.base
}

func (o *baseURLOpt) NewStorageOptionName() string {
	return optionNameBaseURL
}

// WithFileMode sets the permissions of files created by Save.
func WithFileMode(mode fs.FileMode) options.NewStorageOption[Storage] {
	return &fileModeOpt{mode: mode}
}

type fileModeOpt struct {
	mode fs.FileMode
}

func (o *fileModeOpt) Apply(s *Storage) {
	s.options.FileMode = o.mode
}

func (o *fileModeOpt) NewStorageOptionName() string {
	return optionNameFileMode
}

// WithDirMode sets the permissions of folders created by Save.
func WithDirMode(mode fs.FileMode) options.NewStorageOption[Storage] {
	return &dirModeOpt{mode: mode}
}

type dirModeOpt struct {
	mode fs.FileMode
}

func (o *dirModeOpt) Apply(s *Storage) {
	s.options.DirMode = o.mode
}

func (o *dirModeOpt) NewStorageOptionName() string {
	return optionNameDirMode
}

// WithMaxNameAttempts caps the number of alternative names tried by GetAvailableName.
func WithMaxNameAttempts(n int) options.NewStorageOption[Storage] {
	return &maxNameAttemptsOpt{n: n}
}

type maxNameAttemptsOpt struct {
	n int
}

func (o *maxNameAttemptsOpt) Apply(s *Storage) {
	s.options.MaxNameAttempts = o.n
}

func (o *maxNameAttemptsOpt) NewStorageOptionName() string {
	return optionNameMaxNameAttempts
}
