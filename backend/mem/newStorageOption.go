package mem

import (
	"github.com/c2fo/storages/options"
)

const (
	optionNameRootPath        = "rootPath"
	optionNameBaseURL         = "baseURL"
	optionNameMaxNameAttempts = "maxNameAttempts"
)

// WithRootPath sets the folder every name is stored under.
func WithRootPath(root string) options.NewStorageOption[Storage] {
	return &rootPathOpt{root: root}
}

type rootPathOpt struct {
	root string
}

func (o *rootPathOpt) Apply(s *Storage) {
	s.options.RootPath = o.root
}

func (o *rootPathOpt) NewStorageOptionName() string {
	return optionNameRootPath
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
