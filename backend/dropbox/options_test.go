package dropbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type OptionsTestSuite struct {
	suite.Suite
}

func (s *OptionsTestSuite) TestNewOptions() {
	s.Run("Returns default options", func() {
		opts := NewOptions()

		s.Equal(int64(4*1024*1024), opts.ChunkSize)
		s.Equal(WriteModeAdd, opts.WriteMode)
		s.Equal(100*time.Second, opts.Timeout)
		s.Zero(opts.MaxNameAttempts)
		s.Empty(opts.AccessToken)
		s.Empty(opts.RootPath)
		s.NoError(opts.validate())
	})
}

func (s *OptionsTestSuite) TestValidate() {
	tests := []struct {
		name   string
		modify func(*Options)
		err    error
	}{
		{
			name:   "Overwrite mode",
			modify: func(o *Options) { o.WriteMode = WriteModeOverwrite },
		},
		{
			name:   "Zero chunk size",
			modify: func(o *Options) { o.ChunkSize = 0 },
			err:    errChunkSizeInvalid,
		},
		{
			name:   "Negative chunk size",
			modify: func(o *Options) { o.ChunkSize = -1 },
			err:    errChunkSizeInvalid,
		},
		{
			name:   "Unknown write mode",
			modify: func(o *Options) { o.WriteMode = "update" },
			err:    errWriteModeInvalid,
		},
		{
			name:   "Empty write mode",
			modify: func(o *Options) { o.WriteMode = "" },
			err:    errWriteModeInvalid,
		},
		{
			name:   "Negative max name attempts",
			modify: func(o *Options) { o.MaxNameAttempts = -1 },
			err:    errMaxNameAttemptsInvalid,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			opts := NewOptions()
			tt.modify(&opts)

			err := opts.validate()
			if tt.err == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tt.err)
		})
	}
}

func TestOptionsTestSuite(t *testing.T) {
	suite.Run(t, new(OptionsTestSuite))
}
