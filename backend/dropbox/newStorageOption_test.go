package dropbox

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/storages/options"

	"github.com/c2fo/storages/backend/dropbox/mocks"
)

type NewStorageOptionTestSuite struct {
	suite.Suite
}

func (s *NewStorageOptionTestSuite) TestOptions() {
	mockClient := mocks.NewClient(s.T())
	httpClient := &http.Client{}
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name         string
		opt          options.NewStorageOption[Storage]
		expectedName string
		validate     func(*Storage)
	}{
		{
			name:         "WithAccessToken",
			opt:          WithAccessToken("test-token"),
			expectedName: optionNameAccessToken,
			validate: func(st *Storage) {
				s.Equal("test-token", st.options.AccessToken)
			},
		},
		{
			name:         "WithRefreshToken",
			opt:          WithRefreshToken("refresh-token"),
			expectedName: optionNameRefreshToken,
			validate: func(st *Storage) {
				s.Equal("refresh-token", st.options.RefreshToken)
			},
		},
		{
			name:         "WithAppCredentials",
			opt:          WithAppCredentials("key", "secret"),
			expectedName: optionNameAppCredentials,
			validate: func(st *Storage) {
				s.Equal("key", st.options.AppKey)
				s.Equal("secret", st.options.AppSecret)
			},
		},
		{
			name:         "WithRootPath",
			opt:          WithRootPath("/media"),
			expectedName: optionNameRootPath,
			validate: func(st *Storage) {
				s.Equal("/media", st.options.RootPath)
			},
		},
		{
			name:         "WithChunkSize",
			opt:          WithChunkSize(8 * 1024 * 1024),
			expectedName: optionNameChunkSize,
			validate: func(st *Storage) {
				s.Equal(int64(8*1024*1024), st.options.ChunkSize)
			},
		},
		{
			name:         "WithWriteMode",
			opt:          WithWriteMode(WriteModeOverwrite),
			expectedName: optionNameWriteMode,
			validate: func(st *Storage) {
				s.Equal(WriteModeOverwrite, st.options.WriteMode)
			},
		},
		{
			name:         "WithTimeout",
			opt:          WithTimeout(5 * time.Second),
			expectedName: optionNameTimeout,
			validate: func(st *Storage) {
				s.Equal(5*time.Second, st.options.Timeout)
			},
		},
		{
			name:         "WithMaxNameAttempts",
			opt:          WithMaxNameAttempts(10),
			expectedName: optionNameMaxNameAttempts,
			validate: func(st *Storage) {
				s.Equal(10, st.options.MaxNameAttempts)
			},
		},
		{
			name:         "WithHTTPClient",
			opt:          WithHTTPClient(httpClient),
			expectedName: optionNameHTTPClient,
			validate: func(st *Storage) {
				s.Same(httpClient, st.options.HTTPClient)
			},
		},
		{
			name:         "WithClient",
			opt:          WithClient(mockClient),
			expectedName: optionNameClient,
			validate: func(st *Storage) {
				s.Equal(mockClient, st.client)
			},
		},
		{
			name:         "WithLogger",
			opt:          WithLogger(logger),
			expectedName: optionNameLogger,
			validate: func(st *Storage) {
				s.Same(logger, st.logger)
			},
		},
		{
			name:         "WithLogger nil keeps the default",
			opt:          WithLogger(nil),
			expectedName: optionNameLogger,
			validate: func(st *Storage) {
				s.NotNil(st.logger)
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			st := &Storage{options: NewOptions(), logger: slog.Default()}

			tt.opt.Apply(st)
			tt.validate(st)

			s.Equal(tt.expectedName, tt.opt.NewStorageOptionName())
		})
	}
}

func TestNewStorageOptionTestSuite(t *testing.T) {
	suite.Run(t, new(NewStorageOptionTestSuite))
}
