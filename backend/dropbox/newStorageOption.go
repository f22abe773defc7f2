package dropbox

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/c2fo/storages/options"
)

const (
	optionNameAccessToken     = "accessToken"
	optionNameRefreshToken    = "refreshToken"
	optionNameAppCredentials  = "appCredentials"
	optionNameRootPath        = "rootPath"
	optionNameChunkSize       = "chunkSize"
	optionNameWriteMode       = "writeMode"
	optionNameTimeout         = "timeout"
	optionNameMaxNameAttempts = "maxNameAttempts"
	optionNameHTTPClient      = "httpClient"
	optionNameClient          = "client"
	optionNameLogger          = "logger"
)

// WithAccessToken sets a long-lived OAuth2 access token for Dropbox API authentication.
func WithAccessToken(token string) options.NewStorageOption[Storage] {
	return &accessTokenOpt{token: token}
}

type accessTokenOpt struct {
	token string
}

func (o *accessTokenOpt) Apply(s *Storage) {
	s.options.AccessToken = o.token
}

func (o *accessTokenOpt) NewStorageOptionName() string {
	return optionNameAccessToken
}

// WithRefreshToken sets an OAuth2 refresh token. Access tokens are then obtained, and renewed, from the token endpoint
// using the app credentials set by WithAppCredentials.
func WithRefreshToken(token string) options.NewStorageOption[Storage] {
	return &refreshTokenOpt{token: token}
}

type refreshTokenOpt struct {
	token string
}

func (o *refreshTokenOpt) Apply(s *Storage) {
	s.options.RefreshToken = o.token
}

func (o *refreshTokenOpt) NewStorageOptionName() string {
	return optionNameRefreshToken
}

// WithAppCredentials sets the Dropbox app key and secret.
func WithAppCredentials(key, secret string) options.NewStorageOption[Storage] {
	return &appCredentialsOpt{key: key, secret: secret}
}

type appCredentialsOpt struct {
	key    string
	secret string
}

func (o *appCredentialsOpt) Apply(s *Storage) {
	s.options.AppKey = o.key
	s.options.AppSecret = o.secret
}

func (o *appCredentialsOpt) NewStorageOptionName() string {
	return optionNameAppCredentials
}

// WithRootPath sets the Dropbox folder all names are stored under.
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

// WithChunkSize sets the size above which uploads use a session, and the length of each session chunk.
// Default is 4MB.
func WithChunkSize(size int64) options.NewStorageOption[Storage] {
	return &chunkSizeOpt{size: size}
}

type chunkSizeOpt struct {
	size int64
}

func (o *chunkSizeOpt) Apply(s *Storage) {
	s.options.ChunkSize = o.size
}

func (o *chunkSizeOpt) NewStorageOptionName() string {
	return optionNameChunkSize
}

// WithWriteMode sets the write mode used for every upload. Default is add.
func WithWriteMode(mode WriteMode) options.NewStorageOption[Storage] {
	return &writeModeOpt{mode: mode}
}

type writeModeOpt struct {
	mode WriteMode
}

func (o *writeModeOpt) Apply(s *Storage) {
	s.options.WriteMode = o.mode
}

func (o *writeModeOpt) NewStorageOptionName() string {
	return optionNameWriteMode
}

// WithTimeout sets the timeout applied to each HTTP request. Default is 100s.
func WithTimeout(timeout time.Duration) options.NewStorageOption[Storage] {
	return &timeoutOpt{timeout: timeout}
}

type timeoutOpt struct {
	timeout time.Duration
}

func (o *timeoutOpt) Apply(s *Storage) {
	s.options.Timeout = o.timeout
}

func (o *timeoutOpt) NewStorageOptionName() string {
	return optionNameTimeout
}

// WithMaxNameAttempts caps how many alternative names GetAvailableName tries before giving up. Zero, the default,
// means no cap.
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

// WithHTTPClient sets the client Open uses to fetch file content from temporary links.
func WithHTTPClient(client *http.Client) options.NewStorageOption[Storage] {
	return &httpClientOpt{client: client}
}

type httpClientOpt struct {
	client *http.Client
}

func (o *httpClientOpt) Apply(s *Storage) {
	s.options.HTTPClient = o.client
}

func (o *httpClientOpt) NewStorageOptionName() string {
	return optionNameHTTPClient
}

// WithClient sets a custom Dropbox client. Useful for testing or when you need
// to provide a pre-configured client.
func WithClient(client Client) options.NewStorageOption[Storage] {
	return &clientOpt{client: client}
}

type clientOpt struct {
	client Client
}

func (o *clientOpt) Apply(s *Storage) {
	s.client = o.client
}

func (o *clientOpt) NewStorageOptionName() string {
	return optionNameClient
}

// WithLogger sets the logger remote calls are reported to. By default nothing is logged.
func WithLogger(logger *slog.Logger) options.NewStorageOption[Storage] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger *slog.Logger
}

func (o *loggerOpt) Apply(s *Storage) {
	if o.logger != nil {
		s.logger = o.logger
	}
}

func (o *loggerOpt) NewStorageOptionName() string {
	return optionNameLogger
}
