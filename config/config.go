// Package config loads Dropbox storage settings from the environment and an optional YAML file, and turns them into
// backend options.
//
// Every setting can be given as an environment variable:
//
//	DROPBOX_OAUTH2_ACCESS_TOKEN   long-lived access token
//	DROPBOX_OAUTH2_REFRESH_TOKEN  refresh token, takes precedence over the access token
//	DROPBOX_APP_KEY               app key, required with a refresh token
//	DROPBOX_APP_SECRET            app secret
//	DROPBOX_ROOT_PATH             folder all names are stored under
//	DROPBOX_TIMEOUT               request timeout in seconds (default 100)
//	DROPBOX_WRITE_MODE            add or overwrite (default add)
//	DROPBOX_CHUNK_SIZE            upload session threshold in bytes (default 4MB)
//	DROPBOX_MAX_NAME_ATTEMPTS     cap on alternative names tried, 0 for none
//
// or as the lower-cased key without the prefix in the YAML file, ie: root_path: /media. Environment variables win.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/c2fo/storages/backend/dropbox"
	"github.com/c2fo/storages/options"
)

// EnvPrefix is prepended, with an underscore, to every setting key to form its environment variable.
const EnvPrefix = "DROPBOX"

// DefaultConfigName is the file name, without extension, searched for when Load is given no path.
const DefaultConfigName = "dbxstorage"

const (
	keyAccessToken     = "oauth2_access_token"
	keyRefreshToken    = "oauth2_refresh_token"
	keyAppKey          = "app_key"
	keyAppSecret       = "app_secret"
	keyRootPath        = "root_path"
	keyTimeout         = "timeout"
	keyWriteMode       = "write_mode"
	keyChunkSize       = "chunk_size"
	keyMaxNameAttempts = "max_name_attempts"
)

var keys = []string{
	keyAccessToken,
	keyRefreshToken,
	keyAppKey,
	keyAppSecret,
	keyRootPath,
	keyTimeout,
	keyWriteMode,
	keyChunkSize,
	keyMaxNameAttempts,
}

var errTimeoutInvalid = errors.New("timeout must be a positive number of seconds")

// Settings holds the Dropbox storage configuration.
type Settings struct {
	AccessToken     string `mapstructure:"oauth2_access_token"`
	RefreshToken    string `mapstructure:"oauth2_refresh_token"`
	AppKey          string `mapstructure:"app_key"`
	AppSecret       string `mapstructure:"app_secret"`
	RootPath        string `mapstructure:"root_path"`
	Timeout         int    `mapstructure:"timeout"`
	WriteMode       string `mapstructure:"write_mode"`
	ChunkSize       int64  `mapstructure:"chunk_size"`
	MaxNameAttempts int    `mapstructure:"max_name_attempts"`
}

// Load reads settings from the environment and from the YAML file at path. A leading "~" in path is expanded. When
// path is empty, dbxstorage.yaml is looked for in the working directory and in ~/.config/dbxstorage, and it is not an
// error if neither exists.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	v.SetDefault(keyTimeout, int(dropbox.DefaultTimeout/time.Second))
	v.SetDefault(keyWriteMode, string(dropbox.DefaultWriteMode))
	v.SetDefault(keyChunkSize, dropbox.DefaultChunkSize)
	v.SetDefault(keyMaxNameAttempts, 0)

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("config path %q: %w", path, err)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", expanded, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if settings.Timeout <= 0 {
		return nil, errTimeoutInvalid
	}

	return &settings, nil
}

// HasCredentials reports whether an access token or a refresh token is set.
func (s *Settings) HasCredentials() bool {
	return s.AccessToken != "" || s.RefreshToken != ""
}

// StorageOptions converts the settings into options for dropbox.New. Validation of the values is left to
// dropbox.New.
func (s *Settings) StorageOptions() []options.NewStorageOption[dropbox.Storage] {
	opts := []options.NewStorageOption[dropbox.Storage]{
		dropbox.WithRootPath(s.RootPath),
		dropbox.WithTimeout(time.Duration(s.Timeout) * time.Second),
		dropbox.WithWriteMode(dropbox.WriteMode(strings.ToLower(s.WriteMode))),
		dropbox.WithChunkSize(s.ChunkSize),
		dropbox.WithMaxNameAttempts(s.MaxNameAttempts),
	}

	if s.AccessToken != "" {
		opts = append(opts, dropbox.WithAccessToken(s.AccessToken))
	}
	if s.RefreshToken != "" {
		opts = append(opts, dropbox.WithRefreshToken(s.RefreshToken))
	}
	if s.AppKey != "" || s.AppSecret != "" {
		opts = append(opts, dropbox.WithAppCredentials(s.AppKey, s.AppSecret))
	}

	return opts
}
