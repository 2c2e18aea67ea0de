// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBind      = "127.0.0.1:8000"
	DefaultTablePath = "/etc/akasio.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Environment variables overriding the config file.
const (
	EnvBind      = "AKASIO_BIND"
	EnvTable     = "AKASIO_TABLE"
	EnvLogLevel  = "AKASIO_LOG_LEVEL"
	EnvLogFormat = "AKASIO_LOG_FORMAT"
	EnvLogFile   = "AKASIO_LOG_FILE"
	EnvCache     = "AKASIO_CACHE"
)

// DefaultFileConfig returns the settings used when nothing else is given.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Bind:      DefaultBind,
		Table:     DefaultTablePath,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

func LoadConfigFile(configPath string) ([]byte, error) {
	defPath := configPath
	if !filepath.IsAbs(defPath) {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "/"
		}
		defPath = filepath.Join(cwd, configPath)
	}

	content, err := os.ReadFile(defPath)
	if err != nil {
		return nil, errors.Wrapf(err, "error during the config file reading at: %s", defPath)
	}

	return content, nil
}

func DiscoverConfigFormat(configPath string) (string, error) {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".json":
		return "json", nil
	case ".yml", ".yaml":
		return "yaml", nil
	case "":
		return "", errors.New("invalid path provided")
	default:
		return "", errors.Errorf("unsupported config format: %s", configPath)
	}
}

func ParseConfig(content []byte, format string) (*FileConfig, error) {
	var config FileConfig
	var err error

	switch format {
	case "json":
		err = json.Unmarshal(content, &config)
	case "yaml":
		err = yaml.Unmarshal(content, &config)
	default:
		return nil, errors.Errorf("unknown config format %q", format)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s config", format)
	}

	return &config, nil
}

// ReadConfig loads and decodes the config file at configPath.
func ReadConfig(configPath string) (*FileConfig, error) {
	format, err := DiscoverConfigFormat(configPath)
	if err != nil {
		return nil, err
	}
	content, err := LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}
	return ParseConfig(content, format)
}

// Merge overlays the non-empty fields of other onto c.
func (c *FileConfig) Merge(other *FileConfig) {
	if other == nil {
		return
	}
	if other.Bind != "" {
		c.Bind = other.Bind
	}
	if other.Table != "" {
		c.Table = other.Table
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.Cache {
		c.Cache = true
	}
}

// ApplyEnv overrides c with the AKASIO_* variables found by lookup.
// Pass os.LookupEnv in production.
func (c *FileConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBind); ok && v != "" {
		c.Bind = v
	}
	if v, ok := lookup(EnvTable); ok && v != "" {
		c.Table = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvCache); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s value %q", EnvCache, v)
		}
		c.Cache = enabled
	}
	return nil
}

func (c *FileConfig) LogOptions() LogOptions {
	return LogOptions{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile}
}

// NewConfig builds the immutable runtime configuration. A nil logger
// discards everything.
func NewConfig(logger *logrus.Logger, bind, tablePath string) (*Config, error) {
	if strings.TrimSpace(bind) == "" {
		return nil, errors.New("empty bind address")
	}
	if strings.TrimSpace(tablePath) == "" {
		return nil, errors.New("empty redirect table path")
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Config{logger: logger, bind: bind, tablePath: tablePath}, nil
}

func (c *Config) Logger() *logrus.Logger { return c.logger }

func (c *Config) Bind() string { return c.bind }

func (c *Config) TablePath() string { return c.tablePath }
