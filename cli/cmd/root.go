// Copyright 2025 DoniLite. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/DoniLite/akasio/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	bind       string
	table      string
	logLevel   string
	logFormat  string
	logFile    string
	debug      bool
	cache      bool
}

var RootCmd = NewRootCmd()

// Execute runs the akasio command with the process arguments.
func Execute() error {
	return RootCmd.Execute()
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{})
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "akasio",
		Short:         "Redirect HTTP requests using a JSON redirect table",
		Version:       core.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, opts, os.LookupEnv)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, settings)
		},
	}
	cmd.SetVersionTemplate("akasio {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or YAML config file")
	flags.StringVarP(&opts.bind, "bind", "b", core.DefaultBind, "binding IP address and port (IP:PORT) ["+core.EnvBind+"]")
	flags.StringVarP(&opts.table, "table", "r", core.DefaultTablePath, "path to the JSON redirect table ["+core.EnvTable+"]")
	flags.StringVar(&opts.logLevel, "log-level", core.DefaultLogLevel, "log level (debug, info, warn, error) ["+core.EnvLogLevel+"]")
	flags.StringVar(&opts.logFormat, "log-format", core.DefaultLogFormat, "log format (text, json) ["+core.EnvLogFormat+"]")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to a rotated file instead of stderr ["+core.EnvLogFile+"]")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	flags.BoolVar(&opts.cache, "cache", false, "skip re-parsing the table while its content is unchanged ["+core.EnvCache+"]")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveSettings layers defaults, the config file, the environment and the
// flags set on the command line, in that order.
func resolveSettings(cmd *cobra.Command, opts *options, lookup func(string) (string, bool)) (*core.FileConfig, error) {
	settings := core.DefaultFileConfig()

	if opts.configPath != "" {
		fileConfig, err := core.ReadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		settings.Merge(fileConfig)
	}

	if err := settings.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("bind") {
		settings.Bind = opts.bind
	}
	if flags.Changed("table") {
		settings.Table = opts.table
	}
	if opts.debug {
		settings.LogLevel = "debug"
	}
	if flags.Changed("log-level") {
		settings.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		settings.LogFormat = opts.logFormat
	}
	if flags.Changed("log-file") {
		settings.LogFile = opts.logFile
	}
	if flags.Changed("cache") {
		settings.Cache = opts.cache
	}

	return settings, nil
}

func run(ctx context.Context, settings *core.FileConfig) error {
	logger, err := core.NewLogger(settings.LogOptions())
	if err != nil {
		return err
	}

	config, err := core.NewConfig(logger, settings.Bind, settings.Table)
	if err != nil {
		return err
	}

	var source core.TableSource = core.FileTableSource{}
	if settings.Cache {
		cache := core.NewTableCache(config)
		if err := cache.Watch(ctx); err != nil {
			logger.WithError(err).Warn("table watcher disabled, the cache still revalidates on every request")
		}
		source = cache
	}

	server := core.NewServer(config, source)
	if err := server.ListenAndServe(ctx); err != nil {
		var bindErr *core.BindError
		if errors.As(err, &bindErr) {
			logger.WithField("bind", bindErr.Addr).WithError(bindErr.Err).Error("cannot bind the listening socket")
		} else {
			logger.WithError(err).Error("server stopped")
		}
		return err
	}

	logger.Info("server stopped")
	return nil
}
