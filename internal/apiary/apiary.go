// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package apiary implements the apiary command, a command line client for the
// Document AI and YouTube Reporting APIs.
package apiary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/googleapis/apiary/apiclient"
	"github.com/googleapis/apiary/internal/config"
	"github.com/googleapis/apiary/internal/credentials"
	"github.com/googleapis/apiary/internal/output"
	"github.com/googleapis/gax-go/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/googleapi"
)

var errMissingArgs = errors.New("missing arguments")

// Run executes the apiary CLI with the given command line arguments.
func Run(ctx context.Context, args ...string) error {
	return newApp(os.Stdout).command().Run(ctx, args)
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}

// app holds what the commands share. The fields after the blank line are
// set by load.
type app struct {
	out         io.Writer
	httpClient  *http.Client
	newAuth     func(*config.Auth) (apiclient.Authenticator, error)
	pollBackoff gax.Backoff

	cfg     *config.Config
	auth    apiclient.Authenticator
	printer *output.Printer
}

func newApp(out io.Writer) *app {
	return &app{
		out:        out,
		httpClient: http.DefaultClient,
		newAuth:    credentials.New,
		pollBackoff: gax.Backoff{
			Initial:    time.Second,
			Max:        30 * time.Second,
			Multiplier: 1.5,
		},
	}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "apiary",
		Usage:     "call the Document AI and YouTube Reporting APIs",
		UsageText: "apiary [global flags] <api> <command> [arguments]",
		Writer:    a.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Sources: cli.EnvVars("APIARY_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose logging",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "send requests to `URL` instead of the API endpoint",
			},
			&cli.StringFlag{
				Name:  "token-command",
				Usage: "run `CMD` to obtain access tokens",
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "make at most `N` attempts per call",
			},
			&cli.StringFlag{
				Name:  "fields",
				Usage: "request only the listed response fields, for example jobs(id,name)",
			},
			&cli.StringFlag{
				Name:  "template",
				Usage: "print responses with a mustache template: a built-in view (" + strings.Join(output.Builtins(), ", ") + "), @FILE or the template text",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogger(cmd.Bool("verbose"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.documentAICommand(),
			a.youtubeReportingCommand(),
			a.configCommand(),
			versionCommand(),
		},
	}
}

// load reads the configuration, applies the global flags on top of it and
// prepares the authenticator and printer.
func (a *app) load(cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if tc := cmd.String("token-command"); tc != "" {
		auth := &config.Auth{TokenCommand: tc}
		if cfg.Auth != nil {
			auth.Scopes = cfg.Auth.Scopes
		}
		cfg.Auth = auth
	}
	if cmd.IsSet("retries") {
		cfg.Retry.MaxAttempts = cmd.Int("retries")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.auth, err = a.newAuth(cfg.Auth)
	if err != nil {
		return fmt.Errorf("creating authenticator: %w", err)
	}
	a.printer, err = output.New(a.out, cmd.String("template"))
	if err != nil {
		return err
	}
	slog.Debug("configuration loaded", "max_attempts", cfg.Retry.MaxAttempts, "template", cmd.String("template"))
	return nil
}

// endpoint returns the base path for a service: the --endpoint flag, then
// the configured endpoint. An empty result keeps the default.
func endpoint(cmd *cli.Command, configured string) string {
	e := cmd.String("endpoint")
	if e == "" {
		e = configured
	}
	if e != "" && !strings.HasSuffix(e, "/") {
		e += "/"
	}
	return e
}

func (a *app) delegate() apiclient.Delegate {
	return newDelegate(a.cfg.Retry)
}

// fields returns the partial response selector given with --fields, or the
// empty string.
func fields(cmd *cli.Command) googleapi.Field {
	f := cmd.String("fields")
	if f == "" {
		return ""
	}
	return output.Fields(f)
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "print the version",
		UsageText: "apiary version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, Version())
			return err
		},
	}
}
