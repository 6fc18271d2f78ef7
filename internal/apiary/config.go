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

package apiary

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/googleapis/apiary/internal/config"
	"github.com/urfave/cli/v3"
)

var errConfigExists = errors.New("config file already exists")

func (a *app) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a configuration file with the default values",
				UsageText: `apiary config init [file] [--force]

Without a file the configuration is written to --config, or to the
default location in the user configuration directory.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := configPath(cmd)
					if err != nil {
						return err
					}
					if !cmd.Bool("force") {
						if _, err := os.Stat(path); err == nil {
							return fmt.Errorf("%w: %s", errConfigExists, path)
						} else if !errors.Is(err, fs.ErrNotExist) {
							return err
						}
					}
					if err := config.Write(path, config.Default()); err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, path)
					return err
				},
			},
		},
	}
}

func configPath(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}
	if p := cmd.String("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}
