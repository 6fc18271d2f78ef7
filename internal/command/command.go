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

// Package command provides helpers to execute external commands with logging.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

var errEmptyCommand = errors.New("empty command")

// Output executes a program (with arguments) and returns its standard output.
// It is a convenience wrapper around OutputWithEnv.
func Output(ctx context.Context, command string, arg ...string) ([]byte, error) {
	return OutputWithEnv(ctx, nil, command, arg...)
}

// OutputWithEnv executes a program (with arguments) and optional environment
// variables and returns its standard output. Standard error is captured and
// included in the returned error. If env is nil or empty, the command
// inherits the environment of the calling process.
func OutputWithEnv(ctx context.Context, env map[string]string, command string, arg ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, arg...)
	if len(env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	slog.Debug("running command", "cmd", cmd.String())
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%v: %v\n%s", cmd, err, stderr.Bytes())
	}
	return out, nil
}

// Split splits a command line on white space into the program and its
// arguments. Quoting is not supported.
func Split(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, errEmptyCommand
	}
	return fields[0], fields[1:], nil
}
