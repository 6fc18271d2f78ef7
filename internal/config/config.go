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

// Package config defines the apiary configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/googleapis/apiary/internal/yaml"
	"github.com/googleapis/gax-go/v2"
)

// DefaultFile is the configuration file name looked up in the user
// configuration directory.
const DefaultFile = "apiary.yaml"

var (
	errInvalidMaxAttempts = errors.New("retry.max_attempts must not be negative")
	errInvalidMultiplier  = errors.New("retry.multiplier must be at least 1")
	errInvalidBackoff     = errors.New("retry.initial must not exceed retry.max")
	errConflictingAuth    = errors.New("auth.credentials_file and auth.token_command are mutually exclusive")
)

// Config is the apiary configuration.
type Config struct {
	// UserAgent is appended to the User-Agent header of every request.
	UserAgent string `yaml:"user_agent,omitempty"`

	Retry    *Retry    `yaml:"retry,omitempty"`
	Auth     *Auth     `yaml:"auth,omitempty"`
	Services *Services `yaml:"services,omitempty"`
}

// Retry controls how failed attempts are retried.
type Retry struct {
	// MaxAttempts is the total number of attempts per call. Zero and one both
	// disable retries.
	MaxAttempts int `yaml:"max_attempts,omitempty"`

	Initial    time.Duration `yaml:"initial,omitempty"`
	Max        time.Duration `yaml:"max,omitempty"`
	Multiplier float64       `yaml:"multiplier,omitempty"`
}

// Auth selects where access tokens come from. When both fields are empty
// Application Default Credentials are used.
type Auth struct {
	// CredentialsFile is a service account or authorized user JSON file.
	CredentialsFile string `yaml:"credentials_file,omitempty"`

	// TokenCommand prints an access token on stdout, for example
	// "gcloud auth print-access-token".
	TokenCommand string `yaml:"token_command,omitempty"`

	// Scopes are requested in addition to each method's default scope.
	Scopes yaml.StringSlice `yaml:"scopes,omitempty"`
}

// Services holds per-API settings.
type Services struct {
	DocumentAI       *DocumentAI       `yaml:"documentai,omitempty"`
	YouTubeReporting *YouTubeReporting `yaml:"youtubereporting,omitempty"`
}

// DocumentAI configures the Document AI client.
type DocumentAI struct {
	Endpoint string `yaml:"endpoint,omitempty"`

	// Parent is used when --parent is not given, for example
	// "projects/my-project/locations/us".
	Parent string `yaml:"parent,omitempty"`
}

// YouTubeReporting configures the YouTube Reporting client.
type YouTubeReporting struct {
	Endpoint string `yaml:"endpoint,omitempty"`

	OnBehalfOfContentOwner string `yaml:"on_behalf_of_content_owner,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Retry: &Retry{
			MaxAttempts: 3,
			Initial:     time.Second,
			Max:         30 * time.Second,
			Multiplier:  2,
		},
		Services: &Services{
			DocumentAI:       &DocumentAI{},
			YouTubeReporting: &YouTubeReporting{},
		},
	}
}

// DefaultPath returns the path of the configuration file in the user
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "apiary", DefaultFile), nil
}

// Read reads the configuration at path and fills in defaults for missing
// sections.
func Read(path string) (*Config, error) {
	cfg, err := yaml.Read[Config](path)
	if err != nil {
		return nil, err
	}
	cfg.fill()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the configuration at path. A missing file is not an error when
// path is the default location; the defaults are returned instead.
func Load(path string) (*Config, error) {
	if path != "" {
		return Read(path)
	}
	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Read(def)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Write writes cfg to path, creating parent directories as needed.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return yaml.Write(path, cfg, "apiary configuration.", "", "Values given on the command line take precedence.")
}

func (c *Config) fill() {
	def := Default()
	if c.Retry == nil {
		c.Retry = def.Retry
	}
	if c.Services == nil {
		c.Services = def.Services
	}
	if c.Services.DocumentAI == nil {
		c.Services.DocumentAI = def.Services.DocumentAI
	}
	if c.Services.YouTubeReporting == nil {
		c.Services.YouTubeReporting = def.Services.YouTubeReporting
	}
}

// Validate reports the first inconsistency in c.
func (c *Config) Validate() error {
	if r := c.Retry; r != nil {
		if r.MaxAttempts < 0 {
			return errInvalidMaxAttempts
		}
		if r.Multiplier != 0 && r.Multiplier < 1 {
			return errInvalidMultiplier
		}
		if r.Max != 0 && r.Initial > r.Max {
			return errInvalidBackoff
		}
	}
	if a := c.Auth; a != nil && a.CredentialsFile != "" && a.TokenCommand != "" {
		return errConflictingAuth
	}
	return nil
}

// Backoff returns the pause schedule described by r.
func (r *Retry) Backoff() gax.Backoff {
	if r == nil {
		return gax.Backoff{}
	}
	return gax.Backoff{
		Initial:    r.Initial,
		Max:        r.Max,
		Multiplier: r.Multiplier,
	}
}
