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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/apiary/internal/yaml"
	"github.com/googleapis/gax-go/v2"
)

func TestRead(t *testing.T) {
	for _, test := range []struct {
		name string
		path string
		want *Config
	}{
		{
			name: "full",
			path: "testdata/apiary.yaml",
			want: &Config{
				UserAgent: "report-sync/1.0",
				Retry: &Retry{
					MaxAttempts: 5,
					Initial:     500 * time.Millisecond,
					Max:         time.Minute,
					Multiplier:  1.5,
				},
				Auth: &Auth{
					TokenCommand: "gcloud auth print-access-token",
					Scopes:       yaml.StringSlice{"https://www.googleapis.com/auth/yt-analytics.readonly"},
				},
				Services: &Services{
					DocumentAI: &DocumentAI{Parent: "projects/my-project/locations/us"},
					YouTubeReporting: &YouTubeReporting{
						Endpoint:               "http://localhost:8080/",
						OnBehalfOfContentOwner: "owner-1",
					},
				},
			},
		},
		{
			name: "defaults fill missing sections",
			path: "testdata/partial.yaml",
			want: func() *Config {
				c := Default()
				c.UserAgent = "partial"
				return c
			}(),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Read(test.path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadInvalid(t *testing.T) {
	_, err := Read("testdata/conflict.yaml")
	if !errors.Is(err, errConflictingAuth) {
		t.Errorf("got error %v, want %v", err, errConflictingAuth)
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:   "default",
			config: Default(),
		},
		{
			name:   "empty",
			config: &Config{},
		},
		{
			name:    "negative attempts",
			config:  &Config{Retry: &Retry{MaxAttempts: -1}},
			wantErr: errInvalidMaxAttempts,
		},
		{
			name:    "shrinking multiplier",
			config:  &Config{Retry: &Retry{Multiplier: 0.5}},
			wantErr: errInvalidMultiplier,
		},
		{
			name:    "initial above max",
			config:  &Config{Retry: &Retry{Initial: time.Minute, Max: time.Second}},
			wantErr: errInvalidBackoff,
		},
		{
			name:    "two token sources",
			config:  &Config{Auth: &Auth{CredentialsFile: "a.json", TokenCommand: "b"}},
			wantErr: errConflictingAuth,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			if !errors.Is(err, test.wantErr) {
				t.Errorf("got error %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFile)
	want := Default()
	want.UserAgent = "ua"
	want.Services.YouTubeReporting.OnBehalfOfContentOwner = "owner"
	if err := Write(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	got, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() of an explicit missing file = %v, want %v", err, os.ErrNotExist)
	}
}

func TestBackoff(t *testing.T) {
	for _, test := range []struct {
		name  string
		retry *Retry
		want  gax.Backoff
	}{
		{
			name: "nil",
			want: gax.Backoff{},
		},
		{
			name:  "values",
			retry: &Retry{Initial: time.Second, Max: time.Minute, Multiplier: 3},
			want:  gax.Backoff{Initial: time.Second, Max: time.Minute, Multiplier: 3},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := test.retry.Backoff()
			if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(gax.Backoff{})); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
