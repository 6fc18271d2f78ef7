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
	"runtime/debug"
	"testing"
)

func TestVersion(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "1234567890001234"},
		{Key: "vcs.time", Value: "2026-03-02T08:15:00Z"},
	}
	for _, test := range []struct {
		name      string
		want      string
		buildinfo *debug.BuildInfo
	}{
		{
			name:      "installed module",
			want:      "v0.3.1",
			buildinfo: &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
		},
		{
			name:      "no build information",
			want:      versionNotAvailable,
			buildinfo: &debug.BuildInfo{},
		},
		{
			name: "devel build from a checkout",
			want: "v0.1.1-0.20260302081500-123456789000",
			buildinfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: vcs,
			},
		},
		{
			name: "modified checkout",
			want: versionNotAvailable,
			buildinfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.1.1-0.20260302081500-123456789000+dirty"},
				Settings: vcs,
			},
		},
		{
			name:      "invalid module version",
			want:      versionNotAvailable,
			buildinfo: &debug.BuildInfo{Main: debug.Module{Version: "latest"}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := version(test.buildinfo); got != test.want {
				t.Errorf("got %s; want %s", got, test.want)
			}
		})
	}
}

func TestNewPseudoVersion(t *testing.T) {
	for _, test := range []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{
			name: "revision and time",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef0123456789"},
				{Key: "vcs.time", Value: "2026-01-25T19:57:54Z"},
			},
			want: "v0.1.1-0.20260125195754-abcdef012345",
		},
		{
			name:     "only revision",
			settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			want:     versionNotAvailable,
		},
		{
			name: "unparsable time",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef0123456789"},
				{Key: "vcs.time", Value: "yesterday"},
			},
			want: versionNotAvailable,
		},
		{
			name: "modified working tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef0123456789"},
				{Key: "vcs.time", Value: "2026-01-25T19:57:54Z"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: versionNotAvailable,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := newPseudoVersion(&debug.BuildInfo{Settings: test.settings}); got != test.want {
				t.Errorf("got %s; want %s", got, test.want)
			}
		})
	}
}
