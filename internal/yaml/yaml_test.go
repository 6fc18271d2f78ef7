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

package yaml

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testConfig struct {
	Name    string        `yaml:"name"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Scopes  StringSlice   `yaml:"scopes,omitempty"`
}

func TestUnmarshal(t *testing.T) {
	got, err := Unmarshal[testConfig]([]byte("name: test\ntimeout: 90s\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := &testConfig{Name: "test", Timeout: 90 * time.Second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalError(t *testing.T) {
	_, err := Unmarshal[testConfig]([]byte("name: [invalid"))
	if err == nil {
		t.Error("Unmarshal() expected error for invalid YAML")
	}
}

func TestMarshal(t *testing.T) {
	input := &testConfig{Name: "test", Timeout: time.Minute, Scopes: StringSlice{"a"}}
	data, err := Marshal(input)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal[testConfig](data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(input, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadWrite(t *testing.T) {
	want := &testConfig{Name: "test"}
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := Write(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Read[testConfig](path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite(t *testing.T) {
	for _, test := range []struct {
		name    string
		comment []string
		want    string
	}{
		{
			name: "no comment",
			want: "name: test\n",
		},
		{
			name:    "comment",
			comment: []string{"apiary configuration", "", "See apiary config init."},
			want:    "# apiary configuration\n#\n# See apiary config init.\n\nname: test\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.yaml")
			if err := Write(path, &testConfig{Name: "test"}, test.comment...); err != nil {
				t.Fatal(err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadError(t *testing.T) {
	_, err := Read[testConfig]("/nonexistent/path/file.yaml")
	if err == nil {
		t.Error("Read() expected error for nonexistent file")
	}
}

func TestWriteError(t *testing.T) {
	err := Write("/nonexistent/path/file.yaml", &testConfig{Name: "test"})
	if err == nil {
		t.Error("Write() expected error for invalid path")
	}
}

func TestStringSlice(t *testing.T) {
	for _, test := range []struct {
		name string
		in   StringSlice
		want bool
	}{
		{"nil", nil, true},
		{"empty", StringSlice{}, false},
		{"values", StringSlice{"a"}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, test.in.IsZero()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
