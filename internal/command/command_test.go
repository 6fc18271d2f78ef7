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

package command

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOutput(t *testing.T) {
	RequireCommand(t, "sh")
	got, err := Output(t.Context(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("hello\n", string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputError(t *testing.T) {
	RequireCommand(t, "sh")
	_, err := Output(t.Context(), "sh", "-c", "echo bad-bad-bad >&2; exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "bad-bad-bad") {
		t.Errorf("error should include stderr, got: %v", err)
	}
}

func TestOutputWithEnv_SetsVariable(t *testing.T) {
	RequireCommand(t, "sh")
	const (
		name  = "APIARY_TEST_VAR"
		value = "value"
	)
	got, err := OutputWithEnv(t.Context(), map[string]string{name: value},
		"sh", "-c", fmt.Sprintf("printf %%s \"$%s\"", name))
	if err != nil {
		t.Fatalf("OutputWithEnv() = %v, want %v", err, nil)
	}
	if diff := cmp.Diff(value, string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputWithEnv_VariableNotSet(t *testing.T) {
	RequireCommand(t, "sh")
	const name = "APIARY_TEST_VAR_UNSET"
	_, err := OutputWithEnv(t.Context(), map[string]string{}, "sh", "-c", fmt.Sprintf("test -n \"$%s\"", name))
	if err == nil {
		t.Fatalf("OutputWithEnv() = %v, want non-nil", err)
	}
}

func TestSplit(t *testing.T) {
	for _, test := range []struct {
		name     string
		line     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{
			name:     "program only",
			line:     "print-token",
			wantName: "print-token",
			wantArgs: []string{},
		},
		{
			name:     "with arguments",
			line:     "  gcloud auth   print-access-token ",
			wantName: "gcloud",
			wantArgs: []string{"auth", "print-access-token"},
		},
		{
			name:    "empty",
			line:    "   ",
			wantErr: errEmptyCommand,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			gotName, gotArgs, err := Split(test.line)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("got error %v, want %v", err, test.wantErr)
			}
			if diff := cmp.Diff(test.wantName, gotName); diff != "" {
				t.Errorf("name mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.wantArgs, gotArgs); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
