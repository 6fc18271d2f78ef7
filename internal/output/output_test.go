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

package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/apiary/youtubereporting/v1"
	"google.golang.org/api/googleapi"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, "")
	if err != nil {
		t.Fatal(err)
	}
	job := &youtubereporting.Job{Id: "1", Name: "daily", ForceSendFields: []string{"SystemManaged"}}
	if err := p.Print(job); err != nil {
		t.Fatal(err)
	}
	want := `{
  "id": "1",
  "name": "daily",
  "systemManaged": false
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintTemplate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ids.mustache")
	if err := os.WriteFile(file, []byte("{{#jobs}}{{{id}}};{{/jobs}}"), 0644); err != nil {
		t.Fatal(err)
	}
	resp := &youtubereporting.ListJobsResponse{
		Jobs: []*youtubereporting.Job{
			{Id: "1", Name: "a&b"},
			{Id: "2", Name: "c"},
		},
	}
	for _, test := range []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "literal",
			template: "{{#jobs}}{{id}} {{name}}\n{{/jobs}}",
			want:     "1 a&b\n2 c\n",
		},
		{
			name:     "file",
			template: "@" + file,
			want:     "1;2;",
		},
		{
			name:     "partial",
			template: "{{> jobs}}",
			want:     "1\t\ta&b\n2\t\tc\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			p, err := New(&buf, test.template)
			if err != nil {
				t.Fatal(err)
			}
			if err := p.Print(resp); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); !strings.Contains(got, test.want) {
				t.Errorf("got %q, want it to contain %q", got, test.want)
			}
		})
	}
}

func TestPrintOperationStatus(t *testing.T) {
	var buf bytes.Buffer
	p, err := New(&buf, "operation")
	if err != nil {
		t.Fatal(err)
	}
	op := map[string]any{
		"name":  "projects/p/operations/1",
		"done":  true,
		"error": map[string]any{"code": 3, "message": "bad input"},
	}
	if err := p.Print(op); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"projects/p/operations/1\tdone", "error: INVALID_ARGUMENT: bad input"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("got %q, want it to contain %q", buf.String(), want)
		}
	}
}

func TestNewErrors(t *testing.T) {
	for _, test := range []struct {
		name     string
		template string
	}{
		{"missing file", "@" + filepath.Join(t.TempDir(), "missing")},
		{"unclosed section", "{{#jobs}}"},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := New(&bytes.Buffer{}, test.template); err == nil {
				t.Errorf("New(%q) succeeded, want error", test.template)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	want := []string{"document", "jobs", "operation", "report-types", "reports"}
	if diff := cmp.Diff(want, Builtins()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFields(t *testing.T) {
	for _, test := range []struct {
		in   string
		want googleapi.Field
	}{
		{"id", "id"},
		{"report_type_id", "reportTypeId"},
		{"reportTypeId", "reportTypeId"},
		{"jobs(id, report_type_id),next_page_token", "jobs(id,reportTypeId),nextPageToken"},
		{"pages/form_fields", "pages/formFields"},
	} {
		t.Run(test.in, func(t *testing.T) {
			if diff := cmp.Diff(test.want, Fields(test.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	for _, test := range []struct {
		code int64
		want string
	}{
		{0, "OK"},
		{5, "NOT_FOUND"},
		{14, "UNAVAILABLE"},
	} {
		if got := Status(test.code); got != test.want {
			t.Errorf("Status(%d) = %q, want %q", test.code, got, test.want)
		}
	}
}
