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
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/apiary/documentai/v1beta2"
)

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "invoice.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-1.7"), 0644); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		name     string
		parent   string
		file     string
		wantPath string
		wantIn   *documentai.GoogleCloudDocumentaiV1beta2InputConfig
	}{
		{
			name:     "local file",
			parent:   "projects/p",
			file:     pdf,
			wantPath: "/v1beta2/projects/p/documents:process",
			wantIn: &documentai.GoogleCloudDocumentaiV1beta2InputConfig{
				Contents: base64.StdEncoding.EncodeToString([]byte("%PDF-1.7")),
				MimeType: "application/pdf",
			},
		},
		{
			name:     "cloud storage in a location",
			parent:   "projects/p/locations/eu",
			file:     "gs://bucket/scan.pdf",
			wantPath: "/v1beta2/projects/p/locations/eu/documents:process",
			wantIn: &documentai.GoogleCloudDocumentaiV1beta2InputConfig{
				GcsSource: &documentai.GoogleCloudDocumentaiV1beta2GcsSource{Uri: "gs://bucket/scan.pdf"},
				MimeType:  "application/pdf",
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			a, f, buf, endpoint := newTestApp(t, map[string]http.HandlerFunc{
				"POST " + test.wantPath: reply(`{"text": "Invoice 42", "mimeType": "application/pdf"}`),
			})
			err := a.run(t.Context(), endpoint, "documentai", "process", "--parent", test.parent, "--document-type", "invoice", test.file)
			if err != nil {
				t.Fatal(err)
			}
			if len(f.requests) != 1 {
				t.Fatalf("got %d requests, want 1", len(f.requests))
			}
			var got documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest
			if err := json.Unmarshal([]byte(f.requests[0].Body), &got); err != nil {
				t.Fatal(err)
			}
			want := documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest{
				DocumentType: "invoice",
				InputConfig:  test.wantIn,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
			if doc := decode[documentai.GoogleCloudDocumentaiV1beta2Document](t, buf); doc.Text != "Invoice 42" {
				t.Errorf("got text %q", doc.Text)
			}
		})
	}
}

func TestProcessOrder(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
		files = append(files, path)
	}
	a, _, buf, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"POST /v1beta2/projects/p/documents:process": func(w http.ResponseWriter, r *http.Request) {
			var req documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Error(err)
			}
			text, _ := base64.StdEncoding.DecodeString(req.InputConfig.Contents)
			reply(`{"text": "` + string(text) + `"}`)(w, r)
		},
	})
	args := append([]string{endpoint, "--template", "{{text}}\n", "documentai", "process", "--parent", "projects/p", "--parallel", "3"}, files...)
	if err := a.run(t.Context(), args...); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a.png\nb.png\nc.png\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestProcessParentFromConfig(t *testing.T) {
	a, f, _, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"POST /v1beta2/projects/cfg/locations/us/documents:process": reply(`{}`),
	})
	path := filepath.Join(t.TempDir(), "apiary.yaml")
	if err := os.WriteFile(path, []byte("services:\n  documentai:\n    parent: projects/cfg/locations/us\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := a.run(t.Context(), endpoint, "--config", path, "documentai", "process", "gs://b/x.pdf"); err != nil {
		t.Fatal(err)
	}
	if len(f.requests) != 1 {
		t.Errorf("got %d requests, want 1", len(f.requests))
	}
}

func TestProcessErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		args []string
		want string
	}{
		{"no files", []string{"documentai", "process", "--parent", "projects/p"}, "missing arguments"},
		{"no parent", []string{"documentai", "process", "gs://b/x.pdf"}, "--parent"},
		{"unknown extension", []string{"documentai", "process", "--parent", "projects/p", "gs://b/x.unknownext"}, "--mime-type"},
	} {
		t.Run(test.name, func(t *testing.T) {
			a, _, _, endpoint := newTestApp(t, nil)
			err := a.run(t.Context(), append([]string{endpoint}, test.args...)...)
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got %v, want an error containing %q", err, test.want)
			}
		})
	}
}

func TestBatchProcess(t *testing.T) {
	a, f, buf, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"POST /v1beta2/projects/p/locations/us/documents:batchProcess": reply(`{"name": "projects/p/locations/us/operations/op-1"}`),
	})
	err := a.run(t.Context(), endpoint, "documentai", "batch-process", "--parent", "projects/p/locations/us",
		"--input", "gs://in/a.pdf", "--input", "gs://in/b.pdf", "--output", "gs://out/", "--pages-per-shard", "10")
	if err != nil {
		t.Fatal(err)
	}
	var got documentai.GoogleCloudDocumentaiV1beta2BatchProcessDocumentsRequest
	if err := json.Unmarshal([]byte(f.requests[0].Body), &got); err != nil {
		t.Fatal(err)
	}
	req := func(uri string) *documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest {
		return &documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest{
			Parent: "projects/p/locations/us",
			InputConfig: &documentai.GoogleCloudDocumentaiV1beta2InputConfig{
				GcsSource: &documentai.GoogleCloudDocumentaiV1beta2GcsSource{Uri: uri},
				MimeType:  "application/pdf",
			},
			OutputConfig: &documentai.GoogleCloudDocumentaiV1beta2OutputConfig{
				GcsDestination: &documentai.GoogleCloudDocumentaiV1beta2GcsDestination{Uri: "gs://out/"},
				PagesPerShard:  10,
			},
		}
	}
	want := documentai.GoogleCloudDocumentaiV1beta2BatchProcessDocumentsRequest{
		Requests: []*documentai.GoogleCloudDocumentaiV1beta2ProcessDocumentRequest{req("gs://in/a.pdf"), req("gs://in/b.pdf")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "operations/op-1") {
		t.Errorf("output %q does not name the operation", buf)
	}
}

func TestBatchProcessLocalInput(t *testing.T) {
	a, f, _, endpoint := newTestApp(t, nil)
	err := a.run(t.Context(), endpoint, "documentai", "batch-process", "--parent", "projects/p",
		"--input", "local.pdf", "--output", "gs://out/")
	if err == nil {
		t.Fatal("expected an error for a local input")
	}
	if len(f.requests) != 0 {
		t.Errorf("got %d requests, want none", len(f.requests))
	}
}

func TestOperationsGet(t *testing.T) {
	a, f, buf, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"GET /v1beta2/projects/p/operations/op-1": reply(`{"name": "projects/p/operations/op-1", "done": true, "error": {"code": 3, "message": "bad input"}}`),
	})
	if err := a.run(t.Context(), endpoint, "--template", "operation", "documentai", "operations", "get", "projects/p/operations/op-1"); err != nil {
		t.Fatal(err)
	}
	if f.requests[0].Path != "/v1beta2/projects/p/operations/op-1" {
		t.Errorf("got path %q", f.requests[0].Path)
	}
	if !strings.Contains(buf.String(), "INVALID_ARGUMENT") {
		t.Errorf("output %q does not contain the status name", buf)
	}
}

func TestOperationsWait(t *testing.T) {
	var polls atomic.Int32
	a, _, buf, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"GET /v1beta2/projects/p/locations/us/operations/op-1": func(w http.ResponseWriter, r *http.Request) {
			if polls.Add(1) < 3 {
				reply(`{"name": "projects/p/locations/us/operations/op-1"}`)(w, r)
				return
			}
			reply(`{"name": "projects/p/locations/us/operations/op-1", "done": true, "response": {"@type": "x"}}`)(w, r)
		},
	})
	if err := a.run(t.Context(), endpoint, "documentai", "operations", "wait", "projects/p/locations/us/operations/op-1"); err != nil {
		t.Fatal(err)
	}
	if got := polls.Load(); got != 3 {
		t.Errorf("got %d polls, want 3", got)
	}
	op := decode[documentai.GoogleLongrunningOperation](t, buf)
	if !op.Done {
		t.Errorf("printed operation is not done: %s", buf)
	}
}

func TestOperationsWaitFailed(t *testing.T) {
	a, _, _, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"GET /v1beta2/projects/p/operations/op-1": reply(`{"done": true, "error": {"code": 5, "message": "no such document"}}`),
	})
	err := a.run(t.Context(), endpoint, "documentai", "operations", "wait", "projects/p/operations/op-1")
	if err == nil || !strings.Contains(err.Error(), "NOT_FOUND: no such document") {
		t.Errorf("got %v, want a NOT_FOUND error", err)
	}
}

func TestOperationsWaitTimeout(t *testing.T) {
	a, _, _, endpoint := newTestApp(t, map[string]http.HandlerFunc{
		"GET /v1beta2/projects/p/operations/op-1": reply(`{"name": "projects/p/operations/op-1"}`),
	})
	err := a.run(t.Context(), endpoint, "documentai", "operations", "wait", "--timeout", "20ms", "projects/p/operations/op-1")
	if err == nil {
		t.Fatal("expected a timeout error")
	}
}
