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

package gensupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/googleapi"
)

func TestURLParams(t *testing.T) {
	u := URLParams{}
	u.Set("pageSize", "10")
	u.Set("alt", "json")
	u.Set("alt", "media")
	u.SetMulti("fields", []string{"a", "b"})

	if got := u.Get("alt"); got != "media" {
		t.Errorf("Get(alt) = %q, want %q", got, "media")
	}
	if got := u.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	want := "alt=media&fields=a&fields=b&pageSize=10"
	if got := u.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestSetOptions(t *testing.T) {
	u := URLParams{}
	SetOptions(u,
		googleapi.QuotaUser("alice"),
		googleapi.QueryParameter("labels", "x", "y"),
	)
	want := URLParams{
		"quotaUser": {"alice"},
		"labels":    {"x", "y"},
	}
	if diff := cmp.Diff(want, u); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSetHeaders(t *testing.T) {
	user := map[string][]string{"X-Custom": {"1"}}
	h := SetHeaders("agent/1", "application/json", user, "If-None-Match", "etag")
	for _, test := range []struct {
		key  string
		want string
	}{
		{"User-Agent", "agent/1"},
		{"Content-Type", "application/json"},
		{"X-Custom", "1"},
		{"If-None-Match", "etag"},
		{"X-Goog-Api-Client", googAPIClient},
	} {
		if got := h.Get(test.key); got != test.want {
			t.Errorf("%s = %q, want %q", test.key, got, test.want)
		}
	}
}
