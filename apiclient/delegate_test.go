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

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/googleapi"
)

func TestDefaultDelegateNeverRetries(t *testing.T) {
	var d DefaultDelegate
	if got := d.HTTPError(errors.New("boom")); got.Retry {
		t.Errorf("HTTPError() = %+v, want Abort", got)
	}
	if got := d.HTTPFailure(nil, &googleapi.Error{Code: http.StatusServiceUnavailable}); got.Retry {
		t.Errorf("HTTPFailure() = %+v, want Abort", got)
	}
	if tok, ok := d.Token(errors.New("no creds")); ok || tok != nil {
		t.Errorf("Token() = %v, %v; want nil, false", tok, ok)
	}
}

func TestBackoffDelegateHTTPFailure(t *testing.T) {
	for _, test := range []struct {
		name string
		code int
		want bool
	}{
		{"too many requests", http.StatusTooManyRequests, true},
		{"internal", http.StatusInternalServerError, true},
		{"bad gateway", http.StatusBadGateway, true},
		{"unavailable", http.StatusServiceUnavailable, true},
		{"gateway timeout", http.StatusGatewayTimeout, true},
		{"bad request", http.StatusBadRequest, false},
		{"not found", http.StatusNotFound, false},
		{"forbidden", http.StatusForbidden, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			d := NewBackoffDelegate(3, gax.Backoff{Initial: time.Millisecond})
			d.Begin(MethodInfo{ID: "test.get", HTTPMethod: http.MethodGet})
			d.PreRequest()
			got := d.HTTPFailure(nil, &googleapi.Error{Code: test.code})
			if got.Retry != test.want {
				t.Errorf("HTTPFailure(%d).Retry = %v, want %v", test.code, got.Retry, test.want)
			}
		})
	}
}

func TestBackoffDelegateMaxAttempts(t *testing.T) {
	d := NewBackoffDelegate(3, gax.Backoff{Initial: time.Millisecond, Max: 5 * time.Millisecond})
	d.Begin(MethodInfo{ID: "test.get", HTTPMethod: http.MethodGet})
	var retries int
	for {
		d.PreRequest()
		r := d.HTTPError(errors.New("connection reset"))
		if !r.Retry {
			break
		}
		if r.Pause <= 0 || r.Pause > 5*time.Millisecond {
			t.Errorf("Pause = %v, want in (0, 5ms]", r.Pause)
		}
		retries++
	}
	if retries != 2 {
		t.Errorf("retries = %d, want 2", retries)
	}
	if got := d.Attempts(); got != 3 {
		t.Errorf("Attempts() = %d, want 3", got)
	}

	d.Begin(MethodInfo{ID: "test.get", HTTPMethod: http.MethodGet})
	if got := d.Attempts(); got != 0 {
		t.Errorf("Attempts() after Begin = %d, want 0", got)
	}
}

func TestBackoffDelegateContextErrors(t *testing.T) {
	for _, err := range []error{
		context.Canceled,
		fmt.Errorf("get: %w", context.DeadlineExceeded),
	} {
		d := NewBackoffDelegate(5, gax.Backoff{})
		d.Begin(MethodInfo{})
		d.PreRequest()
		if got := d.HTTPError(err); got.Retry {
			t.Errorf("HTTPError(%v) = %+v, want Abort", err, got)
		}
	}
}

func TestAfter(t *testing.T) {
	got := After(2 * time.Second)
	if !got.Retry || got.Pause != 2*time.Second {
		t.Errorf("After(2s) = %+v", got)
	}
	if Abort.Retry {
		t.Errorf("Abort.Retry = true")
	}
}
