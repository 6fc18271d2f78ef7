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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/apiary/apiclient"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// recorder is a delegate that records the events of a call and retries a
// fixed number of times.
type recorder struct {
	apiclient.DefaultDelegate
	retries  int
	fallback *oauth2.Token
	events   []string
}

func (r *recorder) Begin(info apiclient.MethodInfo) {
	r.events = append(r.events, "begin "+info.ID)
}

func (r *recorder) Token(err error) (*oauth2.Token, bool) {
	r.events = append(r.events, "token")
	return r.fallback, r.fallback != nil
}

func (r *recorder) PreRequest() {
	r.events = append(r.events, "pre")
}

func (r *recorder) HTTPError(err error) apiclient.Retry {
	r.events = append(r.events, "http error")
	return r.next()
}

func (r *recorder) HTTPFailure(resp *http.Response, apiErr *googleapi.Error) apiclient.Retry {
	r.events = append(r.events, fmt.Sprintf("failure %d", apiErr.Code))
	return r.next()
}

func (r *recorder) ResponseJSONDecodeError(body []byte, err error) {
	r.events = append(r.events, "decode error")
}

func (r *recorder) Finished(success bool) {
	r.events = append(r.events, fmt.Sprintf("finished %v", success))
}

func (r *recorder) next() apiclient.Retry {
	if r.retries == 0 {
		return apiclient.Abort
	}
	r.retries--
	return apiclient.After(time.Duration(r.retries+1) * time.Second)
}

var testMethod = &Method{
	ID:           "test.things.get",
	HTTPMethod:   http.MethodGet,
	DefaultScope: "scope/default",
	Reserved:     []string{"name", "pageToken"},
}

func fakeSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var slept []time.Duration
	old := sleep
	sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	t.Cleanup(func() { sleep = old })
	return &slept
}

func newRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatal(err)
	}
	req.Header = SetHeaders("test-agent", "", nil)
	return req
}

func TestBeginFieldClash(t *testing.T) {
	for _, test := range []struct {
		name  string
		param string
	}{
		{"alt", "alt"},
		{"path parameter", "name"},
		{"query setter", "pageToken"},
	} {
		t.Run(test.name, func(t *testing.T) {
			dlg := &recorder{}
			c := &Call{}
			c.Param(test.param, "x")
			c.SetDelegate(dlg)
			_, err := c.Begin(testMethod, URLParams{})
			var fc *apiclient.FieldClashError
			if !errors.As(err, &fc) {
				t.Fatalf("Begin() error = %v, want FieldClashError", err)
			}
			if fc.Param != test.param {
				t.Errorf("Param = %q, want %q", fc.Param, test.param)
			}
			want := []string{"begin test.things.get", "finished false"}
			if diff := cmp.Diff(want, dlg.events); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBeginParamsAndScopes(t *testing.T) {
	c := &Call{}
	c.Param("quotaUser", "first")
	c.Param("prettyPrint", "false")
	c.Param("quotaUser", "second")
	u := URLParams{}
	x, err := c.Begin(testMethod, u)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(URLParams{"quotaUser": {"second"}, "prettyPrint": {"false"}}, u); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"scope/default"}, x.Scopes); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	c.AddScope("scope/a")
	c.AddScope("scope/a")
	x, err = c.Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"scope/a"}, x.Scopes); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSendRetries(t *testing.T) {
	slept := fakeSleep(t)
	var calls atomic.Int32
	var bodies, clients []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		clients = append(clients, r.Header.Get("X-Goog-Api-Client"))
		if r.Header.Get("Authorization") != "Bearer secret" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if calls.Add(1) < 3 {
			http.Error(w, `{"error":{"code":503,"message":"try later"}}`, http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"name":"ok"}`)
	}))
	defer srv.Close()

	dlg := &recorder{retries: 2}
	c := &Call{}
	c.SetDelegate(dlg)
	x, err := c.Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	var gotScopes []string
	auth := apiclient.AuthenticatorFunc(func(_ context.Context, scopes []string) (*oauth2.Token, error) {
		gotScopes = scopes
		return &oauth2.Token{AccessToken: "secret"}, nil
	})
	res, err := x.Send(t.Context(), srv.Client(), auth, newRequest(t, http.MethodPost, srv.URL, []byte(`{"a":1}`)))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var got struct {
		Name string `json:"name"`
	}
	if err := x.Decode(&got, res); err != nil {
		t.Fatal(err)
	}
	if got.Name != "ok" {
		t.Errorf("Name = %q, want %q", got.Name, "ok")
	}

	if diff := cmp.Diff([]string{`{"a":1}`, `{"a":1}`, `{"a":1}`}, bodies); diff != "" {
		t.Errorf("bodies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]time.Duration{2 * time.Second, time.Second}, *slept); diff != "" {
		t.Errorf("sleeps mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"scope/default"}, gotScopes); diff != "" {
		t.Errorf("scopes mismatch (-want +got):\n%s", diff)
	}
	wantEvents := []string{
		"begin test.things.get",
		"pre", "failure 503",
		"pre", "failure 503",
		"pre",
		"finished true",
	}
	if diff := cmp.Diff(wantEvents, dlg.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	for i, h := range clients {
		want := fmt.Sprintf("gccl-attempt-count/%d %s", i+1, googAPIClient)
		if !strings.HasPrefix(h, "gccl-invocation-id/") || !strings.HasSuffix(h, want) {
			t.Errorf("x-goog-api-client[%d] = %q, want suffix %q", i, h, want)
		}
	}
	if id0, id1 := strings.Fields(clients[0])[0], strings.Fields(clients[1])[0]; id0 != id1 {
		t.Errorf("invocation id changed between attempts: %q != %q", id0, id1)
	}
}

func TestSendAbort(t *testing.T) {
	fakeSleep(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"message":"no such job"}}`)
	}))
	defer srv.Close()

	dlg := &recorder{retries: 1}
	x, err := (&Call{delegate: dlg}).Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = x.Send(t.Context(), srv.Client(), nil, newRequest(t, http.MethodGet, srv.URL, nil))
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Send() error = %v, want *googleapi.Error", err)
	}
	if apiErr.Code != http.StatusNotFound || apiErr.Message != "no such job" {
		t.Errorf("got code %d message %q", apiErr.Code, apiErr.Message)
	}
	want := []string{
		"begin test.things.get",
		"pre", "failure 404",
		"pre", "failure 404",
		"finished false",
	}
	if diff := cmp.Diff(want, dlg.events); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSendNotModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	x, err := (&Call{}).Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = x.Send(t.Context(), srv.Client(), nil, newRequest(t, http.MethodGet, srv.URL, nil))
	if !googleapi.IsNotModified(err) {
		t.Errorf("Send() error = %v, want not modified", err)
	}
}

func TestSendTransportError(t *testing.T) {
	slept := fakeSleep(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	dlg := &recorder{retries: 1}
	x, err := (&Call{delegate: dlg}).Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = x.Send(t.Context(), http.DefaultClient, nil, newRequest(t, http.MethodGet, url, nil))
	var te *apiclient.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Send() error = %v, want TransportError", err)
	}
	if len(*slept) != 1 {
		t.Errorf("slept %d times, want 1", len(*slept))
	}
	want := []string{
		"begin test.things.get",
		"pre", "http error",
		"pre", "http error",
		"finished false",
	}
	if diff := cmp.Diff(want, dlg.events); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSendCanceledDuringPause(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(t.Context())
	old := sleep
	sleep = func(context.Context, time.Duration) error {
		cancel()
		return context.Canceled
	}
	t.Cleanup(func() { sleep = old })

	dlg := &recorder{retries: 5}
	x, err := (&Call{delegate: dlg}).Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = x.Send(ctx, srv.Client(), nil, newRequest(t, http.MethodGet, srv.URL, nil))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Send() error = %v, want context.Canceled", err)
	}
	if got := dlg.events[len(dlg.events)-1]; got != "finished false" {
		t.Errorf("last event = %q, want %q", got, "finished false")
	}
}

func TestSendMissingToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer fallback" {
			t.Errorf("Authorization = %q", got)
		}
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	failing := apiclient.AuthenticatorFunc(func(context.Context, []string) (*oauth2.Token, error) {
		return nil, errors.New("no credentials")
	})
	for _, test := range []struct {
		name     string
		fallback *oauth2.Token
		wantErr  bool
	}{
		{"no fallback", nil, true},
		{"delegate fallback", &oauth2.Token{AccessToken: "fallback"}, false},
	} {
		t.Run(test.name, func(t *testing.T) {
			calls.Store(0)
			dlg := &recorder{fallback: test.fallback}
			x, err := (&Call{delegate: dlg}).Begin(testMethod, URLParams{})
			if err != nil {
				t.Fatal(err)
			}
			res, err := x.Send(t.Context(), srv.Client(), failing, newRequest(t, http.MethodGet, srv.URL, nil))
			if test.wantErr {
				var mt *apiclient.MissingTokenError
				if !errors.As(err, &mt) {
					t.Fatalf("Send() error = %v, want MissingTokenError", err)
				}
				if calls.Load() != 0 {
					t.Errorf("server called %d times, want 0", calls.Load())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			res.Body.Close()
		})
	}
}

func TestDecodeError(t *testing.T) {
	dlg := &recorder{}
	x, err := (&Call{delegate: dlg}).Begin(testMethod, URLParams{})
	if err != nil {
		t.Fatal(err)
	}
	res := &http.Response{Body: io.NopCloser(strings.NewReader("<html>oops</html>"))}
	var target map[string]any
	err = x.Decode(&target, res)
	var je *apiclient.JSONDecodeError
	if !errors.As(err, &je) {
		t.Fatalf("Decode() error = %v, want JSONDecodeError", err)
	}
	if string(je.Body) != "<html>oops</html>" {
		t.Errorf("Body = %q", je.Body)
	}
	want := []string{"begin test.things.get", "decode error", "finished false"}
	if diff := cmp.Diff(want, dlg.events); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
