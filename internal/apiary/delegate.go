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
	"log/slog"
	"net/http"
	"time"

	"github.com/googleapis/apiary/apiclient"
	"github.com/googleapis/apiary/internal/config"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// loggingDelegate logs every decision of the delegate it wraps at debug
// level.
type loggingDelegate struct {
	next   apiclient.Delegate
	method apiclient.MethodInfo
	start  time.Time
}

// newDelegate returns the delegate for one call under the retry policy r.
func newDelegate(r *config.Retry) apiclient.Delegate {
	var next apiclient.Delegate = apiclient.DefaultDelegate{}
	if r != nil && r.MaxAttempts > 1 {
		next = apiclient.NewBackoffDelegate(r.MaxAttempts, r.Backoff())
	}
	return &loggingDelegate{next: next}
}

func (d *loggingDelegate) Begin(m apiclient.MethodInfo) {
	d.method = m
	d.start = time.Now()
	slog.Debug("call started", "method", m.ID, "http_method", m.HTTPMethod)
	d.next.Begin(m)
}

func (d *loggingDelegate) Token(err error) (*oauth2.Token, bool) {
	slog.Debug("token unavailable", "method", d.method.ID, "err", err)
	return d.next.Token(err)
}

func (d *loggingDelegate) PreRequest() {
	d.next.PreRequest()
}

func (d *loggingDelegate) HTTPError(err error) apiclient.Retry {
	r := d.next.HTTPError(err)
	slog.Debug("transport error", "method", d.method.ID, "err", err, "retry", r.Retry, "pause", r.Pause)
	return r
}

func (d *loggingDelegate) HTTPFailure(res *http.Response, err *googleapi.Error) apiclient.Retry {
	r := d.next.HTTPFailure(res, err)
	slog.Debug("request failed", "method", d.method.ID, "status", res.StatusCode, "message", err.Message, "retry", r.Retry, "pause", r.Pause)
	return r
}

func (d *loggingDelegate) ResponseJSONDecodeError(body []byte, err error) {
	slog.Debug("response not decodable", "method", d.method.ID, "err", err, "body_bytes", len(body))
	d.next.ResponseJSONDecodeError(body, err)
}

func (d *loggingDelegate) Finished(ok bool) {
	slog.Debug("call finished", "method", d.method.ID, "ok", ok, "elapsed", time.Since(d.start))
	d.next.Finished(ok)
}
