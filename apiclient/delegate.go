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
	"net/http"
	"time"

	"github.com/googleapis/gax-go/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// MethodInfo identifies the remote method a call is about to execute.
type MethodInfo struct {
	// ID is the discovery id of the method, such as
	// "youtubereporting.jobs.list".
	ID string

	// HTTPMethod is the HTTP verb used for the method.
	HTTPMethod string
}

// Retry is the answer a Delegate gives after a failed attempt.
type Retry struct {
	// Retry reports whether the call should be attempted again.
	Retry bool

	// Pause is how long to wait before the next attempt.
	Pause time.Duration
}

// Abort stops the call and returns the last error to the caller.
var Abort = Retry{}

// After returns a Retry that waits d before the next attempt.
func After(d time.Duration) Retry {
	return Retry{Retry: true, Pause: d}
}

// Delegate observes a single call as it executes and decides whether failed
// attempts are retried. A Delegate is used by one call at a time.
//
// Embed DefaultDelegate to implement only the methods you need.
type Delegate interface {
	// Begin is called once, before anything else happens.
	Begin(info MethodInfo)

	// Token is called when the authenticator fails to produce a token. It
	// may return a replacement token; ok false aborts the call with a
	// *MissingTokenError.
	Token(err error) (tok *oauth2.Token, ok bool)

	// PreRequest is called before every attempt is sent.
	PreRequest()

	// HTTPError is called when an attempt fails without a response.
	HTTPError(err error) Retry

	// HTTPFailure is called when an attempt returns a non-2xx status. The
	// response body has already been read into apiErr.Body.
	HTTPFailure(resp *http.Response, apiErr *googleapi.Error) Retry

	// ResponseJSONDecodeError is called when a successful response cannot
	// be decoded.
	ResponseJSONDecodeError(body []byte, err error)

	// Finished is called once, when the call is done.
	Finished(success bool)
}

// DefaultDelegate implements Delegate and never retries.
type DefaultDelegate struct{}

var _ Delegate = DefaultDelegate{}

// Begin implements Delegate.
func (DefaultDelegate) Begin(MethodInfo) {}

// Token implements Delegate.
func (DefaultDelegate) Token(error) (*oauth2.Token, bool) { return nil, false }

// PreRequest implements Delegate.
func (DefaultDelegate) PreRequest() {}

// HTTPError implements Delegate.
func (DefaultDelegate) HTTPError(error) Retry { return Abort }

// HTTPFailure implements Delegate.
func (DefaultDelegate) HTTPFailure(*http.Response, *googleapi.Error) Retry { return Abort }

// ResponseJSONDecodeError implements Delegate.
func (DefaultDelegate) ResponseJSONDecodeError([]byte, error) {}

// Finished implements Delegate.
func (DefaultDelegate) Finished(bool) {}

// BackoffDelegate retries transport errors, 429 and 5xx responses following
// an exponential backoff schedule. A BackoffDelegate keeps per-call state and
// must not be shared between concurrent calls.
type BackoffDelegate struct {
	DefaultDelegate

	// Backoff is the schedule used between attempts. The zero value uses
	// the gax defaults.
	Backoff gax.Backoff

	// MaxAttempts bounds the number of attempts, including the first one.
	// Values below 1 mean a single attempt.
	MaxAttempts int

	attempts int
	bo       gax.Backoff
}

// NewBackoffDelegate returns a BackoffDelegate that makes at most
// maxAttempts attempts.
func NewBackoffDelegate(maxAttempts int, bo gax.Backoff) *BackoffDelegate {
	return &BackoffDelegate{Backoff: bo, MaxAttempts: maxAttempts}
}

// Begin implements Delegate and resets the schedule.
func (d *BackoffDelegate) Begin(MethodInfo) {
	d.attempts = 0
	d.bo = gax.Backoff{
		Initial:    d.Backoff.Initial,
		Max:        d.Backoff.Max,
		Multiplier: d.Backoff.Multiplier,
	}
}

// PreRequest implements Delegate.
func (d *BackoffDelegate) PreRequest() {
	d.attempts++
}

// HTTPError implements Delegate.
func (d *BackoffDelegate) HTTPError(err error) Retry {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Abort
	}
	return d.next()
}

// HTTPFailure implements Delegate.
func (d *BackoffDelegate) HTTPFailure(_ *http.Response, apiErr *googleapi.Error) Retry {
	if !Retryable(apiErr.Code) {
		return Abort
	}
	return d.next()
}

// Attempts returns the number of attempts made by the current call.
func (d *BackoffDelegate) Attempts() int {
	return d.attempts
}

func (d *BackoffDelegate) next() Retry {
	if d.attempts >= d.MaxAttempts {
		return Abort
	}
	return After(d.bo.Pause())
}

// Retryable reports whether an HTTP status code is worth retrying.
func Retryable(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
