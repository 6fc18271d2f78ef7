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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/googleapis/apiary/apiclient"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/googleapi"
)

// sleep is replaced in tests.
var sleep = gax.Sleep

// Method describes a remote method.
type Method struct {
	ID         string
	HTTPMethod string

	// DefaultScope is used when the caller adds no scope.
	DefaultScope string

	// Reserved lists the query and path parameters the call builder sets
	// itself. They cannot be passed as additional parameters.
	Reserved []string
}

type param struct {
	name, value string
}

// Call holds the state every call builder shares: additional query
// parameters, OAuth2 scopes and the delegate.
type Call struct {
	params   []param
	scopes   []string
	delegate apiclient.Delegate
}

// Param records an additional query parameter. A later value for the same
// name replaces the earlier one.
func (c *Call) Param(name, value string) {
	for i := range c.params {
		if c.params[i].name == name {
			c.params[i].value = value
			return
		}
	}
	c.params = append(c.params, param{name, value})
}

// AddScope adds an OAuth2 scope to the call.
func (c *Call) AddScope(scope string) {
	if !slices.Contains(c.scopes, scope) {
		c.scopes = append(c.scopes, scope)
	}
}

// SetDelegate sets the delegate of the call. A nil delegate never retries.
func (c *Call) SetDelegate(d apiclient.Delegate) {
	c.delegate = d
}

// Begin starts one execution of the call. It tells the delegate, rejects
// additional parameters that clash with reserved ones and copies the rest
// into u.
func (c *Call) Begin(m *Method, u URLParams) (*Exec, error) {
	var dlg apiclient.Delegate = apiclient.DefaultDelegate{}
	if c.delegate != nil {
		dlg = c.delegate
	}
	dlg.Begin(apiclient.MethodInfo{ID: m.ID, HTTPMethod: m.HTTPMethod})
	x := &Exec{Delegate: dlg, Scopes: slices.Clone(c.scopes)}
	if len(x.Scopes) == 0 && m.DefaultScope != "" {
		x.Scopes = []string{m.DefaultScope}
	}
	for _, p := range c.params {
		if p.name == "alt" || slices.Contains(m.Reserved, p.name) {
			return nil, x.fail(&apiclient.FieldClashError{Param: p.name})
		}
	}
	for _, p := range c.params {
		u.Set(p.name, p.value)
	}
	return x, nil
}

// Exec is a single execution of a call.
type Exec struct {
	Delegate apiclient.Delegate
	Scopes   []string
}

// Send sends req until it succeeds or the delegate gives up. When auth is
// nil the client is expected to authorize requests itself.
//
// The returned response has a 2xx status. Any other status is returned as a
// *googleapi.Error, including 304 Not Modified.
func (x *Exec) Send(ctx context.Context, client *http.Client, auth apiclient.Authenticator, req *http.Request) (*http.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	invocationID := uuid.New().String()
	baseXGoogHeader := req.Header.Get("X-Goog-Api-Client")
	for attempt := 1; ; attempt++ {
		r := req.Clone(ctx)
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, x.fail(err)
			}
			r.Body = body
		}
		invocation := fmt.Sprintf("gccl-invocation-id/%s gccl-attempt-count/%d", invocationID, attempt)
		r.Header.Set("X-Goog-Api-Client", strings.TrimSpace(invocation+" "+baseXGoogHeader))
		if auth != nil {
			tok, err := auth.Token(ctx, x.Scopes)
			if err != nil {
				var ok bool
				tok, ok = x.Delegate.Token(err)
				if !ok || tok == nil {
					return nil, x.fail(&apiclient.MissingTokenError{Err: err})
				}
			}
			tok.SetAuthHeader(r)
		}

		x.Delegate.PreRequest()
		res, err := client.Do(r)
		if err != nil {
			if rt := x.Delegate.HTTPError(err); rt.Retry && ctx.Err() == nil {
				if err := x.pause(ctx, rt.Pause); err != nil {
					return nil, err
				}
				continue
			}
			return nil, x.fail(&apiclient.TransportError{Err: err})
		}
		if err := googleapi.CheckResponse(res); err != nil {
			res.Body.Close()
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				if rt := x.Delegate.HTTPFailure(res, apiErr); rt.Retry {
					if err := x.pause(ctx, rt.Pause); err != nil {
						return nil, err
					}
					continue
				}
			}
			return nil, x.fail(err)
		}
		return res, nil
	}
}

func (x *Exec) pause(ctx context.Context, d time.Duration) error {
	if err := sleep(ctx, d); err != nil {
		return x.fail(err)
	}
	return nil
}

// Decode reads the body of res into target and finishes the execution.
func (x *Exec) Decode(target any, res *http.Response) error {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return x.fail(&apiclient.TransportError{Err: err})
	}
	if err := json.Unmarshal(body, target); err != nil {
		x.Delegate.ResponseJSONDecodeError(body, err)
		return x.fail(&apiclient.JSONDecodeError{Body: body, Err: err})
	}
	x.Done()
	return nil
}

// Done finishes a successful execution.
func (x *Exec) Done() {
	x.Delegate.Finished(true)
}

// Fail finishes an execution that failed before reaching Send.
func (x *Exec) Fail(err error) error {
	return x.fail(err)
}

func (x *Exec) fail(err error) error {
	x.Delegate.Finished(false)
	return err
}
