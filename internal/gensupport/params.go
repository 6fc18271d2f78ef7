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
	"net/url"

	"google.golang.org/api/googleapi"
)

// URLParams is a simplified replacement for url.Values that safely builds
// the query of a call.
type URLParams map[string][]string

// Get returns the first value for the given key, or "".
func (u URLParams) Get(key string) string {
	vs := u[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Set sets the key to value. It replaces any existing values.
func (u URLParams) Set(key, value string) {
	u[key] = []string{value}
}

// SetMulti sets the key to an array of values. It replaces any existing
// values. The slice is copied.
func (u URLParams) SetMulti(key string, values []string) {
	u[key] = append([]string(nil), values...)
}

// Encode encodes the values into URL-encoded form, sorted by key.
func (u URLParams) Encode() string {
	return url.Values(u).Encode()
}

// SetOptions sets the URL params of every call option that carries one.
func SetOptions(u URLParams, opts ...googleapi.CallOption) {
	for _, o := range opts {
		if m, ok := o.(googleapi.MultiCallOption); ok {
			key, values := m.GetMulti()
			if key != "" {
				u.SetMulti(key, values)
			}
			continue
		}
		if key, value := o.Get(); key != "" {
			u.Set(key, value)
		}
	}
}
