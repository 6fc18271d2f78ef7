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
	"net/http"

	"github.com/googleapis/gax-go/v2"
)

var googAPIClient = gax.XGoogHeader("gl-go", gax.GoVersion, "gdcl", Version)

// SetHeaders returns the headers of a request: the user agent, the content
// type when set, the x-goog-api-client header, then the user supplied
// headers and finally the extra key/value pairs.
func SetHeaders(userAgent, contentType string, userHeaders http.Header, keyvals ...string) http.Header {
	h := make(http.Header)
	h.Set("X-Goog-Api-Client", googAPIClient)
	for k, v := range userHeaders {
		h[k] = v
	}
	h.Set("User-Agent", userAgent)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		h.Set(keyvals[i], keyvals[i+1])
	}
	return h
}
