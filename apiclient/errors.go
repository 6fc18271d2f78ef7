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
	"fmt"
)

// FieldClashError reports an additional query parameter that collides with a
// parameter the call builder sets itself.
type FieldClashError struct {
	Param string
}

func (e *FieldClashError) Error() string {
	return fmt.Sprintf("apiclient: parameter %q is set by the call builder and cannot be passed with Param", e.Param)
}

// MissingTokenError reports that no OAuth2 token could be obtained.
type MissingTokenError struct {
	Err error
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("apiclient: missing token: %v", e.Err)
}

func (e *MissingTokenError) Unwrap() error { return e.Err }

// TransportError reports a request that failed without an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("apiclient: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// JSONDecodeError reports a successful response whose body is not the
// expected JSON document.
type JSONDecodeError struct {
	Body []byte
	Err  error
}

func (e *JSONDecodeError) Error() string {
	return fmt.Sprintf("apiclient: decoding response: %v", e.Err)
}

func (e *JSONDecodeError) Unwrap() error { return e.Err }
