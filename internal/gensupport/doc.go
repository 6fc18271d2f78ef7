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

// Package gensupport is the machinery shared by the generated clients: query
// parameters, request headers, the retry loop and JSON encoding.
//
// It is not meant to be used directly.
package gensupport

// Version is the version of the generated clients, reported in the
// x-goog-api-client header.
const Version = "0.1.0"
