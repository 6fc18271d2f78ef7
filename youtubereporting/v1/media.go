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

package youtubereporting

import (
	"fmt"
	"net/url"
	"strings"
)

const mediaPathPrefix = "/v1/media/"

// MediaResourceName returns the resource name to pass to
// MediaService.Download for the DownloadUrl of a Report.
func MediaResourceName(downloadURL string) (string, error) {
	u, err := url.Parse(downloadURL)
	if err != nil {
		return "", fmt.Errorf("parsing download url: %w", err)
	}
	name, ok := strings.CutPrefix(u.Path, mediaPathPrefix)
	if !ok || name == "" {
		return "", fmt.Errorf("download url %q has no %s path", downloadURL, mediaPathPrefix)
	}
	return name, nil
}
