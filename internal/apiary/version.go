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
	_ "embed"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

//go:embed version.txt
var versionString string

// versionNotAvailable is reported for builds without usable VCS information
// and for builds of a modified checkout.
const versionNotAvailable = "not available"

// Version returns the version of the apiary binary. Installed binaries report
// their module version; builds from a checkout report a pseudo-version based
// on version.txt.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return version(info)
}

func version(info *debug.BuildInfo) string {
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return newPseudoVersion(info)
	}
	if !semver.IsValid(v) || semver.Build(v) != "" {
		return versionNotAvailable
	}
	return v
}

// newPseudoVersion returns the pseudo-version of a build from a checkout.
// Both the revision and the commit time must be known.
func newPseudoVersion(info *debug.BuildInfo) string {
	var revision, at string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				return versionNotAvailable
			}
		}
	}
	if revision == "" || at == "" {
		return versionNotAvailable
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return versionNotAvailable
	}
	base := strings.TrimSpace(versionString)
	return module.PseudoVersion(semver.Major(base), base, t, module.ShortenPseudoVersionRev(revision))
}
