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

/*
Apiary calls the Document AI v1beta2 and YouTube Reporting v1 APIs from the
command line.

Usage:

	apiary [global flags] <api> <command> [arguments]

Responses are printed as indented JSON. With --template they are rendered
with a mustache template instead: one of the built-in views (document, jobs,
operation, report-types, reports), a file given as @FILE, or the template
text itself.

Configuration is read from --config, $APIARY_CONFIG or apiary/apiary.yaml in
the user configuration directory. Flags take precedence over the file.

The commands are:

# documentai

	apiary documentai process [--parent PARENT] <file>... [--mime-type TYPE] [--document-type TYPE] [--parallel N]
	apiary documentai batch-process [--parent PARENT] --input gs://... --output gs://... [--pages-per-shard N]
	apiary documentai operations get <name>
	apiary documentai operations wait <name> [--timeout DURATION]

# youtubereporting

	apiary youtubereporting report-types list [--include-system-managed] [--page-size N] [--all]
	apiary youtubereporting jobs list [--include-system-managed] [--page-size N] [--all]
	apiary youtubereporting jobs get <job>
	apiary youtubereporting jobs create --report-type TYPE --name NAME
	apiary youtubereporting jobs delete <job>
	apiary youtubereporting reports list <job> [--created-after TIME] [--start-time-before TIME] [--start-time-at-or-after TIME]
	apiary youtubereporting reports get <job> <report>
	apiary youtubereporting reports download <job> [report...] --dir DIR [--parallel N] [--qps Q]

All youtubereporting commands accept --on-behalf-of-content-owner.

# config

	apiary config init [file] [--force]

# version

	apiary version

GLOBAL OPTIONS:

	--config FILE        read configuration from FILE [$APIARY_CONFIG]
	--verbose, -v        enable verbose logging
	--endpoint URL       send requests to URL instead of the API endpoint
	--token-command CMD  run CMD to obtain access tokens
	--retries N          make at most N attempts per call
	--fields string      request only the listed response fields, for example jobs(id,name)
	--template string    print responses with a mustache template
*/
package main
