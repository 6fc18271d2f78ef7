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

// Package output prints API responses as indented JSON or through mustache
// templates.
package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/iancoleman/strcase"
	"google.golang.org/api/googleapi"
	"google.golang.org/genproto/googleapis/rpc/code"
)

//go:embed templates/*.mustache
var templatesFS embed.FS

var identifier = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// Printer writes values to an io.Writer.
type Printer struct {
	w    io.Writer
	tmpl *mustache.Template
}

// New returns a Printer writing to w. An empty template prints indented
// JSON. Otherwise template is the name of a built-in view (see Builtins),
// "@" followed by the path of a template file, or the template text itself.
func New(w io.Writer, template string) (*Printer, error) {
	p := &Printer{w: w}
	if template == "" {
		return p, nil
	}
	text, err := templateText(template)
	if err != nil {
		return nil, err
	}
	p.tmpl, err = mustache.ParseStringPartialsRaw(text, builtinPartials{}, true)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return p, nil
}

func templateText(template string) (string, error) {
	if path, ok := strings.CutPrefix(template, "@"); ok {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading template: %w", err)
		}
		return string(b), nil
	}
	if text, err := builtin(template); err == nil {
		return text, nil
	}
	return template, nil
}

// Builtins lists the names of the built-in views.
func Builtins() []string {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".mustache"))
	}
	return names
}

func builtin(name string) (string, error) {
	b, err := templatesFS.ReadFile("templates/" + name + ".mustache")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// builtinPartials makes the built-in views available as partials, as in
// {{> jobs}}.
type builtinPartials struct{}

func (builtinPartials) Get(name string) (string, error) {
	return builtin(name)
}

// Print writes v, which must marshal to JSON.
func (p *Printer) Print(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if p.tmpl == nil {
		var buf bytes.Buffer
		if err := json.Indent(&buf, b, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := p.w.Write(buf.Bytes())
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return err
	}
	annotateStatus(data)
	return p.tmpl.FRender(p.w, data)
}

// annotateStatus adds a "status" entry holding the google.rpc.Code name to
// every "error" object that carries a numeric "code".
func annotateStatus(v any) {
	switch v := v.(type) {
	case map[string]any:
		if e, ok := v["error"].(map[string]any); ok {
			if n, ok := e["code"].(json.Number); ok {
				if c, err := n.Int64(); err == nil {
					e["status"] = Status(c)
				}
			}
		}
		for _, child := range v {
			annotateStatus(child)
		}
	case []any:
		for _, child := range v {
			annotateStatus(child)
		}
	}
}

// Status returns the name of a google.rpc.Code, such as "NOT_FOUND".
func Status(c int64) string {
	return code.Code(int32(c)).String()
}

// Fields converts a partial response selector written with snake_case
// names, such as "jobs(id,report_type_id)", to the lowerCamel names the
// API expects.
func Fields(s string) googleapi.Field {
	s = strings.ReplaceAll(s, " ", "")
	return googleapi.Field(identifier.ReplaceAllStringFunc(s, strcase.ToLowerCamel))
}
