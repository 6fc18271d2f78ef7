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
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type child struct {
	Name string `json:"name,omitempty"`
}

type schema struct {
	Name     string            `json:"name,omitempty"`
	Count    int64             `json:"count,omitempty,string"`
	Enabled  bool              `json:"enabled,omitempty"`
	Score    float64           `json:"score,omitempty"`
	Child    *child            `json:"child,omitempty"`
	Items    []string          `json:"items,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`
	Internal string            `json:"-"`

	ForceSendFields []string `json:"-"`
	NullFields      []string `json:"-"`
}

func (s *schema) MarshalJSON() ([]byte, error) {
	type NoMethod schema
	raw := NoMethod(*s)
	return MarshalJSON(raw, s.ForceSendFields, s.NullFields)
}

func TestMarshalJSON(t *testing.T) {
	for _, test := range []struct {
		name string
		s    *schema
		want string
	}{
		{
			name: "empty",
			s:    &schema{},
			want: `{}`,
		},
		{
			name: "set fields",
			s:    &schema{Name: "n", Count: 7, Child: &child{Name: "c"}, Internal: "x"},
			want: `{"child":{"name":"c"},"count":"7","name":"n"}`,
		},
		{
			name: "force send zero values",
			s:    &schema{ForceSendFields: []string{"Count", "Enabled", "Score", "Items"}},
			want: `{"count":"0","enabled":false,"items":null,"score":0}`,
		},
		{
			name: "force send nil pointer is skipped",
			s:    &schema{ForceSendFields: []string{"Child"}},
			want: `{}`,
		},
		{
			name: "null fields",
			s:    &schema{Name: "n", NullFields: []string{"Child", "Labels"}},
			want: `{"child":null,"labels":null,"name":"n"}`,
		},
		{
			name: "null map key",
			s:    &schema{Labels: map[string]string{"a": "1"}, NullFields: []string{"Labels.b"}},
			want: `{"labels":{"a":"1","b":null}}`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := json.Marshal(test.s)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalJSONErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		s    *schema
	}{
		{"null field with value", &schema{Name: "n", NullFields: []string{"Name"}}},
		{"null map key with value", &schema{Labels: map[string]string{"a": "1"}, NullFields: []string{"Labels.a"}}},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := json.Marshal(test.s); err == nil {
				t.Error("json.Marshal() succeeded, want error")
			}
		})
	}
}

func TestJSONFloat64(t *testing.T) {
	for _, test := range []struct {
		in   string
		want float64
	}{
		{`1.5`, 1.5},
		{`0`, 0},
		{`"Infinity"`, math.Inf(1)},
		{`"-Infinity"`, math.Inf(-1)},
	} {
		t.Run(test.in, func(t *testing.T) {
			var f JSONFloat64
			if err := json.Unmarshal([]byte(test.in), &f); err != nil {
				t.Fatal(err)
			}
			if float64(f) != test.want {
				t.Errorf("got %v, want %v", f, test.want)
			}
		})
	}

	var f JSONFloat64
	if err := json.Unmarshal([]byte(`"NaN"`), &f); err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(float64(f)) {
		t.Errorf("got %v, want NaN", f)
	}
	for _, in := range []string{`"1.5"`, `true`, `{}`} {
		if err := json.Unmarshal([]byte(in), &f); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", in)
		}
	}
}
