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
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalJSON returns a JSON encoding of schema containing only selected
// fields.
//
// A field is selected when it is non-empty, or when its name appears in
// forceSendFields. Fields named in nullFields are sent as JSON null and must
// be empty. A nullFields entry of the form "Field.key" sends a null value for
// that key of a map field.
func MarshalJSON(schema any, forceSendFields, nullFields []string) ([]byte, error) {
	if len(forceSendFields) == 0 && len(nullFields) == 0 {
		return json.Marshal(schema)
	}

	mustInclude := make(map[string]bool)
	for _, f := range forceSendFields {
		mustInclude[f] = true
	}
	useNull := make(map[string]bool)
	useNullMaps := make(map[string]map[string]bool)
	for _, nf := range nullFields {
		field, key, isMap := strings.Cut(nf, ".")
		if !isMap {
			useNull[field] = true
			continue
		}
		if useNullMaps[field] == nil {
			useNullMaps[field] = make(map[string]bool)
		}
		useNullMaps[field][key] = true
	}

	m, err := schemaToMap(schema, mustInclude, useNull, useNullMaps)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

func schemaToMap(schema any, mustInclude, useNull map[string]bool, useNullMaps map[string]map[string]bool) (map[string]any, error) {
	m := make(map[string]any)
	s := reflect.ValueOf(schema)
	st := s.Type()

	for i := 0; i < s.NumField(); i++ {
		jsonTag := st.Field(i).Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		tag, err := parseJSONTag(jsonTag)
		if err != nil {
			return nil, err
		}
		if tag.ignore {
			continue
		}

		v := s.Field(i)
		f := st.Field(i)

		if useNull[f.Name] {
			if !isEmptyValue(v) {
				return nil, fmt.Errorf("field %q in NullFields has non-empty value", f.Name)
			}
			m[tag.apiName] = nil
			continue
		}

		if !includeField(v, f, mustInclude) {
			continue
		}

		if keys, ok := useNullMaps[f.Name]; ok && f.Type.Kind() == reflect.Map {
			ms := make(map[string]any)
			for _, k := range v.MapKeys() {
				ms[k.String()] = v.MapIndex(k).Interface()
			}
			for k := range keys {
				if _, ok := ms[k]; ok {
					return nil, fmt.Errorf("field %q in NullFields has non-empty value for key %q", f.Name, k)
				}
				ms[k] = nil
			}
			m[tag.apiName] = ms
			continue
		}

		if tag.stringFormat {
			m[tag.apiName] = formatAsString(v, f.Type.Kind())
		} else {
			m[tag.apiName] = v.Interface()
		}
	}
	return m, nil
}

// formatAsString returns a string representation of v, dereferencing it
// first if possible.
func formatAsString(v reflect.Value, kind reflect.Kind) string {
	if kind == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	}
	return fmt.Sprintf("%v", v.Interface())
}

type jsonTag struct {
	apiName      string
	stringFormat bool
	omitEmpty    bool
	ignore       bool
}

func parseJSONTag(val string) (jsonTag, error) {
	if val == "-" {
		return jsonTag{ignore: true}, nil
	}
	name, opts, _ := strings.Cut(val, ",")
	if name == "" {
		return jsonTag{}, fmt.Errorf("malformed json tag: %s", val)
	}
	tag := jsonTag{apiName: name}
	for opt := range strings.SplitSeq(opts, ",") {
		switch opt {
		case "string":
			tag.stringFormat = true
		case "omitempty":
			tag.omitEmpty = true
		}
	}
	return tag, nil
}

// includeField reports whether the field should be encoded.
func includeField(v reflect.Value, f reflect.StructField, mustInclude map[string]bool) bool {
	// A nil pointer encodes as null, which deletes the field on the
	// server. Only NullFields may do that.
	if f.Type.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	if f.Type.Kind() == reflect.Interface && v.IsNil() {
		return false
	}
	return mustInclude[f.Name] || !isEmptyValue(v)
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}
