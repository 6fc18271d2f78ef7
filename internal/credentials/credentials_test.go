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

package credentials

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/googleapis/apiary/apiclient"
	"github.com/googleapis/apiary/internal/command"
	"github.com/googleapis/apiary/internal/config"
	"golang.org/x/oauth2"
)

func TestParseToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, test := range []struct {
		name    string
		out     string
		want    *oauth2.Token
		wantErr bool
	}{
		{
			name: "bare token",
			out:  "ya29.abc",
			want: &oauth2.Token{AccessToken: "ya29.abc", TokenType: "Bearer", Expiry: now.Add(commandTokenLifetime)},
		},
		{
			name: "token response",
			out:  `{"access_token":"ya29.def","token_type":"Bearer","expires_in":3599}`,
			want: &oauth2.Token{AccessToken: "ya29.def", TokenType: "Bearer", Expiry: now.Add(3599 * time.Second)},
		},
		{
			name: "token response without expiry",
			out:  `{"access_token":"ya29.ghi"}`,
			want: &oauth2.Token{AccessToken: "ya29.ghi", Expiry: now.Add(commandTokenLifetime)},
		},
		{
			name:    "empty",
			out:     "",
			wantErr: true,
		},
		{
			name:    "missing access token",
			out:     `{"token_type":"Bearer"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			out:     `{"access_token":`,
			wantErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseToken([]byte(test.out), now)
			if test.wantErr {
				if err == nil {
					t.Fatalf("parseToken(%q) = %v, want error", test.out, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got, cmp.AllowUnexported(oauth2.Token{})); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// writeScript writes an executable token command that records each run in
// a file next to it.
func writeScript(t *testing.T, body string) (script, runs string) {
	t.Helper()
	command.RequireCommand(t, "sh")
	dir := t.TempDir()
	runs = filepath.Join(dir, "runs")
	script = filepath.Join(dir, "print-token")
	content := "#!/bin/sh\necho run >> " + runs + "\n" + body + "\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatal(err)
	}
	return script, runs
}

func TestFromCommand(t *testing.T) {
	script, runs := writeScript(t, `printf 'tok:%s' "$`+ScopesEnv+`"`)
	a := FromCommand(script)
	scopes := []string{"https://www.googleapis.com/auth/cloud-platform"}
	for range 2 {
		tok, err := a.Token(t.Context(), scopes)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("tok:"+scopes[0], tok.AccessToken); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
	b, err := os.ReadFile(runs)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(b), "run"); got != 1 {
		t.Errorf("token command ran %d times, want 1", got)
	}
}

func TestFromCommandError(t *testing.T) {
	script, _ := writeScript(t, "echo denied >&2; exit 1")
	_, err := FromCommand(script).Token(t.Context(), nil)
	if err == nil || !strings.Contains(err.Error(), "denied") {
		t.Errorf("Token() error = %v, want stderr in error", err)
	}
}

func TestNew(t *testing.T) {
	script, _ := writeScript(t, "echo command-token")
	for _, test := range []struct {
		name      string
		auth      *config.Auth
		wantToken string
		wantErr   bool
	}{
		{
			name:      "token command",
			auth:      &config.Auth{TokenCommand: script},
			wantToken: "command-token",
		},
		{
			name:      "token command with extra scopes",
			auth:      &config.Auth{TokenCommand: script, Scopes: []string{"extra"}},
			wantToken: "command-token",
		},
		{
			name:    "blank token command",
			auth:    &config.Auth{TokenCommand: "  "},
			wantErr: true,
		},
		{
			name:    "missing credentials file",
			auth:    &config.Auth{CredentialsFile: filepath.Join(t.TempDir(), "missing.json")},
			wantErr: true,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			a, err := New(test.auth)
			if test.wantErr {
				if err == nil {
					t.Fatal("New() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tok, err := a.Token(t.Context(), []string{"s"})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.wantToken, tok.AccessToken); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	for _, auth := range []*config.Auth{nil, {}} {
		a, err := New(auth)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := a.(*apiclient.CachingAuthenticator); !ok {
			t.Errorf("New(%v) = %T, want *apiclient.CachingAuthenticator", auth, a)
		}
	}
}

func TestWithScopes(t *testing.T) {
	var got [][]string
	inner := apiclient.AuthenticatorFunc(func(_ context.Context, scopes []string) (*oauth2.Token, error) {
		got = append(got, scopes)
		return &oauth2.Token{AccessToken: "t"}, nil
	})
	a := withScopes(inner, []string{"b", "c"})
	for _, scopes := range [][]string{{"a"}, {"b"}, nil} {
		if _, err := a.Token(t.Context(), scopes); err != nil {
			t.Fatal(err)
		}
	}
	want := [][]string{{"a", "b", "c"}, {"b", "c"}, {"b", "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyTokenError(t *testing.T) {
	_, err := parseToken(nil, time.Now())
	if !errors.Is(err, errEmptyToken) {
		t.Errorf("got error %v, want %v", err, errEmptyToken)
	}
}
