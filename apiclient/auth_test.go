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
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"
)

func TestCachingAuthenticator(t *testing.T) {
	var (
		mu      sync.Mutex
		created [][]string
	)
	a := NewCachingAuthenticator(func(_ context.Context, scopes []string) (oauth2.TokenSource, error) {
		mu.Lock()
		defer mu.Unlock()
		created = append(created, scopes)
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: "token-" + scopeKey(scopes),
			Expiry:      time.Now().Add(time.Hour),
		}), nil
	})

	ctx := t.Context()
	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			if _, err := a.Token(ctx, []string{"b", "a"}); err != nil {
				t.Error(err)
			}
		})
	}
	wg.Wait()

	tok, err := a.Token(ctx, []string{"a", "b", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if tok.AccessToken != "token-a b" {
		t.Errorf("AccessToken = %q, want %q", tok.AccessToken, "token-a b")
	}
	if _, err := a.Token(ctx, []string{"c"}); err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"b", "a"}, {"c"}}
	if diff := cmp.Diff(want, created); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCachingAuthenticatorError(t *testing.T) {
	wantErr := errors.New("no credentials")
	a := NewCachingAuthenticator(func(context.Context, []string) (oauth2.TokenSource, error) {
		return nil, wantErr
	})
	if _, err := a.Token(t.Context(), []string{"x"}); !errors.Is(err, wantErr) {
		t.Errorf("Token() error = %v, want %v", err, wantErr)
	}
}

func TestTokenSourceAuthenticator(t *testing.T) {
	a := TokenSourceAuthenticator(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "static"}))
	tok, err := a.Token(t.Context(), []string{"ignored"})
	if err != nil {
		t.Fatal(err)
	}
	if tok.AccessToken != "static" {
		t.Errorf("AccessToken = %q, want %q", tok.AccessToken, "static")
	}
}

func TestScopeKey(t *testing.T) {
	for _, test := range []struct {
		name   string
		scopes []string
		want   string
	}{
		{"empty", nil, ""},
		{"single", []string{"x"}, "x"},
		{"sorted", []string{"z", "a"}, "a z"},
		{"duplicates", []string{"a", "b", "a"}, "a b"},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := scopeKey(test.scopes); got != test.want {
				t.Errorf("scopeKey(%v) = %q, want %q", test.scopes, got, test.want)
			}
		})
	}
}
