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
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Authenticator supplies OAuth2 tokens for a set of scopes.
type Authenticator interface {
	Token(ctx context.Context, scopes []string) (*oauth2.Token, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, scopes []string) (*oauth2.Token, error)

// Token calls f.
func (f AuthenticatorFunc) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	return f(ctx, scopes)
}

// TokenSourceAuthenticator returns an Authenticator that ignores the
// requested scopes and always asks ts.
func TokenSourceAuthenticator(ts oauth2.TokenSource) Authenticator {
	return AuthenticatorFunc(func(context.Context, []string) (*oauth2.Token, error) {
		return ts.Token()
	})
}

// SourceFunc creates a token source for a set of scopes.
type SourceFunc func(ctx context.Context, scopes []string) (oauth2.TokenSource, error)

// CachingAuthenticator keeps one reusable token source per distinct set of
// scopes, so a token is only refreshed once it expires. It is safe for
// concurrent use.
type CachingAuthenticator struct {
	newSource SourceFunc

	mu      sync.Mutex
	sources map[string]oauth2.TokenSource
}

// NewCachingAuthenticator returns a CachingAuthenticator that builds token
// sources with fn.
func NewCachingAuthenticator(fn SourceFunc) *CachingAuthenticator {
	return &CachingAuthenticator{
		newSource: fn,
		sources:   make(map[string]oauth2.TokenSource),
	}
}

// DefaultAuthenticator returns a CachingAuthenticator backed by Application
// Default Credentials.
func DefaultAuthenticator() *CachingAuthenticator {
	return NewCachingAuthenticator(func(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
		return google.DefaultTokenSource(ctx, scopes...)
	})
}

// CredentialsJSONAuthenticator returns a CachingAuthenticator backed by a
// service account or authorized user JSON key.
func CredentialsJSONAuthenticator(data []byte) *CachingAuthenticator {
	return NewCachingAuthenticator(func(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
		creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
		if err != nil {
			return nil, err
		}
		return creds.TokenSource, nil
	})
}

// Token implements Authenticator.
func (a *CachingAuthenticator) Token(ctx context.Context, scopes []string) (*oauth2.Token, error) {
	ts, err := a.source(ctx, scopes)
	if err != nil {
		return nil, err
	}
	return ts.Token()
}

func (a *CachingAuthenticator) source(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
	key := scopeKey(scopes)
	a.mu.Lock()
	defer a.mu.Unlock()
	if ts, ok := a.sources[key]; ok {
		return ts, nil
	}
	// The source outlives the call that created it.
	ts, err := a.newSource(context.WithoutCancel(ctx), scopes)
	if err != nil {
		return nil, fmt.Errorf("creating token source for %q: %w", key, err)
	}
	ts = oauth2.ReuseTokenSource(nil, ts)
	a.sources[key] = ts
	return ts, nil
}

func scopeKey(scopes []string) string {
	s := slices.Clone(scopes)
	slices.Sort(s)
	return strings.Join(slices.Compact(s), " ")
}
