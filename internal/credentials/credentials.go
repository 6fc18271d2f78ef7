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

// Package credentials builds the authenticator used by the apiary command
// from its configuration.
package credentials

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/googleapis/apiary/apiclient"
	"github.com/googleapis/apiary/internal/command"
	"github.com/googleapis/apiary/internal/config"
	"golang.org/x/oauth2"
)

// ScopesEnv is set to the space separated list of requested scopes when a
// token command runs.
const ScopesEnv = "APIARY_SCOPES"

// commandTokenLifetime is assumed for tokens printed without an expiry.
const commandTokenLifetime = 5 * time.Minute

var errEmptyToken = errors.New("token command printed no token")

// New returns the authenticator described by auth. Application Default
// Credentials are used when auth names no other source.
func New(auth *config.Auth) (apiclient.Authenticator, error) {
	if auth == nil {
		return apiclient.DefaultAuthenticator(), nil
	}
	var a apiclient.Authenticator
	switch {
	case auth.TokenCommand != "":
		name, args, err := command.Split(auth.TokenCommand)
		if err != nil {
			return nil, fmt.Errorf("auth.token_command: %w", err)
		}
		a = FromCommand(name, args...)
	case auth.CredentialsFile != "":
		data, err := os.ReadFile(auth.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("auth.credentials_file: %w", err)
		}
		a = apiclient.CredentialsJSONAuthenticator(data)
	default:
		a = apiclient.DefaultAuthenticator()
	}
	if len(auth.Scopes) > 0 {
		a = withScopes(a, auth.Scopes)
	}
	return a, nil
}

// FromCommand returns an authenticator that runs the program name to obtain
// tokens. The program prints either a bare access token or a JSON object
// with "access_token" and optionally "token_type" and "expires_in" fields,
// the format of an OAuth2 token response.
func FromCommand(name string, args ...string) *apiclient.CachingAuthenticator {
	return apiclient.NewCachingAuthenticator(func(ctx context.Context, scopes []string) (oauth2.TokenSource, error) {
		return &commandSource{ctx: ctx, scopes: scopes, name: name, args: args, now: time.Now}, nil
	})
}

type commandSource struct {
	ctx    context.Context
	scopes []string
	name   string
	args   []string
	now    func() time.Time
}

// tokenResponse is the JSON form a token command may print.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (s *commandSource) Token() (*oauth2.Token, error) {
	env := map[string]string{ScopesEnv: strings.Join(s.scopes, " ")}
	out, err := command.OutputWithEnv(s.ctx, env, s.name, s.args...)
	if err != nil {
		return nil, err
	}
	return parseToken(bytes.TrimSpace(out), s.now())
}

func parseToken(out []byte, now time.Time) (*oauth2.Token, error) {
	if len(out) == 0 {
		return nil, errEmptyToken
	}
	if out[0] != '{' {
		return &oauth2.Token{
			AccessToken: string(out),
			TokenType:   "Bearer",
			Expiry:      now.Add(commandTokenLifetime),
		}, nil
	}
	var resp tokenResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return nil, fmt.Errorf("parsing token command output: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, errEmptyToken
	}
	tok := &oauth2.Token{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		Expiry:      now.Add(commandTokenLifetime),
	}
	if resp.ExpiresIn > 0 {
		tok.Expiry = now.Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	return tok, nil
}

// withScopes adds extra to the scopes of every token request.
func withScopes(a apiclient.Authenticator, extra []string) apiclient.Authenticator {
	return apiclient.AuthenticatorFunc(func(ctx context.Context, scopes []string) (*oauth2.Token, error) {
		all := slices.Clone(scopes)
		for _, s := range extra {
			if !slices.Contains(all, s) {
				all = append(all, s)
			}
		}
		return a.Token(ctx, all)
	})
}
