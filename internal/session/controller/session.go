/*
 * Copyright (c) 2026, Nordlicht Consulting GmbH. (https://nordlicht-consulting.de)
 *
 * Nordlicht Consulting GmbH licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package controller

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	model "github.com/nordlicht-consulting/web-platform-service/internal/session/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
	errors2 "github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// Authenticator is the auth service client contract the session depends on.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.AuthPayload, error)
	Register(ctx context.Context, registration model.Registration) error
	Refresh(ctx context.Context, token string) (*model.AuthPayload, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*model.User, error)
}

// Session holds the authenticated state of one visitor. Token and user are
// always set and cleared together; a state with exactly one of them present
// is not reachable outside the hydration call itself.
type Session struct {
	mutex  sync.RWMutex
	prefs  prefs.Store
	client Authenticator

	token string
	user  *model.User
}

// NewSession creates an unauthenticated session over the visitor's
// preference store and the auth client.
func NewSession(p prefs.Store, c Authenticator) *Session {
	return &Session{
		prefs:  p,
		client: c,
	}
}

// Hydrate restores the session from a persisted token. An absent token is an
// expected condition; an invalid or expired one is dropped with a warning,
// never surfaced as an error.
func (s *Session) Hydrate(ctx context.Context) {

	logger := log.GetLogger()
	token, ok := s.prefs.Read(constants.PrefKeyAuthToken)
	if !ok || token == "" {
		logger.Debug("No stored token; session starts unauthenticated")
		return
	}

	if tokenExpired(token) {
		logger.Warn("Stored token is expired; dropping it")
		s.prefs.Remove(constants.PrefKeyAuthToken)
		return
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		// Expired or revoked tokens are expected, not a fault.
		logger.Warn("Stored token rejected by the authentication service", log.Error(err))
		s.prefs.Remove(constants.PrefKeyAuthToken)
		return
	}

	s.mutex.Lock()
	s.token = token
	s.user = user
	s.mutex.Unlock()
}

// Login authenticates the visitor and persists the token. Failures are
// logged and returned so the calling form can display the message.
func (s *Session) Login(ctx context.Context, email, password string) error {

	payload, err := s.client.Login(ctx, email, password)
	if err != nil {
		log.GetLogger().Warn("Login failed", log.String("email", email), log.Error(err))
		return err
	}

	s.mutex.Lock()
	s.token = payload.Token
	s.user = &payload.User
	s.mutex.Unlock()

	s.prefs.Write(constants.PrefKeyAuthToken, payload.Token)
	return nil
}

// Register creates an account. The visitor is not authenticated afterward;
// the auth service requires email verification first.
func (s *Session) Register(ctx context.Context, registration model.Registration) error {

	if err := s.client.Register(ctx, registration); err != nil {
		log.GetLogger().Warn("Registration failed", log.String("email", registration.Email), log.Error(err))
		return err
	}
	return nil
}

// Logout invalidates the token remotely on a best-effort basis and clears
// the local session unconditionally. It never fails.
func (s *Session) Logout(ctx context.Context) {

	s.mutex.Lock()
	token := s.token
	s.token = ""
	s.user = nil
	s.mutex.Unlock()

	s.prefs.Remove(constants.PrefKeyAuthToken)

	if token == "" {
		return
	}
	if err := s.client.Logout(ctx, token); err != nil {
		// Local state is already consistent; server-side agreement is secondary.
		log.GetLogger().Debug("Remote logout invalidation failed", log.Error(err))
	}
}

// Refresh exchanges the current token. A refresh without a token is an
// error; a failed refresh forces the session back to unauthenticated
// rather than leaving stale credentials.
func (s *Session) Refresh(ctx context.Context) error {

	s.mutex.RLock()
	token := s.token
	s.mutex.RUnlock()

	if token == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.NO_ACTIVE_TOKEN.Code,
			Message:     errors2.NO_ACTIVE_TOKEN.Message,
			Description: errors2.NO_ACTIVE_TOKEN.Description,
		}, http.StatusUnauthorized)
	}

	payload, err := s.client.Refresh(ctx, token)
	if err != nil {
		log.GetLogger().Warn("Token refresh failed; logging out", log.Error(err))
		s.Logout(ctx)
		return err
	}

	s.mutex.Lock()
	s.token = payload.Token
	s.user = &payload.User
	s.mutex.Unlock()

	s.prefs.Write(constants.PrefKeyAuthToken, payload.Token)
	return nil
}

// IsAuthenticated reports whether both token and user are present.
func (s *Session) IsAuthenticated() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token != "" && s.user != nil
}

// User returns the current user, or nil when unauthenticated.
func (s *Session) User() *model.User {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Token returns the current token, or empty when unauthenticated.
func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// tokenExpired checks the token's exp claim without verifying the
// signature; validation proper belongs to the auth service. A token that
// cannot be parsed is passed through so the service can decide.
func tokenExpired(token string) bool {

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
