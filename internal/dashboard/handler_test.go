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

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bundlecache "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/cache"
	appconfig "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/manager"
	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	model "github.com/nordlicht-consulting/web-platform-service/internal/session/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
)

// stubAuthenticator answers every call from canned fields.
type stubAuthenticator struct {
	payload *model.AuthPayload
	err     error
}

func (s *stubAuthenticator) Login(context.Context, string, string) (*model.AuthPayload, error) {
	return s.payload, s.err
}

func (s *stubAuthenticator) Register(context.Context, model.Registration) error {
	return s.err
}

func (s *stubAuthenticator) Refresh(context.Context, string) (*model.AuthPayload, error) {
	return s.payload, s.err
}

func (s *stubAuthenticator) Logout(context.Context, string) error {
	return s.err
}

func (s *stubAuthenticator) Me(context.Context, string) (*model.User, error) {
	if s.payload == nil {
		return nil, s.err
	}
	return &s.payload.User, s.err
}

// stubFetcher serves one fixed bundle, or an error.
type stubFetcher struct {
	values map[string]string
	err    error
}

func (s *stubFetcher) FetchAppConfig(context.Context, string, map[string]string) (map[string]string, error) {
	return s.values, s.err
}

func (s *stubFetcher) FetchI18n(context.Context, string, string, map[string]string) (map[string]string, error) {
	return s.values, s.err
}

func newTestMux(auth *stubAuthenticator, fetcher *stubFetcher) *http.ServeMux {
	registry := NewRegistry(prefs.NewMemoryStore(), auth)
	manager := appconfig.NewManager(bundlecache.NewBundleCache(), fetcher)
	mux := http.NewServeMux()
	NewHandler(registry, manager).Register(mux)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func visitorCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.VisitorCookieName {
			return cookie
		}
	}
	t.Fatal("visitor cookie not set")
	return nil
}

func TestConsentState_FirstVisitSetsCookieAndShowsBanner(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{}, &stubFetcher{})

	recorder := doRequest(t, mux, http.MethodGet, constants.ConsentBasePath, "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	cookie := visitorCookie(t, recorder)
	assert.NotEmpty(t, cookie.Value)

	var response struct {
		State struct {
			HasConsent        bool `json:"has_consent"`
			ShowBanner        bool `json:"show_banner"`
			ShowSettingsModal bool `json:"show_settings_modal"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.False(t, response.State.HasConsent)
	assert.True(t, response.State.ShowBanner)
}

func TestConsentAcceptAll_PersistsAcrossRequests(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{}, &stubFetcher{})

	first := doRequest(t, mux, http.MethodGet, constants.ConsentBasePath, "", nil)
	cookie := visitorCookie(t, first)

	accepted := doRequest(t, mux, http.MethodPost, constants.ConsentBasePath+"/accept-all", "", cookie)
	require.Equal(t, http.StatusOK, accepted.Code)

	followup := doRequest(t, mux, http.MethodGet, constants.ConsentBasePath, "", cookie)
	var response struct {
		State struct {
			HasConsent bool `json:"has_consent"`
			ShowBanner bool `json:"show_banner"`
		} `json:"state"`
		Record *struct {
			Marketing bool `json:"marketing"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal(followup.Body.Bytes(), &response))
	assert.True(t, response.State.HasConsent)
	assert.False(t, response.State.ShowBanner)
	require.NotNil(t, response.Record)
	assert.True(t, response.Record.Marketing)
}

func TestConsentUpdate_PartialSelection(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{}, &stubFetcher{})

	first := doRequest(t, mux, http.MethodGet, constants.ConsentBasePath, "", nil)
	cookie := visitorCookie(t, first)

	updated := doRequest(t, mux, http.MethodPut, constants.ConsentBasePath,
		`{"analytics":true}`, cookie)
	require.Equal(t, http.StatusOK, updated.Code)

	var response struct {
		Record struct {
			Necessary bool `json:"necessary"`
			Analytics bool `json:"analytics"`
			Marketing bool `json:"marketing"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &response))
	assert.True(t, response.Record.Necessary)
	assert.True(t, response.Record.Analytics)
	assert.False(t, response.Record.Marketing)
}

func TestConsentUpdate_RejectsUnknownFields(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{}, &stubFetcher{})

	recorder := doRequest(t, mux, http.MethodPut, constants.ConsentBasePath,
		`{"tracking":true}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestConsentBannerClose_DistinctVisitorsAreIsolated(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{}, &stubFetcher{})

	first := doRequest(t, mux, http.MethodGet, constants.ConsentBasePath, "", nil)
	annaCookie := visitorCookie(t, first)
	doRequest(t, mux, http.MethodPost, constants.ConsentBasePath+"/banner/close", "", annaCookie)

	// A different visitor still sees the banner.
	other := doRequest(t, mux, http.MethodGet, constants.ConsentBasePath, "", nil)
	var response struct {
		State struct {
			ShowBanner bool `json:"show_banner"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(other.Body.Bytes(), &response))
	assert.True(t, response.State.ShowBanner)
}

func TestSessionLogin_Success(t *testing.T) {
	auth := &stubAuthenticator{payload: &model.AuthPayload{
		Token: "tok-1",
		User:  model.User{ID: "u-1", Email: "anna@example.com"},
	}}
	mux := newTestMux(auth, &stubFetcher{})

	recorder := doRequest(t, mux, http.MethodPost, constants.SessionBasePath+"/login",
		`{"email":"anna@example.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "u-1", response.Data.ID)

	// The session persists across requests for the same visitor.
	cookie := visitorCookie(t, recorder)
	me := doRequest(t, mux, http.MethodGet, constants.SessionBasePath+"/me", "", cookie)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestSessionMe_Unauthenticated(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{err: errors.New("unauthorized")}, &stubFetcher{})

	recorder := doRequest(t, mux, http.MethodGet, constants.SessionBasePath+"/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSessionLogout_AlwaysSucceeds(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{err: errors.New("service down")}, &stubFetcher{})

	recorder := doRequest(t, mux, http.MethodPost, constants.SessionBasePath+"/logout", "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestContent_ServesLoadedBundle(t *testing.T) {
	fetcher := &stubFetcher{values: map[string]string{"title": "Willkommen"}}
	mux := newTestMux(&stubAuthenticator{}, fetcher)

	recorder := doRequest(t, mux, http.MethodGet, constants.ContentBasePath+"/landing?lang=de", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Category string            `json:"category"`
		Language string            `json:"language"`
		Loaded   bool              `json:"loaded"`
		Values   map[string]string `json:"values"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "landing", response.Category)
	assert.Equal(t, "de", response.Language)
	assert.True(t, response.Loaded)
	assert.Equal(t, "Willkommen", response.Values["title"])
}

func TestContent_ExplicitLanguageBecomesPreference(t *testing.T) {
	fetcher := &stubFetcher{values: map[string]string{}}
	mux := newTestMux(&stubAuthenticator{}, fetcher)

	first := doRequest(t, mux, http.MethodGet, constants.ContentBasePath+"/landing?lang=en", "", nil)
	cookie := visitorCookie(t, first)

	// Without a lang parameter the stored preference applies.
	followup := doRequest(t, mux, http.MethodGet, constants.ContentBasePath+"/landing", "", cookie)
	var response struct {
		Language string `json:"language"`
	}
	require.NoError(t, json.Unmarshal(followup.Body.Bytes(), &response))
	assert.Equal(t, "en", response.Language)
}

func TestContent_FetchFailureDegradesToDefaults(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("config service down")}
	mux := newTestMux(&stubAuthenticator{}, fetcher)

	recorder := doRequest(t, mux, http.MethodGet, constants.ContentBasePath+"/landing", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code, "rendering must continue on fetch failure")

	var response struct {
		Loaded bool `json:"loaded"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.False(t, response.Loaded)

	// The failure lands in the visitor's error log.
	cookie := visitorCookie(t, recorder)
	logs := doRequest(t, mux, http.MethodGet, "/api/errors", "", cookie)
	var entries []struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(logs.Body.Bytes(), &entries))
	require.NotEmpty(t, entries)
}

func TestContent_MissingCategory(t *testing.T) {
	mux := newTestMux(&stubAuthenticator{}, &stubFetcher{})
	recorder := doRequest(t, mux, http.MethodGet, constants.ContentBasePath+"/", "", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestErrorLogClear(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("down")}
	mux := newTestMux(&stubAuthenticator{}, fetcher)

	first := doRequest(t, mux, http.MethodGet, constants.ContentBasePath+"/landing", "", nil)
	cookie := visitorCookie(t, first)

	cleared := doRequest(t, mux, http.MethodDelete, "/api/errors", "", cookie)
	assert.Equal(t, http.StatusNoContent, cleared.Code)

	logs := doRequest(t, mux, http.MethodGet, "/api/errors", "", cookie)
	assert.Equal(t, "null\n", logs.Body.String(), "an empty ring serializes as null")
}
