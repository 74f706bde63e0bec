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

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/nordlicht-consulting/web-platform-service/internal/session/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/config"
	errors2 "github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
)

func newTestClient(serverURL string) *AuthClient {
	return NewAuthClient(config.AuthServerConfig{BaseURL: serverURL, TimeoutSeconds: 5})
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "anna@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Login successful",
			"data": map[string]interface{}{
				"token": "tok-1",
				"user":  map[string]interface{}{"id": "u-1", "email": "anna@example.com"},
			},
		})
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).Login(context.Background(), "anna@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", payload.Token)
	assert.Equal(t, "u-1", payload.User.ID)
}

func TestLogin_EnvelopeFailureCarriesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Invalid email or password",
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "anna@example.com", "wrong")
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.StatusCode)
	assert.Equal(t, "Invalid email or password", clientErr.ErrorMessage.Description)
}

func TestLogin_SuccessFalseWithOkStatus(t *testing.T) {
	// Some endpoints answer 200 with success=false; that is still a failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Account locked",
		})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "anna@example.com", "secret")
	require.Error(t, err)

	var clientErr *errors2.ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadGateway, clientErr.StatusCode)
}

func TestRefresh_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		assert.Equal(t, "Bearer old-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": "new-token",
				"user":  map[string]interface{}{"id": "u-1"},
			},
		})
	}))
	defer server.Close()

	payload, err := newTestClient(server.URL).Refresh(context.Background(), "old-token")
	require.NoError(t, err)
	assert.Equal(t, "new-token", payload.Token)
}

func TestMe_DecodesUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/me", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id": "u-1", "email": "anna@example.com", "role": "customer",
			},
		})
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).Me(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "customer", user.Role)
}

func TestRegister_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		var registration model.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&registration))
		assert.Equal(t, "anna@example.com", registration.Email)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer server.Close()

	err := newTestClient(server.URL).Register(context.Background(), model.Registration{
		FirstName: "Anna", LastName: "Berg", Email: "anna@example.com", Password: "secret",
	})
	require.NoError(t, err)
}

func TestCall_UnreachableServiceIsAServerError(t *testing.T) {
	// Nothing listens on this address.
	c := newTestClient("http://127.0.0.1:1")
	_, err := c.Login(context.Background(), "anna@example.com", "secret")
	require.Error(t, err)

	var serverErr *errors2.ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestCall_MalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Login(context.Background(), "anna@example.com", "secret")
	require.Error(t, err)

	var serverErr *errors2.ServerError
	assert.ErrorAs(t, err, &serverErr)
}
