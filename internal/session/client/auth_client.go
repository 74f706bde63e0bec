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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	model "github.com/nordlicht-consulting/web-platform-service/internal/session/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/config"
	errors2 "github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// AuthClient talks to the remote authentication service. Every endpoint
// answers with the {success, message, data} envelope; a non-2xx status or
// success=false is a failure carrying message as the user-facing text.
type AuthClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAuthClient creates an AuthClient for the configured auth service.
func NewAuthClient(cfg config.AuthServerConfig) *AuthClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &AuthClient{
		BaseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Login authenticates with email and password and returns token and user.
func (c *AuthClient) Login(ctx context.Context, email, password string) (*model.AuthPayload, error) {

	body := map[string]string{"email": email, "password": password}
	envelope, err := c.call(ctx, http.MethodPost, "/auth/login", "", body, errors2.LOGIN_FAILED)
	if err != nil {
		return nil, err
	}
	return decodeAuthPayload(envelope)
}

// Register creates a new account. The caller is not authenticated afterward.
func (c *AuthClient) Register(ctx context.Context, registration model.Registration) error {

	_, err := c.call(ctx, http.MethodPost, "/auth/register", "", registration, errors2.REGISTER_FAILED)
	return err
}

// Refresh exchanges the current token for a fresh token and user.
func (c *AuthClient) Refresh(ctx context.Context, token string) (*model.AuthPayload, error) {

	envelope, err := c.call(ctx, http.MethodPost, "/auth/refresh", token, nil, errors2.REFRESH_FAILED)
	if err != nil {
		return nil, err
	}
	return decodeAuthPayload(envelope)
}

// Logout invalidates the token server side.
func (c *AuthClient) Logout(ctx context.Context, token string) error {

	_, err := c.call(ctx, http.MethodPost, "/auth/logout", token, nil, errors2.AUTH_UPSTREAM_FAILED)
	return err
}

// Me resolves the user behind a token.
func (c *AuthClient) Me(ctx context.Context, token string) (*model.User, error) {

	envelope, err := c.call(ctx, http.MethodGet, "/auth/me", token, nil, errors2.UN_AUTHORIZED)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(envelope.Data, &user); err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUTH_PARSE_FAILED.Code,
			Message:     errors2.AUTH_PARSE_FAILED.Message,
			Description: "Failed to parse user payload from /auth/me",
		}, err)
	}
	return &user, nil
}

// call performs the HTTP round trip and envelope validation shared by all
// auth endpoints. failure is the coded message used when the service rejects
// the request; the envelope message becomes the user-facing description.
func (c *AuthClient) call(ctx context.Context, method, path, token string,
	body interface{}, failure errors2.ErrorMessage,
) (*model.Envelope, error) {

	logger := log.GetLogger()
	endpoint := c.BaseURL + path

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.MARSHAL_JSON.Code,
				Message:     errors2.MARSHAL_JSON.Message,
				Description: "Failed to marshal request body for " + endpoint,
			}, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUTH_UPSTREAM_FAILED.Code,
			Message:     errors2.AUTH_UPSTREAM_FAILED.Message,
			Description: "Failed to create request for " + endpoint,
		}, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		errorMsg := "Failed to reach authentication service at " + endpoint
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUTH_UPSTREAM_FAILED.Code,
			Message:     errors2.AUTH_UPSTREAM_FAILED.Message,
			Description: errorMsg,
		}, err)
	}
	defer resp.Body.Close()

	var envelope model.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		errorMsg := "Failed to parse authentication service response from " + endpoint
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUTH_PARSE_FAILED.Code,
			Message:     errors2.AUTH_PARSE_FAILED.Message,
			Description: errorMsg,
		}, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !envelope.Success {
		description := envelope.Message
		if description == "" {
			description = fmt.Sprintf("Authentication service returned status %d", resp.StatusCode)
		}
		logger.Debug("Authentication service rejected request",
			log.String("endpoint", endpoint), log.Int("status", resp.StatusCode))
		status := resp.StatusCode
		if status < 400 {
			status = http.StatusBadGateway
		}
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        failure.Code,
			Message:     failure.Message,
			Description: description,
		}, status)
	}

	return &envelope, nil
}

func decodeAuthPayload(envelope *model.Envelope) (*model.AuthPayload, error) {
	var payload model.AuthPayload
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUTH_PARSE_FAILED.Code,
			Message:     errors2.AUTH_PARSE_FAILED.Message,
			Description: "Failed to parse token payload from the authentication service",
		}, err)
	}
	return &payload, nil
}
