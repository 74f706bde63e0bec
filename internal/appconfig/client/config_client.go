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
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nordlicht-consulting/web-platform-service/internal/system/config"
	errors2 "github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// Client issues configuration bundle requests against the configuration
// service. Responses are flat string maps with no envelope.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the configured configuration service.
func NewClient(cfg config.ConfigServiceConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchAppConfig fetches the application bundle for a category, sending the
// registered defaults for auto-provisioning.
func (c *Client) FetchAppConfig(ctx context.Context, category string, defaults map[string]string) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/api/config/app/%s", c.BaseURL, category)
	return c.post(ctx, endpoint, defaults)
}

// FetchI18n fetches the translation bundle for a category and language,
// sending the registered defaults for auto-provisioning.
func (c *Client) FetchI18n(ctx context.Context, category, language string, defaults map[string]string) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/api/config/i18n/%s/%s", c.BaseURL, category, language)
	return c.post(ctx, endpoint, defaults)
}

func (c *Client) post(ctx context.Context, endpoint string, defaults map[string]string) (map[string]string, error) {

	logger := log.GetLogger()
	if defaults == nil {
		defaults = map[string]string{}
	}

	payload, err := json.Marshal(defaults)
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: "Failed to marshal defaults payload for " + endpoint,
		}, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFIG_FETCH_FAILED.Code,
			Message:     errors2.CONFIG_FETCH_FAILED.Message,
			Description: "Failed to create request for " + endpoint,
		}, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		errorMsg := "Failed to reach configuration service at " + endpoint
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFIG_FETCH_FAILED.Code,
			Message:     errors2.CONFIG_FETCH_FAILED.Message,
			Description: errorMsg,
		}, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		errorMsg := fmt.Sprintf("Configuration service returned status %d for %s. Response: %s",
			resp.StatusCode, endpoint, strings.TrimSpace(string(bodyBytes)))
		logger.Debug(errorMsg)
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFIG_FETCH_FAILED.Code,
			Message:     errors2.CONFIG_FETCH_FAILED.Message,
			Description: errorMsg,
		}, fmt.Errorf("configuration service non-200: %d", resp.StatusCode))
	}

	var values map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&values); err != nil {
		errorMsg := "Failed to parse configuration service response from " + endpoint
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFIG_PARSE_FAILED.Code,
			Message:     errors2.CONFIG_PARSE_FAILED.Message,
			Description: errorMsg,
		}, err)
	}
	return values, nil
}
