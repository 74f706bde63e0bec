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

package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerrors "github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
)

func TestHandleError_ClientErrorCarriesStatusAndCode(t *testing.T) {
	recorder := httptest.NewRecorder()
	HandleError(recorder, customerrors.NewClientError(customerrors.ErrorMessage{
		Code:        "WPS-11001",
		Message:     "Invalid request",
		Description: "Category is required",
	}, http.StatusBadRequest))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "WPS-11001", body["code"])
	assert.Equal(t, "Category is required", body["description"])
}

func TestHandleError_ServerErrorIsMasked(t *testing.T) {
	recorder := httptest.NewRecorder()
	HandleError(recorder, customerrors.NewServerError(customerrors.ErrorMessage{
		Code:    "WPS-15002",
		Message: "Failed to read config entries",
	}, errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused",
		"internal details must not leak to clients")
}

func TestExtractLastPathSegment(t *testing.T) {
	assert.Equal(t, "landing", ExtractLastPathSegment("/api/config/app/landing"))
	assert.Equal(t, "landing", ExtractLastPathSegment("/api/config/app/landing/"))
	assert.Equal(t, "", ExtractLastPathSegment(""))
}

func TestExtractPathSuffix(t *testing.T) {
	segments := ExtractPathSuffix("/api/config/i18n/landing/de", "/api/config/i18n")
	require.Len(t, segments, 2)
	assert.Equal(t, "landing", segments[0])
	assert.Equal(t, "de", segments[1])

	assert.Nil(t, ExtractPathSuffix("/api/config/i18n", "/api/config/i18n"))
	assert.Nil(t, ExtractPathSuffix("/api/config/i18n/", "/api/config/i18n"))
}

func TestHandleDecodeError(t *testing.T) {
	var target map[string]string

	err := json.Unmarshal([]byte("{not json"), &target)
	assert.Contains(t, HandleDecodeError(err, "config defaults"), "Malformed JSON")

	err = json.Unmarshal([]byte(`"just a string"`), &target)
	assert.Contains(t, HandleDecodeError(err, "config defaults"), "invalid top-level type")

	assert.Equal(t, "", HandleDecodeError(nil, "config defaults"))
}
