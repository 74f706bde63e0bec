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

package handler

import (
	"encoding/json"
	"net/http"

	model "github.com/nordlicht-consulting/web-platform-service/internal/configsvc/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/configsvc/provider"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/security"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/utils"
)

// ConfigHandler handles the HTTP surface of the configuration service.
// GET returns the stored bundle; POST additionally provisions the caller's
// defaults before returning it.
type ConfigHandler struct {
	Provider provider.ConfigProviderInterface
}

// NewConfigHandler creates a new instance of ConfigHandler.
func NewConfigHandler() *ConfigHandler {

	return &ConfigHandler{
		Provider: provider.NewConfigProvider(),
	}
}

// HandleAppConfig serves application configuration under
// /api/config/app/{category}.
func (h *ConfigHandler) HandleAppConfig(w http.ResponseWriter, r *http.Request) {

	category := utils.ExtractLastPathSegment(r.URL.Path)
	if category == "" || category == "app" {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CATEGORY_REQUIRED.Code,
			Message:     errors.CATEGORY_REQUIRED.Message,
			Description: errors.CATEGORY_REQUIRED.Description,
		}, http.StatusBadRequest))
		return
	}

	h.serveBundle(w, r, category, "")
}

// HandleI18nConfig serves translation bundles under
// /api/config/i18n/{category}/{language}.
func (h *ConfigHandler) HandleI18nConfig(w http.ResponseWriter, r *http.Request) {

	segments := utils.ExtractPathSuffix(r.URL.Path, constants.ConfigI18nPath)
	if len(segments) < 1 || segments[0] == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CATEGORY_REQUIRED.Code,
			Message:     errors.CATEGORY_REQUIRED.Message,
			Description: errors.CATEGORY_REQUIRED.Description,
		}, http.StatusBadRequest))
		return
	}
	if len(segments) < 2 || segments[1] == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.LANGUAGE_REQUIRED.Code,
			Message:     errors.LANGUAGE_REQUIRED.Message,
			Description: errors.LANGUAGE_REQUIRED.Description,
		}, http.StatusBadRequest))
		return
	}

	h.serveBundle(w, r, segments[0], segments[1])
}

// HandleCacheFlush drops the read cache so the next request observes fresh
// database state. Exposed for operators after out-of-band edits.
func (h *ConfigHandler) HandleCacheFlush(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnWithAdminCredentials(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	h.Provider.GetConfigService().FlushCache()
	w.WriteHeader(http.StatusNoContent)
}

// serveBundle implements the shared GET/POST behavior of both config routes.
func (h *ConfigHandler) serveBundle(w http.ResponseWriter, r *http.Request, category, language string) {

	logger := log.GetLogger().With(
		log.String("category", category), log.String("language", language))
	configService := h.Provider.GetConfigService()

	var (
		bundle map[string]string
		err    error
	)

	switch r.Method {
	case http.MethodGet:
		bundle, err = configService.GetBundle(category, language)
	case http.MethodPost:
		var defaults model.ProvisionRequest
		if r.Body != nil && r.ContentLength != 0 {
			if decodeErr := json.NewDecoder(r.Body).Decode(&defaults); decodeErr != nil {
				utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
					Code:        errors.BAD_REQUEST.Code,
					Message:     errors.BAD_REQUEST.Message,
					Description: utils.HandleDecodeError(decodeErr, "config defaults"),
				}, http.StatusBadRequest))
				return
			}
		}
		bundle, err = configService.ProvisionBundle(category, language, defaults)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger.Debug("Serving config bundle", log.Int("entries", len(bundle)))
	utils.WriteJSONResponse(w, http.StatusOK, bundle)
}
