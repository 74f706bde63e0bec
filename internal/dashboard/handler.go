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
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	appconfig "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/manager"
	consentmodel "github.com/nordlicht-consulting/web-platform-service/internal/consent/model"
	sessionmodel "github.com/nordlicht-consulting/web-platform-service/internal/session/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/utils"
)

// Handler is the HTTP surface of the site gateway. Each request is resolved
// to a visitor via the gateway cookie, and the visitor's controllers carry
// the actual behavior.
type Handler struct {
	Registry *Registry
	Config   *appconfig.Manager
}

// NewHandler creates a gateway handler over a visitor registry and the
// configuration manager.
func NewHandler(registry *Registry, configManager *appconfig.Manager) *Handler {
	return &Handler{
		Registry: registry,
		Config:   configManager,
	}
}

// Register wires the gateway routes onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {

	mux.HandleFunc("POST "+constants.SessionBasePath+"/login", h.HandleLogin)
	mux.HandleFunc("POST "+constants.SessionBasePath+"/register", h.HandleRegister)
	mux.HandleFunc("POST "+constants.SessionBasePath+"/logout", h.HandleLogout)
	mux.HandleFunc("POST "+constants.SessionBasePath+"/refresh", h.HandleRefresh)
	mux.HandleFunc("GET "+constants.SessionBasePath+"/me", h.HandleMe)

	mux.HandleFunc("GET "+constants.ConsentBasePath, h.HandleConsentState)
	mux.HandleFunc("PUT "+constants.ConsentBasePath, h.HandleConsentUpdate)
	mux.HandleFunc("POST "+constants.ConsentBasePath+"/accept-all", h.HandleConsentAcceptAll)
	mux.HandleFunc("POST "+constants.ConsentBasePath+"/reject-all", h.HandleConsentRejectAll)
	mux.HandleFunc("POST "+constants.ConsentBasePath+"/settings/open", h.HandleConsentOpenSettings)
	mux.HandleFunc("POST "+constants.ConsentBasePath+"/settings/close", h.HandleConsentCloseSettings)
	mux.HandleFunc("POST "+constants.ConsentBasePath+"/banner/close", h.HandleConsentCloseBanner)

	mux.HandleFunc("GET "+constants.ContentBasePath+"/", h.HandleContent)

	mux.HandleFunc("GET /api/errors", h.HandleErrorLog)
	mux.HandleFunc("DELETE /api/errors", h.HandleErrorLogClear)
}

// resolveVisitor returns the visitor behind the gateway cookie, minting a
// new identifier and setting the cookie when none is present.
func (h *Handler) resolveVisitor(w http.ResponseWriter, r *http.Request) *Visitor {

	var id string
	if cookie, err := r.Cookie(constants.VisitorCookieName); err == nil && cookie.Value != "" {
		id = cookie.Value
	} else {
		id = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     constants.VisitorCookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return h.Registry.Visitor(r.Context(), id)
}

// writeEnvelope mirrors the auth service response shape so the front end can
// treat gateway and auth responses uniformly.
func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {

	utils.WriteJSONResponse(w, status, struct {
		Success bool        `json:"success"`
		Message string      `json:"message,omitempty"`
		Data    interface{} `json:"data,omitempty"`
	}{
		Success: status >= 200 && status <= 299,
		Message: message,
		Data:    data,
	})
}

// HandleLogin authenticates the visitor against the auth service.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "login"),
		}, http.StatusBadRequest))
		return
	}

	if err := visitor.Session.Login(r.Context(), body.Email, body.Password); err != nil {
		visitor.ErrorLog.Append(errors.LOGIN_FAILED.Code, errors.LOGIN_FAILED.Message)
		utils.HandleError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Login successful", visitor.Session.User())
}

// HandleRegister creates an account. The visitor stays unauthenticated until
// the address is verified and they log in.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)

	var registration sessionmodel.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "registration"),
		}, http.StatusBadRequest))
		return
	}

	if err := visitor.Session.Register(r.Context(), registration); err != nil {
		visitor.ErrorLog.Append(errors.REGISTER_FAILED.Code, errors.REGISTER_FAILED.Message)
		utils.HandleError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "Registration successful. Please verify your email address.", nil)
}

// HandleLogout clears the session. Always succeeds.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.Session.Logout(r.Context())
	writeEnvelope(w, http.StatusOK, "Logged out", nil)
}

// HandleRefresh exchanges the current token. A failed refresh leaves the
// visitor logged out, so the 401 here is also the session's new state.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	if err := visitor.Session.Refresh(r.Context()); err != nil {
		visitor.ErrorLog.Append(errors.REFRESH_FAILED.Code, errors.REFRESH_FAILED.Message)
		utils.HandleError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Token refreshed", visitor.Session.User())
}

// HandleMe returns the authenticated user.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	user := visitor.Session.User()
	if user == nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.SESSION_UNAUTHENTICATED.Code,
			Message:     errors.SESSION_UNAUTHENTICATED.Message,
			Description: errors.SESSION_UNAUTHENTICATED.Description,
		}, http.StatusUnauthorized))
		return
	}
	writeEnvelope(w, http.StatusOK, "", user)
}

// consentResponse is the payload of every consent route.
type consentResponse struct {
	State  consentmodel.UIState `json:"state"`
	Record *consentmodel.Record `json:"record,omitempty"`
}

func (h *Handler) writeConsent(w http.ResponseWriter, visitor *Visitor) {
	utils.WriteJSONResponse(w, http.StatusOK, consentResponse{
		State:  visitor.Consent.State(),
		Record: visitor.Consent.Record(),
	})
}

// HandleConsentState returns the current banner state and stored record.
func (h *Handler) HandleConsentState(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	h.writeConsent(w, visitor)
}

// HandleConsentUpdate stores a partial category selection. Unspecified
// categories keep their previous values.
func (h *Handler) HandleConsentUpdate(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)

	var update consentmodel.Preferences
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&update); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CONSENT_BAD_REQUEST.Code,
			Message:     errors.CONSENT_BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "consent preferences"),
		}, http.StatusBadRequest))
		return
	}

	visitor.Consent.UpdateConsent(update)
	h.writeConsent(w, visitor)
}

// HandleConsentAcceptAll grants every category.
func (h *Handler) HandleConsentAcceptAll(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.Consent.AcceptAll()
	h.writeConsent(w, visitor)
}

// HandleConsentRejectAll denies every optional category.
func (h *Handler) HandleConsentRejectAll(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.Consent.RejectAll()
	h.writeConsent(w, visitor)
}

// HandleConsentOpenSettings shows the settings modal and hides the banner.
func (h *Handler) HandleConsentOpenSettings(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.Consent.OpenSettings()
	h.writeConsent(w, visitor)
}

// HandleConsentCloseSettings hides the modal. Without a stored decision the
// banner is offered again.
func (h *Handler) HandleConsentCloseSettings(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.Consent.CloseSettings()
	h.writeConsent(w, visitor)
}

// HandleConsentCloseBanner dismisses the banner without storing a decision.
func (h *Handler) HandleConsentCloseBanner(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.Consent.CloseBanner()
	h.writeConsent(w, visitor)
}

// contentResponse carries a bundle's values. loaded=false means the fetch
// failed and the values are the registered defaults.
type contentResponse struct {
	Category string            `json:"category"`
	Language string            `json:"language,omitempty"`
	Loaded   bool              `json:"loaded"`
	Values   map[string]string `json:"values"`
}

// HandleContent serves a content bundle. /api/content/app/{category}
// returns language-independent application configuration; every other
// /api/content/{category} path returns translations in the resolved
// language. A lang query parameter wins over the stored preference and is
// persisted as the new preference.
func (h *Handler) HandleContent(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)

	segments := utils.ExtractPathSuffix(r.URL.Path, constants.ContentBasePath)
	if len(segments) == 0 || segments[0] == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CATEGORY_REQUIRED.Code,
			Message:     errors.CATEGORY_REQUIRED.Message,
			Description: errors.CATEGORY_REQUIRED.Description,
		}, http.StatusBadRequest))
		return
	}

	category := segments[0]
	language := ""
	if category == "app" {
		if len(segments) < 2 || segments[1] == "" {
			utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
				Code:        errors.CATEGORY_REQUIRED.Code,
				Message:     errors.CATEGORY_REQUIRED.Message,
				Description: errors.CATEGORY_REQUIRED.Description,
			}, http.StatusBadRequest))
			return
		}
		category = segments[1]
	} else {
		language = h.resolveLanguage(r, visitor)
	}

	bundle, err := h.Config.Load(r.Context(), category, language)
	if err != nil {
		// The page still renders with the registered defaults.
		visitor.ErrorLog.Append(errors.CONFIG_FETCH_FAILED.Code, errors.CONFIG_FETCH_FAILED.Message)
		log.GetLogger().Warn("Serving default content after fetch failure",
			log.String("category", category), log.String("language", language), log.Error(err))
		utils.WriteJSONResponse(w, http.StatusOK, contentResponse{
			Category: category,
			Language: language,
			Loaded:   false,
			Values:   bundle.Defaults(),
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, contentResponse{
		Category: category,
		Language: language,
		Loaded:   bundle.Loaded(),
		Values:   bundle.Values(),
	})
}

// resolveLanguage picks the translation language for a request and persists
// an explicit choice.
func (h *Handler) resolveLanguage(r *http.Request, visitor *Visitor) string {

	if lang := r.URL.Query().Get("lang"); lang != "" {
		visitor.Prefs.Write(constants.PrefKeyLanguage, lang)
		return lang
	}
	if lang, ok := visitor.Prefs.Read(constants.PrefKeyLanguage); ok && lang != "" {
		return lang
	}
	return constants.DefaultLanguage
}

// HandleErrorLog returns the visitor's persisted error entries.
func (h *Handler) HandleErrorLog(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	utils.WriteJSONResponse(w, http.StatusOK, visitor.ErrorLog.Entries())
}

// HandleErrorLogClear empties the visitor's error log.
func (h *Handler) HandleErrorLogClear(w http.ResponseWriter, r *http.Request) {

	visitor := h.resolveVisitor(w, r)
	visitor.ErrorLog.Clear()
	w.WriteHeader(http.StatusNoContent)
}
