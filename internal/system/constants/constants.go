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

package constants

const (
	ApiBasePath     = "/api"
	ConfigAppPath   = "/api/config/app"
	ConfigI18nPath  = "/api/config/i18n"
	ConfigCachePath = "/api/config/cache"
	SessionBasePath = "/api/session"
	ConsentBasePath = "/api/consent"
	ContentBasePath = "/api/content"
)

// Preference store keys. These mirror the keys the browser front end keeps
// in local storage, scoped per visitor on the server side.
const (
	PrefKeyAuthToken = "auth_token"
	PrefKeyConsent   = "cookie_consent"
	PrefKeyLanguage  = "language"
	PrefKeyErrorLogs = "app_error_logs"
)

// Cookie consent categories. Necessary is always granted and cannot be
// disabled by the visitor.
const (
	ConsentNecessary  = "necessary"
	ConsentFunctional = "functional"
	ConsentAnalytics  = "analytics"
	ConsentMarketing  = "marketing"
)

var AllowedConsentCategories = map[string]bool{
	ConsentNecessary:  true,
	ConsentFunctional: true,
	ConsentAnalytics:  true,
	ConsentMarketing:  true,
}

// ConsentVersion is the semantic version of the persisted consent schema.
const ConsentVersion = "1.0.0"

// ErrorLogLimit bounds the persisted structured error log ring.
const ErrorLogLimit = 50

// CacheKeySeparator joins category and language into a bundle cache key.
const CacheKeySeparator = "_"

// VisitorCookieName carries the gateway's visitor identifier.
const VisitorCookieName = "wps_visitor"

// DefaultLanguage is used when a visitor has no stored language preference.
const DefaultLanguage = "de"

type contextKey string

// TraceIDContextKey carries the per-request trace identifier.
const TraceIDContextKey contextKey = "trace_id"

// VisitorContextKey carries the resolved visitor identifier.
const VisitorContextKey contextKey = "visitor_id"
