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

package errors

const errorPrefix = "WPS-"

var (
	// Server error codes

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Unable to initialize database client.",
	}

	GET_CONFIG_ENTRIES = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching configuration entries.",
	}

	PROVISION_CONFIG_KEYS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while provisioning configuration keys.",
	}

	CONFIG_FETCH_FAILED = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while fetching configuration from the configuration service.",
	}

	CONFIG_PARSE_FAILED = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while parsing the configuration service response.",
	}

	AUTH_UPSTREAM_FAILED = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while calling the authentication service.",
	}

	AUTH_PARSE_FAILED = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while parsing the authentication service response.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while marshalling JSON.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	LOGIN_FAILED = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Login failed.",
	}

	REGISTER_FAILED = ErrorMessage{
		Code:    errorPrefix + "11004",
		Message: "Registration failed.",
	}

	REFRESH_FAILED = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Token refresh failed.",
	}

	NO_ACTIVE_TOKEN = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "No active token.",
		Description: "A token refresh was requested but no session token is present.",
	}

	CATEGORY_REQUIRED = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "Category is required.",
		Description: "A configuration category is required to serve this request.",
	}

	LANGUAGE_REQUIRED = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "Language is required.",
		Description: "A language code is required to serve translation bundles.",
	}

	CONSENT_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Invalid consent update payload.",
	}

	SESSION_UNAUTHENTICATED = ErrorMessage{
		Code:        errorPrefix + "11010",
		Message:     "Not authenticated.",
		Description: "No authenticated session exists for this visitor.",
	}
)
