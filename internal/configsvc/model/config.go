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

package model

// ConfigEntry represents a single configuration value scoped to a category
// and, for translations, a language. Language is empty for application
// configuration.
type ConfigEntry struct {
	Category string `json:"category"`
	Language string `json:"language,omitempty"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

// ProvisionRequest carries the caller's default values. Keys missing from
// the store are created with these values; existing values win.
type ProvisionRequest map[string]string
