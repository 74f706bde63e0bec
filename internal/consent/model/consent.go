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

// Record is the persisted cookie consent record of one visitor.
// Necessary is always true in a persisted record; the remaining categories
// are visitor-controlled. Timestamp is epoch milliseconds of the last write.
type Record struct {
	Necessary  bool   `json:"necessary"`
	Functional bool   `json:"functional"`
	Analytics  bool   `json:"analytics"`
	Marketing  bool   `json:"marketing"`
	Timestamp  int64  `json:"timestamp"`
	Version    string `json:"version"`
}

// Preferences is a partial consent update. Nil fields are "not specified":
// on first save they default to false, on update they retain the prior value.
type Preferences struct {
	Functional *bool `json:"functional,omitempty"`
	Analytics  *bool `json:"analytics,omitempty"`
	Marketing  *bool `json:"marketing,omitempty"`
}

// UIState is the non-persisted consent UI state of one visitor.
type UIState struct {
	HasConsent        bool `json:"has_consent"`
	ShowBanner        bool `json:"show_banner"`
	ShowSettingsModal bool `json:"show_settings_modal"`
}

func boolPtr(v bool) *bool {
	return &v
}

// AllGranted returns a Preferences value with every optional category granted.
func AllGranted() Preferences {
	return Preferences{
		Functional: boolPtr(true),
		Analytics:  boolPtr(true),
		Marketing:  boolPtr(true),
	}
}

// AllDenied returns a Preferences value with every optional category denied.
func AllDenied() Preferences {
	return Preferences{
		Functional: boolPtr(false),
		Analytics:  boolPtr(false),
		Marketing:  boolPtr(false),
	}
}
