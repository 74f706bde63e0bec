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

// Package prefs provides the persisted preference store: a synchronous,
// best-effort key-value abstraction. Failures are logged at the call site
// and never propagate to callers, which fall back to "no value" semantics.
package prefs

// Store is the persisted preference store contract.
type Store interface {
	// Read returns the stored value for key, or ok=false when absent or
	// when the backing store failed.
	Read(key string) (value string, ok bool)
	// Write stores value under key, best effort.
	Write(key, value string)
	// Remove deletes key, best effort.
	Remove(key string)
}
