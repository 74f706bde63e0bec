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

import (
	"strconv"
	"strings"
	"sync"
)

// Bundle is the cached set of configuration/translation key-value pairs for
// one (category, language) pair. Values are authoritative once loaded from
// the configuration service; defaults accumulate from call sites and are
// sent upstream for auto-provisioning. Lookups always return a usable value,
// so rendering degrades gracefully when the service is unreachable.
type Bundle struct {
	mutex    sync.RWMutex
	values   map[string]string
	defaults map[string]string
	loaded   bool
}

// NewBundle creates an empty, unloaded bundle.
func NewBundle() *Bundle {
	return &Bundle{
		values:   make(map[string]string),
		defaults: make(map[string]string),
	}
}

// Get registers defaultValue for key (first writer wins; later calls with a
// different default do not overwrite the registration) and returns the
// loaded value when present. On a miss it returns the literal defaultValue
// passed by this call site, regardless of any earlier registration.
func (b *Bundle) Get(key, defaultValue string) string {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, registered := b.defaults[key]; !registered {
		b.defaults[key] = defaultValue
	}
	if value, ok := b.values[key]; ok {
		return value
	}
	return defaultValue
}

// GetNumber parses the loaded value as a base-10 integer. Absent or
// unparseable values yield defaultValue.
func (b *Bundle) GetNumber(key string, defaultValue int) int {
	raw := b.Get(key, strconv.Itoa(defaultValue))
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBoolean returns true iff the loaded value equals "true" case
// insensitively. Only absence falls back to defaultValue; a loaded value of
// "false" or garbage yields false.
func (b *Bundle) GetBoolean(key string, defaultValue bool) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, registered := b.defaults[key]; !registered {
		b.defaults[key] = strconv.FormatBool(defaultValue)
	}
	value, ok := b.values[key]
	if !ok {
		return defaultValue
	}
	return strings.EqualFold(value, "true")
}

// Contains reports whether key is present among the loaded values.
func (b *Bundle) Contains(key string) bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	_, ok := b.values[key]
	return ok
}

// Load replaces the bundle's values wholesale and marks it loaded.
// A later load wins over whatever was present before; there is no merge.
func (b *Bundle) Load(values map[string]string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	replaced := make(map[string]string, len(values))
	for k, v := range values {
		replaced[k] = v
	}
	b.values = replaced
	b.loaded = true
}

// Loaded reports whether a remote fetch has completed for this bundle.
func (b *Bundle) Loaded() bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return b.loaded
}

// Defaults returns a snapshot of the registered defaults. This is the
// provisioning payload sent to the configuration service.
func (b *Bundle) Defaults() map[string]string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	snapshot := make(map[string]string, len(b.defaults))
	for k, v := range b.defaults {
		snapshot[k] = v
	}
	return snapshot
}

// Values returns a snapshot of the loaded values.
func (b *Bundle) Values() map[string]string {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	snapshot := make(map[string]string, len(b.values))
	for k, v := range b.values {
		snapshot[k] = v
	}
	return snapshot
}
