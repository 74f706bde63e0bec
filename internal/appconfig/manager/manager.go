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

package manager

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/nordlicht-consulting/web-platform-service/internal/appconfig/cache"
	model "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// Fetcher is the remote configuration client contract the manager depends on.
type Fetcher interface {
	FetchAppConfig(ctx context.Context, category string, defaults map[string]string) (map[string]string, error)
	FetchI18n(ctx context.Context, category, language string, defaults map[string]string) (map[string]string, error)
}

// Manager mediates between consumers and the configuration service. It hands
// out the shared per-key bundle, performs the one-time load and coalesces
// concurrent first loads so exactly one request fires per key. A failed load
// leaves the bundle unloaded, so the next use retries.
type Manager struct {
	cache  *cache.BundleCache
	client Fetcher
	group  singleflight.Group
}

// NewManager creates a Manager over an injected cache and client.
func NewManager(c *cache.BundleCache, f Fetcher) *Manager {
	return &Manager{
		cache:  c,
		client: f,
	}
}

// Bundle returns the shared bundle for (category, language) without
// triggering a load. Call sites may register defaults on it before Load.
func (m *Manager) Bundle(category, language string) *model.Bundle {
	return m.cache.GetOrCreate(cache.Key(category, language))
}

// Load returns the shared bundle for (category, language), fetching it from
// the configuration service on first use. The currently registered defaults
// travel with the request so missing keys get auto-provisioned upstream.
// On failure the bundle is returned unloaded together with the error;
// lookups on it still yield usable default values.
func (m *Manager) Load(ctx context.Context, category, language string) (*model.Bundle, error) {

	key := cache.Key(category, language)
	bundle := m.cache.GetOrCreate(key)
	if bundle.Loaded() {
		return bundle, nil
	}

	_, err, _ := m.group.Do(key, func() (interface{}, error) {
		// A waiter may arrive after the winner already settled the bundle.
		if bundle.Loaded() {
			return nil, nil
		}

		var values map[string]string
		var fetchErr error
		if language == "" {
			values, fetchErr = m.client.FetchAppConfig(ctx, category, bundle.Defaults())
		} else {
			values, fetchErr = m.client.FetchI18n(ctx, category, language, bundle.Defaults())
		}
		if fetchErr != nil {
			return nil, fetchErr
		}
		bundle.Load(values)
		return nil, nil
	})
	if err != nil {
		log.GetLogger().Warn("Configuration bundle load failed",
			log.String("key", key), log.Error(err))
		return bundle, err
	}
	return bundle, nil
}

// Invalidate drops the bundle for (category, language); the next Load
// re-fetches it.
func (m *Manager) Invalidate(category, language string) {
	m.cache.Invalidate(cache.Key(category, language))
}

// ClearCache drops every cached bundle.
func (m *Manager) ClearCache() {
	m.cache.Clear()
}
