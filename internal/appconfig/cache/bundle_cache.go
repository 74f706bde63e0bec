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

package cache

import (
	"sync"

	model "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
)

// BundleCache owns at most one Bundle per cache key for its lifetime. It is
// an explicitly constructed, injectable object so tests can build isolated
// instances. There is no TTL; Invalidate and Clear are the eviction API.
type BundleCache struct {
	mutex   sync.RWMutex
	bundles map[string]*model.Bundle
}

// NewBundleCache creates an empty bundle cache.
func NewBundleCache() *BundleCache {
	return &BundleCache{
		bundles: make(map[string]*model.Bundle),
	}
}

// Key derives the cache key for a category and optional language.
func Key(category, language string) string {
	if language == "" {
		return category
	}
	return category + constants.CacheKeySeparator + language
}

// GetOrCreate returns the shared bundle for key, creating it when absent.
func (c *BundleCache) GetOrCreate(key string) *model.Bundle {
	c.mutex.RLock()
	bundle, ok := c.bundles[key]
	c.mutex.RUnlock()
	if ok {
		return bundle
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if bundle, ok := c.bundles[key]; ok {
		return bundle
	}
	bundle = model.NewBundle()
	c.bundles[key] = bundle
	return bundle
}

// Invalidate drops the bundle for key; the next use re-fetches.
func (c *BundleCache) Invalidate(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.bundles, key)
}

// Clear drops every bundle. Used for test teardown and cache administration.
func (c *BundleCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.bundles = make(map[string]*model.Bundle)
}

// Len returns the number of cached bundles.
func (c *BundleCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.bundles)
}
