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

package service

import (
	"sync"
	"time"

	"github.com/nordlicht-consulting/web-platform-service/internal/configsvc/store"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/cache"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/config"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/errors"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

const defaultCacheTTL = 5 * time.Minute

var (
	entryCache     *cache.Cache
	entryCacheOnce sync.Once
)

// ConfigServiceInterface defines the operations of the configuration service.
type ConfigServiceInterface interface {
	GetBundle(category, language string) (map[string]string, error)
	ProvisionBundle(category, language string, defaults map[string]string) (map[string]string, error)
	FlushCache()
}

// ConfigService is the default implementation of ConfigServiceInterface.
type ConfigService struct {
	Store store.ConfigStoreInterface
}

// GetConfigService creates a new instance of ConfigService.
func GetConfigService() ConfigServiceInterface {

	return &ConfigService{
		Store: store.NewConfigStore(),
	}
}

// GetBundle returns the stored entries for a category and language, served
// from the read cache when fresh.
func (s *ConfigService) GetBundle(category, language string) (map[string]string, error) {

	cacheKey := bundleCacheKey(category, language)
	if cached, found := getEntryCache().Get(cacheKey); found {
		if entries, ok := cached.(map[string]string); ok {
			return entries, nil
		}
	}

	entries, err := s.Store.GetEntries(category, language)
	if err != nil {
		log.GetLogger().Error("Failed to read config entries",
			log.String("category", category), log.String("language", language), log.Error(err))
		return nil, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.GET_CONFIG_ENTRIES.Code,
			Message:     errors.GET_CONFIG_ENTRIES.Message,
			Description: errors.GET_CONFIG_ENTRIES.Description,
		}, err)
	}

	getEntryCache().Set(cacheKey, entries)
	return entries, nil
}

// ProvisionBundle inserts every missing default for the category and
// language and returns the full resulting bundle. Existing values are left
// untouched, so two deployments racing on the same category converge on
// whichever defaults landed first.
func (s *ConfigService) ProvisionBundle(category, language string, defaults map[string]string) (map[string]string, error) {

	if err := s.Store.InsertMissing(category, language, defaults); err != nil {
		log.GetLogger().Error("Failed to provision config defaults",
			log.String("category", category), log.String("language", language), log.Error(err))
		return nil, errors.NewServerError(errors.ErrorMessage{
			Code:        errors.PROVISION_CONFIG_KEYS.Code,
			Message:     errors.PROVISION_CONFIG_KEYS.Message,
			Description: errors.PROVISION_CONFIG_KEYS.Description,
		}, err)
	}

	// The cached copy predates provisioning and may miss the new keys.
	getEntryCache().Delete(bundleCacheKey(category, language))

	return s.GetBundle(category, language)
}

// FlushCache drops every cached bundle.
func (s *ConfigService) FlushCache() {

	getEntryCache().Clear()
	log.GetLogger().Info("Configuration cache flushed")
}

func getEntryCache() *cache.Cache {

	entryCacheOnce.Do(func() {
		ttl := defaultCacheTTL
		if config.IsRuntimeInitialized() && config.GetRuntime().Config.Cache.ConfigTTLSeconds > 0 {
			ttl = time.Duration(config.GetRuntime().Config.Cache.ConfigTTLSeconds) * time.Second
		}
		entryCache = cache.NewCache(ttl)
	})
	return entryCache
}

func bundleCacheKey(category, language string) string {

	if language == "" {
		return category
	}
	return category + constants.CacheKeySeparator + language
}
