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

package store

import (
	"fmt"

	model "github.com/nordlicht-consulting/web-platform-service/internal/configsvc/model"
	dbprovider "github.com/nordlicht-consulting/web-platform-service/internal/system/database/provider"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/database/scripts"
)

// ConfigStoreInterface defines the persistence operations of the
// configuration service.
type ConfigStoreInterface interface {
	GetEntries(category, language string) (map[string]string, error)
	InsertMissing(category, language string, defaults map[string]string) error
	UpdateEntry(entry model.ConfigEntry) error
}

// ConfigStore is the Postgres-backed implementation of ConfigStoreInterface.
type ConfigStore struct {
	DBProvider dbprovider.DBProviderInterface
}

// NewConfigStore creates a new instance of ConfigStore.
func NewConfigStore() ConfigStoreInterface {

	return &ConfigStore{
		DBProvider: dbprovider.NewDBProvider(),
	}
}

// GetEntries returns every key and value stored for the category and
// language. A category with no rows yields an empty map, not an error.
func (s *ConfigStore) GetEntries(category, language string) (map[string]string, error) {

	dbClient, err := s.DBProvider.GetDBClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(scripts.GetConfigEntries, category, language)
	if err != nil {
		return nil, fmt.Errorf("failed to query config entries: %w", err)
	}

	entries := make(map[string]string, len(results))
	for _, row := range results {
		key, okKey := row["entry_key"].(string)
		value, okValue := row["entry_value"].(string)
		if !okKey || !okValue {
			return nil, fmt.Errorf("unexpected column types in config entry row")
		}
		entries[key] = value
	}
	return entries, nil
}

// InsertMissing provisions the given defaults, inserting only keys that do
// not exist yet. Values already present are never overwritten. All inserts
// happen in one transaction so a partially provisioned category is not
// observable.
func (s *ConfigStore) InsertMissing(category, language string, defaults map[string]string) error {

	if len(defaults) == 0 {
		return nil
	}

	dbClient, err := s.DBProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for key, value := range defaults {
		if _, err := tx.Exec(scripts.InsertConfigEntryIfAbsent, category, language, key, value); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				return fmt.Errorf("failed to rollback after insert error: %w", rollbackErr)
			}
			return fmt.Errorf("failed to provision config entry %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit provisioning transaction: %w", err)
	}
	return nil
}

// UpdateEntry sets the value of an existing key.
func (s *ConfigStore) UpdateEntry(entry model.ConfigEntry) error {

	dbClient, err := s.DBProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}
	defer dbClient.Close()

	if _, err := dbClient.ExecuteQuery(scripts.UpdateConfigEntry,
		entry.Category, entry.Language, entry.Key, entry.Value); err != nil {
		return fmt.Errorf("failed to update config entry %q: %w", entry.Key, err)
	}
	return nil
}
