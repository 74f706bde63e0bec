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
	"encoding/json"
	"time"

	model "github.com/nordlicht-consulting/web-platform-service/internal/consent/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// Store persists and evaluates the consent record of one visitor. All
// operations are best effort: decode and storage failures are logged and
// reported as "no record", never raised.
type Store struct {
	prefs prefs.Store
}

// NewStore creates a consent store over the given preference store.
func NewStore(p prefs.Store) *Store {
	return &Store{prefs: p}
}

// GetConsent reads and decodes the stored record. It returns nil when no
// record exists or the stored value cannot be decoded.
func (s *Store) GetConsent() *model.Record {

	raw, ok := s.prefs.Read(constants.PrefKeyConsent)
	if !ok {
		return nil
	}
	var record model.Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.GetLogger().Warn("Stored consent record could not be decoded", log.Error(err))
		return nil
	}
	return &record
}

// SaveConsent constructs a full record from the given preferences and
// overwrites storage. Unspecified categories are persisted as false and
// necessary is always persisted as true.
func (s *Store) SaveConsent(update model.Preferences) *model.Record {

	record := model.Record{
		Necessary:  true,
		Functional: boolValue(update.Functional),
		Analytics:  boolValue(update.Analytics),
		Marketing:  boolValue(update.Marketing),
		Timestamp:  time.Now().UnixMilli(),
		Version:    constants.ConsentVersion,
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.GetLogger().Warn("Failed to marshal consent record", log.Error(err))
		return &record
	}
	s.prefs.Write(constants.PrefKeyConsent, string(data))
	return &record
}

// UpdateConsent merges the given partial preferences over the existing record
// and persists the result. Without an existing record, unspecified categories
// are treated as false.
func (s *Store) UpdateConsent(update model.Preferences) *model.Record {

	existing := s.GetConsent()
	if existing != nil {
		if update.Functional == nil {
			update.Functional = &existing.Functional
		}
		if update.Analytics == nil {
			update.Analytics = &existing.Analytics
		}
		if update.Marketing == nil {
			update.Marketing = &existing.Marketing
		}
	}
	return s.SaveConsent(update)
}

// AcceptAll persists a record granting every optional category.
func (s *Store) AcceptAll() *model.Record {
	return s.SaveConsent(model.AllGranted())
}

// RejectAll persists a record denying every optional category.
func (s *Store) RejectAll() *model.Record {
	return s.SaveConsent(model.AllDenied())
}

// HasConsentFor reports whether the visitor granted the given category.
// Without a record, every category (including necessary) is denied.
func (s *Store) HasConsentFor(category string) bool {

	record := s.GetConsent()
	if record == nil {
		return false
	}
	switch category {
	case constants.ConsentNecessary:
		return record.Necessary
	case constants.ConsentFunctional:
		return record.Functional
	case constants.ConsentAnalytics:
		return record.Analytics
	case constants.ConsentMarketing:
		return record.Marketing
	default:
		return false
	}
}

// IsConsentOutdated reports whether a record exists whose schema version
// differs from the current one.
func (s *Store) IsConsentOutdated() bool {

	record := s.GetConsent()
	if record == nil {
		return false
	}
	return record.Version != constants.ConsentVersion
}

// ClearConsent removes the stored record entirely.
func (s *Store) ClearConsent() {
	s.prefs.Remove(constants.PrefKeyConsent)
}

func boolValue(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}
