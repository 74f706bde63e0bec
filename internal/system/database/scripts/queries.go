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

package scripts

// Queries of the configuration service. The language column is the empty
// string for application (language-independent) configuration.
const (
	GetConfigEntries = `SELECT entry_key, entry_value FROM config_entries
		WHERE category = $1 AND language = $2`

	InsertConfigEntryIfAbsent = `INSERT INTO config_entries (category, language, entry_key, entry_value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category, language, entry_key) DO NOTHING`

	UpdateConfigEntry = `UPDATE config_entries SET entry_value = $4, updated_at = now()
		WHERE category = $1 AND language = $2 AND entry_key = $3`
)
