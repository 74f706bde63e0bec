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

package prefs

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

const prefsSchema = `CREATE TABLE IF NOT EXISTS preferences (
	pref_key   TEXT PRIMARY KEY,
	pref_value TEXT NOT NULL
)`

// SQLiteStore is a file-backed Store over an embedded SQLite database.
// It is the server-side analogue of the browser's local storage.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the preference database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open preference store at %s", path)
	}
	// The store is accessed from concurrent request handlers; a single
	// connection serializes writes the way the driver expects.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(prefsSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to initialize preference store schema")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Read(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(
		"SELECT pref_value FROM preferences WHERE pref_key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.GetLogger().Warn("Preference read failed", log.String("key", key), log.Error(err))
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) Write(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO preferences (pref_key, pref_value) VALUES (?, ?)
		 ON CONFLICT(pref_key) DO UPDATE SET pref_value = excluded.pref_value`,
		key, value)
	if err != nil {
		log.GetLogger().Warn("Preference write failed", log.String("key", key), log.Error(err))
	}
}

func (s *SQLiteStore) Remove(key string) {
	_, err := s.db.Exec("DELETE FROM preferences WHERE pref_key = ?", key)
	if err != nil {
		log.GetLogger().Warn("Preference remove failed", log.String("key", key), log.Error(err))
	}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
