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

// Package errorlog keeps a bounded ring of structured error entries per
// visitor, persisted to the preference store under a single key.
package errorlog

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// Entry is one recorded error occurrence.
type Entry struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Log is a bounded, persisted error log. Appends beyond the limit evict the
// oldest entries.
type Log struct {
	mutex sync.Mutex
	store prefs.Store
	limit int
}

// New creates a Log over the given preference store.
func New(store prefs.Store) *Log {
	return &Log{
		store: store,
		limit: constants.ErrorLogLimit,
	}
}

// Append records a new entry and persists the trimmed ring. Persistence
// failures are logged and swallowed.
func (l *Log) Append(code, message string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	entries := l.load()
	entries = append(entries, Entry{
		ID:        uuid.New().String(),
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
	if len(entries) > l.limit {
		entries = entries[len(entries)-l.limit:]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		log.GetLogger().Warn("Failed to marshal error log entries", log.Error(err))
		return
	}
	l.store.Write(constants.PrefKeyErrorLogs, string(data))
}

// Entries returns the persisted entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.load()
}

// Clear removes the persisted ring entirely.
func (l *Log) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.store.Remove(constants.PrefKeyErrorLogs)
}

func (l *Log) load() []Entry {
	raw, ok := l.store.Read(constants.PrefKeyErrorLogs)
	if !ok {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// A corrupt ring is dropped rather than surfaced.
		log.GetLogger().Warn("Discarding undecodable error log ring", log.Error(err))
		return nil
	}
	return entries
}
