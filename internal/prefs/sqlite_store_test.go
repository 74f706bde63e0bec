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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTempSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_ReadWriteRemove(t *testing.T) {
	s := newTempSQLiteStore(t)

	_, ok := s.Read("language")
	assert.False(t, ok)

	s.Write("language", "de")
	value, ok := s.Read("language")
	assert.True(t, ok)
	assert.Equal(t, "de", value)

	s.Write("language", "en")
	value, _ = s.Read("language")
	assert.Equal(t, "en", value, "upsert overwrites")

	s.Remove("language")
	_, ok = s.Read("language")
	assert.False(t, ok)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	s.Write("visitor-a:cookie_consent", `{"necessary":true}`)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok := reopened.Read("visitor-a:cookie_consent")
	assert.True(t, ok)
	assert.Equal(t, `{"necessary":true}`, value)
}

func TestSQLiteStore_WorksThroughScopedStore(t *testing.T) {
	s := newTempSQLiteStore(t)
	scoped := Scoped(s, "visitor-a")

	scoped.Write("language", "de")
	value, ok := scoped.Read("language")
	assert.True(t, ok)
	assert.Equal(t, "de", value)

	other := Scoped(s, "visitor-b")
	_, ok = other.Read("language")
	assert.False(t, ok)
}
