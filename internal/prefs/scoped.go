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

// ScopedStore namespaces all keys with a visitor identifier so one backing
// store can serve many visitors.
type ScopedStore struct {
	inner     Store
	namespace string
}

// Scoped wraps store so that every key is prefixed with "namespace:".
func Scoped(store Store, namespace string) *ScopedStore {
	return &ScopedStore{
		inner:     store,
		namespace: namespace,
	}
}

func (s *ScopedStore) scopedKey(key string) string {
	return s.namespace + ":" + key
}

func (s *ScopedStore) Read(key string) (string, bool) {
	return s.inner.Read(s.scopedKey(key))
}

func (s *ScopedStore) Write(key, value string) {
	s.inner.Write(s.scopedKey(key), value)
}

func (s *ScopedStore) Remove(key string) {
	s.inner.Remove(s.scopedKey(key))
}
