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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "value")

	value, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", value)
}

func TestCache_MissingKey(t *testing.T) {
	c := NewCache(time.Minute)
	_, found := c.Get("absent")
	assert.False(t, found)
}

func TestCache_Expiration(t *testing.T) {
	c := NewCache(10 * time.Millisecond)
	c.Set("key", "value")

	time.Sleep(20 * time.Millisecond)
	_, found := c.Get("key")
	assert.False(t, found, "expired entries must not be served")
}

func TestCache_Delete(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "value")
	c.Delete("key")

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCache_Clear(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	_, found := c.Get("a")
	assert.False(t, found)
	_, found = c.Get("b")
	assert.False(t, found)
}

func TestCache_OverwriteResetsValue(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "old")
	c.Set("key", "new")

	value, _ := c.Get("key")
	assert.Equal(t, "new", value)
}
