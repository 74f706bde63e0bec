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

package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_ReturnsLoadedValue(t *testing.T) {
	b := NewBundle()
	b.Load(map[string]string{"title": "Willkommen"})
	assert.Equal(t, "Willkommen", b.Get("title", "Welcome"))
}

func TestGet_MissReturnsLiteralDefault(t *testing.T) {
	b := NewBundle()
	b.Load(map[string]string{})

	assert.Equal(t, "Welcome", b.Get("title", "Welcome"))
	// A second call site with its own default gets its own literal back,
	// even though the first registration stands.
	assert.Equal(t, "Hello", b.Get("title", "Hello"))
	assert.Equal(t, "Welcome", b.Defaults()["title"], "first registered default wins")
}

func TestGet_FirstDefaultRegistrationWins(t *testing.T) {
	b := NewBundle()
	b.Get("cta", "Contact us")
	b.Get("cta", "Get in touch")

	defaults := b.Defaults()
	assert.Equal(t, "Contact us", defaults["cta"])
	assert.Len(t, defaults, 1)
}

func TestGet_UnloadedBundleFallsBack(t *testing.T) {
	b := NewBundle()
	assert.False(t, b.Loaded())
	assert.Equal(t, "fallback", b.Get("key", "fallback"))
}

func TestGetNumber(t *testing.T) {
	b := NewBundle()
	b.Load(map[string]string{
		"retries":  "3",
		"padded":   " 42 ",
		"negative": "-7",
		"garbage":  "many",
		"float":    "3.5",
	})

	assert.Equal(t, 3, b.GetNumber("retries", 1))
	assert.Equal(t, 42, b.GetNumber("padded", 1))
	assert.Equal(t, -7, b.GetNumber("negative", 1))
	assert.Equal(t, 1, b.GetNumber("garbage", 1), "unparseable value yields the default")
	assert.Equal(t, 1, b.GetNumber("float", 1), "non-integer value yields the default")
	assert.Equal(t, 9, b.GetNumber("absent", 9))
}

func TestGetNumber_RegistersStringifiedDefault(t *testing.T) {
	b := NewBundle()
	b.GetNumber("timeout", 30)
	assert.Equal(t, "30", b.Defaults()["timeout"])
}

func TestGetBoolean_AbsenceVersusFalse(t *testing.T) {
	b := NewBundle()
	b.Load(map[string]string{
		"enabled":  "true",
		"mixed":    "TRUE",
		"disabled": "false",
		"garbage":  "yes",
	})

	assert.True(t, b.GetBoolean("enabled", false))
	assert.True(t, b.GetBoolean("mixed", false), "comparison is case insensitive")
	assert.False(t, b.GetBoolean("disabled", true), "a present false never falls back")
	assert.False(t, b.GetBoolean("garbage", true), "a present non-true value is false")
	assert.True(t, b.GetBoolean("absent", true), "only absence falls back to the default")
}

func TestContains(t *testing.T) {
	b := NewBundle()
	b.Load(map[string]string{"key": ""})
	assert.True(t, b.Contains("key"), "an empty loaded value still counts as present")
	assert.False(t, b.Contains("other"))
}

func TestLoad_ReplacesWholesale(t *testing.T) {
	b := NewBundle()
	b.Load(map[string]string{"a": "1", "b": "2"})
	b.Load(map[string]string{"c": "3"})

	assert.False(t, b.Contains("a"), "a later load does not merge")
	assert.Equal(t, "3", b.Get("c", ""))
	assert.True(t, b.Loaded())
}

func TestLoad_CopiesInput(t *testing.T) {
	b := NewBundle()
	source := map[string]string{"a": "1"}
	b.Load(source)
	source["a"] = "mutated"

	assert.Equal(t, "1", b.Get("a", ""), "the bundle must not alias the caller's map")
}

func TestBundle_ConcurrentAccess(t *testing.T) {
	b := NewBundle()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.Load(map[string]string{"k": "v"})
		}()
		go func() {
			defer wg.Done()
			_ = b.Get("k", "d")
			_ = b.GetBoolean("flag", false)
			_ = b.Defaults()
		}()
	}
	wg.Wait()
	assert.Equal(t, "v", b.Get("k", "d"))
}
