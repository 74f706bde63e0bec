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

package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/nordlicht-consulting/web-platform-service/internal/consent/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/consent/store"
	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
)

func newTestController() (*Controller, prefs.Store) {
	p := prefs.NewMemoryStore()
	return NewController(store.NewStore(p)), p
}

func boolPtr(v bool) *bool {
	return &v
}

func TestNewController_NoRecordShowsBanner(t *testing.T) {
	c, _ := newTestController()
	state := c.State()
	assert.False(t, state.HasConsent)
	assert.True(t, state.ShowBanner)
	assert.False(t, state.ShowSettingsModal)
}

func TestNewController_ExistingRecordHidesBanner(t *testing.T) {
	p := prefs.NewMemoryStore()
	s := store.NewStore(p)
	s.AcceptAll()

	c := NewController(s)
	state := c.State()
	assert.True(t, state.HasConsent)
	assert.False(t, state.ShowBanner)
}

func TestNewController_OutdatedRecordReoffersBanner(t *testing.T) {
	p := prefs.NewMemoryStore()
	p.Write(constants.PrefKeyConsent,
		`{"necessary":true,"functional":true,"analytics":true,"marketing":false,"timestamp":1,"version":"0.9.0"}`)

	c := NewController(store.NewStore(p))
	state := c.State()
	assert.True(t, state.HasConsent, "the old decision stays in force")
	assert.True(t, state.ShowBanner, "an outdated schema version re-offers the banner")

	// The recorded preferences still apply until the visitor decides again.
	assert.True(t, c.HasConsentFor(constants.ConsentAnalytics))
	assert.False(t, c.HasConsentFor(constants.ConsentMarketing))
}

func TestAcceptAll_SettlesState(t *testing.T) {
	c, _ := newTestController()
	c.OpenSettings()

	record := c.AcceptAll()
	require.NotNil(t, record)
	assert.True(t, record.Marketing)

	state := c.State()
	assert.True(t, state.HasConsent)
	assert.False(t, state.ShowBanner)
	assert.False(t, state.ShowSettingsModal)
}

func TestRejectAll_SettlesState(t *testing.T) {
	c, _ := newTestController()
	record := c.RejectAll()
	assert.True(t, record.Necessary)
	assert.False(t, record.Functional)

	state := c.State()
	assert.True(t, state.HasConsent, "a reject-all decision is still a decision")
	assert.False(t, state.ShowBanner)
}

func TestUpdateConsent_SettlesState(t *testing.T) {
	c, _ := newTestController()
	record := c.UpdateConsent(model.Preferences{Functional: boolPtr(true)})
	assert.True(t, record.Functional)
	assert.False(t, record.Analytics)

	state := c.State()
	assert.True(t, state.HasConsent)
	assert.False(t, state.ShowBanner)
	assert.False(t, state.ShowSettingsModal)
}

func TestOpenSettings_HidesBanner(t *testing.T) {
	c, _ := newTestController()
	c.OpenSettings()

	state := c.State()
	assert.True(t, state.ShowSettingsModal)
	assert.False(t, state.ShowBanner)
}

func TestCloseSettings_WithoutConsentReoffersBanner(t *testing.T) {
	c, _ := newTestController()
	c.OpenSettings()
	c.CloseSettings()

	state := c.State()
	assert.False(t, state.ShowSettingsModal)
	assert.True(t, state.ShowBanner, "no decision yet, so the banner comes back")
}

func TestCloseSettings_WithConsentKeepsBannerHidden(t *testing.T) {
	c, _ := newTestController()
	c.AcceptAll()
	c.OpenSettings()
	c.CloseSettings()

	state := c.State()
	assert.False(t, state.ShowSettingsModal)
	assert.False(t, state.ShowBanner)
}

func TestCloseBanner_DoesNotPersistADecision(t *testing.T) {
	c, p := newTestController()
	c.CloseBanner()

	state := c.State()
	assert.False(t, state.ShowBanner)
	assert.False(t, state.HasConsent)
	assert.Nil(t, c.Record())

	// A fresh controller over the same store offers the banner again.
	fresh := NewController(store.NewStore(p))
	assert.True(t, fresh.State().ShowBanner)
}

func TestOpenSettings_ValidFromEveryState(t *testing.T) {
	c, _ := newTestController()
	c.AcceptAll()
	c.OpenSettings()
	assert.True(t, c.State().ShowSettingsModal)

	c.RejectAll()
	assert.False(t, c.State().ShowSettingsModal)

	c.OpenSettings()
	c.OpenSettings()
	assert.True(t, c.State().ShowSettingsModal, "repeated opens are harmless")
}
