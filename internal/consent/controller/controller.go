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
	"sync"

	model "github.com/nordlicht-consulting/web-platform-service/internal/consent/model"
	"github.com/nordlicht-consulting/web-platform-service/internal/consent/store"
)

// Controller drives the consent UI state machine of one visitor: banner
// visibility, settings modal visibility and the persisted record. The
// machine is flat: every action is valid from every state and persistence
// is last-write-wins.
type Controller struct {
	mutex sync.Mutex
	store *store.Store

	hasConsent        bool
	showBanner        bool
	showSettingsModal bool
}

// NewController creates a controller and performs the initial transition:
// a stored record hides the banner, an absent one offers it. A record with
// an outdated schema version re-offers the banner while the recorded
// preferences stay in force until the visitor decides again.
func NewController(s *store.Store) *Controller {

	c := &Controller{store: s}
	record := s.GetConsent()
	if record != nil {
		c.hasConsent = true
		c.showBanner = s.IsConsentOutdated()
	} else {
		c.hasConsent = false
		c.showBanner = true
	}
	return c
}

// State returns a snapshot of the UI state.
func (c *Controller) State() model.UIState {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return model.UIState{
		HasConsent:        c.hasConsent,
		ShowBanner:        c.showBanner,
		ShowSettingsModal: c.showSettingsModal,
	}
}

// Record returns the persisted record, or nil when none exists.
func (c *Controller) Record() *model.Record {
	return c.store.GetConsent()
}

// AcceptAll persists an all-granted record and dismisses banner and modal.
func (c *Controller) AcceptAll() *model.Record {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	record := c.store.AcceptAll()
	c.settle()
	return record
}

// RejectAll persists an all-denied record and dismisses banner and modal.
func (c *Controller) RejectAll() *model.Record {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	record := c.store.RejectAll()
	c.settle()
	return record
}

// UpdateConsent persists the merged record and dismisses banner and modal.
func (c *Controller) UpdateConsent(update model.Preferences) *model.Record {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	record := c.store.UpdateConsent(update)
	c.settle()
	return record
}

// OpenSettings shows the settings modal and hides the banner.
func (c *Controller) OpenSettings() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.showSettingsModal = true
	c.showBanner = false
}

// CloseSettings hides the settings modal. Without recorded consent the
// banner is re-offered; otherwise it stays hidden.
func (c *Controller) CloseSettings() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.showSettingsModal = false
	if !c.hasConsent {
		c.showBanner = true
	}
}

// CloseBanner hides the banner without persisting anything. Since no record
// is written, a fresh controller for the same visitor offers it again.
func (c *Controller) CloseBanner() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.showBanner = false
}

// HasConsentFor reports whether the visitor granted the given category.
func (c *Controller) HasConsentFor(category string) bool {
	return c.store.HasConsentFor(category)
}

// settle applies the common post-persistence state: consent recorded,
// banner and modal dismissed. Caller holds the mutex.
func (c *Controller) settle() {
	c.hasConsent = true
	c.showBanner = false
	c.showSettingsModal = false
}
