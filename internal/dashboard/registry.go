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

package dashboard

import (
	"context"
	"sync"

	consentctl "github.com/nordlicht-consulting/web-platform-service/internal/consent/controller"
	consentstore "github.com/nordlicht-consulting/web-platform-service/internal/consent/store"
	"github.com/nordlicht-consulting/web-platform-service/internal/errorlog"
	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	sessionctl "github.com/nordlicht-consulting/web-platform-service/internal/session/controller"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
)

// Visitor bundles the per-visitor state the gateway keeps between requests:
// a namespaced preference store and the controllers built on top of it.
type Visitor struct {
	ID       string
	Prefs    *prefs.ScopedStore
	Consent  *consentctl.Controller
	Session  *sessionctl.Session
	ErrorLog *errorlog.Log
}

// Registry resolves visitor identifiers to their state, creating it on
// first sight. All visitors share one backing preference store and one
// auth client.
type Registry struct {
	mutex    sync.Mutex
	backing  prefs.Store
	auth     sessionctl.Authenticator
	visitors map[string]*Visitor
}

// NewRegistry creates an empty visitor registry.
func NewRegistry(backing prefs.Store, auth sessionctl.Authenticator) *Registry {
	return &Registry{
		backing:  backing,
		auth:     auth,
		visitors: make(map[string]*Visitor),
	}
}

// Visitor returns the state for id, creating and hydrating it on first
// access. Hydration restores consent from the preference store and the
// session from a persisted token.
func (r *Registry) Visitor(ctx context.Context, id string) *Visitor {

	r.mutex.Lock()
	if visitor, ok := r.visitors[id]; ok {
		r.mutex.Unlock()
		return visitor
	}

	scoped := prefs.Scoped(r.backing, id)
	visitor := &Visitor{
		ID:       id,
		Prefs:    scoped,
		Consent:  consentctl.NewController(consentstore.NewStore(scoped)),
		Session:  sessionctl.NewSession(scoped, r.auth),
		ErrorLog: errorlog.New(scoped),
	}
	r.visitors[id] = visitor
	r.mutex.Unlock()

	// Hydration calls the auth service; keep it outside the registry lock.
	visitor.Session.Hydrate(ctx)

	log.GetLogger().Debug("New visitor registered", log.String("visitor", id))
	return visitor
}

// Len returns the number of known visitors.
func (r *Registry) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.visitors)
}
