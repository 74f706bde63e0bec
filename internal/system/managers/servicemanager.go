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

package managers

import (
	"net/http"

	confighandler "github.com/nordlicht-consulting/web-platform-service/internal/configsvc/handler"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/constants"
)

// ServiceManager wires the configuration service handlers onto a mux.
type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) *ServiceManager {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices registers the configuration service routes. The cache
// flush route requires admin credentials; bundle routes are open because the
// site gateway calls them anonymously at startup.
func (m *ServiceManager) RegisterServices() {

	configHandler := confighandler.NewConfigHandler()

	m.mux.HandleFunc(constants.ConfigAppPath+"/", configHandler.HandleAppConfig)
	m.mux.HandleFunc(constants.ConfigI18nPath+"/", configHandler.HandleI18nConfig)
	m.mux.HandleFunc("DELETE "+constants.ConfigCachePath, configHandler.HandleCacheFlush)
}
