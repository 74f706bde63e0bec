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

package provider

import (
	"github.com/nordlicht-consulting/web-platform-service/internal/configsvc/service"
)

// ConfigProviderInterface defines the interface for the configuration
// service provider.
type ConfigProviderInterface interface {
	GetConfigService() service.ConfigServiceInterface
}

// ConfigProvider is the default implementation of ConfigProviderInterface.
type ConfigProvider struct{}

// NewConfigProvider creates a new instance of ConfigProvider.
func NewConfigProvider() ConfigProviderInterface {

	return &ConfigProvider{}
}

// GetConfigService returns the configuration service instance.
func (p *ConfigProvider) GetConfigService() service.ConfigServiceInterface {

	return service.GetConfigService()
}
