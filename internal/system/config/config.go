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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	AdminUsername      string   `yaml:"admin_username"`
	AdminPassword      string   `yaml:"admin_password"`
}

// AuthServerConfig points the gateway at the remote authentication service.
type AuthServerConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ConfigServiceConfig points the gateway at the configuration service.
type ConfigServiceConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DataSourceConfig holds the Postgres datasource of the configuration service.
type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// PrefsConfig holds the visitor preference store settings of the gateway.
type PrefsConfig struct {
	Path string `yaml:"path"`
}

type CacheConfig struct {
	ConfigTTLSeconds int `yaml:"config_ttl_seconds"`
}

type Config struct {
	Addr          AddrConfig          `yaml:"addr"`
	DashboardAddr AddrConfig          `yaml:"dashboard_addr"`
	Log           LogConfig           `yaml:"log"`
	Auth          AuthConfig          `yaml:"auth"`
	AuthServer    AuthServerConfig    `yaml:"auth_server"`
	ConfigService ConfigServiceConfig `yaml:"config_service"`
	DataSource    DataSourceConfig    `yaml:"datasource"`
	Prefs         PrefsConfig         `yaml:"prefs"`
	Cache         CacheConfig         `yaml:"cache"`
}
