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

// Command dashboard runs the site gateway: per-visitor cookie consent,
// authentication sessions against the remote auth service, persisted
// preferences, and cached content bundles from the configuration service.
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	bundlecache "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/cache"
	configclient "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/client"
	appconfig "github.com/nordlicht-consulting/web-platform-service/internal/appconfig/manager"
	"github.com/nordlicht-consulting/web-platform-service/internal/dashboard"
	"github.com/nordlicht-consulting/web-platform-service/internal/prefs"
	authclient "github.com/nordlicht-consulting/web-platform-service/internal/session/client"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/config"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/security"
)

const configFile = "conf/deployment.yaml"

func main() {

	home := resolveHome()

	envFiles, _ := filepath.Glob(filepath.Join(home, "conf", "*.env"))
	_ = godotenv.Load(envFiles...)

	gatewayConfig, err := config.LoadConfig(home, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.InitializeRuntime(home, gatewayConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := log.Init(gatewayConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := log.GetLogger()

	prefsPath := gatewayConfig.Prefs.Path
	if prefsPath == "" {
		prefsPath = filepath.Join(home, "data", "preferences.db")
	}
	prefStore, err := prefs.NewSQLiteStore(prefsPath)
	if err != nil {
		logger.Fatal("Failed to open the preference store", log.String("path", prefsPath), log.Error(err))
	}
	defer prefStore.Close()

	registry := dashboard.NewRegistry(prefStore, authclient.NewAuthClient(gatewayConfig.AuthServer))
	configManager := appconfig.NewManager(
		bundlecache.NewBundleCache(), configclient.NewClient(gatewayConfig.ConfigService))

	mux := http.NewServeMux()
	dashboard.NewHandler(registry, configManager).Register(mux)

	handler := security.EnableCORS(security.WithTraceID(mux))

	serverAddr := fmt.Sprintf("%s:%d", gatewayConfig.DashboardAddr.Host, gatewayConfig.DashboardAddr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("addr", serverAddr), log.Error(err))
	}

	logger.Info("Site gateway started", log.String("addr", serverAddr))
	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// resolveHome returns the gateway home directory from the -home flag, the
// WPS_HOME variable, or the working directory.
func resolveHome() string {

	homeFlag := flag.String("home", "", "Path to the gateway home directory")
	flag.Parse()

	if *homeFlag != "" {
		return *homeFlag
	}
	if env := os.Getenv("WPS_HOME"); env != "" {
		return env
	}
	wd, err := os.Getwd()
	if err != nil {
		stdlog.Fatalf("Failed to resolve working directory: %v", err)
	}
	return wd
}
