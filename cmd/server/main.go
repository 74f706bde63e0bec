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

// Command server runs the configuration service: the Postgres-backed store
// of application configuration and translation bundles, with provisioning
// of missing defaults on write.
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

	"github.com/nordlicht-consulting/web-platform-service/internal/system/config"
	dbprovider "github.com/nordlicht-consulting/web-platform-service/internal/system/database/provider"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/log"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/managers"
	"github.com/nordlicht-consulting/web-platform-service/internal/system/security"
)

const (
	configFile = "conf/deployment.yaml"
	schemaFile = "dbscripts/postgres.sql"
)

func main() {

	home := resolveHome()

	envFiles, _ := filepath.Glob(filepath.Join(home, "conf", "*.env"))
	_ = godotenv.Load(envFiles...)

	serverConfig, err := config.LoadConfig(home, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.InitializeRuntime(home, serverConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := log.Init(serverConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := log.GetLogger()

	if err := initDatabase(home); err != nil {
		logger.Fatal("Failed to initialize the database", log.Error(err))
	}

	mux := http.NewServeMux()
	managers.NewServiceManager(mux).RegisterServices()

	handler := security.EnableCORS(security.WithTraceID(mux))

	serverAddr := fmt.Sprintf("%s:%d", serverConfig.Addr.Host, serverConfig.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("addr", serverAddr), log.Error(err))
	}

	logger.Info("Configuration service started", log.String("addr", serverAddr))
	server := &http.Server{Handler: handler}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initDatabase applies the schema so a fresh database is usable without
// manual steps. The script only creates objects that do not exist yet.
func initDatabase(home string) error {

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return err
	}
	defer dbClient.Close()

	return dbClient.InitDatabase(home, schemaFile)
}

// resolveHome returns the server home directory from the -home flag, the
// WPS_HOME variable, or the working directory.
func resolveHome() string {

	homeFlag := flag.String("home", "", "Path to the server home directory")
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
