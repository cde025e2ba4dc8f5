// Copyright 2025 The Privara Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/privara/hidsd/pkg/audit"
	"github.com/privara/hidsd/pkg/config"
	"github.com/privara/hidsd/pkg/flag"
	"github.com/privara/hidsd/pkg/ingest"
	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/metrics"
	"github.com/privara/hidsd/pkg/store"
	"github.com/privara/hidsd/pkg/web"
	"github.com/privara/hidsd/pkg/web/controller"
)

// main initializes and starts the hidsd agent.
func main() {
	flag.InitFlags()

	log.SetLevel(flag.ServerLogLevel)
	defer log.Sync()

	db, err := store.Open(flag.DBPath())
	if err != nil {
		log.Error("failed to open history store: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	cfg := config.NewManager(flag.ConfigPath())
	cfg.Load()

	activity, err := audit.New(flag.LogDir(), cfg.Current)
	if err != nil {
		log.Error("failed to init activity log: %v", err)
		os.Exit(1)
	}

	src := metrics.Probe()
	ingestor := ingest.New(src, db)

	controller.Init(src, ingestor, db, cfg, activity)
	engine := web.NewRouter(flag.ServerAccessToken)
	addr := fmt.Sprintf(":%d", flag.ServerPort)

	activity.Write("INFO", "hidsd started on %s", src.OS())
	log.Info("hidsd listening on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Error("failed to start hidsd server: %v", err)
	}
}
