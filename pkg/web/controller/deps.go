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

package controller

import (
	"github.com/privara/hidsd/pkg/audit"
	"github.com/privara/hidsd/pkg/config"
	"github.com/privara/hidsd/pkg/ingest"
	"github.com/privara/hidsd/pkg/metrics"
	"github.com/privara/hidsd/pkg/store"
)

var (
	metricsSource *metrics.Source
	ingestor      *ingest.Ingestor
	history       *store.Store
	configMgr     *config.Manager
	activity      *audit.Logger
)

// Init wires the controllers to their collaborators. Call once before
// serving.
func Init(src *metrics.Source, ing *ingest.Ingestor, db *store.Store, cfg *config.Manager, logger *audit.Logger) {
	metricsSource = src
	ingestor = ing
	history = db
	configMgr = cfg
	activity = logger
}
