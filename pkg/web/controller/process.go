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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/privara/hidsd/pkg/procs"
	"github.com/privara/hidsd/pkg/store"
	"github.com/privara/hidsd/pkg/telemetry"
	"github.com/privara/hidsd/pkg/web/model"
)

// ProcessController handles process enumeration and snapshots.
type ProcessController struct {
	*basicController
}

func NewProcessController(ctx *gin.Context) *ProcessController {
	return &ProcessController{basicController: newBasicController(ctx)}
}

// ListProcesses returns every live process with its risk assessment.
// Enumeration never fails the request; at worst the list is empty.
func (c *ProcessController) ListProcesses() {
	reports := procs.List()
	if reports == nil {
		reports = []procs.Report{}
	}
	c.RespondSuccess(reports)
}

// LogSnapshot records the current process list to the history store.
func (c *ProcessController) LogSnapshot() {
	reports := procs.List()
	rows := make([]store.SnapshotRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, store.SnapshotRow{PID: r.PID, Name: r.Name, CPU: r.CPU, Mem: r.Mem})
	}

	batchID, err := history.InsertSnapshot(c.ctx.Request.Context(), rows)
	if err != nil {
		c.RespondError(http.StatusInternalServerError, model.ErrorCodeStorageError, err.Error())
		return
	}

	telemetry.SnapshotRows.Add(float64(len(rows)))
	activity.Write("INFO", "process snapshot recorded: batch=%s rows=%d", batchID, len(rows))
	c.RespondSuccess(model.SnapshotAck{Status: "ok", BatchID: batchID, Rows: len(rows)})
}
