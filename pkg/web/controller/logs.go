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

	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/web/model"
)

// recentLogLines bounds the /api/logs response.
const recentLogLines = 100

// LogsController handles activity log reads and the purge operation.
type LogsController struct {
	*basicController
}

func NewLogsController(ctx *gin.Context) *LogsController {
	return &LogsController{basicController: newBasicController(ctx)}
}

// GetLogs returns the trailing lines of today's activity log.
func (c *LogsController) GetLogs() {
	lines, err := activity.Recent(recentLogLines)
	if err != nil {
		c.RespondError(http.StatusInternalServerError, model.ErrorCodeRuntimeError, err.Error())
		return
	}
	c.RespondSuccess(model.LogsResponse{Logs: lines, Count: len(lines)})
}

// DeleteLogs purges every retained log artifact (right to be
// forgotten). The purge event is recorded to the server log and the
// audit trail before any file is removed, so the record outlives the
// deletion it describes.
func (c *LogsController) DeleteLogs() {
	pending := activity.Count()
	log.Warn("log purge requested, removing %d artifacts", pending)
	if err := history.RecordAudit(c.ctx.Request.Context(), "api", "logs.purge",
		"all activity log artifacts deleted on user request"); err != nil {
		// The server log above already holds the event; proceed.
		log.Error("failed to record purge in audit trail: %v", err)
	}

	deleted, err := activity.Purge()
	if err != nil {
		c.RespondError(http.StatusInternalServerError, model.ErrorCodeRuntimeError, err.Error())
		return
	}

	c.RespondSuccess(model.PurgeResponse{Status: "ok", Deleted: deleted})
}
