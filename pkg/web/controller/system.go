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
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/privara/hidsd/pkg/ingest"
	"github.com/privara/hidsd/pkg/web/model"
)

// SystemController handles system metrics requests.
type SystemController struct {
	*basicController
}

func NewSystemController(ctx *gin.Context) *SystemController {
	return &SystemController{basicController: newBasicController(ctx)}
}

// GetSystemInfo returns the current reading from the sampler chain.
func (c *SystemController) GetSystemInfo() {
	c.RespondSuccess(metricsSource.Current())
}

// GetEnhanced returns the latest pushed payload view, or the sampler
// reading when nothing has been pushed.
func (c *SystemController) GetEnhanced() {
	c.RespondSuccess(ingestor.Enhanced())
}

// UpdateSystem accepts one pushed payload from the external monitor.
func (c *SystemController) UpdateSystem() {
	var payload ingest.Payload
	if err := c.bindJSON(&payload); err != nil {
		c.RespondError(http.StatusBadRequest, model.ErrorCodeInvalidPayload, "no metrics provided")
		return
	}

	if err := ingestor.Accept(c.ctx.Request.Context(), &payload); err != nil {
		var verr *ingest.ValidationError
		if errors.As(err, &verr) {
			c.RespondError(http.StatusBadRequest, model.ErrorCodeInvalidPayload, verr.Error())
			return
		}
		c.RespondError(http.StatusInternalServerError, model.ErrorCodeStorageError, err.Error())
		return
	}

	c.RespondSuccess(model.Ack{Status: "ok", Message: "Metrics received"})
}

// MetricsHistory returns up to 100 most recent stored readings.
func (c *SystemController) MetricsHistory() {
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 100 {
		limit = 100
	}

	rows, err := history.RecentMetrics(c.ctx.Request.Context(), limit)
	if err != nil {
		c.RespondError(http.StatusInternalServerError, model.ErrorCodeStorageError, err.Error())
		return
	}

	c.RespondSuccess(model.HistoryResponse{History: rows, Count: len(rows)})
}
