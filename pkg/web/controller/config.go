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

	"github.com/privara/hidsd/pkg/web/model"
)

// ConfigController handles the configuration surface.
type ConfigController struct {
	*basicController
}

func NewConfigController(ctx *gin.Context) *ConfigController {
	return &ConfigController{basicController: newBasicController(ctx)}
}

// GetConfig returns the live configuration.
func (c *ConfigController) GetConfig() {
	c.RespondSuccess(configMgr.Current())
}

// UpdateConfig validates the candidate body, persists the sanitized
// result and publishes it. Malformed JSON is a client error; only a
// persistence failure is a server error.
func (c *ConfigController) UpdateConfig() {
	var raw map[string]any
	if err := c.bindJSON(&raw); err != nil {
		c.RespondError(http.StatusBadRequest, model.ErrorCodeInvalidPayload, "invalid config body")
		return
	}

	cfg, err := configMgr.Update(raw)
	if err != nil {
		c.RespondError(http.StatusInternalServerError, model.ErrorCodeStorageError, err.Error())
		return
	}

	activity.Write("INFO", "configuration updated via API")
	c.RespondSuccess(cfg)
}
