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

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/telemetry"
	"github.com/privara/hidsd/pkg/web/controller"
	"github.com/privara/hidsd/pkg/web/model"
)

// NewRouter builds a Gin engine with all agent routes.
func NewRouter(accessToken string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(recoveryMiddleware())
	r.Use(logMiddleware(), telemetry.Middleware(), accessTokenMiddleware(accessToken))

	r.GET("/ping", controller.PingHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/system-info", withSystem(func(c *controller.SystemController) { c.GetSystemInfo() }))
		api.GET("/system-info-enhanced", withSystem(func(c *controller.SystemController) { c.GetEnhanced() }))
		api.POST("/system-update", withSystem(func(c *controller.SystemController) { c.UpdateSystem() }))
		api.GET("/system-update/stream", withSystem(func(c *controller.SystemController) { c.StreamUpdates() }))
		api.GET("/metrics-history", withSystem(func(c *controller.SystemController) { c.MetricsHistory() }))

		api.GET("/processes", withProcess(func(c *controller.ProcessController) { c.ListProcesses() }))
		api.POST("/log-snapshot", withProcess(func(c *controller.ProcessController) { c.LogSnapshot() }))

		api.GET("/config", withConfig(func(c *controller.ConfigController) { c.GetConfig() }))
		api.POST("/config", withConfig(func(c *controller.ConfigController) { c.UpdateConfig() }))

		api.GET("/logs", withLogs(func(c *controller.LogsController) { c.GetLogs() }))
		api.POST("/logs/delete", withLogs(func(c *controller.LogsController) { c.DeleteLogs() }))
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, model.ErrorResponse{Code: model.ErrorCodeNotFound, Message: "not found"})
	})

	return r
}

func withSystem(fn func(*controller.SystemController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewSystemController(ctx))
	}
}

func withProcess(fn func(*controller.ProcessController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewProcessController(ctx))
	}
}

func withConfig(fn func(*controller.ConfigController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewConfigController(ctx))
	}
}

func withLogs(fn func(*controller.LogsController)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fn(controller.NewLogsController(ctx))
	}
}

func accessTokenMiddleware(token string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token == "" {
			ctx.Next()
			return
		}

		requestedToken := ctx.GetHeader(model.ApiAccessTokenHeader)
		if requestedToken == "" || requestedToken != token {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, map[string]any{
				"error": "Unauthorized: invalid or missing header " + model.ApiAccessTokenHeader,
			})
			return
		}

		ctx.Next()
	}
}

func logMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log.Info("Requested: %v - %v", ctx.Request.Method, ctx.Request.URL.String())
		ctx.Next()
	}
}

// recoveryMiddleware converts panics into logged JSON 500s.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error("panic serving %s: %v", ctx.Request.URL.Path, recovered)
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    model.ErrorCodeRuntimeError,
			Message: "internal server error",
		})
	})
}
