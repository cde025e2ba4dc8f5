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

// Package telemetry exposes the agent's own operational counters.
package telemetry

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TotalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hidsd_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hidsd_http_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	SamplerFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hidsd_sampler_fallbacks_total",
			Help: "Total number of times a metrics sampler tier failed and the next tier was used",
		},
	)

	PayloadsAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hidsd_payloads_accepted_total",
			Help: "Total number of pushed metric payloads accepted",
		},
	)

	PayloadsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hidsd_payloads_rejected_total",
			Help: "Total number of pushed metric payloads rejected by validation",
		},
	)

	SnapshotRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hidsd_snapshot_rows_total",
			Help: "Total number of process snapshot rows written to the history store",
		},
	)
)

func init() {
	prometheus.MustRegister(TotalRequests)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SamplerFallbacks)
	prometheus.MustRegister(PayloadsAccepted)
	prometheus.MustRegister(PayloadsRejected)
	prometheus.MustRegister(SnapshotRows)
}

// Middleware records per-request counters and latency.
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		ctx.Next()

		RequestDuration.WithLabelValues(ctx.Request.Method, endpoint).Observe(time.Since(start).Seconds())
		TotalRequests.WithLabelValues(ctx.Request.Method, endpoint, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
