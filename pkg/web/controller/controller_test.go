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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privara/hidsd/pkg/audit"
	"github.com/privara/hidsd/pkg/config"
	"github.com/privara/hidsd/pkg/ingest"
	"github.com/privara/hidsd/pkg/metrics"
	"github.com/privara/hidsd/pkg/store"
	"github.com/privara/hidsd/pkg/web/model"
)

func newTestContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, path, bytes.NewReader(body))
	return ctx, w
}

// initTestDeps wires the controllers to throwaway collaborators: a
// synthetic-only metrics source, a temp-file store and temp config and
// log paths.
func initTestDeps(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	db, err := store.Open(filepath.Join(dir, "privara.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := config.NewManager(filepath.Join(dir, "config.json"))

	logger, err := audit.New(filepath.Join(dir, "logs"), cfg.Current)
	require.NoError(t, err)

	src := metrics.NewSource()
	Init(src, ingest.New(src, db), db, cfg, logger)
}

func TestGetSystemInfo(t *testing.T) {
	initTestDeps(t)
	ctx, w := newTestContext("GET", "/api/system-info", nil)

	NewSystemController(ctx).GetSystemInfo()

	assert.Equal(t, http.StatusOK, w.Code)
	var m metrics.SystemMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, metrics.SyntheticOS, m.OS)
	assert.GreaterOrEqual(t, m.CPUPercent, 0.0)
	assert.LessOrEqual(t, m.CPUPercent, 100.0)
}

func TestUpdateSystemRejectsMissingFields(t *testing.T) {
	initTestDeps(t)
	body := []byte(`{"cpu_percent": 10, "memory_percent": 20}`)
	ctx, w := newTestContext("POST", "/api/system-update", body)

	NewSystemController(ctx).UpdateSystem()

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.ErrorCodeInvalidPayload, resp.Code)
}

func TestUpdateSystemAcceptsAndRecords(t *testing.T) {
	initTestDeps(t)
	body := []byte(`{"cpu_percent": 41.5, "memory_percent": 66.0, "timestamp": 1700000000000, "os_name": "Windows 11"}`)
	ctx, w := newTestContext("POST", "/api/system-update", body)

	NewSystemController(ctx).UpdateSystem()

	assert.Equal(t, http.StatusOK, w.Code)
	var ack model.Ack
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, "ok", ack.Status)

	rows, err := history.RecentMetrics(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 41.5, rows[0].CPUPercent)
}

func TestGetEnhancedPrefersPush(t *testing.T) {
	initTestDeps(t)

	// Before any push: sampler shape.
	ctx, w := newTestContext("GET", "/api/system-info-enhanced", nil)
	NewSystemController(ctx).GetEnhanced()
	assert.Equal(t, http.StatusOK, w.Code)
	var reading metrics.SystemMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.Equal(t, metrics.SyntheticOS, reading.OS)

	body := []byte(`{"cpu_percent": 12, "memory_percent": 34, "timestamp": 5, "cpu_model": "Ryzen 7"}`)
	ctx, w = newTestContext("POST", "/api/system-update", body)
	NewSystemController(ctx).UpdateSystem()
	require.Equal(t, http.StatusOK, w.Code)

	ctx, w = newTestContext("GET", "/api/system-info-enhanced", nil)
	NewSystemController(ctx).GetEnhanced()
	assert.Equal(t, http.StatusOK, w.Code)
	var view ingest.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Ryzen 7", view.CPUModel)
	assert.Equal(t, 12.0, view.CPUPercent)
}

func TestMetricsHistoryBoundsLimit(t *testing.T) {
	initTestDeps(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, history.InsertMetric(context.Background(), store.MetricRow{CPUPercent: float64(i)}))
	}

	ctx, w := newTestContext("GET", "/api/metrics-history?limit=2", nil)
	NewSystemController(ctx).MetricsHistory()

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.HistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 4.0, resp.History[0].CPUPercent)
}

func TestConfigRoundTrip(t *testing.T) {
	initTestDeps(t)

	ctx, w := newTestContext("GET", "/api/config", nil)
	NewConfigController(ctx).GetConfig()
	assert.Equal(t, http.StatusOK, w.Code)

	body := []byte(`{"thresholds": {"cpu_alert": 250}, "ui": {"theme": "Light"}}`)
	ctx, w = newTestContext("POST", "/api/config", body)
	NewConfigController(ctx).UpdateConfig()
	assert.Equal(t, http.StatusOK, w.Code)

	var cfg config.Config
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cfg))
	assert.Equal(t, 100, cfg.Thresholds.CPUAlert, "out-of-range value must be clamped")
	assert.Equal(t, "Light", cfg.UI["theme"])
	assert.Equal(t, 100, configMgr.Current().Thresholds.CPUAlert, "update must be published")
}

func TestConfigRejectsMalformedBody(t *testing.T) {
	initTestDeps(t)
	ctx, w := newTestContext("POST", "/api/config", []byte("{oops"))

	NewConfigController(ctx).UpdateConfig()

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogsAndPurge(t *testing.T) {
	initTestDeps(t)
	activity.Write("INFO", "configuration updated via API")

	ctx, w := newTestContext("GET", "/api/logs", nil)
	NewLogsController(ctx).GetLogs()
	assert.Equal(t, http.StatusOK, w.Code)
	var logs model.LogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Equal(t, 1, logs.Count)

	ctx, w = newTestContext("POST", "/api/logs/delete", nil)
	NewLogsController(ctx).DeleteLogs()
	assert.Equal(t, http.StatusOK, w.Code)
	var purge model.PurgeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &purge))
	assert.Equal(t, 1, purge.Deleted)
	assert.Equal(t, 0, activity.Count())

	// The purge itself must be recoverable from the audit trail.
	events, err := history.RecentAuditEvents(context.Background(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, "logs.purge", events[0].Action)
}

func TestListProcessesShape(t *testing.T) {
	initTestDeps(t)
	ctx, w := newTestContext("GET", "/api/processes", nil)

	NewProcessController(ctx).ListProcesses()

	assert.Equal(t, http.StatusOK, w.Code)
	var reports []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	for _, r := range reports {
		assert.NotEmpty(t, r["name"])
		assert.Contains(t, r, "risk_score")
		assert.Contains(t, r, "verdict")
	}
}

func TestLogSnapshotRecordsBatch(t *testing.T) {
	initTestDeps(t)
	ctx, w := newTestContext("POST", "/api/log-snapshot", nil)

	NewProcessController(ctx).LogSnapshot()

	assert.Equal(t, http.StatusOK, w.Code)
	var ack model.SnapshotAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, "ok", ack.Status)
	assert.NotEmpty(t, ack.BatchID)

	count, err := history.SnapshotCount(context.Background(), ack.BatchID)
	require.NoError(t, err)
	assert.Equal(t, ack.Rows, count)
}
