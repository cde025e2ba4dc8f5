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

package ingest

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privara/hidsd/pkg/metrics"
	"github.com/privara/hidsd/pkg/store"
)

func f64(v float64) *float64 { return &v }

func i64(v int64) *int64 { return &v }

func newTestIngestor(t *testing.T) (*Ingestor, *store.Store) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "privara.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(metrics.NewSource(), db), db
}

func validPayload() *Payload {
	return &Payload{
		CPUPercent:    f64(42.5),
		MemoryPercent: f64(61.2),
		Timestamp:     i64(1700000000000),
		OSName:        "Windows 11",
		ProcessCount:  312,
	}
}

func TestAcceptRejectsMissingFields(t *testing.T) {
	ing, _ := newTestIngestor(t)
	ctx := context.Background()

	cases := map[string]*Payload{
		"nil payload":        nil,
		"missing timestamp":  {CPUPercent: f64(10), MemoryPercent: f64(20)},
		"missing cpu":        {MemoryPercent: f64(20), Timestamp: i64(1)},
		"missing memory":     {CPUPercent: f64(10), Timestamp: i64(1)},
		"all fields missing": {},
	}

	for name, p := range cases {
		err := ing.Accept(ctx, p)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, name)
		assert.Nil(t, ing.Latest(), "%s must not mutate the stored payload", name)
	}
}

func TestAcceptZeroValuesArePresent(t *testing.T) {
	ing, _ := newTestIngestor(t)

	p := &Payload{CPUPercent: f64(0), MemoryPercent: f64(0), Timestamp: i64(0)}
	require.NoError(t, ing.Accept(context.Background(), p))
	assert.NotNil(t, ing.Latest())
}

func TestAcceptReplacesWholesale(t *testing.T) {
	ing, db := newTestIngestor(t)
	ctx := context.Background()

	first := validPayload()
	first.CPUModel = "Ryzen 7"
	require.NoError(t, ing.Accept(ctx, first))

	// The second push omits the enrichment; nothing may be merged
	// over from the first.
	second := &Payload{CPUPercent: f64(10), MemoryPercent: f64(20), Timestamp: i64(2)}
	require.NoError(t, ing.Accept(ctx, second))

	got := ing.Latest()
	require.NotNil(t, got)
	assert.Equal(t, "", got.CPUModel)
	assert.Equal(t, 10.0, *got.CPUPercent)

	rows, err := db.RecentMetrics(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "each accepted push appends a history row")
	assert.Equal(t, 10.0, rows[0].CPUPercent)
}

func TestEnhancedFallsBackBeforeFirstPush(t *testing.T) {
	ing, _ := newTestIngestor(t)

	view := ing.Enhanced()
	m, ok := view.(metrics.SystemMetrics)
	require.True(t, ok, "expected a sampler reading before any push, got %T", view)
	assert.Equal(t, metrics.SyntheticOS, m.OS)
}

func TestEnhancedViewDefaultsEnrichment(t *testing.T) {
	ing, _ := newTestIngestor(t)

	p := &Payload{CPUPercent: f64(33), MemoryPercent: f64(44), Timestamp: i64(9)}
	require.NoError(t, ing.Accept(context.Background(), p))

	view, ok := ing.Enhanced().(*View)
	require.True(t, ok)
	assert.Equal(t, "Unknown", view.OS)
	assert.Equal(t, "Unknown", view.CPUModel)
	assert.NotNil(t, view.TopProcesses)
	assert.Empty(t, view.TopProcesses)
	assert.NotNil(t, view.NetworkInterfaces)
	assert.Equal(t, 33.0, view.CPUPercent)
	assert.Equal(t, int64(9), view.Timestamp)
}

func TestValidationErrorIsClientError(t *testing.T) {
	err := error(&ValidationError{reason: "missing required fields"})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "missing required fields")
}
