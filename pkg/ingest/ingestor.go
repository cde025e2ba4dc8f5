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

// Package ingest accepts metrics pushed by the external monitor.
// Pushed data takes priority over native sampling once any push has
// succeeded since process start.
package ingest

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/metrics"
	"github.com/privara/hidsd/pkg/store"
	"github.com/privara/hidsd/pkg/telemetry"
)

// ValidationError marks a payload rejected before it touched any
// state. Callers map it to a client error, never a server one.
type ValidationError struct {
	reason string
}

func (e *ValidationError) Error() string {
	return e.reason
}

// Ingestor holds the latest accepted payload. Replacement is wholesale
// and atomic: readers never observe a half-updated payload, and
// partial fields are never merged across pushes.
type Ingestor struct {
	fallback *metrics.Source
	history  *store.Store
	current  atomic.Pointer[Payload]
}

// New creates an ingestor that appends accepted pushes to history and
// answers enhanced-view reads from fallback until the first push.
func New(fallback *metrics.Source, history *store.Store) *Ingestor {
	return &Ingestor{fallback: fallback, history: history}
}

// Accept validates p, publishes it as the current payload and appends
// a derived row to the history store. A *ValidationError leaves the
// stored payload untouched; a history write failure is a server-side
// failure but the payload is already live.
func (i *Ingestor) Accept(ctx context.Context, p *Payload) error {
	if p == nil {
		telemetry.PayloadsRejected.Inc()
		return &ValidationError{reason: "no metrics provided"}
	}
	if err := p.Validate(); err != nil {
		telemetry.PayloadsRejected.Inc()
		return &ValidationError{reason: fmt.Sprintf("missing required fields: %v", err)}
	}

	i.current.Store(p)
	telemetry.PayloadsAccepted.Inc()
	log.Info("monitor metrics received: cpu=%.1f%% mem=%.1f%%", *p.CPUPercent, *p.MemoryPercent)

	row := store.MetricRow{
		CPUPercent:    *p.CPUPercent,
		MemoryPercent: *p.MemoryPercent,
		DiskIOMBps:    p.DiskIOTotalMBps,
		ProcessCount:  p.ProcessCount,
	}
	if err := i.history.InsertMetric(ctx, row); err != nil {
		return fmt.Errorf("payload accepted but history append failed: %w", err)
	}
	return nil
}

// Latest returns the most recent accepted payload, or nil if nothing
// has been pushed since process start.
func (i *Ingestor) Latest() *Payload {
	return i.current.Load()
}

// Enhanced returns the display view of the most recent push, or the
// live reading from the fallback source when nothing has been pushed.
func (i *Ingestor) Enhanced() any {
	p := i.current.Load()
	if p == nil {
		return i.fallback.Current()
	}
	return newView(p)
}
