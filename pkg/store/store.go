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

// Package store persists history rows in a local SQLite file. All rows
// are insert-only; the only mutation is opening the schema, which is
// idempotent and safe on every startup.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"

	"github.com/privara/hidsd/pkg/log"
)

// SnapshotRow is one process observed during a snapshot batch.
type SnapshotRow struct {
	PID  int32
	Name string
	CPU  float64
	Mem  float64
}

// MetricRow is one pushed system reading retained for history queries.
type MetricRow struct {
	TS            string  `json:"timestamp"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskIOMBps    float64 `json:"disk_io_mbps"`
	ProcessCount  int     `json:"process_count"`
}

// AuditEvent is one row of the insert-only audit trail.
type AuditEvent struct {
	ID      string `json:"id"`
	TS      string `json:"timestamp"`
	User    string `json:"user"`
	Action  string `json:"action"`
	Details string `json:"details"`
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS process_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts TEXT NOT NULL DEFAULT current_timestamp,
		batch_id TEXT NOT NULL,
		pid INTEGER NOT NULL,
		name TEXT NOT NULL,
		cpu REAL,
		mem REAL
	)`,
	`CREATE TABLE IF NOT EXISTS system_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ts TEXT NOT NULL DEFAULT current_timestamp,
		cpu_percent REAL,
		memory_percent REAL,
		disk_io_mbps REAL,
		process_count INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL,
		ts TEXT NOT NULL DEFAULT current_timestamp,
		user TEXT,
		action TEXT,
		details TEXT
	)`,
}

// Store wraps the local database. Writes are serialized; the expected
// throughput does not justify anything finer.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history store: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("history store ready at %s", path)
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertSnapshot writes one batch of process rows in a single
// transaction and returns the batch id grouping them.
func (s *Store) InsertSnapshot(ctx context.Context, rows []SnapshotRow) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batchID := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO process_snapshots (batch_id, pid, name, cpu, mem) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare snapshot insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, batchID, row.PID, row.Name, row.CPU, row.Mem); err != nil {
			return "", fmt.Errorf("failed to insert snapshot row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return batchID, nil
}

// InsertMetric appends one system reading to the history table.
func (s *Store) InsertMetric(ctx context.Context, row MetricRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO system_metrics (cpu_percent, memory_percent, disk_io_mbps, process_count) VALUES (?, ?, ?, ?)",
		row.CPUPercent, row.MemoryPercent, row.DiskIOMBps, row.ProcessCount)
	if err != nil {
		return fmt.Errorf("failed to insert metric row: %w", err)
	}
	return nil
}

// RecentMetrics returns up to limit history rows, most recent first by
// insertion order.
func (s *Store) RecentMetrics(ctx context.Context, limit int) ([]MetricRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ts, cpu_percent, memory_percent, disk_io_mbps, process_count
		 FROM system_metrics ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric history: %w", err)
	}
	defer rows.Close()

	history := make([]MetricRow, 0, limit)
	for rows.Next() {
		var row MetricRow
		if err := rows.Scan(&row.TS, &row.CPUPercent, &row.MemoryPercent, &row.DiskIOMBps, &row.ProcessCount); err != nil {
			return nil, fmt.Errorf("failed to scan metric row: %w", err)
		}
		history = append(history, row)
	}
	return history, rows.Err()
}

// RecordAudit appends one event to the audit trail.
func (s *Store) RecordAudit(ctx context.Context, user, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO audit_log (event_id, user, action, details) VALUES (?, ?, ?, ?)",
		uuid.New().String(), user, action, details)
	if err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

// RecentAuditEvents returns up to limit audit rows, most recent first.
func (s *Store) RecentAuditEvents(ctx context.Context, limit int) ([]AuditEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT event_id, ts, user, action, details FROM audit_log ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit trail: %w", err)
	}
	defer rows.Close()

	events := make([]AuditEvent, 0, limit)
	for rows.Next() {
		var ev AuditEvent
		if err := rows.Scan(&ev.ID, &ev.TS, &ev.User, &ev.Action, &ev.Details); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// SnapshotCount reports rows stored for one batch, for acknowledgments.
func (s *Store) SnapshotCount(ctx context.Context, batchID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM process_snapshots WHERE batch_id = ?", batchID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshot rows: %w", err)
	}
	return n, nil
}
