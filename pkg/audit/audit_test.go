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

package audit

import (
	"strings"
	"testing"

	"github.com/privara/hidsd/pkg/config"
)

func newTestLogger(t *testing.T, cfg config.Config) *Logger {
	t.Helper()
	l, err := New(t.TempDir(), func() config.Config { return cfg })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func TestWriteAndRecent(t *testing.T) {
	l := newTestLogger(t, config.Defaults())

	l.Write("INFO", "agent started on %s", "Manjaro Linux")
	l.Write("WARN", "threshold crossed")

	lines, err := l.Recent(100)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "[INFO] agent started on Manjaro Linux") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[WARN]") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestRecentTailsLongLogs(t *testing.T) {
	l := newTestLogger(t, config.Defaults())

	for i := 0; i < 8; i++ {
		l.Write("INFO", "line %d", i)
	}

	lines, err := l.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[2], "line 7") {
		t.Errorf("tail should end with the last write, got %q", lines[2])
	}
}

func TestRecentOnEmptyLog(t *testing.T) {
	l := newTestLogger(t, config.Defaults())

	lines, err := l.Recent(100)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty log, got %d lines", len(lines))
	}
}

func TestDisabledLoggingDropsWrites(t *testing.T) {
	cfg := config.Defaults()
	cfg.Logging.Enabled = false
	l := newTestLogger(t, cfg)

	l.Write("INFO", "should not appear")

	if n := l.Count(); n != 0 {
		t.Fatalf("disabled logger created %d artifacts", n)
	}
}

func TestPurgeRemovesEverything(t *testing.T) {
	l := newTestLogger(t, config.Defaults())

	l.Write("INFO", "before purge")
	if n := l.Count(); n != 1 {
		t.Fatalf("expected 1 artifact before purge, got %d", n)
	}

	deleted, err := l.Purge()
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if n := l.Count(); n != 0 {
		t.Errorf("artifact count after purge = %d, want 0", n)
	}

	// Purge on an already-empty directory reports zero, not an error.
	deleted, err = l.Purge()
	if err != nil || deleted != 0 {
		t.Errorf("second purge = (%d, %v), want (0, nil)", deleted, err)
	}
}
