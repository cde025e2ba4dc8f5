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

// Package audit writes the agent's daily activity log files and
// enforces their retention. Files are named privara_YYYYMMDD.log; the
// whole set can be purged on demand for right-to-be-forgotten
// requests.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/privara/hidsd/pkg/config"
	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/util/safego"
)

// artifactPattern matches every retained log artifact in the directory.
const artifactPattern = "privara_*.log"

// Logger appends to the current day's activity log file.
type Logger struct {
	dir string
	cfg func() config.Config

	mu sync.Mutex
}

// New creates a logger writing under dir. cfg supplies the live
// logging configuration (enabled flag and retention).
func New(dir string, cfg func() config.Config) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &Logger{dir: dir, cfg: cfg}, nil
}

func (l *Logger) todayPath() string {
	return filepath.Join(l.dir, fmt.Sprintf("privara_%s.log", time.Now().Format("20060102")))
}

// Write appends one line to today's file, then prunes expired files in
// the background. Disabled logging drops the line silently.
func (l *Logger) Write(level, format string, args ...any) {
	cfg := l.cfg().Logging
	if !cfg.Enabled {
		return
	}

	line := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format(time.RFC3339), level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.todayPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Error("activity log write error: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		log.Error("activity log write error: %v", err)
	}

	safego.Go(func() { l.cleanup(cfg.RetentionDays) })
}

// cleanup removes artifacts older than the retention window.
func (l *Logger) cleanup(retentionDays int) {
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, path := range l.artifacts() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Error("log cleanup error: %v", err)
			}
		}
	}
}

// Recent returns up to n trailing lines of today's file. A missing
// file is an empty log, not an error.
func (l *Logger) Recent(n int) ([]string, error) {
	data, err := os.ReadFile(l.todayPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read activity log: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []string{}, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Count reports how many log artifacts currently exist.
func (l *Logger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.artifacts())
}

// Purge irreversibly deletes every retained artifact and reports how
// many were removed. Callers must record the purge on a channel
// outside the purged set before invoking it.
func (l *Logger) Purge() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deleted := 0
	for _, path := range l.artifacts() {
		if err := os.Remove(path); err != nil {
			return deleted, fmt.Errorf("failed to delete %s: %w", filepath.Base(path), err)
		}
		deleted++
	}
	return deleted, nil
}

// artifacts lists retained log files. Callers hold l.mu.
func (l *Logger) artifacts() []string {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		log.Error("failed to list log directory: %v", err)
		return nil
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(artifactPattern, e.Name()); ok {
			paths = append(paths, filepath.Join(l.dir, e.Name()))
		}
	}
	return paths
}
