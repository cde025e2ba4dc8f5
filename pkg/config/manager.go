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

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/privara/hidsd/pkg/log"
)

// Manager owns the single live Config instance. Updates publish a
// fully-formed replacement atomically; readers never observe a
// partially updated value.
type Manager struct {
	path    string
	current atomic.Pointer[Config]
}

// NewManager creates a manager persisting to path, initialized with
// defaults until Load or Update replaces them.
func NewManager(path string) *Manager {
	m := &Manager{path: path}
	cfg := Defaults()
	m.current.Store(&cfg)
	return m
}

// Current returns the live configuration.
func (m *Manager) Current() Config {
	return *m.current.Load()
}

// Load reads and validates the persisted file. A missing or unreadable
// file leaves the defaults in place; load never fails the caller.
func (m *Manager) Load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error("config load error: %v", err)
		}
		return
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Error("config parse error, keeping defaults: %v", err)
		return
	}

	cfg := Validate(raw)
	m.current.Store(&cfg)
}

// Update validates raw input, persists the result and publishes it.
// The returned Config is always valid; the error reports persistence
// failure only.
func (m *Manager) Update(raw map[string]any) (Config, error) {
	cfg := Validate(raw)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return cfg, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return cfg, fmt.Errorf("failed to save config: %w", err)
	}

	m.current.Store(&cfg)
	return cfg, nil
}
