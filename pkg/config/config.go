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

// Package config holds the agent configuration. Validate is the sole
// gate between externally supplied values and the rest of the system;
// nothing downstream re-validates.
package config

// Config is the full agent configuration. Values are always within
// their declared bounds after Validate.
type Config struct {
	Monitoring Monitoring     `json:"monitoring"`
	Thresholds Thresholds     `json:"thresholds"`
	Logging    Logging        `json:"logging"`
	UI         map[string]any `json:"ui"`
}

type Monitoring struct {
	Enabled         bool `json:"enabled"`
	IntervalSeconds int  `json:"interval_seconds"`
}

type Thresholds struct {
	CPUAlert    int `json:"cpu_alert"`
	MemoryAlert int `json:"memory_alert"`
	DiskAlert   int `json:"disk_alert"`
}

type Logging struct {
	Enabled       bool   `json:"enabled"`
	RetentionDays int    `json:"retention_days"`
	Level         string `json:"level"`
}

// Defaults returns a fresh default configuration.
func Defaults() Config {
	return Config{
		Monitoring: Monitoring{Enabled: true, IntervalSeconds: 10},
		Thresholds: Thresholds{CPUAlert: 80, MemoryAlert: 85, DiskAlert: 90},
		Logging:    Logging{Enabled: true, RetentionDays: 90, Level: "INFO"},
		UI: map[string]any{
			"theme":    "Tech Noir",
			"timezone": "GMT",
		},
	}
}

// Validate sanitizes untrusted input into a fully populated Config. It
// never fails: it starts from Defaults and overlays only recognized,
// type-correct fields, clamped to their bounds. Unknown keys are
// dropped, except inside "ui" which is merged key-for-key: ui values
// are cosmetic and cannot gate resource-affecting behavior, so they
// skip range checks.
func Validate(raw map[string]any) Config {
	cfg := Defaults()

	if m, ok := section(raw, "monitoring"); ok {
		if v, ok := asBool(m["enabled"]); ok {
			cfg.Monitoring.Enabled = v
		}
		if v, ok := asInt(m["interval_seconds"]); ok {
			cfg.Monitoring.IntervalSeconds = clamp(v, 1, 3600)
		}
	}

	if m, ok := section(raw, "thresholds"); ok {
		if v, ok := asInt(m["cpu_alert"]); ok {
			cfg.Thresholds.CPUAlert = clamp(v, 0, 100)
		}
		if v, ok := asInt(m["memory_alert"]); ok {
			cfg.Thresholds.MemoryAlert = clamp(v, 0, 100)
		}
		if v, ok := asInt(m["disk_alert"]); ok {
			cfg.Thresholds.DiskAlert = clamp(v, 0, 100)
		}
	}

	if m, ok := section(raw, "logging"); ok {
		if v, ok := asBool(m["enabled"]); ok {
			cfg.Logging.Enabled = v
		}
		if v, ok := asInt(m["retention_days"]); ok {
			cfg.Logging.RetentionDays = clamp(v, 1, 365)
		}
		if v, ok := m["level"].(string); ok && v != "" {
			cfg.Logging.Level = v
		}
	}

	if m, ok := section(raw, "ui"); ok {
		for k, v := range m {
			cfg.UI[k] = v
		}
	}

	return cfg
}

func section(raw map[string]any, key string) (map[string]any, bool) {
	if raw == nil {
		return nil, false
	}
	m, ok := raw[key].(map[string]any)
	return m, ok
}

// asInt accepts the numeric shapes a JSON decode or a Go caller can
// produce.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
