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

// Package metrics reads host-level system metrics through an ordered
// chain of samplers. The chain is fixed at startup; the last tier is a
// synthetic generator, so a reading is always available.
package metrics

// SystemMetrics is one point-in-time reading of host utilization.
// Percentages are always within [0,100] after Clamped.
type SystemMetrics struct {
	OS                string  `json:"os"`
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	MemoryAvailableMB float64 `json:"memory_available_mb"`
	// Cumulative MB read/written since boot, not throughput. The field
	// names predate that distinction and are kept for wire compatibility.
	DiskReadMB  float64 `json:"disk_read_mbps"`
	DiskWriteMB float64 `json:"disk_write_mbps"`
}

// Clamped returns a copy with percentages bounded to [0,100] and
// byte-derived figures floored at zero.
func (m SystemMetrics) Clamped() SystemMetrics {
	m.CPUPercent = clampPercent(m.CPUPercent)
	m.MemoryPercent = clampPercent(m.MemoryPercent)
	if m.MemoryAvailableMB < 0 {
		m.MemoryAvailableMB = 0
	}
	if m.DiskReadMB < 0 {
		m.DiskReadMB = 0
	}
	if m.DiskWriteMB < 0 {
		m.DiskWriteMB = 0
	}
	return m
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
