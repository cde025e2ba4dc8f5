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

import "github.com/go-playground/validator/v10"

// Payload is one metrics push from the external desktop monitor. The
// required fields are pointers so that a present-but-zero reading
// passes validation while an absent field fails it. Everything else is
// optional enrichment.
type Payload struct {
	CPUPercent    *float64 `json:"cpu_percent" validate:"required"`
	MemoryPercent *float64 `json:"memory_percent" validate:"required"`
	Timestamp     *int64   `json:"timestamp" validate:"required"`

	OSName           string  `json:"os_name,omitempty"`
	OSVersion        string  `json:"os_version,omitempty"`
	OSManufacturer   string  `json:"os_manufacturer,omitempty"`
	CPUModel         string  `json:"cpu_model,omitempty"`
	CPUCoresPhysical int     `json:"cpu_cores_physical,omitempty"`
	CPUCoresLogical  int     `json:"cpu_cores_logical,omitempty"`
	CPUFrequencyMHz  float64 `json:"cpu_frequency_mhz,omitempty"`

	MemoryTotalGB     float64 `json:"memory_total_gb,omitempty"`
	MemoryUsedGB      float64 `json:"memory_used_gb,omitempty"`
	MemoryAvailableGB float64 `json:"memory_available_gb,omitempty"`

	DiskReadMBps    float64 `json:"disk_read_mbps,omitempty"`
	DiskWriteMBps   float64 `json:"disk_write_mbps,omitempty"`
	DiskIOTotalMBps float64 `json:"disk_io_total_mbps,omitempty"`

	ProcessCount int `json:"process_count,omitempty"`
	ThreadCount  int `json:"thread_count,omitempty"`

	TopProcesses      []TopProcess       `json:"top_processes,omitempty"`
	NetworkInterfaces []NetworkInterface `json:"network_interfaces,omitempty"`
}

// TopProcess is one entry of the monitor's per-process top list.
type TopProcess struct {
	PID         int32   `json:"pid"`
	Name        string  `json:"name"`
	CPUPercent  float64 `json:"cpu_percent"`
	MemoryBytes uint64  `json:"memory_bytes"`
	State       string  `json:"state,omitempty"`
}

// NetworkInterface is one interface counter set from the monitor.
type NetworkInterface struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	BytesSent   uint64 `json:"bytes_sent"`
	BytesRecv   uint64 `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
}

func (p *Payload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
