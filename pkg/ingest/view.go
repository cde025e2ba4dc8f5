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

// View is the display shape of a pushed payload, with enrichment
// fields defaulted when the monitor did not supply them.
type View struct {
	Source        string     `json:"source"`
	OS            string     `json:"os"`
	CPUPercent    float64    `json:"cpu_percent"`
	CPUModel      string     `json:"cpu_model"`
	CPUCores      CoreCounts `json:"cpu_cores"`
	MemoryPercent float64    `json:"memory_percent"`
	MemoryTotalGB float64    `json:"memory_total_gb"`
	MemoryUsedGB  float64    `json:"memory_used_gb"`
	DiskIOMBps    float64    `json:"disk_io_mbps"`
	DiskReadMBps  float64    `json:"disk_read_mbps"`
	DiskWriteMBps float64    `json:"disk_write_mbps"`
	ProcessCount  int        `json:"process_count"`
	ThreadCount   int        `json:"thread_count"`

	TopProcesses      []TopProcess       `json:"top_processes"`
	NetworkInterfaces []NetworkInterface `json:"network_interfaces"`

	Timestamp int64 `json:"timestamp"`
}

type CoreCounts struct {
	Physical int `json:"physical"`
	Logical  int `json:"logical"`
}

// pushSourceLabel identifies the external monitor as the data origin.
const pushSourceLabel = "JavaFX Monitor (OSHI)"

func newView(p *Payload) *View {
	v := &View{
		Source:            pushSourceLabel,
		OS:                p.OSName,
		CPUPercent:        *p.CPUPercent,
		CPUModel:          p.CPUModel,
		CPUCores:          CoreCounts{Physical: p.CPUCoresPhysical, Logical: p.CPUCoresLogical},
		MemoryPercent:     *p.MemoryPercent,
		MemoryTotalGB:     p.MemoryTotalGB,
		MemoryUsedGB:      p.MemoryUsedGB,
		DiskIOMBps:        p.DiskIOTotalMBps,
		DiskReadMBps:      p.DiskReadMBps,
		DiskWriteMBps:     p.DiskWriteMBps,
		ProcessCount:      p.ProcessCount,
		ThreadCount:       p.ThreadCount,
		TopProcesses:      p.TopProcesses,
		NetworkInterfaces: p.NetworkInterfaces,
		Timestamp:         *p.Timestamp,
	}
	if v.OS == "" {
		v.OS = "Unknown"
	}
	if v.CPUModel == "" {
		v.CPUModel = "Unknown"
	}
	if v.TopProcesses == nil {
		v.TopProcesses = []TopProcess{}
	}
	if v.NetworkInterfaces == nil {
		v.NetworkInterfaces = []NetworkInterface{}
	}
	return v
}
