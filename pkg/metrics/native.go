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

package metrics

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/disk"
	"github.com/shirou/gopsutil/mem"

	"github.com/privara/hidsd/pkg/log"
)

// cpuSampleInterval smooths instantaneous CPU spikes. Callers of the
// chain must budget for this delay.
const cpuSampleInterval = 500 * time.Millisecond

const bytesPerMB = 1024 * 1024

// nativeSampler reads live metrics through gopsutil. One instance is
// built per fingerprinted OS label at startup.
type nativeSampler struct {
	osName   string
	interval time.Duration
}

func (s *nativeSampler) OS() string {
	return s.osName
}

func (s *nativeSampler) Sample() (SystemMetrics, error) {
	cpuPercent, err := cpu.Percent(s.interval, false)
	if err != nil {
		return SystemMetrics{}, fmt.Errorf("failed to get CPU percent: %w", err)
	}

	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return SystemMetrics{}, fmt.Errorf("failed to get memory info: %w", err)
	}

	m := SystemMetrics{
		OS:                s.osName,
		MemoryPercent:     vmStat.UsedPercent,
		MemoryAvailableMB: float64(vmStat.Available) / bytesPerMB,
	}
	if len(cpuPercent) > 0 {
		m.CPUPercent = cpuPercent[0]
	}

	// Disk counters are optional: some platforms or restricted
	// environments refuse them, and a reading without disk figures is
	// still a reading.
	if counters, err := disk.IOCounters(); err == nil {
		var read, write uint64
		for _, c := range counters {
			read += c.ReadBytes
			write += c.WriteBytes
		}
		m.DiskReadMB = float64(read) / bytesPerMB
		m.DiskWriteMB = float64(write) / bytesPerMB
	} else {
		log.Debug("disk IO counters unavailable on %s: %v", s.osName, err)
	}

	return m, nil
}
