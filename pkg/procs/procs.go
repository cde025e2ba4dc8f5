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

// Package procs enumerates live processes and scores each one.
package procs

import (
	"github.com/shirou/gopsutil/process"

	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/risk"
)

// Sample is one process observed during an enumeration pass.
type Sample struct {
	PID  int32  `json:"pid"`
	Name string `json:"name"`
	// CPU may exceed 100 on multi-core hosts.
	CPU float64 `json:"cpu"`
	Mem float64 `json:"mem"`
}

// Report pairs a sample with its risk assessment.
type Report struct {
	Sample
	risk.Assessment
}

// List takes a point-in-time snapshot of live processes and scores
// each. Entries that vanish mid-iteration or have no resolvable name
// are skipped; a total enumeration failure is logged and yields an
// empty result.
func List() []Report {
	procs, err := process.Processes()
	if err != nil {
		log.Error("process enumeration failed: %v", err)
		return nil
	}

	reports := make([]Report, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}

		// A process can exit between listing and reading its
		// counters; treat unreadable counters as zero and keep
		// the entry, its name alone can still matter.
		cpu, err := p.CPUPercent()
		if err != nil {
			cpu = 0
		}
		memPct, err := p.MemoryPercent()
		if err != nil {
			memPct = 0
		}
		mem := float64(memPct)

		reports = append(reports, Report{
			Sample:     Sample{PID: p.Pid, Name: name, CPU: cpu, Mem: mem},
			Assessment: risk.Score(name, cpu, mem),
		})
	}

	return reports
}
