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

import "math/rand"

// SyntheticOS labels readings produced by the fallback generator.
const SyntheticOS = "Simulated (Fallback)"

// Bands of plausible values for synthetic readings. Exported so tests
// can assert a forced fallback landed inside them.
const (
	SyntheticCPUMin       = 5.0
	SyntheticCPUMax       = 35.0
	SyntheticMemMin       = 40.0
	SyntheticMemMax       = 70.0
	SyntheticAvailMin     = 2000.0
	SyntheticAvailMax     = 8000.0
	SyntheticDiskReadMin  = 10.0
	SyntheticDiskReadMax  = 100.0
	SyntheticDiskWriteMin = 5.0
	SyntheticDiskWriteMax = 50.0
)

// syntheticSampler produces bounded random readings. It is the terminal
// chain tier and doubles as a test stand-in for native sampling.
type syntheticSampler struct{}

// NewSynthetic returns a sampler that never fails.
func NewSynthetic() Sampler {
	return &syntheticSampler{}
}

func (s *syntheticSampler) OS() string {
	return SyntheticOS
}

func (s *syntheticSampler) Sample() (SystemMetrics, error) {
	return SystemMetrics{
		OS:                SyntheticOS,
		CPUPercent:        uniform(SyntheticCPUMin, SyntheticCPUMax),
		MemoryPercent:     uniform(SyntheticMemMin, SyntheticMemMax),
		MemoryAvailableMB: uniform(SyntheticAvailMin, SyntheticAvailMax),
		DiskReadMB:        uniform(SyntheticDiskReadMin, SyntheticDiskReadMax),
		DiskWriteMB:       uniform(SyntheticDiskWriteMin, SyntheticDiskWriteMax),
	}, nil
}

func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}
