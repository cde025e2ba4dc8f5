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
	"github.com/privara/hidsd/pkg/log"
	"github.com/privara/hidsd/pkg/telemetry"
)

// Sampler is one tier of the metrics chain. A failing Sample hands off
// to the next tier; the error never reaches API callers.
type Sampler interface {
	// OS is the label this tier stamps on its readings.
	OS() string
	// Sample takes one reading. May block for the CPU sample window.
	Sample() (SystemMetrics, error)
}

// Source resolves metrics through its sampler tiers in order.
type Source struct {
	chain []Sampler
}

// NewSource builds a chain from the given tiers. The terminal synthetic
// tier is always appended, so Current never fails even with an empty
// argument list.
func NewSource(tiers ...Sampler) *Source {
	return &Source{chain: append(tiers, NewSynthetic())}
}

// OS is the label of the preferred tier.
func (s *Source) OS() string {
	return s.chain[0].OS()
}

// Current returns the best available reading, clamped. Tier failures
// are logged and counted, then the next tier is tried.
func (s *Source) Current() SystemMetrics {
	var m SystemMetrics
	for i, tier := range s.chain {
		reading, err := tier.Sample()
		if err == nil {
			m = reading
			break
		}
		log.Warn("sampler %q failed, trying next tier: %v", tier.OS(), err)
		if i < len(s.chain)-1 {
			telemetry.SamplerFallbacks.Inc()
		}
	}
	return m.Clamped()
}
