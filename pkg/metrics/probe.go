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
	"os"
	"runtime"

	"github.com/shirou/gopsutil/host"

	"github.com/privara/hidsd/pkg/log"
)

const manjaroReleaseFile = "/etc/manjaro-release"

// Probe fingerprints the host once and builds the sampler chain for it:
// a distribution-specific tier when the fingerprint matches, then a
// generic tier for the OS family, then the synthetic terminal tier.
// The result is fixed for the process lifetime.
func Probe() *Source {
	var tiers []Sampler

	switch runtime.GOOS {
	case "linux":
		if _, err := os.Stat(manjaroReleaseFile); err == nil {
			tiers = append(tiers, &nativeSampler{osName: "Manjaro Linux", interval: cpuSampleInterval})
		}
		tiers = append(tiers, &nativeSampler{osName: genericLinuxLabel(), interval: cpuSampleInterval})
	case "windows":
		tiers = append(tiers, &nativeSampler{osName: "Windows 11", interval: cpuSampleInterval})
	default:
		log.Warn("no native sampler for %s, using synthetic metrics", runtime.GOOS)
	}

	src := NewSource(tiers...)
	log.Info("metrics source initialized: %s", src.OS())
	return src
}

func genericLinuxLabel() string {
	release, err := host.KernelVersion()
	if err != nil {
		return "Linux"
	}
	return fmt.Sprintf("Linux (%s)", release)
}
