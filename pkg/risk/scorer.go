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

// Package risk classifies processes with a fixed, deterministic rule
// set. It is a rule engine, not a learning system; EngineID identifies
// the ruleset version so stored verdicts stay attributable.
package risk

import "strings"

// EngineID tags every assessment with the ruleset that produced it.
const EngineID = "Khepri-ML v0.2"

// Verdict is the categorical risk label derived from the score.
type Verdict string

const (
	VerdictBenign     Verdict = "Benign"
	VerdictElevated   Verdict = "Elevated"
	VerdictSuspicious Verdict = "Suspicious"
	VerdictCritical   Verdict = "Critical"
)

// Assessment is the scored classification of one process sample.
type Assessment struct {
	Score   int     `json:"risk_score"`
	Verdict Verdict `json:"verdict"`
	Engine  string  `json:"agent"`
}

// suspiciousKeywords are matched case-insensitively as substrings of
// the process name.
var suspiciousKeywords = []string{
	"miner", "crypt", "rat", "remote", "shell",
	"powershell", "cmd.exe", "nc.exe", "keylog", "exploit",
}

// Score classifies one process from its name and utilization. The
// result depends only on the arguments: +40 for a keyword match, +40
// for cpu>80 or +20 for cpu>40 (exclusive tiers), +20 for mem>20,
// clamped to 100.
func Score(name string, cpuPercent, memPercent float64) Assessment {
	score := 0
	lower := strings.ToLower(name)

	for _, k := range suspiciousKeywords {
		if strings.Contains(lower, k) {
			score += 40
			break
		}
	}

	switch {
	case cpuPercent > 80:
		score += 40
	case cpuPercent > 40:
		score += 20
	}

	if memPercent > 20 {
		score += 20
	}

	if score > 100 {
		score = 100
	}

	return Assessment{
		Score:   score,
		Verdict: verdictFor(score),
		Engine:  EngineID,
	}
}

// verdictFor maps a score to its label, highest threshold first.
func verdictFor(score int) Verdict {
	switch {
	case score >= 70:
		return VerdictCritical
	case score >= 40:
		return VerdictSuspicious
	case score >= 10:
		return VerdictElevated
	default:
		return VerdictBenign
	}
}
