// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package insights derives summary statistics and per-hunk change intensity from an assembled
// hunk list.
package insights

import (
	"diffscope.dev/diffscope/internal/editscript"
	"diffscope.dev/diffscope/internal/hunks"
)

// Statistics summarizes a diff's line counts.
type Statistics struct {
	TotalLines int
	Added      int
	Removed    int
	Modified   int
	Unchanged  int
	Similarity float64
}

// Insights is Statistics plus per-hunk change intensity.
type Insights struct {
	Statistics
	Hunks           int
	ChangeIntensity []float64
}

// Compute walks hs once, counting change kinds and deriving similarity. oldTotal and newTotal are
// the full line counts of each side (not just those inside hunks), used for the similarity ratio.
func Compute(hs []hunks.Hunk, oldTotal, newTotal int) Insights {
	var stats Statistics
	intensity := make([]float64, len(hs))

	for hi, h := range hs {
		var sideTouches, total int
		for _, c := range h.Changes {
			total++
			switch c.Tag {
			case editscript.Removed:
				stats.Removed++
				sideTouches++
			case editscript.Added:
				stats.Added++
				sideTouches++
			case editscript.Modified:
				stats.Modified++
				sideTouches += 2
			default: // editscript.Unchanged
				stats.Unchanged++
			}
		}
		if total > 0 {
			intensity[hi] = float64(sideTouches) / float64(total)
		}
	}

	stats.TotalLines = max(oldTotal, newTotal)
	changed := stats.Added + stats.Removed + stats.Modified
	switch {
	case stats.TotalLines == 0:
		stats.Similarity = 1
	default:
		stats.Similarity = 1 - float64(changed)/float64(stats.TotalLines)
		if stats.Similarity < 0 {
			stats.Similarity = 0
		}
		if stats.Similarity > 1 {
			stats.Similarity = 1
		}
	}

	return Insights{Statistics: stats, Hunks: len(hs), ChangeIntensity: intensity}
}
