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

package diffscope

import (
	"diffscope.dev/diffscope/internal/editscript"
	"diffscope.dev/diffscope/internal/hunks"
	"diffscope.dev/diffscope/internal/insights"
)

// ComputeInsights derives Statistics and per-hunk change intensity from an already-computed
// DiffResult. It never fails: a DiffResult with no hunks yields Similarity 1 and no intensity
// values.
func ComputeInsights(result DiffResult) Insights {
	in := insights.Compute(toInternalHunks(result.Hunks), result.Stats.TotalLines, result.Stats.TotalLines)
	return Insights{
		Statistics: Statistics{
			TotalLines: in.TotalLines,
			Added:      in.Added,
			Removed:    in.Removed,
			Modified:   in.Modified,
			Unchanged:  in.Unchanged,
			Similarity: in.Similarity,
		},
		Hunks:           in.Hunks,
		ChangeIntensity: in.ChangeIntensity,
	}
}

func toInternalHunks(hs []Hunk) []hunks.Hunk {
	out := make([]hunks.Hunk, len(hs))
	for i, h := range hs {
		out[i] = hunks.Hunk{
			OldStart: h.OldStart,
			OldLines: h.OldLines,
			NewStart: h.NewStart,
			NewLines: h.NewLines,
			Changes:  make([]hunks.Change, len(h.Changes)),
		}
		for j, c := range h.Changes {
			out[i].Changes[j] = hunks.Change{
				Tag:     editscript.Tag(c.Tag),
				OldLine: c.OldLineNumber,
				NewLine: c.NewLineNumber,
				Content: c.Content,
			}
		}
	}
	return out
}
