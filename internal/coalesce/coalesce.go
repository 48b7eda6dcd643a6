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

// Package coalesce rewrites a raw edit script so that adjacent Removed/Added pairs that are
// similar enough to be read as one edited line become a single Modified entry, rather than a
// deletion followed by an unrelated insertion.
package coalesce

import (
	"github.com/agnivade/levenshtein"

	"diffscope.dev/diffscope/internal/editscript"
)

// similarityThreshold is the lower bound (exclusive) on line similarity for coalescing a
// Removed/Added pair into Modified. A pair at exactly the threshold is not coalesced.
const similarityThreshold = 0.5

// Script rewrites raw, identifying every maximal Removed immediately followed by Added where the
// two referenced lines are similar, and replacing the pair with a single Modified entry. In a
// longer run of Removed entries followed by Added entries, only the first adjacent pair (the
// run's last Removed and its first Added) is a candidate; the remainder of the run is left as-is
// and is not zipped by position, mirroring the reference algorithm this is ported from.
func Script(raw editscript.Script, oldLines, newLines []string) editscript.Script {
	out := make(editscript.Script, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		e := raw[i]
		if e.Tag == editscript.Removed && i+1 < len(raw) && raw[i+1].Tag == editscript.Added {
			next := raw[i+1]
			if similar(oldLines[e.OldIndex], newLines[next.NewIndex]) {
				out = append(out, editscript.Edit{
					Tag:      editscript.Modified,
					OldIndex: e.OldIndex,
					NewIndex: next.NewIndex,
				})
				i++ // consume the Added entry too.
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// similar reports whether two lines are close enough in edit distance to be read as one modified
// line rather than an unrelated removal and addition.
func similar(a, b string) bool {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return true
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1-float64(d)/float64(maxLen) > similarityThreshold
}
