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

package myers

import "diffscope.dev/diffscope/internal/editscript"

// FallbackPairwise is a degraded O(N+M) alternative to Diff for inputs whose combined size exceeds
// the caller's safety bound for the O((N+M)^2) trace. It pairs lines by index: equal pairs are
// Unchanged, unequal pairs are Removed immediately followed by Added (left for
// internal/coalesce to fold into Modified where the lines are similar), and any length difference
// is flushed as a trailing run of Removed or Added.
//
// This is an escape hatch, not a shortest-edit-script algorithm: it does not minimize the number of
// changes.
func FallbackPairwise[T comparable](a, b []T) editscript.Script {
	n, m := len(a), len(b)
	common := min(n, m)

	script := make(editscript.Script, 0, max(n, m))
	for i := 0; i < common; i++ {
		if a[i] == b[i] {
			script = append(script, editscript.Edit{Tag: editscript.Unchanged, OldIndex: i, NewIndex: i})
		} else {
			script = append(script,
				editscript.Edit{Tag: editscript.Removed, OldIndex: i, NewIndex: i},
				editscript.Edit{Tag: editscript.Added, OldIndex: i + 1, NewIndex: i},
			)
		}
	}
	for i := common; i < n; i++ {
		script = append(script, editscript.Edit{Tag: editscript.Removed, OldIndex: i, NewIndex: m})
	}
	for i := common; i < m; i++ {
		script = append(script, editscript.Edit{Tag: editscript.Added, OldIndex: n, NewIndex: i})
	}
	return script
}
