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

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"diffscope.dev/diffscope/internal/editscript"
)

// apply reconstructs b from a by walking the script, using only Unchanged/Added entries; Removed
// entries never contribute content to the result.
func apply(a, b []string, script editscript.Script) []string {
	var out []string
	for _, e := range script {
		switch e.Tag {
		case editscript.Unchanged:
			out = append(out, a[e.OldIndex])
		case editscript.Added:
			out = append(out, b[e.NewIndex])
		}
	}
	return out
}

func TestDiffEmpty(t *testing.T) {
	got := Diff[string](nil, nil)
	if len(got) != 0 {
		t.Fatalf("Diff(nil, nil) = %v, want empty", got)
	}
}

func TestDiffAllAdded(t *testing.T) {
	b := []string{"a", "b", "c"}
	got := Diff[string](nil, b)
	for _, e := range got {
		if e.Tag != editscript.Added {
			t.Fatalf("Diff(nil, b) contains non-Added tag: %v", got)
		}
	}
	if diff := cmp.Diff(b, apply(nil, b, got)); diff != "" {
		t.Errorf("reconstructed b mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffAllRemoved(t *testing.T) {
	a := []string{"a", "b", "c"}
	got := Diff[string](a, nil)
	for _, e := range got {
		if e.Tag != editscript.Removed {
			t.Fatalf("Diff(a, nil) contains non-Removed tag: %v", got)
		}
	}
}

func TestDiffRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"identical", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"single-change", []string{"a", "b", "c"}, []string{"a", "x", "c"}},
		{"insert-middle", []string{"a", "c"}, []string{"a", "b", "c"}},
		{"delete-middle", []string{"a", "b", "c"}, []string{"a", "c"}},
		{"disjoint", []string{"a", "b"}, []string{"x", "y"}},
		{"classic-abcabba", []string{"a", "b", "c", "a", "b", "b", "a"}, []string{"c", "b", "a", "b", "a", "c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Diff[string](tc.a, tc.b)
			if diff := cmp.Diff(tc.b, apply(tc.a, tc.b, got)); diff != "" {
				t.Errorf("reconstructed b mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestDiffTieBreak pins the deletion-over-insertion tie-break rule: when both predecessor
// diagonals reach the same x, backtracking must prefer the deletion. This is observable as a
// Removed edit appearing before the corresponding Added edit for an equal-cost substitution.
func TestDiffTieBreak(t *testing.T) {
	a := []string{"x"}
	b := []string{"y"}
	got := Diff[string](a, b)
	if len(got) != 2 {
		t.Fatalf("Diff(%v, %v) = %v, want 2 edits", a, b, got)
	}
	if got[0].Tag != editscript.Removed || got[1].Tag != editscript.Added {
		t.Errorf("Diff(%v, %v) = %v, want [Removed, Added]", a, b, got)
	}
}

func TestFallbackPairwiseRoundTrip(t *testing.T) {
	a := []string{"a", "b", "c"}
	b := []string{"a", "x", "c", "d"}
	got := FallbackPairwise[string](a, b)
	if diff := cmp.Diff(b, apply(a, b, got)); diff != "" {
		t.Errorf("reconstructed b mismatch (-want +got):\n%s", diff)
	}
}
