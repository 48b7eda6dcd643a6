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

package insights

import (
	"testing"

	"diffscope.dev/diffscope/internal/editscript"
	"diffscope.dev/diffscope/internal/hunks"
)

func TestComputeIdentical(t *testing.T) {
	got := Compute(nil, 3, 3)
	if got.Similarity != 1 {
		t.Errorf("Similarity = %v, want 1", got.Similarity)
	}
	if got.Hunks != 0 {
		t.Errorf("Hunks = %d, want 0", got.Hunks)
	}
}

func TestComputeAllAdded(t *testing.T) {
	hs := []hunks.Hunk{{
		Changes: []hunks.Change{
			{Tag: editscript.Added}, {Tag: editscript.Added},
		},
	}}
	got := Compute(hs, 0, 2)
	if got.Added != 2 || got.Similarity != 0 {
		t.Errorf("Compute() = %+v, want Added=2 Similarity=0", got)
	}
}

func TestComputeChangeIntensity(t *testing.T) {
	hs := []hunks.Hunk{{
		Changes: []hunks.Change{
			{Tag: editscript.Unchanged},
			{Tag: editscript.Modified},
			{Tag: editscript.Unchanged},
		},
	}}
	got := Compute(hs, 3, 3)
	if len(got.ChangeIntensity) != 1 {
		t.Fatalf("ChangeIntensity = %v, want 1 entry", got.ChangeIntensity)
	}
	want := 2.0 / 3.0
	if diff := got.ChangeIntensity[0] - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ChangeIntensity[0] = %v, want %v", got.ChangeIntensity[0], want)
	}
}
