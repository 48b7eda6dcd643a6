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

package diffscope_test

import (
	"errors"
	"strings"
	"testing"

	"diffscope.dev/diffscope"
)

// applyScript reconstructs newText from oldText and a computed DiffResult, to check the
// round-trip invariant: applying the script to the old text reconstructs the new text.
func applyScript(old string, result diffscope.DiffResult) string {
	// ComputeDiff treats an empty text as zero lines, not as one empty line.
	var oldLines []string
	if old != "" {
		oldLines = strings.Split(old, "\n")
	}
	var out []string
	next := 0
	for _, h := range result.Hunks {
		for next < h.OldStart-1 {
			out = append(out, oldLines[next])
			next++
		}
		for _, c := range h.Changes {
			switch c.Tag {
			case diffscope.Unchanged:
				out = append(out, c.Content)
				next++
			case diffscope.Removed:
				next++
			case diffscope.Added, diffscope.Modified:
				out = append(out, c.Content)
				if c.Tag == diffscope.Modified {
					next++
				}
			}
		}
	}
	for next < len(oldLines) {
		out = append(out, oldLines[next])
		next++
	}
	return strings.Join(out, "\n")
}

func TestComputeDiffRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{"identical", "a\nb\nc", "a\nb\nc"},
		{"modification", "a\nb\nc", "a\nx\nc"},
		{"insertion", "a\nc", "a\nb\nc"},
		{"deletion", "a\nb\nc", "a\nc"},
		{"all-added", "", "p\nq"},
		{"all-removed", "p\nq", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := diffscope.ComputeDiff(tc.old, tc.new)
			if err != nil {
				t.Fatalf("ComputeDiff() error = %v", err)
			}
			if got := applyScript(tc.old, result); got != tc.new {
				t.Errorf("applyScript() = %q, want %q", got, tc.new)
			}
		})
	}
}

func TestComputeDiffIdempotent(t *testing.T) {
	text := "line one\nline two\nline three"
	result, err := diffscope.ComputeDiff(text, text)
	if err != nil {
		t.Fatalf("ComputeDiff() error = %v", err)
	}
	if len(result.Hunks) != 0 {
		t.Errorf("ComputeDiff(x, x) produced %d hunks, want 0", len(result.Hunks))
	}
	if result.Stats.Similarity != 1 {
		t.Errorf("Similarity = %v, want 1", result.Stats.Similarity)
	}
}

func TestComputeDiffModificationCoalescing(t *testing.T) {
	// "hello world" -> "hello_world" is a single-character substitution, similar enough (distance 1
	// over length 11) to coalesce into one Modified rather than a Removed+Added pair.
	result, err := diffscope.ComputeDiff("a\nhello world\nc", "a\nhello_world\nc")
	if err != nil {
		t.Fatalf("ComputeDiff() error = %v", err)
	}
	if result.Stats.Modified != 1 || result.Stats.Added != 0 || result.Stats.Removed != 0 {
		t.Errorf("Stats = %+v, want exactly one Modified", result.Stats)
	}
}

func TestComputeDiffFileTooLarge(t *testing.T) {
	big := strings.Repeat("x", 1024)
	_, err := diffscope.ComputeDiff(big, "y", diffscope.WithMaxFileSize(10))
	if !errors.Is(err, diffscope.ErrFileTooLarge) {
		t.Errorf("ComputeDiff() error = %v, want ErrFileTooLarge", err)
	}
}

func TestComputeDiffBinaryDetection(t *testing.T) {
	result, err := diffscope.ComputeDiff("abc\x00def", "abc")
	if err != nil {
		t.Fatalf("ComputeDiff() error = %v", err)
	}
	if !result.IsBinary {
		t.Errorf("IsBinary = false, want true")
	}
}

func TestComputeDiffHunkLineCountsMatchChanges(t *testing.T) {
	result, err := diffscope.ComputeDiff(
		"1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11\n12\n13\n14\n15\n16\n17\n18\n19\n20",
		"1\n2\n3\n4\n5\n6\n7\nX\n9\n10\n11\n12\n13\n14\n15\n16\n17\n18\n19\nY",
	)
	if err != nil {
		t.Fatalf("ComputeDiff() error = %v", err)
	}
	for _, h := range result.Hunks {
		var oldCount, newCount int
		for _, c := range h.Changes {
			if c.OldLineNumber != 0 {
				oldCount++
			}
			if c.NewLineNumber != 0 {
				newCount++
			}
		}
		if oldCount != h.OldLines || newCount != h.NewLines {
			t.Errorf("hunk %q: OldLines/NewLines = %d/%d, counted %d/%d", h.Header, h.OldLines, h.NewLines, oldCount, newCount)
		}
	}
}

func TestComputeDiffIgnoreCase(t *testing.T) {
	result, err := diffscope.ComputeDiff("Hello\nWorld", "hello\nworld", diffscope.WithIgnoreCase())
	if err != nil {
		t.Fatalf("ComputeDiff() error = %v", err)
	}
	if len(result.Hunks) != 0 {
		t.Errorf("ComputeDiff() with WithIgnoreCase() produced %d hunks, want 0", len(result.Hunks))
	}
}

func TestComputeInsights(t *testing.T) {
	result, err := diffscope.ComputeDiff("a\nb\nc", "a\nx\nc")
	if err != nil {
		t.Fatalf("ComputeDiff() error = %v", err)
	}
	in := diffscope.ComputeInsights(result)
	if in.Hunks != len(result.Hunks) {
		t.Errorf("Insights.Hunks = %d, want %d", in.Hunks, len(result.Hunks))
	}
	if len(in.ChangeIntensity) != in.Hunks {
		t.Errorf("len(ChangeIntensity) = %d, want %d", len(in.ChangeIntensity), in.Hunks)
	}
}
