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

// Package hunks assembles a coalesced edit script into display hunks with surrounding context,
// the neutral representation shared by the decorator and insights passes before the root package
// converts it to its public API.
package hunks

import (
	"fmt"

	"diffscope.dev/diffscope/internal/editscript"
)

// Change is one line-level entry in a Hunk.
type Change struct {
	Tag editscript.Tag

	// OldLine and NewLine are 1-based line numbers, or 0 if this change does not keep that side.
	OldLine int
	NewLine int

	// Content is the current text of the line: the old line for Removed/Unchanged, the new line
	// for Added/Modified.
	Content string

	// PriorContent is the superseded text for a Modified change; empty otherwise.
	PriorContent string

	// Tokens and Semantic are filled in by internal/decorate; nil until then.
	Tokens   []Token
	Semantic *Semantic
}

// Token is a syntax-highlighted span within a Change's Content.
type Token struct {
	Start, End int
	TokenType  string
	ClassName  string
}

// Semantic is the semantic annotation attached to a Change by internal/decorate.
type Semantic struct {
	EntityType string
	EntityName string
	Scope      string
	Importance float64
}

// Hunk is a contiguous region of Changes plus its header coordinates.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Changes            []Change
}

// Header renders the canonical "@@ -os,ol +ns,nl @@" hunk header.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

// Assemble groups a coalesced edit script into hunks, keeping up to context Unchanged lines on
// either side of every run of changes. Two change runs separated by no more than 2*context
// Unchanged positions in the raw script are merged into a single hunk; this threshold is measured
// against the raw script position, including Unchanged entries not yet attached to any hunk. A
// closed hunk always keeps up to context trailing Unchanged lines, fewer only at the end of the
// script.
func Assemble(script editscript.Script, oldLines, newLines []string, context int) []Hunk {
	if context < 0 {
		context = 0
	}
	var result []Hunk
	n := len(script)
	start := -1
	lastChange := -1
	for i := 0; i < n; i++ {
		if script[i].Tag != editscript.Unchanged {
			if start < 0 {
				start = max(0, i-context)
			}
			lastChange = i
		}
		if start < 0 {
			continue
		}
		gap := i - lastChange
		if gap > 2*context || i == n-1 {
			end := lastChange + context + 1
			if end > n {
				end = n
			}
			result = append(result, buildHunk(script[start:end], oldLines, newLines))
			start, lastChange = -1, -1
		}
	}
	return result
}

func buildHunk(segment editscript.Script, oldLines, newLines []string) Hunk {
	h := Hunk{
		OldStart: segment[0].OldIndex + 1,
		NewStart: segment[0].NewIndex + 1,
	}
	h.Changes = make([]Change, len(segment))
	for i, e := range segment {
		c := Change{Tag: e.Tag}
		switch e.Tag {
		case editscript.Unchanged:
			c.OldLine, c.NewLine = e.OldIndex+1, e.NewIndex+1
			c.Content = oldLines[e.OldIndex]
			h.OldLines++
			h.NewLines++
		case editscript.Removed:
			c.OldLine = e.OldIndex + 1
			c.Content = oldLines[e.OldIndex]
			h.OldLines++
		case editscript.Added:
			c.NewLine = e.NewIndex + 1
			c.Content = newLines[e.NewIndex]
			h.NewLines++
		case editscript.Modified:
			c.OldLine, c.NewLine = e.OldIndex+1, e.NewIndex+1
			c.PriorContent = oldLines[e.OldIndex]
			c.Content = newLines[e.NewIndex]
			h.OldLines++
			h.NewLines++
		}
		h.Changes[i] = c
	}
	return h
}
