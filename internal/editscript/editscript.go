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

// Package editscript defines the neutral edit-script representation shared by the line edit
// engine, the modification coalescer and the hunk assembler. It has no dependency on the public
// API so that all three stages can be tested and composed independently.
package editscript

//go:generate go tool golang.org/x/tools/cmd/stringer -type=Tag

// Tag classifies a single entry in an edit script.
type Tag int

const (
	// Unchanged marks a line present, unaltered, on both sides.
	Unchanged Tag = iota
	// Removed marks a line present only on the old side.
	Removed
	// Added marks a line present only on the new side.
	Added
	// Modified marks a Removed/Added pair coalesced by internal/coalesce. It is never produced
	// directly by internal/myers.
	Modified
)

// Edit is one entry of an edit script: a tag plus the 0-based indices into the old and new line
// slices it refers to.
//
// For Removed, NewIndex is the new-side cursor at the time of emission (the position the removed
// line would have been inserted relative to). For Added, OldIndex is the old-side cursor. For
// Unchanged and Modified both indices are meaningful. Indices are monotonically non-decreasing
// along a well-formed script.
type Edit struct {
	Tag      Tag
	OldIndex int
	NewIndex int
}

// Script is an ordered, well-formed edit script.
type Script []Edit
