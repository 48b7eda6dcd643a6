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

// Package diffscope computes hunk-structured, optionally decorated diffs between two texts.
//
// The core pipeline is: split each input into lines (applying whitespace/case normalization), run
// the Myers shortest-edit-script algorithm, coalesce similar adjacent removal/insertion pairs into
// modifications, assemble the result into context-bounded hunks, and optionally attach syntax
// tokens and semantic entity annotations to every changed line. [ComputeDiff] runs the whole
// pipeline; [ComputeInsights] derives summary statistics from an already-computed [DiffResult].
//
// Large documents that do not fit in memory as a single pair of strings should use the streaming
// package instead, which runs the same pipeline over sliding windows of chunked input.
package diffscope
