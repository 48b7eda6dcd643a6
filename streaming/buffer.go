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

package streaming

import (
	"strings"

	"diffscope.dev/diffscope"
)

// lineBuffer accumulates chunked input into complete lines, enforcing a byte cap. A chunk that
// does not begin with '\n' continues the buffer's last (not yet newline-terminated) line rather
// than starting a new one, so line content can straddle a chunk boundary.
type lineBuffer struct {
	lines     []string
	totalSize int
	maxSize   int
}

func newLineBuffer(maxSize int) *lineBuffer {
	return &lineBuffer{maxSize: maxSize}
}

// addChunk appends chunk's content to the buffer, splitting on '\n'. Returns diffscope.ErrBufferOverflow
// if the cap would be exceeded.
func (b *lineBuffer) addChunk(chunk string) error {
	if b.totalSize+len(chunk) > b.maxSize {
		return diffscope.ErrBufferOverflow
	}
	b.totalSize += len(chunk)

	if chunk == "" {
		return nil
	}

	parts := strings.Split(chunk, "\n")
	if len(b.lines) > 0 {
		// Continue the previous not-yet-terminated line with the first part of this chunk.
		b.lines[len(b.lines)-1] += parts[0]
	} else {
		b.lines = append(b.lines, parts[0])
	}
	b.lines = append(b.lines, parts[1:]...)
	return nil
}

// fillRatio reports how full the buffer is relative to its cap.
func (b *lineBuffer) fillRatio() float64 {
	if b.maxSize == 0 {
		return 0
	}
	return float64(b.totalSize) / float64(b.maxSize)
}

// take removes and returns up to n lines from the front of the buffer.
func (b *lineBuffer) take(n int) []string {
	if n > len(b.lines) {
		n = len(b.lines)
	}
	out := b.lines[:n]
	rest := make([]string, len(b.lines)-n)
	copy(rest, b.lines[n:])
	b.lines = rest
	if n > 0 {
		// totalSize is approximate after draining; it is only used for the fill-ratio trigger, so
		// recomputing from the (shorter) remaining content is enough to keep it meaningful.
		var remaining int
		for _, l := range b.lines {
			remaining += len(l) + 1
		}
		b.totalSize = remaining
	}
	return out
}

func (b *lineBuffer) len() int { return len(b.lines) }
