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

// Package streaming computes a diff between two documents supplied as a sequence of byte chunks,
// for inputs too large to hold as a pair of in-memory strings. It runs the same pipeline as
// diffscope.ComputeDiff over sliding windows of the buffered input and accumulates the resulting
// hunks, rebasing line numbers by the running totals already processed.
//
// A Session does not merge hunks across window boundaries: a change that straddles a window edge
// is reported as two hunks. This is a known limitation of the windowed approach, not a bug.
package streaming

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"diffscope.dev/diffscope"
	"diffscope.dev/diffscope/internal/config"
)

// State is a Session's position in its chunk-receiving lifecycle.
type State int

const (
	ReceivingOld State = iota
	ReceivingNew
	Finalized
)

func (s State) String() string {
	switch s {
	case ReceivingOld:
		return "ReceivingOld"
	case ReceivingNew:
		return "ReceivingNew"
	case Finalized:
		return "Finalized"
	default:
		return "State(?)"
	}
}

// Session is a single streaming diff computation. Its methods are safe for concurrent use; a host
// serving multiple sessions should still avoid holding the Session lock across HTTP request
// boundaries beyond the call that needs it.
type Session struct {
	id   uuid.UUID
	opts diffscope.Options

	mu    sync.Mutex
	state State

	oldBuf, newBuf *lineBuffer

	processedOldLines int
	processedNewLines int

	hunks []diffscope.Hunk
	// stats accumulates tag counts across every processed window; Finalize and
	// IntermediateResult derive Statistics from it.
	stats windowStats
}

type windowStats struct {
	added, removed, modified, unchanged int
}

// New starts a new streaming session using opts as given. If opts.MaxFileSize is 0 or less,
// config.DefaultMaxFileSize is used to size the line buffers.
func New(opts diffscope.Options) *Session {
	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxFileSize
	}
	return &Session{
		id:     uuid.New(),
		opts:   opts,
		state:  ReceivingOld,
		oldBuf: newLineBuffer(maxSize / 2),
		newBuf: newLineBuffer(maxSize / 2),
	}
}

// ID returns the session's identifier, stable for its lifetime. Hosts use it to address an
// in-flight session across independent requests; the core state machine does not depend on it.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AddOldChunk appends a chunk of the old document. Valid only in ReceivingOld.
func (s *Session) AddOldChunk(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ReceivingOld {
		return &diffscope.InvalidStateError{Msg: "AddOldChunk called in state " + s.state.String()}
	}
	return s.oldBuf.addChunk(string(chunk))
}

// StartNewFile transitions the session from receiving the old document to receiving the new one.
func (s *Session) StartNewFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ReceivingOld {
		return &diffscope.InvalidStateError{Msg: "StartNewFile called in state " + s.state.String()}
	}
	s.state = ReceivingNew
	return nil
}

// AddNewChunk appends a chunk of the new document and, once enough input has accumulated, runs one
// window of the diff pipeline. Valid only in ReceivingNew.
func (s *Session) AddNewChunk(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != ReceivingNew {
		return &diffscope.InvalidStateError{Msg: "AddNewChunk called in state " + s.state.String()}
	}
	if err := s.newBuf.addChunk(string(chunk)); err != nil {
		return err
	}
	if s.shouldProcess() {
		s.processWindow(config.StreamWindowLines)
	}
	return nil
}

func (s *Session) shouldProcess() bool {
	return s.oldBuf.len() > config.StreamWindowLines ||
		s.newBuf.len() > config.StreamWindowLines ||
		s.oldBuf.fillRatio() > config.StreamTriggerFillRatio ||
		s.newBuf.fillRatio() > config.StreamTriggerFillRatio
}

// processWindow runs the pipeline on up to limit lines from the head of each buffer, rebases the
// resulting hunks by the running totals, and drains the processed prefix.
func (s *Session) processWindow(limit int) {
	oldWindow := s.oldBuf.take(limit)
	newWindow := s.newBuf.take(limit)
	if len(oldWindow) == 0 && len(newWindow) == 0 {
		return
	}

	result, err := diffscope.ComputeDiffWithOptions(joinLines(oldWindow), joinLines(newWindow), s.opts)
	if err != nil {
		// A *diffscope.DecorationError leaves result fully formed; anything else (encoding,
		// size) cannot happen here since the window is carved from already-accepted input.
		if _, ok := err.(*diffscope.DecorationError); !ok {
			return
		}
	}

	for _, h := range result.Hunks {
		h.OldStart += s.processedOldLines
		h.NewStart += s.processedNewLines
		for i := range h.Changes {
			if h.Changes[i].OldLineNumber != 0 {
				h.Changes[i].OldLineNumber += s.processedOldLines
			}
			if h.Changes[i].NewLineNumber != 0 {
				h.Changes[i].NewLineNumber += s.processedNewLines
			}
		}
		rebaseHeader(&h)
		s.hunks = append(s.hunks, h)
	}
	s.stats.added += result.Stats.Added
	s.stats.removed += result.Stats.Removed
	s.stats.modified += result.Stats.Modified
	s.stats.unchanged += result.Stats.Unchanged

	s.processedOldLines += len(oldWindow)
	s.processedNewLines += len(newWindow)
}

// rebaseHeader re-renders a Hunk's header after its OldStart/NewStart have been shifted by a
// window's running totals.
func rebaseHeader(h *diffscope.Hunk) {
	h.Header = fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	total := len(lines) - 1
	for _, l := range lines {
		total += len(l)
	}
	buf := make([]byte, 0, total)
	for i, l := range lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, l...)
	}
	return string(buf)
}

// Finalize flushes any residual buffered lines through one last pipeline window, composes the
// accumulated hunks into a final DiffResult, and transitions the session to Finalized. Finalize
// cannot be called twice.
func (s *Session) Finalize() (diffscope.DiffResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Finalized {
		return diffscope.DiffResult{}, &diffscope.InvalidStateError{Msg: "Finalize called twice"}
	}
	s.processWindow(max(s.oldBuf.len(), s.newBuf.len()))
	s.state = Finalized
	return s.compose(true), nil
}

// IntermediateResult returns the current accumulator as a DiffResult snapshot without mutating
// session state. Safe to call at any point after the first processed window.
func (s *Session) IntermediateResult() diffscope.DiffResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compose(false)
}

func (s *Session) compose(largeFile bool) diffscope.DiffResult {
	hunksCopy := make([]diffscope.Hunk, len(s.hunks))
	copy(hunksCopy, s.hunks)

	total := max(s.processedOldLines, s.processedNewLines)
	changed := s.stats.added + s.stats.removed + s.stats.modified
	similarity := 1.0
	if total > 0 {
		similarity = 1 - float64(changed)/float64(total)
		if similarity < 0 {
			similarity = 0
		}
		if similarity > 1 {
			similarity = 1
		}
	}

	return diffscope.DiffResult{
		Hunks: hunksCopy,
		Stats: diffscope.Statistics{
			TotalLines: total,
			Added:      s.stats.added,
			Removed:    s.stats.removed,
			Modified:   s.stats.modified,
			Unchanged:  s.stats.unchanged,
			Similarity: similarity,
		},
		IsLargeFile: largeFile,
	}
}
