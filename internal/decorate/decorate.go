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

package decorate

import (
	"go.uber.org/multierr"

	"diffscope.dev/diffscope/internal/hunks"
)

// Options controls which passes Decorate runs.
type Options struct {
	Language        string
	SyntaxHighlight bool
	SemanticDiff    bool
}

// Decorate annotates every Change in hs in place with syntax tokens and semantic info according to
// opts. oldLines and newLines are the full line slices of each side, used as semantic scope
// context: newLines is indexed by a Change's NewLine-1 when present, and oldLines by OldLine-1 for
// Removed changes.
//
// Syntax and semantic failures are independent: a failure in one does not prevent the other from
// running, and neither corrupts hs. Both are combined into the returned error with multierr, so a
// caller can inspect every failure rather than only the first one.
func Decorate(hs []hunks.Hunk, oldLines, newLines []string, opts Options) error {
	if !opts.SyntaxHighlight && !opts.SemanticDiff {
		return nil
	}

	var errs error
	if opts.SyntaxHighlight {
		if err := decorateSyntax(hs, opts.Language, oldLines, newLines); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if opts.SemanticDiff {
		if err := decorateSemantic(hs, opts.Language, oldLines, newLines); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func decorateSyntax(hs []hunks.Hunk, language string, oldLines, newLines []string) error {
	var errs error
	for hi := range hs {
		for ci := range hs[hi].Changes {
			c := &hs[hi].Changes[ci]
			tokens, err := Tokenize(language, c.Content)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			c.Tokens = tokens
		}
	}
	return errs
}

func decorateSemantic(hs []hunks.Hunk, language string, oldLines, newLines []string) error {
	var errs error
	for hi := range hs {
		for ci := range hs[hi].Changes {
			c := &hs[hi].Changes[ci]
			context := precedingContext(c, oldLines, newLines)
			sem, err := Annotate(language, c.Content, context)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			c.Semantic = sem
		}
	}
	return errs
}

// precedingContext returns the lines of the document preceding a change, preferring the new-side
// numbering (present for Unchanged/Added/Modified) and falling back to the old side for Removed.
func precedingContext(c *hunks.Change, oldLines, newLines []string) []string {
	if c.NewLine > 0 {
		idx := c.NewLine - 1
		if idx > len(newLines) {
			idx = len(newLines)
		}
		return newLines[:idx]
	}
	if c.OldLine > 0 {
		idx := c.OldLine - 1
		if idx > len(oldLines) {
			idx = len(oldLines)
		}
		return oldLines[:idx]
	}
	return nil
}
