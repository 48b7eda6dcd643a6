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

package diffscope

import (
	"diffscope.dev/diffscope/internal/coalesce"
	"diffscope.dev/diffscope/internal/config"
	"diffscope.dev/diffscope/internal/decorate"
	"diffscope.dev/diffscope/internal/editscript"
	"diffscope.dev/diffscope/internal/hunks"
	"diffscope.dev/diffscope/internal/myers"
)

// ComputeDiff computes a diff between oldText and newText using DefaultOptions with opts applied.
func ComputeDiff(oldText, newText string, opts ...Option) (DiffResult, error) {
	return ComputeDiffWithOptions(oldText, newText, apply(opts))
}

// ComputeDiffWithOptions computes a diff between oldText and newText using exactly opts, with no
// defaults layered in beyond what opts itself leaves zero. This is the entry point used when
// options arrive as a decoded bundle (for example, an HTTP request body) rather than being built
// up with Option constructors.
//
// A non-nil *DecorationError is informational: the returned DiffResult is still fully formed, with
// Tokens/Semantic left nil wherever decoration failed. Any other non-nil error means the returned
// DiffResult is the zero value.
func ComputeDiffWithOptions(oldText, newText string, opts Options) (DiffResult, error) {
	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxFileSize
	}
	if len(oldText) > maxSize || len(newText) > maxSize {
		return DiffResult{}, ErrFileTooLarge
	}
	if !validEncoding(oldText) || !validEncoding(newText) {
		return DiffResult{}, ErrInvalidEncoding
	}

	oldLines := splitLines(oldText, opts)
	newLines := splitLines(newText, opts)

	hs, stats := computeHunks(oldLines, newLines, opts)

	result := DiffResult{
		Stats:       toPublicStats(stats, oldLines, newLines),
		IsBinary:    isBinary(oldText) || isBinary(newText),
		IsLargeFile: len(oldText) > 1<<20 || len(newText) > 1<<20,
	}

	language := opts.Language
	if language == "" {
		language = decorate.DetectLanguage("", newText)
		if language == "" {
			language = decorate.DetectLanguage("", oldText)
		}
	}
	result.FileLanguage = language

	var decorationErr error
	if opts.SyntaxHighlight || opts.SemanticDiff {
		if err := decorate.Decorate(hs, oldLines, newLines, decorate.Options{
			Language:        language,
			SyntaxHighlight: opts.SyntaxHighlight,
			SemanticDiff:    opts.SemanticDiff,
		}); err != nil {
			decorationErr = &DecorationError{Cause: &SyntaxError{Msg: "decorator pattern tables", Cause: err}}
		}
	}
	result.Hunks = toPublicHunks(hs)

	if decorationErr != nil {
		return result, decorationErr
	}
	return result, nil
}

// DetectLanguageHint guesses a language from a filename's extension alone, for callers (such as the
// CLI) that know a file path but have not yet decided whether to pass it through as opts.Language.
// An empty result means the extension is unrecognized; ComputeDiff's own content-based sniffing
// still runs in that case.
func DetectLanguageHint(filename string) string {
	return decorate.DetectLanguage(filename, "")
}

// computeHunks runs the shared edit-script, coalescing and hunk-assembly stages, returning the
// neutral hunk list alongside the coalesced script (the latter is what toPublicStats counts).
func computeHunks(oldLines, newLines []string, opts Options) ([]hunks.Hunk, editscript.Script) {
	context := opts.ContextLines
	if context < 0 {
		context = 0
	}

	var raw editscript.Script
	if len(oldLines)+len(newLines) > config.SafetyBound {
		raw = myers.FallbackPairwise(oldLines, newLines)
	} else {
		raw = myers.Diff(oldLines, newLines)
	}
	script := coalesce.Script(raw, oldLines, newLines)
	return hunks.Assemble(script, oldLines, newLines, context), script
}

func toPublicHunks(hs []hunks.Hunk) []Hunk {
	out := make([]Hunk, len(hs))
	for i, h := range hs {
		out[i] = Hunk{
			OldStart: h.OldStart,
			OldLines: h.OldLines,
			NewStart: h.NewStart,
			NewLines: h.NewLines,
			Header:   h.Header(),
			Changes:  toPublicChanges(h.Changes),
		}
	}
	return out
}

func toPublicChanges(cs []hunks.Change) []Change {
	out := make([]Change, len(cs))
	for i, c := range cs {
		pc := Change{
			Tag:           Tag(c.Tag),
			OldLineNumber: c.OldLine,
			NewLineNumber: c.NewLine,
			Content:       c.Content,
			PriorContent:  c.PriorContent,
		}
		if c.Tokens != nil {
			pc.Tokens = make([]SyntaxToken, len(c.Tokens))
			for j, tok := range c.Tokens {
				pc.Tokens[j] = SyntaxToken{Start: tok.Start, End: tok.End, TokenType: tok.TokenType, ClassName: tok.ClassName}
			}
		}
		if c.Semantic != nil {
			pc.Semantic = &SemanticInfo{
				EntityType: c.Semantic.EntityType,
				EntityName: c.Semantic.EntityName,
				Scope:      c.Semantic.Scope,
				Importance: c.Semantic.Importance,
			}
		}
		out[i] = pc
	}
	return out
}

func toPublicStats(script editscript.Script, oldLines, newLines []string) Statistics {
	var added, removed, modified, unchanged int
	for _, e := range script {
		switch e.Tag {
		case editscript.Added:
			added++
		case editscript.Removed:
			removed++
		case editscript.Modified:
			modified++
		case editscript.Unchanged:
			unchanged++
		}
	}
	total := max(len(oldLines), len(newLines))
	similarity := 1.0
	if total > 0 {
		similarity = 1 - float64(added+removed+modified)/float64(total)
		if similarity < 0 {
			similarity = 0
		}
		if similarity > 1 {
			similarity = 1
		}
	}
	return Statistics{
		TotalLines: total,
		Added:      added,
		Removed:    removed,
		Modified:   modified,
		Unchanged:  unchanged,
		Similarity: similarity,
	}
}
