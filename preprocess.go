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
	"strings"
	"unicode/utf8"

	"diffscope.dev/diffscope/internal/byteview"
)

// splitLines splits text into lines with Options applied: ignore_whitespace trims each line and
// drops lines that become blank; ignore_case lowercases every line. Both are applied before the
// edit engine ever sees the text, so they affect what counts as equal, not just display.
func splitLines(text string, opts Options) []string {
	raw := byteview.Lines(byteview.From(text))
	if !opts.IgnoreWhitespace && !opts.IgnoreCase {
		return raw
	}
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if opts.IgnoreWhitespace {
			l = strings.TrimSpace(l)
			if l == "" {
				continue
			}
		}
		if opts.IgnoreCase {
			l = strings.ToLower(l)
		}
		lines = append(lines, l)
	}
	return lines
}

// isBinary reports whether text contains a NUL byte, the same heuristic used by most line-oriented
// diff tools to flag binary content.
func isBinary(text string) bool {
	return strings.IndexByte(text, 0) >= 0
}

// validEncoding reports whether text is well-formed UTF-8.
func validEncoding(text string) bool {
	return utf8.ValidString(text)
}
