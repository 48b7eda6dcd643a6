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
	"fmt"
	"regexp"
	"sync"

	"diffscope.dev/diffscope/internal/hunks"
)

// syntaxRule is one entry of a per-language tokenization table. Rules are tried in descending
// Priority order at every scan position; the first whose regex matches at that position wins.
type syntaxRule struct {
	Regex     *regexp.Regexp
	TokenType string
	ClassName string
	Priority  int
}

var (
	syntaxTablesOnce sync.Once
	syntaxTables     map[string][]syntaxRule
	syntaxTablesErr  error
)

func loadSyntaxTables() (map[string][]syntaxRule, error) {
	syntaxTablesOnce.Do(func() {
		tables := map[string][]syntaxRule{}
		specs := map[string][]struct {
			pattern   string
			tokenType string
			className string
			priority  int
		}{
			"javascript": {
				{`//.*`, "comment", "token-comment", 90},
				{`/\*.*?\*/`, "comment", "token-comment", 90},
				{`"(?:[^"\\]|\\.)*"`, "string", "token-string", 80},
				{`'(?:[^'\\]|\\.)*'`, "string", "token-string", 80},
				{"`(?:[^`\\\\]|\\\\.)*`", "string", "token-string", 80},
				{`\b(function|const|let|var|class|extends|return|if|else|for|while|import|export|default|async|await|new|this|typeof|interface|type)\b`, "keyword", "token-keyword", 70},
				{`\b\d+(?:\.\d+)?\b`, "number", "token-number", 60},
			},
			"python": {
				{`#.*`, "comment", "token-comment", 90},
				{`"""(?:.|\n)*?"""`, "string", "token-string", 85},
				{`"(?:[^"\\]|\\.)*"`, "string", "token-string", 80},
				{`'(?:[^'\\]|\\.)*'`, "string", "token-string", 80},
				{`\b(def|class|import|from|return|if|elif|else|for|while|with|as|try|except|finally|async|await|lambda|yield|pass|None|True|False)\b`, "keyword", "token-keyword", 70},
				{`\b\d+(?:\.\d+)?\b`, "number", "token-number", 60},
			},
			"rust": {
				{`//.*`, "comment", "token-comment", 90},
				{`/\*.*?\*/`, "comment", "token-comment", 90},
				{`"(?:[^"\\]|\\.)*"`, "string", "token-string", 80},
				{`\b(fn|let|mut|struct|enum|impl|trait|pub|use|mod|match|if|else|for|while|loop|return|async|await|move|ref|const|static)\b`, "keyword", "token-keyword", 70},
				{`\b\d+(?:\.\d+)?\b`, "number", "token-number", 60},
			},
		}
		// A C-shaped language shares the JavaScript-shaped rule family: both use //, /* */ and
		// C-style keywords closely enough for line-level highlighting.
		specs["c"] = specs["javascript"]
		specs["cpp"] = specs["javascript"]
		specs["csharp"] = specs["javascript"]
		specs["java"] = specs["javascript"]
		// The Go-shaped language has its own table, modeled on the systems-language (Rust-shaped)
		// one: // and /* */ comments, similarly-shaped keyword sets, plus raw backtick strings.
		specs["go"] = []struct {
			pattern   string
			tokenType string
			className string
			priority  int
		}{
			{`//.*`, "comment", "token-comment", 90},
			{`/\*.*?\*/`, "comment", "token-comment", 90},
			{`"(?:[^"\\]|\\.)*"`, "string", "token-string", 80},
			{"`[^`]*`", "string", "token-string", 80},
			{`\b(func|var|const|type|struct|interface|package|import|return|if|else|for|range|switch|case|default|go|chan|select|defer|map)\b`, "keyword", "token-keyword", 70},
			{`\b\d+(?:\.\d+)?\b`, "number", "token-number", 60},
		}

		for lang, rules := range specs {
			var compiled []syntaxRule
			for _, r := range rules {
				re, err := regexp.Compile(`\A(?:` + r.pattern + `)`)
				if err != nil {
					syntaxTablesErr = fmt.Errorf("decorate: compiling syntax rule %q for %s: %w", r.pattern, lang, err)
					return
				}
				compiled = append(compiled, syntaxRule{re, r.tokenType, r.className, r.priority})
			}
			sortRulesByPriority(compiled)
			tables[lang] = compiled
		}
		syntaxTables = tables
	})
	return syntaxTables, syntaxTablesErr
}

func sortRulesByPriority(rules []syntaxRule) {
	for i := 1; i < len(rules); i++ {
		for j := i; j > 0 && rules[j].Priority > rules[j-1].Priority; j-- {
			rules[j], rules[j-1] = rules[j-1], rules[j]
		}
	}
}

// Tokenize scans line left to right, applying the highest-priority matching rule at each
// position and falling back to advancing one byte when nothing matches. An unrecognized language
// yields no tokens.
func Tokenize(language, line string) ([]hunks.Token, error) {
	if language == "" || line == "" {
		return nil, nil
	}
	tables, err := loadSyntaxTables()
	if err != nil {
		return nil, err
	}
	rules, ok := tables[language]
	if !ok {
		return nil, nil
	}

	var tokens []hunks.Token
	pos := 0
	for pos < len(line) {
		matched := false
		for _, rule := range rules {
			loc := rule.Regex.FindStringIndex(line[pos:])
			if loc == nil || loc[0] != 0 {
				continue
			}
			end := pos + loc[1]
			if end == pos {
				continue
			}
			tokens = append(tokens, hunks.Token{
				Start:     pos,
				End:       end,
				TokenType: rule.TokenType,
				ClassName: rule.ClassName,
			})
			pos = end
			matched = true
			break
		}
		if !matched {
			pos++
		}
	}
	return tokens, nil
}

// SupportedLanguages lists every language with a registered syntax table.
func SupportedLanguages() ([]string, error) {
	tables, err := loadSyntaxTables()
	if err != nil {
		return nil, err
	}
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	return langs, nil
}
