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
	"strings"
	"sync"

	"diffscope.dev/diffscope/internal/hunks"
)

// semanticPattern recognizes one kind of named entity on a line.
type semanticPattern struct {
	Regex      *regexp.Regexp
	EntityType string
	NameGroup  int
	Importance float64
}

var (
	semanticTablesOnce sync.Once
	semanticTables     map[string][]semanticPattern
	semanticTablesErr  error
)

func loadSemanticTables() (map[string][]semanticPattern, error) {
	semanticTablesOnce.Do(func() {
		tables := map[string][]semanticPattern{}
		type spec struct {
			pattern    string
			entityType string
			nameGroup  int
			importance float64
		}
		specs := map[string][]spec{
			"javascript": {
				{`^\s*(?:export\s+)?class\s+(\w+)`, "class", 1, 0.9},
				{`^\s*(?:export\s+)?(?:default\s+)?function\s+(\w+)`, "function", 1, 0.8},
				{`^\s*(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*(?:\([^)]*\)|[\w,\s]*)\s*=>`, "arrow_function", 1, 0.7},
				{`^\s*(?:export\s+)?interface\s+(\w+)`, "interface", 1, 0.6},
				{`^\s*(?:export\s+)?type\s+(\w+)\s*=`, "type_alias", 1, 0.5},
				{`^\s*import\s+.*?from\s+['"]([^'"]+)['"]`, "import", 1, 0.5},
			},
			"python": {
				{`^\s*class\s+(\w+)`, "class", 1, 0.9},
				{`^\s*async\s+def\s+(\w+)`, "async_function", 1, 0.8},
				{`^\s*def\s+(\w+)`, "function", 1, 0.8},
				{`^\s*@(\w+)`, "decorator", 1, 0.6},
				{`^\s*(\w+)\s*=`, "variable", 1, 0.3},
				{`^\s*import\s+(\w+)`, "import", 1, 0.5},
				{`^\s*from\s+(\S+)\s+import`, "import", 1, 0.5},
			},
			"rust": {
				{`^\s*(?:pub\s+)?struct\s+(\w+)`, "struct", 1, 0.9},
				{`^\s*(?:pub\s+)?enum\s+(\w+)`, "enum", 1, 0.9},
				{`^\s*(?:pub\s+)?fn\s+(\w+)`, "function", 1, 0.8},
				{`^\s*impl(?:<[^>]*>)?\s+(?:\w+\s+for\s+)?(\w+)`, "impl", 1, 0.7},
				{`^\s*(?:pub\s+)?trait\s+(\w+)`, "trait", 1, 0.7},
				{`^\s*use\s+(\S+)`, "use", 1, 0.4},
			},
		}
		specs["go"] = []spec{
			{`^\s*func\s+(?:\([^)]*\)\s*)?(\w+)`, "function", 1, 0.8},
			{`^\s*type\s+(\w+)\s+struct`, "struct", 1, 0.9},
			{`^\s*type\s+(\w+)\s+interface`, "interface", 1, 0.7},
			{`^\s*import\s+"([^"]+)"`, "import", 1, 0.5},
		}
		for lang, patterns := range specs {
			var compiled []semanticPattern
			for _, p := range patterns {
				re, err := regexp.Compile(p.pattern)
				if err != nil {
					semanticTablesErr = fmt.Errorf("decorate: compiling semantic pattern %q for %s: %w", p.pattern, lang, err)
					return
				}
				compiled = append(compiled, semanticPattern{re, p.entityType, p.nameGroup, p.importance})
			}
			tables[lang] = compiled
		}
		semanticTables = tables
	})
	return semanticTables, semanticTablesErr
}

// Annotate returns the semantic annotation for line, if any pattern for language matches. context
// is the ordered list of lines preceding line in the same file, used to determine the enclosing
// scope by indentation.
func Annotate(language string, line string, context []string) (*hunks.Semantic, error) {
	if language == "" || strings.TrimSpace(line) == "" {
		return nil, nil
	}
	tables, err := loadSemanticTables()
	if err != nil {
		return nil, err
	}
	patterns, ok := tables[language]
	if !ok {
		return nil, nil
	}
	for _, p := range patterns {
		m := p.Regex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := ""
		if p.NameGroup < len(m) {
			name = m[p.NameGroup]
		}
		return &hunks.Semantic{
			EntityType: p.EntityType,
			EntityName: name,
			Scope:      determineScope(language, patterns, line, context),
			Importance: p.Importance,
		}, nil
	}
	return nil, nil
}

// determineScope walks context backwards looking for the nearest enclosing line: one with
// strictly smaller leading-whitespace indentation than line. If that line itself matches a
// semantic pattern, its entity name becomes the scope.
func determineScope(language string, patterns []semanticPattern, line string, context []string) string {
	indent := indentOf(line)
	for i := len(context) - 1; i >= 0; i-- {
		candidate := context[i]
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		if indentOf(candidate) < indent {
			for _, p := range patterns {
				m := p.Regex.FindStringSubmatch(candidate)
				if m == nil {
					continue
				}
				if p.NameGroup < len(m) {
					return m[p.NameGroup]
				}
			}
			return ""
		}
	}
	return ""
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}
