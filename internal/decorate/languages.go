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

// Package decorate attaches syntax tokens and semantic entity annotations to diff changes. Both
// passes are regex catalogues keyed by a detected or hinted language name; neither attempts real
// parsing.
package decorate

import "strings"

// DetectLanguage guesses a language from a filename hint (if any) and the content itself, falling
// back to content sniffing when filename is empty or its extension is unknown.
func DetectLanguage(filename string, content string) string {
	if filename != "" {
		if lang, ok := languageByExtension(filename); ok {
			return lang
		}
	}
	return detectFromContent(content)
}

func languageByExtension(filename string) (string, bool) {
	ext := ""
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}
	lang, ok := extensionLanguages[ext]
	return lang, ok
}

var extensionLanguages = map[string]string{
	"js": "javascript", "jsx": "javascript", "mjs": "javascript", "cjs": "javascript",
	"ts": "typescript", "tsx": "typescript",
	"py": "python", "pyw": "python",
	"rs": "rust",
	"go": "go",
	"java": "java",
	"c": "c", "h": "c",
	"cc": "cpp", "cpp": "cpp", "cxx": "cpp", "hpp": "cpp",
	"cs": "csharp",
	"php": "php",
	"rb": "ruby",
	"swift": "swift",
	"kt": "kotlin", "kts": "kotlin",
	"scala": "scala",
	"sql": "sql",
	"sh": "shell", "bash": "shell",
	"yaml": "yaml", "yml": "yaml",
	"json": "json",
	"xml": "xml",
	"html": "html", "htm": "html",
	"css": "css",
	"scss": "css",
	"md": "markdown",
}

// detectFromContent applies a small set of content heuristics for the languages this package
// tokenizes and annotates; anything else returns the empty string (unknown).
func detectFromContent(content string) string {
	switch {
	case strings.HasPrefix(content, "#!/usr/bin/env python") || strings.HasPrefix(content, "#!/usr/bin/python"):
		return "python"
	case strings.HasPrefix(content, "#!/usr/bin/env node"):
		return "javascript"
	case strings.HasPrefix(content, "#!/bin/bash") || strings.HasPrefix(content, "#!/bin/sh"):
		return "shell"
	case strings.Contains(content, "fn ") && strings.Contains(content, "let "):
		return "rust"
	case strings.Contains(content, "package ") && strings.Contains(content, "func "):
		return "go"
	case strings.Contains(content, "function") || strings.Contains(content, "const ") || strings.Contains(content, "=>"):
		return "javascript"
	case strings.Contains(content, "def ") && strings.Contains(content, "import "):
		return "python"
	default:
		return ""
	}
}
