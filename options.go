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

import "diffscope.dev/diffscope/internal/config"

// Options configures ComputeDiff and streaming.New. The zero value is not valid; use DefaultOptions
// or apply Option constructors on top of it.
type Options struct {
	Algorithm        Algorithm `json:"algorithm"`
	ContextLines     int       `json:"contextLines"`
	IgnoreWhitespace bool      `json:"ignoreWhitespace"`
	IgnoreCase       bool      `json:"ignoreCase"`
	SemanticDiff     bool      `json:"semanticDiff"`
	SyntaxHighlight  bool      `json:"syntaxHighlight"`
	Language         string    `json:"language,omitempty"`
	WordDiff         bool      `json:"wordDiff"`
	LineNumbers      bool      `json:"lineNumbers"`
	MaxFileSize      int       `json:"maxFileSize"`
}

// DefaultOptions returns the options used when a caller supplies none.
func DefaultOptions() Options {
	return Options{
		Algorithm:       Myers,
		ContextLines:    config.DefaultContextLines,
		SemanticDiff:    true,
		SyntaxHighlight: true,
		MaxFileSize:     config.DefaultMaxFileSize,
	}
}

// Option mutates an Options value built from DefaultOptions. It follows the functional-options
// idiom used throughout this module's API for callers who want to tweak one or two fields without
// constructing the full bundle by hand; callers building the bundle directly (for example, by
// unmarshaling an HTTP request body) can just populate Options.
type Option func(*Options)

func WithAlgorithm(a Algorithm) Option { return func(o *Options) { o.Algorithm = a } }
func WithContextLines(n int) Option    { return func(o *Options) { o.ContextLines = n } }
func WithIgnoreWhitespace() Option     { return func(o *Options) { o.IgnoreWhitespace = true } }
func WithIgnoreCase() Option           { return func(o *Options) { o.IgnoreCase = true } }
func WithoutSemanticDiff() Option      { return func(o *Options) { o.SemanticDiff = false } }
func WithoutSyntaxHighlight() Option   { return func(o *Options) { o.SyntaxHighlight = false } }
func WithLanguage(lang string) Option  { return func(o *Options) { o.Language = lang } }
func WithMaxFileSize(n int) Option     { return func(o *Options) { o.MaxFileSize = n } }

// apply builds an Options value from DefaultOptions with opts applied in order.
func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
