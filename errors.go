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

import "errors"

// Sentinel errors for conditions that carry no additional detail. Test with errors.Is.
var (
	// ErrFileTooLarge is returned when either input exceeds Options.MaxFileSize.
	ErrFileTooLarge = errors.New("diffscope: input exceeds max file size")

	// ErrInvalidEncoding is returned when an input cannot be interpreted as the expected text
	// encoding.
	ErrInvalidEncoding = errors.New("diffscope: invalid encoding")

	// ErrBufferOverflow is returned by a streaming session when a side's line buffer exceeds its
	// byte cap. Test with errors.Is.
	ErrBufferOverflow = errors.New("diffscope: streaming buffer overflow")
)

// AlgorithmError reports a failure in the edit-script computation itself. The core algorithm never
// produces one in this implementation; it exists for forward compatibility with alternate
// algorithms (Patience, Histogram) that may fail to converge.
type AlgorithmError struct {
	Msg   string
	Cause error
}

func (e *AlgorithmError) Error() string {
	if e.Cause != nil {
		return "diffscope: algorithm error: " + e.Msg + ": " + e.Cause.Error()
	}
	return "diffscope: algorithm error: " + e.Msg
}

func (e *AlgorithmError) Unwrap() error { return e.Cause }

// SyntaxError reports a failure in the decorator pass's syntax or semantic pattern tables. A
// SyntaxError never corrupts the hunk structure already computed; see DecorationError.
type SyntaxError struct {
	Msg   string
	Cause error
}

func (e *SyntaxError) Error() string {
	if e.Cause != nil {
		return "diffscope: syntax error: " + e.Msg + ": " + e.Cause.Error()
	}
	return "diffscope: syntax error: " + e.Msg
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// InvalidStateError reports a streaming session method called outside the state it requires (for
// example, add_old_chunk after finalize).
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string { return "diffscope: invalid state: " + e.Msg }

// DecorationError wraps one or more independent failures from the decorator pass (syntax
// tokenization, semantic annotation). A non-nil DecorationError is informational: ComputeDiff
// still returns a fully-formed DiffResult alongside it, with the affected annotations left nil.
type DecorationError struct {
	Cause error
}

func (e *DecorationError) Error() string { return "diffscope: decoration: " + e.Cause.Error() }
func (e *DecorationError) Unwrap() error { return e.Cause }
