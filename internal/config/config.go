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

// Package config collects the default values and safety bounds shared across this module's
// packages.
//
// This package is an implementation detail; the configuration surface for users is
// diffscope.Options and its Option constructors.
package config

// DefaultContextLines is the number of matched lines kept as context around each hunk when the
// caller does not specify one.
const DefaultContextLines = 3

// DefaultMaxFileSize is the input size cap, in bytes, applied when the caller does not specify
// one.
const DefaultMaxFileSize = 10 << 20 // 10 MiB

// SafetyBound is the combined old+new line count above which the Myers trace algorithm's
// O((N+M)^2) memory use is considered too expensive; beyond this bound the root package's
// pipeline uses myers.FallbackPairwise instead of myers.Diff.
const SafetyBound = 20_000

// StreamWindowLines is the number of lines the streaming package processes per pipeline invocation
// once its trigger condition fires.
const StreamWindowLines = 1000

// StreamTriggerFillRatio is the fraction of a line buffer's byte cap that, once exceeded, forces a
// streaming window to be processed even if StreamWindowLines has not been reached.
const StreamTriggerFillRatio = 0.5
