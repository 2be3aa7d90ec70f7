// Copyright 2026 The schematable Authors
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

package schematable

import "errors"

// Common errors returned by the schematable package.
var (
	// ErrNoSchema is returned when a required schema is nil.
	ErrNoSchema = errors.New("schema is nil")

	// ErrNoDriver is returned when a required driver is nil.
	ErrNoDriver = errors.New("driver is nil")

	// ErrNoDataSource is returned when a required data source is nil.
	ErrNoDataSource = errors.New("data source is nil")

	// ErrDuplicateColumnKey is returned when two sibling columns share a key.
	ErrDuplicateColumnKey = errors.New("duplicate column key")

	// ErrInvalidSchema is returned when a schema document cannot be parsed.
	ErrInvalidSchema = errors.New("invalid schema document")

	// ErrUnknownComponent labels a component identifier that resolves to
	// no renderer. Rendering degrades to an inline placeholder built from
	// this error instead of failing the column.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrMaxDepthExceeded is returned when subtable recursion reaches the
	// configured ceiling.
	ErrMaxDepthExceeded = errors.New("maximum subtable depth exceeded")
)
