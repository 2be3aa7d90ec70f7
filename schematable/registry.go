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

import "strings"

// NamespaceSeparator splits a two-part component identifier into its
// namespace and name.
const NamespaceSeparator = "::"

// Renderer draws the cells of one column. Renderers are opaque to the
// engine beyond this contract: they receive a render context and produce a
// renderable unit, or an error which the engine turns into an inline
// per-cell error surface.
type Renderer interface {
	Render(ctx *RenderContext) (Renderable, error)
}

// CapabilityPublisher is optionally implemented by renderers that publish
// a JSON Schema describing the options bag they accept. The validator
// checks column options against it.
type CapabilityPublisher interface {
	OptionsSchema() []byte
}

// Registry is the host-supplied two-level renderer registry for
// "namespace::name" identifiers.
type Registry map[string]map[string]Renderer

// RenderContext is everything a renderer receives for one cell
// evaluation.
type RenderContext struct {
	// Driver is the active rendering backend.
	Driver Driver

	// Value is the projected cell value, after defaultValue fallback.
	Value any

	// Record is the full row record.
	Record Record

	// RowIndex is the row's index within the current dataset.
	RowIndex int

	// Column is the owning column schema (options live here).
	Column *ColumnSchema

	// Info is the table information of the owning table.
	Info *TableInfo

	// Extra is opaque host data passed through the engine options.
	Extra map[string]any

	// OnChange reports a new cell value outward. The engine re-projects
	// the value into a cloned record and fires the data-source-changed
	// callback; the host's original dataset is never touched.
	OnChange func(newValue any)

	// Emit forwards a named interaction to the unified event dispatch.
	Emit func(name string, payload any)
}

// Resolve maps a component identifier to a renderer. A bare identifier is
// looked up in builtins; a "namespace::name" identifier in the host
// registry. Resolution never fails hard: a miss returns nil and the
// column generator substitutes a placeholder.
func Resolve(identifier string, builtins map[string]Renderer, external Registry) Renderer {
	if identifier == "" {
		return nil
	}
	ns, name, found := strings.Cut(identifier, NamespaceSeparator)
	if !found {
		return builtins[identifier]
	}
	return external[ns][name]
}
