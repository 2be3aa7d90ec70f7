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

import (
	"fmt"
	"slices"
)

// CellRenderer evaluates one cell of a column against a record and its
// index within the dataset.
type CellRenderer func(rec Record, rowIdx int) Renderable

// ColumnDescriptor is a renderer-ready column: sizing, alignment, the
// decorated title and the cell render function.
type ColumnDescriptor struct {
	Key           string
	TitleText     string
	Title         Renderable
	Width         string
	Align         string
	VerticalAlign string
	Fixed         string
	Filters       []FilterOption

	// OnFilter reports a change to this column's active filter values.
	OnFilter func(values []any)

	// Render evaluates one cell.
	Render CellRenderer
}

// VisibleColumns filters a column list against the current display state:
// a hidable column is included only when its key is present in
// displayKeys; non-hidable columns are always included.
func VisibleColumns(cols []ColumnSchema, displayKeys []string) []ColumnSchema {
	out := make([]ColumnSchema, 0, len(cols))
	for _, c := range cols {
		if c.Hidable && !slices.Contains(displayKeys, c.Key) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// columnGenerator turns column schemas into descriptors. One generator is
// built per render cycle and captures that cycle's dataset snapshot.
type columnGenerator struct {
	driver   Driver
	builtins map[string]Renderer
	external Registry
	extra    map[string]any
	info     *TableInfo

	// colErrors carries per-column validation failures; an affected
	// column renders inline errors instead of its cells.
	colErrors map[string][]string

	dataset      []Record
	onDataChange func(ds []Record)
	emit         func(name string, payload any, rec Record, idx int)
	onFilter     func(key string, values []any)
}

// generate builds the descriptor for one column schema.
func (g *columnGenerator) generate(col ColumnSchema) ColumnDescriptor {
	d := ColumnDescriptor{
		Key:           col.Key,
		TitleText:     col.Title,
		Title:         g.decorateTitle(col),
		Width:         NormalizeWidth(col.Width),
		Align:         col.Align,
		VerticalAlign: col.VerticalAlign,
		Fixed:         col.Fixed,
		Filters:       col.Filters,
	}
	if g.onFilter != nil && len(col.Filters) > 0 {
		key := col.Key
		d.OnFilter = func(values []any) { g.onFilter(key, values) }
	}
	d.Render = g.cellRenderer(col)
	return d
}

// decorateTitle renders the plain title, plus an info affordance revealing
// the description on demand when one is present.
func (g *columnGenerator) decorateTitle(col ColumnSchema) Renderable {
	title := g.driver.Text(col.Title)
	if col.Description == "" {
		return title
	}
	trigger := g.driver.Row(title, g.driver.Icon("info"))
	return g.driver.Popover(trigger, g.driver.Text(col.Description))
}

// cellRenderer builds the cell evaluation closure for one column. Failure
// stays local to the column or the single cell: validation errors and
// unresolved identifiers degrade to inline placeholders, and a renderer
// error substitutes an inline message for that one value.
func (g *columnGenerator) cellRenderer(col ColumnSchema) CellRenderer {
	if msgs, bad := g.colErrors[col.Key]; bad && len(msgs) > 0 {
		msg := msgs[0]
		return func(Record, int) Renderable {
			return g.driver.ErrorText(msg)
		}
	}

	renderer := Resolve(col.Component, g.builtins, g.external)
	if renderer == nil {
		placeholder := fmt.Sprintf("%v: %s", ErrUnknownComponent, col.Component)
		return func(Record, int) Renderable {
			return g.driver.ErrorText(placeholder)
		}
	}

	column := col
	return func(rec Record, rowIdx int) Renderable {
		ctx := &RenderContext{
			Driver:   g.driver,
			Value:    column.DataIndex.Get(rec, column.DefaultValue),
			Record:   rec,
			RowIndex: rowIdx,
			Column:   &column,
			Info:     g.info,
			Extra:    g.extra,
			OnChange: g.changeHandler(column, rec, rowIdx),
			Emit: func(name string, payload any) {
				g.emit(name, payload, rec, rowIdx)
			},
		}
		out, err := renderer.Render(ctx)
		if err != nil {
			return g.driver.ErrorText(fmt.Sprintf("render error: %v", err))
		}
		return out
	}
}

// changeHandler re-projects a new cell value into a cloned record and
// reports a dataset with the single changed row replaced. The host's
// original dataset array is never mutated.
func (g *columnGenerator) changeHandler(col ColumnSchema, rec Record, rowIdx int) func(any) {
	if g.onDataChange == nil {
		return nil
	}
	return func(newValue any) {
		updated := col.DataIndex.Put(rec, newValue)
		g.onDataChange(ReplaceRow(g.dataset, rowIdx, updated))
	}
}
