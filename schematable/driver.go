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

// Renderable is an opaque unit of UI produced by a driver or a renderer.
// The engine composes renderables but never inspects them; their concrete
// type belongs to the driver's toolkit.
type Renderable interface{}

// Driver supplies the primitive widgets the engine composes. It is a pure
// rendering backend: the engine only ever invokes this documented
// contract and passes the results back into other driver calls.
type Driver interface {
	// Table renders the table body from prepared columns and row access
	// functions.
	Table(props TableProps) Renderable

	// Text renders a plain text value.
	Text(s string) Renderable

	// ErrorText renders an inline error surface.
	ErrorText(s string) Renderable

	// Icon renders a named icon from the driver's icon set.
	Icon(name string) Renderable

	// Popover attaches content revealed on demand to a trigger.
	Popover(trigger, content Renderable) Renderable

	// Button renders a push button.
	Button(label string, onTap func()) Renderable

	// Search renders a search input.
	Search(placeholder string, onSubmit func(term string)) Renderable

	// MultiSelect renders a multi-choice selector, used for the display
	// column picker.
	MultiSelect(options []SelectOption, selected []string, onChange func(keys []string)) Renderable

	// Row lays out items horizontally; Column vertically; Spacer grows to
	// fill remaining space in a Row.
	Row(items ...Renderable) Renderable
	Column(items ...Renderable) Renderable
	Spacer() Renderable
}

// SelectOption is one choice in a MultiSelect.
type SelectOption struct {
	Key   string
	Label string
}

// TableProps carries everything a body strategy needs to draw the table.
// The standard driver body and a Virtualizer receive the identical
// contract.
type TableProps struct {
	// Columns are the visible column descriptors in render order.
	Columns []ColumnDescriptor

	// RowCount is the number of rows on the current page.
	RowCount int

	// RowKey returns the resolved key of the row at i.
	RowKey func(i int) string

	// CellAt evaluates the cell at (row, col). Evaluation is lazy so a
	// windowed strategy only pays for visible cells.
	CellAt func(row, col int) Renderable

	// ExpandedAt returns the expanded content below a row, or nil when
	// the row is not expandable.
	ExpandedAt func(row int) Renderable

	// OnRowClick and OnRowDoubleClick report row interactions.
	OnRowClick       func(row int)
	OnRowDoubleClick func(row int)

	// Pagination is nil when paging is disabled.
	Pagination *PaginationProps

	// Selection is nil when selection is off (always nil for virtual
	// tables).
	Selection *SelectionProps

	// Display flags from the schema.
	Bordered   bool
	Ellipsis   bool
	ShowHeader bool
	Sticky     bool
	Size       string
}

// PaginationProps drives the pager control.
type PaginationProps struct {
	Current  int
	PageSize int
	Total    int
	OnChange func(page, pageSize int)
}

// SelectionProps drives the row selection column.
type SelectionProps struct {
	SelectedKeys []string
	OnChange     func(keys []string)
}

// Virtualizer is the windowed body strategy for large datasets. It is an
// external collaborator whose contract is identical to the standard body:
// the engine hands it the same TableProps it would hand the driver.
type Virtualizer interface {
	RenderBody(driver Driver, props TableProps) Renderable
}
