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
	"strings"

	"github.com/spf13/cast"

	"github.com/tablekit/schematable/internal/rowfilter"
)

// defaultMaxSubtableDepth bounds subtable recursion. The data's own
// nesting depth is the practical bound; the ceiling only guards against a
// cyclic dataset forcing unbounded recursion.
const defaultMaxSubtableDepth = 32

// Callbacks are the host-supplied hooks. Every callback receives the
// current table information as trailing context and is invoked
// synchronously; callbacks must not block.
type Callbacks struct {
	// Lifecycle.
	OnMount   func(info *TableInfo)
	OnUpdate  func(info *TableInfo)
	OnUnmount func(info *TableInfo)

	// Row interaction.
	OnRowClick       func(rec Record, index int, info *TableInfo)
	OnRowDoubleClick func(rec Record, index int, info *TableInfo)

	// State-driven callbacks.
	OnSelectionChange      func(keys []string, info *TableInfo)
	OnSearch               func(term string, info *TableInfo)
	OnInsert               func(info *TableInfo)
	OnFilterChange         func(filters map[string][]any, info *TableInfo)
	OnPageChange           func(page, pageSize int, info *TableInfo)
	OnChange               func(state State, info *TableInfo)
	OnDisplayColumnsChange func(keys []string, info *TableInfo)

	// OnEvent receives every interaction renderers emit.
	OnEvent func(ev Event, info *TableInfo)

	// OnDataSourceChange receives the new dataset after a cell edit. The
	// engine never applies the change itself.
	OnDataSourceChange func(ds []Record, info *TableInfo)

	// Subtable slots and expansion control.
	SubtableTitle  func(rec Record, index int, info *TableInfo) Renderable
	SubtableFooter func(rec Record, index int, info *TableInfo) Renderable
	RowExpandable  func(rec Record, index int, info *TableInfo) bool
}

// Options configure one table instance.
type Options struct {
	// Driver supplies the primitive widgets.
	Driver Driver

	// Builtins is the built-in renderer set for bare component
	// identifiers.
	Builtins map[string]Renderer

	// Registry resolves "namespace::name" identifiers.
	Registry Registry

	// Virtualizer renders the windowed body for virtual tables. Without
	// one, a virtual schema falls back to the standard body.
	Virtualizer Virtualizer

	// Validation tunes schema/prop validation; nil means enabled.
	Validation *ValidationConfig

	// Extra is opaque host data handed to every renderer.
	Extra map[string]any

	// DisplayColumnKeys overrides the initial set of visible hidable
	// columns. Nil means all hidable columns start visible.
	DisplayColumnKeys []string

	// MaxSubtableDepth caps subtable recursion; zero means the default.
	MaxSubtableDepth int

	Callbacks Callbacks
}

// DefaultOptions returns options with engine defaults filled in. Callers
// set their driver and callbacks on the result.
func DefaultOptions() Options {
	return Options{MaxSubtableDepth: defaultMaxSubtableDepth}
}

// Table is the orchestrator: it validates props, generates columns,
// resolves UI state and composes the body, recursing into subtables for
// expandable rows.
type Table struct {
	schema  *Schema
	dataset []Record
	opts    Options

	store     *Store
	validator *Validator
	info      *TableInfo

	// children are the subtable infos constructed during the last render
	// pass. The parent owns them; each child only holds a weak
	// back-reference.
	children []*TableInfo

	rowKeyField   string
	depth         int
	keyChain      []string
	mounted       bool
	virtualWarned bool
}

// New creates a table instance for a schema and dataset. The schema is
// only read, never modified; the dataset is treated as an immutable
// snapshot until SetDataSource replaces it.
func New(schema *Schema, data []Record, opts Options) (*Table, error) {
	if schema == nil {
		return nil, ErrNoSchema
	}
	if opts.MaxSubtableDepth <= 0 {
		opts.MaxSubtableDepth = defaultMaxSubtableDepth
	}
	t := &Table{
		schema:      schema,
		dataset:     data,
		opts:        opts,
		rowKeyField: resolveRowKeyField(schema),
		validator:   NewValidator(),
	}
	t.info = &TableInfo{ID: resolveTableID(schema), Schema: schema, DataSource: data}
	t.store = NewStore(initialState(schema, opts.DisplayColumnKeys))
	return t, nil
}

// initialState derives the starting UI state from the schema and the
// host-supplied display list.
func initialState(s *Schema, hostKeys []string) State {
	st := State{
		Pagination:        resolvePagination(s),
		DisplayColumnKeys: resolveDisplayColumns(s, hostKeys),
		Filters:           make(map[string][]any),
	}
	for _, c := range s.Columns {
		if len(c.DefaultFilteredValue) > 0 {
			st.Filters[c.Key] = c.DefaultFilteredValue
		}
	}
	return st
}

// Info returns the table information bundle.
func (t *Table) Info() *TableInfo {
	return t.info
}

// Children returns the subtable infos composed during the last render.
func (t *Table) Children() []*TableInfo {
	return t.children
}

// State returns a snapshot of the current UI state.
func (t *Table) State() State {
	return t.store.State()
}

// SetState shallow-merges a patch onto the UI state.
func (t *Table) SetState(p StatePatch) {
	t.store.Apply(p)
}

// SetStateFunc derives a patch from the current state and merges it.
func (t *Table) SetStateFunc(u Updater) {
	t.store.ApplyFunc(u)
}

// SetDataSource replaces the dataset for subsequent renders.
func (t *Table) SetDataSource(ds []Record) {
	t.dataset = ds
	t.info.DataSource = ds
}

// SetSchema replaces the schema and re-derives the state it controls:
// pagination and, absent a host override, the display column set.
func (t *Table) SetSchema(s *Schema) error {
	if s == nil {
		return ErrNoSchema
	}
	t.schema = s
	t.info.Schema = s
	t.rowKeyField = resolveRowKeyField(s)
	t.store.ApplyFunc(func(State) StatePatch {
		pg := resolvePagination(s)
		keys := resolveDisplayColumns(s, t.opts.DisplayColumnKeys)
		return StatePatch{Pagination: &pg, DisplayColumnKeys: &keys}
	})
	return nil
}

// SetDisplayColumns replaces the visible hidable column set and reports
// the change.
func (t *Table) SetDisplayColumns(keys []string) {
	t.store.Apply(StatePatch{DisplayColumnKeys: &keys})
	if cb := t.opts.Callbacks.OnDisplayColumnsChange; cb != nil {
		cb(keys, t.info)
	}
}

// Unmount fires the unmount hook. The instance can be rendered again,
// which mounts it anew.
func (t *Table) Unmount() {
	if !t.mounted {
		return
	}
	t.mounted = false
	if cb := t.opts.Callbacks.OnUnmount; cb != nil {
		cb(t.info)
	}
}

// Validate runs validation out-of-band and returns the structured result,
// without rendering anything.
func (t *Table) Validate() *ValidationResult {
	return t.validator.Validate(
		Props{Schema: t.schema, Driver: t.opts.Driver, DataSource: t.dataset},
		t.opts.Builtins, t.opts.Registry, t.opts.Validation)
}

// Render runs one render cycle and returns the table's renderable. The
// pipeline is: validate, resolve header/footer slots, generate visible
// column descriptors, resolve row keys, pick the body strategy, wire
// interaction handlers. Prop-shape failures fail closed into a single
// inline error surface; column failures stay local to their column.
func (t *Table) Render() Renderable {
	d := t.opts.Driver
	if d == nil {
		return nil
	}
	if !t.mounted {
		t.mounted = true
		if cb := t.opts.Callbacks.OnMount; cb != nil {
			cb(t.info)
		}
	} else if cb := t.opts.Callbacks.OnUpdate; cb != nil {
		cb(t.info)
	}
	t.children = nil

	res := t.Validate()
	if len(res.Prop) > 0 {
		return d.ErrorText(strings.Join(res.Messages(), "\n"))
	}

	st := t.store.State()
	visible := VisibleColumns(t.schema.Columns, st.DisplayColumnKeys)

	gen := &columnGenerator{
		driver:    d,
		builtins:  t.opts.Builtins,
		external:  t.opts.Registry,
		extra:     t.opts.Extra,
		info:      t.info,
		colErrors: res.Column,
		dataset:   t.dataset,
		emit:      t.fireEvent,
		onFilter:  t.setFilter,
	}
	if cb := t.opts.Callbacks.OnDataSourceChange; cb != nil {
		gen.onDataChange = func(ds []Record) { cb(ds, t.info) }
	}
	descs := make([]ColumnDescriptor, len(visible))
	for i, c := range visible {
		descs[i] = gen.generate(c)
	}

	rows := t.matchingRows(st)
	page, pager := t.paginate(rows, st.Pagination)

	virtual := t.schema.Virtual
	var selection *SelectionProps
	if t.schema.RowSelection && !virtual {
		// Selection is disabled automatically for virtualized tables.
		selection = &SelectionProps{
			SelectedKeys: st.SelectedRowKeys,
			OnChange:     t.setSelection,
		}
	}

	props := TableProps{
		Columns:  descs,
		RowCount: len(page),
		RowKey: func(i int) string {
			abs := page[i]
			return rowKeyOf(t.dataset[abs], t.rowKeyField, abs)
		},
		CellAt: func(row, col int) Renderable {
			abs := page[row]
			return descs[col].Render(t.dataset[abs], abs)
		},
		ExpandedAt: func(row int) Renderable {
			abs := page[row]
			rec := t.dataset[abs]
			if !t.rowExpandable(rec, abs) {
				return nil
			}
			return t.composeSubtable(rec, abs)
		},
		Pagination: pager,
		Selection:  selection,
		Bordered:   t.schema.Bordered,
		Ellipsis:   t.schema.Ellipsis,
		ShowHeader: resolveShowHeader(t.schema),
		Sticky:     t.schema.Sticky,
		Size:       t.schema.Size,
	}
	if cb := t.opts.Callbacks.OnRowClick; cb != nil {
		props.OnRowClick = func(row int) {
			abs := page[row]
			cb(t.dataset[abs], abs, t.info)
		}
	}
	if cb := t.opts.Callbacks.OnRowDoubleClick; cb != nil {
		props.OnRowDoubleClick = func(row int) {
			abs := page[row]
			cb(t.dataset[abs], abs, t.info)
		}
	}

	var body Renderable
	if virtual && t.opts.Virtualizer != nil {
		body = t.opts.Virtualizer.RenderBody(d, props)
	} else {
		if virtual && !t.virtualWarned {
			t.virtualWarned = true
			logger.Warnf("table %s is marked virtual but no virtualizer is configured, rendering the standard body", t.info.ID)
		}
		body = d.Table(props)
	}

	header := t.renderSlots(t.schema.Header, true)
	footer := t.renderSlots(t.schema.Footer, false)
	if header == nil && footer == nil {
		return body
	}
	parts := make([]Renderable, 0, 3)
	if header != nil {
		parts = append(parts, header)
	}
	parts = append(parts, body)
	if footer != nil {
		parts = append(parts, footer)
	}
	return d.Column(parts...)
}

// matchingRows returns the dataset indices passing the active column
// filters, in dataset order.
func (t *Table) matchingRows(st State) []int {
	all := make([]int, 0, len(t.dataset))
	if len(st.Filters) == 0 {
		for i := range t.dataset {
			all = append(all, i)
		}
		return all
	}
	composite := &rowfilter.Composite{Logic: rowfilter.LogicAND}
	for _, col := range t.schema.Columns {
		values := st.Filters[col.Key]
		if len(values) == 0 {
			continue
		}
		index := col.DataIndex
		composite.Matchers = append(composite.Matchers, &rowfilter.Values{
			Name:    col.Key,
			Allowed: values,
			Extract: func(row map[string]any) any {
				return index.Get(Record(row), nil)
			},
		})
	}
	for i, rec := range t.dataset {
		if composite.Match(map[string]any(rec)) {
			all = append(all, i)
		}
	}
	return all
}

// paginate slices the filtered row set down to the current page.
func (t *Table) paginate(rows []int, pg PaginationConfig) ([]int, *PaginationProps) {
	if pg.Disabled {
		return rows, nil
	}
	size := pg.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	current := pg.Current
	if current <= 0 {
		current = defaultFirstPage
	}
	start := (current - 1) * size
	if start >= len(rows) {
		start = 0
		current = defaultFirstPage
	}
	end := min(start+size, len(rows))
	return rows[start:end], &PaginationProps{
		Current:  current,
		PageSize: size,
		Total:    len(rows),
		OnChange: t.setPage,
	}
}

// renderSlots builds a header or footer bar from its slot schema.
func (t *Table) renderSlots(cfg *SlotConfig, header bool) Renderable {
	elems := resolveSlots(cfg, header)
	if len(elems) == 0 {
		return nil
	}
	d := t.opts.Driver
	items := make([]Renderable, 0, len(elems))
	for _, el := range elems {
		switch el.Type {
		case SlotColumnSelector:
			items = append(items, t.columnSelector())
		case SlotSpacer:
			items = append(items, d.Spacer())
		case SlotSearch:
			placeholder := cast.ToString(el.Props["placeholder"])
			items = append(items, d.Search(placeholder, func(term string) {
				if cb := t.opts.Callbacks.OnSearch; cb != nil {
					cb(term, t.info)
				}
			}))
		case SlotInsertButton:
			label := cast.ToString(el.Props["label"])
			if label == "" {
				label = "Insert"
			}
			items = append(items, d.Button(label, func() {
				if cb := t.opts.Callbacks.OnInsert; cb != nil {
					cb(t.info)
				}
			}))
		case SlotText:
			items = append(items, d.Text(cast.ToString(el.Props["text"])))
		default:
			logger.Debugf("table %s: unknown slot element type %q", t.info.ID, el.Type)
		}
	}
	return d.Row(items...)
}

// columnSelector builds the display-column picker over the hidable
// columns.
func (t *Table) columnSelector() Renderable {
	var opts []SelectOption
	for _, c := range t.schema.Columns {
		if c.Hidable {
			opts = append(opts, SelectOption{Key: c.Key, Label: c.Title})
		}
	}
	st := t.store.State()
	return t.opts.Driver.MultiSelect(opts, st.DisplayColumnKeys, t.SetDisplayColumns)
}

// setFilter replaces one column's active filter values and fires the
// change callbacks.
func (t *Table) setFilter(key string, values []any) {
	t.store.ApplyFunc(func(cur State) StatePatch {
		next := make(map[string][]any, len(cur.Filters)+1)
		for k, v := range cur.Filters {
			next[k] = v
		}
		if len(values) == 0 {
			delete(next, key)
		} else {
			next[key] = values
		}
		return StatePatch{Filters: &next}
	})
	t.notifyChange()
}

// setPage replaces the pagination state wholesale and fires the change
// callbacks.
func (t *Table) setPage(page, pageSize int) {
	pg := PaginationConfig{Current: page, PageSize: pageSize}
	t.store.Apply(StatePatch{Pagination: &pg})
	t.notifyChange()
}

// notifyChange fires the state change callbacks in their fixed order:
// filter-changed, then page-changed, then the combined change.
func (t *Table) notifyChange() {
	st := t.store.State()
	cbs := t.opts.Callbacks
	if cbs.OnFilterChange != nil {
		cbs.OnFilterChange(st.Filters, t.info)
	}
	if cbs.OnPageChange != nil {
		cbs.OnPageChange(st.Pagination.Current, st.Pagination.PageSize, t.info)
	}
	if cbs.OnChange != nil {
		cbs.OnChange(st, t.info)
	}
}

// setSelection replaces the selected row keys and reports the change.
func (t *Table) setSelection(keys []string) {
	t.store.Apply(StatePatch{SelectedRowKeys: &keys})
	if cb := t.opts.Callbacks.OnSelectionChange; cb != nil {
		cb(keys, t.info)
	}
}
