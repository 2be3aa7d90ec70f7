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

// Package schematable renders an interactive table purely from a
// declarative schema plus a dataset. Cell renderers are resolved
// dynamically by component identifier, nested subtables compose
// recursively, and transient UI state (pagination, selection, visible
// columns, filters) lives in a small store with shallow-merge semantics.
// The package composes host-supplied driver primitives and never owns any
// widget toolkit itself.
package schematable

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Schema is the declarative description of one table: its columns, its
// behavior flags and, optionally, the shape of nested subtables. A schema
// is owned by the host and only read by the engine; it is treated as an
// immutable input per render cycle.
type Schema struct {
	// ID identifies the table. Optional; a synthetic id is assigned when
	// empty.
	ID string `json:"id,omitempty"`

	// Columns is the ordered column list.
	Columns []ColumnSchema `json:"columns"`

	// Pagination configures paging, or disables it when the schema
	// document carries `"pagination": false`. Nil means default paging.
	Pagination *PaginationConfig `json:"pagination,omitempty"`

	// RowKey names the record field holding the unique row key.
	// Defaults to "key".
	RowKey string `json:"rowKey,omitempty"`

	// Subtable describes the nested table rendered for expandable rows.
	Subtable *SubtableConfig `json:"subtable,omitempty"`

	// Header and Footer describe the slot bars around the table body.
	// The boolean shorthand `true` yields the built-in slot layout.
	Header *SlotConfig `json:"header,omitempty"`
	Footer *SlotConfig `json:"footer,omitempty"`

	// Virtual selects the windowed body strategy for large datasets.
	Virtual bool `json:"virtual,omitempty"`

	// RowSelection enables the selection column. Ignored for virtual
	// tables, where selection is disabled automatically.
	RowSelection bool `json:"rowSelection,omitempty"`

	// Display flags, passed through to the driver.
	Ellipsis   bool   `json:"ellipsis,omitempty"`
	Bordered   bool   `json:"bordered,omitempty"`
	ShowHeader *bool  `json:"showHeader,omitempty"`
	Sticky     bool   `json:"sticky,omitempty"`
	Size       string `json:"size,omitempty"`
	Style      string `json:"style,omitempty"`
	ClassName  string `json:"className,omitempty"`

	// Translations is an opaque translation map supplied by the schema
	// author and passed through to renderers untouched.
	Translations map[string]string `json:"translations,omitempty"`
}

// ParseSchema decodes a schema document from JSON. Deprecated column forms
// (`ui:type`/`ui:props`) are rewritten to the current form during decoding.
func ParseSchema(doc []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if err := checkColumnKeys(s.Columns); err != nil {
		return nil, err
	}
	return &s, nil
}

// checkColumnKeys rejects duplicate keys among sibling columns.
func checkColumnKeys(cols []ColumnSchema) error {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c.Key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateColumnKey, c.Key)
		}
		seen[c.Key] = struct{}{}
	}
	return nil
}

// ColumnSchema describes one column: which renderer draws its cells, how
// the cell value is projected out of a record, and its display attributes.
type ColumnSchema struct {
	// Key is unique within its column list.
	Key string `json:"key"`

	// Title is the plain header title.
	Title string `json:"title,omitempty"`

	// Description, when present, decorates the title with an info
	// affordance revealing this text on demand.
	Description string `json:"description,omitempty"`

	// DataIndex projects the cell value out of a record.
	DataIndex DataIndex `json:"dataIndex,omitempty"`

	// Component identifies the cell renderer: a bare name ("text") for
	// the built-in set or "namespace::name" for a host registry entry.
	Component string `json:"component,omitempty"`

	// Options is the renderer-specific options bag, validated against
	// the renderer's capability schema when one is published.
	Options map[string]any `json:"options,omitempty"`

	// Display attributes.
	Width         string         `json:"-"`
	Align         string         `json:"align,omitempty"`
	VerticalAlign string         `json:"verticalAlign,omitempty"`
	Fixed         string         `json:"fixed,omitempty"`
	Filters       []FilterOption `json:"filters,omitempty"`

	// DefaultFilteredValue seeds the filter state for this column.
	DefaultFilteredValue []any `json:"defaultFilteredValue,omitempty"`

	// Hidable columns can be toggled out of view through UI state.
	Hidable bool `json:"hidable,omitempty"`

	// DefaultValue substitutes for an absent projected value.
	DefaultValue any `json:"defaultValue,omitempty"`
}

// columnSchemaJSON is the wire form of ColumnSchema. Width may be a bare
// number or a string, and the deprecated ui:type/ui:props pair may stand
// in for component/options.
type columnSchemaJSON struct {
	Key                  string          `json:"key"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	DataIndex            DataIndex       `json:"dataIndex"`
	Component            string          `json:"component"`
	Options              map[string]any  `json:"options"`
	Width                json.RawMessage `json:"width"`
	Align                string          `json:"align"`
	VerticalAlign        string          `json:"verticalAlign"`
	Fixed                string          `json:"fixed"`
	Filters              []FilterOption  `json:"filters"`
	DefaultFilteredValue []any           `json:"defaultFilteredValue"`
	Hidable              bool            `json:"hidable"`
	DefaultValue         any             `json:"defaultValue"`

	// Deprecated alternate form.
	UIType  string         `json:"ui:type"`
	UIProps map[string]any `json:"ui:props"`
}

// deprecatedWarned tracks column keys that already produced a deprecation
// warning, so each affected key warns exactly once per process.
var deprecatedWarned sync.Map

// resetDeprecationWarnings clears the one-time warning bookkeeping.
func resetDeprecationWarnings() {
	deprecatedWarned = sync.Map{}
}

// UnmarshalJSON decodes a column schema, rewriting the deprecated
// ui:type/ui:props form into component/options before anything else sees
// the column.
func (c *ColumnSchema) UnmarshalJSON(b []byte) error {
	var w columnSchemaJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*c = ColumnSchema{
		Key:                  w.Key,
		Title:                w.Title,
		Description:          w.Description,
		DataIndex:            w.DataIndex,
		Component:            w.Component,
		Options:              w.Options,
		Width:                decodeWidth(w.Width),
		Align:                w.Align,
		VerticalAlign:        w.VerticalAlign,
		Fixed:                w.Fixed,
		Filters:              w.Filters,
		DefaultFilteredValue: w.DefaultFilteredValue,
		Hidable:              w.Hidable,
		DefaultValue:         w.DefaultValue,
	}
	if c.Component == "" && w.UIType != "" {
		c.Component = w.UIType
		if c.Options == nil {
			c.Options = w.UIProps
		}
		if _, warned := deprecatedWarned.LoadOrStore(w.Key, struct{}{}); !warned {
			logger.Warnf("column %q uses deprecated ui:type/ui:props; use component/options", w.Key)
		}
	}
	return nil
}

// decodeWidth accepts a JSON number or string width and keeps it as text.
// Normalization to a pixel width happens later, see NormalizeWidth.
func decodeWidth(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// FilterOption is one selectable filter entry on a column header.
type FilterOption struct {
	Text  string `json:"text"`
	Value any    `json:"value"`
}

// DataIndex is a field name or ordered path used to project a value out of
// a record. The JSON form may be a single string or an array of strings.
type DataIndex []string

// UnmarshalJSON accepts "field" or ["outer","inner"].
func (d *DataIndex) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*d = DataIndex{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("dataIndex must be a string or string array: %w", err)
	}
	*d = DataIndex(many)
	return nil
}

// MarshalJSON emits the compact single-string form when possible.
func (d DataIndex) MarshalJSON() ([]byte, error) {
	if len(d) == 1 {
		return json.Marshal(d[0])
	}
	return json.Marshal([]string(d))
}

// PaginationConfig configures paging. The JSON form is either an object or
// the literal false to disable paging entirely.
type PaginationConfig struct {
	Disabled bool `json:"-"`
	Current  int  `json:"current,omitempty"`
	PageSize int  `json:"pageSize,omitempty"`
}

// UnmarshalJSON accepts false or {current, pageSize}.
func (p *PaginationConfig) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		if flag {
			*p = PaginationConfig{}
			return nil
		}
		*p = PaginationConfig{Disabled: true}
		return nil
	}
	type alias PaginationConfig
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = PaginationConfig(a)
	return nil
}

// SlotConfig describes a header or footer bar: either the boolean
// shorthand, which yields the built-in slot layout, or an explicit element
// list.
type SlotConfig struct {
	Enabled  bool           `json:"-"`
	Style    map[string]any `json:"style,omitempty"`
	Elements []SlotElement  `json:"elements,omitempty"`
}

// SlotElement is one element in a header/footer bar.
type SlotElement struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props,omitempty"`
}

// Built-in slot element types.
const (
	SlotColumnSelector = "display-column-selector"
	SlotSpacer         = "spacer"
	SlotSearch         = "search"
	SlotInsertButton   = "insert-button"
	SlotText           = "text"
)

// UnmarshalJSON accepts true, false, or {style, elements}.
func (s *SlotConfig) UnmarshalJSON(b []byte) error {
	var flag bool
	if err := json.Unmarshal(b, &flag); err == nil {
		*s = SlotConfig{Enabled: flag}
		return nil
	}
	type alias SlotConfig
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = SlotConfig(a)
	s.Enabled = true
	return nil
}

// SubtableConfig describes the nested table attached to expandable rows.
type SubtableConfig struct {
	// Schema is the nested table's schema. Its column matching
	// DataSourceKey is metadata, not a renderable column, and is dropped
	// when the nested table is composed.
	Schema *Schema `json:"schema"`

	// DataSourceKey names the record field holding the child dataset.
	DataSourceKey string `json:"dataSourceKey"`

	// Overrides adjust nested table properties per table or per row.
	Overrides []OverrideRule `json:"overrides,omitempty"`
}

// OverrideRule adjusts subtable properties for the rows it matches. A rule
// with neither TableID nor KeyChain is the default rule. Precedence runs
// least to most specific: default, then table-id match, then
// record-key-chain match, later rules shallow-overriding earlier ones
// field by field.
type OverrideRule struct {
	TableID    string         `json:"tableId,omitempty"`
	KeyChain   []string       `json:"keyChain,omitempty"`
	Properties map[string]any `json:"properties"`
}
