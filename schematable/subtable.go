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
	"slices"

	"github.com/spf13/cast"
)

// ResolveSubtableProps computes the effective nested-table properties for
// one row by override precedence: default rules first, then table-id
// matched rules, then record-key-chain matched rules, later rules shallow
// overriding earlier ones field by field. A rule whose key chain is
// shorter or longer than the row's chain does not apply at this depth.
func ResolveSubtableProps(rules []OverrideRule, tableID string, keyChain []string) map[string]any {
	props := make(map[string]any)
	apply := func(match func(OverrideRule) bool) {
		for _, r := range rules {
			if !match(r) {
				continue
			}
			for k, v := range r.Properties {
				props[k] = v
			}
		}
	}
	apply(func(r OverrideRule) bool {
		return r.TableID == "" && len(r.KeyChain) == 0
	})
	apply(func(r OverrideRule) bool {
		return r.TableID != "" && len(r.KeyChain) == 0 && r.TableID == tableID
	})
	apply(func(r OverrideRule) bool {
		return len(r.KeyChain) > 0 && slices.Equal(r.KeyChain, keyChain)
	})
	return props
}

// applyOverrideProps writes recognized override properties onto a derived
// schema. Unrecognized properties are left for host callbacks to read out
// of the resolved map themselves.
func applyOverrideProps(s *Schema, props map[string]any) {
	for k, v := range props {
		switch k {
		case "bordered":
			s.Bordered = cast.ToBool(v)
		case "ellipsis":
			s.Ellipsis = cast.ToBool(v)
		case "sticky":
			s.Sticky = cast.ToBool(v)
		case "virtual":
			s.Virtual = cast.ToBool(v)
		case "rowSelection":
			s.RowSelection = cast.ToBool(v)
		case "showHeader":
			b := cast.ToBool(v)
			s.ShowHeader = &b
		case "size":
			s.Size = cast.ToString(v)
		case "style":
			s.Style = cast.ToString(v)
		case "className":
			s.ClassName = cast.ToString(v)
		case "pageSize":
			size := cast.ToInt(v)
			if size > 0 {
				s.Pagination = &PaginationConfig{Current: defaultFirstPage, PageSize: size}
			}
		}
	}
}

// derivedSubtableSchema builds the schema the nested table renders: the
// subtable schema with the dataset-key column removed (it is metadata, not
// a renderable column) and effective override properties applied.
func derivedSubtableSchema(cfg *SubtableConfig, props map[string]any) *Schema {
	derived := *cfg.Schema
	derived.Columns = make([]ColumnSchema, 0, len(cfg.Schema.Columns))
	for _, c := range cfg.Schema.Columns {
		if c.Key == cfg.DataSourceKey {
			continue
		}
		if len(c.DataIndex) == 1 && c.DataIndex[0] == cfg.DataSourceKey {
			continue
		}
		derived.Columns = append(derived.Columns, c)
	}
	applyOverrideProps(&derived, props)
	return &derived
}

// rowExpandable reports whether a row gets an expansion affordance:
// either its subtable dataset key holds a non-empty array, or the host's
// predicate says so. A dataset key holding any other type is "no
// children".
func (t *Table) rowExpandable(rec Record, idx int) bool {
	if cfg := t.schema.Subtable; cfg != nil && cfg.Schema != nil {
		if len(childRecords(rec, cfg.DataSourceKey)) > 0 {
			return true
		}
	}
	if pred := t.opts.Callbacks.RowExpandable; pred != nil {
		return pred(rec, idx, t.info)
	}
	return false
}

// composeSubtable recursively instantiates the engine for one expanded
// row. The child table's information points back at this table's, so host
// callbacks can report both contexts; this table keeps the child info it
// constructed for the render pass.
func (t *Table) composeSubtable(rec Record, idx int) Renderable {
	cfg := t.schema.Subtable
	if cfg == nil || cfg.Schema == nil {
		return nil
	}
	if t.depth+1 >= t.opts.MaxSubtableDepth {
		return t.opts.Driver.ErrorText(ErrMaxDepthExceeded.Error())
	}

	rowKey := rowKeyOf(rec, t.rowKeyField, idx)
	chain := append(slices.Clone(t.keyChain), rowKey)
	props := ResolveSubtableProps(cfg.Overrides, t.info.ID, chain)
	derived := derivedSubtableSchema(cfg, props)
	data := childRecords(rec, cfg.DataSourceKey)

	opts := t.opts
	// The host display list is keyed to this table's columns; the child
	// derives its own from the derived schema.
	opts.DisplayColumnKeys = nil
	child, err := New(derived, data, opts)
	if err != nil {
		return t.opts.Driver.ErrorText(err.Error())
	}
	child.depth = t.depth + 1
	child.keyChain = chain
	child.info.Parent = t.info
	t.children = append(t.children, child.info)

	parts := make([]Renderable, 0, 3)
	if cb := t.opts.Callbacks.SubtableTitle; cb != nil {
		if title := cb(rec, idx, child.info); title != nil {
			parts = append(parts, title)
		}
	}
	parts = append(parts, child.Render())
	if cb := t.opts.Callbacks.SubtableFooter; cb != nil {
		if footer := cb(rec, idx, child.info); footer != nil {
			parts = append(parts, footer)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return t.opts.Driver.Column(parts...)
}
