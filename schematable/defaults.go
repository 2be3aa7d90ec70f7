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
	"strconv"

	"github.com/google/uuid"
)

// Default values applied by the resolvers below. Each resolver documents
// its ordered list of sources so the precedence stays auditable.
const (
	defaultRowKeyField = "key"
	defaultPageSize    = 10
	defaultFirstPage   = 1
)

// resolveTableID returns, in order: the schema id, else a fresh UUID.
func resolveTableID(s *Schema) string {
	if s != nil && s.ID != "" {
		return s.ID
	}
	return uuid.NewString()
}

// resolveRowKeyField returns, in order: the schema rowKey, else "key".
func resolveRowKeyField(s *Schema) string {
	if s != nil && s.RowKey != "" {
		return s.RowKey
	}
	return defaultRowKeyField
}

// resolvePagination returns, in order: the schema pagination with zero
// fields filled from defaults, else default paging (page 1, size 10).
// A schema that disabled paging resolves to the disabled config unchanged.
func resolvePagination(s *Schema) PaginationConfig {
	if s == nil || s.Pagination == nil {
		return PaginationConfig{Current: defaultFirstPage, PageSize: defaultPageSize}
	}
	p := *s.Pagination
	if p.Disabled {
		return p
	}
	if p.Current <= 0 {
		p.Current = defaultFirstPage
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}
	return p
}

// resolveDisplayColumns returns, in order: the host-supplied display list,
// else the keys of every hidable column.
func resolveDisplayColumns(s *Schema, hostKeys []string) []string {
	if hostKeys != nil {
		return append([]string(nil), hostKeys...)
	}
	var keys []string
	if s == nil {
		return keys
	}
	for _, c := range s.Columns {
		if c.Hidable {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// resolveShowHeader returns, in order: the schema showHeader flag, else
// true.
func resolveShowHeader(s *Schema) bool {
	if s == nil || s.ShowHeader == nil {
		return true
	}
	return *s.ShowHeader
}

// resolveSlots returns, in order: the explicit element list, else the
// built-in default layout for the slot position when the boolean shorthand
// enabled it, else nothing.
func resolveSlots(cfg *SlotConfig, header bool) []SlotElement {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	if len(cfg.Elements) > 0 {
		return cfg.Elements
	}
	if header {
		return []SlotElement{
			{Type: SlotColumnSelector},
			{Type: SlotSpacer},
			{Type: SlotSearch},
			{Type: SlotInsertButton},
		}
	}
	return []SlotElement{
		{Type: SlotColumnSelector},
		{Type: SlotSearch},
		{Type: SlotInsertButton},
	}
}

// NormalizeWidth turns a bare non-negative integer into a pixel width by
// appending the px suffix. Any other string passes through unchanged, so
// the function is idempotent.
func NormalizeWidth(w string) string {
	if w == "" {
		return ""
	}
	if n, err := strconv.Atoi(w); err == nil && n >= 0 {
		return w + "px"
	}
	return w
}
