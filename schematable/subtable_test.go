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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSubtablePropsPrecedence(t *testing.T) {
	rules := []OverrideRule{
		{Properties: map[string]any{"size": "default", "bordered": true}},
		{TableID: "orders", Properties: map[string]any{"size": "middle"}},
		{KeyChain: []string{"r1"}, Properties: map[string]any{"size": "small"}},
	}

	// Chain match overrides id match overrides default, field by field.
	props := ResolveSubtableProps(rules, "orders", []string{"r1"})
	assert.Equal(t, "small", props["size"])
	assert.Equal(t, true, props["bordered"])

	props = ResolveSubtableProps(rules, "orders", []string{"r2"})
	assert.Equal(t, "middle", props["size"])

	props = ResolveSubtableProps(rules, "other", []string{"r2"})
	assert.Equal(t, "default", props["size"])
}

func TestResolveSubtablePropsChainLengthMustMatch(t *testing.T) {
	rules := []OverrideRule{
		{KeyChain: []string{"r1", "s1"}, Properties: map[string]any{"size": "small"}},
	}
	assert.Empty(t, ResolveSubtableProps(rules, "t", []string{"r1"}))
	assert.Equal(t, "small",
		ResolveSubtableProps(rules, "t", []string{"r1", "s1"})["size"])
}

func TestResolveSubtablePropsLaterRuleWins(t *testing.T) {
	rules := []OverrideRule{
		{Properties: map[string]any{"size": "first"}},
		{Properties: map[string]any{"size": "second"}},
	}
	assert.Equal(t, "second", ResolveSubtableProps(rules, "t", nil)["size"])
}

func TestApplyOverrideProps(t *testing.T) {
	s := &Schema{}
	applyOverrideProps(s, map[string]any{
		"bordered":   true,
		"showHeader": false,
		"size":       "small",
		"pageSize":   5,
		"unknown":    "ignored",
	})
	assert.True(t, s.Bordered)
	require.NotNil(t, s.ShowHeader)
	assert.False(t, *s.ShowHeader)
	assert.Equal(t, "small", s.Size)
	require.NotNil(t, s.Pagination)
	assert.Equal(t, 5, s.Pagination.PageSize)
}

func TestDerivedSubtableSchemaDropsDatasetColumn(t *testing.T) {
	cfg := &SubtableConfig{
		DataSourceKey: "items",
		Schema: &Schema{
			ID: "child",
			Columns: []ColumnSchema{
				{Key: "sku", DataIndex: DataIndex{"sku"}},
				{Key: "items", DataIndex: DataIndex{"items"}},
				{Key: "via-index", DataIndex: DataIndex{"items"}},
				{Key: "nested", DataIndex: DataIndex{"items", "deep"}},
			},
		},
	}

	derived := derivedSubtableSchema(cfg, map[string]any{"bordered": true})
	keys := make([]string, len(derived.Columns))
	for i, c := range derived.Columns {
		keys[i] = c.Key
	}
	// Dropped by key match and by single-segment index match; a deeper
	// index under the same head survives.
	assert.Equal(t, []string{"sku", "nested"}, keys)
	assert.True(t, derived.Bordered)

	// The source schema is untouched.
	assert.Len(t, cfg.Schema.Columns, 4)
	assert.False(t, cfg.Schema.Bordered)
}

func TestRowExpandable(t *testing.T) {
	schema := &Schema{
		Columns: []ColumnSchema{{Key: "a"}},
		Subtable: &SubtableConfig{
			DataSourceKey: "items",
			Schema:        &Schema{Columns: []ColumnSchema{{Key: "sku"}}},
		},
	}
	tbl, err := New(schema, nil, Options{Driver: &fakeDriver{}})
	require.NoError(t, err)

	assert.True(t, tbl.rowExpandable(Record{"items": []any{map[string]any{}}}, 0))
	assert.False(t, tbl.rowExpandable(Record{"items": []any{}}, 0))
	assert.False(t, tbl.rowExpandable(Record{"items": "oops"}, 0))
	assert.False(t, tbl.rowExpandable(Record{}, 0))
}

func TestRowExpandableHostPredicate(t *testing.T) {
	schema := &Schema{Columns: []ColumnSchema{{Key: "a"}}}
	opts := Options{Driver: &fakeDriver{}}
	opts.Callbacks.RowExpandable = func(rec Record, _ int, _ *TableInfo) bool {
		return rec["open"] == true
	}
	tbl, err := New(schema, nil, opts)
	require.NoError(t, err)

	assert.True(t, tbl.rowExpandable(Record{"open": true}, 0))
	assert.False(t, tbl.rowExpandable(Record{}, 0))
}
