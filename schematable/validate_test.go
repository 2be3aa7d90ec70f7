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

var strictCapability = []byte(`{
	"type": "object",
	"required": ["label"],
	"properties": {
		"label": {"type": "string"}
	},
	"additionalProperties": false
}`)

func TestValidateRequiredProps(t *testing.T) {
	v := NewValidator()

	res := v.Validate(Props{}, nil, nil, nil)
	assert.False(t, res.OK())
	require.Len(t, res.Prop, 3)
	assert.Contains(t, res.Prop, ErrNoSchema.Error())
	assert.Contains(t, res.Prop, ErrNoDriver.Error())
	assert.Contains(t, res.Prop, ErrNoDataSource.Error())
	assert.Equal(t, res.Prop, res.Messages())
}

func TestValidatePropFailureSkipsColumnPass(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Columns: []ColumnSchema{
		{Key: "a", Component: "cap", Options: map[string]any{"bogus": 1}},
	}}
	builtins := map[string]Renderer{"cap": &stubRenderer{schema: strictCapability}}

	// DataSource is nil, so the structural pass never runs.
	res := v.Validate(Props{Schema: schema, Driver: &fakeDriver{}}, builtins, nil, nil)
	assert.NotEmpty(t, res.Prop)
	assert.Empty(t, res.Column)
}

func TestValidateDuplicateColumnKeysIsPropError(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Columns: []ColumnSchema{{Key: "a"}, {Key: "a"}}}
	res := v.Validate(Props{Schema: schema, Driver: &fakeDriver{}, DataSource: []Record{}}, nil, nil, nil)
	require.Len(t, res.Prop, 1)
	assert.Contains(t, res.Prop[0], "duplicate column key")
}

func TestValidateColumnOptions(t *testing.T) {
	v := NewValidator()
	builtins := map[string]Renderer{"cap": &stubRenderer{schema: strictCapability}}
	schema := &Schema{Columns: []ColumnSchema{
		{Key: "good", Component: "cap", Options: map[string]any{"label": "x"}},
		{Key: "bad", Component: "cap", Options: map[string]any{"label": 7, "extra": true}},
	}}

	res := v.Validate(Props{Schema: schema, Driver: &fakeDriver{}, DataSource: []Record{}}, builtins, nil, nil)
	assert.Empty(t, res.Prop)
	assert.NotContains(t, res.Column, "good")
	assert.NotEmpty(t, res.Column["bad"])
	for _, msg := range res.Column["bad"] {
		assert.Contains(t, msg, `column "bad"`)
	}
	assert.False(t, res.OK())
}

func TestValidateMissingRequiredOption(t *testing.T) {
	v := NewValidator()
	builtins := map[string]Renderer{"cap": &stubRenderer{schema: strictCapability}}
	schema := &Schema{Columns: []ColumnSchema{{Key: "c", Component: "cap"}}}

	res := v.Validate(Props{Schema: schema, Driver: &fakeDriver{}, DataSource: []Record{}}, builtins, nil, nil)
	assert.NotEmpty(t, res.Column["c"])
}

func TestValidateUnresolvedComponentIsNotAnError(t *testing.T) {
	v := NewValidator()
	schema := &Schema{Columns: []ColumnSchema{{Key: "c", Component: "nope"}}}
	res := v.Validate(Props{Schema: schema, Driver: &fakeDriver{}, DataSource: []Record{}}, nil, nil, nil)
	assert.True(t, res.OK())
}

func TestValidateRendererWithoutCapability(t *testing.T) {
	v := NewValidator()
	builtins := map[string]Renderer{
		"plain": &stubRenderer{},
		"empty": &stubRenderer{schema: []byte{}},
	}
	schema := &Schema{Columns: []ColumnSchema{
		{Key: "a", Component: "plain", Options: map[string]any{"anything": 1}},
		{Key: "b", Component: "empty", Options: map[string]any{"anything": 1}},
	}}
	res := v.Validate(Props{Schema: schema, Driver: &fakeDriver{}, DataSource: []Record{}}, builtins, nil, nil)
	assert.True(t, res.OK())
}

func TestValidateDisabled(t *testing.T) {
	v := NewValidator()
	res := v.Validate(Props{}, nil, nil, &ValidationConfig{Disabled: true})
	assert.True(t, res.OK())
}

func TestValidateMemoization(t *testing.T) {
	v := NewValidator()
	builtins := map[string]Renderer{"cap": &stubRenderer{schema: strictCapability}}
	schema := &Schema{Columns: []ColumnSchema{
		{Key: "c", Component: "cap", Options: map[string]any{"extra": true}},
	}}
	props := Props{Schema: schema, Driver: &fakeDriver{}, DataSource: []Record{}}

	first := v.Validate(props, builtins, nil, nil)
	second := v.Validate(props, builtins, nil, nil)
	assert.Equal(t, first.Column, second.Column)
	assert.Equal(t, 1, v.memo.Len())
}
