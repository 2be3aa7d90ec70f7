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
	"encoding/json"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kaptinlin/jsonschema"
)

// validationMemoSize bounds the per-column memoization cache. Staleness
// only costs recomputation, never correctness, so evictions are harmless.
const validationMemoSize = 512

// ValidationConfig tunes validation. A nil config means enabled with
// permissive extra-property handling; Disabled is the escape hatch that
// skips all checks.
type ValidationConfig struct {
	Disabled bool
}

// Props are the top-level inputs the orchestrator validates before
// rendering anything.
type Props struct {
	Schema     *Schema
	Driver     Driver
	DataSource []Record
}

// ValidationResult separates prop-shape errors, which fail the whole
// table, from per-column errors, which fail only that column's cells. The
// caller decides fail-open versus fail-closed; the validator never
// renders.
type ValidationResult struct {
	// Prop are required-top-level-prop errors.
	Prop []string

	// Column maps column key to that column's option errors.
	Column map[string][]string

	ordered []string
}

// OK reports whether validation passed entirely.
func (r *ValidationResult) OK() bool {
	return len(r.Prop) == 0 && len(r.Column) == 0
}

// Messages returns every error message in validation order, both passes
// concatenated.
func (r *ValidationResult) Messages() []string {
	return r.ordered
}

// Validator checks top-level props and per-column options against the
// capability schemas published by resolved renderers. Column results are
// memoized on (component identifier, options) since validation is a pure
// function of that pair.
type Validator struct {
	compiler *jsonschema.Compiler

	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema

	memo *lru.Cache[string, []string]
}

// NewValidator creates a validator with an empty memoization cache.
func NewValidator() *Validator {
	memo, _ := lru.New[string, []string](validationMemoSize)
	return &Validator{
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
		memo:     memo,
	}
}

// Validate runs both passes: required top-level props, then per-column
// structural checks. A disabled config short-circuits to an empty result.
func (v *Validator) Validate(props Props, builtins map[string]Renderer, external Registry, cfg *ValidationConfig) *ValidationResult {
	res := &ValidationResult{Column: make(map[string][]string)}
	if cfg != nil && cfg.Disabled {
		return res
	}

	if props.Schema == nil {
		res.addProp(ErrNoSchema.Error())
	}
	if props.Driver == nil {
		res.addProp(ErrNoDriver.Error())
	}
	if props.DataSource == nil {
		res.addProp(ErrNoDataSource.Error())
	}
	if props.Schema != nil {
		if err := checkColumnKeys(props.Schema.Columns); err != nil {
			res.addProp(err.Error())
		}
	}
	if len(res.Prop) > 0 {
		return res
	}

	for i := range props.Schema.Columns {
		col := &props.Schema.Columns[i]
		msgs := v.columnErrors(col, builtins, external)
		if len(msgs) > 0 {
			res.addColumn(col.Key, msgs)
		}
	}
	return res
}

func (r *ValidationResult) addProp(msg string) {
	r.Prop = append(r.Prop, msg)
	r.ordered = append(r.ordered, msg)
}

func (r *ValidationResult) addColumn(key string, msgs []string) {
	r.Column[key] = append(r.Column[key], msgs...)
	r.ordered = append(r.ordered, msgs...)
}

// columnErrors validates one column's options bag against its renderer's
// capability schema, memoized.
func (v *Validator) columnErrors(col *ColumnSchema, builtins map[string]Renderer, external Registry) []string {
	r := Resolve(col.Component, builtins, external)
	if r == nil {
		// An unresolved identifier is a rendering concern, not a
		// validation error: the generator substitutes a placeholder.
		return nil
	}
	pub, ok := r.(CapabilityPublisher)
	if !ok {
		return nil
	}
	capability := pub.OptionsSchema()
	if len(capability) == 0 {
		return nil
	}

	key := memoKey(col.Component, col.Options)
	if msgs, hit := v.memo.Get(key); hit {
		return msgs
	}

	msgs := v.check(col, capability)
	v.memo.Add(key, msgs)
	return msgs
}

func (v *Validator) check(col *ColumnSchema, capability []byte) []string {
	sch, err := v.compile(capability)
	if err != nil {
		return []string{fmt.Sprintf("column %q: bad capability schema: %v", col.Key, err)}
	}
	opts := col.Options
	if opts == nil {
		opts = map[string]any{}
	}
	result := sch.Validate(opts)
	if result.IsValid() {
		return nil
	}
	var msgs []string
	collectEvaluationErrors(result, func(msg string) {
		msgs = append(msgs, fmt.Sprintf("column %q: %s", col.Key, msg))
	})
	if len(msgs) == 0 {
		msgs = []string{fmt.Sprintf("column %q: options do not match the renderer capability schema", col.Key)}
	}
	return msgs
}

// collectEvaluationErrors walks an evaluation tree and reports every leaf
// error message.
func collectEvaluationErrors(res *jsonschema.EvaluationResult, report func(string)) {
	if res == nil {
		return
	}
	for _, e := range res.Errors {
		if e != nil {
			report(e.Error())
		}
	}
	for _, d := range res.Details {
		collectEvaluationErrors(d, report)
	}
}

// compile caches compiled capability schemas by their raw bytes.
func (v *Validator) compile(capability []byte) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if sch, ok := v.compiled[string(capability)]; ok {
		return sch, nil
	}
	sch, err := v.compiler.Compile(capability)
	if err != nil {
		return nil, err
	}
	v.compiled[string(capability)] = sch
	return sch, nil
}

// memoKey builds the memoization key from the component identifier and
// the canonical JSON of the options bag.
func memoKey(component string, options map[string]any) string {
	raw, err := json.Marshal(options)
	if err != nil {
		raw = []byte(fmt.Sprintf("%v", options))
	}
	return component + "\x00" + string(raw)
}
