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

// Package rowfilter evaluates column filter selections against row maps.
package rowfilter

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// LogicOp represents a logical operator for combining matchers.
type LogicOp int

const (
	// LogicAND requires all matchers to pass.
	LogicAND LogicOp = iota
	// LogicOR requires at least one matcher to pass.
	LogicOR
)

// String returns the string representation of a LogicOp.
func (op LogicOp) String() string {
	switch op {
	case LogicAND:
		return "AND"
	case LogicOR:
		return "OR"
	default:
		return fmt.Sprintf("unknown(%d)", op)
	}
}

// Matcher decides whether a row passes one filter.
type Matcher interface {
	Match(row map[string]any) bool
	Description() string
}

// Values matches a row when the extracted field value equals any of the
// allowed values. Comparison is loose: both sides are compared through
// their string forms, so a schema filter value "42" matches a record
// value 42.
type Values struct {
	// Name labels the matcher for descriptions, typically the column key.
	Name string

	// Extract projects the compared value out of the row.
	Extract func(row map[string]any) any

	// Allowed are the selected filter values.
	Allowed []any
}

// Match implements the Matcher interface.
func (v *Values) Match(row map[string]any) bool {
	if len(v.Allowed) == 0 {
		return true
	}
	got := cast.ToString(v.Extract(row))
	for _, allowed := range v.Allowed {
		if got == cast.ToString(allowed) {
			return true
		}
	}
	return false
}

// Description implements the Matcher interface.
func (v *Values) Description() string {
	parts := make([]string, len(v.Allowed))
	for i, a := range v.Allowed {
		parts[i] = cast.ToString(a)
	}
	return fmt.Sprintf("%s in [%s]", v.Name, strings.Join(parts, ", "))
}

// Composite combines multiple matchers with AND or OR logic.
type Composite struct {
	// Matchers is the list of matchers to combine.
	Matchers []Matcher

	// Logic specifies how to combine the matchers (AND or OR).
	Logic LogicOp
}

// Match implements the Matcher interface.
func (c *Composite) Match(row map[string]any) bool {
	if len(c.Matchers) == 0 {
		return true // Empty filter passes all rows
	}

	switch c.Logic {
	case LogicOR:
		for _, m := range c.Matchers {
			if m.Match(row) {
				return true // Short-circuit on first success
			}
		}
		return false
	default:
		for _, m := range c.Matchers {
			if !m.Match(row) {
				return false // Short-circuit on first failure
			}
		}
		return true
	}
}

// Description implements the Matcher interface.
func (c *Composite) Description() string {
	if len(c.Matchers) == 0 {
		return "empty filter"
	}
	descriptions := make([]string, len(c.Matchers))
	for i, m := range c.Matchers {
		descriptions[i] = m.Description()
	}
	return "(" + strings.Join(descriptions, " "+c.Logic.String()+" ") + ")"
}
