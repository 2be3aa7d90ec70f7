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

package renderers

import (
	"strconv"

	"github.com/spf13/cast"

	"github.com/tablekit/schematable/schematable"
)

// Number renders the projected value as a formatted number. Options:
// decimals (decimal places), prefix and suffix (e.g. a currency symbol or
// a unit). The options bag is strict; unknown properties are rejected by
// validation.
type Number struct{}

var numberSchema = []byte(`{
	"type": "object",
	"properties": {
		"decimals": {"type": "integer", "minimum": 0, "maximum": 20},
		"prefix": {"type": "string"},
		"suffix": {"type": "string"}
	},
	"additionalProperties": false
}`)

// Render implements the schematable.Renderer interface.
func (Number) Render(ctx *schematable.RenderContext) (schematable.Renderable, error) {
	opts := ctx.Column.Options
	decimals := cast.ToInt(opts["decimals"])
	f, err := cast.ToFloat64E(ctx.Value)
	if err != nil {
		return nil, err
	}
	s := strconv.FormatFloat(f, 'f', decimals, 64)
	out := cast.ToString(opts["prefix"]) + s + cast.ToString(opts["suffix"])
	return ctx.Driver.Text(out), nil
}

// OptionsSchema implements the schematable.CapabilityPublisher interface.
func (Number) OptionsSchema() []byte {
	return numberSchema
}
