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
	"github.com/spf13/cast"

	"github.com/tablekit/schematable/schematable"
)

// Bool renders a boolean value with custom labels. Options: yes and no.
type Bool struct{}

var boolSchema = []byte(`{
	"type": "object",
	"properties": {
		"yes": {"type": "string"},
		"no": {"type": "string"}
	},
	"additionalProperties": false
}`)

// Render implements the schematable.Renderer interface.
func (Bool) Render(ctx *schematable.RenderContext) (schematable.Renderable, error) {
	opts := ctx.Column.Options
	yes := cast.ToString(opts["yes"])
	if yes == "" {
		yes = "yes"
	}
	no := cast.ToString(opts["no"])
	if no == "" {
		no = "no"
	}
	if cast.ToBool(ctx.Value) {
		return ctx.Driver.Text(yes), nil
	}
	return ctx.Driver.Text(no), nil
}

// OptionsSchema implements the schematable.CapabilityPublisher interface.
func (Bool) OptionsSchema() []byte {
	return boolSchema
}
