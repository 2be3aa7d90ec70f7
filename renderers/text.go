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

// Text renders the projected value as plain text. Options: prefix, suffix,
// and a placeholder shown for empty values. Extra properties are allowed
// so hosts can carry styling hints through untouched.
type Text struct{}

var textSchema = []byte(`{
	"type": "object",
	"properties": {
		"prefix": {"type": "string"},
		"suffix": {"type": "string"},
		"placeholder": {"type": "string"}
	},
	"additionalProperties": true
}`)

// Render implements the schematable.Renderer interface.
func (Text) Render(ctx *schematable.RenderContext) (schematable.Renderable, error) {
	opts := ctx.Column.Options
	s := cast.ToString(ctx.Value)
	if s == "" {
		s = cast.ToString(opts["placeholder"])
	}
	out := cast.ToString(opts["prefix"]) + s + cast.ToString(opts["suffix"])
	return ctx.Driver.Text(out), nil
}

// OptionsSchema implements the schematable.CapabilityPublisher interface.
func (Text) OptionsSchema() []byte {
	return textSchema
}
