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

// Link renders a tappable label that reports clicks through the unified
// event dispatch. Options: label (overrides the cell value) and event (the
// emitted event name, default "link-click").
type Link struct{}

var linkSchema = []byte(`{
	"type": "object",
	"properties": {
		"label": {"type": "string"},
		"event": {"type": "string"}
	},
	"additionalProperties": false
}`)

// Render implements the schematable.Renderer interface.
func (Link) Render(ctx *schematable.RenderContext) (schematable.Renderable, error) {
	opts := ctx.Column.Options
	label := cast.ToString(opts["label"])
	if label == "" {
		label = cast.ToString(ctx.Value)
	}
	event := cast.ToString(opts["event"])
	if event == "" {
		event = "link-click"
	}
	value := ctx.Value
	emit := ctx.Emit
	return ctx.Driver.Button(label, func() {
		if emit != nil {
			emit(event, value)
		}
	}), nil
}

// OptionsSchema implements the schematable.CapabilityPublisher interface.
func (Link) OptionsSchema() []byte {
	return linkSchema
}
