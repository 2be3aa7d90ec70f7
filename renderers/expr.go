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
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/spf13/cast"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/tablekit/schematable/schematable"
)

// Expr evaluates a Go expression against the record and renders the
// result as text. The expression sees two bindings: value (the projected
// cell value) and record (the full row map), both typed interface{}.
// Evaluation errors are returned to the engine, which substitutes an
// inline message for that single cell only.
type Expr struct{}

var exprSchema = []byte(`{
	"type": "object",
	"required": ["expression"],
	"properties": {
		"expression": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`)

// Render implements the schematable.Renderer interface.
func (Expr) Render(ctx *schematable.RenderContext) (schematable.Renderable, error) {
	src := cast.ToString(ctx.Column.Options["expression"])
	if src == "" {
		return nil, errors.New("expr renderer requires an expression option")
	}

	i := interp.New(interp.Options{Stdout: io.Discard, Stderr: io.Discard})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	if err := i.Use(cellSymbols(ctx)); err != nil {
		return nil, err
	}

	prog := fmt.Sprintf(`import "cell"
func() interface{} {
	value := cell.Value
	record := cell.Record
	_, _ = value, record
	return %s
}()`, src)

	v, err := i.Eval(prog)
	if err != nil {
		return nil, err
	}
	var out any
	if v.IsValid() {
		out = v.Interface()
	}
	return ctx.Driver.Text(cast.ToString(out)), nil
}

// cellSymbols exports the cell bindings into the interpreter. Both are
// bound through an addressable interface so a nil value stays usable.
func cellSymbols(ctx *schematable.RenderContext) interp.Exports {
	value := ctx.Value
	var record map[string]any = ctx.Record
	return interp.Exports{
		"cell/cell": {
			"Value":  reflect.ValueOf(&value).Elem(),
			"Record": reflect.ValueOf(&record).Elem(),
		},
	}
}

// OptionsSchema implements the schematable.CapabilityPublisher interface.
func (Expr) OptionsSchema() []byte {
	return exprSchema
}
