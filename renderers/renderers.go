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

// Package renderers is the built-in cell renderer set. Each renderer
// publishes a capability schema describing the options bag it accepts;
// the engine validates column options against it.
package renderers

import "github.com/tablekit/schematable/schematable"

// Builtins returns the built-in renderer set keyed by bare component
// identifier.
func Builtins() map[string]schematable.Renderer {
	return map[string]schematable.Renderer{
		"text":   Text{},
		"number": Number{},
		"bool":   Bool{},
		"link":   Link{},
		"expr":   Expr{},
	}
}
